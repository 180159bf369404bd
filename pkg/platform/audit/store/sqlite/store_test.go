package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"greatglobal/pkg/domain"
	audit "greatglobal/pkg/platform/audit"
)

type SQLiteJournalSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestSQLiteJournalSuite(t *testing.T) {
	suite.Run(t, new(SQLiteJournalSuite))
}

func (s *SQLiteJournalSuite) SetupTest() {
	store, err := Open(filepath.Join(s.T().TempDir(), "journal.db"))
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *SQLiteJournalSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *SQLiteJournalSuite) TestOpenRequiresPath() {
	_, err := Open("  ")
	s.Require().Error(err)
}

func (s *SQLiteJournalSuite) TestAppendAndQuery() {
	alice := domain.Account("0x1111111111111111111111111111111111111111")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.Append(s.ctx, audit.Event{
		Account:   alice,
		Action:    string(audit.EventBalanceAdded),
		Amount:    "500",
		Timestamp: at,
	}))
	s.Require().NoError(s.store.Append(s.ctx, audit.Event{
		Account: domain.Account("0x2222222222222222222222222222222222222222"),
		Action:  string(audit.EventUserRegistered),
	}))

	s.Run("list by account", func() {
		events, err := s.store.ListByAccount(s.ctx, alice)
		s.Require().NoError(err)
		s.Require().Len(events, 1)
		s.Equal("500", events[0].Amount)
		s.Equal(audit.CategoryFinancial, events[0].Category)
		s.True(at.Equal(events[0].Timestamp))
	})

	s.Run("recent is oldest first", func() {
		events, err := s.store.ListRecent(s.ctx, 10)
		s.Require().NoError(err)
		s.Require().Len(events, 2)
		s.Equal(string(audit.EventBalanceAdded), events[0].Action)
	})
}

func (s *SQLiteJournalSuite) TestAppendIsIdempotentByID() {
	id := uuid.New()
	event := audit.Event{ID: id, Action: string(audit.EventPoolFunded)}
	s.Require().NoError(s.store.Append(s.ctx, event))
	s.Require().NoError(s.store.Append(s.ctx, event))

	events, err := s.store.ListRecent(s.ctx, 10)
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *SQLiteJournalSuite) TestOutbox() {
	for range 3 {
		s.Require().NoError(s.store.Append(s.ctx, audit.Event{Action: string(audit.EventPremiumPaid)}))
	}

	pending, err := s.store.Unpublished(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(pending, 2)

	s.Require().NoError(s.store.MarkPublished(s.ctx, []uuid.UUID{pending[0].ID, pending[1].ID}))

	rest, err := s.store.Unpublished(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(rest, 1)
	s.NotEqual(pending[0].ID, rest[0].ID)
}
