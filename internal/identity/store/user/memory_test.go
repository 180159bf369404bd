package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
)

type UserStoreSuite struct {
	suite.Suite
	store *InMemoryUserStore
	ctx   context.Context
}

func TestUserStoreSuite(t *testing.T) {
	suite.Run(t, new(UserStoreSuite))
}

func (s *UserStoreSuite) SetupTest() {
	s.store = NewInMemoryUserStore()
	s.ctx = context.Background()
}

func (s *UserStoreSuite) newProfile(account, name, email string) *models.UserProfile {
	p, err := models.NewUserProfile(domain.MustAccount(account), name, email, 30, models.DefaultMinAge, []byte("hash"), "", time.Now())
	s.Require().NoError(err)
	return p
}

func (s *UserStoreSuite) TestCreationAndLookups() {
	p := s.newProfile("0x00000000000000000000000000000000000000a1", "Ada Lovelace", "ada@example.com")
	s.Require().NoError(s.store.Create(s.ctx, p))

	s.Run("finds by account", func() {
		found, err := s.store.FindByAccount(s.ctx, p.Account)
		s.Require().NoError(err)
		s.Equal("ada@example.com", found.Email)
	})

	s.Run("finds by email case-insensitively", func() {
		found, err := s.store.FindByEmail(s.ctx, "ADA@Example.com")
		s.Require().NoError(err)
		s.Equal(p.Account, found.Account)
	})

	s.Run("finds by case-folded name", func() {
		found, err := s.store.FindByName(s.ctx, "ada LOVELACE")
		s.Require().NoError(err)
		s.Equal(p.Account, found.Account)
	})

	s.Run("unknown identifiers are ErrNotFound", func() {
		_, err := s.store.FindByEmail(s.ctx, "nobody@example.com")
		s.ErrorIs(err, sentinel.ErrNotFound)
		_, err = s.store.FindByName(s.ctx, "nobody")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returned profiles are copies", func() {
		found, err := s.store.FindByAccount(s.ctx, p.Account)
		s.Require().NoError(err)
		found.PasswordHash[0] = 'X'
		again, err := s.store.FindByAccount(s.ctx, p.Account)
		s.Require().NoError(err)
		s.Equal(byte('h'), again.PasswordHash[0])
	})
}

func (s *UserStoreSuite) TestUniqueness() {
	first := s.newProfile("0x00000000000000000000000000000000000000a1", "Ada", "ada@example.com")
	s.Require().NoError(s.store.Create(s.ctx, first))

	s.Run("duplicate email is ErrAlreadyUsed", func() {
		dup := s.newProfile("0x00000000000000000000000000000000000000a2", "Other", "ADA@example.com")
		s.ErrorIs(s.store.Create(s.ctx, dup), sentinel.ErrAlreadyUsed)
	})

	s.Run("duplicate account is ErrConflict", func() {
		dup := s.newProfile("0x00000000000000000000000000000000000000a1", "Ada", "ada2@example.com")
		s.ErrorIs(s.store.Create(s.ctx, dup), sentinel.ErrConflict)
	})

	s.Run("duplicate name keeps earliest registrant in name index", func() {
		twin := s.newProfile("0x00000000000000000000000000000000000000a3", "ada", "twin@example.com")
		s.Require().NoError(s.store.Create(s.ctx, twin))
		found, err := s.store.FindByName(s.ctx, "Ada")
		s.Require().NoError(err)
		s.Equal(first.Account, found.Account)
	})

	s.Run("registration order is preserved", func() {
		accounts, err := s.store.ListAccounts(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(accounts, 2)
		s.Equal(first.Account, accounts[0])
	})
}

func (s *UserStoreSuite) TestDelete() {
	first := s.newProfile("0x00000000000000000000000000000000000000a1", "Ada", "ada@example.com")
	twin := s.newProfile("0x00000000000000000000000000000000000000a2", "ADA", "twin@example.com")
	s.Require().NoError(s.store.Create(s.ctx, first))
	s.Require().NoError(s.store.Create(s.ctx, twin))

	s.Require().NoError(s.store.Delete(s.ctx, first.Account))

	_, err := s.store.FindByAccount(s.ctx, first.Account)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.FindByEmail(s.ctx, "ada@example.com")
	s.ErrorIs(err, sentinel.ErrNotFound)

	found, err := s.store.FindByName(s.ctx, "ada")
	s.Require().NoError(err)
	s.Equal(twin.Account, found.Account)

	accounts, err := s.store.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.Account{twin.Account}, accounts)

	s.Require().NoError(s.store.Create(s.ctx, first))
	s.ErrorIs(s.store.Delete(s.ctx, domain.MustAccount("0x00000000000000000000000000000000000000ff")), sentinel.ErrNotFound)
}

func (s *UserStoreSuite) TestExecute() {
	p := s.newProfile("0x00000000000000000000000000000000000000a1", "Ada", "ada@example.com")
	s.Require().NoError(s.store.Create(s.ctx, p))

	s.Run("validate failure leaves profile unchanged", func() {
		_, err := s.store.Execute(s.ctx, p.Account,
			func(*models.UserProfile) error { return sentinel.ErrInvalidState },
			func(u *models.UserProfile) { u.PasswordHash = []byte("new") },
		)
		s.ErrorIs(err, sentinel.ErrInvalidState)
		found, _ := s.store.FindByAccount(s.ctx, p.Account)
		s.Equal([]byte("hash"), found.PasswordHash)
	})

	s.Run("mutate applies", func() {
		updated, err := s.store.Execute(s.ctx, p.Account,
			func(*models.UserProfile) error { return nil },
			func(u *models.UserProfile) { u.ApplyPasswordReset([]byte("new"), time.Now()) },
		)
		s.Require().NoError(err)
		s.Equal([]byte("new"), updated.PasswordHash)
	})

	s.Run("unknown account", func() {
		_, err := s.store.Execute(s.ctx, domain.MustAccount("0x00000000000000000000000000000000000000ff"),
			func(*models.UserProfile) error { return nil },
			func(*models.UserProfile) {},
		)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}
