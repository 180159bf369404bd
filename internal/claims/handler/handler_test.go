package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"greatglobal/internal/claims/handler/mocks"
	"greatglobal/internal/claims/models"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	"greatglobal/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

var (
	admin = domain.MustAccount("0x0000000000000000000000000000000000000001")
	alice = domain.MustAccount("0x00000000000000000000000000000000000000a1")
)

type ClaimHandlerSuite struct {
	suite.Suite
	svc    *mocks.MockService
	router chi.Router
}

func TestClaimHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClaimHandlerSuite))
}

func (s *ClaimHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.svc = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	New(s.svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
}

func (s *ClaimHandlerSuite) TestAddClaim() {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	s.Run("submits and reports pending", func() {
		s.svc.EXPECT().AddClaim(gomock.Any(), alice, domain.NewAmount(50)).Return(&models.Claim{
			ID: 0, Account: alice, Amount: domain.NewAmount(50), Status: models.StatusPending, CreatedAt: now,
		}, nil)
		req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodPost, "/claims", map[string]any{
			"amount": "50",
		}), alice)
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		s.Equal("pending", testutil.JSON(rr, "status").String())
		s.Equal("50", testutil.JSON(rr, "amount").String())
		s.False(testutil.JSON(rr, "paid_at").Exists())
	})

	s.Run("zero amount never reaches the service", func() {
		req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodPost, "/claims", map[string]any{
			"amount": "0",
		}), alice)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})

	s.Run("missing caller is unauthorized", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/claims", map[string]any{
			"amount": "1",
		}))
		testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	})
}

func (s *ClaimHandlerSuite) TestDecision() {
	s.Run("reject", func() {
		s.svc.EXPECT().ApproveClaim(gomock.Any(), admin, alice, domain.ClaimID(2), false).Return(&models.Claim{
			ID: 2, Account: alice, Amount: domain.NewAmount(5), Status: models.StatusRejected,
			DecidedBy: admin, CreatedAt: time.Now(), DecidedAt: time.Now(),
		}, nil)
		req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodPost, "/claims/"+alice.String()+"/2/decision",
			map[string]any{"approve": false}), admin)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.Equal("rejected", testutil.JSON(rr, "status").String())
		s.Equal(admin.String(), testutil.JSON(rr, "decided_by").String())
	})

	s.Run("approve flag is required", func() {
		req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodPost, "/claims/"+alice.String()+"/2/decision",
			map[string]any{}), admin)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})

	s.Run("already decided is a conflict", func() {
		s.svc.EXPECT().ApproveClaim(gomock.Any(), admin, alice, domain.ClaimID(0), true).
			Return(nil, dErrors.New(dErrors.CodeInvalidState, "claim already decided"))
		req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodPost, "/claims/"+alice.String()+"/0/decision",
			map[string]any{"approve": true}), admin)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, string(dErrors.CodeInvalidState))
	})

	s.Run("malformed account in path", func() {
		req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodPost, "/claims/bob/0/decision",
			map[string]any{"approve": true}), admin)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeInvalidInput))
	})
}

func (s *ClaimHandlerSuite) TestDisburseInsufficientFunds() {
	s.svc.EXPECT().DisburseClaim(gomock.Any(), admin, alice, domain.ClaimID(0)).
		Return(nil, dErrors.New(dErrors.CodeInsufficientFunds, "insufficient funds"))
	req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodPost, "/claims/"+alice.String()+"/0/disburse", nil), admin)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, string(dErrors.CodeInsufficientFunds))
}

func (s *ClaimHandlerSuite) TestPool() {
	s.Run("fund", func() {
		s.svc.EXPECT().Fund(gomock.Any(), admin, domain.NewAmount(100)).Return(models.FundingPool{
			Balance: domain.NewAmount(100), TotalFunded: domain.NewAmount(100),
		}, nil)
		req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodPost, "/claims/pool/fund",
			map[string]any{"amount": "100"}), admin)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.Equal("100", testutil.JSON(rr, "balance").String())
		s.Equal("0", testutil.JSON(rr, "total_paid_out").String())
	})

	s.Run("read", func() {
		s.svc.EXPECT().GetPool(gomock.Any()).Return(models.FundingPool{}, nil)
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/claims/pool", nil))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.Equal("0", testutil.JSON(rr, "balance").String())
	})
}

func (s *ClaimHandlerSuite) TestPending() {
	s.Run("parallel lists for one user", func() {
		s.svc.EXPECT().GetUnprocessedClaims(gomock.Any(), alice, alice).Return(
			[]domain.ClaimID{0, 2},
			[]domain.Amount{domain.NewAmount(10), domain.NewAmount(30)},
			nil,
		)
		req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodGet, "/claims/"+alice.String()+"/pending", nil), alice)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.Equal("[0,2]", testutil.JSON(rr, "ids").Raw)
		s.Equal(`["10","30"]`, testutil.JSON(rr, "amounts").Raw)
	})

	s.Run("all pending is admin only", func() {
		s.svc.EXPECT().GetAllUnprocessedClaims(gomock.Any(), alice).
			Return(nil, dErrors.New(dErrors.CodeForbidden, "admin session required"))
		req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodGet, "/claims/pending", nil), alice)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, string(dErrors.CodeForbidden))
	})

	s.Run("all pending across users", func() {
		s.svc.EXPECT().GetAllUnprocessedClaims(gomock.Any(), admin).Return([]models.PendingClaim{
			{Account: alice, ID: 1, Amount: domain.NewAmount(7)},
		}, nil)
		req := testutil.WithCaller(testutil.NewJSONRequest(s.T(), http.MethodGet, "/claims/pending", nil), admin)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.Equal(alice.String(), testutil.JSON(rr, "claims.0.account").String())
		s.Equal("7", testutil.JSON(rr, "claims.0.amount").String())
	})
}

func (s *ClaimHandlerSuite) TestGetClaimNotFound() {
	s.svc.EXPECT().GetClaim(gomock.Any(), alice, domain.ClaimID(4)).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "claim not found"))
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/claims/"+alice.String()+"/4", nil))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
}
