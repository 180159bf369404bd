package httptransport_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"golang.org/x/crypto/bcrypt"

	billinghandler "greatglobal/internal/billing/handler"
	billingservice "greatglobal/internal/billing/service"
	billingstore "greatglobal/internal/billing/store"
	claimshandler "greatglobal/internal/claims/handler"
	claimsservice "greatglobal/internal/claims/service"
	claimsstore "greatglobal/internal/claims/store"
	identityhandler "greatglobal/internal/identity/handler"
	identityservice "greatglobal/internal/identity/service"
	adminstore "greatglobal/internal/identity/store/admin"
	sessionstore "greatglobal/internal/identity/store/session"
	userstore "greatglobal/internal/identity/store/user"
	jwttoken "greatglobal/internal/jwt_token"
	packageshandler "greatglobal/internal/packages/handler"
	packagesservice "greatglobal/internal/packages/service"
	packagesstore "greatglobal/internal/packages/store"
	policyhandler "greatglobal/internal/policy/handler"
	policyservice "greatglobal/internal/policy/service"
	policystore "greatglobal/internal/policy/store"
	httptransport "greatglobal/internal/transport/http"
	"greatglobal/pkg/domain"
	auditmemory "greatglobal/pkg/platform/audit/store/memory"
	"greatglobal/pkg/platform/audit/publisher"
)

var (
	owner = domain.MustAccount("0x0000000000000000000000000000000000000001")
	user  = domain.MustAccount("0x00000000000000000000000000000000000000a1")
)

// LedgerScenarioSuite drives the whole ledger through HTTP with in-memory stores.
type LedgerScenarioSuite struct {
	suite.Suite
	tokens  *jwttoken.JWTService
	journal *auditmemory.InMemoryStore
	server  *httptest.Server
}

func (s *LedgerScenarioSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.tokens = jwttoken.NewJWTService("scenario-key", "greatglobal")
	s.journal = auditmemory.NewInMemoryStore()
	pub := publisher.NewPublisher(s.journal, publisher.WithLogger(logger))

	identity := identityservice.New(
		userstore.NewInMemoryUserStore(),
		adminstore.NewInMemoryAdminStore(owner),
		sessionstore.NewInMemorySessionStore(),
		identityservice.WithLogger(logger),
		identityservice.WithAuditPublisher(pub),
		identityservice.WithBcryptCost(bcrypt.MinCost),
	)
	catalog := policyservice.New(policystore.NewInMemoryPolicyStore(), identity,
		policyservice.WithLogger(logger), policyservice.WithAuditPublisher(pub))
	claims := claimsservice.New(claimsstore.NewInMemoryClaimStore(), claimsstore.NewInMemoryPoolStore(), identity,
		claimsservice.WithLogger(logger), claimsservice.WithAuditPublisher(pub))
	billing := billingservice.New(
		billingstore.NewInMemoryCustomerStore(),
		billingstore.NewInMemoryTreasuryStore(),
		billingstore.NewInMemoryRoster(owner),
		identity, catalog, owner,
		billingservice.WithLogger(logger), billingservice.WithAuditPublisher(pub),
	)
	packages := packagesservice.New(packagesstore.NewInMemoryPackageStore(), identity, catalog,
		packagesservice.WithLogger(logger), packagesservice.WithAuditPublisher(pub))

	s.server = httptest.NewServer(httptransport.NewRouter(httptransport.Deps{
		Logger:  logger,
		Callers: jwttoken.NewJWTServiceAdapter(s.tokens),
		Modules: []httptransport.Module{
			identityhandler.New(identity, logger),
			policyhandler.New(catalog, logger),
			claimshandler.New(claims, logger),
			billinghandler.New(billing, logger),
			packageshandler.New(packages, logger),
		},
		Journal: s.journal,
	}))
}

func (s *LedgerScenarioSuite) TearDownTest() {
	s.server.Close()
}

func (s *LedgerScenarioSuite) call(as domain.Account, method, path, body string) (int, string) {
	token, err := s.tokens.GenerateCallerToken(as, time.Minute)
	s.Require().NoError(err)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(raw)
}

func (s *LedgerScenarioSuite) mustCall(as domain.Account, method, path, body string, want int) string {
	status, resp := s.call(as, method, path, body)
	s.Require().Equal(want, status, "%s %s: %s", method, path, resp)
	return resp
}

// setup registers the user and has the owner sign in as admin and publish a policy.
func (s *LedgerScenarioSuite) setup() int64 {
	s.mustCall(user, http.MethodPost, "/identity/register",
		`{"name":"Ada","email":"a@b.com","age":25,"password":"correct-horse"}`, http.StatusCreated)
	s.mustCall(owner, http.MethodPost, "/identity/admin/sign-in",
		fmt.Sprintf(`{"address":%q}`, owner.String()), http.StatusOK)
	body := s.mustCall(owner, http.MethodPost, "/policies",
		`{"name":"Basic","premium":"100","coverage_amount":"1000","age_limit":18,"active":true}`, http.StatusCreated)
	return gjson.Get(body, "id").Int()
}

func (s *LedgerScenarioSuite) TestApprovedInsuranceKeepsPayDate() {
	policyID := s.setup()
	payDate := time.Now().Add(24 * time.Hour).Unix()

	s.mustCall(user, http.MethodPost, "/billing/customers", "", http.StatusOK)
	s.mustCall(owner, http.MethodPost, "/billing/customers/"+user.String()+"/subscriptions",
		fmt.Sprintf(`{"policy_id":%d,"pay_amount":"100","pay_date":%d}`, policyID, payDate), http.StatusCreated)

	body := s.mustCall(owner, http.MethodGet, "/billing/customers/"+user.String()+"/subscriptions/0/pay-date", "", http.StatusOK)
	s.Equal(payDate, gjson.Get(body, "pay_date").Int())
}

func (s *LedgerScenarioSuite) TestPackageSubscriptionApproval() {
	policyID := s.setup()
	path := fmt.Sprintf("/packages/%d", policyID)

	s.mustCall(user, http.MethodPost, path+"/subscribe", "", http.StatusCreated)
	body := s.mustCall(user, http.MethodGet, "/packages/mine", "", http.StatusOK)
	s.Len(gjson.Get(body, "pending").Array(), 1)
	s.Empty(gjson.Get(body, "approved").Array())

	s.mustCall(owner, http.MethodPost, path+"/approve", `{"email":"A@B.com"}`, http.StatusOK)
	body = s.mustCall(user, http.MethodGet, "/packages/mine", "", http.StatusOK)
	s.Len(gjson.Get(body, "approved").Array(), 1)
	s.Empty(gjson.Get(body, "pending").Array())
}

func (s *LedgerScenarioSuite) TestRejectedClaimLeavesNothingPending() {
	s.setup()
	pending := "/claims/" + user.String() + "/pending"

	body := s.mustCall(user, http.MethodPost, "/claims", `{"amount":"50"}`, http.StatusCreated)
	claimID := gjson.Get(body, "id").Int()

	body = s.mustCall(user, http.MethodGet, pending, "", http.StatusOK)
	s.Equal([]int64{claimID}, int64s(gjson.Get(body, "ids")))
	s.Equal("50", gjson.Get(body, "amounts.0").String())

	s.mustCall(owner, http.MethodPost, fmt.Sprintf("/claims/%s/%d/decision", user, claimID), `{"approve":false}`, http.StatusOK)
	body = s.mustCall(user, http.MethodGet, pending, "", http.StatusOK)
	s.Empty(gjson.Get(body, "ids").Array())
	s.Empty(gjson.Get(body, "amounts").Array())
}

func (s *LedgerScenarioSuite) TestCommandsRequireRoles() {
	s.setup()

	status, body := s.call(user, http.MethodPost, "/policies",
		`{"name":"Rogue","premium":"1","coverage_amount":"1","age_limit":18,"active":true}`)
	s.Equal(http.StatusForbidden, status)
	s.Equal("forbidden", gjson.Get(body, "error").String())

	status, _ = s.call(user, http.MethodGet, "/claims/pending", "")
	s.Equal(http.StatusForbidden, status)
}

func (s *LedgerScenarioSuite) TestManualPayFlow() {
	policyID := s.setup()

	s.mustCall(user, http.MethodPost, "/billing/customers", "", http.StatusOK)
	s.mustCall(user, http.MethodPost, "/billing/customers/me/deposits", `{"amount":"100"}`, http.StatusOK)
	s.mustCall(owner, http.MethodPost, "/billing/customers/"+user.String()+"/subscriptions",
		fmt.Sprintf(`{"policy_id":%d,"pay_amount":"100","pay_date":%d}`, policyID, time.Now().Unix()), http.StatusCreated)

	body := s.mustCall(user, http.MethodPost, "/billing/subscriptions/0/payments", "", http.StatusOK)
	s.Equal("0", gjson.Get(body, "balance").String())
	s.Greater(gjson.Get(body, "next_pay_date").Int(), time.Now().Unix())

	treasury := s.mustCall(owner, http.MethodGet, "/billing/treasury", "", http.StatusOK)
	s.Equal("100", gjson.Get(treasury, "premiums_collected").String())

	status, resp := s.call(user, http.MethodPost, "/billing/subscriptions/0/payments", "")
	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal("insufficient_funds", gjson.Get(resp, "error").String())
}

func int64s(r gjson.Result) []int64 {
	var out []int64
	for _, v := range r.Array() {
		out = append(out, v.Int())
	}
	return out
}

func TestLedgerScenarioSuite(t *testing.T) {
	suite.Run(t, new(LedgerScenarioSuite))
}
