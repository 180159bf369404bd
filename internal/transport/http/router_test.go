package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"

	jwttoken "greatglobal/internal/jwt_token"
	"greatglobal/pkg/domain"
	audit "greatglobal/pkg/platform/audit"
	auditmemory "greatglobal/pkg/platform/audit/store/memory"
	"greatglobal/pkg/platform/httputil"
	"greatglobal/pkg/platform/middleware/ratelimit"
	"greatglobal/pkg/requestcontext"
)

const opsToken = "ops-secret"

var alice = domain.MustAccount("0x00000000000000000000000000000000000000a1")

// whoami echoes the caller bound by the token middleware.
type whoami struct{}

func (whoami) Register(r chi.Router) {
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"caller": requestcontext.Caller(r.Context()).String(),
		})
	})
}

type RouterSuite struct {
	suite.Suite
	tokens  *jwttoken.JWTService
	journal *auditmemory.InMemoryStore
	router  http.Handler
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.tokens = jwttoken.NewJWTService("test-key", "greatglobal")
	s.journal = auditmemory.NewInMemoryStore()
	s.router = NewRouter(Deps{
		Logger:        logger,
		Callers:       jwttoken.NewJWTServiceAdapter(s.tokens),
		Modules:       []Module{whoami{}},
		Journal:       s.journal,
		RateLimiter:   ratelimit.New(1, 1, logger),
		OpsAdminToken: opsToken,
		Health: []HealthCheck{
			{Name: "redis", Check: func(context.Context) error { return nil }},
		},
	})
}

func (s *RouterSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) bearer(account domain.Account) string {
	token, err := s.tokens.GenerateCallerToken(account, time.Minute)
	s.Require().NoError(err)
	return "Bearer " + token
}

func (s *RouterSuite) TestHealthIsOpen() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", gjson.Get(rec.Body.String(), "status").String())
	s.Equal("up", gjson.Get(rec.Body.String(), "checks.redis").String())
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestHealthReportsFailingDependency() {
	router := NewRouter(Deps{
		Callers: jwttoken.NewJWTServiceAdapter(s.tokens),
		Health: []HealthCheck{
			{Name: "postgres", Check: func(context.Context) error { return errors.New("connection refused") }},
		},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("degraded", gjson.Get(rec.Body.String(), "status").String())
	s.Equal("down", gjson.Get(rec.Body.String(), "checks.postgres").String())
}

func (s *RouterSuite) TestModuleRoutesRequireCallerToken() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	s.Equal(http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	s.Equal(http.StatusUnauthorized, s.do(req).Code)
}

func (s *RouterSuite) TestCallerIsBoundFromToken() {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", s.bearer(alice))

	rec := s.do(req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(alice.String(), gjson.Get(rec.Body.String(), "caller").String())
}

func (s *RouterSuite) TestRateLimitPerCaller() {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", s.bearer(alice))
	s.Equal(http.StatusOK, s.do(req).Code)

	rec := s.do(req)
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.NotEmpty(rec.Header().Get("Retry-After"))
}

func (s *RouterSuite) TestOpsEventsRequireAdminToken() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/ops/events", nil))
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *RouterSuite) TestOpsEventsListJournal() {
	ctx := context.Background()
	s.Require().NoError(s.journal.Append(ctx, audit.Event{
		Account:   alice,
		Action:    string(audit.EventUserRegistered),
		Timestamp: time.Unix(1_700_000_000, 0),
	}))
	s.Require().NoError(s.journal.Append(ctx, audit.Event{
		Account:   domain.MustAccount("0x00000000000000000000000000000000000000b2"),
		Action:    string(audit.EventClaimSubmitted),
		Amount:    "10",
		Timestamp: time.Unix(1_700_000_100, 0),
	}))

	req := httptest.NewRequest(http.MethodGet, "/ops/events?limit=1", nil)
	req.Header.Set("X-Admin-Token", opsToken)
	rec := s.do(req)
	s.Require().Equal(http.StatusOK, rec.Code)
	events := gjson.Get(rec.Body.String(), "events").Array()
	s.Require().Len(events, 1)
	s.Equal("claim_submitted", events[0].Get("action").String())

	req = httptest.NewRequest(http.MethodGet, "/ops/events/"+alice.String(), nil)
	req.Header.Set("X-Admin-Token", opsToken)
	rec = s.do(req)
	s.Require().Equal(http.StatusOK, rec.Code)
	events = gjson.Get(rec.Body.String(), "events").Array()
	s.Require().Len(events, 1)
	s.Equal("user_registered", events[0].Get("action").String())
	s.Equal(int64(1_700_000_000), events[0].Get("occurred_at").Int())
}

func (s *RouterSuite) TestOpsEventsRejectsBadLimit() {
	req := httptest.NewRequest(http.MethodGet, "/ops/events?limit=zero", nil)
	req.Header.Set("X-Admin-Token", opsToken)

	rec := s.do(req)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("bad_request", gjson.Get(rec.Body.String(), "error").String())
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}
