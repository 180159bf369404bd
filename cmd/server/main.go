package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	billinghandler "greatglobal/internal/billing/handler"
	billingmetrics "greatglobal/internal/billing/metrics"
	billingmodels "greatglobal/internal/billing/models"
	billingscheduler "greatglobal/internal/billing/scheduler"
	billingservice "greatglobal/internal/billing/service"
	billingstore "greatglobal/internal/billing/store"
	claimshandler "greatglobal/internal/claims/handler"
	claimsmetrics "greatglobal/internal/claims/metrics"
	claimsservice "greatglobal/internal/claims/service"
	claimsstore "greatglobal/internal/claims/store"
	identityhandler "greatglobal/internal/identity/handler"
	identitymetrics "greatglobal/internal/identity/metrics"
	identityservice "greatglobal/internal/identity/service"
	adminstore "greatglobal/internal/identity/store/admin"
	sessionstore "greatglobal/internal/identity/store/session"
	userstore "greatglobal/internal/identity/store/user"
	jwttoken "greatglobal/internal/jwt_token"
	packageshandler "greatglobal/internal/packages/handler"
	packagesmetrics "greatglobal/internal/packages/metrics"
	packagesservice "greatglobal/internal/packages/service"
	packagesstore "greatglobal/internal/packages/store"
	"greatglobal/internal/platform/config"
	"greatglobal/internal/platform/httpserver"
	"greatglobal/internal/platform/logger"
	platformmetrics "greatglobal/internal/platform/metrics"
	"greatglobal/internal/platform/postgres"
	platformredis "greatglobal/internal/platform/redis"
	"greatglobal/internal/platform/tracing"
	policyhandler "greatglobal/internal/policy/handler"
	policymetrics "greatglobal/internal/policy/metrics"
	policyservice "greatglobal/internal/policy/service"
	policystore "greatglobal/internal/policy/store"
	httptransport "greatglobal/internal/transport/http"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/audit/publisher"
	"greatglobal/pkg/platform/audit/worker"
	"greatglobal/pkg/platform/middleware/ratelimit"
	platformtx "greatglobal/pkg/platform/tx"
)

const serviceName = "greatglobal-ledger"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("ledger stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("ledger stopped")
}

// run wires every module and blocks until ctx is cancelled or a component fails.
func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	owner, err := domain.ParseAccount(cfg.Ledger.OwnerAccount)
	if err != nil {
		return fmt.Errorf("OWNER_ACCOUNT: %w", err)
	}

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, serviceName)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	reg := platformmetrics.NewRegistry()
	var health []httptransport.HealthCheck

	var db *sqlx.DB
	if cfg.Ledger.DatabaseURL != "" {
		db, err = postgres.Open(ctx, cfg.Ledger.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.Migrate(db); err != nil {
			return err
		}
		health = append(health, httptransport.HealthCheck{Name: "postgres", Check: db.PingContext})
		log.Info("postgres connected")
	}

	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		health = append(health, httptransport.HealthCheck{Name: "redis", Check: redisClient.Health})
		log.Info("redis connected")
	}

	journalMetrics := worker.NewMetrics(reg)
	journal, err := openJournal(ctx, cfg, log, journalMetrics)
	if err != nil {
		return err
	}
	defer journal.Close()

	pub := publisher.NewPublisher(journal.store,
		publisher.WithAsyncBuffer(cfg.Journal.Buffer),
		publisher.WithLogger(log),
		publisher.WithMetrics(journalMetrics),
	)
	defer pub.Close()

	// Identity
	var sessions identityservice.SessionStore = sessionstore.NewInMemorySessionStore()
	if redisClient != nil {
		sessions = sessionstore.NewRedisSessionStore(redisClient.Client)
	}
	identity := identityservice.New(
		userstore.NewInMemoryUserStore(),
		adminstore.NewInMemoryAdminStore(owner),
		sessions,
		identityservice.WithLogger(log),
		identityservice.WithAuditPublisher(pub),
		identityservice.WithMetrics(identitymetrics.New(reg)),
		identityservice.WithMinAge(cfg.Ledger.MinRegistrationAge),
	)

	// Policy catalog
	policyOpts := []policyservice.Option{
		policyservice.WithLogger(log),
		policyservice.WithAuditPublisher(pub),
		policyservice.WithMetrics(policymetrics.New(reg)),
	}
	var policies policyservice.Store = policystore.NewInMemoryPolicyStore()
	if db != nil {
		policies = policystore.NewPostgres(db)
		policyOpts = append(policyOpts, policyservice.WithTx(platformtx.NewSQLTx(db)))
	}
	catalog := policyservice.New(policies, identity, policyOpts...)

	// Claims
	claims := claimsservice.New(
		claimsstore.NewInMemoryClaimStore(),
		claimsstore.NewInMemoryPoolStore(),
		identity,
		claimsservice.WithLogger(log),
		claimsservice.WithAuditPublisher(pub),
		claimsservice.WithMetrics(claimsmetrics.New(reg)),
	)

	// Billing
	var roster billingservice.Roster = billingstore.NewInMemoryRoster(owner)
	if redisClient != nil {
		roster, err = billingstore.NewRedisRoster(ctx, redisClient.Client, owner)
		if err != nil {
			return err
		}
	}
	billing := billingservice.New(
		billingstore.NewInMemoryCustomerStore(),
		billingstore.NewInMemoryTreasuryStore(),
		roster,
		identity,
		catalog,
		owner,
		billingservice.WithLogger(log),
		billingservice.WithAuditPublisher(pub),
		billingservice.WithMetrics(billingmetrics.New(reg)),
		billingservice.WithInterval(billingmodels.Interval(cfg.Ledger.BillingInterval)),
	)

	// Packages
	packages := packagesservice.New(
		packagesstore.NewInMemoryPackageStore(),
		identity,
		catalog,
		packagesservice.WithLogger(log),
		packagesservice.WithAuditPublisher(pub),
		packagesservice.WithMetrics(packagesmetrics.New(reg)),
	)

	callerTokens := jwttoken.NewJWTService(cfg.Server.CallerTokenKey, cfg.Server.CallerTokenIssuer)
	router := httptransport.NewRouter(httptransport.Deps{
		Logger:  log,
		Callers: jwttoken.NewJWTServiceAdapter(callerTokens),
		Modules: []httptransport.Module{
			identityhandler.New(identity, log),
			policyhandler.New(catalog, log),
			claimshandler.New(claims, log),
			billinghandler.New(billing, log),
			packageshandler.New(packages, log),
		},
		Journal:        journal.store,
		Health:         health,
		HTTPMetrics:    platformmetrics.NewHTTP(reg),
		MetricsHandler: platformmetrics.Handler(reg),
		RateLimiter:    ratelimit.New(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, log),
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		OpsAdminToken:  cfg.Server.OpsAdminToken,
	})

	autoPay := billingscheduler.New(billing, log, cfg.Ledger.AutoPaySchedule, 0)
	if err := autoPay.Start(); err != nil {
		return err
	}
	defer func() { <-autoPay.Stop().Done() }()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(gctx, httpserver.New(cfg.Server.Addr, router), cfg.Server.ShutdownTimeout, log)
	})
	g.Go(func() error {
		return journal.relay.Run(gctx)
	})

	log.Info("ledger started",
		"addr", cfg.Server.Addr,
		"owner", owner.String(),
		"journal", cfg.Journal.Driver,
		"sink", cfg.Sink.Kind,
	)
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
