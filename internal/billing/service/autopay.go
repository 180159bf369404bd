package service

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"greatglobal/internal/billing/models"
	"greatglobal/internal/platform/tracing"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/requestcontext"
)

// RunAutoPay charges every due auto-pay subscription once. Each charge commits
// on its own; a customer who cannot cover a premium gets an autopay_failed
// event and keeps their state. Other failures stop the sweep.
func (s *Service) RunAutoPay(ctx context.Context) (report models.AutoPayReport, err error) {
	ctx, span := tracing.Start(ctx, "billing.RunAutoPay")
	defer func() { tracing.End(span, err) }()

	start := time.Now()
	now := requestcontext.Now(ctx)
	ctx = requestcontext.WithTime(ctx, now)

	accounts, err := s.customers.ListAccounts(ctx)
	if err != nil {
		return models.AutoPayReport{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list customers")
	}

	var charged, failed, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, account := range accounts {
		g.Go(func() error {
			c, err := s.customers.FindByAccount(gctx, account)
			if err != nil {
				return wrapCustomerErr(err, "load customer")
			}
			for _, id := range c.DueSubscriptions(now) {
				outcome, err := s.autoCharge(gctx, account, id, now)
				if err != nil {
					return err
				}
				switch outcome {
				case autoPayCharged:
					charged.Add(1)
				case autoPayFailed:
					failed.Add(1)
				default:
					skipped.Add(1)
				}
			}
			return nil
		})
	}
	err = g.Wait()

	report = models.AutoPayReport{
		Charged: int(charged.Load()),
		Failed:  int(failed.Load()),
		Skipped: int(skipped.Load()),
	}
	if s.metrics != nil {
		s.metrics.ObserveSweep(time.Since(start))
	}
	if err != nil {
		return report, err
	}
	s.logger.InfoContext(ctx, "auto-pay sweep complete",
		"charged", report.Charged,
		"failed", report.Failed,
		"skipped", report.Skipped,
	)
	return report, nil
}

type autoPayOutcome int

const (
	autoPaySkipped autoPayOutcome = iota
	autoPayCharged
	autoPayFailed
)

func (s *Service) autoCharge(ctx context.Context, account domain.Account, id domain.SubscriptionID, now time.Time) (autoPayOutcome, error) {
	var receipt models.Receipt
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.charge(txCtx, account, id, func(c *models.CustomerAccount) error { return c.CanAutoPay(id, now) })
		if err != nil {
			return err
		}
		receipt = r
		return nil
	})
	switch {
	case err == nil:
		s.recordPayment(ctx, receipt, "auto")
		return autoPayCharged, nil
	case dErrors.HasCode(err, dErrors.CodeInsufficientFunds):
		if s.metrics != nil {
			s.metrics.IncrementAutoPayFailures()
		}
		s.emitter.Emit(ctx, audit.EventAutoPayFailed,
			"account", account,
			"subject", "subscription:"+id.String(),
			"reason", dErrors.Message(err),
		)
		return autoPayFailed, nil
	case dErrors.HasCode(err, dErrors.CodeInvalidState):
		return autoPaySkipped, nil
	default:
		return autoPaySkipped, err
	}
}
