package service

import (
	"context"

	"greatglobal/internal/claims/models"
	"greatglobal/internal/platform/tracing"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/requestcontext"
)

// AddClaim files a pending claim under the caller's account.
func (s *Service) AddClaim(ctx context.Context, caller domain.Account, amount domain.Amount) (claim *models.Claim, err error) {
	ctx, span := tracing.Start(ctx, "claims.AddClaim")
	defer func() { tracing.End(span, err) }()

	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	if err := s.requireRegisteredUser(ctx, caller); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		id, err := s.claims.NextID(txCtx, caller)
		if err != nil {
			return wrapClaimErr(err, "allocate claim id")
		}
		c, err := models.NewClaim(id, caller, amount, requestcontext.Now(txCtx))
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, dErrors.Message(err))
		}
		if err := s.claims.Create(txCtx, c); err != nil {
			return wrapClaimErr(err, "create claim")
		}
		claim = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementSubmitted()
	}
	s.emitter.Emit(ctx, audit.EventClaimSubmitted,
		"account", caller,
		"subject", "claim:"+claim.ID.String(),
		"amount", amount,
	)
	return claim, nil
}

// ApproveClaim approves or rejects a pending claim. Both outcomes are terminal.
func (s *Service) ApproveClaim(ctx context.Context, caller, user domain.Account, id domain.ClaimID, approve bool) (claim *models.Claim, err error) {
	ctx, span := tracing.Start(ctx, "claims.ApproveClaim")
	defer func() { tracing.End(span, err) }()

	if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		c, err := s.claims.Execute(txCtx, user, id,
			func(c *models.Claim) error { return c.CanDecide() },
			func(c *models.Claim) { c.ApplyDecision(approve, caller, now) },
		)
		if err != nil {
			return wrapClaimErr(err, "decide claim")
		}
		claim = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := audit.EventClaimRejected
	if approve {
		event = audit.EventClaimApproved
	}
	if s.metrics != nil {
		s.metrics.IncrementDecided(string(claim.Status))
	}
	s.emitter.Emit(ctx, event,
		"account", user,
		"actor", caller,
		"subject", "claim:"+id.String(),
		"amount", claim.Amount,
	)
	return claim, nil
}

// Fund deposits value into the pool. Any caller may fund.
func (s *Service) Fund(ctx context.Context, caller domain.Account, amount domain.Amount) (pool models.FundingPool, err error) {
	ctx, span := tracing.Start(ctx, "claims.Fund")
	defer func() { tracing.End(span, err) }()

	if caller.IsNil() {
		return models.FundingPool{}, dErrors.New(dErrors.CodeUnauthorized, "caller account is required")
	}
	if err := requirePositive(amount); err != nil {
		return models.FundingPool{}, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.pool.Execute(txCtx,
			func(*models.FundingPool) error { return nil },
			func(p *models.FundingPool) { p.Deposit(amount) },
		)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to fund pool")
		}
		pool = p
		return nil
	})
	if err != nil {
		return models.FundingPool{}, err
	}

	if s.metrics != nil {
		s.metrics.IncrementDeposits()
	}
	s.emitter.Emit(ctx, audit.EventPoolFunded,
		"account", caller,
		"subject", "pool",
		"amount", amount,
	)
	return pool, nil
}

// DisburseClaim pays an approved claim from the pool to the claimant's refund
// address. The pool debit and the claim's paid marker commit together.
func (s *Service) DisburseClaim(ctx context.Context, caller, user domain.Account, id domain.ClaimID) (claim *models.Claim, err error) {
	ctx, span := tracing.Start(ctx, "claims.DisburseClaim")
	defer func() { tracing.End(span, err) }()

	if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.claims.FindByID(txCtx, user, id)
		if err != nil {
			return wrapClaimErr(err, "load claim")
		}
		if err := c.CanDisburse(); err != nil {
			return err
		}
		payee := user
		if profile, err := s.auth.ProfileOf(txCtx, user); err == nil && !profile.RefundAddress.IsNil() {
			payee = profile.RefundAddress
		} else if err != nil && !dErrors.HasCode(err, dErrors.CodeNotFound) {
			return err
		}

		if _, err := s.pool.Execute(txCtx,
			func(p *models.FundingPool) error { return p.CanPay(c.Amount) },
			func(p *models.FundingPool) { p.ApplyPayout(c.Amount) },
		); err != nil {
			return wrapClaimErr(err, "debit pool")
		}

		now := requestcontext.Now(txCtx)
		paid, err := s.claims.Execute(txCtx, user, id,
			func(c *models.Claim) error { return c.CanDisburse() },
			func(c *models.Claim) { c.ApplyPayout(payee, now) },
		)
		if err != nil {
			return wrapClaimErr(err, "mark claim paid")
		}
		claim = paid
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementPaid()
	}
	s.emitter.Emit(ctx, audit.EventClaimPaid,
		"account", user,
		"actor", caller,
		"subject", "claim:"+id.String(),
		"amount", claim.Amount,
		"reason", "payee:"+claim.Payee.String(),
	)
	return claim, nil
}
