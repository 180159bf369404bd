package service

import (
	"context"

	"greatglobal/internal/claims/models"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
)

// GetUnprocessedClaims returns the ids and amounts of user's pending claims.
// Only the user or an admin session holder may read them.
func (s *Service) GetUnprocessedClaims(ctx context.Context, caller, user domain.Account) ([]domain.ClaimID, []domain.Amount, error) {
	if caller != user {
		if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
			return nil, nil, err
		}
	}
	pending, err := s.claims.ListPending(ctx, user)
	if err != nil {
		return nil, nil, wrapClaimErr(err, "list claims")
	}
	ids := make([]domain.ClaimID, 0, len(pending))
	amounts := make([]domain.Amount, 0, len(pending))
	for _, c := range pending {
		ids = append(ids, c.ID)
		amounts = append(amounts, c.Amount)
	}
	return ids, amounts, nil
}

// GetAllUnprocessedClaims lists every pending claim across accounts.
func (s *Service) GetAllUnprocessedClaims(ctx context.Context, caller domain.Account) ([]models.PendingClaim, error) {
	if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	pending, err := s.claims.ListAllPending(ctx)
	if err != nil {
		return nil, wrapClaimErr(err, "list claims")
	}
	out := make([]models.PendingClaim, 0, len(pending))
	for _, c := range pending {
		out = append(out, models.PendingClaim{Account: c.Account, ID: c.ID, Amount: c.Amount})
	}
	return out, nil
}

// GetBalance returns the pool balance.
func (s *Service) GetBalance(ctx context.Context) (domain.Amount, error) {
	pool, err := s.GetPool(ctx)
	if err != nil {
		return domain.Amount{}, err
	}
	return pool.Balance, nil
}

func (s *Service) GetPool(ctx context.Context) (models.FundingPool, error) {
	pool, err := s.pool.Get(ctx)
	if err != nil {
		return models.FundingPool{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load pool")
	}
	return pool, nil
}

func (s *Service) GetClaim(ctx context.Context, user domain.Account, id domain.ClaimID) (*models.Claim, error) {
	c, err := s.claims.FindByID(ctx, user, id)
	if err != nil {
		return nil, wrapClaimErr(err, "load claim")
	}
	return c, nil
}
