package services

import (
	"context"

	"github.com/sameoldmason/finance-web-sub000/internal/core/payoff"
)

// PayoffSvcFacade produces the debt amortization projection for a profile's
// current debt accounts and payoff settings. Read-only; the plan is derived
// state and safe to recompute on demand.
type PayoffSvcFacade interface {
	Plan(ctx context.Context, profileID string) (*payoff.Plan, error)
}
