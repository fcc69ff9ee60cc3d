package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// UpdatePayoffSettingsRequest carries the payoff-planner configuration.
type UpdatePayoffSettingsRequest struct {
	Mode              *domain.PayoffMode `json:"mode" binding:"omitempty,oneof=SNOWBALL AVALANCHE"`
	MonthlyAllocation *decimal.Decimal   `json:"monthlyAllocation"`
	ShowInterest      *bool              `json:"showInterest"`
}

// NetWorthResponse returns the current aggregate plus retained history.
type NetWorthResponse struct {
	Summary domain.NetWorthSummary    `json:"summary"`
	History []domain.NetWorthSnapshot `json:"history"`
}
