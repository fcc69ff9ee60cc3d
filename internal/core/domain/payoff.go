package domain

import (
	"github.com/shopspring/decimal"
)

// PayoffMode selects the debt-payoff prioritization strategy.
type PayoffMode string

const (
	// ModeSnowball pays the smallest debt first.
	ModeSnowball PayoffMode = "SNOWBALL"
	// ModeAvalanche pays the highest-interest debt first.
	ModeAvalanche PayoffMode = "AVALANCHE"
)

// DebtPayoffSettings holds the user's payoff-planner configuration. It is
// part of the persisted ledger snapshot; ShowInterest is a display flag only
// and never affects the simulation.
type DebtPayoffSettings struct {
	Mode              PayoffMode      `json:"mode"`
	MonthlyAllocation decimal.Decimal `json:"monthlyAllocation"`
	ShowInterest      bool            `json:"showInterest"`
}
