// Package payoff projects month-by-month debt amortization under the
// snowball and avalanche strategies. The simulation is pure and read-only:
// it never mutates ledger state, and its loop is bounded so it is safe to
// re-run synchronously on every relevant input change.
//
// Balances are simulated in float64 and every zero comparison uses a 0.01
// epsilon. The epsilon absorbs floating-point drift from compounding interest
// over up to 600 iterations; do not replace it with an exact comparison.
package payoff

import (
	"math"
	"sort"
	"time"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

const (
	// maxMonths caps the simulation at 50 years so it terminates even for
	// degenerate inputs (e.g. interest outgrowing the allocation).
	maxMonths = 600

	epsilon = 0.01
)

// Debt is the simulator's view of one debt account. Balance and
// StartingBalance are positive magnitudes.
type Debt struct {
	ID              string
	Name            string
	Balance         float64
	MinimumPayment  float64
	AnnualRate      float64
	StartingBalance float64
}

// DebtProjection is the simulated outcome for one debt, in priority order.
type DebtProjection struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	PayoffDate     *time.Time `json:"payoffDate"` // nil when not reached within the cap
	MonthsToPayoff int        `json:"monthsToPayoff"`
}

// Plan is the simulator output.
type Plan struct {
	Mode             domain.PayoffMode `json:"mode"`
	Insufficient     bool              `json:"insufficient"` // allocation below combined minimums; no simulation ran
	TotalMinimums    float64           `json:"totalMinimums"`
	Debts            []DebtProjection  `json:"debts"`
	TargetDebtID     string            `json:"targetDebtID,omitempty"`
	TargetPayoffDate *time.Time        `json:"targetPayoffDate,omitempty"`
	Progress         float64           `json:"progress"` // snowball: target vs its starting balance; avalanche: aggregate
	DebtFreeDate     *time.Time        `json:"debtFreeDate,omitempty"`
}

// Simulate runs the amortization projection from now. Priority order is
// fixed at invocation: snowball sorts ascending by current balance,
// avalanche descending by annual rate; ties keep input order. Each simulated
// month applies interest first, then minimum payments in priority order,
// then the leftover budget to the first debt still carrying a balance.
func Simulate(debts []Debt, settings domain.DebtPayoffSettings, now time.Time) Plan {
	ordered := make([]Debt, len(debts))
	copy(ordered, debts)
	if settings.Mode == domain.ModeAvalanche {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].AnnualRate > ordered[j].AnnualRate
		})
	} else {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance < ordered[j].Balance
		})
	}

	plan := Plan{Mode: settings.Mode}
	if len(ordered) == 0 {
		plan.Debts = []DebtProjection{}
		return plan
	}

	allocation, _ := settings.MonthlyAllocation.Float64()
	for _, d := range ordered {
		if d.Balance > epsilon {
			plan.TotalMinimums += d.MinimumPayment
		}
	}

	if allocation <= 0 || allocation < plan.TotalMinimums {
		// Not enough to run the schedule: report the provisional target and
		// a best-effort progress fraction from current vs starting balances.
		plan.Insufficient = true
		plan.Debts = unreachedProjections(ordered)
		target := ordered[0]
		plan.TargetDebtID = target.ID
		if settings.Mode == domain.ModeAvalanche {
			plan.Progress = aggregateProgress(ordered)
		} else {
			plan.Progress = debtProgress(target)
		}
		return plan
	}

	balances := make([]float64, len(ordered))
	dates := make([]*time.Time, len(ordered))
	months := make([]int, len(ordered))
	for i, d := range ordered {
		balances[i] = d.Balance
		if d.Balance <= epsilon {
			// Already paid off before the projection starts.
			balances[i] = 0
			t := now
			dates[i] = &t
		}
	}

	stamp := func(i, month int) {
		balances[i] = 0
		if dates[i] == nil {
			t := now.AddDate(0, month, 0)
			dates[i] = &t
			months[i] = month
		}
	}

	for month := 1; month <= maxMonths; month++ {
		if !anyRemaining(balances) {
			break
		}

		for i := range balances {
			if balances[i] > 0 {
				balances[i] += balances[i] * (ordered[i].AnnualRate / 12)
			}
		}

		budget := allocation
		for i := range balances {
			if balances[i] <= 0 {
				continue
			}
			pay := math.Min(balances[i], ordered[i].MinimumPayment)
			balances[i] -= pay
			budget -= pay
			if balances[i] <= epsilon {
				stamp(i, month)
			}
		}

		if budget > 0 {
			for i := range balances {
				if balances[i] > epsilon {
					balances[i] -= math.Min(balances[i], budget)
					if balances[i] <= epsilon {
						stamp(i, month)
					}
					break
				}
			}
		}
	}

	plan.Debts = make([]DebtProjection, len(ordered))
	for i, d := range ordered {
		plan.Debts[i] = DebtProjection{
			ID:             d.ID,
			Name:           d.Name,
			PayoffDate:     dates[i],
			MonthsToPayoff: months[i],
		}
	}

	// Next target: the first debt in priority order still unpaid today.
	for i, d := range ordered {
		if d.Balance > epsilon {
			plan.TargetDebtID = d.ID
			plan.TargetPayoffDate = dates[i]
			break
		}
	}
	if settings.Mode == domain.ModeAvalanche {
		plan.Progress = aggregateProgress(ordered)
	} else {
		for _, d := range ordered {
			if d.Balance > epsilon {
				plan.Progress = debtProgress(d)
				break
			}
		}
	}
	plan.DebtFreeDate = latestDate(dates)
	return plan
}

func anyRemaining(balances []float64) bool {
	for _, b := range balances {
		if b > epsilon {
			return true
		}
	}
	return false
}

// debtProgress is the fraction of one debt's starting balance already paid
// off, clamped to [0, 1].
func debtProgress(d Debt) float64 {
	if d.StartingBalance <= 0 {
		if d.Balance <= epsilon {
			return 1
		}
		return 0
	}
	return clamp01(1 - d.Balance/d.StartingBalance)
}

// aggregateProgress is the paid-off fraction across all debts combined.
func aggregateProgress(debts []Debt) float64 {
	var remaining, starting float64
	for _, d := range debts {
		remaining += d.Balance
		starting += d.StartingBalance
	}
	if starting <= 0 {
		if remaining <= epsilon {
			return 1
		}
		return 0
	}
	return clamp01(1 - remaining/starting)
}

// latestDate is the debt-free date: the maximum of the individual payoff
// dates, or nil when any debt never pays off within the cap.
func latestDate(dates []*time.Time) *time.Time {
	var latest *time.Time
	for _, d := range dates {
		if d == nil {
			return nil
		}
		if latest == nil || d.After(*latest) {
			latest = d
		}
	}
	return latest
}

func unreachedProjections(debts []Debt) []DebtProjection {
	out := make([]DebtProjection, len(debts))
	for i, d := range debts {
		out[i] = DebtProjection{ID: d.ID, Name: d.Name}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
