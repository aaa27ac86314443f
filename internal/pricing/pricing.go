package pricing

import (
	"fmt"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
)

// Rates holds tier prices in the smallest currency unit. Operators retune
// them through configuration; DefaultRates mirrors the launch price list.
type Rates struct {
	HourlyRate int64
	Daily      int64
	Weekly     int64
	Monthly    int64
	Yearly     int64
}

func DefaultRates() Rates {
	return Rates{
		HourlyRate: 20,
		Daily:      100,
		Weekly:     900,
		Monthly:    2500,
		Yearly:     10000,
	}
}

// Engine quotes plan prices. Pure and deterministic: the same plan always
// yields the same price.
type Engine struct {
	rates Rates
}

func New(rates Rates) *Engine {
	return &Engine{rates: rates}
}

func (e *Engine) Quote(plan domain.Plan) (int64, error) {
	switch plan.Kind {
	case domain.PlanHourly:
		if plan.Hours < domain.MinPlanHours || plan.Hours > domain.MaxPlanHours {
			return 0, fmt.Errorf("%w: got %d hours", domain.ErrInvalidDuration, plan.Hours)
		}
		return int64(plan.Hours) * e.rates.HourlyRate, nil
	case domain.PlanDaily:
		return e.rates.Daily, nil
	case domain.PlanWeekly:
		return e.rates.Weekly, nil
	case domain.PlanMonthly:
		return e.rates.Monthly, nil
	case domain.PlanYearly:
		return e.rates.Yearly, nil
	default:
		return 0, fmt.Errorf("%w: unknown plan %q", domain.ErrValidation, plan.Kind)
	}
}
