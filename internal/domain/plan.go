package domain

import "fmt"

type PlanKind string

const (
	PlanHourly  PlanKind = "hourly"
	PlanDaily   PlanKind = "daily"
	PlanWeekly  PlanKind = "weekly"
	PlanMonthly PlanKind = "monthly"
	PlanYearly  PlanKind = "yearly"
)

const (
	MinPlanHours = 1
	MaxPlanHours = 6
)

// Plan is a pricing/duration tier. Hours is meaningful for hourly plans only
// and must lie in [MinPlanHours, MaxPlanHours].
type Plan struct {
	Kind  PlanKind `json:"kind"`
	Hours int      `json:"hours,omitempty"`
}

func ParsePlanKind(s string) (PlanKind, error) {
	switch PlanKind(s) {
	case PlanHourly, PlanDaily, PlanWeekly, PlanMonthly, PlanYearly:
		return PlanKind(s), nil
	default:
		return "", fmt.Errorf("%w: unknown plan %q", ErrValidation, s)
	}
}

func (p Plan) String() string {
	if p.Kind == PlanHourly {
		return fmt.Sprintf("%s (%dh)", p.Kind, p.Hours)
	}
	return string(p.Kind)
}
