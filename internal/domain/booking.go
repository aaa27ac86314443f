package domain

import (
	"slices"
	"time"
)

type BookingState string

const (
	BookingStateDraft     BookingState = "draft"
	BookingStateReserved  BookingState = "reserved"
	BookingStateActive    BookingState = "active"
	BookingStateExpired   BookingState = "expired"
	BookingStateCancelled BookingState = "cancelled"
)

// SlotHoldingStates are the states in which a booking holds a slot.
var SlotHoldingStates = []BookingState{BookingStateReserved, BookingStateActive}

func (s BookingState) HoldsSlot() bool {
	return slices.Contains(SlotHoldingStates, s)
}

func (s BookingState) Terminal() bool {
	return s == BookingStateExpired || s == BookingStateCancelled
}

type Booking struct {
	ID       string       `json:"id"`
	PlotID   string       `json:"plot_id"`
	PlotName string       `json:"plot_name"`
	Vehicle  VehicleClass `json:"vehicle_class"`
	Plan     Plan         `json:"plan"`
	// Price in the smallest currency unit, fixed when the plan is selected.
	Price int64        `json:"price"`
	State BookingState `json:"state"`
	// SlotToken is the reservation token returned by the inventory while
	// the booking holds a slot.
	SlotToken   string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ReservedAt  time.Time `json:"reserved_at,omitempty"`
	ActivatedAt time.Time `json:"activated_at,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}

// Ticket is a read-only projection of an Active or Expired booking.
// It is regenerable from the booking at any time and never persisted.
type Ticket struct {
	BookingID string       `json:"booking_id"`
	PlotName  string       `json:"plot_name"`
	Vehicle   VehicleClass `json:"vehicle_class"`
	Plan      Plan         `json:"plan"`
	Price     int64        `json:"price"`
	IssuedAt  time.Time    `json:"issued_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func (b *Booking) Ticket() (*Ticket, error) {
	if b.State != BookingStateActive && b.State != BookingStateExpired {
		return nil, ErrTicketNotAvailable
	}
	return &Ticket{
		BookingID: b.ID,
		PlotName:  b.PlotName,
		Vehicle:   b.Vehicle,
		Plan:      b.Plan,
		Price:     b.Price,
		IssuedAt:  b.ActivatedAt,
		ExpiresAt: b.ExpiresAt,
	}, nil
}
