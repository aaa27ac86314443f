package service

import (
	"context"
	"fmt"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/shravanmandadapu71-sys/parkx/internal/service/ports"
)

// ReservationService is the facade the UI/API collaborators call. It
// composes the slot inventory and the booking lifecycle; the map UI reads
// FindEligiblePlots, the payment collaborator invokes Pay after its own
// confirmation.
type ReservationService struct {
	inventory ports.SlotInventory
	bookings  *BookingService
}

func NewReservationService(inventory ports.SlotInventory, bookings *BookingService) *ReservationService {
	return &ReservationService{
		inventory: inventory,
		bookings:  bookings,
	}
}

func (s *ReservationService) FindEligiblePlots(ctx context.Context, class domain.VehicleClass) ([]domain.PlotAvailability, error) {
	return s.inventory.QueryAvailable(ctx, class)
}

func (s *ReservationService) StartBooking(ctx context.Context, plotID string, class domain.VehicleClass) (*domain.Booking, error) {
	return s.bookings.CreateDraft(ctx, plotID, class)
}

func (s *ReservationService) ChoosePlan(ctx context.Context, bookingID string, plan domain.Plan) (*domain.Booking, error) {
	return s.bookings.SelectPlan(ctx, bookingID, plan)
}

// Pay confirms the external payment and returns the issued ticket.
func (s *ReservationService) Pay(ctx context.Context, bookingID string) (*domain.Ticket, error) {
	booking, err := s.bookings.ConfirmPayment(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	ticket, err := booking.Ticket()
	if err != nil {
		return nil, fmt.Errorf("project ticket: %w", err)
	}
	return ticket, nil
}

func (s *ReservationService) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookings.Cancel(ctx, bookingID)
}

func (s *ReservationService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookings.Get(ctx, bookingID)
}

func (s *ReservationService) Ticket(ctx context.Context, bookingID string) (*domain.Ticket, error) {
	return s.bookings.Ticket(ctx, bookingID)
}
