package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/shravanmandadapu71-sys/parkx/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// PlanDurations maps fixed plan tiers to their parking duration. Hourly
// plans derive their duration from the selected hours.
type PlanDurations struct {
	Daily   time.Duration
	Weekly  time.Duration
	Monthly time.Duration
	Yearly  time.Duration
}

func DefaultPlanDurations() PlanDurations {
	return PlanDurations{
		Daily:   24 * time.Hour,
		Weekly:  7 * 24 * time.Hour,
		Monthly: 30 * 24 * time.Hour,
		Yearly:  365 * 24 * time.Hour,
	}
}

type BookingConfig struct {
	// GracePeriod bounds how long a Reserved booking may hold a slot
	// without payment before the sweep auto-cancels it.
	GracePeriod time.Duration
	// Retention keeps terminal bookings readable before they are pruned
	// from the live store (the archive keeps them forever).
	Retention time.Duration
	Durations PlanDurations
}

// SweepResult reports what one expiry sweep did.
type SweepResult struct {
	Expired   []*domain.Booking
	Cancelled []*domain.Booking
}

// BookingService owns the booking state machine:
//
//	Draft -> Reserved -> Active -> (Expired | Cancelled)
//	Draft, Reserved   -> Cancelled
//
// Transitions on one booking are serialized by the entry's mutex; bookings
// transition independently of each other.
type BookingService struct {
	inventory ports.SlotInventory
	pricer    ports.Pricer
	notifier  ports.Notifier
	archive   ports.Archive
	logger    logger.Logger
	cfg       BookingConfig

	mu       sync.RWMutex
	bookings map[string]*bookingEntry

	now func() time.Time
}

type bookingEntry struct {
	mu      sync.Mutex
	booking domain.Booking
}

func NewBookingService(
	inventory ports.SlotInventory,
	pricer ports.Pricer,
	notifier ports.Notifier,
	archive ports.Archive,
	cfg BookingConfig,
	log logger.Logger,
) *BookingService {
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = 5 * time.Minute
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 24 * time.Hour
	}
	if cfg.Durations == (PlanDurations{}) {
		cfg.Durations = DefaultPlanDurations()
	}

	return &BookingService{
		inventory: inventory,
		pricer:    pricer,
		notifier:  notifier,
		archive:   archive,
		logger:    log,
		cfg:       cfg,
		bookings:  make(map[string]*bookingEntry),
		now:       time.Now,
	}
}

// CreateDraft starts a booking for a plot and vehicle class. No slot is
// held and no price fixed yet.
func (s *BookingService) CreateDraft(ctx context.Context, plotID string, class domain.VehicleClass) (*domain.Booking, error) {
	if _, err := domain.ParseVehicleClass(string(class)); err != nil {
		return nil, err
	}

	plot, err := s.inventory.GetPlot(ctx, plotID)
	if err != nil {
		return nil, fmt.Errorf("check plot: %w", err)
	}
	if plot.Retired {
		return nil, domain.ErrPlotRetired
	}

	now := s.now().UTC()
	booking := domain.Booking{
		ID:        uuid.New().String(),
		PlotID:    plot.ID,
		PlotName:  plot.Name,
		Vehicle:   class,
		State:     domain.BookingStateDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.bookings[booking.ID] = &bookingEntry{booking: booking}
	s.mu.Unlock()

	s.logger.Info("booking draft created",
		logger.String("booking_id", booking.ID),
		logger.String("plot_id", plot.ID),
		logger.String("vehicle_class", string(class)),
	)

	cp := booking
	return &cp, nil
}

// SelectPlan fixes the price and claims a slot, moving Draft to Reserved.
// On quote or reservation failure the booking stays in Draft and nothing
// is charged.
func (s *BookingService) SelectPlan(ctx context.Context, bookingID string, plan domain.Plan) (*domain.Booking, error) {
	entry, err := s.get(bookingID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	b := &entry.booking
	if b.State != domain.BookingStateDraft {
		return nil, fmt.Errorf("%w: select plan from %s", domain.ErrInvalidTransition, b.State)
	}

	price, err := s.pricer.Quote(plan)
	if err != nil {
		return nil, fmt.Errorf("quote plan: %w", err)
	}

	token, err := s.inventory.Reserve(ctx, b.PlotID, b.Vehicle)
	if err != nil {
		return nil, fmt.Errorf("reserve slot: %w", err)
	}

	now := s.now().UTC()
	b.Plan = plan
	b.Price = price
	b.SlotToken = token
	b.State = domain.BookingStateReserved
	b.ReservedAt = now
	b.UpdatedAt = now

	s.logger.Info("booking reserved",
		logger.String("booking_id", b.ID),
		logger.String("plot_id", b.PlotID),
		logger.String("plan", b.Plan.String()),
		logger.Int64("price", b.Price),
	)

	cp := *b
	return &cp, nil
}

// ConfirmPayment moves Reserved to Active and fixes the expiry time. The
// engine does not verify payment; the payment collaborator calls this only
// after its own confirmation.
func (s *BookingService) ConfirmPayment(ctx context.Context, bookingID string) (*domain.Booking, error) {
	entry, err := s.get(bookingID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	b := &entry.booking
	if b.State != domain.BookingStateReserved {
		return nil, fmt.Errorf("%w: confirm payment from %s", domain.ErrInvalidTransition, b.State)
	}

	now := s.now().UTC()
	if now.Sub(b.ReservedAt) > s.cfg.GracePeriod {
		// The sweep has not fired yet but the grace window is over:
		// cancel here rather than activate a stale reservation.
		s.cancelLocked(ctx, b, now)
		return nil, domain.ErrReservationExpired
	}

	b.State = domain.BookingStateActive
	b.ActivatedAt = now
	b.ExpiresAt = now.Add(s.planDuration(b.Plan))
	b.UpdatedAt = now

	s.logger.Info("booking activated",
		logger.String("booking_id", b.ID),
		logger.String("plot_id", b.PlotID),
		logger.String("expires_at", b.ExpiresAt.Format(time.RFC3339)),
	)

	cp := *b
	go s.notifier.NotifyTicketIssued(context.WithoutCancel(ctx), &cp)

	out := *b
	return &out, nil
}

// Cancel ends a Draft or Reserved booking, releasing the slot when one is
// held. Cancelling an already-terminal booking is a no-op that returns the
// terminal state; cancelling an Active booking is not an allowed edge.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	entry, err := s.get(bookingID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	b := &entry.booking
	switch b.State {
	case domain.BookingStateExpired, domain.BookingStateCancelled:
		cp := *b
		return &cp, nil
	case domain.BookingStateActive:
		return nil, fmt.Errorf("%w: cancel from %s", domain.ErrInvalidTransition, b.State)
	}

	s.cancelLocked(ctx, b, s.now().UTC())

	cp := *b
	return &cp, nil
}

func (s *BookingService) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	entry, err := s.get(bookingID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	cp := entry.booking
	return &cp, nil
}

// Ticket projects an Active or Expired booking into its ticket.
func (s *BookingService) Ticket(ctx context.Context, bookingID string) (*domain.Ticket, error) {
	entry, err := s.get(bookingID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.booking.Ticket()
}

// SweepExpired cancels Draft and Reserved bookings past the grace period,
// expires Active bookings past their expiry and prunes terminal bookings
// past retention. Safe to run repeatedly: a slot is released exactly once
// per booking, and a sweep racing a Cancel resolves by whoever takes the
// booking lock first.
func (s *BookingService) SweepExpired(ctx context.Context) (*SweepResult, error) {
	s.mu.RLock()
	entries := make([]*bookingEntry, 0, len(s.bookings))
	for _, e := range s.bookings {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	res := &SweepResult{}
	var prune []string

	for _, entry := range entries {
		entry.mu.Lock()
		b := &entry.booking
		now := s.now().UTC()

		switch {
		case b.State == domain.BookingStateDraft && now.Sub(b.CreatedAt) > s.cfg.GracePeriod:
			// Abandoned sessions that never picked a plan: without this
			// the bookings map grows without bound.
			s.cancelLocked(ctx, b, now)
			cp := *b
			res.Cancelled = append(res.Cancelled, &cp)

		case b.State == domain.BookingStateReserved && now.Sub(b.ReservedAt) > s.cfg.GracePeriod:
			s.cancelLocked(ctx, b, now)
			cp := *b
			res.Cancelled = append(res.Cancelled, &cp)

		case b.State == domain.BookingStateActive && !now.Before(b.ExpiresAt):
			s.expireLocked(ctx, b, now)
			cp := *b
			res.Expired = append(res.Expired, &cp)

		case b.State.Terminal() && now.Sub(b.UpdatedAt) > s.cfg.Retention:
			prune = append(prune, b.ID)
		}
		entry.mu.Unlock()
	}

	if len(prune) > 0 {
		s.mu.Lock()
		for _, id := range prune {
			delete(s.bookings, id)
		}
		s.mu.Unlock()

		s.logger.Info("terminal bookings pruned", logger.Int("count", len(prune)))
	}

	return res, nil
}

// cancelLocked moves a Draft or Reserved booking to Cancelled. Caller
// holds the entry lock.
func (s *BookingService) cancelLocked(ctx context.Context, b *domain.Booking, now time.Time) {
	hadSlot := b.State.HoldsSlot()

	b.State = domain.BookingStateCancelled
	b.UpdatedAt = now

	if hadSlot {
		s.releaseSlot(ctx, b)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", b.ID),
		logger.String("plot_id", b.PlotID),
	)

	cp := *b
	go s.archiveBooking(context.WithoutCancel(ctx), &cp)
	if hadSlot {
		go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), &cp)
	}
}

// expireLocked moves an Active booking to Expired. Caller holds the entry
// lock.
func (s *BookingService) expireLocked(ctx context.Context, b *domain.Booking, now time.Time) {
	b.State = domain.BookingStateExpired
	b.UpdatedAt = now

	s.releaseSlot(ctx, b)

	s.logger.Info("booking expired",
		logger.String("booking_id", b.ID),
		logger.String("plot_id", b.PlotID),
	)

	cp := *b
	go s.archiveBooking(context.WithoutCancel(ctx), &cp)
	go s.notifier.NotifyBookingExpired(context.WithoutCancel(ctx), &cp)
}

func (s *BookingService) releaseSlot(ctx context.Context, b *domain.Booking) {
	if err := s.inventory.Release(ctx, b.PlotID, b.Vehicle); err != nil {
		// A failed release here is a defect, not a user error: alert,
		// do not retry.
		s.logger.Error("slot release failed",
			logger.String("booking_id", b.ID),
			logger.String("plot_id", b.PlotID),
			logger.String("error", err.Error()),
		)
	}
	b.SlotToken = ""
}

func (s *BookingService) archiveBooking(ctx context.Context, b *domain.Booking) {
	if err := s.archive.RecordBooking(ctx, b); err != nil {
		s.logger.Error("failed to archive booking",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) planDuration(plan domain.Plan) time.Duration {
	switch plan.Kind {
	case domain.PlanHourly:
		return time.Duration(plan.Hours) * time.Hour
	case domain.PlanDaily:
		return s.cfg.Durations.Daily
	case domain.PlanWeekly:
		return s.cfg.Durations.Weekly
	case domain.PlanMonthly:
		return s.cfg.Durations.Monthly
	case domain.PlanYearly:
		return s.cfg.Durations.Yearly
	default:
		return 0
	}
}

func (s *BookingService) get(bookingID string) (*bookingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return entry, nil
}
