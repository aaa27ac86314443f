package service

import (
	"context"
	"testing"
	"time"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/shravanmandadapu71-sys/parkx/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	inventory *mocks.MockSlotInventory
	pricer    *mocks.MockPricer
	notifier  *mocks.MockNotifier
	archive   *mocks.MockArchive
}

func newBookingService(t *testing.T, cfg BookingConfig) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		inventory: mocks.NewMockSlotInventory(t),
		pricer:    mocks.NewMockPricer(t),
		notifier:  mocks.NewMockNotifier(t),
		archive:   mocks.NewMockArchive(t),
	}
	svc := NewBookingService(m.inventory, m.pricer, m.notifier, m.archive, cfg, newTestLogger(t))
	return svc, m
}

func testPlot() *domain.Plot {
	return &domain.Plot{
		ID:   "plot-a",
		Name: "Plot A",
		Capacity: map[domain.VehicleClass]int{
			domain.VehicleCar: 5,
		},
		Occupied: map[domain.VehicleClass]int{},
	}
}

// draftBooking walks a fresh service to a Draft booking.
func draftBooking(t *testing.T, svc *BookingService, m bookingMocks) *domain.Booking {
	t.Helper()
	m.inventory.EXPECT().GetPlot(mock.Anything, "plot-a").Return(testPlot(), nil).Once()

	b, err := svc.CreateDraft(context.Background(), "plot-a", domain.VehicleCar)
	require.NoError(t, err)
	return b
}

// reservedBooking walks a fresh service to a Reserved daily booking.
func reservedBooking(t *testing.T, svc *BookingService, m bookingMocks) *domain.Booking {
	t.Helper()
	b := draftBooking(t, svc, m)

	m.pricer.EXPECT().Quote(domain.Plan{Kind: domain.PlanDaily}).Return(int64(100), nil).Once()
	m.inventory.EXPECT().Reserve(mock.Anything, "plot-a", domain.VehicleCar).Return("tok-1", nil).Once()

	b, err := svc.SelectPlan(context.Background(), b.ID, domain.Plan{Kind: domain.PlanDaily})
	require.NoError(t, err)
	return b
}

func TestBookingService_CreateDraft_Success(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})

	m.inventory.EXPECT().GetPlot(mock.Anything, "plot-a").Return(testPlot(), nil)

	b, err := svc.CreateDraft(context.Background(), "plot-a", domain.VehicleCar)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateDraft, b.State)
	assert.Equal(t, "plot-a", b.PlotID)
	assert.Equal(t, "Plot A", b.PlotName)
	assert.NotEmpty(t, b.ID)
	assert.Zero(t, b.Price)
}

func TestBookingService_CreateDraft_UnknownClass(t *testing.T) {
	svc, _ := newBookingService(t, BookingConfig{})

	_, err := svc.CreateDraft(context.Background(), "plot-a", domain.VehicleClass("bike"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CreateDraft_PlotNotFound(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})

	m.inventory.EXPECT().GetPlot(mock.Anything, "missing").Return(nil, domain.ErrPlotNotFound)

	_, err := svc.CreateDraft(context.Background(), "missing", domain.VehicleCar)

	assert.ErrorIs(t, err, domain.ErrPlotNotFound)
}

func TestBookingService_CreateDraft_RetiredPlot(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})

	plot := testPlot()
	plot.Retired = true
	m.inventory.EXPECT().GetPlot(mock.Anything, "plot-a").Return(plot, nil)

	_, err := svc.CreateDraft(context.Background(), "plot-a", domain.VehicleCar)

	assert.ErrorIs(t, err, domain.ErrPlotRetired)
}

func TestBookingService_SelectPlan_Success(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := draftBooking(t, svc, m)

	m.pricer.EXPECT().Quote(domain.Plan{Kind: domain.PlanDaily}).Return(int64(100), nil)
	m.inventory.EXPECT().Reserve(mock.Anything, "plot-a", domain.VehicleCar).Return("tok-1", nil)

	b, err := svc.SelectPlan(context.Background(), b.ID, domain.Plan{Kind: domain.PlanDaily})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateReserved, b.State)
	assert.Equal(t, int64(100), b.Price)
	assert.False(t, b.ReservedAt.IsZero())
}

func TestBookingService_SelectPlan_InvalidDuration(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := draftBooking(t, svc, m)

	plan := domain.Plan{Kind: domain.PlanHourly, Hours: 7}
	m.pricer.EXPECT().Quote(plan).Return(int64(0), domain.ErrInvalidDuration)

	_, err := svc.SelectPlan(context.Background(), b.ID, plan)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	// no slot reserved, booking still a draft
	got, err := svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateDraft, got.State)
}

func TestBookingService_SelectPlan_SlotUnavailable(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := draftBooking(t, svc, m)

	m.pricer.EXPECT().Quote(mock.Anything).Return(int64(100), nil)
	m.inventory.EXPECT().Reserve(mock.Anything, "plot-a", domain.VehicleCar).Return("", domain.ErrSlotUnavailable)

	_, err := svc.SelectPlan(context.Background(), b.ID, domain.Plan{Kind: domain.PlanDaily})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	got, err := svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateDraft, got.State)
	assert.Zero(t, got.Price)
}

func TestBookingService_SelectPlan_FromReserved(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := reservedBooking(t, svc, m)

	_, err := svc.SelectPlan(context.Background(), b.ID, domain.Plan{Kind: domain.PlanWeekly})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_SelectPlan_BookingNotFound(t *testing.T) {
	svc, _ := newBookingService(t, BookingConfig{})

	_, err := svc.SelectPlan(context.Background(), "missing", domain.Plan{Kind: domain.PlanDaily})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ConfirmPayment_Success(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := reservedBooking(t, svc, m)

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	m.notifier.EXPECT().NotifyTicketIssued(mock.Anything, mock.Anything).Return()

	got, err := svc.ConfirmPayment(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateActive, got.State)
	assert.Equal(t, start, got.ActivatedAt)
	assert.Equal(t, start.Add(24*time.Hour), got.ExpiresAt)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_ConfirmPayment_FromDraft(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := draftBooking(t, svc, m)

	_, err := svc.ConfirmPayment(context.Background(), b.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateDraft, got.State)
}

func TestBookingService_ConfirmPayment_AfterGracePeriod(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{GracePeriod: 5 * time.Minute})

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	b := reservedBooking(t, svc, m)

	m.inventory.EXPECT().Release(mock.Anything, "plot-a", domain.VehicleCar).Return(nil).Once()
	m.archive.EXPECT().RecordBooking(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything).Return()

	now = now.Add(6 * time.Minute)

	_, err := svc.ConfirmPayment(context.Background(), b.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationExpired)

	got, err := svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateCancelled, got.State)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Draft(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := draftBooking(t, svc, m)

	m.archive.EXPECT().RecordBooking(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.Cancel(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateCancelled, got.State)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Reserved_ReleasesSlot(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := reservedBooking(t, svc, m)

	m.inventory.EXPECT().Release(mock.Anything, "plot-a", domain.VehicleCar).Return(nil).Once()
	m.archive.EXPECT().RecordBooking(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything).Return()

	got, err := svc.Cancel(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateCancelled, got.State)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Idempotent(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := reservedBooking(t, svc, m)

	// Release must happen exactly once across both cancels.
	m.inventory.EXPECT().Release(mock.Anything, "plot-a", domain.VehicleCar).Return(nil).Once()
	m.archive.EXPECT().RecordBooking(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything).Return()

	_, err := svc.Cancel(context.Background(), b.ID)
	require.NoError(t, err)

	got, err := svc.Cancel(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateCancelled, got.State)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_FromActive(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := reservedBooking(t, svc, m)

	m.notifier.EXPECT().NotifyTicketIssued(mock.Anything, mock.Anything).Return()

	_, err := svc.ConfirmPayment(context.Background(), b.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), b.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SweepExpired_CancelsStaleReservation(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{GracePeriod: 5 * time.Minute})

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	b := reservedBooking(t, svc, m)

	m.inventory.EXPECT().Release(mock.Anything, "plot-a", domain.VehicleCar).Return(nil).Once()
	m.archive.EXPECT().RecordBooking(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything).Return()

	now = now.Add(10 * time.Minute)

	res, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Cancelled, 1)
	assert.Empty(t, res.Expired)
	assert.Equal(t, b.ID, res.Cancelled[0].ID)
	assert.Equal(t, domain.BookingStateCancelled, res.Cancelled[0].State)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SweepExpired_CancelsAbandonedDraft(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{GracePeriod: 5 * time.Minute})

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	b := draftBooking(t, svc, m)

	m.archive.EXPECT().RecordBooking(mock.Anything, mock.Anything).Return(nil)

	now = now.Add(10 * time.Minute)

	res, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Cancelled, 1)
	assert.Equal(t, b.ID, res.Cancelled[0].ID)
	assert.Equal(t, domain.BookingStateCancelled, res.Cancelled[0].State)
	m.inventory.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)

	// a later sweep past retention evicts the cancelled draft entirely
	now = now.Add(25 * time.Hour)

	_, err = svc.SweepExpired(context.Background())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), b.ID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SweepExpired_WithinGrace_NoOp(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{GracePeriod: 5 * time.Minute})
	reservedBooking(t, svc, m)

	res, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res.Cancelled)
	assert.Empty(t, res.Expired)
}

func TestBookingService_SweepExpired_ExpiresActiveBooking(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	b := reservedBooking(t, svc, m)

	m.notifier.EXPECT().NotifyTicketIssued(mock.Anything, mock.Anything).Return()

	_, err := svc.ConfirmPayment(context.Background(), b.ID)
	require.NoError(t, err)

	m.inventory.EXPECT().Release(mock.Anything, "plot-a", domain.VehicleCar).Return(nil).Once()
	m.archive.EXPECT().RecordBooking(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingExpired(mock.Anything, mock.Anything).Return()

	now = now.Add(25 * time.Hour)

	res, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Expired, 1)
	assert.Equal(t, domain.BookingStateExpired, res.Expired[0].State)

	// second sweep observes the terminal state and releases nothing more
	res, err = svc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Expired)
	assert.Empty(t, res.Cancelled)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SweepExpired_PrunesAfterRetention(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{Retention: time.Hour})

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	b := draftBooking(t, svc, m)

	m.archive.EXPECT().RecordBooking(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Cancel(context.Background(), b.ID)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)

	_, err = svc.SweepExpired(context.Background())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), b.ID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	time.Sleep(50 * time.Millisecond)
}

// Full lifecycle: draft, daily plan at price 100, payment, clock advance
// past expiry, sweep releases the slot.
func TestBookingService_Lifecycle_DailyPlanExpiry(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	m.inventory.EXPECT().GetPlot(mock.Anything, "plot-a").Return(testPlot(), nil)
	b, err := svc.CreateDraft(context.Background(), "plot-a", domain.VehicleCar)
	require.NoError(t, err)

	m.pricer.EXPECT().Quote(domain.Plan{Kind: domain.PlanDaily}).Return(int64(100), nil)
	m.inventory.EXPECT().Reserve(mock.Anything, "plot-a", domain.VehicleCar).Return("tok-1", nil).Once()

	b, err = svc.SelectPlan(context.Background(), b.ID, domain.Plan{Kind: domain.PlanDaily})
	require.NoError(t, err)
	assert.Equal(t, int64(100), b.Price)

	m.notifier.EXPECT().NotifyTicketIssued(mock.Anything, mock.Anything).Return()

	b, err = svc.ConfirmPayment(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), b.ExpiresAt)

	m.inventory.EXPECT().Release(mock.Anything, "plot-a", domain.VehicleCar).Return(nil).Once()
	m.archive.EXPECT().RecordBooking(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingExpired(mock.Anything, mock.Anything).Return()

	now = now.Add(24*time.Hour + time.Minute)

	res, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Expired, 1)

	got, err := svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateExpired, got.State)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Ticket_ActiveBooking(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := reservedBooking(t, svc, m)

	m.notifier.EXPECT().NotifyTicketIssued(mock.Anything, mock.Anything).Return()

	_, err := svc.ConfirmPayment(context.Background(), b.ID)
	require.NoError(t, err)

	ticket, err := svc.Ticket(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, b.ID, ticket.BookingID)
	assert.Equal(t, "Plot A", ticket.PlotName)
	assert.Equal(t, domain.VehicleCar, ticket.Vehicle)
	assert.Equal(t, int64(100), ticket.Price)
	assert.False(t, ticket.ExpiresAt.IsZero())

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Ticket_DraftBooking(t *testing.T) {
	svc, m := newBookingService(t, BookingConfig{})
	b := draftBooking(t, svc, m)

	_, err := svc.Ticket(context.Background(), b.ID)

	assert.ErrorIs(t, err, domain.ErrTicketNotAvailable)
}
