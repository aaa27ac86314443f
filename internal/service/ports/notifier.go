package ports

import (
	"context"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
)

type Notifier interface {
	NotifyTicketIssued(ctx context.Context, booking *domain.Booking)
	NotifyBookingExpired(ctx context.Context, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking)
}
