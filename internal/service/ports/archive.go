package ports

import (
	"context"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
)

// Archive is the write-behind store for terminal bookings and the plot
// registration log. The live engine never reads it back.
type Archive interface {
	RecordBooking(ctx context.Context, b *domain.Booking) error
	RecordPlot(ctx context.Context, p *domain.Plot) error
}
