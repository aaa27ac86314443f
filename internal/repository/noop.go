package repository

import (
	"context"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
)

// NoopArchive is used when the archive database is disabled. Terminal
// bookings are simply dropped once pruned from memory.
type NoopArchive struct{}

func NewNoopArchive() *NoopArchive { return &NoopArchive{} }

func (NoopArchive) RecordBooking(_ context.Context, _ *domain.Booking) error { return nil }

func (NoopArchive) RecordPlot(_ context.Context, _ *domain.Plot) error { return nil }
