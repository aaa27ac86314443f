package ports

import (
	"context"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
)

type SlotInventory interface {
	Register(ctx context.Context, in domain.RegisterPlotInput) (*domain.Plot, error)
	QueryAvailable(ctx context.Context, class domain.VehicleClass) ([]domain.PlotAvailability, error)
	Reserve(ctx context.Context, plotID string, class domain.VehicleClass) (string, error)
	Release(ctx context.Context, plotID string, class domain.VehicleClass) error
	Retire(ctx context.Context, plotID string) error
	GetPlot(ctx context.Context, plotID string) (*domain.Plot, error)
	ListPlots(ctx context.Context) ([]*domain.Plot, error)
}
