package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/shravanmandadapu71-sys/parkx/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RegistryService is the land-registry boundary: it verifies ownership
// documents through the external collaborator and onboards plots into the
// slot inventory.
type RegistryService struct {
	inventory ports.SlotInventory
	verifier  ports.OwnershipVerifier
	archive   ports.Archive
	logger    logger.Logger
}

func NewRegistryService(
	inventory ports.SlotInventory,
	verifier ports.OwnershipVerifier,
	archive ports.Archive,
	log logger.Logger,
) *RegistryService {
	return &RegistryService{
		inventory: inventory,
		verifier:  verifier,
		archive:   archive,
		logger:    log,
	}
}

// RegisterPlot onboards a new plot or updates an existing one by id.
// A generated id is assigned when the input carries none.
func (s *RegistryService) RegisterPlot(ctx context.Context, in domain.RegisterPlotInput) (*domain.Plot, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: plot name is required", domain.ErrValidation)
	}

	var hasCapacity bool
	for _, class := range domain.VehicleClasses {
		if in.Capacity[class] > 0 {
			hasCapacity = true
			break
		}
	}
	if !hasCapacity {
		return nil, fmt.Errorf("%w: at least one vehicle class needs positive capacity", domain.ErrValidation)
	}

	ok, err := s.verifier.Verify(ctx, in.Credential())
	if err != nil {
		return nil, fmt.Errorf("verify ownership: %w", err)
	}
	if !ok {
		return nil, domain.ErrVerificationFailed
	}

	if in.ID == "" {
		in.ID = uuid.New().String()
	}

	plot, err := s.inventory.Register(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("register plot: %w", err)
	}

	s.logger.Info("plot onboarded",
		logger.String("plot_id", plot.ID),
		logger.String("name", plot.Name),
		logger.String("reg_number", plot.RegNumber),
	)

	go s.archivePlot(context.WithoutCancel(ctx), plot)

	return plot, nil
}

func (s *RegistryService) RetirePlot(ctx context.Context, plotID string) error {
	if err := s.inventory.Retire(ctx, plotID); err != nil {
		return fmt.Errorf("retire plot: %w", err)
	}

	plot, err := s.inventory.GetPlot(ctx, plotID)
	if err != nil {
		return fmt.Errorf("get retired plot: %w", err)
	}

	go s.archivePlot(context.WithoutCancel(ctx), plot)

	return nil
}

func (s *RegistryService) ListPlots(ctx context.Context) ([]*domain.Plot, error) {
	return s.inventory.ListPlots(ctx)
}

func (s *RegistryService) archivePlot(ctx context.Context, plot *domain.Plot) {
	if err := s.archive.RecordPlot(ctx, plot); err != nil {
		s.logger.Error("failed to archive plot",
			logger.String("plot_id", plot.ID),
			logger.String("error", err.Error()),
		)
	}
}
