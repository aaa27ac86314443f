package inventory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Inventory is the single source of truth for per-plot per-class capacity
// and occupancy. Reserve and release on one plot are serialized by the
// plot's own mutex, so occupancy can never be driven above capacity or
// below zero regardless of interleaving.
type Inventory struct {
	mu     sync.RWMutex
	plots  map[string]*plotSlots
	logger logger.Logger
}

type plotSlots struct {
	mu   sync.Mutex
	plot domain.Plot
}

func New(log logger.Logger) *Inventory {
	return &Inventory{
		plots:  make(map[string]*plotSlots),
		logger: log,
	}
}

// Register adds a plot or, keyed by plot id, updates an existing one.
// Re-registration replaces capacity and metadata but never touches live
// occupancy; InitialOccupied is applied on first registration only.
func (inv *Inventory) Register(ctx context.Context, in domain.RegisterPlotInput) (*domain.Plot, error) {
	for _, class := range domain.VehicleClasses {
		if in.Capacity[class] < 0 {
			return nil, fmt.Errorf("%w: %s capacity %d", domain.ErrInvalidCapacity, class, in.Capacity[class])
		}
		if in.InitialOccupied[class] < 0 || in.InitialOccupied[class] > in.Capacity[class] {
			return nil, fmt.Errorf("%w: %s initial occupancy %d exceeds capacity %d",
				domain.ErrInvalidCapacity, class, in.InitialOccupied[class], in.Capacity[class])
		}
	}

	now := time.Now().UTC()

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if ps, ok := inv.plots[in.ID]; ok {
		ps.mu.Lock()
		defer ps.mu.Unlock()

		ps.plot.Name = in.Name
		ps.plot.OwnerName = in.OwnerName
		ps.plot.RegNumber = in.RegNumber
		ps.plot.SurveyNumber = in.SurveyNumber
		ps.plot.Location = in.Location
		ps.plot.Capacity = normalized(in.Capacity)
		ps.plot.Retired = false
		ps.plot.UpdatedAt = now

		inv.logger.Info("plot re-registered",
			logger.String("plot_id", in.ID),
			logger.String("name", in.Name),
		)
		return copyPlot(&ps.plot), nil
	}

	plot := domain.Plot{
		ID:           in.ID,
		Name:         in.Name,
		OwnerName:    in.OwnerName,
		RegNumber:    in.RegNumber,
		SurveyNumber: in.SurveyNumber,
		Location:     in.Location,
		Capacity:     normalized(in.Capacity),
		Occupied:     normalized(in.InitialOccupied),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	inv.plots[in.ID] = &plotSlots{plot: plot}

	inv.logger.Info("plot registered",
		logger.String("plot_id", in.ID),
		logger.String("name", in.Name),
	)
	return copyPlot(&plot), nil
}

// QueryAvailable returns the plots eligible for a class: not retired,
// declared capacity strictly positive and at least one free slot. The
// result is snapshot-consistent; a following Reserve re-checks atomically.
func (inv *Inventory) QueryAvailable(ctx context.Context, class domain.VehicleClass) ([]domain.PlotAvailability, error) {
	if _, err := domain.ParseVehicleClass(string(class)); err != nil {
		return nil, err
	}

	inv.mu.RLock()
	states := make([]*plotSlots, 0, len(inv.plots))
	for _, ps := range inv.plots {
		states = append(states, ps)
	}
	inv.mu.RUnlock()

	res := make([]domain.PlotAvailability, 0, len(states))
	for _, ps := range states {
		ps.mu.Lock()
		eligible := !ps.plot.Retired && ps.plot.Capacity[class] > 0
		free := ps.plot.FreeSlots(class)
		avail := domain.PlotAvailability{
			PlotID:    ps.plot.ID,
			Name:      ps.plot.Name,
			Location:  ps.plot.Location,
			FreeSlots: free,
			Class:     class,
		}
		ps.mu.Unlock()

		if eligible && free > 0 {
			res = append(res, avail)
		}
	}
	return res, nil
}

// Reserve atomically claims one slot and returns an opaque reservation
// token. At most capacity[class] concurrent reservations can succeed.
func (inv *Inventory) Reserve(ctx context.Context, plotID string, class domain.VehicleClass) (string, error) {
	if _, err := domain.ParseVehicleClass(string(class)); err != nil {
		return "", err
	}

	ps, err := inv.get(plotID)
	if err != nil {
		return "", err
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.plot.Retired {
		return "", domain.ErrPlotRetired
	}
	if ps.plot.Capacity[class] == 0 || ps.plot.Occupied[class] >= ps.plot.Capacity[class] {
		return "", domain.ErrSlotUnavailable
	}

	ps.plot.Occupied[class]++
	ps.plot.UpdatedAt = time.Now().UTC()
	token := uuid.New().String()

	inv.logger.Info("slot reserved",
		logger.String("plot_id", plotID),
		logger.String("vehicle_class", string(class)),
		logger.Int("occupied", ps.plot.Occupied[class]),
		logger.Int("capacity", ps.plot.Capacity[class]),
	)
	return token, nil
}

// Release returns one slot. Releasing beyond matched reserves is a caller
// bug and fails with ErrInvariantViolation without changing state.
func (inv *Inventory) Release(ctx context.Context, plotID string, class domain.VehicleClass) error {
	if _, err := domain.ParseVehicleClass(string(class)); err != nil {
		return err
	}

	ps, err := inv.get(plotID)
	if err != nil {
		return err
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.plot.Occupied[class] <= 0 {
		inv.logger.Error("release without matching reserve",
			logger.String("plot_id", plotID),
			logger.String("vehicle_class", string(class)),
		)
		return fmt.Errorf("%w: release on %s/%s with zero occupancy", domain.ErrInvariantViolation, plotID, class)
	}

	ps.plot.Occupied[class]--
	ps.plot.UpdatedAt = time.Now().UTC()

	inv.logger.Info("slot released",
		logger.String("plot_id", plotID),
		logger.String("vehicle_class", string(class)),
		logger.Int("occupied", ps.plot.Occupied[class]),
	)
	return nil
}

// Retire soft-deletes a plot: it stops being offered and refuses new
// reservations, but existing occupancy stays and can still be released.
func (inv *Inventory) Retire(ctx context.Context, plotID string) error {
	ps, err := inv.get(plotID)
	if err != nil {
		return err
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.plot.Retired = true
	ps.plot.UpdatedAt = time.Now().UTC()

	inv.logger.Info("plot retired", logger.String("plot_id", plotID))
	return nil
}

func (inv *Inventory) GetPlot(ctx context.Context, plotID string) (*domain.Plot, error) {
	ps, err := inv.get(plotID)
	if err != nil {
		return nil, err
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()
	return copyPlot(&ps.plot), nil
}

func (inv *Inventory) ListPlots(ctx context.Context) ([]*domain.Plot, error) {
	inv.mu.RLock()
	states := make([]*plotSlots, 0, len(inv.plots))
	for _, ps := range inv.plots {
		states = append(states, ps)
	}
	inv.mu.RUnlock()

	res := make([]*domain.Plot, 0, len(states))
	for _, ps := range states {
		ps.mu.Lock()
		res = append(res, copyPlot(&ps.plot))
		ps.mu.Unlock()
	}
	return res, nil
}

func (inv *Inventory) get(plotID string) (*plotSlots, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	ps, ok := inv.plots[plotID]
	if !ok {
		return nil, domain.ErrPlotNotFound
	}
	return ps, nil
}

// normalized copies a capacity map with an entry for every class.
func normalized(m map[domain.VehicleClass]int) map[domain.VehicleClass]int {
	out := make(map[domain.VehicleClass]int, len(domain.VehicleClasses))
	for _, class := range domain.VehicleClasses {
		out[class] = m[class]
	}
	return out
}

func copyPlot(p *domain.Plot) *domain.Plot {
	cp := *p
	cp.Capacity = maps.Clone(p.Capacity)
	cp.Occupied = maps.Clone(p.Occupied)
	return &cp
}
