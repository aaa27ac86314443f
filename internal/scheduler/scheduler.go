package scheduler

import (
	"context"
	"time"

	"github.com/shravanmandadapu71-sys/parkx/internal/service"
	"github.com/wb-go/wbf/logger"
)

type expirySweeper interface {
	SweepExpired(ctx context.Context) (*service.SweepResult, error)
}

// Scheduler drives booking expiry: each tick cancels stale reservations
// and expires active bookings whose time ran out.
type Scheduler struct {
	sweeper  expirySweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper expirySweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	res, err := s.sweeper.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range res.Cancelled {
		s.logger.Info("stale reservation cancelled",
			logger.String("booking_id", b.ID),
			logger.String("plot_id", b.PlotID),
		)
	}
	for _, b := range res.Expired {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("plot_id", b.PlotID),
		)
	}
}
