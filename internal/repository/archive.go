package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// ArchiveRepository is the write-behind store: terminal bookings and plot
// registration snapshots land here for audit, the live engine never reads
// them back on the hot path.
type ArchiveRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewArchiveRepo(db *dbpg.DB) *ArchiveRepository {
	return &ArchiveRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ArchiveRepository) RecordBooking(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings_archive
				(id, plot_id, plot_name, vehicle_class, plan_kind, plan_hours, price, state,
				 created_at, updated_at, reserved_at, activated_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			  ON CONFLICT (id) DO UPDATE
			  SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.PlotID, b.PlotName, string(b.Vehicle),
		string(b.Plan.Kind), b.Plan.Hours, b.Price, string(b.State),
		b.CreatedAt, b.UpdatedAt,
		nullableTime(b.ReservedAt), nullableTime(b.ActivatedAt), nullableTime(b.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("insert archived booking: %w", err)
	}

	return nil
}

func (r *ArchiveRepository) RecordPlot(ctx context.Context, p *domain.Plot) error {
	query := `INSERT INTO plots_log
				(id, name, owner_name, reg_number, survey_number, lat, lng,
				 car_capacity, bus_capacity, lorry_capacity, retired, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  ON CONFLICT (id) DO UPDATE
			  SET name = EXCLUDED.name,
				  owner_name = EXCLUDED.owner_name,
				  reg_number = EXCLUDED.reg_number,
				  survey_number = EXCLUDED.survey_number,
				  lat = EXCLUDED.lat,
				  lng = EXCLUDED.lng,
				  car_capacity = EXCLUDED.car_capacity,
				  bus_capacity = EXCLUDED.bus_capacity,
				  lorry_capacity = EXCLUDED.lorry_capacity,
				  retired = EXCLUDED.retired,
				  updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Name, p.OwnerName, p.RegNumber, p.SurveyNumber,
		p.Location.Lat, p.Location.Lng,
		p.Capacity[domain.VehicleCar], p.Capacity[domain.VehicleBus], p.Capacity[domain.VehicleLorry],
		p.Retired, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert plot log: %w", err)
	}

	return nil
}

// ListBookingsByStates reads archived bookings back for audit tooling.
func (r *ArchiveRepository) ListBookingsByStates(ctx context.Context, states []domain.BookingState) ([]*domain.Booking, error) {
	query := `SELECT id, plot_id, plot_name, vehicle_class, plan_kind, plan_hours, price, state,
					 created_at, updated_at, reserved_at, activated_at, expires_at
			  FROM bookings_archive
			  WHERE state = ANY($1)
			  ORDER BY updated_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(states))
	if err != nil {
		return nil, fmt.Errorf("list archived bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b              domain.Booking
		vehicle, state string
		planKind       string
		reservedAt     sql.NullTime
		activatedAt    sql.NullTime
		expiresAt      sql.NullTime
	)
	if err := row.Scan(
		&b.ID, &b.PlotID, &b.PlotName, &vehicle, &planKind, &b.Plan.Hours, &b.Price, &state,
		&b.CreatedAt, &b.UpdatedAt, &reservedAt, &activatedAt, &expiresAt,
	); err != nil {
		return nil, fmt.Errorf("scan archived booking: %w", err)
	}

	b.Vehicle = domain.VehicleClass(vehicle)
	b.Plan.Kind = domain.PlanKind(planKind)
	b.State = domain.BookingState(state)
	if reservedAt.Valid {
		b.ReservedAt = reservedAt.Time
	}
	if activatedAt.Valid {
		b.ActivatedAt = activatedAt.Time
	}
	if expiresAt.Valid {
		b.ExpiresAt = expiresAt.Time
	}

	return &b, nil
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
