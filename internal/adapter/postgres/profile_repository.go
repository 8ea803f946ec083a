package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"movo-ads/internal/core/domain"
)

// ProfileRepository implements port.ProfileRepository on driver_profiles.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetProfile returns the driver's profile, or nil when there is none.
func (r *ProfileRepository) GetProfile(ctx context.Context, driverID string) (*domain.DriverProfile, error) {
	var p domain.DriverProfile
	err := r.pool.QueryRow(ctx, `SELECT driver_id, nome, tipo_servico FROM driver_profiles WHERE driver_id = $1`, driverID).
		Scan(&p.DriverID, &p.Name, &p.ServiceType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile creates or replaces the driver's profile.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, p domain.DriverProfile) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO driver_profiles (driver_id, nome, tipo_servico, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (driver_id) DO UPDATE SET nome = EXCLUDED.nome, tipo_servico = EXCLUDED.tipo_servico, updated_at = now()`,
		p.DriverID, p.Name, p.ServiceType)
	return err
}
