package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port"
)

const (
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// PlayLogRepository implements port.PlayLogRepository on the ad_play_logs
// table.
type PlayLogRepository struct {
	pool *pgxpool.Pool
}

func NewPlayLogRepository(pool *pgxpool.Pool) *PlayLogRepository {
	return &PlayLogRepository{pool: pool}
}

// AppendPlay inserts entry unless a row with the same id exists. Unknown or
// malformed campaign ids are reported as domain.ErrInvalidRequest.
func (r *PlayLogRepository) AppendPlay(ctx context.Context, entry domain.PlayLogEntry) (bool, error) {
	tag, err := r.pool.Exec(ctx, `INSERT INTO ad_play_logs (id, campaign_id, driver_id, played_at, created_at)
VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
		entry.ID, entry.CampaignID, entry.DriverID, entry.PlayedAt, time.Now().UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == pgForeignKeyViolation || pgErr.Code == pgInvalidTextRepr) {
			return false, fmt.Errorf("%w: unknown campaign %q", domain.ErrInvalidRequest, entry.CampaignID)
		}
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CountPlays returns the number of plays logged by driverID.
func (r *PlayLogRepository) CountPlays(ctx context.Context, driverID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM ad_play_logs WHERE driver_id = $1`, driverID).Scan(&n)
	return n, err
}

// periodFilter builds the WHERE clause shared by the reporting queries. Its
// placeholders start at $1.
func periodFilter(from, to time.Time, campaignID *string) (string, []any) {
	where := "l.played_at >= $1 AND l.played_at <= $2"
	args := []any{from, to}
	if campaignID != nil {
		where += " AND l.campaign_id::text = $3"
		args = append(args, *campaignID)
	}
	return where, args
}

// GetStats returns aggregated plays for campaigns.
func (r *PlayLogRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	where, args := periodFilter(req.From, req.To, req.CampaignID)
	query := fmt.Sprintf(`SELECT count(*), count(DISTINCT l.driver_id), count(DISTINCT l.campaign_id)
FROM ad_play_logs l WHERE %s`, where)
	var resp port.StatsResp
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Plays, &resp.Drivers, &resp.Campaigns); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPlays returns plays in the period, newest first, each joined with its
// campaign title and the driver's profile name.
func (r *PlayLogRepository) ListPlays(ctx context.Context, req port.PlaysReq) ([]port.PlayRecord, error) {
	where, args := periodFilter(req.From, req.To, req.CampaignID)
	args = append(args, req.Limit)
	query := fmt.Sprintf(`SELECT l.id::text, l.campaign_id::text, c.titulo, l.driver_id, coalesce(p.nome, ''), l.played_at
FROM ad_play_logs l
JOIN campaigns c ON c.id = l.campaign_id
LEFT JOIN driver_profiles p ON p.driver_id = l.driver_id
WHERE %s
ORDER BY l.played_at DESC, l.id
LIMIT $%d`, where, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.PlayRecord, error) {
		var p port.PlayRecord
		err := row.Scan(&p.ID, &p.CampaignID, &p.CampaignTitle, &p.DriverID, &p.DriverName, &p.PlayedAt)
		return p, err
	})
}
