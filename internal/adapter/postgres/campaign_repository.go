package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"movo-ads/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool, logger *slog.Logger) *CampaignRepository {
	return &CampaignRepository{pool: pool, logger: logger}
}

// ListCampaigns returns every valid campaign ordered by creation time. Rows
// that break the campaign invariants are logged and skipped so one bad
// row cannot take matching down.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	query := `
        SELECT
            c.id::text,
            c.titulo,
            c.cliente,
            to_char(c.horario_inicio, 'HH24:MI'),
            to_char(c.horario_fim, 'HH24:MI'),
            c.raio_km,
            c.tipos_servico_segmentados,
            c.localizacao,
            c.audio_urls,
            c.tipo_campanha,
            c.created_at
        FROM campaigns c
        ORDER BY c.created_at, c.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	// Use CollectRows to scan each row into a temporary struct.
	type rawCampaign struct {
		Camp        domain.Campaign
		LocationRaw []byte
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawCampaign, error) {
		var rc rawCampaign
		var typ string
		err := row.Scan(
			&rc.Camp.ID,
			&rc.Camp.Title,
			&rc.Camp.Client,
			&rc.Camp.StartTime,
			&rc.Camp.EndTime,
			&rc.Camp.RadiusKm,
			&rc.Camp.ServiceTypes,
			&rc.LocationRaw,
			&rc.Camp.AudioURLs,
			&typ,
			&rc.Camp.CreatedAt,
		)
		rc.Camp.Type = domain.CampaignType(typ)
		return rc, err
	})
	if err != nil {
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(raw))
	for _, rc := range raw {
		if len(rc.LocationRaw) > 0 {
			var loc domain.Location
			if err = json.Unmarshal(rc.LocationRaw, &loc); err != nil {
				r.logger.Warn("skipping campaign with malformed location",
					slog.String("campaign_id", rc.Camp.ID), slog.Any("error", err))
				continue
			}
			rc.Camp.Location = &loc
		}
		if err = rc.Camp.Validate(); err != nil {
			r.logger.Warn("skipping invalid campaign",
				slog.String("campaign_id", rc.Camp.ID), slog.Any("error", err))
			continue
		}
		campaigns = append(campaigns, rc.Camp)
	}
	return campaigns, nil
}
