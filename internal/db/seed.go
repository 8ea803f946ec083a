package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"movo-ads/internal/core/domain"
)

// demoCampaigns is a small São Paulo campaign set covering every matching
// tier: an all-day generic, two geofences (one across midnight) and a
// premium-only generic.
var demoCampaigns = []domain.Campaign{
	{
		ID:           "0b6f5c1e-2f6a-4e7b-9d51-7a1c2d3e4f01",
		Title:        "Boas-vindas Movo",
		Client:       "Movo",
		StartTime:    "00:00",
		EndTime:      "23:59",
		ServiceTypes: []string{"taxi", "uber", "99", "outro"},
		AudioURLs: []string{
			"https://cdn.movo.example/audio/boas-vindas-1.mp3",
			"https://cdn.movo.example/audio/boas-vindas-2.mp3",
		},
		Type: domain.CampaignGeneric,
	},
	{
		ID:           "0b6f5c1e-2f6a-4e7b-9d51-7a1c2d3e4f02",
		Title:        "Café na Paulista",
		Client:       "Padaria Bela Vista",
		StartTime:    "06:00",
		EndTime:      "22:00",
		RadiusKm:     2,
		ServiceTypes: []string{"uber", "99", "taxi"},
		Location:     &domain.Location{Lat: -23.5614, Lng: -46.6559},
		AudioURLs: []string{
			"https://cdn.movo.example/audio/paulista-1.mp3",
			"https://cdn.movo.example/audio/paulista-2.mp3",
			"https://cdn.movo.example/audio/paulista-3.mp3",
		},
		Type: domain.CampaignGeoreferenced,
	},
	{
		ID:           "0b6f5c1e-2f6a-4e7b-9d51-7a1c2d3e4f03",
		Title:        "Noite em Pinheiros",
		Client:       "Bar do Largo",
		StartTime:    "22:00",
		EndTime:      "02:00",
		RadiusKm:     1.5,
		ServiceTypes: []string{"uber", "99"},
		Location:     &domain.Location{Lat: -23.5670, Lng: -46.6920},
		AudioURLs:    []string{"https://cdn.movo.example/audio/pinheiros-1.mp3"},
		Type:         domain.CampaignGeoreferenced,
	},
	{
		ID:           "0b6f5c1e-2f6a-4e7b-9d51-7a1c2d3e4f04",
		Title:        "Executivo",
		Client:       "Banco Horizonte",
		StartTime:    "07:00",
		EndTime:      "20:00",
		ServiceTypes: []string{"Black", "Comfort"},
		AudioURLs:    []string{"https://cdn.movo.example/audio/executivo-1.mp3"},
		Type:         domain.CampaignGeneric,
	},
}

// Seed inserts demo campaigns into the movo-ads database. Existing rows are
// left untouched, so seeding twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	batch := &pgx.Batch{}
	for i, c := range demoCampaigns {
		if err := c.Validate(); err != nil {
			return err
		}
		var loc []byte
		if c.Location != nil {
			var err error
			if loc, err = json.Marshal(c.Location); err != nil {
				return err
			}
		}
		// created_at is staggered so the demo set keeps its listed order.
		batch.Queue(`INSERT INTO campaigns
    (id, titulo, cliente, horario_inicio, horario_fim, raio_km,
     tipos_servico_segmentados, localizacao, audio_urls, tipo_campanha, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, now() - make_interval(mins => $11)) ON CONFLICT DO NOTHING`,
			c.ID, c.Title, c.Client, c.StartTime, c.EndTime, c.RadiusKm,
			c.ServiceTypes, loc, c.AudioURLs, string(c.Type), len(demoCampaigns)-i)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed campaigns: %w", err)
	}
	return nil
}
