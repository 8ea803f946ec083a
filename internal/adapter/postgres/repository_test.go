package postgres

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movo-ads/internal/config/configs"
	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port"
	"movo-ads/internal/db"
)

const seededCampaign = "0b6f5c1e-2f6a-4e7b-9d51-7a1c2d3e4f02"

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("MOVO_TEST_DSN")
	if dsn == "" {
		t.Skip("MOVO_TEST_DSN not set; skipping DB-backed repository tests")
	}
	addr, err := url.Parse(dsn)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(dsn))
	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *addr})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, db.Seed(ctx, pool))
	return pool
}

func TestCampaignRepository_ListCampaigns(t *testing.T) {
	pool := setupPool(t)
	repo := NewCampaignRepository(pool, slog.New(slog.NewTextHandler(io.Discard, nil)))

	campaigns, err := repo.ListCampaigns(context.Background())
	require.NoError(t, err)

	var geo *domain.Campaign
	for i := range campaigns {
		require.NoError(t, campaigns[i].Validate())
		if campaigns[i].ID == seededCampaign {
			geo = &campaigns[i]
		}
	}
	require.NotNil(t, geo, "seeded georeferenced campaign not listed")
	assert.Equal(t, domain.CampaignGeoreferenced, geo.Type)
	assert.Equal(t, "06:00", geo.StartTime)
	assert.Equal(t, "22:00", geo.EndTime)
	require.NotNil(t, geo.Location)
	assert.InDelta(t, -23.5614, geo.Location.Lat, 1e-9)
	assert.Len(t, geo.AudioURLs, 3)

	again, err := repo.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, campaigns, again, "order must be stable")
}

func TestPlayLogRepository(t *testing.T) {
	pool := setupPool(t)
	repo := NewPlayLogRepository(pool)
	ctx := context.Background()
	driver := "driver-" + uuid.NewString()
	before := time.Now().Add(-time.Minute)

	entry := domain.PlayLogEntry{
		ID:         uuid.NewString(),
		CampaignID: seededCampaign,
		DriverID:   driver,
		PlayedAt:   time.Now().UTC(),
	}
	inserted, err := repo.AppendPlay(ctx, entry)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.AppendPlay(ctx, entry)
	require.NoError(t, err)
	assert.False(t, inserted, "same id is stored once")

	n, err := repo.CountPlays(ctx, driver)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	cid := seededCampaign
	stats, err := repo.GetStats(ctx, port.StatsReq{From: before, To: time.Now().Add(time.Minute), CampaignID: &cid})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Plays, int64(1))
	assert.Equal(t, int64(1), stats.Campaigns)

	_, err = repo.AppendPlay(ctx, domain.PlayLogEntry{
		ID: uuid.NewString(), CampaignID: uuid.NewString(), DriverID: driver, PlayedAt: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestPlayLogRepository_ListPlays(t *testing.T) {
	pool := setupPool(t)
	repo := NewPlayLogRepository(pool)
	ctx := context.Background()
	driver := "driver-" + uuid.NewString()
	require.NoError(t, NewProfileRepository(pool).UpsertProfile(ctx,
		domain.DriverProfile{DriverID: driver, Name: "Bruno", ServiceType: "taxi"}))

	// a window no other test writes into
	base := time.Now().UTC().Truncate(time.Microsecond).AddDate(-10, 0, 0)
	older := domain.PlayLogEntry{ID: uuid.NewString(), CampaignID: seededCampaign, DriverID: driver, PlayedAt: base}
	newer := domain.PlayLogEntry{ID: uuid.NewString(), CampaignID: seededCampaign, DriverID: driver, PlayedAt: base.Add(time.Second)}
	for _, e := range []domain.PlayLogEntry{older, newer} {
		_, err := repo.AppendPlay(ctx, e)
		require.NoError(t, err)
	}

	cid := seededCampaign
	req := port.PlaysReq{From: base.Add(-time.Millisecond), To: base.Add(2 * time.Second), CampaignID: &cid, Limit: 10}
	plays, err := repo.ListPlays(ctx, req)
	require.NoError(t, err)
	require.Len(t, plays, 2)
	assert.Equal(t, newer.ID, plays[0].ID, "newest first")
	assert.Equal(t, older.ID, plays[1].ID)
	assert.Equal(t, "Café na Paulista", plays[0].CampaignTitle)
	assert.Equal(t, "Bruno", plays[0].DriverName)
	assert.True(t, newer.PlayedAt.Equal(plays[0].PlayedAt))

	req.Limit = 1
	plays, err = repo.ListPlays(ctx, req)
	require.NoError(t, err)
	require.Len(t, plays, 1)
	assert.Equal(t, newer.ID, plays[0].ID)

	other := uuid.NewString()
	req.CampaignID = &other
	plays, err = repo.ListPlays(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, plays)
}

func TestProfileRepository(t *testing.T) {
	pool := setupPool(t)
	repo := NewProfileRepository(pool)
	ctx := context.Background()
	driver := "driver-" + uuid.NewString()

	p, err := repo.GetProfile(ctx, driver)
	require.NoError(t, err)
	assert.Nil(t, p)

	require.NoError(t, repo.UpsertProfile(ctx, domain.DriverProfile{DriverID: driver, Name: "Ana", ServiceType: "taxi"}))
	require.NoError(t, repo.UpsertProfile(ctx, domain.DriverProfile{DriverID: driver, Name: "Ana Souza", ServiceType: "uber"}))

	p, err = repo.GetProfile(ctx, driver)
	require.NoError(t, err)
	assert.Equal(t, &domain.DriverProfile{DriverID: driver, Name: "Ana Souza", ServiceType: "uber"}, p)
}
