package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movo-ads/internal/config/configs"
	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port/mocks"
)

// fakeRedis answers Get and Set from a map, or with err when set.
type fakeRedis struct {
	data map[string]string
	err  error
	sets int
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	f.sets++
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

var testCfg = configs.Redis{Key: "campaigns", TTL: time.Minute}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func sampleCampaigns() []domain.Campaign {
	return []domain.Campaign{{
		ID:           "c1",
		Title:        "Promo",
		StartTime:    "08:00",
		EndTime:      "18:00",
		ServiceTypes: []string{"uber"},
		AudioURLs:    []string{"https://cdn/a.mp3"},
		Type:         domain.CampaignGeneric,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func TestCampaignCache_MissThenHit(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(sampleCampaigns(), nil).Once()
	rdb := &fakeRedis{data: map[string]string{}}
	c := NewCampaignCache(repo, rdb, testCfg, discard())

	got, err := c.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleCampaigns(), got)
	assert.Equal(t, 1, rdb.sets)

	got, err = c.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleCampaigns(), got)
}

func TestCampaignCache_RedisDownFallsThrough(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(sampleCampaigns(), nil).Twice()
	c := NewCampaignCache(repo, &fakeRedis{err: errors.New("connection refused")}, testCfg, discard())

	for range 2 {
		got, err := c.ListCampaigns(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
}

func TestCampaignCache_MalformedEntry(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(sampleCampaigns(), nil).Once()
	rdb := &fakeRedis{data: map[string]string{"campaigns": "{not json"}}
	c := NewCampaignCache(repo, rdb, testCfg, discard())

	got, err := c.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	var cached []domain.Campaign
	require.NoError(t, json.Unmarshal([]byte(rdb.data["campaigns"]), &cached))
	assert.Equal(t, sampleCampaigns(), cached)
}

func TestCampaignCache_RepositoryError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(nil, errors.New("db down"))
	rdb := &fakeRedis{data: map[string]string{}}
	c := NewCampaignCache(repo, rdb, testCfg, discard())

	_, err := c.ListCampaigns(context.Background())
	assert.Error(t, err)
	assert.Zero(t, rdb.sets)
}

func TestCampaignCache_Redis(t *testing.T) {
	addr := os.Getenv("MOVO_REDIS_ADDR")
	if addr == "" {
		t.Skip("MOVO_REDIS_ADDR not set; skipping integration test")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(sampleCampaigns(), nil).Once()
	cfg := configs.Redis{Key: "movo-ads:test:" + uuid.NewString(), TTL: time.Minute}
	c := NewCampaignCache(repo, rdb, cfg, discard())
	defer rdb.Del(context.Background(), cfg.Key)

	for range 2 {
		got, err := c.ListCampaigns(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sampleCampaigns(), got)
	}
}
