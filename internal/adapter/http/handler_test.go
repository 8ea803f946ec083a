package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movo-ads/internal/auth"
	"movo-ads/internal/config/configs"
	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port"
	"movo-ads/internal/core/port/mocks"
)

type testServer struct {
	ads      *mocks.MockAdUseCase
	profiles *mocks.MockProfileUseCase
	jwt      *auth.JWTService
	handler  http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		ads:      mocks.NewMockAdUseCase(t),
		profiles: mocks.NewMockProfileUseCase(t),
		jwt:      auth.NewJWTService(configs.Auth{JWTSecret: "secret", Issuer: "movo-ads", TokenTTL: time.Hour}),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts.handler = NewHandler(ts.ads, ts.profiles, ts.jwt, logger).Router()
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, role, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if role != "" {
		token, err := ts.jwt.GenerateToken("driver-1", role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestAdMatch_Success(t *testing.T) {
	ts := newTestServer(t)
	ts.ads.EXPECT().
		RequestAd(mock.Anything, mock.MatchedBy(func(req domain.MatchRequest) bool {
			return req.DriverID == "driver-1" &&
				req.Location != nil && req.Location.Lat == -23.56 && req.Location.Lng == -46.65 &&
				req.ServiceType == "uber" && req.IsStartOfRide
		})).
		Return(&port.AdResponse{
			CampaignID: "c1",
			AudioURLs:  []string{"https://cdn/a.mp3", "https://cdn/b.mp3"},
			Title:      "Promo",
			Client:     "Padaria",
			Type:       domain.CampaignGeoreferenced,
			Tier:       "georeferenced",
		}, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/ad/match", domain.RoleDriver,
		`{"latitude":-23.56,"longitude":-46.65,"service_type":"uber","is_start_of_ride":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "c1", got["campaign_id"])
	assert.Equal(t, []any{"https://cdn/a.mp3", "https://cdn/b.mp3"}, got["audio_urls"])
	assert.Equal(t, "Promo", got["titulo"])
	assert.Equal(t, "Padaria", got["cliente"])
	assert.Equal(t, "georeferenced", got["tipo_campanha"])
	assert.NotContains(t, got, "message")
}

func TestAdMatch_NoCampaign(t *testing.T) {
	ts := newTestServer(t)
	ts.ads.EXPECT().RequestAd(mock.Anything, mock.Anything).Return(nil, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/ad/match", domain.RoleDriver,
		`{"latitude":0,"longitude":0,"service_type":"taxi"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got, "audio_urls")
	assert.Nil(t, got["audio_urls"])
	assert.Equal(t, domain.NoCampaignMessage, got["message"])
}

func TestAdMatch_BadRequest(t *testing.T) {
	cases := map[string]string{
		"missing latitude": `{"longitude":-46.65,"service_type":"uber"}`,
		"missing service":  `{"latitude":-23.56,"longitude":-46.65}`,
		"malformed":        `{"latitude":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			ts := newTestServer(t)
			rec := ts.do(t, http.MethodPost, "/api/v1/ad/match", domain.RoleDriver, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAdMatch_InternalError(t *testing.T) {
	ts := newTestServer(t)
	ts.ads.EXPECT().RequestAd(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	rec := ts.do(t, http.MethodPost, "/api/v1/ad/match", domain.RoleDriver,
		`{"latitude":-23.56,"longitude":-46.65,"service_type":"uber"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestAuthorization(t *testing.T) {
	body := `{"latitude":-23.56,"longitude":-46.65,"service_type":"uber"}`

	t.Run("missing token", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, "/api/v1/ad/match", "", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("invalid token", func(t *testing.T) {
		ts := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ad/match", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("wrong role", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, "/api/v1/ad/match", domain.RoleOperator, body)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
	t.Run("driver on stats", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodGet, "/api/v1/stats/overview", domain.RoleDriver, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPlays(t *testing.T) {
	ts := newTestServer(t)
	playedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ts.ads.EXPECT().RegisterPlay(mock.Anything, domain.PlayLogEntry{
		ID:         "6f1c1b1e-8d1a-4c1e-9a63-2a3b4c5d6e7f",
		CampaignID: "c1",
		DriverID:   "driver-1",
		PlayedAt:   playedAt,
	}).Return(nil)
	ts.ads.EXPECT().CountPlays(mock.Anything, "driver-1").Return(int64(7), nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/plays", domain.RoleDriver,
		`{"id":"6f1c1b1e-8d1a-4c1e-9a63-2a3b4c5d6e7f","campaign_id":"c1","played_at":"2025-03-01T12:00:00Z"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/plays/count", domain.RoleDriver, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":7}`, rec.Body.String())
}

func TestPlays_Invalid(t *testing.T) {
	ts := newTestServer(t)
	ts.ads.EXPECT().RegisterPlay(mock.Anything, mock.Anything).
		Return(errors.Join(domain.ErrInvalidRequest, errors.New("campaign_id is required")))

	rec := ts.do(t, http.MethodPost, "/api/v1/plays", domain.RoleDriver, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfile(t *testing.T) {
	ts := newTestServer(t)
	ts.profiles.EXPECT().GetProfile(mock.Anything, "driver-1").Return(nil, nil).Once()

	rec := ts.do(t, http.MethodGet, "/api/v1/drivers/me/profile", domain.RoleDriver, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	want := domain.DriverProfile{DriverID: "driver-1", Name: "Ana Souza", ServiceType: "taxi"}
	ts.profiles.EXPECT().SaveProfile(mock.Anything, want).Return(nil)
	rec = ts.do(t, http.MethodPut, "/api/v1/drivers/me/profile", domain.RoleDriver,
		`{"driver_id":"someone-else","nome":"Ana Souza","tipo_servico":"taxi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"driver_id":"driver-1","nome":"Ana Souza","tipo_servico":"taxi"}`, rec.Body.String())

	ts.profiles.EXPECT().GetProfile(mock.Anything, "driver-1").Return(&want, nil).Once()
	rec = ts.do(t, http.MethodGet, "/api/v1/drivers/me/profile", domain.RoleDriver, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"driver_id":"driver-1","nome":"Ana Souza","tipo_servico":"taxi"}`, rec.Body.String())
}

func TestProfile_Invalid(t *testing.T) {
	ts := newTestServer(t)
	ts.profiles.EXPECT().SaveProfile(mock.Anything, mock.Anything).
		Return(domain.DriverProfile{Name: "Al"}.Validate())

	rec := ts.do(t, http.MethodPut, "/api/v1/drivers/me/profile", domain.RoleDriver, `{"nome":"Al"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsOverview(t *testing.T) {
	ts := newTestServer(t)
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	ts.ads.EXPECT().
		GetStats(mock.Anything, mock.MatchedBy(func(req port.StatsReq) bool {
			return req.From.Equal(from) && req.To.Equal(to) &&
				req.CampaignID != nil && *req.CampaignID == "c1"
		})).
		Return(&port.StatsResp{Plays: 10, Drivers: 3, Campaigns: 1}, nil)

	rec := ts.do(t, http.MethodGet,
		"/api/v1/stats/overview?from=2025-03-01T00:00:00Z&to=2025-03-02T00:00:00Z&campaign_id=c1",
		domain.RoleOperator, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"plays":10,"drivers":3,"campaigns":1}`, rec.Body.String())
}

func TestStatsOverview_BadTimestamp(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/v1/stats/overview?from=yesterday", domain.RoleOperator, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPlays(t *testing.T) {
	ts := newTestServer(t)
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	ts.ads.EXPECT().
		ListPlays(mock.Anything, mock.MatchedBy(func(req port.PlaysReq) bool {
			return req.From.Equal(from) && req.To.Equal(to) && req.Limit == 50 &&
				req.CampaignID != nil && *req.CampaignID == "c1"
		})).
		Return([]port.PlayRecord{{
			ID:            "p1",
			CampaignID:    "c1",
			CampaignTitle: "Café na Paulista",
			DriverID:      "driver-1",
			DriverName:    "Ana",
			PlayedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		}}, nil)

	rec := ts.do(t, http.MethodGet,
		"/api/v1/plays?from=2025-03-01T00:00:00Z&to=2025-03-02T00:00:00Z&campaign_id=c1&limit=50",
		domain.RoleOperator, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"plays":[{"id":"p1","campaign_id":"c1","campaign_title":"Café na Paulista",
		"driver_id":"driver-1","driver_name":"Ana","played_at":"2025-03-01T12:00:00Z"}]}`, rec.Body.String())
}

func TestListPlays_DefaultsToLastDay(t *testing.T) {
	ts := newTestServer(t)
	ts.ads.EXPECT().
		ListPlays(mock.Anything, mock.MatchedBy(func(req port.PlaysReq) bool {
			return req.To.Sub(req.From) == 24*time.Hour && req.CampaignID == nil && req.Limit == 0
		})).
		Return(nil, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/plays", domain.RoleOperator, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"plays":[]}`, rec.Body.String())
}

func TestListPlays_Invalid(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{
		"/api/v1/plays?limit=abc",
		"/api/v1/plays?limit=0",
		"/api/v1/plays?to=tomorrow",
	} {
		rec := ts.do(t, http.MethodGet, path, domain.RoleOperator, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}

	rec := ts.do(t, http.MethodGet, "/api/v1/plays", domain.RoleDriver, "")
	assert.Equal(t, http.StatusForbidden, rec.Code, "listing is for operators")
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

