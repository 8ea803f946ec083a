package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGeoCampaign() Campaign {
	return Campaign{
		ID:           "c1",
		StartTime:    "08:00",
		EndTime:      "20:00",
		RadiusKm:     2,
		ServiceTypes: []string{"X"},
		Location:     &Location{Lat: -23.5505, Lng: -46.6333},
		AudioURLs:    []string{"a.mp3"},
		Type:         CampaignGeoreferenced,
	}
}

func TestCampaignValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Campaign)
		wantErr bool
	}{
		{name: "valid georeferenced"},
		{name: "valid generic without location", mutate: func(c *Campaign) {
			c.Type = CampaignGeneric
			c.Location = nil
			c.RadiusKm = 0
		}},
		{name: "missing id", mutate: func(c *Campaign) { c.ID = "" }, wantErr: true},
		{name: "no clips", mutate: func(c *Campaign) { c.AudioURLs = nil }, wantErr: true},
		{name: "too many clips", mutate: func(c *Campaign) {
			c.AudioURLs = strings.Split(strings.Repeat("a.mp3,", MaxAudioClips+1), ",")[:MaxAudioClips+1]
		}, wantErr: true},
		{name: "bad start", mutate: func(c *Campaign) { c.StartTime = "8h" }, wantErr: true},
		{name: "geo without location", mutate: func(c *Campaign) { c.Location = nil }, wantErr: true},
		{name: "geo without radius", mutate: func(c *Campaign) { c.RadiusKm = 0 }, wantErr: true},
		{name: "unknown type", mutate: func(c *Campaign) { c.Type = "banner" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validGeoCampaign()
			if tt.mutate != nil {
				tt.mutate(&c)
			}
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCampaign)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCampaignClipURLWraps(t *testing.T) {
	c := Campaign{AudioURLs: []string{"a", "b", "c"}}
	assert.Equal(t, "a", c.ClipURL(0))
	assert.Equal(t, "c", c.ClipURL(2))
	assert.Equal(t, "a", c.ClipURL(3))
	assert.Equal(t, "", Campaign{}.ClipURL(0))
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(8*60+30), got)
	assert.Equal(t, "08:30", got.String())

	got, err = ParseTimeOfDay("20:00:45")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(20*60), got)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestCampaignActiveAt(t *testing.T) {
	c := validGeoCampaign()
	day := func(h, m int) time.Time { return time.Date(2026, 1, 5, h, m, 0, 0, time.UTC) }

	assert.True(t, c.ActiveAt(day(8, 0)))
	assert.True(t, c.ActiveAt(day(20, 0)))
	assert.False(t, c.ActiveAt(day(7, 59)))
	assert.False(t, c.ActiveAt(day(20, 1)))

	c.StartTime = "nonsense"
	assert.False(t, c.ActiveAt(day(12, 0)))
}

func TestDriverProfileValidate(t *testing.T) {
	assert.NoError(t, DriverProfile{Name: "Ana Souza", ServiceType: "X"}.Validate())
	assert.ErrorIs(t, DriverProfile{Name: "Al", ServiceType: "X"}.Validate(), ErrInvalidProfile)
	assert.ErrorIs(t, DriverProfile{Name: "Ana Souza"}.Validate(), ErrInvalidProfile)
	assert.False(t, DriverProfile{Name: "Ana Souza", ServiceType: "  "}.Complete())
}
