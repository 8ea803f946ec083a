package audio

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer(d time.Duration) *SimulatedPlayer {
	return NewSimulatedPlayer(&http.Client{Timeout: time.Second}, d, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func clipServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.mp3" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, http.MethodHead, r.Method)
		w.Header().Set("Content-Type", "audio/mpeg")
	}))
	t.Cleanup(srv.Close)
	return srv
}

func waitDone(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("playback did not finish")
		return nil
	}
}

func TestPlay_Completes(t *testing.T) {
	srv := clipServer(t)
	pb, err := newPlayer(20*time.Millisecond).Play(context.Background(), srv.URL+"/clip.mp3")
	require.NoError(t, err)
	assert.NoError(t, waitDone(t, pb.Done()))
}

func TestPlay_Unreachable(t *testing.T) {
	srv := clipServer(t)
	pb, err := newPlayer(time.Hour).Play(context.Background(), srv.URL+"/missing.mp3")
	require.NoError(t, err)
	assert.ErrorContains(t, waitDone(t, pb.Done()), "status 404")
}

func TestPlay_BadURL(t *testing.T) {
	for _, u := range []string{"", "ftp://cdn/a.mp3", "not a url", "http://"} {
		_, err := newPlayer(time.Second).Play(context.Background(), u)
		assert.Error(t, err, u)
	}
}

func TestPlay_Stop(t *testing.T) {
	srv := clipServer(t)
	pb, err := newPlayer(time.Hour).Play(context.Background(), srv.URL+"/clip.mp3")
	require.NoError(t, err)

	pb.Stop()
	pb.Stop()
	assert.ErrorIs(t, waitDone(t, pb.Done()), context.Canceled)
}
