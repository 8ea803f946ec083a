// Package audio provides a simulated clip player for the ride simulator.
// It checks that a clip is reachable and then "plays" it for a fixed
// duration; no audio is decoded.
package audio

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"movo-ads/internal/core/port"
)

// SimulatedPlayer implements port.Player.
type SimulatedPlayer struct {
	client   *http.Client
	duration time.Duration
	logger   *slog.Logger
}

// NewSimulatedPlayer returns a player whose clips last duration. client is
// used for the reachability probe.
func NewSimulatedPlayer(client *http.Client, duration time.Duration, logger *slog.Logger) *SimulatedPlayer {
	return &SimulatedPlayer{client: client, duration: duration, logger: logger}
}

// Play rejects malformed URLs immediately. The reachability probe runs in
// the background and its failure is reported on Done.
func (p *SimulatedPlayer) Play(ctx context.Context, clipURL string) (port.Playback, error) {
	u, err := url.Parse(clipURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("unsupported clip url %q", clipURL)
	}

	ctx, cancel := context.WithCancel(ctx)
	pb := &playback{done: make(chan error, 1), cancel: cancel}
	go pb.run(ctx, p, clipURL)
	return pb, nil
}

func (p *SimulatedPlayer) probe(ctx context.Context, clipURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, clipURL, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("clip unreachable: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("clip unreachable: status %d", resp.StatusCode)
	}
	return nil
}

type playback struct {
	done   chan error
	cancel context.CancelFunc
	once   sync.Once
}

func (pb *playback) run(ctx context.Context, p *SimulatedPlayer, clipURL string) {
	if err := p.probe(ctx, clipURL); err != nil {
		pb.finish(err)
		return
	}
	p.logger.Debug("playing clip", slog.String("clip_url", clipURL), slog.Duration("duration", p.duration))

	t := time.NewTimer(p.duration)
	defer t.Stop()
	select {
	case <-t.C:
		pb.finish(nil)
	case <-ctx.Done():
		pb.finish(ctx.Err())
	}
}

func (pb *playback) finish(err error) {
	pb.once.Do(func() { pb.done <- err })
}

func (pb *playback) Done() <-chan error { return pb.done }

func (pb *playback) Stop() { pb.cancel() }
