// Command ridesim drives one ride session against the matching service with
// a simulated position source and audio player. Type p, r or s followed by
// Enter to pause, resume or stop the ride.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"movo-ads/internal/adapter/audio"
	"movo-ads/internal/adapter/geo"
	"movo-ads/internal/adapter/httpclient"
	"movo-ads/internal/auth"
	"movo-ads/internal/config"
	"movo-ads/internal/config/configs"
	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port"
	"movo-ads/internal/core/session"
)

func main() {
	if err := run(); err != nil {
		slog.Error("ridesim failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.New(os.Stderr)
	sim := cfg.RideSim

	token := sim.Token
	if mint, ok := cfg.MintAuth(); ok {
		if token, err = auth.NewJWTService(mint).GenerateToken(sim.DriverID, domain.RoleDriver); err != nil {
			return fmt.Errorf("mint token: %w", err)
		}
		logger.Warn("using a locally minted driver token")
	}
	client := httpclient.New(sim.ServerURL, token, sim.RequestTimeout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	profile, err := ensureProfile(ctx, client, sim)
	if err != nil {
		return err
	}

	locator, err := newLocator(sim)
	if err != nil {
		return err
	}

	// ended is closed when the ride stops on its own, e.g. on a rejected token
	// or a request the service refuses.
	ended := make(chan struct{})
	var endOnce sync.Once
	notifier := session.NotifierFunc(func(n session.Notice) {
		attrs := []any{slog.String("kind", string(n.Kind))}
		if n.CampaignID != "" {
			attrs = append(attrs, slog.String("campaign_id", n.CampaignID))
		}
		if n.Err != nil {
			attrs = append(attrs, slog.Any("error", n.Err))
		}
		logger.Info(n.Message, attrs...)
		if n.Kind == session.NoticeUnauthorized || n.Kind == session.NoticeInvalidRequest {
			endOnce.Do(func() { close(ended) })
		}
	})

	sess := session.New(session.Config{
		DriverID:     sim.DriverID,
		FirstAdDelay: cfg.Session.FirstAdDelay,
		NextAdDelay:  cfg.Session.NextAdDelay,
		RetryDelay:   cfg.Session.RetryDelay,
		EvalTimeout:  cfg.Session.EvalTimeout,
		LogTimeout:   cfg.Session.LogTimeout,
		Fallback:     domain.Location{Lat: cfg.Session.FallbackLat, Lng: cfg.Session.FallbackLng},
	}, session.Deps{
		Locator:  locator,
		Matcher:  client,
		Player:   audio.NewSimulatedPlayer(&http.Client{Timeout: sim.RequestTimeout}, sim.ClipDuration, logger),
		Plays:    client,
		Notifier: notifier,
	}, logger)

	// The loop outlives ctx so Stop can still be delivered after a signal.
	// Run returns only once the play log writes it issued have landed.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = sess.Run(loopCtx)
	}()
	shutdown := sync.OnceFunc(func() {
		stopLoop()
		<-loopDone
	})
	defer shutdown()

	if err = sess.Start(ctx, *profile); err != nil {
		return fmt.Errorf("start ride: %w", err)
	}

	commands := make(chan string)
	go readCommands(os.Stdin, commands)

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ended:
			break loop
		case cmd := <-commands:
			if cmd == "s" {
				break loop
			}
			control(sess, cmd, logger)
		}
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelStop()
	plays := sess.Snapshot().Plays
	if err = sess.Stop(stopCtx); err != nil {
		logger.Error("stop ride", slog.Any("error", err))
	}
	// The last clip's play must be recorded before it is counted.
	shutdown()
	if n, err := client.CountPlays(stopCtx); err == nil {
		logger.Info("ride summary", slog.Int("ride_plays", plays), slog.Int64("total_plays", n))
	}
	return nil
}

// ensureProfile loads the driver's profile and creates it from the
// configuration when the service has none.
func ensureProfile(ctx context.Context, client *httpclient.Client, sim configs.RideSim) (*domain.DriverProfile, error) {
	p, err := client.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p != nil && p.Complete() {
		return p, nil
	}
	p = &domain.DriverProfile{DriverID: sim.DriverID, Name: sim.Name, ServiceType: sim.ServiceType}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	if err = client.SaveProfile(ctx, *p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

func newLocator(sim configs.RideSim) (port.Locator, error) {
	route, err := geo.ParseRoute(sim.Route)
	if err != nil {
		return nil, err
	}
	if len(route) == 1 {
		return geo.NewStaticLocator(route[0]), nil
	}
	// An empty route reports no fix and the session falls back.
	return geo.NewRouteLocator(route, sim.StepEvery), nil
}

func readCommands(f *os.File, out chan<- string) {
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out <- strings.ToLower(strings.TrimSpace(sc.Text()))
	}
}

func control(sess *session.Session, cmd string, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var err error
	switch cmd {
	case "p":
		err = sess.Pause(ctx)
	case "r":
		err = sess.Resume(ctx)
	case "":
		return
	default:
		logger.Warn("unknown command", slog.String("command", cmd))
		return
	}
	if errors.Is(err, domain.ErrNotPlaying) {
		logger.Info("no clip is playing")
	} else if err != nil {
		logger.Error("command failed", slog.String("command", cmd), slog.Any("error", err))
	} else {
		logger.Info("state", slog.String("phase", sess.Snapshot().Phase.String()), slog.Bool("paused", sess.Snapshot().Paused))
	}
}
