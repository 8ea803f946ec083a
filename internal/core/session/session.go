// Package session drives one ride's ad playback: when ads are fetched,
// played, retried and logged.
//
// A Session is a finite-state machine owned by a single loop goroutine
// (Run). User commands, timer expiries, playback completions and matching
// results are all messages delivered to that loop. Every asynchronous
// effect carries a token; a message whose token no longer matches the
// session's live handle is discarded, so nothing started before Stop can
// change state or write to the play log after it.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port"
)

// Phase is the lifecycle stage of a ride session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingFirstAd
	PhasePlaying
	PhaseWaitingForNext
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingFirstAd:
		return "awaiting_first_ad"
	case PhasePlaying:
		return "playing"
	case PhaseWaitingForNext:
		return "waiting_for_next"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Config holds the session's timing and fallback settings.
type Config struct {
	// DriverID is written to every play log entry.
	DriverID string
	// FirstAdDelay is how long after Start the first ad is fetched.
	FirstAdDelay time.Duration
	// NextAdDelay separates the end of one clip from the next fetch.
	NextAdDelay time.Duration
	// RetryDelay is the fixed backoff after a failed or empty match.
	RetryDelay time.Duration
	// EvalTimeout bounds one location fix plus matching call.
	EvalTimeout time.Duration
	// LogTimeout bounds one play log write.
	LogTimeout time.Duration
	// Fallback replaces the location whenever the Locator fails.
	Fallback domain.Location
}

// DefaultConfig returns the production timings with the São Paulo city
// centre as fallback coordinate.
func DefaultConfig() Config {
	return Config{
		FirstAdDelay: 15 * time.Second,
		NextAdDelay:  45 * time.Second,
		RetryDelay:   5 * time.Second,
		EvalTimeout:  20 * time.Second,
		LogTimeout:   10 * time.Second,
		Fallback:     domain.Location{Lat: -23.5505, Lng: -46.6333},
	}
}

// Deps are the collaborators of a session. Notifier, Clock and NewID are
// optional.
type Deps struct {
	Locator  port.Locator
	Matcher  port.Matcher
	Player   port.Player
	Plays    port.PlayLogger
	Notifier Notifier
	Clock    clockwork.Clock
	NewID    func() string
}

// State is a point-in-time copy of the ride session.
type State struct {
	Phase             Phase
	Campaign          *domain.Campaign
	ClipIndex         int
	LastKnownLocation *domain.Location
	Paused            bool
	// Plays counts the clips completed during the current ride.
	Plays int
}

// Session is one client's ride session. Create it with New, run its loop
// with Run and drive it with Start, Pause, Resume and Stop.
type Session struct {
	cfg      Config
	locator  port.Locator
	matcher  port.Matcher
	player   port.Player
	plays    port.PlayLogger
	notifier Notifier
	clock    clockwork.Clock
	newID    func() string
	logger   *slog.Logger

	events chan event
	quit   chan struct{}
	logs   sync.WaitGroup

	// Fields below are owned by the loop goroutine.
	runCtx     context.Context
	rideCtx    context.Context
	rideCancel context.CancelFunc

	phase     Phase
	profile   domain.DriverProfile
	campaign  *domain.Campaign
	clipIndex int
	location  *domain.Location
	paused    bool
	ridePlays int

	seq           uint64
	timer         clockwork.Timer
	timerToken    uint64
	evalCancel    context.CancelFunc
	evalToken     uint64
	playback      port.Playback
	playbackToken uint64

	mu       sync.RWMutex
	snapshot State
}

// New creates an idle session. Zero durations in cfg take their
// DefaultConfig values.
func New(cfg Config, deps Deps, logger *slog.Logger) *Session {
	def := DefaultConfig()
	for _, d := range []struct{ v, def *time.Duration }{
		{&cfg.FirstAdDelay, &def.FirstAdDelay},
		{&cfg.NextAdDelay, &def.NextAdDelay},
		{&cfg.RetryDelay, &def.RetryDelay},
		{&cfg.EvalTimeout, &def.EvalTimeout},
		{&cfg.LogTimeout, &def.LogTimeout},
	} {
		if *d.v <= 0 {
			*d.v = *d.def
		}
	}

	s := &Session{
		cfg:      cfg,
		locator:  deps.Locator,
		matcher:  deps.Matcher,
		player:   deps.Player,
		plays:    deps.Plays,
		notifier: deps.Notifier,
		clock:    deps.Clock,
		newID:    deps.NewID,
		logger:   logger.With(slog.String("driver_id", cfg.DriverID)),
		events:   make(chan event, 32),
		quit:     make(chan struct{}),
	}
	if s.notifier == nil {
		s.notifier = discardNotifier{}
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

type event any

type (
	startCmd struct {
		profile  domain.DriverProfile
		location domain.Location
		locErr   error
		reply    chan error
	}
	stopCmd   struct{ reply chan error }
	pauseCmd  struct{ reply chan error }
	resumeCmd struct{ reply chan error }

	timerFired struct{ token uint64 }
	evalDone   struct {
		token    uint64
		location domain.Location
		locErr   error
		campaign *domain.Campaign
		err      error
	}
	playbackEnded struct {
		token uint64
		err   error
	}
	logDone struct {
		entry domain.PlayLogEntry
		err   error
	}
)

// Run processes session events until ctx is cancelled. It must be called
// exactly once; any active ride is stopped on return, and Run does not
// return before play log writes already issued have finished.
func (s *Session) Run(ctx context.Context) error {
	s.runCtx = ctx
	defer close(s.quit)
	defer s.logs.Wait()
	defer s.endRide("shutdown")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-s.events:
			s.handle(ev)
			s.publish()
		}
	}
}

// Start begins a ride. The profile must carry a service type, otherwise
// domain.ErrProfileIncomplete is returned and the session stays idle.
func (s *Session) Start(ctx context.Context, profile domain.DriverProfile) error {
	if !profile.Complete() {
		return domain.ErrProfileIncomplete
	}
	loc, locErr := s.locate(ctx)
	reply := make(chan error, 1)
	return s.call(ctx, startCmd{profile: profile, location: loc, locErr: locErr, reply: reply}, reply)
}

// Pause suspends the clip that is playing. The clip index is kept and
// nothing is logged.
func (s *Session) Pause(ctx context.Context) error {
	reply := make(chan error, 1)
	return s.call(ctx, pauseCmd{reply: reply}, reply)
}

// Resume replays the paused clip from its beginning.
func (s *Session) Resume(ctx context.Context) error {
	reply := make(chan error, 1)
	return s.call(ctx, resumeCmd{reply: reply}, reply)
}

// Stop ends the ride, cancelling pending timers, in-flight matching and
// playback. Calling Stop without an active ride is a no-op.
func (s *Session) Stop(ctx context.Context) error {
	reply := make(chan error, 1)
	return s.call(ctx, stopCmd{reply: reply}, reply)
}

// Snapshot returns the state published after the last processed event.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Session) call(ctx context.Context, ev event, reply chan error) error {
	select {
	case s.events <- ev:
	case <-s.quit:
		return domain.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-s.quit:
		return domain.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post delivers an internal event; it gives up once the loop has exited.
func (s *Session) post(ev event) {
	select {
	case s.events <- ev:
	case <-s.quit:
	}
}

func (s *Session) locate(ctx context.Context) (domain.Location, error) {
	loc, err := s.locator.CurrentLocation(ctx)
	if err != nil {
		return s.cfg.Fallback, err
	}
	return loc, nil
}

func (s *Session) handle(ev event) {
	switch ev := ev.(type) {
	case startCmd:
		s.reply(ev.reply, s.handleStart(ev))
	case stopCmd:
		s.endRide("stopped")
		s.reply(ev.reply, nil)
	case pauseCmd:
		s.reply(ev.reply, s.handlePause())
	case resumeCmd:
		s.reply(ev.reply, s.handleResume())
	case timerFired:
		s.handleTimer(ev)
	case evalDone:
		s.handleEval(ev)
	case playbackEnded:
		s.handlePlaybackEnded(ev)
	case logDone:
		s.handleLogDone(ev)
	}
}

// reply publishes the new state before answering so a caller observes
// its own command in Snapshot.
func (s *Session) reply(ch chan error, err error) {
	s.publish()
	ch <- err
}

func (s *Session) handleStart(ev startCmd) error {
	if s.phase != PhaseIdle && s.phase != PhaseEnded {
		return domain.ErrRideInProgress
	}
	s.rideCtx, s.rideCancel = context.WithCancel(s.runCtx)
	s.profile = ev.profile
	s.campaign = nil
	s.clipIndex = 0
	s.paused = false
	s.ridePlays = 0
	s.setLocation(ev.location, ev.locErr)
	s.phase = PhaseAwaitingFirstAd
	s.armTimer(s.cfg.FirstAdDelay)

	s.logger.Info("ride started", slog.String("service_type", ev.profile.ServiceType))
	s.notifier.Notify(Notice{Kind: NoticeRideStarted, Message: "ride started"})
	return nil
}

func (s *Session) handlePause() error {
	if s.phase != PhasePlaying || s.paused {
		return domain.ErrNotPlaying
	}
	s.stopPlayback()
	s.paused = true
	s.logger.Info("playback paused", slog.Int("clip_index", s.clipIndex))
	return nil
}

func (s *Session) handleResume() error {
	if s.phase != PhasePlaying || !s.paused {
		return domain.ErrNotPlaying
	}
	s.startPlayback()
	return nil
}

func (s *Session) handleTimer(ev timerFired) {
	if s.timerToken == 0 || ev.token != s.timerToken {
		s.logger.Debug("stale timer discarded")
		return
	}
	s.timer = nil
	s.timerToken = 0

	switch s.phase {
	case PhaseAwaitingFirstAd:
		s.evaluate(true)
	case PhaseWaitingForNext:
		s.evaluate(false)
	}
}

// evaluate fetches a fresh location and asks the matcher for a campaign
// off the loop goroutine; the result comes back as evalDone.
func (s *Session) evaluate(isRideStart bool) {
	s.seq++
	token := s.seq
	ctx, cancel := context.WithTimeout(s.rideCtx, s.cfg.EvalTimeout)
	s.evalToken = token
	s.evalCancel = cancel

	req := domain.MatchRequest{
		DriverID:      s.cfg.DriverID,
		ServiceType:   s.profile.ServiceType,
		IsStartOfRide: isRideStart,
	}
	go func() {
		defer cancel()
		loc, locErr := s.locate(ctx)
		req.Location = &loc
		c, err := s.matcher.Match(ctx, req)
		s.post(evalDone{token: token, location: loc, locErr: locErr, campaign: c, err: err})
	}()
}

func (s *Session) handleEval(ev evalDone) {
	if s.evalToken == 0 || ev.token != s.evalToken {
		s.logger.Debug("stale match result discarded")
		return
	}
	s.evalToken = 0
	s.evalCancel = nil
	s.setLocation(ev.location, ev.locErr)

	switch {
	case errors.Is(ev.err, domain.ErrUnauthenticated), errors.Is(ev.err, domain.ErrForbidden):
		s.logger.Error("matching rejected", slog.Any("error", ev.err))
		s.notifier.Notify(Notice{Kind: NoticeUnauthorized, Message: "sign in again to keep playing ads", Err: ev.err})
		s.endRide("unauthorized")
		return
	case errors.Is(ev.err, domain.ErrInvalidRequest):
		s.logger.Error("matching refused the request", slog.Any("error", ev.err))
		s.notifier.Notify(Notice{Kind: NoticeInvalidRequest, Message: "the ad service refused this ride's data", Err: ev.err})
		s.endRide("invalid request")
		return
	case ev.err != nil:
		s.logger.Warn("matching failed, retrying", slog.Any("error", ev.err), slog.Duration("retry_in", s.cfg.RetryDelay))
		s.notifier.Notify(Notice{Kind: NoticeMatchFailed, Message: "could not reach the ad service", Err: ev.err})
		s.armTimer(s.cfg.RetryDelay)
		return
	case ev.campaign == nil || len(ev.campaign.AudioURLs) == 0:
		s.logger.Info("no campaign matched, retrying", slog.Duration("retry_in", s.cfg.RetryDelay))
		s.notifier.Notify(Notice{Kind: NoticeNoCampaign, Message: domain.NoCampaignMessage})
		s.armTimer(s.cfg.RetryDelay)
		return
	}

	c := *ev.campaign
	if s.phase == PhaseAwaitingFirstAd || s.campaign == nil || s.campaign.ID != c.ID {
		s.clipIndex = 0
	}
	s.clipIndex %= len(c.AudioURLs)
	s.campaign = &c
	s.startPlayback()
}

func (s *Session) startPlayback() {
	s.phase = PhasePlaying
	s.paused = false
	url := s.campaign.ClipURL(s.clipIndex)
	log := s.logger.With(slog.String("campaign_id", s.campaign.ID), slog.Int("clip_index", s.clipIndex))

	pb, err := s.player.Play(s.rideCtx, url)
	if err != nil {
		s.playbackFailed(err)
		return
	}
	s.seq++
	token := s.seq
	s.playback = pb
	s.playbackToken = token

	log.Info("clip started", slog.String("clip_url", url))
	s.notifier.Notify(Notice{Kind: NoticeAdStarted, Message: s.campaign.Title, CampaignID: s.campaign.ID})

	ctx := s.rideCtx
	go func() {
		select {
		case err := <-pb.Done():
			s.post(playbackEnded{token: token, err: err})
		case <-ctx.Done():
		}
	}()
}

func (s *Session) handlePlaybackEnded(ev playbackEnded) {
	if s.playbackToken == 0 || ev.token != s.playbackToken || s.phase != PhasePlaying {
		s.logger.Debug("stale playback event discarded")
		return
	}
	s.playback = nil
	s.playbackToken = 0
	if ev.err != nil {
		s.playbackFailed(ev.err)
		return
	}

	entry := domain.PlayLogEntry{
		ID:         s.newID(),
		CampaignID: s.campaign.ID,
		DriverID:   s.cfg.DriverID,
		PlayedAt:   s.clock.Now().UTC(),
	}
	s.ridePlays++
	s.writeLog(entry)

	s.logger.Info("clip completed", slog.String("campaign_id", entry.CampaignID), slog.Int("clip_index", s.clipIndex))
	s.notifier.Notify(Notice{Kind: NoticeAdCompleted, Message: "ad played, credit earned", CampaignID: entry.CampaignID})

	s.advance()
}

// playbackFailed skips the clip without logging and schedules the next
// cycle as if it had completed.
func (s *Session) playbackFailed(err error) {
	s.logger.Warn("clip playback failed",
		slog.String("campaign_id", s.campaign.ID),
		slog.Int("clip_index", s.clipIndex),
		slog.Any("error", err))
	s.notifier.Notify(Notice{Kind: NoticePlaybackFailed, Message: "could not play ad", CampaignID: s.campaign.ID, Err: err})
	s.stopPlayback()
	s.advance()
}

func (s *Session) advance() {
	s.clipIndex = (s.clipIndex + 1) % len(s.campaign.AudioURLs)
	s.phase = PhaseWaitingForNext
	s.armTimer(s.cfg.NextAdDelay)
}

// writeLog issues the play log write without waiting for it. The write
// outlives both the ride and the loop's context; only LogTimeout bounds it.
func (s *Session) writeLog(entry domain.PlayLogEntry) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(s.runCtx), s.cfg.LogTimeout)
	s.logs.Add(1)
	go func() {
		defer cancel()
		err := s.plays.LogPlay(ctx, entry)
		// Done before post: Run waits on logs before it closes quit.
		s.logs.Done()
		s.post(logDone{entry: entry, err: err})
	}()
}

func (s *Session) handleLogDone(ev logDone) {
	if ev.err != nil {
		s.logger.Error("play log write failed",
			slog.String("play_id", ev.entry.ID),
			slog.String("campaign_id", ev.entry.CampaignID),
			slog.Any("error", ev.err))
		s.notifier.Notify(Notice{Kind: NoticeLogFailed, Message: "play could not be recorded", CampaignID: ev.entry.CampaignID, Err: ev.err})
		return
	}
	s.logger.Debug("play logged", slog.String("play_id", ev.entry.ID))
}

func (s *Session) setLocation(loc domain.Location, locErr error) {
	if locErr != nil {
		s.logger.Warn("location unavailable, using fallback", slog.Any("error", locErr))
		s.notifier.Notify(Notice{Kind: NoticeLocationFallback, Message: "location unavailable", Err: locErr})
	}
	s.location = &loc
}

func (s *Session) armTimer(d time.Duration) {
	s.cancelTimer()
	s.seq++
	token := s.seq
	s.timerToken = token
	s.timer = s.clock.AfterFunc(d, func() { s.post(timerFired{token: token}) })
}

func (s *Session) cancelTimer() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = nil
	s.timerToken = 0
}

func (s *Session) stopPlayback() {
	if s.playback != nil {
		s.playback.Stop()
	}
	s.playback = nil
	s.playbackToken = 0
}

// endRide moves an active ride to PhaseEnded and releases every handle.
func (s *Session) endRide(reason string) {
	if s.phase == PhaseIdle || s.phase == PhaseEnded {
		return
	}
	s.cancelTimer()
	if s.evalCancel != nil {
		s.evalCancel()
	}
	s.evalCancel = nil
	s.evalToken = 0
	s.stopPlayback()
	if s.rideCancel != nil {
		s.rideCancel()
	}
	s.rideCancel = nil

	s.logger.Info("ride ended", slog.String("reason", reason), slog.Int("plays", s.ridePlays))
	s.notifier.Notify(Notice{Kind: NoticeRideEnded, Message: reason})

	s.phase = PhaseEnded
	s.campaign = nil
	s.clipIndex = 0
	s.paused = false
	s.location = nil
}

func (s *Session) publish() {
	st := State{
		Phase:     s.phase,
		ClipIndex: s.clipIndex,
		Paused:    s.paused,
		Plays:     s.ridePlays,
	}
	if s.campaign != nil {
		c := *s.campaign
		st.Campaign = &c
	}
	if s.location != nil {
		l := *s.location
		st.LastKnownLocation = &l
	}
	s.mu.Lock()
	s.snapshot = st
	s.mu.Unlock()
}
