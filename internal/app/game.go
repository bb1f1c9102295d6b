package app

import (
	"sync"
	"time"

	"flashlight-portfolio/internal/domain"
)

// GameConfig holds the engine timings. Zero values fall back to defaults.
type GameConfig struct {
	QuestionSeconds int
	TickInterval    time.Duration
	// GameOverDelay is how long the timed-out screen shows before the game completes.
	GameOverDelay time.Duration
	// OverlayDelay lets the failure cue play before the overlay image appears.
	OverlayDelay time.Duration
	// OverlayDuration is measured from the wrong answer, not from OverlayDelay.
	OverlayDuration time.Duration
	// FallbackViewport is used when the client reports no usable size.
	FallbackViewport domain.Viewport
}

func (c GameConfig) withDefaults() GameConfig {
	if c.QuestionSeconds <= 0 {
		c.QuestionSeconds = 10
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	if c.GameOverDelay <= 0 {
		c.GameOverDelay = 3 * time.Second
	}
	if c.OverlayDelay <= 0 {
		c.OverlayDelay = 900 * time.Millisecond
	}
	if c.OverlayDuration <= 0 {
		c.OverlayDuration = 3 * time.Second
	}
	c.FallbackViewport = c.FallbackViewport.Normalize()
	return c
}

// Game is the timed quiz state machine for a single player.
//
// Every transition happens under mu. Scheduled callbacks carry the
// generation they were armed for; any transition bumps the generation, so a
// callback that lost the race against a click (or a restart) is a no-op.
type Game struct {
	id        string
	questions []domain.Question
	cfg       GameConfig
	sched     Scheduler
	rnd       Random

	mu        sync.Mutex
	phase     domain.Phase
	reason    domain.EndReason
	index     int
	score     int
	timeLeft  int
	options   []string
	positions []domain.Position
	viewport  domain.Viewport
	overlay   bool
	gen       uint64
	stopTick  func()
	pending   []func()
	closed    bool

	subscribers map[chan domain.GameEvent]struct{}
}

// NewGame builds a game in the not-started phase. The bank must be valid.
func NewGame(id string, bank domain.QuestionBank, cfg GameConfig, sched Scheduler, rnd Random) *Game {
	if sched == nil {
		sched = RealScheduler{}
	}
	if rnd == nil {
		rnd = NewRandom()
	}
	g := &Game{
		id:          id,
		questions:   bank.Clone().Questions,
		cfg:         cfg.withDefaults(),
		sched:       sched,
		rnd:         rnd,
		phase:       domain.PhaseNotStarted,
		subscribers: make(map[chan domain.GameEvent]struct{}),
	}
	g.viewport = g.cfg.FallbackViewport
	g.timeLeft = g.cfg.QuestionSeconds
	g.layoutLocked()
	return g
}

// ID returns the session identifier.
func (g *Game) ID() string { return g.id }

// Start (re)initializes the game regardless of its current phase.
func (g *Game) Start(vp domain.Viewport) (domain.GameSnapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return domain.GameSnapshot{}, domain.ErrGameClosed
	}
	g.cancelTimersLocked()

	if vp.Width <= 0 || vp.Height <= 0 {
		vp = g.cfg.FallbackViewport
	}
	g.viewport = vp
	g.phase = domain.PhasePlaying
	g.reason = domain.EndNone
	g.index = 0
	g.score = 0
	g.overlay = false
	g.beginQuestionLocked()

	g.broadcastLocked(domain.GameEvent{Kind: domain.EventCue, Cue: domain.CueBackgroundLoop, State: g.snapshotLocked()})
	return g.publishLocked(), nil
}

// Submit applies an answer. Answers outside the playing phase, or after the
// countdown hit zero, are ignored and leave the state untouched.
func (g *Game) Submit(option string) (domain.AnswerResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return domain.AnswerResult{}, domain.ErrGameClosed
	}

	res := domain.AnswerResult{Option: option, Outcome: domain.OutcomeIgnored, Score: g.score}
	if g.phase != domain.PhasePlaying || g.timeLeft <= 0 {
		return res, nil
	}
	if !contains(g.options, option) {
		return res, domain.ErrOptionNotFound
	}

	if option == g.questions[g.index].Correct {
		g.score++
		g.index++
		if g.index == len(g.questions) {
			g.stopTickLocked()
			g.gen++
			g.phase = domain.PhaseCompleted
			g.reason = domain.EndCleared
			g.options = nil
			g.positions = nil
		} else {
			g.beginQuestionLocked()
		}
		res.Outcome = domain.OutcomeCorrect
	} else {
		g.stopTickLocked()
		g.gen++
		g.phase = domain.PhaseAnsweredWrong
		g.reason = domain.EndWrongAnswer
		g.score = 0
		g.index = 0
		g.layoutLocked()

		gen := g.gen
		g.afterLocked(g.cfg.OverlayDelay, func() { g.setOverlay(gen, true) })
		g.afterLocked(g.cfg.OverlayDuration, func() { g.setOverlay(gen, false) })
		g.broadcastLocked(domain.GameEvent{Kind: domain.EventCue, Cue: domain.CueFailure, State: g.snapshotLocked()})
		res.Outcome = domain.OutcomeWrong
	}

	res.Score = g.score
	g.publishLocked()
	return res, nil
}

// Snapshot returns the current state.
func (g *Game) Snapshot() domain.GameSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Subscribe returns a channel of game events, primed with the current state.
// The caller must invoke cancel to avoid leaks.
func (g *Game) Subscribe() (<-chan domain.GameEvent, func(), error) {
	ch := make(chan domain.GameEvent, 8)

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil, nil, domain.ErrGameClosed
	}
	g.subscribers[ch] = struct{}{}
	ch <- domain.GameEvent{Kind: domain.EventState, State: g.snapshotLocked()}
	g.mu.Unlock()

	cancel := func() {
		g.mu.Lock()
		if _, ok := g.subscribers[ch]; ok {
			delete(g.subscribers, ch)
			close(ch)
		}
		g.mu.Unlock()
	}
	return ch, cancel, nil
}

// Close stops every timer and subscriber. Further calls are no-ops.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	g.closed = true
	g.cancelTimersLocked()
	g.gen++
	for ch := range g.subscribers {
		close(ch)
	}
	g.subscribers = make(map[chan domain.GameEvent]struct{})
}

func (g *Game) tick(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed || gen != g.gen || g.phase != domain.PhasePlaying {
		return
	}
	if g.timeLeft > 0 {
		g.timeLeft--
	}
	if g.timeLeft == 0 {
		g.stopTickLocked()
		g.gen++
		g.phase = domain.PhaseTimedOut
		g.reason = domain.EndTimedOut
		g.overlay = true

		next := g.gen
		g.afterLocked(g.cfg.GameOverDelay, func() { g.finishTimeout(next) })
		g.broadcastLocked(domain.GameEvent{Kind: domain.EventCue, Cue: domain.CueFailure, State: g.snapshotLocked()})
	}
	g.publishLocked()
}

func (g *Game) finishTimeout(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed || gen != g.gen || g.phase != domain.PhaseTimedOut {
		return
	}
	g.overlay = false
	g.phase = domain.PhaseCompleted
	g.publishLocked()
}

func (g *Game) setOverlay(gen uint64, visible bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed || gen != g.gen || g.overlay == visible {
		return
	}
	g.overlay = visible
	g.publishLocked()
}

// beginQuestionLocked makes questions[index] current and restarts the countdown.
func (g *Game) beginQuestionLocked() {
	g.stopTickLocked()
	g.gen++
	g.timeLeft = g.cfg.QuestionSeconds
	g.layoutLocked()

	gen := g.gen
	g.stopTick = g.sched.Every(g.cfg.TickInterval, func() { g.tick(gen) })
}

func (g *Game) layoutLocked() {
	if g.index >= len(g.questions) {
		g.options, g.positions = nil, nil
		return
	}
	opts := g.questions[g.index].Options
	g.options = shuffleOptions(g.rnd, opts)
	g.positions = placeOptions(g.rnd, len(opts), g.viewport)
}

func (g *Game) afterLocked(d time.Duration, fn func()) {
	g.pending = append(g.pending, g.sched.After(d, fn))
}

func (g *Game) stopTickLocked() {
	if g.stopTick != nil {
		g.stopTick()
		g.stopTick = nil
	}
}

func (g *Game) cancelTimersLocked() {
	g.stopTickLocked()
	for _, stop := range g.pending {
		stop()
	}
	g.pending = nil
}

func (g *Game) publishLocked() domain.GameSnapshot {
	snap := g.snapshotLocked()
	g.broadcastLocked(domain.GameEvent{Kind: domain.EventState, State: snap})
	return snap
}

func (g *Game) broadcastLocked(ev domain.GameEvent) {
	for ch := range g.subscribers {
		select {
		case ch <- ev:
		default:
			// Slow reader: drop the oldest event rather than block the engine.
			select {
			case <-ch:
			default:
			}
			ch <- ev
		}
	}
}

func (g *Game) snapshotLocked() domain.GameSnapshot {
	s := domain.GameSnapshot{
		ID:             g.id,
		Phase:          g.phase,
		QuestionIndex:  g.index,
		TotalQuestions: len(g.questions),
		Score:          g.score,
		TimeRemaining:  g.timeLeft,
		OverlayVisible: g.overlay,
		GameOver:       g.phase == domain.PhaseCompleted || g.phase == domain.PhaseAnsweredWrong,
		EndReason:      g.reason,
	}
	if (g.phase == domain.PhasePlaying || g.phase == domain.PhaseTimedOut) && g.index < len(g.questions) {
		s.QuestionNumber = g.index + 1
		s.Prompt = g.questions[g.index].Prompt
		s.Options = append([]string(nil), g.options...)
		s.Positions = append([]domain.Position(nil), g.positions...)
	}
	return s
}

func contains(opts []string, option string) bool {
	for _, o := range opts {
		if o == option {
			return true
		}
	}
	return false
}
