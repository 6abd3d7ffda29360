// Package session runs one game for one player. It owns the tick scheduler,
// reads the high score once, saves it when it improves and records finished
// rounds in the score history.
//
// Hosts feed key presses to Handle, hand tick tokens back to Tick and, when
// the game schedules a deferred transition, call Resolve once its delay has
// elapsed. A session is not safe for concurrent use; the host's event loop
// serializes every call.
package session

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/phase"
	"github.com/vovakirdan/arcade-cores/internal/registry"
	"github.com/vovakirdan/arcade-cores/internal/scheduler"
)

// Store persists high scores and the round history. *storage.Store
// satisfies it.
type Store interface {
	LoadHighScore(gameID string) int
	SaveHighScore(gameID string, value int) error
	SaveScore(gameID, sessionID string, score int) (int64, error)
}

// Session drives a single game.
type Session struct {
	id     string
	game   registry.Game
	sched  *scheduler.Scheduler
	store  Store
	logger *log.Logger

	input    core.InputFrame // gameplay intents held for the next tick
	last     core.StepResult
	phase    phase.Phase
	high     int
	loaded   bool
	recorded bool
}

// New creates a session for game. store may be nil, in which case nothing
// is persisted. A nil logger discards output.
func New(game registry.Game, store Store, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		game:   game,
		sched:  scheduler.New(),
		store:  store,
		logger: logger.With("game", game.ID(), "session", id[:8]),
		input:  core.NewInputFrame(),
	}
}

// ID returns the session id stamped on recorded scores.
func (s *Session) ID() string {
	return s.id
}

// Game returns the driven game.
func (s *Session) Game() registry.Game {
	return s.game
}

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int {
	return s.high
}

// State returns the game's public summary.
func (s *Session) State() core.GameState {
	return s.game.State()
}

// Last returns the result of the most recent step.
func (s *Session) Last() core.StepResult {
	return s.last
}

// Active reports whether ticks are being accepted.
func (s *Session) Active() bool {
	return s.sched.Active()
}

// Pending returns the game's deferred transition, if any.
func (s *Session) Pending() (phase.Deferred, bool) {
	return s.game.Pending()
}

// Start resets the game with rt. The high score is loaded on the first call
// only; later calls start a fresh round with the known best.
func (s *Session) Start(rt core.RuntimeConfig) {
	s.sched.Halt()
	s.game.Reset(rt)
	s.input.Clear()
	s.last = core.StepResult{State: s.game.State()}
	s.phase = s.last.State.Phase
	s.recorded = false

	if !s.loaded {
		s.loaded = true
		if s.store != nil {
			s.high = s.store.LoadHighScore(s.game.ID())
		}
		s.logger.Debug("high score loaded", "high", s.high)
	}
}

// Handle feeds a frame of player intents to the game. While the game is
// playing, gameplay intents are held for the next tick so they never cause
// an extra update; TogglePause applies at once. In every other phase the
// frame is stepped immediately.
//
// When play (re)starts Handle returns the token for the first tick.
func (s *Session) Handle(in core.InputFrame) (scheduler.Token, bool) {
	if s.game.State().Playing() && !in.Has(core.TogglePause) {
		s.input.Merge(in)
		return scheduler.Token{}, false
	}
	s.apply(s.game.Step(in))
	return s.resume()
}

// Tick runs one update if tok is current and returns the token for the
// next tick. It returns false once play stops or when tok is stale.
func (s *Session) Tick(tok scheduler.Token) (scheduler.Token, bool) {
	return s.sched.Fire(tok, s.step)
}

// step runs one update with the held intents.
func (s *Session) step() bool {
	frame := s.input
	s.input = core.NewInputFrame()
	s.apply(s.game.Step(frame))
	return s.game.State().Playing()
}

// Resolve fires the deferred transition id. If play resumes it returns the
// token for the next tick.
func (s *Session) Resolve(id uint64) (scheduler.Token, bool) {
	if !s.game.Resolve(id) {
		s.logger.Debug("stale deferral dropped", "id", id)
		return scheduler.Token{}, false
	}
	s.observe(s.game.State())
	return s.resume()
}

// Finish stops ticking and makes sure an ended round is in the history.
func (s *Session) Finish() {
	s.sched.Halt()
	if st := s.game.State(); st.Over() {
		s.record(st.Score)
	}
}

// Run drives the session without a host for up to n ticks of virtual time.
// Deferred transitions resolve as soon as they are due on the virtual clock.
// input, if non-nil, supplies the gameplay intents for each tick. Run
// returns the number of ticks executed and the virtual time that passed.
func (s *Session) Run(n int, input func(tick int) core.InputFrame) (int, time.Duration) {
	var elapsed time.Duration
	cadence := s.game.Cadence()

	tok, ok := s.Handle(core.Frame(core.Start))
	if !ok && s.game.State().Playing() {
		tok, ok = s.sched.Resume()
	}

	ticks := 0
	for ticks < n {
		if !ok {
			d, pending := s.game.Pending()
			if !pending {
				break
			}
			elapsed += d.Delay
			if tok, ok = s.Resolve(d.ID); !ok {
				break
			}
			continue
		}
		if input != nil {
			s.input.Merge(input(ticks))
		}
		elapsed += cadence
		tok, ok = s.Tick(tok)
		ticks++
	}
	return ticks, elapsed
}

// Play drives the session on the wall clock for up to n ticks, waiting out
// deferred transitions in real time. It stops early when the round ends or
// ctx is done.
func (s *Session) Play(ctx context.Context, n int) (int, error) {
	s.Handle(core.Frame(core.Start))
	// The ticker loop below owns the tick chain.
	s.sched.Halt()

	ticks := 0
	for ticks < n {
		if !s.game.State().Playing() {
			return ticks, nil
		}
		err := s.sched.Run(ctx, s.game.Cadence(), func() bool {
			ticks++
			return s.step() && ticks < n
		})
		if err != nil {
			return ticks, err
		}

		d, pending := s.game.Pending()
		if !pending || ticks >= n {
			return ticks, nil
		}
		select {
		case <-ctx.Done():
			return ticks, ctx.Err()
		case <-time.After(d.Delay):
		}
		if !s.game.Resolve(d.ID) {
			return ticks, nil
		}
		s.observe(s.game.State())
	}
	return ticks, nil
}

func (s *Session) resume() (scheduler.Token, bool) {
	if !s.game.State().Playing() {
		s.sched.Halt()
		return scheduler.Token{}, false
	}
	return s.sched.Resume()
}

func (s *Session) apply(res core.StepResult) {
	s.last = res
	for _, e := range res.Events {
		s.logger.Debug("event", "kind", e.Kind, "tick", e.Tick, "score", e.Score, "detail", e.Detail)
	}
	s.observe(res.State)
}

// observe tracks phase changes and the high score after every state change.
func (s *Session) observe(st core.GameState) {
	if st.Phase != s.phase {
		s.logger.Debug("phase", "from", s.phase, "to", st.Phase)
		if s.phase == phase.GameOver {
			s.recorded = false
		}
		s.phase = st.Phase
	}

	if st.Score > s.high {
		s.high = st.Score
		s.saveHigh()
	}
	if st.Phase == phase.GameOver {
		s.record(st.Score)
	}
}

func (s *Session) saveHigh() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveHighScore(s.game.ID(), s.high); err != nil {
		s.logger.Warn("could not save high score", "error", err)
		return
	}
	s.logger.Info("new high score", "high", s.high)
}

// record adds the round to the history once. Rounds without points are
// not recorded.
func (s *Session) record(score int) {
	if s.recorded {
		return
	}
	s.recorded = true
	if score <= 0 || s.store == nil {
		return
	}
	if _, err := s.store.SaveScore(s.game.ID(), s.id, score); err != nil {
		s.logger.Warn("could not record score", "error", err)
		return
	}
	s.logger.Debug("round recorded", "score", score)
}
