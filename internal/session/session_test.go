package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/games/round"
	"github.com/vovakirdan/arcade-cores/internal/ledger"
	"github.com/vovakirdan/arcade-cores/internal/phase"
	"github.com/vovakirdan/arcade-cores/internal/scheduler"
)

const cadence = 10 * time.Millisecond

// counter gains points every update and can clear or end the round on a
// given tick.
type counter struct {
	r       *round.Round
	score   int
	gain    int
	clearAt uint64
	endAt   uint64
	delay   time.Duration
	seen    []core.InputFrame
}

func newCounter(gain int) *counter {
	g := &counter{gain: gain, delay: time.Second}
	g.r = round.New(func() { g.score = 0 })
	return g
}

func (g *counter) ID() string { return "counter" }
func (g *counter) Title() string { return "Counter" }
func (g *counter) Cadence() time.Duration { return cadence }
func (g *counter) Render(*core.Screen) {}
func (g *counter) Recent(n int) []ledger.Event { return g.r.Ledger.Recent(n) }
func (g *counter) Pending() (phase.Deferred, bool) { return g.r.Machine.Pending() }
func (g *counter) Resolve(id uint64) bool { return g.r.Machine.Resolve(id) }

func (g *counter) Reset(core.RuntimeConfig) {
	g.r.Restart()
	g.score = 0
}

func (g *counter) Step(in core.InputFrame) core.StepResult {
	if g.r.Begin(in) {
		g.seen = append(g.seen, in.Clone())
		g.score += g.gain
		switch g.r.Tick {
		case g.clearAt:
			g.r.Machine.Fire(phase.Cleared)
			g.r.Machine.After(g.delay, phase.Advance)
		case g.endAt:
			g.r.Machine.Fire(phase.Terminal)
		}
	}
	return g.r.End(g.State())
}

func (g *counter) State() core.GameState {
	return core.GameState{Phase: g.r.Phase(), Score: g.score}
}

type saved struct {
	game, session string
	score         int
}

type memStore struct {
	high    map[string]string
	loads   int
	highs   []int
	history []saved
	fail    error
}

func newMemStore() *memStore {
	return &memStore{high: map[string]string{}}
}

func (m *memStore) LoadHighScore(gameID string) int {
	m.loads++
	var v int
	for _, c := range m.high[gameID] {
		if c < '0' || c > '9' {
			return 0
		}
		v = v*10 + int(c-'0')
	}
	return v
}

func (m *memStore) SaveHighScore(gameID string, value int) error {
	if m.fail != nil {
		return m.fail
	}
	m.highs = append(m.highs, value)
	return nil
}

func (m *memStore) SaveScore(gameID, sessionID string, score int) (int64, error) {
	if m.fail != nil {
		return 0, m.fail
	}
	m.history = append(m.history, saved{gameID, sessionID, score})
	return int64(len(m.history)), nil
}

func started(t *testing.T, g *counter, store Store) (*Session, scheduler.Token) {
	t.Helper()
	s := New(g, store, nil)
	s.Start(core.DefaultConfig())
	tok, ok := s.Handle(core.Frame(core.Start))
	require.True(t, ok, "Start from Menu should begin ticking")
	return s, tok
}

func TestStartLoadsHighScoreOnce(t *testing.T) {
	store := newMemStore()
	store.high["counter"] = "50"
	s := New(newCounter(1), store, nil)

	s.Start(core.DefaultConfig())
	s.Start(core.DefaultConfig())

	assert.Equal(t, 1, store.loads)
	assert.Equal(t, 50, s.HighScore())
	assert.NotEmpty(t, s.ID())
}

func TestMalformedHighScoreReadsZero(t *testing.T) {
	store := newMemStore()
	store.high["counter"] = "lots"
	s := New(newCounter(1), store, nil)
	s.Start(core.DefaultConfig())

	assert.Equal(t, 0, s.HighScore())
}

func TestTickRunsOneUpdatePerToken(t *testing.T) {
	g := newCounter(1)
	s, tok := started(t, g, nil)
	assert.Equal(t, 0, g.score, "the start frame must not update")

	next, ok := s.Tick(tok)
	require.True(t, ok)
	assert.Equal(t, 1, g.score)

	_, ok = s.Tick(tok)
	assert.False(t, ok, "spent token")
	assert.Equal(t, 1, g.score)

	_, ok = s.Tick(next)
	assert.True(t, ok)
	assert.Equal(t, 2, g.score)
}

func TestSecondStartKeepsOneChain(t *testing.T) {
	g := newCounter(1)
	s, tok := started(t, g, nil)

	_, ok := s.Handle(core.Frame(core.Start))
	assert.False(t, ok, "no second tick chain while playing")

	_, ok = s.Tick(tok)
	assert.True(t, ok, "the original chain keeps running")
}

func TestPauseDropsInFlightTick(t *testing.T) {
	g := newCounter(1)
	s, tok := started(t, g, nil)

	_, ok := s.Handle(core.Frame(core.TogglePause))
	assert.False(t, ok)
	assert.False(t, s.Active())
	assert.Equal(t, phase.Paused, s.State().Phase)

	_, ok = s.Tick(tok)
	assert.False(t, ok, "tick scheduled before the pause must not run")
	assert.Equal(t, 0, g.score)

	tok, ok = s.Handle(core.Frame(core.TogglePause))
	require.True(t, ok, "resume hands out a new token")
	_, ok = s.Tick(tok)
	assert.True(t, ok)
	assert.Equal(t, 1, g.score)
}

func TestGameplayIntentsWaitForTick(t *testing.T) {
	g := newCounter(1)
	s, tok := started(t, g, nil)

	_, ok := s.Handle(core.Frame(core.MoveUp))
	assert.False(t, ok)
	assert.Equal(t, 0, g.score, "gameplay intents never step the game directly")

	tok, _ = s.Tick(tok)
	s.Tick(tok)

	require.Len(t, g.seen, 2)
	assert.True(t, g.seen[0].Has(core.MoveUp))
	assert.False(t, g.seen[1].Has(core.MoveUp), "intents are consumed by one tick")
}

func TestHighScoreSavedOnlyOnImprovement(t *testing.T) {
	store := newMemStore()
	store.high["counter"] = "2"
	g := newCounter(1)
	s := New(g, store, nil)
	s.Start(core.DefaultConfig())
	tok, _ := s.Handle(core.Frame(core.Start))

	for i := 0; i < 4; i++ {
		tok, _ = s.Tick(tok)
	}

	assert.Equal(t, []int{3, 4}, store.highs)
	assert.Equal(t, 4, s.HighScore())
}

func TestGameOverRecordsOnce(t *testing.T) {
	store := newMemStore()
	g := newCounter(5)
	g.endAt = 3
	s, tok := started(t, g, store)

	ok := true
	for ok {
		tok, ok = s.Tick(tok)
	}
	assert.True(t, s.State().Over())
	assert.False(t, s.Active())

	s.Finish()
	require.Len(t, store.history, 1)
	assert.Equal(t, saved{"counter", s.ID(), 15}, store.history[0])

	// A new round after Reset is recorded separately.
	s.Handle(core.Frame(core.Reset))
	tok, ok = s.Handle(core.Frame(core.Start))
	require.True(t, ok)
	for ok {
		tok, ok = s.Tick(tok)
	}
	assert.Len(t, store.history, 2)
}

func TestZeroScoreNotRecorded(t *testing.T) {
	store := newMemStore()
	g := newCounter(0)
	g.endAt = 1
	s, tok := started(t, g, store)

	_, ok := s.Tick(tok)
	assert.False(t, ok)
	s.Finish()
	assert.Empty(t, store.history)
}

func TestStoreFailuresDoNotStopPlay(t *testing.T) {
	store := newMemStore()
	store.fail = errors.New("disk full")
	g := newCounter(1)
	g.endAt = 2
	s, tok := started(t, g, store)

	tok, ok := s.Tick(tok)
	require.True(t, ok)
	_, ok = s.Tick(tok)
	assert.False(t, ok)
	assert.True(t, s.State().Over())
	assert.Equal(t, 2, s.HighScore())
}

func TestDeferredTransitionResumesTicks(t *testing.T) {
	g := newCounter(1)
	g.clearAt = 2
	s, tok := started(t, g, nil)

	tok, _ = s.Tick(tok)
	_, ok := s.Tick(tok)
	assert.False(t, ok, "clearing the level stops ticks")
	assert.Equal(t, phase.LevelComplete, s.State().Phase)

	d, pending := s.Pending()
	require.True(t, pending)
	assert.Equal(t, time.Second, d.Delay)

	tok, ok = s.Resolve(d.ID)
	require.True(t, ok)
	assert.Equal(t, phase.Playing, s.State().Phase)

	_, ok = s.Tick(tok)
	assert.True(t, ok)
	assert.Equal(t, 3, g.score)
}

func TestStaleDeferralDropped(t *testing.T) {
	g := newCounter(1)
	g.clearAt = 1
	s, tok := started(t, g, nil)
	s.Tick(tok)

	d, pending := s.Pending()
	require.True(t, pending)

	s.Start(core.DefaultConfig())
	_, ok := s.Resolve(d.ID)
	assert.False(t, ok)
	assert.Equal(t, phase.Menu, s.State().Phase)
}

func TestRunUsesVirtualTime(t *testing.T) {
	g := newCounter(1)
	g.clearAt = 3
	g.endAt = 6
	s := New(g, nil, nil)
	s.Start(core.DefaultConfig())

	ticks, elapsed := s.Run(100, nil)

	assert.Equal(t, 6, ticks)
	assert.Equal(t, 6*cadence+time.Second, elapsed)
	assert.True(t, s.State().Over())
}

func TestRunFeedsInput(t *testing.T) {
	g := newCounter(1)
	s := New(g, nil, nil)
	s.Start(core.DefaultConfig())

	ticks, _ := s.Run(3, func(tick int) core.InputFrame {
		if tick == 1 {
			return core.Frame(core.Shoot)
		}
		return core.NewInputFrame()
	})

	assert.Equal(t, 3, ticks)
	require.Len(t, g.seen, 3)
	assert.False(t, g.seen[0].Has(core.Shoot))
	assert.True(t, g.seen[1].Has(core.Shoot))
}

func TestPlayOnWallClock(t *testing.T) {
	g := newCounter(1)
	g.clearAt = 2
	g.endAt = 4
	g.delay = time.Millisecond
	s := New(g, nil, nil)
	s.Start(core.DefaultConfig())

	ticks, err := s.Play(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 4, ticks)
	assert.True(t, s.State().Over())
}

func TestPlayStopsAtTickLimit(t *testing.T) {
	g := newCounter(1)
	s := New(g, nil, nil)
	s.Start(core.DefaultConfig())

	ticks, err := s.Play(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 3, g.score)
}
