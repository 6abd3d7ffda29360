// Package round holds the lifecycle bookkeeping every game shares: the phase
// machine, the event ledger and the tick counter.
package round

import (
	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/ledger"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

// Round is owned by exactly one game. Only that game mutates it.
type Round struct {
	Machine *phase.Machine
	Ledger  *ledger.Ledger
	Tick    uint64

	rebuild func()
	mark    int
}

// New creates a round in Menu. rebuild runs whenever a Reset intent is
// accepted and must reinitialize the game's entities.
func New(rebuild func()) *Round {
	return &Round{
		Machine: phase.New(nil),
		Ledger:  ledger.New(),
		rebuild: rebuild,
	}
}

// Restart clears everything and returns to Menu without consulting the
// transition table. Used by Game.Reset.
func (r *Round) Restart() {
	r.Machine.Restart()
	r.Ledger.Reset()
	r.Tick = 0
	r.mark = 0
}

// Begin applies the lifecycle intents of a frame. It returns true when the
// caller should run one update: the game was Playing before the intents and
// still is afterwards.
func (r *Round) Begin(in core.InputFrame) bool {
	r.mark = r.Ledger.Len()
	was := r.Machine.Is(phase.Playing)

	if in.Has(core.Reset) && r.Machine.Fire(phase.Reset) {
		r.Ledger.Reset()
		r.Tick = 0
		r.mark = 0
		if r.rebuild != nil {
			r.rebuild()
		}
	}
	if in.Has(core.Start) {
		r.Machine.Fire(phase.Start)
	}
	if in.Has(core.TogglePause) {
		r.Machine.Fire(phase.TogglePause)
	}

	if was && r.Machine.Is(phase.Playing) {
		r.Tick++
		return true
	}
	return false
}

// End builds the step result from state and the events recorded since Begin.
func (r *Round) End(state core.GameState) core.StepResult {
	return core.StepResult{State: state, Events: r.Ledger.Since(r.mark)}
}

// Record appends an event stamped with the current tick.
func (r *Round) Record(kind ledger.Kind, state core.GameState, detail string) ledger.Event {
	return r.Ledger.Append(ledger.Event{
		Tick:   r.Tick,
		Kind:   kind,
		Score:  state.Score,
		Lives:  state.Lives,
		Level:  state.Level,
		Detail: detail,
	})
}

// Phase returns the current phase.
func (r *Round) Phase() phase.Phase {
	return r.Machine.Current()
}

// Playing reports whether the update step runs.
func (r *Round) Playing() bool {
	return r.Machine.Is(phase.Playing)
}
