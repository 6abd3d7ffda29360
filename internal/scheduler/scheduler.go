// Package scheduler drives simulation ticks while a game is playing.
//
// The scheduler does not own a timer. Hosts ask for a Token when play
// resumes and hand it back with every tick; Fire runs the update only for the
// current token. Halting bumps the generation, so a tick that was already in
// flight when the game paused is dropped instead of running late.
package scheduler

import (
	"context"
	"errors"
	"time"
)

// ErrActive is returned by Run when the scheduler is already running.
var ErrActive = errors.New("scheduler: already active")

// Token authorizes exactly one tick.
type Token struct {
	gen uint64
	seq uint64
}

// Scheduler tracks whether ticks are currently allowed.
type Scheduler struct {
	active bool
	gen    uint64
	seq    uint64
}

// New creates an inactive scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Active reports whether ticks are being accepted.
func (s *Scheduler) Active() bool {
	return s.active
}

// Resume activates the scheduler and returns the first token. It returns
// false if the scheduler was already active; the running chain keeps going.
func (s *Scheduler) Resume() (Token, bool) {
	if s.active {
		return Token{}, false
	}
	s.active = true
	s.gen++
	s.seq = 0
	return Token{gen: s.gen}, true
}

// Halt deactivates the scheduler and invalidates every outstanding token.
func (s *Scheduler) Halt() {
	if !s.active {
		return
	}
	s.active = false
	s.gen++
}

// Fire runs step once if t is the current token. step reports whether play
// continues; when it does, Fire returns the token for the next tick,
// otherwise the scheduler halts.
func (s *Scheduler) Fire(t Token, step func() bool) (Token, bool) {
	if !s.active || t.gen != s.gen || t.seq != s.seq {
		return Token{}, false
	}
	s.seq++
	if !step() {
		s.Halt()
		return Token{}, false
	}
	if !s.active || t.gen != s.gen {
		// step halted us itself
		return Token{}, false
	}
	return Token{gen: s.gen, seq: s.seq}, true
}

// Run drives step from a ticker until step reports play stopped or ctx is
// done. It is the headless counterpart of the bubbletea tick loop.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, step func() bool) error {
	tok, ok := s.Resume()
	if !ok {
		return ErrActive
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Halt()
			return ctx.Err()
		case <-ticker.C:
			tok, ok = s.Fire(tok, step)
			if !ok {
				return nil
			}
		}
	}
}
