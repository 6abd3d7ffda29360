// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/ledger"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

// ErrUnknownGame is returned by Create for an unregistered id.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract every simulation core implements.
// Games contain pure logic with no terminal dependencies; the platform
// handles input mapping, timing, persistence and display.
type Game interface {
	// ID returns a unique identifier (e.g. "pong"). Used for CLI commands
	// and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset rebuilds every entity, clears the ledger and returns to Menu.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's lifecycle intents (Start, TogglePause,
	// Reset) and then, if the game was and still is Playing, runs one
	// update. Lifecycle intents that are illegal in the current phase are
	// ignored.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. It must not mutate the game.
	Render(dst *core.Screen)

	// State returns the public summary of the game.
	State() core.GameState

	// Cadence is the interval between updates while Playing.
	Cadence() time.Duration

	// Recent returns up to n of the latest ledger events, oldest first.
	Recent(n int) []ledger.Event

	// Pending returns the deferred phase trigger, if one is scheduled.
	Pending() (phase.Deferred, bool)

	// Resolve fires a deferred trigger once its delay has elapsed. It
	// reports false if the trigger was canceled in the meantime.
	Resolve(id uint64) bool
}

// GameInfo describes a registered game as built by its default factory.
type GameInfo struct {
	ID      string
	Title   string
	Cadence time.Duration
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory under id. The factory is called once to
// capture the title and cadence. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: g.Title(), Cadence: g.Cadence()}
}

// List returns every registered game sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
