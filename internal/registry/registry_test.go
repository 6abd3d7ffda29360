package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/ledger"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

type stub struct{ id string }

func (s stub) ID() string { return s.id }
func (s stub) Title() string { return "Stub " + s.id }
func (s stub) Reset(core.RuntimeConfig) {}
func (s stub) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stub) Render(*core.Screen) {}
func (s stub) State() core.GameState { return core.GameState{} }
func (s stub) Cadence() time.Duration { return 25 * time.Millisecond }
func (s stub) Recent(int) []ledger.Event { return nil }
func (s stub) Pending() (phase.Deferred, bool) { return phase.Deferred{}, false }
func (s stub) Resolve(uint64) bool { return false }

func TestRegisterAndCreate(t *testing.T) {
	calls := 0
	Register("zz-stub", func() Game {
		calls++
		return stub{id: "zz-stub"}
	})

	if !Exists("zz-stub") {
		t.Fatal("Expected zz-stub to be registered")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("Expected zz-stub, got %q", g.ID())
	}
	if calls != 2 {
		t.Errorf("Expected one probe call and one Create call, got %d", calls)
	}

	var found *GameInfo
	for _, info := range List() {
		info := info
		if info.ID == "zz-stub" {
			found = &info
		}
	}
	if found == nil {
		t.Fatal("zz-stub missing from List()")
	}
	if found.Title != "Stub zz-stub" || found.Cadence != 25*time.Millisecond {
		t.Errorf("Unexpected info: %+v", *found)
	}
}

func TestListSorted(t *testing.T) {
	Register("zz-b", func() Game { return stub{id: "zz-b"} })
	Register("zz-a", func() Game { return stub{id: "zz-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Expected ErrUnknownGame, got %v", err)
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	Register("zz-dup", func() Game { return stub{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic on duplicate registration")
		}
	}()
	Register("zz-dup", func() Game { return stub{id: "zz-dup"} })
}
