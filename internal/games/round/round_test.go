package round

import (
	"testing"

	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

func TestBeginGatesUpdate(t *testing.T) {
	r := New(nil)

	if r.Begin(core.Frame(core.Start)) {
		t.Error("the starting frame must not run an update")
	}
	if !r.Playing() {
		t.Fatalf("expected Playing, got %v", r.Phase())
	}
	if !r.Begin(core.NewInputFrame()) {
		t.Error("expected an update while Playing")
	}
	if r.Begin(core.Frame(core.TogglePause)) {
		t.Error("the pausing frame must not run an update")
	}
	if r.Tick != 1 {
		t.Errorf("expected tick 1, got %d", r.Tick)
	}
}

func TestResetRebuildsOnlyWhenLegal(t *testing.T) {
	rebuilt := 0
	r := New(func() { rebuilt++ })

	r.Begin(core.Frame(core.Start))
	r.Begin(core.Frame(core.Reset)) // Playing + Reset is not in the table
	if rebuilt != 0 {
		t.Fatalf("reset while Playing rebuilt %d times", rebuilt)
	}

	r.Begin(core.Frame(core.TogglePause))
	r.Record("probe", core.GameState{Score: 5}, "")
	r.Begin(core.Frame(core.Reset))
	if rebuilt != 1 {
		t.Errorf("expected one rebuild from Paused, got %d", rebuilt)
	}
	if r.Phase() != phase.Menu || r.Ledger.Len() != 0 || r.Tick != 0 {
		t.Errorf("reset left phase %v, %d events, tick %d", r.Phase(), r.Ledger.Len(), r.Tick)
	}
}

func TestEndReturnsEventsSinceBegin(t *testing.T) {
	r := New(nil)
	r.Begin(core.Frame(core.Start))
	r.Record("before", core.GameState{}, "")

	r.Begin(core.NewInputFrame())
	r.Record("during", core.GameState{Score: 3, Lives: 2}, "x")
	res := r.End(core.GameState{Score: 3})

	if len(res.Events) != 1 || res.Events[0].Kind != "during" {
		t.Fatalf("expected only the event from this step, got %+v", res.Events)
	}
	if e := res.Events[0]; e.Tick != 1 || e.Lives != 2 || e.Detail != "x" {
		t.Errorf("unexpected event %+v", e)
	}
	if res.State.Score != 3 {
		t.Errorf("expected score 3, got %d", res.State.Score)
	}
}
