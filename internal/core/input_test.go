package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := Frame(MoveUp, Shoot)

	if !f.Has(MoveUp) || !f.Has(Shoot) {
		t.Fatal("Frame should set the given intents")
	}
	if f.Has(MoveDown) {
		t.Error("MoveDown should not be set")
	}
	if _, ok := f.Cell(); ok {
		t.Error("Cell should report nothing without SelectCell")
	}

	f.SelectCell(4)
	if idx, ok := f.Cell(); !ok || idx != 4 {
		t.Errorf("Cell() = %d, %v, expected 4, true", idx, ok)
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should drop every intent")
	}
	if idx, ok := clone.Cell(); !ok || idx != 4 || !clone.Has(Shoot) {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroFrame(t *testing.T) {
	var f InputFrame
	if f.Has(Start) {
		t.Error("zero frame has no intents")
	}
	f.Set(Start)
	if !f.Has(Start) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestFixedRand(t *testing.T) {
	r := FixedRand(0.5)
	if r.Float64() != 0.5 {
		t.Error("Float64 should return the fixed value")
	}
	if r.Intn(10) != 5 {
		t.Errorf("Intn(10) = %d, expected 5", r.Intn(10))
	}
	if FixedRand(1).Intn(3) != 2 {
		t.Error("Intn must stay below n")
	}
}

func TestScriptedRand(t *testing.T) {
	r := &ScriptedRand{Values: []float64{0.1, 0.9}}
	if r.Float64() != 0.1 || r.Float64() != 0.9 || r.Float64() != 0.9 {
		t.Error("ScriptedRand should replay then repeat the last value")
	}
}

func TestMerge(t *testing.T) {
	f := Frame(MoveUp)
	other := NewInputFrame()
	other.SelectCell(4)
	other.Set(Shoot)

	f.Merge(other)
	if !f.Has(MoveUp) || !f.Has(Shoot) {
		t.Error("Merge should keep existing intents and add new ones")
	}
	if cell, ok := f.Cell(); !ok || cell != 4 {
		t.Errorf("Cell() = %d, %v, expected 4, true", cell, ok)
	}

	f.Merge(Frame(MoveDown))
	if cell, _ := f.Cell(); cell != 4 {
		t.Error("Merge without SelectCell must not touch the cell index")
	}
}
