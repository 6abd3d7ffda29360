package core

// Intent is an abstract player action, decoupled from the device that
// produced it. Games only ever see intents.
type Intent int

const (
	IntentNone Intent = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Shoot
	TogglePause
	SelectCell // carries an index, see InputFrame.SelectCell
	Start
	Reset
	Quit
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case Shoot:
		return "Shoot"
	case TogglePause:
		return "TogglePause"
	case SelectCell:
		return "SelectCell"
	case Start:
		return "Start"
	case Reset:
		return "Reset"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the intents raised during one tick.
type InputFrame struct {
	// Intents maps intents to whether they were raised this frame.
	Intents map[Intent]bool
	cell    int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Intents: make(map[Intent]bool)}
}

// Frame builds an input frame with the given intents set.
func Frame(intents ...Intent) InputFrame {
	f := NewInputFrame()
	for _, i := range intents {
		f.Set(i)
	}
	return f
}

// Set marks an intent as raised for this frame.
func (f *InputFrame) Set(i Intent) {
	if f.Intents == nil {
		f.Intents = make(map[Intent]bool)
	}
	f.Intents[i] = true
}

// SelectCell raises SelectCell with the given cell index. A later call in
// the same frame replaces the index.
func (f *InputFrame) SelectCell(index int) {
	f.Set(SelectCell)
	f.cell = index
}

// Cell returns the selected cell index if SelectCell was raised.
func (f InputFrame) Cell() (int, bool) {
	if !f.Has(SelectCell) {
		return 0, false
	}
	return f.cell, true
}

// Has returns true if the given intent was raised this frame.
func (f InputFrame) Has(i Intent) bool {
	if f.Intents == nil {
		return false
	}
	return f.Intents[i]
}

// Empty reports whether no intent was raised.
func (f InputFrame) Empty() bool {
	return len(f.Intents) == 0
}

// Clear resets all intents for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Intents {
		delete(f.Intents, k)
	}
	f.cell = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Intents {
		clone.Intents[k] = v
	}
	clone.cell = f.cell
	return clone
}

// Merge raises every intent of other in f. A SelectCell in other replaces
// f's cell index.
func (f *InputFrame) Merge(other InputFrame) {
	for k, v := range other.Intents {
		if v {
			f.Set(k)
		}
	}
	if other.Has(SelectCell) {
		f.cell = other.cell
	}
}
