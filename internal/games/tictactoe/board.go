package tictactoe

// Mark is the content of a cell.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Board is a 3x3 grid indexed row-major from 0 to 8.
type Board [9]Mark

// Lines are the eight winning triples.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// preference is the fallback move order: center, corners, edges.
var preference = [9]int{4, 0, 2, 6, 8, 1, 3, 5, 7}

// Winner returns the winning mark and its line, if any.
func (b Board) Winner() (Mark, [3]int, bool) {
	for _, l := range Lines {
		if m := b[l[0]]; m != Empty && m == b[l[1]] && m == b[l[2]] {
			return m, l, true
		}
	}
	return Empty, [3]int{}, false
}

// Full reports whether every cell is taken.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Free reports whether i is a valid empty cell.
func (b Board) Free(i int) bool {
	return i >= 0 && i < len(b) && b[i] == Empty
}

// BestMove picks a move for me: an immediate win, else a block of the
// opponent's immediate win, else the first free cell by preference. It
// returns -1 on a full board.
func BestMove(b Board, me Mark) int {
	if i := completing(b, me); i >= 0 {
		return i
	}
	if i := completing(b, me.Other()); i >= 0 {
		return i
	}
	for _, i := range preference {
		if b.Free(i) {
			return i
		}
	}
	return -1
}

// completing returns the lowest free cell that gives m three in a row.
func completing(b Board, m Mark) int {
	for i := range b {
		if !b.Free(i) {
			continue
		}
		trial := b
		trial[i] = m
		if w, _, ok := trial.Winner(); ok && w == m {
			return i
		}
	}
	return -1
}
