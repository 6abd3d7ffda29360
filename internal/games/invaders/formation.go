package invaders

import (
	"math"

	"github.com/vovakirdan/arcade-cores/internal/config"
	"github.com/vovakirdan/arcade-cores/internal/core"
)

// Invader is one member of the formation.
type Invader struct {
	core.Box
	Row, Col int
	Points   int
}

// Formation is the hostile grid. All members share one direction and speed.
type Formation struct {
	Members []Invader
	Dir     float64 // +1 right, -1 left
	Speed   float64
}

// NewFormation builds a full grid marching right at speed.
func NewFormation(cfg config.InvadersFormation, speed float64) Formation {
	members := make([]Invader, 0, cfg.Rows*cfg.Cols)
	for row, rows := 0, cfg.Rows; row < rows; row++ {
		for col, cols := 0, cfg.Cols; col < cols; col++ {
			members = append(members, Invader{
				Box: core.Box{
					X: cfg.StartX + float64(col)*cfg.SpacingX,
					Y: cfg.StartY + float64(row)*cfg.SpacingY,
					W: cfg.Width,
					H: cfg.Height,
				},
				Row:    row,
				Col:    col,
				Points: rowPoints(cfg.RowPoints, row),
			})
		}
	}
	return Formation{Members: members, Dir: 1, Speed: speed}
}

func rowPoints(points []int, row int) int {
	if len(points) == 0 {
		return 10
	}
	return points[min(row, len(points)-1)]
}

// Empty reports whether every member has been destroyed.
func (f *Formation) Empty() bool {
	return len(f.Members) == 0
}

// Extents returns the leftmost edge, rightmost edge and lowest bottom.
func (f *Formation) Extents() (left, right, bottom float64) {
	left, right, bottom = math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, m := range f.Members {
		left = math.Min(left, m.X)
		right = math.Max(right, m.Right())
		bottom = math.Max(bottom, m.Bottom())
	}
	return left, right, bottom
}

// March moves the formation one tick. When the formation is past a margin
// and still heading toward it, it drops instead of moving sideways and turns
// around. March reports whether it dropped.
func (f *Formation) March(courtW, margin, drop float64) bool {
	if f.Empty() {
		return false
	}
	left, right, _ := f.Extents()
	breach := (f.Dir > 0 && right >= courtW-margin) || (f.Dir < 0 && left <= margin)

	if breach {
		f.Dir = -f.Dir
		for i := range f.Members {
			f.Members[i].Y += drop
		}
		return true
	}
	dx := f.Speed * f.Dir
	for i := range f.Members {
		f.Members[i].X += dx
	}
	return false
}

// Front returns the indices of the lowest surviving member in each column.
func (f *Formation) Front() []int {
	lowest := make(map[int]int)
	for i, m := range f.Members {
		j, ok := lowest[m.Col]
		if !ok || m.Y > f.Members[j].Y {
			lowest[m.Col] = i
		}
	}
	front := make([]int, 0, len(lowest))
	for i, m := range f.Members {
		if lowest[m.Col] == i {
			front = append(front, i)
		}
	}
	return front
}

// Remove destroys the member at index i.
func (f *Formation) Remove(i int) Invader {
	m := f.Members[i]
	f.Members = append(f.Members[:i], f.Members[i+1:]...)
	return m
}

// Reached reports whether any member's bottom is at or below y.
func (f *Formation) Reached(y float64) bool {
	for _, m := range f.Members {
		if m.Bottom() >= y {
			return true
		}
	}
	return false
}
