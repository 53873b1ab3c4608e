package braille

import "fmt"

// Six-dot layout:
//
//	1 4
//	2 5
//	3 6
//
// Unicode offset 0x2800, dot n is bit n-1.
const (
	cellBase = 0x2800
	cellLast = 0x28FF
	sixDots  = 0x3F
)

// Cell is a single Braille pattern.
type Cell rune

// IsCell reports whether r lies in the Braille pattern block.
func IsCell(r rune) bool {
	return r >= cellBase && r <= cellLast
}

// CellFromDots builds a cell from dot numbers 1..6.
func CellFromDots(dots ...int) (Cell, error) {
	c := Cell(cellBase)
	for _, d := range dots {
		if d < 1 || d > 6 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidDot, d)
		}
		c |= 1 << (d - 1)
	}
	return c, nil
}

// ParseCell converts r to a Cell.
func ParseCell(r rune) (Cell, error) {
	if !IsCell(r) {
		return 0, fmt.Errorf("%w: %q", ErrNotCell, r)
	}
	return Cell(r), nil
}

// Has reports whether dot d is raised.
func (c Cell) Has(d int) bool {
	if d < 1 || d > 8 {
		return false
	}
	return (rune(c)-cellBase)&(1<<(d-1)) != 0
}

// Toggle flips dot d. Dots outside 1..6 leave the cell unchanged.
func (c Cell) Toggle(d int) Cell {
	if d < 1 || d > 6 {
		return c
	}
	return c ^ (1 << (d - 1))
}

// Dots lists the raised dots in ascending order.
func (c Cell) Dots() []int {
	var out []int
	for d := 1; d <= 8; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Blank reports whether no dot is raised.
func (c Cell) Blank() bool { return rune(c) == cellBase }

// SixDot reports whether only dots 1..6 are used.
func (c Cell) SixDot() bool {
	return IsCell(rune(c)) && (rune(c)-cellBase)&^sixDots == 0
}

func (c Cell) String() string { return string(rune(c)) }
