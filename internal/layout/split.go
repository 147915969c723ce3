package layout

// Direction is the axis children are laid out along.
type Direction int

const (
	// Column stacks children top to bottom.
	Column Direction = iota
	// Row places children left to right.
	Row
)

type constraintKind int

const (
	kindLength constraintKind = iota
	kindPercentage
	kindMin
)

// Constraint sizes one child of a split.
type Constraint struct {
	kind  constraintKind
	value int
}

// Length asks for exactly n cells.
func Length(n int) Constraint { return Constraint{kind: kindLength, value: max(n, 0)} }

// Percentage asks for p percent of the space left after fixed lengths.
func Percentage(p int) Constraint {
	return Constraint{kind: kindPercentage, value: min(max(p, 0), 100)}
}

// Min asks for at least n cells and absorbs whatever is left over.
func Min(n int) Constraint { return Constraint{kind: kindMin, value: max(n, 0)} }

// Split divides area along dir. Fixed lengths and minimums are served
// first in order and clamped to what remains; percentages share the rest.
// Leftover cells go to the first Min constraint, else the last child. The
// returned rectangles tile area without overlap.
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	if len(constraints) == 0 {
		return nil
	}
	total := area.Height
	if dir == Row {
		total = area.Width
	}
	total = max(total, 0)

	sizes := make([]int, len(constraints))
	remaining := total
	absorber := -1
	for i, c := range constraints {
		switch c.kind {
		case kindLength, kindMin:
			sizes[i] = min(c.value, remaining)
			remaining -= sizes[i]
			if c.kind == kindMin && absorber < 0 {
				absorber = i
			}
		}
	}

	pool := remaining
	for i, c := range constraints {
		if c.kind != kindPercentage {
			continue
		}
		sizes[i] = min(pool*c.value/100, remaining)
		remaining -= sizes[i]
	}

	if absorber < 0 {
		absorber = len(constraints) - 1
	}
	sizes[absorber] += remaining

	rects := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		if dir == Row {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, Width: size, Height: area.Height}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: size}
		}
		offset += size
	}
	return rects
}
