// Package layout turns a layout mode and a terminal size into a tree of
// named screen regions. It holds no state; the tree is rebuilt every frame.
package layout

// Mode selects one of the fixed screen templates.
type Mode int

const (
	Dashboard Mode = iota
	Vertical
	ProcessFocus
)

// Next returns the mode that follows m in the cycle
// Dashboard -> Vertical -> ProcessFocus -> Dashboard.
func (m Mode) Next() Mode {
	switch m {
	case Dashboard:
		return Vertical
	case Vertical:
		return ProcessFocus
	case ProcessFocus:
		return Dashboard
	default:
		return Dashboard
	}
}

// String returns the label shown in the header.
func (m Mode) String() string {
	switch m {
	case Dashboard:
		return "Dashboard"
	case Vertical:
		return "Vertical"
	case ProcessFocus:
		return "Process Focus"
	default:
		return "Dashboard"
	}
}

// Name identifies what a region shows. Leaf names are drawn by the
// renderer; the others only group children.
type Name string

const (
	Header       Name = "header"
	CPUPanel     Name = "cpu"
	MemoryPanel  Name = "memory"
	StoragePanel Name = "storage"
	NetworkPanel Name = "network"
	ProcessTable Name = "processes"

	Root       Name = "root"
	Top        Name = "top"
	Side       Name = "side"
	QuickStats Name = "quick-stats"
)

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner shrinks the rectangle by a one-cell border on every side.
func (r Rect) Inner() Rect {
	in := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if in.Width < 0 {
		in.Width = 0
	}
	if in.Height < 0 {
		in.Height = 0
	}
	return in
}

// Region is a node of the layout tree. Children, when present, tile Rect
// along Direction.
type Region struct {
	Name      Name
	Rect      Rect
	Direction Direction
	Children  []Region
}

// Leaves returns the leaf regions in drawing order.
func (r Region) Leaves() []Region {
	if len(r.Children) == 0 {
		return []Region{r}
	}
	var out []Region
	for _, c := range r.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Find returns the first region named n.
func (r Region) Find(n Name) (Region, bool) {
	if r.Name == n {
		return r, true
	}
	for _, c := range r.Children {
		if found, ok := c.Find(n); ok {
			return found, true
		}
	}
	return Region{}, false
}

// headerRows is the fixed header height in every template.
const headerRows = 3

// Compute builds the region tree for mode on a width x height screen.
func Compute(mode Mode, width, height int) Region {
	area := Rect{Width: max(width, 0), Height: max(height, 0)}
	switch mode {
	case Vertical:
		return vertical(area)
	case ProcessFocus:
		return processFocus(area)
	default:
		return dashboard(area)
	}
}

func dashboard(area Rect) Region {
	rows := Split(area, Column, Length(headerRows), Percentage(45), Percentage(52))
	cols := Split(rows[1], Row, Percentage(50), Percentage(50))
	side := Split(cols[1], Column, Percentage(33), Percentage(33), Percentage(34))

	return Region{
		Name: Root, Rect: area, Direction: Column,
		Children: []Region{
			{Name: Header, Rect: rows[0]},
			{
				Name: Top, Rect: rows[1], Direction: Row,
				Children: []Region{
					{Name: CPUPanel, Rect: cols[0]},
					{
						Name: Side, Rect: cols[1], Direction: Column,
						Children: []Region{
							{Name: MemoryPanel, Rect: side[0]},
							{Name: StoragePanel, Rect: side[1]},
							{Name: NetworkPanel, Rect: side[2]},
						},
					},
				},
			},
			{Name: ProcessTable, Rect: rows[2]},
		},
	}
}

func vertical(area Rect) Region {
	rows := Split(area, Column,
		Length(headerRows), Length(10), Length(10), Length(10), Length(6), Min(0))

	return Region{
		Name: Root, Rect: area, Direction: Column,
		Children: []Region{
			{Name: Header, Rect: rows[0]},
			{Name: CPUPanel, Rect: rows[1]},
			{Name: MemoryPanel, Rect: rows[2]},
			{Name: StoragePanel, Rect: rows[3]},
			{Name: NetworkPanel, Rect: rows[4]},
			{Name: ProcessTable, Rect: rows[5]},
		},
	}
}

func processFocus(area Rect) Region {
	rows := Split(area, Column, Length(headerRows), Length(10), Min(0))
	stats := Split(rows[1], Row, Percentage(25), Percentage(25), Percentage(25), Percentage(25))

	return Region{
		Name: Root, Rect: area, Direction: Column,
		Children: []Region{
			{Name: Header, Rect: rows[0]},
			{
				Name: QuickStats, Rect: rows[1], Direction: Row,
				Children: []Region{
					{Name: CPUPanel, Rect: stats[0]},
					{Name: MemoryPanel, Rect: stats[1]},
					{Name: StoragePanel, Rect: stats[2]},
					{Name: NetworkPanel, Rect: stats[3]},
				},
			},
			{Name: ProcessTable, Rect: rows[2]},
		},
	}
}

// cpuSplitWidth is the inner width above which cores are drawn in two columns.
const cpuSplitWidth = 40

// CoreColumn is one column of per-core gauges covering cores [Start, End).
type CoreColumn struct {
	Rect  Rect
	Start int
	End   int
}

// Rows returns the number of cores drawn in the column.
func (c CoreColumn) Rows() int {
	return c.End - c.Start
}

// CPUColumns splits the CPU panel's inner area for count cores. Wider than
// 40 cells gives two half-width columns, otherwise one; each column holds
// (count+1)/columns cores, the last one possibly fewer.
func CPUColumns(inner Rect, count int) []CoreColumn {
	if count <= 0 {
		return nil
	}
	var rects []Rect
	if inner.Width > cpuSplitWidth {
		rects = Split(inner, Row, Percentage(50), Percentage(50))
	} else {
		rects = Split(inner, Row, Percentage(100))
	}

	perColumn := (count + 1) / len(rects)
	cols := make([]CoreColumn, 0, len(rects))
	for i, r := range rects {
		start := min(i*perColumn, count)
		end := min(start+perColumn, count)
		cols = append(cols, CoreColumn{Rect: r, Start: start, End: end})
	}
	return cols
}
