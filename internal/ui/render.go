package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/sumant1122/xtop/internal/app"
	"github.com/sumant1122/xtop/internal/layout"
	"github.com/sumant1122/xtop/internal/monitor"
	"github.com/sumant1122/xtop/internal/theme"
)

// view renders one frame of a State. It is rebuilt for every frame.
type view struct {
	state  *app.State
	snap   *monitor.Snapshot
	theme  theme.Theme
	styles theme.Styles
	keys   keyMap
}

func newView(state *app.State) *view {
	t := state.Theme()
	snap := state.Snapshot()
	if snap == nil {
		snap = &monitor.Snapshot{}
	}
	return &view{
		state:  state,
		snap:   snap,
		theme:  t,
		styles: theme.BuildStyles(t),
		keys:   keys,
	}
}

// Render draws state into the region tree. The result has exactly the
// dimensions of root.Rect.
func Render(state *app.State, root layout.Region) string {
	return strings.Join(newView(state).region(root), "\n")
}

func (v *view) region(r layout.Region) []string {
	if r.Rect.Empty() {
		return nil
	}
	if len(r.Children) == 0 {
		return v.leaf(r)
	}

	blocks := make([][]string, 0, len(r.Children))
	for _, c := range r.Children {
		if c.Rect.Empty() {
			continue
		}
		blocks = append(blocks, v.region(c))
	}
	if r.Direction == layout.Row {
		return joinColumns(blocks...)
	}
	var out []string
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out
}

func (v *view) leaf(r layout.Region) []string {
	w, h := r.Rect.Width, r.Rect.Height
	switch r.Name {
	case layout.Header:
		return v.header(w, h)
	case layout.CPUPanel:
		return v.cpu(w, h)
	case layout.MemoryPanel:
		return v.memory(w, h)
	case layout.StoragePanel:
		return v.storage(w, h)
	case layout.NetworkPanel:
		return v.network(w, h)
	case layout.ProcessTable:
		return v.processes(w, h)
	default:
		return blank(w, h, v.styles.Base)
	}
}

func (v *view) header(w, h int) []string {
	text := fmt.Sprintf("xtop | Theme: %s | Layout: %s | Uptime: %s | Load: %s | %s",
		v.theme.Name,
		v.state.Mode(),
		monitor.FormatUptime(v.snap.Uptime),
		monitor.FormatLoad(v.snap.Load),
		hint(v.keys.ShortHelp()),
	)
	return v.box("System Info", []string{v.styles.Base.Render(text)}, w, h)
}

func (v *view) cpu(w, h int) []string {
	title := "CPU"
	if t := v.snap.MaxCPUTemperature(); t > 0 {
		title = fmt.Sprintf("CPU (Max: %.1f°C)", t)
	}
	inner := layout.Rect{Width: w, Height: h}.Inner()

	var columns [][]string
	for _, col := range layout.CPUColumns(inner, v.snap.CoreCount()) {
		var lines []string
		for i := col.Start; i < col.End && len(lines) < inner.Height; i++ {
			usage := v.snap.CPUs[i]
			label := fmt.Sprintf("CPU%-2d %3.0f%%", i, usage)
			lines = append(lines, v.gauge(label, usage, v.theme.Accent(i), col.Rect.Width, 1)...)
		}
		columns = append(columns, fitBlock(lines, col.Rect.Width, inner.Height, v.styles.Base))
	}
	return v.box(title, joinColumns(columns...), w, h)
}

func (v *view) memory(w, h int) []string {
	inner := layout.Rect{Width: w, Height: h}.Inner()
	chunks := layout.Split(inner, layout.Column, layout.Length(3), layout.Length(3), layout.Min(0))
	m := v.snap.Memory

	ram := fmt.Sprintf("RAM: Total: %.1f GB | Used: %.1f GB | Avail: %.1f GB",
		monitor.GB(m.Total), monitor.GB(m.Used), monitor.GB(m.Available))
	swap := fmt.Sprintf("SWP: Total: %.1f GB | Used: %.1f GB | Free: %.1f GB",
		monitor.GB(m.SwapTotal), monitor.GB(m.SwapUsed), monitor.GB(m.SwapFree))

	var body []string
	body = append(body, v.gauge(ram, v.snap.MemoryPercent(), v.theme.Color(2), inner.Width, chunks[0].Height)...)
	body = append(body, v.gauge(swap, v.snap.SwapPercent(), v.theme.Color(3), inner.Width, chunks[1].Height)...)
	body = append(body, v.memoryChart(inner.Width, chunks[2].Height)...)
	return v.box("Memory", body, w, h)
}

// memoryChart is the RAM history under a top rule, covering the last
// HistoryLength ticks on a 0-100 scale.
func (v *view) memoryChart(w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	lines := []string{v.styles.Border.Render(strings.Repeat(borderHorizontal, w))}
	tick := v.state.Tick()
	bounds := plotBounds{
		minX: tick - monitor.HistoryLength, maxX: tick,
		minY: 0, maxY: 100,
	}
	plot := lineChart(v.state.History().Memory().Points(), bounds, w, h-1, v.styles.Fill(v.theme.Color(2)))
	return append(lines, plot...)
}

func (v *view) storage(w, h int) []string {
	inner := layout.Rect{Width: w, Height: h}.Inner()
	disks := v.snap.Disks
	if len(disks) == 0 {
		return v.box("Storage", nil, w, h)
	}

	constraints := make([]layout.Constraint, 0, len(disks)+1)
	for range disks {
		constraints = append(constraints, layout.Length(3))
	}
	constraints = append(constraints, layout.Min(0))
	rows := layout.Split(inner, layout.Column, constraints...)

	var body []string
	for i, d := range disks {
		label := fmt.Sprintf("%s  Tot: %.0fG  Use: %.0fG  Free: %.0fG",
			sanitizeName(d.Mount), monitor.GB(d.Total), monitor.GB(d.Used()), monitor.GB(d.Available))
		body = append(body, v.gauge(label, d.UsedPercent(), v.theme.Color(4), inner.Width, rows[i].Height)...)
	}
	return v.box("Storage", body, w, h)
}

func (v *view) network(w, h int) []string {
	rx, tx := v.snap.NetTotals()
	body := []string{
		v.styles.Base.Render("Total RX: ") + v.styles.Fill(v.theme.Color(4)).Render(fmt.Sprintf("%.2f MB", monitor.MB(rx))),
		v.styles.Base.Render("Total TX: ") + v.styles.Fill(v.theme.Color(5)).Render(fmt.Sprintf("%.2f MB", monitor.MB(tx))),
	}
	return v.box("Network", body, w, h)
}

// processColumns are the table columns; widths include one cell of
// padding on each side.
var processColumns = []struct {
	title string
	size  layout.Constraint
}{
	{"PID", layout.Length(10)},
	{"Name", layout.Percentage(40)},
	{"CPU%", layout.Length(12)},
	{"Mem", layout.Length(17)},
	{"User", layout.Length(10)},
}

func (v *view) processes(w, h int) []string {
	inner := layout.Rect{Width: w, Height: h}.Inner()
	if inner.Empty() {
		return v.box("Processes", nil, w, h)
	}

	constraints := make([]layout.Constraint, len(processColumns))
	for i, c := range processColumns {
		constraints[i] = c.size
	}
	widths := layout.Split(inner, layout.Row, constraints...)
	cols := make([]table.Column, len(processColumns))
	for i, c := range processColumns {
		cols[i] = table.Column{Title: c.title, Width: max(widths[i].Width-2, 0)}
	}

	top := monitor.TopProcesses(v.snap.Processes, monitor.ProcessLimit)
	rows := make([]table.Row, 0, len(top))
	for _, p := range top {
		user := sanitizeName(p.User)
		if user == "" {
			user = "?"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(int(p.PID)),
			sanitizeName(p.Name),
			fmt.Sprintf("%.1f%%", p.CPU),
			fmt.Sprintf("%.1f MB", monitor.MB(p.Memory)),
			user,
		})
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithWidth(inner.Width),
		table.WithHeight(inner.Height),
	)
	t.SetStyles(v.tableStyles())

	return v.box("Processes", strings.Split(t.View(), "\n"), w, h)
}

func (v *view) tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = v.styles.TableHeader.
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(v.styles.Muted).
		BorderBackground(v.styles.Background).
		BorderBottom(true)
	s.Cell = v.styles.TableCell.Padding(0, 1)
	s.Selected = lipgloss.NewStyle()
	return s
}
