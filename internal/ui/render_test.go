package ui

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumant1122/xtop/internal/app"
	"github.com/sumant1122/xtop/internal/layout"
	"github.com/sumant1122/xtop/internal/monitor"
	"github.com/sumant1122/xtop/internal/theme"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type staticProvider struct {
	snap *monitor.Snapshot
}

func (p staticProvider) Refresh(context.Context) (*monitor.Snapshot, error) {
	return p.snap, nil
}

func sampleSnapshot() *monitor.Snapshot {
	return &monitor.Snapshot{
		CPUs: []float64{42, 7.6, 100, 0},
		Memory: monitor.MemoryStats{
			Total:     16 << 30,
			Used:      8 << 30,
			Available: 8 << 30,
			SwapTotal: 2 << 30,
			SwapUsed:  1 << 29,
			SwapFree:  3 << 29,
		},
		Disks: []monitor.Disk{
			{Mount: "/", Total: 100 << 30, Available: 40 << 30},
		},
		Networks: []monitor.NetInterface{
			{Name: "eth0", Received: 3 << 20, Transmitted: 1 << 19},
		},
		Processes: []monitor.Process{
			{PID: 10, Name: "idle", CPU: 0.5, Memory: 1 << 20},
			{PID: 42, Name: "\x1b[31mbusy\x1b[0m", CPU: 73.25, Memory: 256 << 20, User: "root"},
		},
		Sensors: []monitor.Sensor{{Label: "coretemp_core_0", Temperature: 54}},
		Uptime:  90061,
		Load:    monitor.LoadAvg{One: 0.5, Five: 1.25, Fifteen: 2},
	}
}

func newTestState(t *testing.T, snap *monitor.Snapshot) *app.State {
	t.Helper()
	c, err := theme.Builtin()
	require.NoError(t, err)
	s := app.New(staticProvider{snap: snap}, c, "x", nil)
	s.Advance(context.Background())
	return s
}

func assertFrame(t *testing.T, out string, width, height int) {
	t.Helper()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, height)
	for i, l := range lines {
		assert.Equal(t, width, ansi.StringWidth(l), "line %d: %q", i, l)
	}
}

func TestRenderFrameSize(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	sizes := [][2]int{{160, 50}, {80, 24}, {41, 12}, {20, 8}, {3, 3}}

	for _, mode := range []layout.Mode{layout.Dashboard, layout.Vertical, layout.ProcessFocus} {
		for _, sz := range sizes {
			out := Render(s, layout.Compute(mode, sz[0], sz[1]))
			assertFrame(t, out, sz[0], sz[1])
		}
		s.CycleLayout()
	}
}

func TestRenderTinyTerminals(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	for _, mode := range []layout.Mode{layout.Dashboard, layout.Vertical, layout.ProcessFocus} {
		for w := 1; w <= 12; w++ {
			for h := 1; h <= 16; h++ {
				out := Render(s, layout.Compute(mode, w, h))
				assertFrame(t, out, w, h)
			}
		}
	}
}

func TestRenderDecomposedMountPoint(t *testing.T) {
	snap := sampleSnapshot()
	snap.Disks = []monitor.Disk{
		{Mount: "/Volumes/Re\u0301sume\u0301 Cafe\u0301 Ole\u0301", Total: 1 << 30, Available: 1 << 29},
	}
	s := newTestState(t, snap)
	s.CycleLayout()
	s.CycleLayout()
	require.Equal(t, layout.ProcessFocus, s.Mode())

	var out string
	require.NotPanics(t, func() {
		out = Render(s, layout.Compute(s.Mode(), 80, 30))
	})
	assertFrame(t, out, 80, 30)
	assert.Contains(t, out, "/Volumes")
}

func TestRenderZeroSize(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	assert.Equal(t, "", Render(s, layout.Compute(layout.Dashboard, 0, 0)))
}

func TestRenderEmptySnapshot(t *testing.T) {
	s := newTestState(t, &monitor.Snapshot{})
	for _, mode := range []layout.Mode{layout.Dashboard, layout.Vertical, layout.ProcessFocus} {
		var out string
		require.NotPanics(t, func() {
			out = Render(s, layout.Compute(mode, 100, 40))
		})
		assertFrame(t, out, 100, 40)
		assert.Contains(t, out, "CPU")
		assert.NotContains(t, out, "Max:")
	}
}

func TestRenderHeader(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	out := Render(s, layout.Compute(layout.Dashboard, 160, 50))

	assert.Contains(t, out, "System Info")
	assert.Contains(t, out,
		"xtop | Theme: x | Layout: Dashboard | Uptime: 1d 1h 1m 1s | Load: 0.50 1.25 2.00 | [q] Quit [t] Theme [l] Layout")

	s.CycleLayout()
	s.CycleLayout()
	out = Render(s, layout.Compute(s.Mode(), 160, 50))
	assert.Contains(t, out, "Layout: Process Focus")
}

func TestRenderPanels(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	out := Render(s, layout.Compute(layout.Dashboard, 160, 50))

	assert.Contains(t, out, "CPU (Max: 54.0°C)")
	assert.Contains(t, out, "CPU0   42%")
	assert.Contains(t, out, "CPU1    8%")
	assert.Contains(t, out, "CPU2  100%")

	assert.Contains(t, out, "RAM: Total: 16.0 GB | Used: 8.0 GB | Avail: 8.0 GB")
	assert.Contains(t, out, "SWP: Total: 2.0 GB | Used: 0.5 GB | Free: 1.5 GB")
	assert.Contains(t, out, "/  Tot: 100G  Use: 60G  Free: 40G")
	assert.Contains(t, out, "Total RX: 3.00 MB")
	assert.Contains(t, out, "Total TX: 0.50 MB")
}

func TestRenderProcessTable(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	out := Render(s, layout.Compute(layout.ProcessFocus, 160, 50))

	assert.Contains(t, out, "Processes")
	for _, col := range []string{"PID", "Name", "CPU%", "Mem", "User"} {
		assert.Contains(t, out, col)
	}
	assert.Contains(t, out, "73.2%")
	assert.Contains(t, out, "256.0 MB")
	assert.Contains(t, out, "busy")
	assert.NotContains(t, out, "\x1b[31m")

	lines := strings.Split(out, "\n")
	busy, idle := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "busy") {
			busy = i
		}
		if strings.Contains(l, "idle") {
			idle = i
			assert.Contains(t, l, "?")
		}
	}
	require.NotEqual(t, -1, busy)
	require.NotEqual(t, -1, idle)
	assert.Less(t, busy, idle, "highest CPU first")
}

func TestRenderProcessLimit(t *testing.T) {
	snap := &monitor.Snapshot{}
	for i := 0; i < 80; i++ {
		snap.Processes = append(snap.Processes, monitor.Process{PID: int32(1000 + i), Name: "worker", CPU: float64(i)})
	}
	s := newTestState(t, snap)
	out := Render(s, layout.Compute(layout.ProcessFocus, 120, 100))

	assert.Equal(t, monitor.ProcessLimit, strings.Count(out, "worker"))
	assert.Contains(t, out, "1079")
	assert.NotContains(t, out, "1029 ")
}

func TestRenderMemoryChart(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	for i := 0; i < 20; i++ {
		s.Advance(context.Background())
	}
	out := Render(s, layout.Compute(layout.Vertical, 80, 60))
	assert.True(t, containsBraille(out), "memory history plotted")
}

func TestRenderCPUColumnsNarrow(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	v := newView(s)

	wide := strings.Join(v.cpu(44, 6), "\n")
	assert.Contains(t, wide, "CPU0")
	assert.Contains(t, wide, "CPU2")

	narrow := v.cpu(30, 3)
	require.Len(t, narrow, 3)
	assert.Contains(t, narrow[1], "CPU0")
	assert.NotContains(t, strings.Join(narrow, "\n"), "CPU1")
}

func containsBraille(s string) bool {
	for _, r := range s {
		if r > brailleBase && r <= '⣿' {
			return true
		}
	}
	return false
}
