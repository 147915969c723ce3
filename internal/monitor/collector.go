package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/shirou/gopsutil/v4/sensors"
)

// section is one independently failing part of a refresh. When collect
// fails, carry copies the previous tick's value into the new snapshot.
type section struct {
	name    string
	collect func(ctx context.Context, s *Snapshot) error
	carry   func(dst, prev *Snapshot)
}

// Collector reads host metrics through gopsutil. It is a Provider.
//
// Process CPU percentages are computed against the previous call, so the
// collector keeps process handles alive between refreshes.
type Collector struct {
	log      *slog.Logger
	sections []section
	last     Snapshot
	procs    map[int32]*process.Process
	users    map[int32]string
}

// NewCollector returns a Collector logging to log. A nil logger discards.
func NewCollector(log *slog.Logger) *Collector {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Collector{
		log:   log,
		procs: make(map[int32]*process.Process),
		users: make(map[int32]string),
	}
	c.sections = []section{
		{"cpu", c.collectCPU, func(d, p *Snapshot) { d.CPUs = p.CPUs }},
		{"memory", c.collectMemory, func(d, p *Snapshot) { d.Memory = p.Memory }},
		{"disk", c.collectDisks, func(d, p *Snapshot) { d.Disks = p.Disks }},
		{"network", c.collectNetwork, func(d, p *Snapshot) { d.Networks = p.Networks }},
		{"process", c.collectProcesses, func(d, p *Snapshot) { d.Processes = p.Processes }},
		{"sensors", c.collectSensors, func(d, p *Snapshot) { d.Sensors = p.Sensors }},
		{"uptime", c.collectUptime, func(d, p *Snapshot) { d.Uptime = p.Uptime }},
		{"load", c.collectLoad, func(d, p *Snapshot) { d.Load = p.Load }},
	}
	return c
}

// Refresh samples every section. Sections that fail keep their previous
// value and their errors are joined into the returned error. If every
// section fails, no snapshot is returned.
func (c *Collector) Refresh(ctx context.Context) (*Snapshot, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	start := time.Now()
	var next Snapshot
	var errs []error
	for _, sec := range c.sections {
		if err := sec.collect(ctx, &next); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sec.name, err))
			sec.carry(&next, &c.last)
		}
	}

	if len(errs) == len(c.sections) {
		return nil, fmt.Errorf("monitor: all collectors failed: %w", errors.Join(errs...))
	}

	c.last = next
	c.log.Debug("refreshed snapshot",
		"cores", len(next.CPUs),
		"processes", len(next.Processes),
		"failed", len(errs),
		"elapsed", time.Since(start))

	snap := next
	return &snap, errors.Join(errs...)
}

func (c *Collector) collectCPU(ctx context.Context, s *Snapshot) error {
	// Interval 0 compares against the previous call.
	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return err
	}
	s.CPUs = perCore
	return nil
}

func (c *Collector) collectMemory(ctx context.Context, s *Snapshot) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return err
	}
	s.Memory.Total = vm.Total
	s.Memory.Used = vm.Used
	s.Memory.Available = vm.Available
	s.Memory.Free = vm.Free

	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		// No swap configured is not a failure.
		return nil
	}
	s.Memory.SwapTotal = sw.Total
	s.Memory.SwapUsed = sw.Used
	s.Memory.SwapFree = sw.Free
	return nil
}

func (c *Collector) collectDisks(ctx context.Context, s *Snapshot) error {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if isVirtualFS(p.Fstype) {
			continue
		}
		if _, dup := seen[p.Mountpoint]; dup {
			continue
		}
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			continue
		}
		seen[p.Mountpoint] = struct{}{}
		s.Disks = append(s.Disks, Disk{
			Mount:     p.Mountpoint,
			Total:     usage.Total,
			Available: usage.Free,
		})
	}
	return nil
}

func (c *Collector) collectNetwork(ctx context.Context, s *Snapshot) error {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return err
	}
	s.Networks = make([]NetInterface, 0, len(counters))
	for _, n := range counters {
		s.Networks = append(s.Networks, NetInterface{
			Name:        n.Name,
			Received:    n.BytesRecv,
			Transmitted: n.BytesSent,
		})
	}
	return nil
}

func (c *Collector) collectProcesses(ctx context.Context, s *Snapshot) error {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return err
	}

	alive := make(map[int32]struct{}, len(procs))
	s.Processes = make([]Process, 0, len(procs))
	for _, p := range procs {
		alive[p.Pid] = struct{}{}
		cached, ok := c.procs[p.Pid]
		if !ok {
			c.procs[p.Pid] = p
			cached = p
		}

		pct, err := cached.PercentWithContext(ctx, 0)
		if err != nil {
			// exited since enumeration
			continue
		}
		name, err := cached.NameWithContext(ctx)
		if err != nil {
			name = "unknown"
		}
		var rss uint64
		if info, err := cached.MemoryInfoWithContext(ctx); err == nil && info != nil {
			rss = info.RSS
		}

		s.Processes = append(s.Processes, Process{
			PID:    p.Pid,
			Name:   name,
			CPU:    pct,
			Memory: rss,
			User:   c.username(ctx, cached),
		})
	}

	for pid := range c.procs {
		if _, ok := alive[pid]; !ok {
			delete(c.procs, pid)
			delete(c.users, pid)
		}
	}
	return nil
}

// username resolves and caches the owner of p. Unresolvable owners are
// cached as "" so the lookup is not retried every tick.
func (c *Collector) username(ctx context.Context, p *process.Process) string {
	if name, ok := c.users[p.Pid]; ok {
		return name
	}
	name, err := p.UsernameWithContext(ctx)
	if err != nil {
		name = ""
	}
	c.users[p.Pid] = name
	return name
}

func (c *Collector) collectSensors(_ context.Context, s *Snapshot) error {
	temps, err := sensors.SensorsTemperatures()
	// Some platforms return readings alongside warnings.
	if len(temps) == 0 && err != nil {
		return err
	}
	s.Sensors = make([]Sensor, 0, len(temps))
	for _, t := range temps {
		s.Sensors = append(s.Sensors, Sensor{Label: t.SensorKey, Temperature: t.Temperature})
	}
	return nil
}

func (c *Collector) collectUptime(ctx context.Context, s *Snapshot) error {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return err
	}
	s.Uptime = secs
	return nil
}

func (c *Collector) collectLoad(ctx context.Context, s *Snapshot) error {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return err
	}
	s.Load = LoadAvg{One: avg.Load1, Five: avg.Load5, Fifteen: avg.Load15}
	return nil
}

// isVirtualFS reports filesystem types that do not represent real storage.
func isVirtualFS(fstype string) bool {
	switch fstype {
	case "devfs", "devtmpfs", "tmpfs", "sysfs", "proc", "cgroup", "cgroup2",
		"autofs", "mqueue", "hugetlbfs", "debugfs", "tracefs", "securityfs",
		"pstore", "bpf", "fusectl", "configfs", "ramfs", "rpc_pipefs",
		"nfsd", "map", "devpts", "squashfs", "nsfs":
		return true
	}
	return false
}
