package monitor

import (
	"context"
	"strings"
)

// Provider is the source of host metrics. Refresh returns the freshest
// snapshot it can produce. A nil snapshot means nothing could be read; a
// non-nil snapshot with an error is a partial refresh.
type Provider interface {
	Refresh(ctx context.Context) (*Snapshot, error)
}

// Snapshot is one tick's read of OS state. It replaces the previous one
// wholesale.
type Snapshot struct {
	CPUs      []float64
	Memory    MemoryStats
	Disks     []Disk
	Networks  []NetInterface
	Processes []Process
	Sensors   []Sensor
	Uptime    uint64
	Load      LoadAvg
}

type MemoryStats struct {
	Total     uint64
	Used      uint64
	Available uint64
	Free      uint64

	SwapTotal uint64
	SwapUsed  uint64
	SwapFree  uint64
}

type Disk struct {
	Mount     string
	Total     uint64
	Available uint64
}

// Used is total minus available, never negative.
func (d Disk) Used() uint64 {
	if d.Available > d.Total {
		return 0
	}
	return d.Total - d.Available
}

// UsedPercent returns the share of the disk in use, 0 for an empty disk.
func (d Disk) UsedPercent() float64 {
	return Percent(d.Used(), d.Total)
}

// NetInterface carries cumulative byte counters since boot.
type NetInterface struct {
	Name        string
	Received    uint64
	Transmitted uint64
}

type Process struct {
	PID    int32
	Name   string
	CPU    float64
	Memory uint64
	User   string
}

type Sensor struct {
	Label       string
	Temperature float64
}

type LoadAvg struct {
	One     float64
	Five    float64
	Fifteen float64
}

// Percent returns part/total*100, or 0 when total is 0.
func Percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// CoreCount is the number of logical CPUs sampled.
func (s *Snapshot) CoreCount() int {
	return len(s.CPUs)
}

// MemoryPercent returns used RAM as a percentage of total RAM.
func (s *Snapshot) MemoryPercent() float64 {
	return Percent(s.Memory.Used, s.Memory.Total)
}

// SwapPercent returns used swap as a percentage of total swap.
func (s *Snapshot) SwapPercent() float64 {
	return Percent(s.Memory.SwapUsed, s.Memory.SwapTotal)
}

// NetTotals sums the cumulative counters of every interface.
func (s *Snapshot) NetTotals() (rx, tx uint64) {
	for _, n := range s.Networks {
		rx += n.Received
		tx += n.Transmitted
	}
	return rx, tx
}

// MaxCPUTemperature scans sensors whose label mentions "core" or "cpu"
// (case-insensitive) and returns the hottest reading, or 0 if none match.
func (s *Snapshot) MaxCPUTemperature() float64 {
	var max float64
	for _, sensor := range s.Sensors {
		label := strings.ToLower(sensor.Label)
		if !strings.Contains(label, "core") && !strings.Contains(label, "cpu") {
			continue
		}
		if sensor.Temperature > max {
			max = sensor.Temperature
		}
	}
	return max
}
