package monitor

// HistoryLength is the number of points every series retains.
const HistoryLength = 100

// Point is one sample on a chart: X is the logical tick, Y the value.
type Point struct {
	X float64
	Y float64
}

// TimeSeries is a fixed-capacity ring buffer of points. Pushing past
// capacity overwrites the oldest point.
type TimeSeries struct {
	data  []Point
	head  int
	count int
}

// NewTimeSeries creates an empty series holding up to size points.
func NewTimeSeries(size int) *TimeSeries {
	if size <= 0 {
		size = HistoryLength
	}
	return &TimeSeries{data: make([]Point, size)}
}

// Push appends a point, evicting the oldest one when full.
func (ts *TimeSeries) Push(p Point) {
	ts.data[ts.head] = p
	ts.head = (ts.head + 1) % len(ts.data)
	if ts.count < len(ts.data) {
		ts.count++
	}
}

// Len returns the number of stored points.
func (ts *TimeSeries) Len() int {
	return ts.count
}

// Cap returns the series capacity.
func (ts *TimeSeries) Cap() int {
	return len(ts.data)
}

// Points returns the stored points oldest first.
func (ts *TimeSeries) Points() []Point {
	if ts.count == 0 {
		return nil
	}
	out := make([]Point, ts.count)
	// head is the next write slot, so the oldest point sits count slots behind it.
	start := (ts.head - ts.count + len(ts.data)) % len(ts.data)
	for i := range out {
		out[i] = ts.data[(start+i)%len(ts.data)]
	}
	return out
}

// First returns the oldest point.
func (ts *TimeSeries) First() (Point, bool) {
	if ts.count == 0 {
		return Point{}, false
	}
	start := (ts.head - ts.count + len(ts.data)) % len(ts.data)
	return ts.data[start], true
}

// Last returns the newest point.
func (ts *TimeSeries) Last() (Point, bool) {
	if ts.count == 0 {
		return Point{}, false
	}
	return ts.data[(ts.head-1+len(ts.data))%len(ts.data)], true
}

// History holds the bounded series derived from successive snapshots.
// It is owned by a single goroutine and does no locking.
type History struct {
	perCore []*TimeSeries
	memory  *TimeSeries
	netRX   *TimeSeries
	netTX   *TimeSeries
}

func NewHistory() *History {
	return &History{
		memory: NewTimeSeries(HistoryLength),
		netRX:  NewTimeSeries(HistoryLength),
		netTX:  NewTimeSeries(HistoryLength),
	}
}

// Append folds one snapshot into the history at the given tick.
//
// A change in core count drops all per-core history and starts fresh
// series for the new topology.
func (h *History) Append(s *Snapshot, tick float64) {
	if s == nil {
		s = &Snapshot{}
	}

	if len(h.perCore) != s.CoreCount() {
		h.perCore = make([]*TimeSeries, s.CoreCount())
		for i := range h.perCore {
			h.perCore[i] = NewTimeSeries(HistoryLength)
		}
	}
	for i, usage := range s.CPUs {
		h.perCore[i].Push(Point{X: tick, Y: usage})
	}

	h.memory.Push(Point{X: tick, Y: s.MemoryPercent()})

	rx, tx := s.NetTotals()
	h.netRX.Push(Point{X: tick, Y: float64(rx)})
	h.netTX.Push(Point{X: tick, Y: float64(tx)})
}

// CoreCount returns the number of per-core series.
func (h *History) CoreCount() int {
	return len(h.perCore)
}

// Core returns the series for core i, or nil when i is out of range.
func (h *History) Core(i int) *TimeSeries {
	if i < 0 || i >= len(h.perCore) {
		return nil
	}
	return h.perCore[i]
}

func (h *History) Memory() *TimeSeries { return h.memory }

func (h *History) NetRX() *TimeSeries { return h.netRX }

func (h *History) NetTX() *TimeSeries { return h.netTX }
