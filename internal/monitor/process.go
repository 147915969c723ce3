package monitor

import "sort"

// ProcessLimit is the number of processes shown in the process table.
const ProcessLimit = 50

// TopProcesses returns up to n processes ranked by CPU usage, highest first.
// The input is not modified. Ties, and values that do not compare such as
// NaN, keep their original relative order.
func TopProcesses(procs []Process, n int) []Process {
	if n <= 0 || len(procs) == 0 {
		return nil
	}
	ranked := make([]Process, len(procs))
	copy(ranked, procs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CPU > ranked[j].CPU
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
