package monitor

import "fmt"

const (
	mebibyte = 1024 * 1024
	gibibyte = 1024 * 1024 * 1024
)

// GB converts bytes to binary gigabytes.
func GB(bytes uint64) float64 {
	return float64(bytes) / gibibyte
}

// MB converts bytes to binary megabytes.
func MB(bytes uint64) float64 {
	return float64(bytes) / mebibyte
}

// FormatUptime renders seconds as "Xd Xh Xm Xs".
func FormatUptime(secs uint64) string {
	days := secs / 86400
	hours := (secs % 86400) / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}

// FormatLoad renders the three load averages to two decimals.
func FormatLoad(l LoadAvg) string {
	return fmt.Sprintf("%0.2f %0.2f %0.2f", l.One, l.Five, l.Fifteen)
}
