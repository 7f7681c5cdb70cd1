package platform

import "time"

// NewClock returns a monotonic frame clock measuring seconds since its
// creation. Strictly non-decreasing across ticks.
func NewClock() func() float64 {
	start := time.Now()
	return func() float64 {
		return time.Since(start).Seconds()
	}
}
