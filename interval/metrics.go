package interval

import (
	"fmt"
	"io"
	"slices"
)

// Metrics counts what a Cycle has executed.
type Metrics struct {
	Ticks    int64          // active ticks
	Skipped  int64          // Advance calls while the session was inactive
	Fires    map[int]int64  // bucket fires per rate
	Runs     map[string]int // invocations per task
	Failures map[string]int // failed invocations per task
}

func NewMetrics() *Metrics {
	return &Metrics{
		Fires:    make(map[int]int64),
		Runs:     make(map[string]int),
		Failures: make(map[string]int),
	}
}

// TotalFires sums bucket fires across all rates.
func (m *Metrics) TotalFires() int64 {
	var total int64
	for _, n := range m.Fires {
		total += n
	}
	return total
}

// TotalFailures sums failed invocations across all tasks.
func (m *Metrics) TotalFailures() int {
	total := 0
	for _, n := range m.Failures {
		total += n
	}
	return total
}

// Print writes a human-readable summary to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Scheduler Metrics ===")
	fmt.Fprintf(w, "Active Ticks         : %d\n", m.Ticks)
	fmt.Fprintf(w, "Skipped Ticks        : %d\n", m.Skipped)
	fmt.Fprintf(w, "Bucket Fires         : %d\n", m.TotalFires())

	rates := make([]int, 0, len(m.Fires))
	for hz := range m.Fires {
		rates = append(rates, hz)
	}
	slices.Sort(rates)
	for _, hz := range rates {
		fmt.Fprintf(w, "  %3dHz              : %d\n", hz, m.Fires[hz])
	}

	names := make([]string, 0, len(m.Runs))
	for name := range m.Runs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "Task %-20s: %d runs, %d failed\n", name, m.Runs[name], m.Failures[name])
	}
}
