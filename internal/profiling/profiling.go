package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Accumulates wall time of named one-time operations (raster decode, noise
// calibration, preview bakes). Not intended for per-query hot paths.

// Entry is the accumulated cost of one named operation.
type Entry struct {
	Total time.Duration
	Calls int
}

var (
	mu      sync.Mutex
	entries = make(map[string]Entry)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("rastermap.Decode")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		e := entries[name]
		e.Total += d
		e.Calls++
		entries[name] = e
		mu.Unlock()
	}
}

// Reset clears all recorded entries.
func Reset() {
	mu.Lock()
	clear(entries)
	mu.Unlock()
}

// Snapshot returns a copy of the recorded entries.
func Snapshot() map[string]Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Entry, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return out
}

// TopN formats the n most expensive entries.
// Example: "noise.NewStack:412.5ms(x2), rastermap.Decode:20.1ms(x4)"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		e    Entry
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, e: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].e.Total == list[j].e.Total {
			return list[i].name < list[j].name
		}
		return list[i].e.Total > list[j].e.Total
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		ms := float64(p.e.Total.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms(x%d)", p.name, ms, p.e.Calls))
	}
	return strings.Join(parts, ", ")
}
