package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timing for mesh rebuild phases.

// Phase is the accumulated cost of one named phase in the current frame.
type Phase struct {
	Name  string
	Total time.Duration
	Calls int
}

var (
	mu     sync.Mutex
	phases = make(map[string]*Phase)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("chunk.Sort")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		p, ok := phases[name]
		if !ok {
			p = &Phase{Name: name}
			phases[name] = p
		}
		p.Total += d
		p.Calls++
		mu.Unlock()
	}
}

// ResetFrame clears the current totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(phases)
	mu.Unlock()
}

// Snapshot returns the current phases, most expensive first.
func Snapshot() []Phase {
	mu.Lock()
	out := make([]Phase, 0, len(phases))
	for _, p := range phases {
		out = append(out, *p)
	}
	mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopN formats the n most expensive phases of the current frame,
// e.g. "chunk.Vertices:1.2ms, chunk.Sort:0.4ms".
func TopN(n int) string {
	list := Snapshot()
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.Name+":"+formatMs(p.Total))
	}
	return strings.Join(parts, ", ")
}

// one decimal, trailing ".0" dropped
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
