//go:build profile

package profiler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tidwall/sjson"
)

// -------- public API --------

// Init must be called once (e.g., on app start); it clears earlier samples.
func Init() {
	mu.Lock()
	scopes = map[string]*scopeStats{}
	order = order[:0]
	mu.Unlock()
	ready.Store(true)
}

// Enabled reports whether scopes are recorded in this build.
func Enabled() bool { return true }

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	if !ready.Load() {
		return func() {}
	}
	begin := time.Now()
	return func() {
		d := time.Since(begin)
		mu.Lock()
		s, ok := scopes[name]
		if !ok {
			s = &scopeStats{}
			scopes[name] = s
			order = append(order, name)
		}
		s.count++
		s.total += d
		if d > s.max {
			s.max = d
		}
		mu.Unlock()
	}
}

// Report renders every scope in first-seen order:
//
//	{"scopes":[{"name":"turn","count":3,"total_us":12,"avg_us":4,"max_us":6}]}
func Report() ([]byte, error) {
	mu.Lock()
	defer mu.Unlock()

	out := []byte(`{"scopes":[]}`)
	var err error
	for _, name := range order {
		s := scopes[name]
		out, err = sjson.SetBytes(out, "scopes.-1", map[string]any{
			"name":     name,
			"count":    s.count,
			"total_us": s.total.Microseconds(),
			"avg_us":   (s.total / time.Duration(s.count)).Microseconds(),
			"max_us":   s.max.Microseconds(),
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ---------- scope table ----------

type scopeStats struct {
	count int64
	total time.Duration
	max   time.Duration
}

var (
	ready  atomic.Bool
	mu     sync.Mutex
	scopes = map[string]*scopeStats{}
	order  []string
)
