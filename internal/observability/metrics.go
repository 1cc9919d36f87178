package observability

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Metrics is a small process-local registry exposed in text form on /metrics.
// Counters are cheap enough to take on every request and aggregate write.
type Metrics struct {
	mu sync.Mutex

	apiRequests       map[string]int64
	apiLatencyMs      map[string]*histogram
	aggregateOps      map[string]*histogram
	aggregateConflict map[string]int64
	aggregateRetry    map[string]int64
}

type histogram struct {
	count int64
	sumMs float64
	maxMs float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		apiRequests:       make(map[string]int64),
		apiLatencyMs:      make(map[string]*histogram),
		aggregateOps:      make(map[string]*histogram),
		aggregateConflict: make(map[string]int64),
		aggregateRetry:    make(map[string]int64),
	}
}

func (m *Metrics) IncAPIRequest(method, path string, status int) {
	if m == nil {
		return
	}
	key := fmt.Sprintf("%s %s %d", strings.ToUpper(method), path, status)
	m.mu.Lock()
	m.apiRequests[key]++
	m.mu.Unlock()
}

func (m *Metrics) ObserveAPILatency(method, path string, dur time.Duration) {
	if m == nil {
		return
	}
	key := fmt.Sprintf("%s %s", strings.ToUpper(method), path)
	m.mu.Lock()
	m.observe(m.apiLatencyMs, key, dur)
	m.mu.Unlock()
}

func (m *Metrics) ObserveAggregateOperation(name, status string, dur time.Duration) {
	if m == nil {
		return
	}
	key := name + " " + status
	m.mu.Lock()
	m.observe(m.aggregateOps, key, dur)
	m.mu.Unlock()
}

func (m *Metrics) IncAggregateConflict(name string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.aggregateConflict[name]++
	m.mu.Unlock()
}

func (m *Metrics) IncAggregateRetry(name string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.aggregateRetry[name]++
	m.mu.Unlock()
}

func (m *Metrics) observe(set map[string]*histogram, key string, dur time.Duration) {
	h := set[key]
	if h == nil {
		h = &histogram{}
		set[key] = h
	}
	ms := float64(dur.Microseconds()) / 1000.0
	h.count++
	h.sumMs += ms
	if ms > h.maxMs {
		h.maxMs = ms
	}
}

// Render emits the registry in a flat text format.
func (m *Metrics) Render() string {
	if m == nil {
		return ""
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var b strings.Builder
	writeCounts := func(name string, set map[string]int64) {
		keys := make([]string, 0, len(set))
		for k := range set {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s{%s} %d\n", name, k, set[k])
		}
	}
	writeHists := func(name string, set map[string]*histogram) {
		keys := make([]string, 0, len(set))
		for k := range set {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			h := set[k]
			fmt.Fprintf(&b, "%s_count{%s} %d\n", name, k, h.count)
			fmt.Fprintf(&b, "%s_sum_ms{%s} %.3f\n", name, k, h.sumMs)
			fmt.Fprintf(&b, "%s_max_ms{%s} %.3f\n", name, k, h.maxMs)
		}
	}

	writeCounts("api_requests_total", m.apiRequests)
	writeHists("api_latency", m.apiLatencyMs)
	writeHists("aggregate_operation", m.aggregateOps)
	writeCounts("aggregate_conflict_total", m.aggregateConflict)
	writeCounts("aggregate_retry_total", m.aggregateRetry)
	return b.String()
}
