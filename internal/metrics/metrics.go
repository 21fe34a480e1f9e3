package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls       int
	errors      int
	records     int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about API calls keyed by
// endpoint name. A nil Recorder is valid and records nothing.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*endpointStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordRequest increments counters for one network call and stores the last
// observed latency.
func (r *Recorder) RecordRequest(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(endpoint)
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRequest(endpoint, duration, err)
	}
}

// RecordRecords tracks how many flat records a call normalized.
func (r *Recorder) RecordRecords(endpoint string, count int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStatsLocked(endpoint).records += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRecords(endpoint, count)
	}
}

// Calls returns the total attempts recorded for an endpoint.
func (r *Recorder) Calls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// Errors returns the total failed attempts recorded for an endpoint.
func (r *Recorder) Errors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// RecordsNormalized returns the total records normalized for an endpoint.
func (r *Recorder) RecordsNormalized(endpoint string) int {
	return r.Snapshot(endpoint).Records
}

// LastLatency returns the last recorded latency for an endpoint call.
func (r *Recorder) LastLatency(endpoint string) time.Duration {
	return r.Snapshot(endpoint).LastLatency
}

// Snapshot is a copy of the current stats for one endpoint.
type Snapshot struct {
	Calls       int
	Errors      int
	Records     int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[endpoint]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		Records:     stats.records,
		LastLatency: stats.lastLatency,
	}
}

func (r *Recorder) ensureStatsLocked(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
