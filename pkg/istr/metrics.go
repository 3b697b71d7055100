package istr

// metrics.go is a thin abstraction over Prometheus, adapted from the
// arena-cache lineage's own metrics sink: until RegisterMetrics is
// called, a no-op sink is installed and the hot path pays nothing for
// instrumentation.
//
// ┌──────────────────────────────┬──────┬────────┐
// │ Metric                       │ Type │ Labels │
// ├──────────────────────────────┼──────┼────────┤
// │ istr_interns_total           │ Ctr  │ shard  │
// │ istr_local_hits_total        │ Ctr  │ —      │
// │ istr_local_misses_total      │ Ctr  │ —      │
// │ istr_shard_hits_total        │ Ctr  │ shard  │
// │ istr_shard_misses_total      │ Ctr  │ shard  │
// └──────────────────────────────┴──────┴────────┘
//
// © 2025 arena-cache authors. MIT License.

import (
	"strconv"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

type metricsSink interface {
	internNew()
	localHit()
	localMiss()
	shardHit(shard int)
	shardMiss(shard int)
}

type noopMetrics struct{}

func (noopMetrics) internNew()    {}
func (noopMetrics) localHit()     {}
func (noopMetrics) localMiss()    {}
func (noopMetrics) shardHit(int)  {}
func (noopMetrics) shardMiss(int) {}

var metricsSinkGlobal metricsSink = noopMetrics{}

type promMetrics struct {
	interns     *prometheus.CounterVec
	localHits   prometheus.Counter
	localMisses prometheus.Counter
	shardHits   *prometheus.CounterVec
	shardMisses *prometheus.CounterVec
}

func newPromMetrics(reg *prometheus.Registry) *promMetrics {
	label := []string{"shard"}
	pm := &promMetrics{
		interns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "istr",
			Name:      "interns_total",
			Help:      "Number of brand-new payloads interned.",
		}, label),
		localHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "istr",
			Name:      "local_hits_total",
			Help:      "Number of Intern/Lookup calls resolved by the per-P local cache.",
		}),
		localMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "istr",
			Name:      "local_misses_total",
			Help:      "Number of Intern/Lookup calls that missed the per-P local cache.",
		}),
		shardHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "istr",
			Name:      "shard_hits_total",
			Help:      "Number of shard-table probes that found an existing payload.",
		}, label),
		shardMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "istr",
			Name:      "shard_misses_total",
			Help:      "Number of shard-table probes that found nothing.",
		}, label),
	}
	reg.MustRegister(pm.interns, pm.localHits, pm.localMisses, pm.shardHits, pm.shardMisses)
	return pm
}

func (m *promMetrics) internNew() { m.interns.WithLabelValues("all").Inc() }
func (m *promMetrics) localHit()  { m.localHits.Inc() }
func (m *promMetrics) localMiss() { m.localMisses.Inc() }
func (m *promMetrics) shardHit(shard int) {
	m.shardHits.WithLabelValues(strconv.Itoa(shard)).Inc()
}
func (m *promMetrics) shardMiss(shard int) {
	m.shardMisses.WithLabelValues(strconv.Itoa(shard)).Inc()
}

// RegisterMetrics switches the package from its default no-op metrics
// sink to one backed by reg. It is intended to be called once, near
// process startup; calling it again replaces the sink.
func RegisterMetrics(reg *prometheus.Registry) {
	metricsSinkGlobal = newPromMetrics(reg)
}

// arenaBytesMirror is kept separate from the Prometheus sink itself so
// Size()-adjacent bookkeeping doesn't require a live registry.
var arenaBytesMirror atomic.Int64

// ArenaBytes returns the total number of content bytes (including the
// trailing NUL of each payload) ever copied into an arena across all Ps.
// It only grows: arenas are never freed, so this doubles as a rough
// measure of process memory committed to interned content.
func ArenaBytes() int64 {
	return arenaBytesMirror.Load()
}
