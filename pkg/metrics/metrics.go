// Package metrics provides Prometheus metrics for a scheduling run.
//
// A batch tool has no scrape endpoint, so the counters live on a private
// registry and are exported once per run as a text-format snapshot written
// next to the schedules.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Manager owns the run's metrics.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	rowsRead            prometheus.Counter
	rowsSkipped         prometheus.Counter
	teamsLoaded         prometheus.Counter
	teamsRouted         prometheus.Counter
	teamsUnrouted       prometheus.Counter
	slotsAllocated      prometheus.Counter
	unmatchedCategories prometheus.Counter
	droppedTeams        prometheus.Counter

	overrunMinutes prometheus.Gauge
	scheduleEnd    prometheus.Gauge
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithRegistry sets the registry metrics register on.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(m *Manager) {
		if reg != nil {
			m.registry = reg
		}
	}
}

// NewManager creates a metrics manager with its own registry unless one is
// supplied.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "jamsched",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)
	m.rowsRead = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "input_rows_total",
		Help: "Data rows read from the submissions export.",
	})
	m.rowsSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "input_rows_skipped_total",
		Help: "Rows skipped for missing or empty required fields.",
	})
	m.teamsLoaded = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "teams_loaded_total",
		Help: "Teams successfully normalized.",
	})
	m.teamsRouted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "teams_routed_total",
		Help: "Teams that landed in at least one bucket.",
	})
	m.teamsUnrouted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "teams_unrouted_total",
		Help: "Teams that matched no configured category.",
	})
	m.slotsAllocated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "slots_allocated_total",
		Help: "Judging slots created across all buckets.",
	})
	m.unmatchedCategories = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "unmatched_categories_total",
		Help: "Bounty strings that matched no configured bucket.",
	})
	m.droppedTeams = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "dropped_teams_total",
		Help: "Team entries dropped from buckets with no usable configuration.",
	})
	m.overrunMinutes = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Name: "schedule_overrun_minutes",
		Help: "Minutes the schedule runs past the target end time.",
	})
	m.scheduleEnd = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Name: "schedule_end_timestamp_seconds",
		Help: "Unix time of the last slot's end.",
	})

	return m
}

// AddRowsRead records n data rows read from the input.
func (m *Manager) AddRowsRead(n int) { m.rowsRead.Add(float64(n)) }

// RecordRowSkipped records one skipped input row.
func (m *Manager) RecordRowSkipped() { m.rowsSkipped.Inc() }

// RecordTeamLoaded records one normalized team.
func (m *Manager) RecordTeamLoaded() { m.teamsLoaded.Inc() }

// RecordTeamRouted records a team that reached at least one bucket.
func (m *Manager) RecordTeamRouted() { m.teamsRouted.Inc() }

// RecordTeamUnrouted records a team that matched nothing.
func (m *Manager) RecordTeamUnrouted() { m.teamsUnrouted.Inc() }

// AddSlots records n allocated slots.
func (m *Manager) AddSlots(n int) { m.slotsAllocated.Add(float64(n)) }

// AddUnmatchedCategories records n bounty strings that routed nowhere.
func (m *Manager) AddUnmatchedCategories(n int) { m.unmatchedCategories.Add(float64(n)) }

// AddDroppedTeams records n team entries dropped from misconfigured buckets.
func (m *Manager) AddDroppedTeams(n int) { m.droppedTeams.Add(float64(n)) }

// SetOverrun records how far allocation ran past the target end.
func (m *Manager) SetOverrun(d time.Duration) { m.overrunMinutes.Set(d.Minutes()) }

// SetScheduleEnd records when the last slot ends.
func (m *Manager) SetScheduleEnd(t time.Time) {
	if !t.IsZero() {
		m.scheduleEnd.Set(float64(t.Unix()))
	}
}

// Snapshot writes the registry's current state in Prometheus text exposition
// format.
func (m *Manager) Snapshot(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
