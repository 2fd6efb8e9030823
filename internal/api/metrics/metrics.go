// Package metrics defines the console's Prometheus metrics. Request metrics
// come from the echoprometheus middleware; this package adds the domain ones.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

const namespace = "console"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: requested role
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by requested role and result.",
	},
	[]string{"role", "result"},
)

var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout calls.",
	},
)

// GuardDecisionsTotal counts route guard outcomes.
// Labels:
//   - console: "attendance" or "gpu"
//   - decision: "allow", "redirect" or "not_found"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions.",
	},
	[]string{"console", "decision"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreMutationsTotal counts store mutations.
// Labels:
//   - console: owning console
//   - entity: record, camera, enrollment, user, node, model
//   - op: add, update, delete
//   - applied: "true" or "false" (unknown id)
var StoreMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_mutations_total",
		Help:      "Total number of store mutations, labelled by whether they applied.",
	},
	[]string{"console", "entity", "op", "applied"},
)

// ValidationFailuresTotal counts requests rejected for missing or malformed fields.
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by validation.",
	},
	[]string{"route"},
)

// IdempotencyChecksTotal counts Idempotency-Key claims.
// Label:
//   - result: "claimed", "replay", "released" or "error"
var IdempotencyChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_checks_total",
		Help:      "Total number of Idempotency-Key claims, by result.",
	},
	[]string{"result"},
)

// ── Resource gauges ───────────────────────────────────────────────────────────

// ClusterResources mirrors the GPU dashboard aggregates.
// Label:
//   - resource: gpus, nodes, active_jobs, completed_jobs, users
var ClusterResources = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cluster_resources",
		Help:      "Current GPU cluster aggregates.",
	},
	[]string{"resource"},
)

// ClusterUtilisation is the latest telemetry sample, in percent.
// Label:
//   - metric: gpu_compute, gpu_memory, cpu, network_io
var ClusterUtilisation = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cluster_utilisation_percent",
		Help:      "Latest simulated cluster utilisation.",
	},
	[]string{"metric"},
)

func ObserveStats(s domain.ClusterStats) {
	ClusterResources.WithLabelValues("gpus").Set(float64(s.TotalGPUs))
	ClusterResources.WithLabelValues("nodes").Set(float64(s.TotalNodes))
	ClusterResources.WithLabelValues("active_jobs").Set(float64(s.ActiveJobs))
	ClusterResources.WithLabelValues("completed_jobs").Set(float64(s.CompletedJobs))
	ClusterResources.WithLabelValues("users").Set(float64(s.RegisteredUsers))
}

func ObserveTelemetry(t domain.Telemetry) {
	ClusterUtilisation.WithLabelValues("gpu_compute").Set(float64(t.GPUCompute))
	ClusterUtilisation.WithLabelValues("gpu_memory").Set(float64(t.GPUMemory))
	ClusterUtilisation.WithLabelValues("cpu").Set(float64(t.CPU))
	ClusterUtilisation.WithLabelValues("network_io").Set(float64(t.NetworkIO))
}

// AuditQueue is what the audit dispatcher exposes for scraping.
type AuditQueue interface {
	Depth() int
	Dropped() uint64
	Written() uint64
	Failed() uint64
}

// RegisterAuditQueue exports q's counters on reg. Registering twice is not an error.
func RegisterAuditQueue(reg prometheus.Registerer, q AuditQueue) error {
	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "audit_queue_depth",
			Help:      "Audit events waiting to be written.",
		}, func() float64 { return float64(q.Depth()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_dropped_total",
			Help:      "Audit events dropped because the queue was full or closed.",
		}, func() float64 { return float64(q.Dropped()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_written_total",
			Help:      "Audit events written to the sink.",
		}, func() float64 { return float64(q.Written()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_failed_total",
			Help:      "Audit events the sink rejected.",
		}, func() float64 { return float64(q.Failed()) }),
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
