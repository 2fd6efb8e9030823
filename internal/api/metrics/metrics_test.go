package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

type fakeQueue struct{}

func (fakeQueue) Depth() int      { return 3 }
func (fakeQueue) Dropped() uint64 { return 2 }
func (fakeQueue) Written() uint64 { return 10 }
func (fakeQueue) Failed() uint64  { return 1 }

func TestRegisterAuditQueue(t *testing.T) {
	reg := prometheus.NewRegistry()

	if err := RegisterAuditQueue(reg, fakeQueue{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := RegisterAuditQueue(reg, fakeQueue{}); err != nil {
		t.Fatalf("second register must be tolerated: %v", err)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 4 {
		t.Fatalf("expected 4 metric families, got %d", len(families))
	}
}

func TestObserveStats(t *testing.T) {
	ObserveStats(domain.ClusterStats{TotalGPUs: 5, TotalNodes: 2, ActiveJobs: 23, CompletedJobs: 115, RegisteredUsers: 3})

	if got := gaugeValue(t, ClusterResources.WithLabelValues("gpus")); got != 5 {
		t.Fatalf("expected 5 gpus, got %v", got)
	}
	if got := gaugeValue(t, ClusterResources.WithLabelValues("completed_jobs")); got != 115 {
		t.Fatalf("expected 115 completed jobs, got %v", got)
	}
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetGauge().GetValue()
}
