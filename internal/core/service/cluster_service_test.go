package service

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

func newClusterSvc() *ClusterService {
	return NewClusterService(NewSequenceGenerator("c-"), nil, zerolog.Nop())
}

func sumGPUs(nodes []domain.Node) int {
	total := 0
	for _, n := range nodes {
		total += n.GPUCount
	}
	return total
}

func TestClusterService_SeedStats(t *testing.T) {
	svc := newClusterSvc()

	want := domain.ClusterStats{TotalGPUs: 5, TotalNodes: 2, ActiveJobs: 23, CompletedJobs: 115, RegisteredUsers: 3}
	if got := svc.Stats(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestClusterService_Node_AddDeleteRoundTrip(t *testing.T) {
	svc := newClusterSvc()
	before := svc.Nodes()

	n, err := svc.AddNode(ports.NodeInput{
		Name:      "h100-a",
		IPAddress: "10.0.0.9",
		Provider:  domain.ProviderAzure,
		GPUType:   "H100",
		GPUCount:  8,
	})
	if err != nil {
		t.Fatalf("add node: %v", err)
	}
	if got := svc.Stats().TotalGPUs; got != sumGPUs(svc.Nodes()) || got != 13 {
		t.Fatalf("expected 13 GPUs after add, got %d", got)
	}

	if !svc.DeleteNode(n.ID) {
		t.Fatalf("expected delete to apply")
	}
	if !reflect.DeepEqual(svc.Nodes(), before) {
		t.Fatalf("node collection differs after round trip")
	}
	if got := svc.Stats().TotalGPUs; got != sumGPUs(before) {
		t.Fatalf("expected %d GPUs after delete, got %d", sumGPUs(before), got)
	}
}

func TestClusterService_AddNode_KeepsExplicitZeros(t *testing.T) {
	svc := newClusterSvc()

	n, err := svc.AddNode(ports.NodeInput{
		Name:      "pod3",
		IPAddress: "1.2.3.4",
		Provider:  domain.ProviderOnPremise,
		GPUType:   "L4",
		GPUCount:  0,
		Status:    domain.NodeOffline,
		Uptime:    0,
	})
	if err != nil {
		t.Fatalf("add node: %v", err)
	}
	if n.GPUCount != 0 || n.Uptime != 0 || n.Status != domain.NodeOffline {
		t.Fatalf("input rewritten: %+v", n)
	}
	if n.PasswordHash != "" {
		t.Fatalf("expected no credential hash without password")
	}
	if got := svc.Stats().TotalGPUs; got != 5 {
		t.Fatalf("a zero-GPU node must not change totalGpus: got %d", got)
	}
}

func TestClusterService_AddNode_HashesPassword(t *testing.T) {
	svc := newClusterSvc()

	n, err := svc.AddNode(ports.NodeInput{Name: "pod4", Password: "s3cret"})
	if err != nil {
		t.Fatalf("add node: %v", err)
	}
	if n.PasswordHash == "" || n.PasswordHash == "s3cret" {
		t.Fatalf("expected hashed credential, got %q", n.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(n.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
}

func TestClusterService_UpdateNode(t *testing.T) {
	svc := newClusterSvc()

	count := 8
	status := domain.NodeMaintenance
	if !svc.UpdateNode("1", domain.NodePatch{GPUCount: &count, Status: &status}) {
		t.Fatalf("expected update to apply")
	}
	nodes := svc.Nodes()
	if nodes[0].GPUCount != 8 || nodes[0].Status != domain.NodeMaintenance || nodes[0].Name != "nvidia-pod" {
		t.Fatalf("unexpected node after patch: %+v", nodes[0])
	}
	if svc.Stats().TotalGPUs != 12 {
		t.Fatalf("stats not recomputed after update: %+v", svc.Stats())
	}
}

func TestClusterService_UnknownIDsAreNoOps(t *testing.T) {
	svc := newClusterSvc()
	users, nodes := svc.Users(), svc.Nodes()

	quota := 9
	if svc.UpdateUser("missing", domain.ClusterUserPatch{GPUQuota: &quota}) {
		t.Fatalf("UpdateUser applied on unknown id")
	}
	if svc.DeleteUser("missing") {
		t.Fatalf("DeleteUser applied on unknown id")
	}
	if svc.UpdateNode("missing", domain.NodePatch{GPUCount: &quota}) {
		t.Fatalf("UpdateNode applied on unknown id")
	}
	if svc.DeleteNode("missing") {
		t.Fatalf("DeleteNode applied on unknown id")
	}
	if !reflect.DeepEqual(svc.Users(), users) || !reflect.DeepEqual(svc.Nodes(), nodes) {
		t.Fatalf("collections changed on unknown id")
	}
}

func TestClusterService_Users(t *testing.T) {
	svc := newClusterSvc()

	u := svc.AddUser(ports.ClusterUserInput{Name: "eve", Email: "eve@rapt.ai", Status: domain.ClusterUserActive})
	if u.GPUQuota != 0 || u.SuccessRate != 0 || u.Status != domain.ClusterUserActive || u.Color != "" {
		t.Fatalf("input rewritten: %+v", u)
	}
	if got := svc.Stats().RegisteredUsers; got != 4 {
		t.Fatalf("expected 4 users, got %d", got)
	}

	jobs := 10
	if !svc.UpdateUser(u.ID, domain.ClusterUserPatch{JobsCompleted: &jobs}) {
		t.Fatalf("expected update to apply")
	}
	if got := svc.Stats().CompletedJobs; got != 125 {
		t.Fatalf("expected 125 completed jobs, got %d", got)
	}

	if !svc.DeleteUser("2") {
		t.Fatalf("expected delete to apply")
	}
	users := svc.Users()
	if len(users) != 3 || users[0].ID != "1" || users[1].ID != "3" || users[2].ID != u.ID {
		t.Fatalf("unexpected users after delete: %+v", users)
	}
	if got := svc.Stats().CompletedJobs; got != 45+32+10 {
		t.Fatalf("expected %d completed jobs, got %d", 45+32+10, got)
	}
}

func TestClusterService_UpdateModelConfig_Merges(t *testing.T) {
	svc := newClusterSvc()

	precision := domain.PrecisionFP16
	batch := 32
	m := svc.UpdateModelConfig(domain.ModelConfigPatch{Precision: &precision, BatchSize: &batch})

	if m.Precision != domain.PrecisionFP16 || m.BatchSize != 32 {
		t.Fatalf("patch not applied: %+v", m)
	}
	if m.Name != "Llama" || m.Framework != domain.FrameworkPyTorch || m.MaxSequenceLength != 800 || m.Parameters != "7B" {
		t.Fatalf("untouched fields changed: %+v", m)
	}
	if svc.ModelConfig() != m {
		t.Fatalf("returned config differs from stored config")
	}
}
