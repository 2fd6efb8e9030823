package ports

import "github.com/crimsoninnovative/console/internal/core/domain"

// ClusterUserInput is a GPU-console user without an id. The store keeps
// every field as given, zero values included.
type ClusterUserInput struct {
	Name          string
	Email         string
	GPUQuota      int
	JobsCompleted int
	GPUHours      float64
	SuccessRate   float64
	Status        domain.ClusterUserStatus
	ActiveGPUs    int
	Color         string
}

// NodeInput is a node without an id. Password, when set, is stored hashed.
type NodeInput struct {
	Name      string
	IPAddress string
	Provider  domain.Provider
	GPUType   string
	GPUCount  int
	Status    domain.NodeStatus
	Username  string
	Password  string
	Uptime    float64
	Load      float64
	Jobs      int
}

// ClusterStore owns the GPU console collections. Update and delete report
// false, changing nothing, on an unknown id.
type ClusterStore interface {
	Users() []domain.ClusterUser
	AddUser(in ClusterUserInput) domain.ClusterUser
	UpdateUser(id string, patch domain.ClusterUserPatch) bool
	DeleteUser(id string) bool

	Nodes() []domain.Node
	AddNode(in NodeInput) (domain.Node, error)
	UpdateNode(id string, patch domain.NodePatch) bool
	DeleteNode(id string) bool

	ModelConfig() domain.ModelConfig
	UpdateModelConfig(patch domain.ModelConfigPatch) domain.ModelConfig

	// Stats is recomputed from the collections on every call.
	Stats() domain.ClusterStats
}
