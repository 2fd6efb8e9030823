package domain

// ClusterUserStatus is the account status of a GPU-console user.
type ClusterUserStatus string

const (
	ClusterUserActive   ClusterUserStatus = "active"
	ClusterUserInactive ClusterUserStatus = "inactive"
)

// ClusterUser is a user of the GPU console with a GPU quota and job history.
type ClusterUser struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	GPUQuota      int               `json:"gpu_quota"`
	JobsCompleted int               `json:"jobs_completed"`
	GPUHours      float64           `json:"gpu_hours"`
	SuccessRate   float64           `json:"success_rate"`
	Status        ClusterUserStatus `json:"status"`
	ActiveGPUs    int               `json:"active_gpus"`
	Color         string            `json:"color"`
}

// ClusterUserPatch is a partial update of a ClusterUser.
type ClusterUserPatch struct {
	Name          *string
	Email         *string
	GPUQuota      *int
	JobsCompleted *int
	GPUHours      *float64
	SuccessRate   *float64
	Status        *ClusterUserStatus
	ActiveGPUs    *int
	Color         *string
}

// ApplyTo merges the non-nil fields of p into u.
func (p ClusterUserPatch) ApplyTo(u *ClusterUser) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.GPUQuota != nil {
		u.GPUQuota = *p.GPUQuota
	}
	if p.JobsCompleted != nil {
		u.JobsCompleted = *p.JobsCompleted
	}
	if p.GPUHours != nil {
		u.GPUHours = *p.GPUHours
	}
	if p.SuccessRate != nil {
		u.SuccessRate = *p.SuccessRate
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.ActiveGPUs != nil {
		u.ActiveGPUs = *p.ActiveGPUs
	}
	if p.Color != nil {
		u.Color = *p.Color
	}
}

// Provider is where a node is hosted.
type Provider string

const (
	ProviderAWS         Provider = "AWS"
	ProviderGoogleCloud Provider = "Google Cloud"
	ProviderAzure       Provider = "Azure"
	ProviderOnPremise   Provider = "On-Premise"
)

// NodeStatus is the availability of a compute node.
type NodeStatus string

const (
	NodeOnline      NodeStatus = "online"
	NodeOffline     NodeStatus = "offline"
	NodeMaintenance NodeStatus = "maintenance"
)

// Node is a GPU compute node. PasswordHash holds the bcrypt hash of the
// node credential and is never serialised.
type Node struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	IPAddress    string     `json:"ip_address"`
	Provider     Provider   `json:"provider"`
	GPUType      string     `json:"gpu_type"`
	GPUCount     int        `json:"gpu_count"`
	Status       NodeStatus `json:"status"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Uptime       float64    `json:"uptime"`
	Load         float64    `json:"load"`
	Jobs         int        `json:"jobs"`
}

// NodePatch is a partial update of a Node. Credentials are not patchable.
type NodePatch struct {
	Name      *string
	IPAddress *string
	Provider  *Provider
	GPUType   *string
	GPUCount  *int
	Status    *NodeStatus
	Username  *string
	Uptime    *float64
	Load      *float64
	Jobs      *int
}

// ApplyTo merges the non-nil fields of p into n.
func (p NodePatch) ApplyTo(n *Node) {
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.IPAddress != nil {
		n.IPAddress = *p.IPAddress
	}
	if p.Provider != nil {
		n.Provider = *p.Provider
	}
	if p.GPUType != nil {
		n.GPUType = *p.GPUType
	}
	if p.GPUCount != nil {
		n.GPUCount = *p.GPUCount
	}
	if p.Status != nil {
		n.Status = *p.Status
	}
	if p.Username != nil {
		n.Username = *p.Username
	}
	if p.Uptime != nil {
		n.Uptime = *p.Uptime
	}
	if p.Load != nil {
		n.Load = *p.Load
	}
	if p.Jobs != nil {
		n.Jobs = *p.Jobs
	}
}

// Precision is the numeric precision a model is trained or served at.
type Precision string

const (
	PrecisionFP32 Precision = "fp32"
	PrecisionFP16 Precision = "fp16"
	PrecisionInt8 Precision = "int8"
)

// Framework is the ML framework of a model.
type Framework string

const (
	FrameworkPyTorch    Framework = "pytorch"
	FrameworkTensorFlow Framework = "tensorflow"
	FrameworkONNX       Framework = "onnx"
)

// ModelConfig is the single model configuration of the GPU console.
type ModelConfig struct {
	RepoURL           string    `json:"repo_url"`
	AccessToken       string    `json:"-"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Precision         Precision `json:"precision"`
	Framework         Framework `json:"framework"`
	BatchSize         int       `json:"batch_size"`
	MaxSequenceLength int       `json:"max_sequence_length"`
	Parameters        string    `json:"parameters"`
}

// ModelConfigPatch is a partial update merged into the singleton ModelConfig.
type ModelConfigPatch struct {
	RepoURL           *string
	AccessToken       *string
	Name              *string
	Description       *string
	Precision         *Precision
	Framework         *Framework
	BatchSize         *int
	MaxSequenceLength *int
	Parameters        *string
}

// ApplyTo merges the non-nil fields of p into m.
func (p ModelConfigPatch) ApplyTo(m *ModelConfig) {
	if p.RepoURL != nil {
		m.RepoURL = *p.RepoURL
	}
	if p.AccessToken != nil {
		m.AccessToken = *p.AccessToken
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Precision != nil {
		m.Precision = *p.Precision
	}
	if p.Framework != nil {
		m.Framework = *p.Framework
	}
	if p.BatchSize != nil {
		m.BatchSize = *p.BatchSize
	}
	if p.MaxSequenceLength != nil {
		m.MaxSequenceLength = *p.MaxSequenceLength
	}
	if p.Parameters != nil {
		m.Parameters = *p.Parameters
	}
}

// ClusterStats are aggregates derived from the current GPU-console collections.
type ClusterStats struct {
	TotalGPUs       int `json:"total_gpus"`
	TotalNodes      int `json:"total_nodes"`
	ActiveJobs      int `json:"active_jobs"`
	CompletedJobs   int `json:"completed_jobs"`
	RegisteredUsers int `json:"registered_users"`
}
