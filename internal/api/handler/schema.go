package handler

import "github.com/crimsoninnovative/console/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type updatedResponse struct {
	Updated bool `json:"updated"`
}

type deletedResponse struct {
	Deleted bool `json:"deleted"`
}

// --- Session ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin administrator user"`
}

type loginResponse struct {
	Token      string           `json:"token"`
	Session    domain.Session   `json:"session"`
	Redirect   string           `json:"redirect"`
	Navigation []domain.NavItem `json:"navigation"`
}

type sessionResponse struct {
	Session  domain.Session `json:"session"`
	Redirect string         `json:"redirect"`
}

type navigationResponse struct {
	Role  domain.Role      `json:"role"`
	Items []domain.NavItem `json:"items"`
}

type resolveResponse struct {
	Console  domain.Console `json:"console"`
	Path     string         `json:"path"`
	Decision string         `json:"decision"`
	Redirect string         `json:"redirect,omitempty"`
}

// --- Attendance ---

type addRecordRequest struct {
	UserID      string  `json:"user_id"      validate:"required"`
	Date        string  `json:"date"         validate:"required"`
	CheckIn     *string `json:"check_in"`
	CheckOut    *string `json:"check_out"`
	Status      string  `json:"status"       validate:"required,oneof=Present Late Absent"`
	HoursWorked string  `json:"hours_worked"`
}

type recordsResponse struct {
	Records []domain.AttendanceRecord `json:"records"`
	Total   int                       `json:"total"`
}

type profileResponse struct {
	User    domain.Employee          `json:"user"`
	Summary domain.AttendanceSummary `json:"summary"`
}

type patchCameraRequest struct {
	Name        *string `json:"name"         validate:"omitempty,min=1"`
	Type        *string `json:"type"         validate:"omitempty,oneof=USB IP RTSP"`
	StreamURL   *string `json:"stream_url"`
	CameraIndex *int    `json:"camera_index" validate:"omitempty,min=0"`
	IsEntry     *bool   `json:"is_entry"`
}

type enrollRequest struct {
	FirstName   string `json:"first_name"  validate:"required"`
	LastName    string `json:"last_name"   validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Department  string `json:"department"  validate:"required"`
	Designation string `json:"designation" validate:"required"`
	EmployeeID  string `json:"employee_id"`
	Status      string `json:"status"      validate:"omitempty,oneof=Active Inactive"`
	JoinedOn    string `json:"joined_on"`
}

// --- GPU console ---

type addClusterUserRequest struct {
	Name          string   `json:"name"           validate:"required"`
	Email         string   `json:"email"          validate:"required,email"`
	GPUQuota      *int     `json:"gpu_quota"      validate:"omitempty,min=0"`
	JobsCompleted *int     `json:"jobs_completed" validate:"omitempty,min=0"`
	GPUHours      *float64 `json:"gpu_hours"      validate:"omitempty,min=0"`
	SuccessRate   *float64 `json:"success_rate"   validate:"omitempty,min=0,max=100"`
	Status        string   `json:"status"         validate:"omitempty,oneof=active inactive"`
	ActiveGPUs    *int     `json:"active_gpus"    validate:"omitempty,min=0"`
	Color         string   `json:"color"`
}

type patchClusterUserRequest struct {
	Name          *string  `json:"name"           validate:"omitempty,min=1"`
	Email         *string  `json:"email"          validate:"omitempty,email"`
	GPUQuota      *int     `json:"gpu_quota"      validate:"omitempty,min=0"`
	JobsCompleted *int     `json:"jobs_completed" validate:"omitempty,min=0"`
	GPUHours      *float64 `json:"gpu_hours"      validate:"omitempty,min=0"`
	SuccessRate   *float64 `json:"success_rate"   validate:"omitempty,min=0,max=100"`
	Status        *string  `json:"status"         validate:"omitempty,oneof=active inactive"`
	ActiveGPUs    *int     `json:"active_gpus"    validate:"omitempty,min=0"`
	Color         *string  `json:"color"`
}

type addNodeRequest struct {
	Name      string   `json:"name"       validate:"required"`
	IPAddress string   `json:"ip_address" validate:"required,ip"`
	Provider  string   `json:"provider"   validate:"required,oneof=AWS 'Google Cloud' Azure On-Premise"`
	GPUType   string   `json:"gpu_type"   validate:"required"`
	GPUCount  *int     `json:"gpu_count"  validate:"omitempty,min=0"`
	Status    string   `json:"status"     validate:"omitempty,oneof=online offline maintenance"`
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Uptime    *float64 `json:"uptime"     validate:"omitempty,min=0,max=100"`
	Load      *float64 `json:"load"       validate:"omitempty,min=0,max=100"`
	Jobs      *int     `json:"jobs"       validate:"omitempty,min=0"`
}

type patchNodeRequest struct {
	Name      *string  `json:"name"       validate:"omitempty,min=1"`
	IPAddress *string  `json:"ip_address" validate:"omitempty,ip"`
	Provider  *string  `json:"provider"   validate:"omitempty,oneof=AWS 'Google Cloud' Azure On-Premise"`
	GPUType   *string  `json:"gpu_type"   validate:"omitempty,min=1"`
	GPUCount  *int     `json:"gpu_count"  validate:"omitempty,min=0"`
	Status    *string  `json:"status"     validate:"omitempty,oneof=online offline maintenance"`
	Username  *string  `json:"username"`
	Uptime    *float64 `json:"uptime"     validate:"omitempty,min=0,max=100"`
	Load      *float64 `json:"load"       validate:"omitempty,min=0,max=100"`
	Jobs      *int     `json:"jobs"       validate:"omitempty,min=0"`
}

// nodeResponse never carries the credential, only whether one is set.
type nodeResponse struct {
	domain.Node
	HasCredentials bool `json:"has_credentials"`
}

type patchModelRequest struct {
	RepoURL           *string `json:"repo_url"            validate:"omitempty,url"`
	AccessToken       *string `json:"access_token"`
	Name              *string `json:"name"                validate:"omitempty,min=1"`
	Description       *string `json:"description"`
	Precision         *string `json:"precision"           validate:"omitempty,oneof=fp32 fp16 int8"`
	Framework         *string `json:"framework"           validate:"omitempty,oneof=pytorch tensorflow onnx"`
	BatchSize         *int    `json:"batch_size"          validate:"omitempty,min=1"`
	MaxSequenceLength *int    `json:"max_sequence_length" validate:"omitempty,min=1"`
	Parameters        *string `json:"parameters"`
}

// modelConfigResponse never carries the access token, only whether one is set.
type modelConfigResponse struct {
	domain.ModelConfig
	HasAccessToken bool `json:"has_access_token"`
}
