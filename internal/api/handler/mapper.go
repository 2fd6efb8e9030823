package handler

import (
	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

// Form defaults of the users and nodes pages, applied only to omitted fields.
const (
	defaultGPUQuota    = 2
	defaultSuccessRate = 100
	defaultUserColor   = "from-emerald-500 to-teal-500"
	defaultGPUCount    = 1
	defaultNodeUptime  = 99.9
)

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func stringOr[T ~string](v string, def T) T {
	if v == "" {
		return def
	}
	return T(v)
}

func ptrAs[T ~string](p *string) *T {
	if p == nil {
		return nil
	}
	v := T(*p)
	return &v
}

func (r addRecordRequest) toInput() ports.AttendanceRecordInput {
	return ports.AttendanceRecordInput{
		UserID:      r.UserID,
		Date:        r.Date,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Status:      domain.AttendanceStatus(r.Status),
		HoursWorked: r.HoursWorked,
	}
}

func (r patchCameraRequest) toPatch() domain.CameraPatch {
	return domain.CameraPatch{
		Name:        r.Name,
		Type:        ptrAs[domain.CameraType](r.Type),
		StreamURL:   r.StreamURL,
		CameraIndex: r.CameraIndex,
		IsEntry:     r.IsEntry,
	}
}

func (r enrollRequest) toInput() ports.EnrollmentInput {
	return ports.EnrollmentInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Department:  r.Department,
		Designation: r.Designation,
		EmployeeID:  r.EmployeeID,
		Status:      domain.EmployeeStatus(r.Status),
		JoinedOn:    r.JoinedOn,
	}
}

func (r addClusterUserRequest) toInput() ports.ClusterUserInput {
	return ports.ClusterUserInput{
		Name:          r.Name,
		Email:         r.Email,
		GPUQuota:      valueOr(r.GPUQuota, defaultGPUQuota),
		JobsCompleted: valueOr(r.JobsCompleted, 0),
		GPUHours:      valueOr(r.GPUHours, 0),
		SuccessRate:   valueOr(r.SuccessRate, defaultSuccessRate),
		Status:        stringOr(r.Status, domain.ClusterUserActive),
		ActiveGPUs:    valueOr(r.ActiveGPUs, 0),
		Color:         stringOr(r.Color, defaultUserColor),
	}
}

func (r patchClusterUserRequest) toPatch() domain.ClusterUserPatch {
	return domain.ClusterUserPatch{
		Name:          r.Name,
		Email:         r.Email,
		GPUQuota:      r.GPUQuota,
		JobsCompleted: r.JobsCompleted,
		GPUHours:      r.GPUHours,
		SuccessRate:   r.SuccessRate,
		Status:        ptrAs[domain.ClusterUserStatus](r.Status),
		ActiveGPUs:    r.ActiveGPUs,
		Color:         r.Color,
	}
}

func (r addNodeRequest) toInput() ports.NodeInput {
	return ports.NodeInput{
		Name:      r.Name,
		IPAddress: r.IPAddress,
		Provider:  domain.Provider(r.Provider),
		GPUType:   r.GPUType,
		GPUCount:  valueOr(r.GPUCount, defaultGPUCount),
		Status:    stringOr(r.Status, domain.NodeOnline),
		Username:  r.Username,
		Password:  r.Password,
		Uptime:    valueOr(r.Uptime, defaultNodeUptime),
		Load:      valueOr(r.Load, 0),
		Jobs:      valueOr(r.Jobs, 0),
	}
}

func (r patchNodeRequest) toPatch() domain.NodePatch {
	return domain.NodePatch{
		Name:      r.Name,
		IPAddress: r.IPAddress,
		Provider:  ptrAs[domain.Provider](r.Provider),
		GPUType:   r.GPUType,
		GPUCount:  r.GPUCount,
		Status:    ptrAs[domain.NodeStatus](r.Status),
		Username:  r.Username,
		Uptime:    r.Uptime,
		Load:      r.Load,
		Jobs:      r.Jobs,
	}
}

func (r patchModelRequest) toPatch() domain.ModelConfigPatch {
	return domain.ModelConfigPatch{
		RepoURL:           r.RepoURL,
		AccessToken:       r.AccessToken,
		Name:              r.Name,
		Description:       r.Description,
		Precision:         ptrAs[domain.Precision](r.Precision),
		Framework:         ptrAs[domain.Framework](r.Framework),
		BatchSize:         r.BatchSize,
		MaxSequenceLength: r.MaxSequenceLength,
		Parameters:        r.Parameters,
	}
}

func toNodeResponse(n domain.Node) nodeResponse {
	return nodeResponse{Node: n, HasCredentials: n.PasswordHash != ""}
}

func toNodeResponses(nodes []domain.Node) []nodeResponse {
	out := make([]nodeResponse, len(nodes))
	for i, n := range nodes {
		out[i] = toNodeResponse(n)
	}
	return out
}

func toModelConfigResponse(m domain.ModelConfig) modelConfigResponse {
	return modelConfigResponse{ModelConfig: m, HasAccessToken: m.AccessToken != ""}
}
