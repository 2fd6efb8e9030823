package service

import "github.com/crimsoninnovative/console/internal/core/domain"

// seedEmployees is the static role seed table used by Login.
func seedEmployees() map[domain.Role]domain.Employee {
	return map[domain.Role]domain.Employee{
		domain.RoleAdmin: {
			ID:          "1",
			FirstName:   "Thiru",
			LastName:    "Admin",
			Email:       "thiru@crimsoninnovative.com",
			Department:  "IT",
			Designation: "System Admin",
			EmployeeID:  "ADM-001",
			Status:      domain.EmployeeActive,
			JoinedOn:    "December 8, 2025",
			Role:        domain.RoleAdmin,
		},
		domain.RoleAdministrator: {
			ID:          "2",
			FirstName:   "Thiru",
			LastName:    "Administrator",
			Email:       "admin@crimsoninnovative.com",
			Department:  "HR",
			Designation: "HR Manager",
			EmployeeID:  "HR-001",
			Status:      domain.EmployeeActive,
			JoinedOn:    "December 8, 2025",
			Role:        domain.RoleAdministrator,
		},
		domain.RoleUser: {
			ID:          "3",
			FirstName:   "Thirumalesu",
			LastName:    "Palayi",
			Email:       "thirumalesu@crimsoninnovative.com",
			Department:  "Software",
			Designation: "Software Engineer",
			EmployeeID:  "EMP-001",
			Status:      domain.EmployeeActive,
			JoinedOn:    "December 8, 2025",
			Role:        domain.RoleUser,
		},
	}
}

func ptr[T any](v T) *T { return &v }

func seedAttendanceRecords() []domain.AttendanceRecord {
	return []domain.AttendanceRecord{
		{ID: "1", UserID: "3", Date: "Mon, 23 Dec 2025", CheckIn: ptr("9:30:41"), Status: domain.AttendancePresent, HoursWorked: "0h 0m"},
		{ID: "2", UserID: "3", Date: "Fri, 20 Dec 2025", CheckIn: ptr("9:15:23"), CheckOut: ptr("17:45:12"), Status: domain.AttendancePresent, HoursWorked: "8h 30m"},
		{ID: "3", UserID: "3", Date: "Thu, 19 Dec 2025", CheckIn: ptr("9:02:15"), CheckOut: ptr("18:10:45"), Status: domain.AttendancePresent, HoursWorked: "9h 8m"},
		{ID: "4", UserID: "3", Date: "Wed, 18 Dec 2025", Status: domain.AttendanceAbsent, HoursWorked: "0h 0m"},
		{ID: "5", UserID: "3", Date: "Tue, 17 Dec 2025", CheckIn: ptr("9:45:30"), CheckOut: ptr("17:30:22"), Status: domain.AttendanceLate, HoursWorked: "7h 45m"},
	}
}

func seedCameras() []domain.CameraConfig {
	return []domain.CameraConfig{
		{ID: "1", Name: "entry", Type: domain.CameraUSB, CameraIndex: 0, IsEntry: true},
		{ID: "2", Name: "exit", Type: domain.CameraUSB, CameraIndex: 1, IsEntry: false},
	}
}

func seedClusterUsers() []domain.ClusterUser {
	return []domain.ClusterUser{
		{ID: "1", Name: "anil", Email: "anil@rapt.ai", GPUQuota: 2, JobsCompleted: 45, GPUHours: 342, SuccessRate: 96, Status: domain.ClusterUserActive, Color: "from-indigo-500 to-purple-500"},
		{ID: "2", Name: "john", Email: "john@rapt.ai", GPUQuota: 2, JobsCompleted: 38, GPUHours: 289, SuccessRate: 94, Status: domain.ClusterUserActive, Color: "from-blue-500 to-cyan-500"},
		{ID: "3", Name: "rob", Email: "rob@rapt.ai", GPUQuota: 2, JobsCompleted: 32, GPUHours: 256, SuccessRate: 98, Status: domain.ClusterUserActive, Color: "from-pink-500 to-red-500"},
	}
}

func seedNodes() []domain.Node {
	return []domain.Node{
		{ID: "1", Name: "nvidia-pod", IPAddress: "10.24.14.82", Provider: domain.ProviderAWS, GPUType: "RTX 4000", GPUCount: 1, Status: domain.NodeOnline, Username: "ubuntu", Uptime: 99.8, Load: 72, Jobs: 142},
		{ID: "2", Name: "nvidia-pod2", IPAddress: "10.10.75.248", Provider: domain.ProviderAWS, GPUType: "A100", GPUCount: 4, Status: domain.NodeOnline, Username: "ubuntu", Uptime: 99.5, Load: 85, Jobs: 156},
	}
}

func seedModelConfig() domain.ModelConfig {
	return domain.ModelConfig{
		Name:              "Llama",
		Description:       "Large Language Model",
		Precision:         domain.PrecisionFP32,
		Framework:         domain.FrameworkPyTorch,
		BatchSize:         6,
		MaxSequenceLength: 800,
		Parameters:        "7B",
	}
}
