package handler

import (
	"strings"
	"testing"
)

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&addNodeRequest{IPAddress: "10.0.0.1", Provider: "AWS"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "name is required") || !strings.Contains(msg, "gpu_type is required") {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestValidator_ProviderWithSpace(t *testing.T) {
	v := NewValidator()

	ok := addNodeRequest{Name: "n", IPAddress: "10.0.0.1", Provider: "Google Cloud", GPUType: "A100"}
	if err := v.Validate(&ok); err != nil {
		t.Fatalf("expected Google Cloud to be accepted: %v", err)
	}
	bad := ok
	bad.Provider = "Google"
	if err := v.Validate(&bad); err == nil || !strings.Contains(err.Error(), "provider must be one of") {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestValidator_PatchSkipsNilFields(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&patchCameraRequest{}); err != nil {
		t.Fatalf("empty patch must validate: %v", err)
	}
	empty := ""
	if err := v.Validate(&patchCameraRequest{Name: &empty}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	idx := -1
	if err := v.Validate(&patchCameraRequest{CameraIndex: &idx}); err == nil {
		t.Fatalf("expected error for negative camera index")
	}
}

func TestPatchModelRequest_ToPatch(t *testing.T) {
	p := "int8"
	patch := patchModelRequest{Precision: &p}.toPatch()
	if patch.Precision == nil || string(*patch.Precision) != "int8" || patch.Framework != nil {
		t.Fatalf("unexpected patch: %+v", patch)
	}
}

func TestAddRequests_ToInput_DefaultsOnlyOmittedFields(t *testing.T) {
	node := addNodeRequest{Name: "n", IPAddress: "10.0.0.1", Provider: "AWS", GPUType: "A100"}.toInput()
	if node.GPUCount != 1 || node.Uptime != 99.9 || node.Status != "online" {
		t.Fatalf("unexpected node defaults: %+v", node)
	}

	zero, zeroF := 0, 0.0
	node = addNodeRequest{Name: "n", GPUCount: &zero, Uptime: &zeroF, Status: "offline"}.toInput()
	if node.GPUCount != 0 || node.Uptime != 0 || node.Status != "offline" {
		t.Fatalf("explicit zeros rewritten: %+v", node)
	}

	user := addClusterUserRequest{Name: "eve", Email: "eve@rapt.ai"}.toInput()
	if user.GPUQuota != 2 || user.SuccessRate != 100 || user.Status != "active" || user.Color != "from-emerald-500 to-teal-500" {
		t.Fatalf("unexpected user defaults: %+v", user)
	}
	user = addClusterUserRequest{Name: "eve", Email: "eve@rapt.ai", GPUQuota: &zero, SuccessRate: &zeroF}.toInput()
	if user.GPUQuota != 0 || user.SuccessRate != 0 {
		t.Fatalf("explicit zeros rewritten: %+v", user)
	}
}
