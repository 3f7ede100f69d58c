package tasks_test

import (
	"testing"

	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupTasksContainer(t, nil)
	defer cleanup()

	client := tasksdk.NewClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check covers database and signer.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupTasksContainer(t, nil)
	defer cleanup()

	client := tasksdk.NewClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)

	if health.Checks["database"] != "ok" || health.Checks["signer"] != "ok" {
		t.Fatalf("unexpected readiness checks: %v", health.Checks)
	}
}
