//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "shop-api"
	ConsumerName = "shop-console"

	StateCatalogSeeded = "catalog with two products and one client"
	StateOrderMissing  = "no order with id 999"
)

// Ids assigned by the provider when seeding StateCatalogSeeded into an empty store.
const (
	ClientID    int64 = 1
	GizmoID     int64 = 1
	DoohickeyID int64 = 2

	GizmoPrice     int64 = 500
	DoohickeyPrice int64 = 300

	MissingOrderID int64 = 999
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the console consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderRequest orders both seeded products.
func ExampleOrderRequest() map[string]any {
	return map[string]any{
		"client_id":   ClientID,
		"product_ids": []int64{GizmoID, DoohickeyID},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
