package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flight.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPlan(t *testing.T) {
	path := writeScenario(t, previewScenario)
	if err := runPlan([]string{path}); err != nil {
		t.Fatalf("runPlan unexpected error: %v", err)
	}
}

func TestRunPlan_JSON(t *testing.T) {
	path := writeScenario(t, previewScenario)
	if err := runPlan([]string{path, "--json"}); err != nil {
		t.Fatalf("runPlan --json unexpected error: %v", err)
	}
}

func TestRunPlan_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"unknown flag", []string{"flight.yaml", "--verbose"}},
		{"extra argument", []string{"a.yaml", "b.yaml"}},
		{"missing file", []string{"does-not-exist.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runPlan(tt.args); err == nil {
				t.Errorf("runPlan(%v) expected error, got nil", tt.args)
			}
		})
	}
}

func TestRunPlan_RejectsWrongVersion(t *testing.T) {
	path := writeScenario(t, strings.Replace(previewScenario, "version: v1", "version: v2", 1))
	err := runPlan([]string{path})
	if err == nil {
		t.Fatal("expected error for unsupported schema version, got nil")
	}
	if !strings.Contains(err.Error(), "v1") {
		t.Errorf("expected version error to mention supported version, got: %v", err)
	}
}
