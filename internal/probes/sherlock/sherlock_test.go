package sherlock

import (
	"strings"
	"testing"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
)

func TestNew(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	if probe.Name() != "sherlock" {
		t.Errorf("expected name 'sherlock', got %q", probe.Name())
	}
	if probe.Kind() != domain.ProbeKindCLI {
		t.Errorf("expected CLI kind, got %v", probe.Kind())
	}
	if probe.Attribute() != domain.AttributeUsername {
		t.Errorf("expected username attribute, got %v", probe.Attribute())
	}
	if probe.Timeout() != defaultTimeout {
		t.Errorf("expected default timeout %v, got %v", defaultTimeout, probe.Timeout())
	}
}

func TestNewWithConfig(t *testing.T) {
	probe := NewWithConfig(logx.NewWithLevel(logx.LevelError), SherlockConfig{
		Binary:  "/opt/sherlock/sherlock",
		Timeout: 90 * time.Second,
	})

	if probe.BinaryName() != "/opt/sherlock/sherlock" {
		t.Errorf("expected custom binary, got %q", probe.BinaryName())
	}
	if probe.Timeout() != 90*time.Second {
		t.Errorf("expected 90s timeout, got %v", probe.Timeout())
	}
}

func TestNewWithConfig_Defaults(t *testing.T) {
	probe := NewWithConfig(logx.NewWithLevel(logx.LevelError), SherlockConfig{})

	if probe.BinaryName() != binaryName {
		t.Errorf("expected default binary %q, got %q", binaryName, probe.BinaryName())
	}
	if probe.Timeout() != defaultTimeout {
		t.Errorf("expected default timeout, got %v", probe.Timeout())
	}
}

func TestSherlockProbe_BuildArgs(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	args := probe.buildArgs("johndoe", "/tmp/scratch/johndoe.json")

	expected := []string{
		"johndoe",
		"--json", "/tmp/scratch/johndoe.json",
		"--timeout", "60",
		"--print-found",
	}

	if len(args) != len(expected) {
		t.Fatalf("expected %d args, got %d: %v", len(expected), len(args), args)
	}
	for i, want := range expected {
		if args[i] != want {
			t.Errorf("arg %d: expected %q, got %q", i, want, args[i])
		}
	}
}

func TestSherlockProbe_ValidateInput(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"johndoe", false},
		{"john.doe_91", false},
		{"jd", false},
		{"x", true},
		{"has space", true},
		{"", true},
		{strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		err := probe.ValidateInput(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateInput(%q): expected error=%v, got %v", tt.value, tt.wantErr, err)
		}
	}
}

func TestSherlockProbe_Close(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	if err := probe.Close(); err != nil {
		t.Errorf("Close on idle probe should not fail: %v", err)
	}
}
