package phoneinfoga

import (
	"testing"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
)

func TestNew(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	if probe.Name() != "phoneinfoga" {
		t.Errorf("expected name 'phoneinfoga', got %q", probe.Name())
	}
	if probe.Kind() != domain.ProbeKindCLI {
		t.Errorf("expected CLI kind, got %v", probe.Kind())
	}
	if probe.Attribute() != domain.AttributePhone {
		t.Errorf("expected phone attribute, got %v", probe.Attribute())
	}
}

func TestPhoneInfogaProbe_BuildArgs(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	args := probe.buildArgs("+15551234567", "/tmp/scratch/phoneinfoga_output.json")

	expected := []string{"scan", "-n", "+15551234567", "-o", "/tmp/scratch/phoneinfoga_output.json"}
	if len(args) != len(expected) {
		t.Fatalf("expected %d args, got %d: %v", len(expected), len(args), args)
	}
	for i, want := range expected {
		if args[i] != want {
			t.Errorf("arg %d: expected %q, got %q", i, want, args[i])
		}
	}
}

func TestPhoneInfogaProbe_ValidateInput(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	if err := probe.ValidateInput("555-123-4567"); err != nil {
		t.Errorf("valid phone rejected: %v", err)
	}
	if err := probe.ValidateInput("12"); err == nil {
		t.Error("expected error for too-short number")
	}
}
