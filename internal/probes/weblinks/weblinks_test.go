package weblinks

import (
	"context"
	"testing"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
)

func TestNew(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	if probe.Name() != "weblinks" {
		t.Errorf("expected name 'weblinks', got %q", probe.Name())
	}
	if probe.Kind() != domain.ProbeKindStatic {
		t.Errorf("expected static kind, got %v", probe.Kind())
	}
	if probe.Attribute() != domain.AttributeName {
		t.Errorf("expected name attribute, got %v", probe.Attribute())
	}
	if probe.Timeout() != defaultTimeout {
		t.Errorf("expected default timeout, got %v", probe.Timeout())
	}
}

func TestNewWithConfig(t *testing.T) {
	probe := NewWithConfig(logx.NewWithLevel(logx.LevelError), WebLinksConfig{
		Timeout: 10 * time.Second,
	})

	if probe.Timeout() != 10*time.Second {
		t.Errorf("expected configured timeout, got %v", probe.Timeout())
	}
}

func TestWebLinksProbe_Available(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	if err := probe.Available(context.Background()); err != nil {
		t.Errorf("static probe is always available: %v", err)
	}
}

func TestWebLinksProbe_ValidateInput(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	if err := probe.ValidateInput(""); err == nil {
		t.Error("empty name should be rejected")
	}
	if err := probe.ValidateInput("John Doe"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
}

func TestWebLinksProbe_Run(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	outcome, err := probe.Run(context.Background(), "John Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 12 people search links + 2 federal court links
	if len(outcome.Findings) != 14 {
		t.Fatalf("expected 14 findings, got %d", len(outcome.Findings))
	}
	if len(outcome.Errors) != 0 {
		t.Errorf("static probe never errors, got %v", outcome.Errors)
	}
	if outcome.Probe != "weblinks" {
		t.Errorf("unexpected probe name in outcome: %q", outcome.Probe)
	}
}

func TestForSubject(t *testing.T) {
	subject := domain.Subject{
		Name:  "John Doe",
		Phone: "5042331234",
		City:  "New Orleans",
		State: "LA",
	}

	links := ForSubject(subject)

	// 14 people search (with location variants) + 6 court + 4 phone
	if len(links) != 24 {
		t.Fatalf("expected 24 links, got %d", len(links))
	}
}

func TestForSubject_NameOnly(t *testing.T) {
	links := ForSubject(domain.Subject{Name: "John Doe"})

	// 12 people search + 2 federal court links
	if len(links) != 14 {
		t.Fatalf("expected 14 links, got %d", len(links))
	}
}

func TestForSubject_PhoneOnly(t *testing.T) {
	links := ForSubject(domain.Subject{Phone: "5042331234"})

	if len(links) != 4 {
		t.Fatalf("expected the 4 phone lookups, got %d", len(links))
	}
	for _, f := range links {
		if len(f.Tags) != 1 || f.Tags[0] != "phone" {
			t.Errorf("expected phone tag, got %v", f.Tags)
		}
	}
}

func TestForSubject_Empty(t *testing.T) {
	if links := ForSubject(domain.Subject{}); len(links) != 0 {
		t.Errorf("empty subject yields no links, got %d", len(links))
	}
}
