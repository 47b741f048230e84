package common

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"laelaps/internal/platform/errors"
	"laelaps/internal/platform/logx"
)

// mockHandler implements OutputHandler for testing
type mockHandler struct {
	mu          sync.Mutex
	lines       []string
	processErr  error
	finalizeErr error
}

func (m *mockHandler) ProcessLine(line []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, string(line))
	return m.processErr
}

func (m *mockHandler) Finalize() error {
	return m.finalizeErr
}

func (m *mockHandler) getLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.lines))
	copy(result, m.lines)
	return result
}

func TestBaseCLIProbe_ExecuteCLI_Success(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "echo",
		Timeout:   5 * time.Second,
	})
	defer base.Close()

	handler := &mockHandler{}

	ctx := context.Background()
	stderr, err := base.ExecuteCLI(ctx, []string{"hello\nworld"}, handler)

	if err != nil {
		t.Fatalf("ExecuteCLI failed: %v", err)
	}

	lines := handler.getLines()
	if len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}

	if len(lines) > 0 && lines[0] != "hello" {
		t.Errorf("expected first line 'hello', got '%s'", lines[0])
	}

	if len(lines) > 1 && lines[1] != "world" {
		t.Errorf("expected second line 'world', got '%s'", lines[1])
	}

	if stderr != "" {
		t.Logf("stderr (expected empty): %s", stderr)
	}
}

func TestBaseCLIProbe_ExecuteCLI_ContextCancellation(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "sleep",
		Timeout:   10 * time.Second,
	})
	defer base.Close()

	handler := &mockHandler{}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := base.ExecuteCLI(ctx, []string{"5"}, handler)

	if err == nil {
		t.Error("expected error due to context cancellation, got nil")
	}

	if !strings.Contains(err.Error(), "context deadline exceeded") &&
		!strings.Contains(err.Error(), "signal: killed") {
		t.Errorf("expected context cancellation error, got: %v", err)
	}
}

func TestBaseCLIProbe_ExecuteCLI_CommandNotFound(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "nonexistent-binary-xyz",
		Timeout:   5 * time.Second,
	})
	defer base.Close()

	handler := &mockHandler{}

	ctx := context.Background()
	_, err := base.ExecuteCLI(ctx, []string{}, handler)

	if err == nil {
		t.Error("expected error for missing binary, got nil")
	}
}

func TestBaseCLIProbe_ExecuteCLI_HandlerError(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "echo",
		Timeout:   5 * time.Second,
	})
	defer base.Close()

	handler := &mockHandler{
		processErr: fmt.Errorf("simulated handler error"),
	}

	ctx := context.Background()
	_, err := base.ExecuteCLI(ctx, []string{"test"}, handler)

	// Handler errors are tolerated
	if err != nil {
		t.Errorf("expected no error (handler errors tolerated), got: %v", err)
	}
}

func TestBaseCLIProbe_ExecuteCLI_StderrCapture(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "sh",
		Timeout:   5 * time.Second,
	})
	defer base.Close()

	handler := &mockHandler{}

	ctx := context.Background()
	stderr, err := base.ExecuteCLI(ctx, []string{"-c", "echo stdout; echo stderr >&2"}, handler)

	if err != nil {
		t.Fatalf("ExecuteCLI failed: %v", err)
	}

	if !strings.Contains(stderr, "stderr") {
		t.Errorf("expected stderr to contain 'stderr', got: %s", stderr)
	}

	lines := handler.getLines()
	if len(lines) == 0 || !strings.Contains(lines[0], "stdout") {
		t.Errorf("expected stdout to contain 'stdout', got lines: %v", lines)
	}
}

func TestBaseCLIProbe_ExecuteCLI_PartialResults(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "sh",
		Timeout:   5 * time.Second,
	})
	defer base.Close()

	handler := &mockHandler{}

	ctx := context.Background()
	_, err := base.ExecuteCLI(ctx, []string{"-c", "echo output; exit 1"}, handler)

	// Non-zero exit returns an error, but collected output survives
	if err == nil {
		t.Error("expected error from exit 1, got nil")
	}

	lines := handler.getLines()
	if len(lines) == 0 || !strings.Contains(lines[0], "output") {
		t.Errorf("expected partial output, got lines: %v", lines)
	}
}

func TestBaseCLIProbe_CaptureCLI(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "sh",
		Timeout:   5 * time.Second,
	})
	defer base.Close()

	ctx := context.Background()
	stdout, _, err := base.CaptureCLI(ctx, []string{"-c", "echo line1; echo line2"})

	if err != nil {
		t.Fatalf("CaptureCLI failed: %v", err)
	}

	if stdout != "line1\nline2" {
		t.Errorf("expected joined stdout, got %q", stdout)
	}
}

func TestBaseCLIProbe_Available(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "echo",
		Timeout:   5 * time.Second,
	})
	defer base.Close()

	if err := base.Available(context.Background()); err != nil {
		t.Fatalf("Available failed for echo: %v", err)
	}

	if base.resolvedPath() == "echo" {
		t.Error("expected execPath to be resolved to an absolute path")
	}
}

func TestBaseCLIProbe_Available_NotFound(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "nonexistent-binary-xyz-12345",
		Timeout:   5 * time.Second,
	})
	defer base.Close()

	err := base.Available(context.Background())
	if err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}

	if !errors.IsBinaryNotFound(err) {
		t.Errorf("expected ErrBinaryNotFound in chain, got: %v", err)
	}

	if !strings.Contains(err.Error(), "nonexistent-binary-xyz-12345") {
		t.Errorf("expected binary name in error, got: %v", err)
	}
}

func TestBaseCLIProbe_Available_CancelledContext(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "echo",
		Timeout:   5 * time.Second,
	})
	defer base.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := base.Available(ctx); err == nil {
		t.Error("expected error for cancelled context, got nil")
	}
}

func TestBaseCLIProbe_Close_Idempotency(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "echo",
		Timeout:   5 * time.Second,
	})

	err1 := base.Close()
	err2 := base.Close()

	if err1 != nil {
		t.Errorf("first Close failed: %v", err1)
	}
	if err2 != nil {
		t.Errorf("second Close failed: %v", err2)
	}
}

func TestBaseCLIProbe_ConcurrentClose(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	base := NewBaseCLIProbe(logger, BaseCLIConfig{
		ProbeName: "test",
		Binary:    "echo",
		Timeout:   5 * time.Second,
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			base.Close()
		}()
	}

	doneCh := make(chan struct{})
	go func() {
		wg.Wait()
		close(doneCh)
	}()

	select {
	case <-doneCh:
	case <-time.After(2 * time.Second):
		t.Error("concurrent Close calls deadlocked")
	}
}

func TestScratchDir(t *testing.T) {
	dir, cleanup, err := ScratchDir("testprobe")
	if err != nil {
		t.Fatalf("ScratchDir failed: %v", err)
	}

	if !strings.Contains(dir, "laelaps-testprobe-") {
		t.Errorf("expected probe name in dir path, got %s", dir)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("scratch dir does not exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", dir)
	}

	cleanup()

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected scratch dir to be removed after cleanup")
	}
}
