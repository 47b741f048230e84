// Package common provides shared plumbing for CLI-backed probes.
package common

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"laelaps/internal/platform/errors"
	"laelaps/internal/platform/logx"
)

// OutputHandler processes output from CLI tools.
// Implementations define how to parse and handle stdout from the subprocess.
type OutputHandler interface {
	// ProcessLine handles each line of stdout in real-time.
	// Errors are logged and processing continues.
	ProcessLine(line []byte) error

	// Finalize is called after all lines are processed.
	Finalize() error
}

// BaseCLIProbe provides common functionality for probes that shell out to
// external OSINT tools. It handles binary resolution, subprocess execution,
// I/O management and resource cleanup.
//
// Usage:
//  1. Embed BaseCLIProbe in your probe struct
//  2. Implement OutputHandler (or use CaptureCLI) for parsing logic
//  3. Call ExecuteCLI() in your Run() method
type BaseCLIProbe struct {
	logger   logx.Logger
	binary   string // Binary name as invoked (resolved via LookPath)
	execPath string // Resolved path after Available()
	timeout  time.Duration

	// Process management
	mu  sync.Mutex
	cmd *exec.Cmd
}

// BaseCLIConfig contiene la configuración para BaseCLIProbe.
type BaseCLIConfig struct {
	ProbeName string        // Probe name for logging
	Binary    string        // Binary name (will be resolved via LookPath)
	Timeout   time.Duration // Declared probe timeout
}

// NewBaseCLIProbe creates a new BaseCLIProbe with the given configuration.
func NewBaseCLIProbe(logger logx.Logger, cfg BaseCLIConfig) *BaseCLIProbe {
	return &BaseCLIProbe{
		logger:  logger.With("probe", cfg.ProbeName),
		binary:  cfg.Binary,
		timeout: cfg.Timeout,
	}
}

// Available verifica que el binario exista en PATH. No ejecuta el binario:
// la comprobación debe ser barata porque corre en cada ronda.
// Un error aquí clasifica la probe como unavailable, nunca como failed.
func (b *BaseCLIProbe) Available(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	execPath, err := exec.LookPath(b.binary)
	if err != nil {
		return errors.Wrapf(errors.ErrBinaryNotFound, "%s", b.binary)
	}

	b.mu.Lock()
	b.execPath = execPath
	b.mu.Unlock()

	b.logger.Debug("found binary", "path", execPath)
	return nil
}

// Timeout returns the declared probe timeout.
func (b *BaseCLIProbe) Timeout() time.Duration {
	return b.timeout
}

// Logger returns the logger instance.
func (b *BaseCLIProbe) Logger() logx.Logger {
	return b.logger
}

// BinaryName returns the configured binary name.
func (b *BaseCLIProbe) BinaryName() string {
	return b.binary
}

// ExecuteCLI executes the probe's binary with the given arguments and streams
// stdout through handler.
//
// Key behaviors:
//   - Context cancellation kills the subprocess
//   - Background stderr reader (prevents blocking)
//   - Handler errors are logged, not fatal
//   - A non-zero exit returns an error alongside whatever the handler
//     collected; the caller decides whether partial results are usable
func (b *BaseCLIProbe) ExecuteCLI(ctx context.Context, args []string, handler OutputHandler) (stderrOutput string, err error) {
	startTime := time.Now()

	execPath := b.resolvedPath()

	b.logger.Debug("executing CLI command",
		"exec_path", execPath,
		"args", args,
	)

	cmd := exec.CommandContext(ctx, execPath, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	// Store command reference for Close()
	b.mu.Lock()
	b.cmd = cmd
	b.mu.Unlock()

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start %s: %w", b.binary, err)
	}

	b.logger.Debug("subprocess started", "pid", cmd.Process.Pid)

	// Read stderr in background to prevent blocking
	var stderrBytes []byte
	var stderrMu sync.Mutex
	var stderrWg sync.WaitGroup
	stderrWg.Add(1)

	go func() {
		defer stderrWg.Done()
		data, readErr := io.ReadAll(stderr)
		if readErr != nil {
			b.logger.Warn("error reading stderr", "error", readErr.Error())
		}
		stderrMu.Lock()
		stderrBytes = data
		stderrMu.Unlock()
	}()

	// Process stdout line by line
	scanner := bufio.NewScanner(stdout)

	// Increase buffer size for large output lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024) // 10MB max token size

	for scanner.Scan() {
		line := scanner.Bytes()

		if err := handler.ProcessLine(line); err != nil {
			b.logger.Warn("handler error", "error", err.Error())
			// Continue processing despite handler errors
		}
	}

	if err := scanner.Err(); err != nil {
		b.logger.Warn("scanner error", "error", err.Error())
	}

	if err := handler.Finalize(); err != nil {
		b.logger.Warn("handler finalization error", "error", err.Error())
	}

	// Wait for stderr goroutine to finish reading all output before
	// cmd.Wait closes the pipes (os/exec requires all pipe reads to
	// complete before Wait).
	stderrWg.Wait()

	waitErr := cmd.Wait()

	stderrMu.Lock()
	stderrOutput = string(stderrBytes)
	stderrMu.Unlock()

	if len(stderrOutput) > 0 {
		b.logger.Debug("subprocess stderr", "output", stderrOutput)
	}

	duration := time.Since(startTime)

	if waitErr != nil {
		b.logger.Warn("subprocess exited with error",
			"error", waitErr.Error(),
			"duration", duration.String(),
		)
		return stderrOutput, fmt.Errorf("%s exited with error: %w", b.binary, waitErr)
	}

	b.logger.Debug("CLI command completed",
		"duration", duration.String(),
	)

	return stderrOutput, nil
}

// CaptureCLI runs the binary and returns its full stdout and stderr.
// Convenience over ExecuteCLI for tools whose output is parsed after exit.
func (b *BaseCLIProbe) CaptureCLI(ctx context.Context, args []string) (stdout, stderr string, err error) {
	collector := &lineCollector{}
	stderr, err = b.ExecuteCLI(ctx, args, collector)
	return collector.String(), stderr, err
}

// lineCollector acumula stdout línea a línea para parseo posterior.
type lineCollector struct {
	lines []string
}

func (c *lineCollector) ProcessLine(line []byte) error {
	c.lines = append(c.lines, string(line))
	return nil
}

func (c *lineCollector) Finalize() error { return nil }

func (c *lineCollector) String() string {
	return strings.Join(c.lines, "\n")
}

// resolvedPath returns the LookPath-resolved binary path, falling back to the
// bare name when Available() has not run yet.
func (b *BaseCLIProbe) resolvedPath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.execPath != "" {
		return b.execPath
	}
	return b.binary
}

// Close terminates the subprocess and cleans up resources.
// Implements ports.Probe.Close() for all CLI-based probes.
// Safe to call multiple times (idempotent).
func (b *BaseCLIProbe) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Kill process if still running
	// Note: We hold the mutex during the entire operation to prevent races
	if b.cmd != nil && b.cmd.Process != nil {
		proc := b.cmd.Process
		state := b.cmd.ProcessState

		if state == nil || !state.Exited() {
			// Try SIGTERM first (graceful shutdown)
			if err := proc.Signal(os.Interrupt); err != nil {
				if err != os.ErrProcessDone {
					b.logger.Warn("SIGTERM failed, forcing kill", "error", err.Error())
					if killErr := proc.Kill(); killErr != nil && killErr != os.ErrProcessDone {
						b.logger.Warn("failed to kill process", "error", killErr.Error())
					}
				}
			}
		}

		b.cmd = nil
	}

	return nil
}

// ScratchDir creates a temporary working directory for tool output files.
// The returned cleanup function removes the directory tree.
func ScratchDir(probe string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "laelaps-"+probe+"-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	return dir, func() { os.RemoveAll(dir) }, nil
}
