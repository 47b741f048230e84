// internal/platform/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		def      string
		envValue string
		expected string
	}{
		{
			name:     "env var exists",
			key:      "TEST_KEY_1",
			def:      "default",
			envValue: "custom",
			expected: "custom",
		},
		{
			name:     "env var missing - uses default",
			key:      "TEST_KEY_MISSING",
			def:      "default",
			envValue: "",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getenv(tt.key, tt.def)

			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		// Truthy values
		{"1", true},
		{"t", true},
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{"y", true},
		{"yes", true},
		{"on", true},
		{" true ", true},

		// Falsy values
		{"0", false},
		{"false", false},
		{"no", false},
		{"off", false},
		{"", false},
		{"random", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseBool(tt.input)
			if result != tt.expected {
				t.Errorf("parseBool(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      int
		expected int
	}{
		{"valid integer", "42", 10, 42},
		{"negative integer", "-5", 10, -5},
		{"zero", "0", 10, 0},
		{"with spaces", "  100  ", 10, 100},
		{"invalid - returns default", "abc", 10, 10},
		{"empty - returns default", "", 10, 10},
		{"float - returns default", "3.14", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseInt(tt.input, tt.def)
			if result != tt.expected {
				t.Errorf("parseInt(%q, %d) = %d, expected %d", tt.input, tt.def, result, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("mode is lowercased and trimmed", func(t *testing.T) {
		cfg := Config{Mode: "  SWEEP  ", Workers: 4}
		err := normalize(&cfg)
		if err != nil {
			t.Fatalf("normalize() failed: %v", err)
		}
		if cfg.Mode != ModeSweep {
			t.Errorf("Mode: expected %q, got %q", ModeSweep, cfg.Mode)
		}
	})

	t.Run("empty mode defaults to investigate", func(t *testing.T) {
		cfg := Config{Workers: 4}
		err := normalize(&cfg)
		if err != nil {
			t.Fatalf("normalize() failed: %v", err)
		}
		if cfg.Mode != ModeInvestigate {
			t.Errorf("Mode: expected %q, got %q", ModeInvestigate, cfg.Mode)
		}
	})

	t.Run("unknown mode is an error", func(t *testing.T) {
		cfg := Config{Mode: "bogus", Workers: 4}
		if err := normalize(&cfg); err == nil {
			t.Error("expected error for unknown mode")
		}
	})

	t.Run("workers minimum is 1", func(t *testing.T) {
		cfg := Config{Mode: ModeSweep, Workers: 0}
		normalize(&cfg)
		if cfg.Workers != 1 {
			t.Errorf("Workers: expected 1, got %d", cfg.Workers)
		}

		cfg = Config{Mode: ModeSweep, Workers: -5}
		normalize(&cfg)
		if cfg.Workers != 1 {
			t.Errorf("Workers: expected 1, got %d", cfg.Workers)
		}
	})

	t.Run("max variations minimum is restored to default", func(t *testing.T) {
		cfg := Config{Mode: ModeSweep, Workers: 4, MaxVariations: 0}
		normalize(&cfg)
		if cfg.MaxVariations != 5 {
			t.Errorf("MaxVariations: expected 5, got %d", cfg.MaxVariations)
		}

		cfg = Config{Mode: ModeSweep, Workers: 4, MaxVariations: 3}
		normalize(&cfg)
		if cfg.MaxVariations != 3 {
			t.Errorf("MaxVariations: expected 3, got %d", cfg.MaxVariations)
		}
	})

	t.Run("empty output dir gets default", func(t *testing.T) {
		cfg := Config{Mode: ModeSweep, Workers: 4}
		normalize(&cfg)
		if cfg.OutputDir != "laelaps_out" {
			t.Errorf("OutputDir: expected %q, got %q", "laelaps_out", cfg.OutputDir)
		}
	})

	t.Run("empty server addr gets default", func(t *testing.T) {
		cfg := Config{Mode: ModeServe, Workers: 4}
		normalize(&cfg)
		if cfg.Server.Addr != ":8000" {
			t.Errorf("Server.Addr: expected %q, got %q", ":8000", cfg.Server.Addr)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeInvestigate {
		t.Errorf("Mode: expected %q, got %q", ModeInvestigate, cfg.Mode)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers: expected 4, got %d", cfg.Workers)
	}
	if cfg.MaxVariations != 5 {
		t.Errorf("MaxVariations: expected 5, got %d", cfg.MaxVariations)
	}
	if cfg.OutputDir != "laelaps_out" {
		t.Errorf("OutputDir: expected %q, got %q", "laelaps_out", cfg.OutputDir)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Server.Addr: expected %q, got %q", ":8000", cfg.Server.Addr)
	}

	for _, name := range []string{
		"sherlock", "socialscan", "maigret", "socialanalyzer",
		"holehe", "h8mail", "theharvester", "phoneinfoga",
		"courtlistener", "weblinks",
	} {
		probeCfg, exists := cfg.Probes[name]
		if !exists {
			t.Errorf("Probes[%q] missing from defaults", name)
			continue
		}
		if !probeCfg.Enabled {
			t.Errorf("Probes[%q].Enabled: expected true", name)
		}
		if probeCfg.Timeout <= 0 {
			t.Errorf("Probes[%q].Timeout: expected positive, got %v", name, probeCfg.Timeout)
		}
	}

	if cfg.Probes["sherlock"].Timeout != 60*time.Second {
		t.Errorf("sherlock timeout: expected 60s, got %v", cfg.Probes["sherlock"].Timeout)
	}
	if cfg.Probes["maigret"].Timeout != 120*time.Second {
		t.Errorf("maigret timeout: expected 120s, got %v", cfg.Probes["maigret"].Timeout)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	// Reset pflag to avoid conflicts between tests
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)

	os.Setenv("LAELAPS_MODE", "sweep")
	os.Setenv("LAELAPS_WORKERS", "8")
	os.Setenv("LAELAPS_MAX_VARIATIONS", "3")
	os.Setenv("LAELAPS_OUTPUT_DIR", "custom_out")
	os.Setenv("LAELAPS_SERVER_ADDR", ":9001")
	os.Setenv("LAELAPS_PROBES_SHERLOCK_ENABLED", "false")
	os.Setenv("LAELAPS_PROBES_MAIGRET_PRIORITY", "20")
	os.Setenv("LAELAPS_PROBES_HOLEHE_TIMEOUT", "90")
	os.Setenv("COURTLISTENER_API_KEY", "tok-123")

	defer func() {
		os.Unsetenv("LAELAPS_MODE")
		os.Unsetenv("LAELAPS_WORKERS")
		os.Unsetenv("LAELAPS_MAX_VARIATIONS")
		os.Unsetenv("LAELAPS_OUTPUT_DIR")
		os.Unsetenv("LAELAPS_SERVER_ADDR")
		os.Unsetenv("LAELAPS_PROBES_SHERLOCK_ENABLED")
		os.Unsetenv("LAELAPS_PROBES_MAIGRET_PRIORITY")
		os.Unsetenv("LAELAPS_PROBES_HOLEHE_TIMEOUT")
		os.Unsetenv("COURTLISTENER_API_KEY")
	}()

	// Simulate no CLI arguments (only ENV)
	os.Args = []string{"cmd"}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Mode != ModeSweep {
		t.Errorf("Mode: expected %q, got %q", ModeSweep, cfg.Mode)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers: expected 8, got %d", cfg.Workers)
	}
	if cfg.MaxVariations != 3 {
		t.Errorf("MaxVariations: expected 3, got %d", cfg.MaxVariations)
	}
	if cfg.OutputDir != "custom_out" {
		t.Errorf("OutputDir: expected %q, got %q", "custom_out", cfg.OutputDir)
	}
	if cfg.Server.Addr != ":9001" {
		t.Errorf("Server.Addr: expected %q, got %q", ":9001", cfg.Server.Addr)
	}
	if sherlockCfg := cfg.Probes["sherlock"]; sherlockCfg.Enabled {
		t.Error("Probes[\"sherlock\"].Enabled: expected false")
	}
	if maigretCfg := cfg.Probes["maigret"]; maigretCfg.Priority != 20 {
		t.Errorf("Probes[\"maigret\"].Priority: expected 20, got %d", maigretCfg.Priority)
	}
	if holeheCfg := cfg.Probes["holehe"]; holeheCfg.Timeout != 90*time.Second {
		t.Errorf("Probes[\"holehe\"].Timeout: expected 90s, got %v", holeheCfg.Timeout)
	}
	if got := cfg.Probes["courtlistener"].Custom["api_key"]; got != "tok-123" {
		t.Errorf("courtlistener api_key: expected tok-123, got %v", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)

	envVars := []string{
		"LAELAPS_MODE",
		"LAELAPS_WORKERS",
		"LAELAPS_OUTPUT_DIR",
		"LAELAPS_SERVER_ADDR",
		"LAELAPS_CONFIG",
		"COURTLISTENER_API_KEY",
	}
	for _, env := range envVars {
		os.Unsetenv(env)
	}

	os.Args = []string{"cmd"}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Mode != ModeInvestigate {
		t.Errorf("Mode: expected %q, got %q", ModeInvestigate, cfg.Mode)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers: expected 4, got %d", cfg.Workers)
	}
	if cfg.OutputDir != "laelaps_out" {
		t.Errorf("OutputDir: expected %q, got %q", "laelaps_out", cfg.OutputDir)
	}
	if sherlockCfg, exists := cfg.Probes["sherlock"]; !exists || !sherlockCfg.Enabled {
		t.Error("Probes[\"sherlock\"]: expected enabled by default")
	}
}

func TestLoad_FromFile(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)

	dir := t.TempDir()
	path := filepath.Join(dir, "laelaps.yaml")
	content := `
mode: sweep
workers: 6
output_dir: file_out
outputs:
  table_disabled: true
server:
  addr: ":9090"
probes:
  sherlock:
    enabled: false
    timeout: 45s
    priority: 3
  courtlistener:
    custom:
      api_key: from-file
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	os.Setenv("LAELAPS_CONFIG", path)
	defer os.Unsetenv("LAELAPS_CONFIG")

	os.Args = []string{"cmd"}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Mode != ModeSweep {
		t.Errorf("Mode: expected %q, got %q", ModeSweep, cfg.Mode)
	}
	if cfg.Workers != 6 {
		t.Errorf("Workers: expected 6, got %d", cfg.Workers)
	}
	if cfg.OutputDir != "file_out" {
		t.Errorf("OutputDir: expected %q, got %q", "file_out", cfg.OutputDir)
	}
	if !cfg.Outputs.TableDisabled {
		t.Error("Outputs.TableDisabled: expected true")
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr: expected %q, got %q", ":9090", cfg.Server.Addr)
	}

	sherlockCfg := cfg.Probes["sherlock"]
	if sherlockCfg.Enabled {
		t.Error("sherlock should be disabled by file")
	}
	if sherlockCfg.Timeout != 45*time.Second {
		t.Errorf("sherlock timeout: expected 45s, got %v", sherlockCfg.Timeout)
	}
	if sherlockCfg.Priority != 3 {
		t.Errorf("sherlock priority: expected 3, got %d", sherlockCfg.Priority)
	}
	if got := cfg.Probes["courtlistener"].Custom["api_key"]; got != "from-file" {
		t.Errorf("courtlistener api_key: expected from-file, got %v", got)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)

	dir := t.TempDir()
	path := filepath.Join(dir, "laelaps.yaml")
	if err := os.WriteFile(path, []byte("probes: [not a map"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	os.Setenv("LAELAPS_CONFIG", path)
	defer os.Unsetenv("LAELAPS_CONFIG")

	os.Args = []string{"cmd"}

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestConfig_Subject(t *testing.T) {
	cfg := Config{
		Name:     "Amanda Driskell",
		Username: "amandad",
		Email:    "amanda@example.com",
		City:     "New Orleans",
		State:    "LA",
	}

	subject := cfg.Subject()

	if subject.Name != "Amanda Driskell" {
		t.Errorf("Name: expected %q, got %q", "Amanda Driskell", subject.Name)
	}
	if subject.Username != "amandad" {
		t.Errorf("Username: expected %q, got %q", "amandad", subject.Username)
	}
	if subject.Email != "amanda@example.com" {
		t.Errorf("Email: expected %q, got %q", "amanda@example.com", subject.Email)
	}
	if subject.City != "New Orleans" {
		t.Errorf("City: expected %q, got %q", "New Orleans", subject.City)
	}
	if subject.State != "LA" {
		t.Errorf("State: expected %q, got %q", "LA", subject.State)
	}
}
