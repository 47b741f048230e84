// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"laelaps/internal/core/domain"
	"laelaps/internal/core/ports"
)

// Modos de operación del CLI.
const (
	ModeInvestigate = "investigate"
	ModeSweep       = "sweep"
	ModeProbe       = "probe"
	ModeServe       = "serve"
	ModeHealth      = "health"
)

type Config struct {
	// App
	Mode          string
	Workers       int
	MaxVariations int
	PrintVersion  bool

	// Subject: atributos de identidad para la consulta
	Name     string
	Username string
	Email    string
	Phone    string
	Domain   string
	City     string
	State    string

	// Probe: nombre de probe para el modo probe
	Probe string

	// IO
	OutputDir  string
	ConfigFile string

	// Probes: mapa dinámico de configuraciones por probe
	// Key = probe name (ej: "sherlock", "holehe", "courtlistener")
	// Value = configuración específica de esa probe
	Probes map[string]ports.ProbeConfig

	// Outputs
	Outputs Outputs

	// Server
	Server Server
}

type Outputs struct {
	TableDisabled bool
	// JSON output is ALWAYS generated
}

type Server struct {
	Addr string
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Mode:          ModeInvestigate,
		Workers:       4,
		MaxVariations: 5,

		OutputDir: "laelaps_out",

		Probes: map[string]ports.ProbeConfig{
			"sherlock": {
				Enabled:  true,
				Timeout:  60 * time.Second,
				Priority: 10,
				Custom:   make(map[string]interface{}),
			},
			"socialscan": {
				Enabled:  true,
				Timeout:  30 * time.Second,
				Priority: 9,
				Custom:   make(map[string]interface{}),
			},
			"maigret": {
				Enabled:  true,
				Timeout:  120 * time.Second,
				Priority: 8,
				Custom:   make(map[string]interface{}),
			},
			"socialanalyzer": {
				Enabled:  true,
				Timeout:  120 * time.Second,
				Priority: 6,
				Custom:   make(map[string]interface{}),
			},
			"holehe": {
				Enabled:  true,
				Timeout:  60 * time.Second,
				Priority: 10,
				Custom:   make(map[string]interface{}),
			},
			"h8mail": {
				Enabled:  true,
				Timeout:  120 * time.Second,
				Priority: 7,
				Custom:   make(map[string]interface{}),
			},
			"theharvester": {
				Enabled:  true,
				Timeout:  90 * time.Second,
				Priority: 8,
				Custom:   make(map[string]interface{}),
			},
			"phoneinfoga": {
				Enabled:  true,
				Timeout:  90 * time.Second,
				Priority: 9,
				Custom:   make(map[string]interface{}),
			},
			"courtlistener": {
				Enabled:  true,
				Timeout:  30 * time.Second,
				Priority: 9,
				Custom:   make(map[string]interface{}),
			},
			"weblinks": {
				Enabled:  true,
				Timeout:  5 * time.Second,
				Priority: 10,
				Custom:   make(map[string]interface{}),
			},
		},

		Outputs: Outputs{
			TableDisabled: false,
		},

		Server: Server{
			Addr: ":8000",
		},
	}
}

// Load inicializa la configuración por capas:
// defaults -> archivo YAML -> ENV -> FLAGS (los flags tienen prioridad).
func Load() (Config, error) {
	cfg := DefaultConfig()

	// Ruta del archivo de configuración (solo via ENV; los flags se parsean después)
	cfg.ConfigFile = getenv("LAELAPS_CONFIG", "laelaps.yaml")

	// Cargar desde archivo (si existe)
	if err := loadFromFile(&cfg); err != nil {
		return cfg, err
	}

	// Cargar desde ENV
	loadFromEnv(&cfg)

	// Parsear flags (overrides ENV)
	loadFromFlags(&cfg)

	// Normalizar y validar
	if err := normalize(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// fileConfig es el espejo YAML de Config. Los punteros distinguen
// "no presente en el archivo" de "valor cero".
type fileConfig struct {
	Mode          *string `yaml:"mode"`
	Workers       *int    `yaml:"workers"`
	MaxVariations *int    `yaml:"max_variations"`
	OutputDir     *string `yaml:"output_dir"`

	Outputs *struct {
		TableDisabled *bool `yaml:"table_disabled"`
	} `yaml:"outputs"`

	Server *struct {
		Addr *string `yaml:"addr"`
	} `yaml:"server"`

	Probes map[string]fileProbeConfig `yaml:"probes"`
}

type fileProbeConfig struct {
	Enabled  *bool                  `yaml:"enabled"`
	Timeout  *string                `yaml:"timeout"`
	Priority *int                   `yaml:"priority"`
	Custom   map[string]interface{} `yaml:"custom"`
}

// loadFromFile superpone la configuración del archivo YAML si existe.
// La ausencia del archivo por defecto no es un error.
func loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", cfg.ConfigFile, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", cfg.ConfigFile, err)
	}

	if fc.Mode != nil {
		cfg.Mode = *fc.Mode
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.MaxVariations != nil {
		cfg.MaxVariations = *fc.MaxVariations
	}
	if fc.OutputDir != nil {
		cfg.OutputDir = *fc.OutputDir
	}
	if fc.Outputs != nil && fc.Outputs.TableDisabled != nil {
		cfg.Outputs.TableDisabled = *fc.Outputs.TableDisabled
	}
	if fc.Server != nil && fc.Server.Addr != nil {
		cfg.Server.Addr = *fc.Server.Addr
	}

	for name, fpc := range fc.Probes {
		probeCfg, ok := cfg.Probes[name]
		if !ok {
			probeCfg = ports.DefaultProbeConfig()
		}
		if fpc.Enabled != nil {
			probeCfg.Enabled = *fpc.Enabled
		}
		if fpc.Timeout != nil {
			d, err := time.ParseDuration(*fpc.Timeout)
			if err != nil {
				return fmt.Errorf("probe %s: invalid timeout %q: %w", name, *fpc.Timeout, err)
			}
			probeCfg.Timeout = d
		}
		if fpc.Priority != nil {
			probeCfg.Priority = *fpc.Priority
		}
		for k, v := range fpc.Custom {
			if probeCfg.Custom == nil {
				probeCfg.Custom = make(map[string]interface{})
			}
			probeCfg.Custom[k] = v
		}
		cfg.Probes[name] = probeCfg
	}

	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv("LAELAPS_MODE", ""); v != "" {
		cfg.Mode = v
	}
	if v := getenv("LAELAPS_WORKERS", ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv("LAELAPS_MAX_VARIATIONS", ""); v != "" {
		cfg.MaxVariations = parseInt(v, cfg.MaxVariations)
	}
	if v := getenv("LAELAPS_OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv("LAELAPS_SERVER_ADDR", ""); v != "" {
		cfg.Server.Addr = v
	}

	// Probes config desde ENV
	// Formato: LAELAPS_PROBES_SHERLOCK_ENABLED=true
	//          LAELAPS_PROBES_SHERLOCK_PRIORITY=10
	//          LAELAPS_PROBES_SHERLOCK_TIMEOUT=60
	for name := range cfg.Probes {
		prefix := fmt.Sprintf("LAELAPS_PROBES_%s_", strings.ToUpper(name))

		probeCfg := cfg.Probes[name]

		if v := getenv(prefix+"ENABLED", ""); v != "" {
			probeCfg.Enabled = parseBool(v)
		}
		if v := getenv(prefix+"PRIORITY", ""); v != "" {
			probeCfg.Priority = parseInt(v, probeCfg.Priority)
		}
		if v := getenv(prefix+"TIMEOUT", ""); v != "" {
			probeCfg.Timeout = time.Duration(parseInt(v, int(probeCfg.Timeout.Seconds()))) * time.Second
		}

		cfg.Probes[name] = probeCfg
	}

	// API keys que viven fuera del esquema LAELAPS_*
	if v := getenv("COURTLISTENER_API_KEY", ""); v != "" {
		if probeCfg, ok := cfg.Probes["courtlistener"]; ok {
			if probeCfg.Custom == nil {
				probeCfg.Custom = make(map[string]interface{})
			}
			probeCfg.Custom["api_key"] = v
			cfg.Probes["courtlistener"] = probeCfg
		}
	}

	// Outputs
	if v := getenv("LAELAPS_OUTPUTS_TABLE_DISABLED", ""); v != "" {
		cfg.Outputs.TableDisabled = parseBool(v)
	}
}

// loadFromFlags parsea flags de CLI.
func loadFromFlags(cfg *Config) {
	pflag.StringVarP(&cfg.Mode, "mode", "m", cfg.Mode, "Modo de operación (investigate, sweep, probe, serve, health)")
	pflag.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Concurrencia máxima de probes")
	pflag.IntVar(&cfg.MaxVariations, "max-variations", cfg.MaxVariations, "Máximo de variaciones de username en modo investigate")

	pflag.StringVarP(&cfg.Name, "name", "n", cfg.Name, "Nombre completo del sujeto")
	pflag.StringVarP(&cfg.Username, "username", "u", cfg.Username, "Alias conocido del sujeto")
	pflag.StringVarP(&cfg.Email, "email", "e", cfg.Email, "Email del sujeto")
	pflag.StringVar(&cfg.Phone, "phone", cfg.Phone, "Teléfono del sujeto")
	pflag.StringVarP(&cfg.Domain, "domain", "d", cfg.Domain, "Dominio asociado al sujeto")
	pflag.StringVar(&cfg.City, "city", cfg.City, "Ciudad para enlaces y registros judiciales")
	pflag.StringVar(&cfg.State, "state", cfg.State, "Estado (código de dos letras) para registros judiciales")

	pflag.StringVar(&cfg.Probe, "probe", cfg.Probe, "Probe a ejecutar en modo probe (ej: sherlock)")

	pflag.StringVarP(&cfg.OutputDir, "out", "o", cfg.OutputDir, "Directorio de salida")
	pflag.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Imprimir versión y salir")

	// Probe configs (solo enabled y priority via flags, el resto via ENV o archivo)
	for name := range cfg.Probes {
		probeCfg := cfg.Probes[name]
		pflag.BoolVar(&probeCfg.Enabled, fmt.Sprintf("probes.%s", name), probeCfg.Enabled,
			fmt.Sprintf("Habilitar probe %s", name))
		pflag.IntVar(&probeCfg.Priority, fmt.Sprintf("probes.%s.priority", name), probeCfg.Priority,
			fmt.Sprintf("Prioridad de probe %s (mayor = más prioritario)", name))
		cfg.Probes[name] = probeCfg
	}

	// Outputs
	pflag.BoolVarP(&cfg.Outputs.TableDisabled, "quiet", "q", cfg.Outputs.TableDisabled,
		"Desactivar salida en tabla (JSON siempre se genera)")

	// Server
	pflag.StringVar(&cfg.Server.Addr, "server.addr", cfg.Server.Addr,
		"Dirección de escucha del servidor HTTP (modo serve)")

	pflag.Usage = PrintHelp
	pflag.Parse()
}

func normalize(c *Config) error {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	switch c.Mode {
	case ModeInvestigate, ModeSweep, ModeProbe, ModeServe, ModeHealth:
	case "":
		c.Mode = ModeInvestigate
	default:
		return fmt.Errorf("unknown mode %q (expected investigate, sweep, probe, serve or health)", c.Mode)
	}

	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.MaxVariations < 1 {
		c.MaxVariations = 5
	}
	if c.OutputDir == "" {
		c.OutputDir = "laelaps_out"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}

	c.Probe = strings.ToLower(strings.TrimSpace(c.Probe))

	return nil
}

// Subject construye el sujeto de consulta a partir de los flags.
// La normalización fina (email, phone, domain) la hace Subject.Validate.
func (c Config) Subject() domain.Subject {
	return domain.Subject{
		Name:     c.Name,
		Username: c.Username,
		Email:    c.Email,
		Phone:    c.Phone,
		Domain:   c.Domain,
		City:     c.City,
		State:    c.State,
	}
}

// ToJSON serializa la configuración a JSON (útil para debugging).
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}
