// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"archlink/internal/core/ports"
	"archlink/internal/platform/logx"
)

// DefaultConfigPath is where the system-wide configuration file lives. The
// ARCHLINK_CONFIG environment variable overrides it.
const DefaultConfigPath = "/etc/archlink/config.yaml"

const defaultMaxResults = 10

type Config struct {
	// MaxResults caps how many ranked packages a search displays.
	MaxResults int

	// Quiet raises the log level so only warnings and errors reach stderr.
	Quiet bool

	PrintVersion bool
	PrintHelp    bool

	// Sources holds per-source settings keyed by source name
	// (e.g. "archweb", "aur").
	Sources map[string]ports.SourceConfig
}

// fileConfig mirrors the YAML configuration file.
type fileConfig struct {
	MaxResults int `yaml:"max_results"`
	Sources    map[string]struct {
		Enabled  *bool `yaml:"enabled"`
		TimeoutS int   `yaml:"timeout"`
		Priority *int  `yaml:"priority"`
	} `yaml:"sources"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MaxResults: defaultMaxResults,
		Sources: map[string]ports.SourceConfig{
			"archweb": {
				Enabled:  true,
				Timeout:  10 * time.Second,
				Priority: 10,
			},
			"aur": {
				Enabled:  true,
				Timeout:  10 * time.Second,
				Priority: 5,
			},
		},
	}
}

// Load builds the effective configuration: defaults, then the config file,
// then environment variables, then CLI flags (flags win). It returns the
// positional arguments left after flag parsing. A missing config file is
// normal; a malformed one is reported as a warning and ignored.
func Load(args []string, logger logx.Logger) (Config, []string, error) {
	cfg := DefaultConfig()

	loadFromFile(&cfg, configPath(), logger)
	loadFromEnv(&cfg)

	rest, err := loadFromFlags(&cfg, args)
	if err != nil {
		return cfg, nil, err
	}

	normalize(&cfg)
	return cfg, rest, nil
}

// configPath resolves the config file location.
func configPath() string {
	if v := getenv("ARCHLINK_CONFIG", ""); v != "" {
		return v
	}
	return DefaultConfigPath
}

// loadFromFile overlays settings from the YAML config file.
func loadFromFile(cfg *Config, path string, logger logx.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("config file unreadable, using defaults", "path", path, "error", err.Error())
		}
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		logger.Warn("config file malformed, using defaults", "path", path, "error", err.Error())
		return
	}

	if fc.MaxResults > 0 {
		cfg.MaxResults = fc.MaxResults
	}

	for name, sc := range fc.Sources {
		sourceCfg, ok := cfg.Sources[name]
		if !ok {
			sourceCfg = ports.DefaultSourceConfig()
		}
		if sc.Enabled != nil {
			sourceCfg.Enabled = *sc.Enabled
		}
		if sc.TimeoutS > 0 {
			sourceCfg.Timeout = time.Duration(sc.TimeoutS) * time.Second
		}
		if sc.Priority != nil {
			sourceCfg.Priority = *sc.Priority
		}
		cfg.Sources[name] = sourceCfg
	}
}

// loadFromEnv overlays settings from environment variables.
// Format: ARCHLINK_MAX_RESULTS=20
//
//	ARCHLINK_SOURCES_AUR_ENABLED=false
//	ARCHLINK_SOURCES_ARCHWEB_TIMEOUT=30
func loadFromEnv(cfg *Config) {
	if v := getenv("ARCHLINK_MAX_RESULTS", ""); v != "" {
		cfg.MaxResults = parseInt(v, cfg.MaxResults)
	}
	if v := getenv("ARCHLINK_QUIET", ""); v != "" {
		cfg.Quiet = parseBool(v)
	}

	for name := range cfg.Sources {
		prefix := fmt.Sprintf("ARCHLINK_SOURCES_%s_", strings.ToUpper(name))

		sourceCfg := cfg.Sources[name]

		if v := getenv(prefix+"ENABLED", ""); v != "" {
			sourceCfg.Enabled = parseBool(v)
		}
		if v := getenv(prefix+"TIMEOUT", ""); v != "" {
			sourceCfg.Timeout = time.Duration(parseInt(v, int(sourceCfg.Timeout.Seconds()))) * time.Second
		}
		if v := getenv(prefix+"PRIORITY", ""); v != "" {
			sourceCfg.Priority = parseInt(v, sourceCfg.Priority)
		}

		cfg.Sources[name] = sourceCfg
	}
}

// loadFromFlags parses CLI flags into the config and returns the remaining
// positional arguments. Unknown flags are a usage error.
func loadFromFlags(cfg *Config, args []string) ([]string, error) {
	fs := pflag.NewFlagSet("archlink", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // main renders help

	fs.IntVarP(&cfg.MaxResults, "max-results", "n", cfg.MaxResults, "Maximum number of search results to display")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Only print warnings and errors to stderr")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version information and exit")
	fs.BoolVarP(&cfg.PrintHelp, "help", "h", false, "Show help and exit")

	// Map values cannot be bound directly, so bind copies and fold them
	// back in after parsing.
	enabled := make(map[string]*bool, len(cfg.Sources))
	for name := range cfg.Sources {
		enabled[name] = fs.Bool(fmt.Sprintf("src.%s", name), cfg.Sources[name].Enabled,
			fmt.Sprintf("Enable the %s source", name))
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for name, v := range enabled {
		sourceCfg := cfg.Sources[name]
		sourceCfg.Enabled = *v
		cfg.Sources[name] = sourceCfg
	}
	return fs.Args(), nil
}

func normalize(c *Config) {
	if c.MaxResults < 1 {
		c.MaxResults = defaultMaxResults
	}
	for name, sourceCfg := range c.Sources {
		if sourceCfg.Timeout <= 0 {
			sourceCfg.Timeout = 10 * time.Second
			c.Sources[name] = sourceCfg
		}
	}
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
