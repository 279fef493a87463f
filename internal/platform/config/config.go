// internal/platform/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"randomnet/internal/platform/errors"
)

// Handler names accepted by --handler.
const (
	HandlerPrint   = "print"
	HandlerBrowser = "browser"
)

// Config is the full configuration surface of the engine.
type Config struct {
	// Engine
	Count     int           // number of live sites to find
	BatchSize int           // candidates probed concurrently per batch
	Timeout   time.Duration // per-probe timeout
	Handler   string        // print | browser

	// Candidate generation
	Wordlist string
	Suffixes []string

	// Probing
	UserAgent    string
	RateLimit    float64 // probes per second, 0 = unlimited
	MaxBodyBytes int64

	// Classifier
	ClassifierDisabled bool
	ExtraSignatures    []string // yaml-only

	// Outputs
	CSVPath       string
	TableDisabled bool
	UI            string // pterm | raw | none

	// Meta
	ConfigPath   string
	PrintVersion bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Count:        20,
		BatchSize:    100,
		Timeout:      5 * time.Second,
		Handler:      HandlerPrint,
		Wordlist:     "corncob_lowercase.txt",
		Suffixes:     []string{"com", "net", "org", "co.uk"},
		UserAgent:    "", // prober default applies
		RateLimit:    0,
		MaxBodyBytes: 2 << 20,
		UI:           "pterm",
	}
}

// Load builds the configuration in increasing precedence: defaults, then
// RANDOMNET_* environment variables, then the YAML config file, then
// command-line flags. args is os.Args[1:].
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	loadFromEnv(&cfg)

	fs := newFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		return cfg, errors.Wrap(err, "parse flags")
	}

	if cfg.ConfigPath != "" {
		if err := loadFromFile(&cfg, cfg.ConfigPath, fs); err != nil {
			return cfg, err
		}
	}

	normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newFlagSet binds flags to cfg, using the current values as defaults so
// env settings survive unless explicitly overridden.
func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("randomnet", pflag.ContinueOnError)

	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of live sites to find")
	fs.IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Candidates probed concurrently per batch (should exceed --count)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-probe timeout")
	fs.StringVar(&cfg.Handler, "handler", cfg.Handler, "Result handler: print or browser")
	fs.StringVarP(&cfg.Wordlist, "wordlist", "w", cfg.Wordlist, "Path to the vocabulary file, one word per line")
	fs.StringSliceVar(&cfg.Suffixes, "suffixes", cfg.Suffixes, "Domain suffixes to draw from")
	fs.StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header for probes")
	fs.Float64Var(&cfg.RateLimit, "rate", cfg.RateLimit, "Maximum probes per second (0 = unlimited)")
	fs.BoolVar(&cfg.ClassifierDisabled, "no-classifier", cfg.ClassifierDisabled, "Treat any 200 response as alive, skip parked-page detection")
	fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "Write discoveries to a CSV file at this path")
	fs.BoolVar(&cfg.TableDisabled, "no-table", cfg.TableDisabled, "Disable the end-of-run summary table")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Progress output: pterm, raw or none")
	fs.StringVarP(&cfg.ConfigPath, "config", "c", cfg.ConfigPath, "Path to a YAML config file")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version and exit")

	return fs
}

// fileConfig mirrors Config for the YAML layer. Pointer fields so absent
// keys do not clobber env or defaults.
type fileConfig struct {
	Count              *int     `yaml:"count"`
	BatchSize          *int     `yaml:"batch_size"`
	Timeout            *string  `yaml:"timeout"`
	Handler            *string  `yaml:"handler"`
	Wordlist           *string  `yaml:"wordlist"`
	Suffixes           []string `yaml:"suffixes"`
	UserAgent          *string  `yaml:"user_agent"`
	RateLimit          *float64 `yaml:"rate_limit"`
	MaxBodyBytes       *int64   `yaml:"max_body_bytes"`
	ClassifierDisabled *bool    `yaml:"no_classifier"`
	ExtraSignatures    []string `yaml:"extra_signatures"`
	CSVPath            *string  `yaml:"csv"`
	TableDisabled      *bool    `yaml:"no_table"`
	UI                 *string  `yaml:"ui"`
}

// loadFromFile applies the YAML file below flag precedence: keys are only
// honored when the matching flag was not set on the command line.
func loadFromFile(cfg *Config, path string, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config file %s", path)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "parse config file %s", path)
	}

	set := func(flag string) bool { return !fs.Changed(flag) }

	if fc.Count != nil && set("count") {
		cfg.Count = *fc.Count
	}
	if fc.BatchSize != nil && set("batch-size") {
		cfg.BatchSize = *fc.BatchSize
	}
	if fc.Timeout != nil && set("timeout") {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return errors.Wrapf(err, "config file timeout %q", *fc.Timeout)
		}
		cfg.Timeout = d
	}
	if fc.Handler != nil && set("handler") {
		cfg.Handler = *fc.Handler
	}
	if fc.Wordlist != nil && set("wordlist") {
		cfg.Wordlist = *fc.Wordlist
	}
	if len(fc.Suffixes) > 0 && set("suffixes") {
		cfg.Suffixes = fc.Suffixes
	}
	if fc.UserAgent != nil && set("user-agent") {
		cfg.UserAgent = *fc.UserAgent
	}
	if fc.RateLimit != nil && set("rate") {
		cfg.RateLimit = *fc.RateLimit
	}
	if fc.MaxBodyBytes != nil {
		cfg.MaxBodyBytes = *fc.MaxBodyBytes
	}
	if fc.ClassifierDisabled != nil && set("no-classifier") {
		cfg.ClassifierDisabled = *fc.ClassifierDisabled
	}
	if len(fc.ExtraSignatures) > 0 {
		cfg.ExtraSignatures = fc.ExtraSignatures
	}
	if fc.CSVPath != nil && set("csv") {
		cfg.CSVPath = *fc.CSVPath
	}
	if fc.TableDisabled != nil && set("no-table") {
		cfg.TableDisabled = *fc.TableDisabled
	}
	if fc.UI != nil && set("ui") {
		cfg.UI = *fc.UI
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := getenv("RANDOMNET_COUNT", ""); v != "" {
		cfg.Count = parseInt(v, cfg.Count)
	}
	if v := getenv("RANDOMNET_BATCH_SIZE", ""); v != "" {
		cfg.BatchSize = parseInt(v, cfg.BatchSize)
	}
	if v := getenv("RANDOMNET_TIMEOUT", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := getenv("RANDOMNET_HANDLER", ""); v != "" {
		cfg.Handler = v
	}
	if v := getenv("RANDOMNET_WORDLIST", ""); v != "" {
		cfg.Wordlist = v
	}
	if v := getenv("RANDOMNET_SUFFIXES", ""); v != "" {
		cfg.Suffixes = splitList(v)
	}
	if v := getenv("RANDOMNET_USER_AGENT", ""); v != "" {
		cfg.UserAgent = v
	}
	if v := getenv("RANDOMNET_RATE", ""); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			cfg.RateLimit = f
		}
	}
	if v := getenv("RANDOMNET_NO_CLASSIFIER", ""); v != "" {
		cfg.ClassifierDisabled = parseBool(v)
	}
	if v := getenv("RANDOMNET_CSV", ""); v != "" {
		cfg.CSVPath = v
	}
	if v := getenv("RANDOMNET_NO_TABLE", ""); v != "" {
		cfg.TableDisabled = parseBool(v)
	}
	if v := getenv("RANDOMNET_UI", ""); v != "" {
		cfg.UI = v
	}
	if v := getenv("RANDOMNET_CONFIG", ""); v != "" {
		cfg.ConfigPath = v
	}
}

func normalize(c *Config) {
	c.Handler = strings.ToLower(strings.TrimSpace(c.Handler))
	c.UI = strings.ToLower(strings.TrimSpace(c.UI))

	suffixes := make([]string, 0, len(c.Suffixes))
	for _, s := range c.Suffixes {
		s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
		if s != "" {
			suffixes = append(suffixes, s)
		}
	}
	c.Suffixes = suffixes

	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 2 << 20
	}
	if c.RateLimit < 0 {
		c.RateLimit = 0
	}
}

// Validate checks the configuration invariants the engine depends on.
func (c Config) Validate() error {
	if c.Count < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "count must be positive, got %d", c.Count)
	}
	if c.BatchSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "batch size must be positive, got %d", c.BatchSize)
	}
	if c.Timeout <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "timeout must be positive, got %s", c.Timeout)
	}
	if c.Handler != HandlerPrint && c.Handler != HandlerBrowser {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown handler %q", c.Handler)
	}
	if len(c.Suffixes) == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "at least one suffix is required")
	}
	switch c.UI {
	case "pterm", "raw", "none":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown ui mode %q", c.UI)
	}
	return nil
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

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
