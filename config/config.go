// Package config loads monitor definitions from YAML.
// It supports loading from files and MONTRANSFORM_* environment overrides,
// validates with struct tags, and builds ready-to-run monitors.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/montransform/internal/logging"
	"github.com/katalvlaran/montransform/monitor"
	"github.com/katalvlaran/montransform/transform"
	"gopkg.in/yaml.v3"
)

// Monitor kinds.
const (
	KindRaw       = "raw"
	KindSubSample = "subsample"
)

// ErrInvalid indicates a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root of a montransform configuration file.
type Config struct {
	// Delimiter separates expressions in pre_expr and post_expr.
	Delimiter string `json:"delimiter" yaml:"delimiter" validate:"required,singlechar"`

	// LogLevel is one of debug, info (default), warn, error.
	LogLevel string `json:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// ValidateFinite rejects NaN/±Inf results at evaluation (default true).
	ValidateFinite bool `json:"validate_finite" yaml:"validate_finite"`

	// Monitors lists the monitors to build; names must be unique.
	Monitors []MonitorConfig `json:"monitors" yaml:"monitors" validate:"required,min=1,unique=Name,dive"`
}

// MonitorConfig describes one monitor.
type MonitorConfig struct {
	// Name labels the monitor in logs and metrics.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Kind is "raw" (every step) or "subsample" (every Period steps).
	Kind string `json:"kind" yaml:"kind" validate:"required,oneof=raw subsample"`

	// Period is the sampling period in steps. Required for subsample.
	Period int `json:"period,omitempty" yaml:"period,omitempty" validate:"required_if=Kind subsample,gte=0"`

	// PreExpr is the delimited pre expression list.
	PreExpr string `json:"pre_expr" yaml:"pre_expr" validate:"required"`

	// PostExpr is the delimited post expression list; empty means no-op.
	PostExpr string `json:"post_expr,omitempty" yaml:"post_expr,omitempty"`

	// Variables names the state variables; Variables[i] aliases x<i>.
	Variables []string `json:"variables,omitempty" yaml:"variables,omitempty" validate:"omitempty,unique,dive,required"`

	// Count declares the monitored slot count; 0 derives it from the lists.
	Count int `json:"count,omitempty" yaml:"count,omitempty" validate:"gte=0"`
}

var validate = newValidator()

// newValidator builds the shared validator with the custom tags registered.
// Panics if a registration fails: the tags are fixed at compile time.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("singlechar", validateSingleChar); err != nil {
		panic(fmt.Sprintf("config: register singlechar validation: %v", err))
	}

	return v
}

// validateSingleChar accepts strings of exactly one rune.
func validateSingleChar(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(fl.Field().String()) == 1
}

// Default returns a Config with defaults and no monitors.
func Default() *Config {
	return &Config{
		Delimiter:      transform.DefaultDelimiter,
		LogLevel:       "info",
		ValidateFinite: transform.DefaultValidateFinite,
	}
}

// Load reads path and applies environment overrides.
// Order: defaults -> file -> environment variables.
func Load(path string) (*Config, error) {
	cfg, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults. Unknown keys are rejected and an
// empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// String overrides are checked later by Validate; a malformed boolean is
// rejected here with ErrInvalid.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MONTRANSFORM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MONTRANSFORM_DELIMITER"); v != "" {
		cfg.Delimiter = v
	}
	if v := os.Getenv("MONTRANSFORM_VALIDATE_FINITE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: MONTRANSFORM_VALIDATE_FINITE=%q is not a boolean", ErrInvalid, v)
		}
		cfg.ValidateFinite = b
	}

	return nil
}

// Validate checks struct-level constraints. It does not parse expressions;
// Build does that.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, fe.Namespace(), fe.Tag())
		}

		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Logger returns a logger at the configured level.
func (c *Config) Logger() (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return logging.New(lvl), nil
}

// Build validates the configuration and constructs every monitor, in file
// order. Expression errors surface as transform.ErrShape / ErrSyntax /
// ErrDelimiter and carry the monitor name.
func (c *Config) Build(log *slog.Logger) ([]monitor.Monitor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.NewNop()
	}

	out := make([]monitor.Monitor, 0, len(c.Monitors))
	for _, mc := range c.Monitors {
		m, err := c.buildMonitor(mc, log)
		if err != nil {
			return nil, err
		}
		log.Debug("monitor built", "monitor", mc.Name, "kind", mc.Kind, "slots", m.Transforms().Len())
		out = append(out, m)
	}

	return out, nil
}

func (c *Config) buildMonitor(mc MonitorConfig, log *slog.Logger) (monitor.Monitor, error) {
	topts := []transform.Option{transform.WithDelimiter(c.Delimiter)}
	if !c.ValidateFinite {
		topts = append(topts, transform.WithNoValidateFinite())
	}
	if len(mc.Variables) > 0 {
		topts = append(topts, transform.WithVariableNames(mc.Variables...))
	}
	if mc.Count > 0 {
		topts = append(topts, transform.WithVariableCount(mc.Count))
	}
	opts := []monitor.Option{
		monitor.WithName(mc.Name),
		monitor.WithLogger(log),
		monitor.WithTransformOptions(topts...),
	}

	if mc.Kind == KindSubSample {
		m, err := monitor.NewSubSample(mc.Period, mc.PreExpr, mc.PostExpr, opts...)
		if err != nil {
			return nil, err
		}

		return m, nil
	}
	m, err := monitor.NewRaw(mc.PreExpr, mc.PostExpr, opts...)
	if err != nil {
		return nil, err
	}

	return m, nil
}
