package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/montransform/monitor"
	"github.com/katalvlaran/montransform/ndarray"
	"github.com/katalvlaran/montransform/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
delimiter: ";"
log_level: debug
monitors:
  - name: raw
    kind: raw
    pre_expr: "V;W;V**2;W-V"
    variables: [V, W]
  - name: every_third
    kind: subsample
    period: 3
    pre_expr: "x0"
    post_expr: "mon*2"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "montransform.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.ValidateFinite)
	assert.Empty(t, cfg.Monitors)
	require.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ValidateFinite, "unset keys keep their defaults")
	require.Len(t, cfg.Monitors, 2)
	assert.Equal(t, []string{"V", "W"}, cfg.Monitors[0].Variables)
	assert.Equal(t, 3, cfg.Monitors[1].Period)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadFromFile(writeConfig(t, "monitors: [\n"))
	require.Error(t, err)

	_, err = LoadFromFile(writeConfig(t, "delimiter: \";\"\nunknown_key: 1\n"))
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MONTRANSFORM_LOG_LEVEL", "warn")
	t.Setenv("MONTRANSFORM_DELIMITER", "|")
	t.Setenv("MONTRANSFORM_VALIDATE_FINITE", "false")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "|", cfg.Delimiter)
	assert.False(t, cfg.ValidateFinite)
}

func TestLoad_InvalidBoolOverride(t *testing.T) {
	t.Setenv("MONTRANSFORM_VALIDATE_FINITE", "yes")

	_, err := Load(writeConfig(t, sampleConfig))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "MONTRANSFORM_VALIDATE_FINITE")
}

func TestNewValidator_SingleChar(t *testing.T) {
	v := newValidator()
	require.NoError(t, v.Var(";", "singlechar"))
	require.NoError(t, v.Var("→", "singlechar"))
	require.Error(t, v.Var(";;", "singlechar"))
	require.Error(t, v.Var("", "singlechar"))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Parse([]byte(sampleConfig))
		require.NoError(t, err)

		return cfg
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"EmptyDelimiter", func(c *Config) { c.Delimiter = "" }},
		{"LongDelimiter", func(c *Config) { c.Delimiter = ";;" }},
		{"BadLogLevel", func(c *Config) { c.LogLevel = "trace" }},
		{"NoMonitors", func(c *Config) { c.Monitors = nil }},
		{"DuplicateNames", func(c *Config) { c.Monitors[1].Name = "raw" }},
		{"MissingName", func(c *Config) { c.Monitors[0].Name = "" }},
		{"BadKind", func(c *Config) { c.Monitors[0].Kind = "temporal_average" }},
		{"SubSampleWithoutPeriod", func(c *Config) { c.Monitors[1].Period = 0 }},
		{"NegativePeriod", func(c *Config) { c.Monitors[0].Period = -1 }},
		{"MissingPre", func(c *Config) { c.Monitors[0].PreExpr = "" }},
		{"DuplicateVariables", func(c *Config) { c.Monitors[0].Variables = []string{"V", "V"} }},
		{"BlankVariable", func(c *Config) { c.Monitors[0].Variables = []string{"V", ""} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestBuild(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	mons, err := cfg.Build(nil)
	require.NoError(t, err)
	require.Len(t, mons, 2)

	assert.Equal(t, "raw", mons[0].Name())
	assert.Equal(t, 4, mons[0].Transforms().Len())
	assert.Equal(t, 2, mons[0].Transforms().StateVariables())

	sub, ok := mons[1].(*monitor.SubSample)
	require.True(t, ok)
	assert.Equal(t, 3, sub.Period())

	state, err := ndarray.FromSlice(2, 1, 1, []float64{2, 3})
	require.NoError(t, err)
	s, recorded, err := mons[0].Record(0, 0, state)
	require.NoError(t, err)
	require.True(t, recorded)
	assert.Equal(t, []float64{2, 3, 4, 1}, s.Data.Data())
}

func TestBuild_ExpressionErrors(t *testing.T) {
	cases := []struct {
		name string
		pre  string
		post string
		want error
	}{
		{"Syntax", "a=3", "", transform.ErrSyntax},
		{"AllNoop", ";;", ";;", transform.ErrSyntax},
		{"Shape", "x0;x1", "mon;mon;mon", transform.ErrShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Monitors = []MonitorConfig{{Name: "m", Kind: KindRaw, PreExpr: tc.pre, PostExpr: tc.post}}
			_, err := cfg.Build(nil)
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), `"m"`)
		})
	}
}

func TestBuild_DelimiterAndFinitePolicy(t *testing.T) {
	cfg := Default()
	cfg.Delimiter = "|"
	cfg.ValidateFinite = false
	cfg.Monitors = []MonitorConfig{{Name: "m", Kind: KindRaw, PreExpr: "1/x0|x0", Count: 2}}

	mons, err := cfg.Build(nil)
	require.NoError(t, err)

	state, err := ndarray.FromSlice(1, 1, 1, []float64{0})
	require.NoError(t, err)
	_, ok, err := mons[0].Record(0, 0, state)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogger(t *testing.T) {
	cfg := Default()
	log, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, log)

	cfg.LogLevel = "loud"
	_, err = cfg.Logger()
	require.ErrorIs(t, err, ErrInvalid)
}
