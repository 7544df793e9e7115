package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regress.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data", "", "")
	flags.Float64("train-split", DefaultTrainSplit, "")
	flags.Uint64("seed", DefaultSeed, "")
	flags.String("solver", DefaultSolver, "")
	flags.Int("max-iterations", 0, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultTrainSplit, cfg.TrainSplit)
	assert.Equal(t, uint64(DefaultSeed), cfg.Seed)
	assert.Equal(t, DefaultSolver, cfg.Solver)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Zero(t, cfg.MaxIterations)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `data: machine.data
train_split: 0.7
seed: 7
solver: direct
output: json
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "machine.data", cfg.Data)
	assert.Equal(t, 0.7, cfg.TrainSplit)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "direct", cfg.Solver)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_EnvPrecedenceOverFile(t *testing.T) {
	path := writeConfig(t, "solver: direct\ntrain_split: 0.7\n")
	t.Setenv("REGRESS_SOLVER", "cg")
	t.Setenv("REGRESS_TRAIN_SPLIT", "0.6")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "cg", cfg.Solver, "env var should override config file")
	assert.Equal(t, 0.6, cfg.TrainSplit)
}

func TestLoad_FlagPrecedence(t *testing.T) {
	path := writeConfig(t, "seed: 1\nsolver: direct\n")
	t.Setenv("REGRESS_SEED", "2")

	flags := testFlags()
	require.NoError(t, flags.Set("seed", "3"))
	require.NoError(t, flags.Set("max-iterations", "50"))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), cfg.Seed, "flag value should override config file and env var")
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, "direct", cfg.Solver, "unset flag must not shadow the file")
}

func TestLoad_BadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)

	path := writeConfig(t, "seed: [1, 2\n")
	_, err = Load(path, nil)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Data: "x.csv", TrainSplit: 0.8, Output: "table"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{"missing data", func(c *Config) { c.Data = "" }, "data is required"},
		{"split one", func(c *Config) { c.TrainSplit = 1 }, "train_split"},
		{"split zero", func(c *Config) { c.TrainSplit = 0 }, "train_split"},
		{"bad output", func(c *Config) { c.Output = "xml" }, "output: unknown value"},
		{"negative iterations", func(c *Config) { c.MaxIterations = -1 }, "max_iterations"},
		{"negative tolerance", func(c *Config) { c.Tolerance = -1 }, "tolerance"},
		{"infinite tolerance", func(c *Config) { c.Tolerance = math.Inf(1) }, "tolerance must be finite"},
		{"nan split", func(c *Config) { c.TrainSplit = math.NaN() }, "train_split must be in (0,1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_ValidateData(t *testing.T) {
	c := Config{Data: filepath.Join(t.TempDir(), "nope.csv")}
	assert.Error(t, c.ValidateData())

	path := writeConfig(t, "")
	c.Data = path
	assert.NoError(t, c.ValidateData())
}
