// Package config provides configuration management for the regress CLI.
//
// Values are layered, lowest to highest precedence:
// built-in defaults < regress.yaml < REGRESS_* environment variables < flags.
package config

// Default values.
const (
	DefaultTrainSplit = 0.8
	DefaultSeed       = 42
	DefaultSolver     = "cg"
	DefaultOutput     = "table"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"

	// EnvPrefix is the prefix of environment overrides, e.g. REGRESS_TRAIN_SPLIT.
	EnvPrefix = "REGRESS_"
)

// Config is the resolved configuration of one regress invocation.
type Config struct {
	Data          string  `koanf:"data" validate:"required"`
	TrainSplit    float64 `koanf:"train_split" validate:"gt=0,lt=1"`
	Seed          uint64  `koanf:"seed"`
	Solver        string  `koanf:"solver"`
	Output        string  `koanf:"output" validate:"oneof=table json yaml"`
	LogLevel      string  `koanf:"log_level"`
	LogFormat     string  `koanf:"log_format"`
	MaxIterations int     `koanf:"max_iterations" validate:"gte=0"` // 0 = solver default
	Tolerance     float64 `koanf:"tolerance" validate:"gte=0"`      // 0 = solver default

	// ConfigFile is the file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}
