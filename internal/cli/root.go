// Package cli provides the command-line interface for regress.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsys/internal/cli/config"
	"github.com/katalvlaran/linsys/internal/cli/output"
	"github.com/katalvlaran/linsys/internal/logger"
	"github.com/katalvlaran/linsys/linsys"
	"github.com/katalvlaran/linsys/regression"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "regress",
		Short: "Least-squares regression on a CSV dataset",
		Long: `regress fits a linear model to the UCI machine.data layout (or any CSV
with the same column positions) by solving the normal equations XᵀX·c = Xᵀy.

The rows are split into train and test sets with a seeded shuffle, features are
standardized with training statistics, and RMSE is reported for both sets.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}} (" + GitCommit + ")\n")

	f := rootCmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default: ./regress.yaml)")
	f.String("data", "", "path to the CSV dataset")
	f.Float64("train-split", config.DefaultTrainSplit, "fraction of rows used for training, in (0,1)")
	f.Uint64("seed", config.DefaultSeed, "seed of the train/test shuffle")
	f.StringP("solver", "s", config.DefaultSolver, "normal-equation solver (cg|direct)")
	f.StringP("output", "o", config.DefaultOutput, "output format (table|json|yaml)")
	f.String("log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	f.String("log-format", config.DefaultLogFormat, "log format (text|json)")
	f.Int("max-iterations", 0, "CG iteration cap (0 = min(n, 1000))")
	f.Float64("tolerance", 0, "CG residual tolerance (0 = 1e-6)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("solver", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"cg", "direct"}, cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.ValidateData(); err != nil {
		return err
	}

	log, err := logger.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if cfg.ConfigFile != "" {
		log.Debug("using config file", "path", cfg.ConfigFile)
	}

	method, err := linsys.ParseMethod(cfg.Solver)
	if err != nil {
		return err
	}
	mode, err := output.ParseMode(cfg.Output)
	if err != nil {
		return err
	}

	ds, err := regression.LoadFile(cfg.Data, regression.MachineSchema())
	if err != nil {
		return err
	}

	var opts []linsys.Option
	if cfg.MaxIterations > 0 {
		opts = append(opts, linsys.WithMaxIterations(cfg.MaxIterations))
	}
	if cfg.Tolerance > 0 {
		opts = append(opts, linsys.WithTolerance(cfg.Tolerance))
	}

	rep, err := regression.Run(ds, regression.Config{
		TrainFrac:     cfg.TrainSplit,
		Seed:          cfg.Seed,
		Method:        method,
		SolverOptions: opts,
		Logger:        log,
	})
	if err != nil {
		return err
	}

	return output.NewRenderer(cmd.OutOrStdout(), mode).Report(rep)
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
