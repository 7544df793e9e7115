// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/linsys/linsys"
	"github.com/katalvlaran/linsys/matrix"
)

// InterceptName labels the appended ones column in reports.
const InterceptName = "intercept"

// Config drives Run.
type Config struct {
	TrainFrac     float64
	Seed          uint64
	Method        linsys.Method
	SolverOptions []linsys.Option
	Logger        *slog.Logger // nil discards
}

// DefaultConfig mirrors the CLI defaults: 80/20 split, seed 42, CG.
func DefaultConfig() Config {
	return Config{TrainFrac: 0.8, Seed: 42, Method: linsys.ConjugateGradient}
}

// Coefficient is one fitted weight, on the standardized feature scale.
type Coefficient struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Report summarizes a Run.
type Report struct {
	RunID        string        `json:"run_id" yaml:"run_id"`
	Method       string        `json:"method" yaml:"method"`
	Seed         uint64        `json:"seed" yaml:"seed"`
	TrainFrac    float64       `json:"train_split" yaml:"train_split"`
	Rows         int           `json:"rows" yaml:"rows"`
	TrainRows    int           `json:"train_rows" yaml:"train_rows"`
	TestRows     int           `json:"test_rows" yaml:"test_rows"`
	Coefficients []Coefficient `json:"coefficients" yaml:"coefficients"`
	TrainRMSE    float64       `json:"train_rmse" yaml:"train_rmse"`
	TestRMSE     float64       `json:"test_rmse" yaml:"test_rmse"`
	Iterations   int           `json:"iterations" yaml:"iterations"`
	Residual     float64       `json:"residual" yaml:"residual"`
	Converged    bool          `json:"converged" yaml:"converged"`
	ElapsedMS    float64       `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// Run splits ds, standardizes with training statistics, adds an intercept,
// fits on the training rows and scores both partitions.
// Errors: ErrInvalidSplit, ErrEmpty, and any solver error.
func Run(ds *Dataset, cfg Config) (*Report, error) {
	start := time.Now()
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	runID := uuid.NewString()
	log = log.With(slog.String("run_id", runID))

	if ds == nil || ds.X == nil || ds.Y == nil {
		return nil, ErrEmpty
	}
	trainIdx, testIdx, err := Split(ds.Rows(), cfg.TrainFrac, cfg.Seed)
	if err != nil {
		return nil, err
	}
	train, err := ds.Subset(trainIdx)
	if err != nil {
		return nil, fmt.Errorf("train subset: %w", err)
	}
	test, err := ds.Subset(testIdx)
	if err != nil {
		return nil, fmt.Errorf("test subset: %w", err)
	}
	log.Info("dataset split",
		slog.Int("rows", ds.Rows()),
		slog.Int("train", len(trainIdx)),
		slog.Int("test", len(testIdx)),
		slog.Uint64("seed", cfg.Seed))

	scaler, err := FitScaler(train.X)
	if err != nil {
		return nil, err
	}
	xTrain, err := design(scaler, train)
	if err != nil {
		return nil, err
	}
	xTest, err := design(scaler, test)
	if err != nil {
		return nil, err
	}

	opts := append([]linsys.Option{linsys.WithLogger(log)}, cfg.SolverOptions...)
	fit, err := Fit(xTrain, train.Y, cfg.Method, opts...)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	if !fit.Converged {
		log.Warn("solver did not converge; coefficients are the last iterate",
			slog.Int("iterations", fit.Iterations),
			slog.Float64("residual", fit.Residual))
	}

	trainRMSE, err := RMSE(xTrain, train.Y, fit.Coefficients)
	if err != nil {
		return nil, err
	}
	testRMSE, err := RMSE(xTest, test.Y, fit.Coefficients)
	if err != nil {
		return nil, err
	}

	names := append(append([]string(nil), ds.Features...), InterceptName)
	coef := fit.Coefficients.Data()
	coefs := make([]Coefficient, len(coef))
	for i, v := range coef {
		coefs[i] = Coefficient{Name: names[i], Value: v}
	}

	rep := &Report{
		RunID:        runID,
		Method:       cfg.Method.String(),
		Seed:         cfg.Seed,
		TrainFrac:    cfg.TrainFrac,
		Rows:         ds.Rows(),
		TrainRows:    len(trainIdx),
		TestRows:     len(testIdx),
		Coefficients: coefs,
		TrainRMSE:    trainRMSE,
		TestRMSE:     testRMSE,
		Iterations:   fit.Iterations,
		Residual:     fit.Residual,
		Converged:    fit.Converged,
		ElapsedMS:    float64(time.Since(start).Microseconds()) / 1e3,
	}
	log.Info("regression complete",
		slog.String("method", rep.Method),
		slog.Float64("train_rmse", trainRMSE),
		slog.Float64("test_rmse", testRMSE))

	return rep, nil
}

// design standardizes d.X with s and appends the intercept column.
func design(s Scaler, d *Dataset) (*matrix.Dense, error) {
	z, err := s.Apply(d.X)
	if err != nil {
		return nil, err
	}

	return WithIntercept(z)
}
