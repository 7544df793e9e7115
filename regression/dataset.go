// SPDX-License-Identifier: MIT

// Package regression - dataset ingestion.
//
// Rows are read with encoding/csv, every selected cell is parsed as float64,
// and the result is stored as a feature matrix X (rows × features) and a
// target vector y. Columns not named by the Schema are ignored, so text
// columns such as vendor or model names may be present.

package regression

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsys/matrix"
)

// Schema selects the numeric columns of a CSV source. Indices are zero-based.
type Schema struct {
	// Fields is the expected number of fields per record; 0 accepts whatever
	// the first record has and then requires every record to match.
	Fields int
	// Features lists the predictor column indices, in model order.
	Features []int
	// Target is the response column index.
	Target int
	// Names labels Features in reports; missing names fall back to "x<i>".
	Names []string
	// Header skips the first record.
	Header bool
}

// MachineSchema describes the UCI "Computer Hardware" machine.data layout:
// vendor, model, MYCT, MMIN, MMAX, CACH, CHMIN, CHMAX, PRP, ERP.
// The six hardware columns predict PRP (published relative performance).
func MachineSchema() Schema {
	return Schema{
		Fields:   10,
		Features: []int{2, 3, 4, 5, 6, 7},
		Target:   8,
		Names:    []string{"myct", "mmin", "mmax", "cach", "chmin", "chmax"},
	}
}

// Validate reports whether the schema can select any columns.
func (s Schema) Validate() error {
	if len(s.Features) == 0 {
		return fmt.Errorf("no feature columns: %w", ErrInvalidSchema)
	}
	if s.Fields < 0 {
		return fmt.Errorf("fields=%d: %w", s.Fields, ErrInvalidSchema)
	}
	cols := append([]int{s.Target}, s.Features...)
	for _, c := range cols {
		if c < 0 || (s.Fields > 0 && c >= s.Fields) {
			return fmt.Errorf("column %d outside [0,%d): %w", c, s.Fields, ErrInvalidSchema)
		}
	}
	for _, c := range s.Features {
		if c == s.Target {
			return fmt.Errorf("column %d is both feature and target: %w", c, ErrInvalidSchema)
		}
	}

	return nil
}

func (s Schema) featureName(i int) string {
	if i < len(s.Names) && s.Names[i] != "" {
		return s.Names[i]
	}

	return "x" + strconv.Itoa(i+1)
}

// Dataset is a parsed design: X holds one row per sample, Y the targets.
type Dataset struct {
	X        *matrix.Dense
	Y        *matrix.Vector
	Features []string
}

// Rows returns the number of samples.
func (d *Dataset) Rows() int { return d.X.Rows() }

// LoadFile opens path and reads it with LoadCSV.
func LoadFile(path string, s Schema) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	ds, err := LoadCSV(f, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// LoadCSV reads comma-separated records and extracts the columns named by s.
//
// Implementation:
//   - Stage 1: validate the schema.
//   - Stage 2: read records; a wrong field count or a non-numeric selected
//     cell fails with ErrParse naming the one-based line and column.
//   - Stage 3: pack features row-major into X and targets into y.
//
// Errors: ErrInvalidSchema, ErrParse, ErrEmpty.
func LoadCSV(r io.Reader, s Schema) (*Dataset, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = s.Fields
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		xs   []float64
		ys   []float64
		line int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if line == 1 && s.Header {
			continue
		}
		for _, c := range s.Features {
			if c >= len(rec) {
				return nil, fmt.Errorf("line %d: no column %d: %w", line, c+1, ErrParse)
			}
			v, err := parseCell(rec[c], line, c)
			if err != nil {
				return nil, err
			}
			xs = append(xs, v)
		}
		if s.Target >= len(rec) {
			return nil, fmt.Errorf("line %d: no column %d: %w", line, s.Target+1, ErrParse)
		}
		v, err := parseCell(rec[s.Target], line, s.Target)
		if err != nil {
			return nil, err
		}
		ys = append(ys, v)
	}
	if len(ys) == 0 {
		return nil, ErrEmpty
	}

	x, err := matrix.NewDenseFrom(len(ys), len(s.Features), xs)
	if err != nil {
		return nil, err
	}
	y, err := matrix.NewVectorFrom(ys...)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(s.Features))
	for i := range names {
		names[i] = s.featureName(i)
	}

	return &Dataset{X: x, Y: y, Features: names}, nil
}

func parseCell(cell string, line, col int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, fmt.Errorf("line %d, column %d: %q: %w", line, col+1, cell, ErrParse)
	}

	return v, nil
}
