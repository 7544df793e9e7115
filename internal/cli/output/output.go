// Package output renders regression reports for the terminal or for machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsys/regression"
)

// Mode selects the output encoding.
type Mode string

// Output modes.
const (
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
	ModeYAML  Mode = "yaml"
)

// ParseMode maps a case-insensitive name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeTable, ModeJSON, ModeYAML:
		return m, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table|json|yaml)", s)
	}
}

// Renderer writes reports to w in a fixed Mode.
type Renderer struct {
	w    io.Writer
	mode Mode
}

// NewRenderer creates a Renderer.
func NewRenderer(w io.Writer, mode Mode) *Renderer {
	return &Renderer{w: w, mode: mode}
}

// Report writes rep in the renderer's mode.
func (r *Renderer) Report(rep *regression.Report) error {
	switch r.mode {
	case ModeJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case ModeYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return r.table(rep)
	}
}

func (r *Renderer) table(rep *regression.Report) error {
	summary := table.NewWriter()
	summary.SetOutputMirror(r.w)
	summary.SetStyle(table.StyleLight)
	summary.SetTitle("Regression run " + rep.RunID)
	summary.AppendRows([]table.Row{
		{"Solver", rep.Method},
		{"Rows (train/test)", fmt.Sprintf("%d (%d/%d)", rep.Rows, rep.TrainRows, rep.TestRows)},
		{"Seed", rep.Seed},
		{"Train RMSE", formatFloat(rep.TrainRMSE)},
		{"Test RMSE", formatFloat(rep.TestRMSE)},
	})
	if rep.Method == "cg" {
		summary.AppendRow(table.Row{"Iterations", rep.Iterations})
		summary.AppendRow(table.Row{"Converged", rep.Converged})
		summary.AppendRow(table.Row{"Residual", formatFloat(rep.Residual)})
	}
	summary.Render()

	coef := table.NewWriter()
	coef.SetOutputMirror(r.w)
	coef.SetStyle(table.StyleLight)
	coef.AppendHeader(table.Row{"Feature", "Coefficient"})
	coef.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, c := range rep.Coefficients {
		coef.AppendRow(table.Row{c.Name, formatFloat(c.Value)})
	}
	coef.Render()

	return nil
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
