package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsys/regression"
)

func sampleReport() *regression.Report {
	return &regression.Report{
		RunID:     "0b8f0b6e-7d4c-4a43-9a59-6d0f6a1a2b3c",
		Method:    "cg",
		Seed:      42,
		TrainFrac: 0.8,
		Rows:      10, TrainRows: 8, TestRows: 2,
		Coefficients: []regression.Coefficient{
			{Name: "myct", Value: 2},
			{Name: regression.InterceptName, Value: 3},
		},
		TrainRMSE:  0.125,
		TestRMSE:   0.5,
		Iterations: 2,
		Converged:  true,
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"table": ModeTable, "JSON": ModeJSON, " yaml ": ModeYAML} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("csv")
	assert.Error(t, err)
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, ModeJSON).Report(sampleReport()))

	var got regression.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *sampleReport(), got)
	assert.Contains(t, buf.String(), `"train_rmse": 0.125`)
}

func TestRenderer_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, ModeYAML).Report(sampleReport()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "cg", got["method"])
	assert.Equal(t, 0.5, got["test_rmse"])
	assert.Len(t, got["coefficients"], 2)
}

func TestRenderer_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, ModeTable).Report(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Regression run 0b8f0b6e")
	assert.Contains(t, out, "Test RMSE")
	assert.Contains(t, out, "Converged")
	assert.Contains(t, out, "intercept")
	assert.Contains(t, out, "myct")
}
