package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/regression"
)

// writeMachineData writes n rows in machine.data layout with PRP linear in MYCT and MMIN.
func writeMachineData(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "v,m%d,%d,%d,%d,%d,%d,%d,%d,0\n",
			i, i, (i*i)%11, (i*7)%13, (i*5)%17, i%3, (i*i*i)%19, 2*i-3*((i*i)%11)+7)
	}
	path := filepath.Join(t.TempDir(), "machine.data")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_JSONReport(t *testing.T) {
	data := writeMachineData(t, 30)

	stdout, _, err := execute(t, "--data", data, "--solver", "direct", "--output", "json", "--seed", "7")
	require.NoError(t, err)

	var rep regression.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, "direct", rep.Method)
	assert.Equal(t, uint64(7), rep.Seed)
	assert.Equal(t, 24, rep.TrainRows)
	assert.Equal(t, 6, rep.TestRows)
	assert.Len(t, rep.Coefficients, 7)
	assert.Less(t, rep.TestRMSE, 1e-6)
}

func TestRoot_TableWithCG(t *testing.T) {
	data := writeMachineData(t, 30)

	stdout, _, err := execute(t, "--data", data, "--max-iterations", "100", "--tolerance", "1e-9")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Regression run")
	assert.Contains(t, stdout, "Converged")
}

func TestRoot_ConfigFile(t *testing.T) {
	data := writeMachineData(t, 20)
	cfgPath := filepath.Join(t.TempDir(), "regress.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data: "+data+"\noutput: yaml\ntrain_split: 0.5\n"), 0600))

	stdout, _, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "train_rows: 10")
}

func TestRoot_Errors(t *testing.T) {
	data := writeMachineData(t, 10)
	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{"missing data", nil, "data is required"},
		{"missing file", []string{"--data", filepath.Join(t.TempDir(), "none")}, "does not exist"},
		{"bad solver", []string{"--data", data, "--solver", "lu"}, "unknown solver method"},
		{"bad split", []string{"--data", data, "--train-split", "1.5"}, "train_split"},
		{"bad output", []string{"--data", data, "--output", "xml"}, "output: unknown value"},
		{"bad log level", []string{"--data", data, "--log-level", "loud"}, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}
