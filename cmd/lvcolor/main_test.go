package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvcolor/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command with args and an isolated HOME so no
// user config leaks in. It returns stdout, stderr and the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(envMaxColors, "")
	t.Setenv(envFormat, "")

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	_, err := root.ExecuteC()

	return out.String(), errOut.String(), err
}

func decodeReport(t *testing.T, s string) report {
	t.Helper()
	var r report
	require.NoError(t, json.Unmarshal([]byte(s), &r), "output: %s", s)
	return r
}

func TestFixtureCommands_JSON(t *testing.T) {
	tests := []struct {
		args      []string
		wantV     int
		wantE     int
		wantColor int
	}{
		{[]string{"cycle", "5"}, 5, 5, 3},
		{[]string{"cycle", "4"}, 4, 4, 2},
		{[]string{"path", "3"}, 3, 2, 2},
		{[]string{"star", "4"}, 4, 3, 2},
		{[]string{"wheel", "6"}, 6, 10, 4},
		{[]string{"complete", "4"}, 4, 6, 4},
		{[]string{"bipartite", "2", "3"}, 5, 6, 2},
		{[]string{"grid", "2", "3"}, 6, 7, 2},
		{[]string{"random", "6", "1"}, 6, 15, 6},
	}

	for _, tc := range tests {
		t.Run(tc.args[0], func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)

			r := decodeReport(t, out)
			assert.Equal(t, tc.wantV, r.Vertices)
			assert.Equal(t, tc.wantE, r.Edges)
			assert.Equal(t, tc.wantColor, r.Chromatic)
			assert.Equal(t, defaultMaxColors, r.MaxColors)
			assert.Len(t, r.Coloring, tc.wantV)
		})
	}
}

func TestFixtureCommands_ColoringOrder(t *testing.T) {
	out, _, err := execute(t, "path", "3")
	require.NoError(t, err)

	r := decodeReport(t, out)
	assert.Equal(t, []vertexColor{{"0", 0}, {"1", 1}, {"2", 0}}, r.Coloring)
}

func TestFixtureCommands_Formats(t *testing.T) {
	out, _, err := execute(t, "cycle", "5", "--format", "quiet")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, _, err = execute(t, "path", "2", "--format", "table")
	require.NoError(t, err)
	assert.Equal(t,
		"path(2): vertices=2 edges=1 chromatic=2 (max 16)\n"+
			"VERTEX  COLOR\n"+
			"------  -----\n"+
			"0       0\n"+
			"1       1\n",
		out)

	_, _, err = execute(t, "cycle", "5", "--format", "xml")
	require.Error(t, err)
}

func TestFixtureCommands_Errors(t *testing.T) {
	_, errOut, err := execute(t, "complete", "5", "--max-colors", "4")
	require.ErrorIs(t, err, graph.ErrColorsExhausted)
	assert.Contains(t, errOut, "all colors have been used")

	_, _, err = execute(t, "cycle", "5", "--max-vertices", "3")
	require.ErrorIs(t, err, graph.ErrCapacityExceeded)

	_, _, err = execute(t, "cycle", "x")
	require.Error(t, err)

	_, _, err = execute(t, "cycle")
	require.Error(t, err, "missing positional arg")

	_, _, err = execute(t, "cycle", "2")
	require.Error(t, err, "below builder minimum")

	_, _, err = execute(t, "random", "5", "0.5x")
	require.Error(t, err)
}

func TestResolveConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_colors: 2\nformat: quiet\n"), 0o600))

	// file: odd cycle cannot be 2-colored
	_, _, err := execute(t, "cycle", "5", "--config", cfgPath)
	require.ErrorIs(t, err, graph.ErrColorsExhausted)

	// flag beats file
	out, _, err := execute(t, "cycle", "5", "--config", cfgPath, "--max-colors", "3")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out, "format still comes from the file")

	// missing explicit file is an error
	_, _, err = execute(t, "cycle", "5", "--config", filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
}

func TestResolveConfig_Env(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(envMaxColors, "2")
	t.Setenv(envFormat, "quiet")

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs([]string{"cycle", "4"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "2\n", out.String())

	out.Reset()
	root = newRootCmd(&out, &errOut)
	root.SetArgs([]string{"cycle", "5"})
	require.ErrorIs(t, root.Execute(), graph.ErrColorsExhausted)
}

func TestResolveConfig_HomeFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".lvcolor"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".lvcolor", "config.yaml"),
		[]byte("format: quiet\nmax_vertices: 10\n"), 0o600))
	t.Setenv("HOME", home)
	t.Setenv(envMaxColors, "")
	t.Setenv(envFormat, "")

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs([]string{"complete", "3"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "3\n", out.String())
}

func TestVerboseLogging(t *testing.T) {
	_, errOut, err := execute(t, "cycle", "4", "--format", "quiet", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, errOut, "graph colored")
	assert.Contains(t, errOut, "fixture=")

	_, errOut, err = execute(t, "cycle", "4", "--format", "quiet")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestFixtureCommands_SizeLimit(t *testing.T) {
	tests := [][]string{
		{"cycle", "200000"},
		{"grid", "5000", "2"},
		{"grid", "100", "100"},
		{"path", "3", "--max-vertices", "100000"},
	}
	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			out, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Empty(t, out)
		})
	}

	_, _, err := execute(t, "cycle", "4096", "--format", "quiet")
	require.NoError(t, err, "limit itself is accepted")
}
