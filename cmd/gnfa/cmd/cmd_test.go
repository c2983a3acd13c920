package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crossedYAML = `states: [S, X, Y, F]
start: S
accept: F
transitions:
  - {from: S, to: X, label: a}
  - {from: X, to: Y, label: b}
  - {from: Y, to: X, label: a}
  - {from: Y, to: F, label: b}
  - {from: X, to: F, label: a}
  - {from: S, to: Y, label: b}
  - {from: Y, to: Y, label: a}
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	inputFile, order = "", nil

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crossed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(crossedYAML), 0o644))
	return path
}

func TestConvertCmd(t *testing.T) {
	path := writeDefinition(t)

	t.Run("FromFile", func(t *testing.T) {
		out, err := execute(t, "", "convert", "-i", path)
		require.NoError(t, err)
		assert.Equal(t, "Regular Expression: (aa|(b|ab)((a|ab))*(b|aa))\n", out)
	})

	t.Run("WithOrder", func(t *testing.T) {
		out, err := execute(t, "", "convert", "-i", path, "--order", "Y,X")
		require.NoError(t, err)
		assert.Equal(t, "Regular Expression: (b(a)*b|(a|b(a)*a)(b(a)*a)*(a|b(a)*b))\n", out)
	})

	t.Run("Interactive", func(t *testing.T) {
		stdin := strings.Join([]string{"A", "B", "END", "A", "B", "A", "B", "x", "END"}, "\n") + "\n"
		out, err := execute(t, stdin, "convert")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out, "Regular Expression: x\n"))
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := execute(t, "", "convert", "-i", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestVizCmd(t *testing.T) {
	path := writeDefinition(t)
	dir := t.TempDir()

	out, err := execute(t, "", "viz", "-i", path, "-o", dir, "-f", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "crossed.dot"))

	data, err := os.ReadFile(filepath.Join(dir, "crossed.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "doublecircle")
}
