package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := New(&out, &errOut, LogInfo)
	root := c.RootCommand()
	root.SetOut(&errOut)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := runCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "ELEMENT")
	assert.Contains(t, out, "TRI6")
	assert.Contains(t, out, "HEXA20")
	// Beam rows exist only for the types that define them.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "beam") {
			assert.NotContains(t, line, "PRISM")
		}
	}
}

func TestShowCommand(t *testing.T) {
	out, err := runCommand(t, "show", "TRI3", "stiffness")
	require.NoError(t, err)

	assert.Contains(t, out, "Linear Triangle")
	assert.Contains(t, out, "1 points")
	assert.Contains(t, out, "0.333333333333333")
	assert.Contains(t, out, "weight sum: 0.5")
}

func TestShowCommandLowercaseElement(t *testing.T) {
	out, err := runCommand(t, "show", "quad4", "mass")
	require.NoError(t, err)
	assert.Contains(t, out, "4 points")
}

func TestShowCommandErrors(t *testing.T) {
	_, err := runCommand(t, "show", "PYRA5", "mass")
	assert.Error(t, err)

	_, err = runCommand(t, "show", "TRI3", "beam")
	assert.Error(t, err)
}
