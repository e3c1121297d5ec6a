package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := newVersionCmd()

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "glaze")
	assert.Contains(t, buf.String(), "commit:")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd(nil)

	names := make([]string, 0)
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "theme")
	assert.Contains(t, names, "version")
}
