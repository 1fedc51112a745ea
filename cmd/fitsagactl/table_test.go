package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Result", "Processed"}, [][]string{{"done", "12"}, {"short"}}, 2)

	assert.Contains(t, out, "Result")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "12")
	assert.Equal(t, 6, len(strings.Split(strings.TrimSpace(out), "\n")))
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"reset-credits", "import-videos", "sas-url"} {
		cmd, _, err := root.Find([]string{name})
		assert.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
