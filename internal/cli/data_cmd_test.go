package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataValidateCommand(t *testing.T) {
	root := NewRootCmd(&App{DataPath: "../../data/careers.json"})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"data", "validate"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "dataset OK")
	assert.Contains(t, out.String(), "general questions: 4")
}

func TestDataValidateMissingFile(t *testing.T) {
	root := NewRootCmd(&App{DataPath: "/nonexistent/careers.json"})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"data", "validate"})

	assert.Error(t, root.Execute())
}
