package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleMCP_Help(t *testing.T) {
	assert.NoError(t, HandleMCP([]string{"--help"}))
}

func TestHandleMCP_RejectsArguments(t *testing.T) {
	assert.Error(t, HandleMCP([]string{"extra"}))
}

func TestHandleMCP_InvalidConfig(t *testing.T) {
	t.Setenv("JSONCMP_MAX_DEPTH", "0")
	err := HandleMCP(nil)
	assert.ErrorContains(t, err, "JSONCMP_MAX_DEPTH")
}
