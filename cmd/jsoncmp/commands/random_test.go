package commands

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/DeepakRathod14/java-custom-automation/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRandom_SeedIsReproducible(t *testing.T) {
	path := testutil.WriteTempFile(t, "config.yaml", []byte(configDoc))

	pick := func() string {
		var err error
		out := captureStdout(t, func() {
			err = HandleRandom([]string{"--seed", "7", path})
		})
		require.NoError(t, err)
		return out
	}

	first := pick()
	assert.Equal(t, first, pick())
	assert.Contains(t, first, "=")
}

func TestHandleRandom_Match(t *testing.T) {
	path := testutil.WriteTempFile(t, "config.yaml", []byte(configDoc))

	var err error
	out := captureStdout(t, func() {
		err = HandleRandom([]string{"--match", "users.*", path})
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "users.["), out)
}

func TestHandleRandom_Errors(t *testing.T) {
	path := testutil.WriteTempFile(t, "config.yaml", []byte(configDoc))
	empty := testutil.WriteTempFile(t, "empty.json", []byte(`{"a": {}}`))

	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"invalid format", []string{"--format", "csv", path}},
		{"no leaves", []string{empty}},
		{"no match", []string{"--match", "nothing.*", path}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, HandleRandom(tt.args))
		})
	}
}

func TestPickEntry(t *testing.T) {
	doc := map[string]any{"a": 1, "b": map[string]any{"c": "x", "d": "y"}}
	rng := rand.New(rand.NewPCG(1, 1))

	for range 20 {
		e, ok := pickEntry(doc, rng, []string{"b.*"})
		require.True(t, ok)
		assert.True(t, e.Path == "b.c" || e.Path == "b.d", e.Path)
	}

	e, ok := pickEntry(doc, nil, []string{"a"})
	require.True(t, ok)
	assert.Equal(t, "a", e.Path)
	assert.Equal(t, "1", e.Value)

	_, ok = pickEntry(doc, rng, []string{"z"})
	assert.False(t, ok)
}
