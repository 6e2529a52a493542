package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/chromapack/pkg/roster"
)

// lossySerializer drops every pair, so the mapping round trip fails for any
// non-empty mapping.
type lossySerializer struct{}

func (lossySerializer) Serialize(roster.Mapping) (string, error) { return "", nil }

func (lossySerializer) Deserialize(string) (roster.Mapping, error) { return roster.Mapping{}, nil }

func TestCheckCommand(t *testing.T) {
	t.Run("suite passes", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.run(t, "check", "--runs", "200", "--seed", "7")
		require.NoError(t, err)
		assert.Contains(t, out, "packing round trip")
		assert.Contains(t, out, "unpacking totality (near packed)")
		assert.Contains(t, out, "mapping round trip")
		assert.NotContains(t, out, "FAIL")
	})

	t.Run("failing property", func(t *testing.T) {
		env := newTestEnv(t)
		container.SetSerializer(lossySerializer{})

		out, err := env.run(t, "check", "--runs", "50", "--seed", "7")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 5 properties failed")
		assert.Contains(t, out, "FAIL")
		assert.Contains(t, out, "mapping round trip failed on run")
		assert.Contains(t, out, "shrunk from:")
	})

	t.Run("runs must be positive", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.run(t, "check", "--runs", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--runs must be positive")
	})

	t.Run("seed selects the inputs", func(t *testing.T) {
		env := newTestEnv(t)
		container.SetSerializer(lossySerializer{})

		first, err := env.run(t, "check", "--runs", "50", "--seed", "11")
		require.Error(t, err)
		second, err := env.run(t, "check", "--runs", "50", "--seed", "11")
		require.Error(t, err)
		assert.Equal(t, failureInput(first), failureInput(second))
		assert.NotEmpty(t, failureInput(first))
	})
}

func failureInput(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "input:") {
			return line
		}
	}
	return ""
}
