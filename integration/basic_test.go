//go:build basic

package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileBackendLifecycle seeds a file store, edits a score and reads it back.
func TestFileBackendLifecycle(t *testing.T) {
	env := map[string]string{
		"TYPOMATCH_BACKEND":  "file",
		"TYPOMATCH_DATA_DIR": filepath.Join(t.TempDir(), "data"),
		"TYPOMATCH_COLOR":    "no",
	}

	// Documents are missing until the store is seeded
	_, err := runCommand(t, env, "calculate", "ILE", "SEI", "-t", "Socionics")
	require.Error(t, err)

	out, err := runCommand(t, env, "store", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded socionics")

	out, err = runCommand(t, env, "store", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "All documents already exist")

	_, err = runCommand(t, env, "update-score", "socionics", "Duality", "91")
	require.NoError(t, err)

	out, err = runCommand(t, env, "calculate", "ILE", "SEI", "-t", "Socionics", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Duality,91")

	out, err = runCommand(t, env, "store", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")
}

// TestMemoryBackendCommands runs every read-only command against a seeded memory store.
func TestMemoryBackendCommands(t *testing.T) {
	env := map[string]string{"TYPOMATCH_BACKEND": "memory", "TYPOMATCH_COLOR": "no"}

	cases := [][]string{
		{"types"},
		{"types", "Psychosophia", "--output", "json"},
		{"scores", "Temporistics"},
		{"weights", "show"},
		{"status", "show", "--output", "csv"},
		{"compat", "--a", "Socionics=ILE;IQ=Average", "--b", "Socionics=SEI;IQ=Average"},
		{"matrix", "Temperament", "--workers", "2"},
		{"version"},
	}
	for _, args := range cases {
		t.Run(args[0], func(t *testing.T) {
			_, err := runCommand(t, env, args...)
			assert.NoError(t, err)
		})
	}
}

// TestDistanceGate checks both outcomes of the distance command.
func TestDistanceGate(t *testing.T) {
	env := map[string]string{"TYPOMATCH_BACKEND": "memory", "TYPOMATCH_COLOR": "no"}
	base := []string{
		"distance", "-t", "Socionics", "--a-type", "ILE", "--b-type", "SEI",
		"--a-lat", "52.52", "--a-lon", "13.405", "--b-lat", "52.2297", "--b-lon", "21.0122",
	}

	out, err := runCommand(t, env, append(base, "--max-distance", "600")...)
	require.NoError(t, err)
	assert.Contains(t, out, "are compatible under Socionics")

	_, err = runCommand(t, env, append(base, "--max-distance", "100")...)
	assert.Error(t, err)
}
