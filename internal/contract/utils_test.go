package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/typomatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "smallest value possible", input: 0.0, expected: PoorValue},
		{name: "just before fair", input: 39.9, expected: PoorValue},
		{name: "exactly fair", input: 40.0, expected: FairValue},
		{name: "just before good", input: 59.9, expected: FairValue},
		{name: "exactly good", input: 60.0, expected: GoodValue},
		{name: "just before excellent", input: 79.9, expected: GoodValue},
		{name: "exactly excellent", input: 80.0, expected: ExcellentValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		label   string
	}{
		{"poor", 30, PoorValue},
		{"fair", 50, FairValue},
		{"good", 70, GoodValue},
		{"excellent", 90, ExcellentValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetColorLabel(tt.percent), tt.label)
		})
	}
}

func TestComfortPercent(t *testing.T) {
	percentTable := schema.ScoreTable{
		"Duality":  {Score: 100},
		"Conflict": {Score: 10},
	}
	signedTable := schema.ScoreTable{
		"Full Eros":      {Score: 10},
		"Extinguishment": {Score: -8},
		"Neutrality":     {Score: 0},
	}

	tests := []struct {
		name     string
		score    float64
		table    schema.ScoreTable
		expected float64
	}{
		{name: "percent scale unchanged", score: 65, table: percentTable, expected: 65},
		{name: "percent scale clamped", score: 140, table: percentTable, expected: 100},
		{name: "signed top", score: 10, table: signedTable, expected: 100},
		{name: "signed neutral", score: 0, table: signedTable, expected: 50},
		{name: "signed negative", score: -8, table: signedTable, expected: 10},
		{name: "empty table", score: 42, table: nil, expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ComfortPercent(tt.score, tt.table), 1e-9)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "Don Qu...", TruncateText("Don Quixote (ILE)", 9))
	assert.Equal(t, "ILE", TruncateText("ILE", 9))
	assert.Equal(t, "Don Quixote (ILE)", TruncateText("Don Quixote (ILE)", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1", "on"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0", "off"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func FuzzParseBoolString(f *testing.F) {
	for _, seed := range []string{"yes", "no", "1", "0", "", "maybe"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		v, err := ParseBoolString(s)
		if err != nil {
			assert.False(t, v)
		}
	})
}
