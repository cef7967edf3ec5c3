package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Past, Current, Future, Eternity", []string{"Past", "Current", "Future", "Eternity"}},
		{"  Logic ,Will,  Emotion,Physics ", []string{"Logic", "Will", "Emotion", "Physics"}},
		{"Past,,Future", []string{"Past", "", "Future"}}, // empty segments keep the length
		{"ILE", []string{"ILE"}},
		{"   ", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseType(tt.input))
		})
	}
}

func TestFormatType(t *testing.T) {
	assert.Equal(t, "Love, Passion, Friendship, Romance", FormatType([]string{"Love", "Passion", "Friendship", "Romance"}))
	assert.Empty(t, FormatType(nil))
}

func TestParseTypologyName(t *testing.T) {
	known := []TypologyName{Socionics, Temporistics, IQ}

	assert.Equal(t, Socionics, ParseTypologyName("socionics", known))
	assert.Equal(t, IQ, ParseTypologyName(" iq ", known))
	assert.Equal(t, TypologyName("Enneagram"), ParseTypologyName("Enneagram", known))
	assert.Equal(t, TypologyName("Temporistics"), ParseTypologyName("Temporistics", nil))
}

func TestParseTypeAssignments(t *testing.T) {
	known := []TypologyName{Socionics, Temporistics, IQ}

	got, err := ParseTypeAssignments("socionics=ILE; Temporistics=Past, Current, Future, Eternity;", known)
	require.NoError(t, err)
	assert.Equal(t, map[TypologyName]string{
		Socionics:    "ILE",
		Temporistics: "Past, Current, Future, Eternity",
	}, got)

	got, err = ParseTypeAssignments("", known)
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, bad := range []string{"ILE", "=ILE", "IQ=Average;garbage"} {
		_, err := ParseTypeAssignments(bad, known)
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
		var assignErr *AssignmentError
		assert.ErrorAs(t, err, &assignErr)
	}
}
