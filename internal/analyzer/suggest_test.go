package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"avg", "avg", 0},
		{"avgg", "avg", 1},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"día", "dia", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.want, levenshtein(tt.b, tt.a), "%q vs %q", tt.b, tt.a)
	}
}

func TestSuggest(t *testing.T) {
	keys := []string{"avg", "max", "min", "day_of_month", "day", "dom", "dow"}

	assert.Equal(t, []string{"avg"}, Suggest("avgg", keys))
	assert.Equal(t, []string{"max", "min"}, Suggest("mix", keys))
	assert.Equal(t, []string{"dom", "dow", "day"}, Suggest("doq", keys))
	assert.Nil(t, Suggest("completely_different", keys))
	assert.Nil(t, Suggest("", keys))
}
