package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDamerauLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"widget", "widget", 0},
		{"widget", "widgte", 1}, // перестановка соседних
		{"widget", "widgt", 1},
		{"kitten", "sitting", 3},
		{"ca", "abc", 3},
		{"сталь", "стальь", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, damerauLevenshtein([]rune(tt.a), []rune(tt.b)))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Red Widget", "red widget"))
	assert.Equal(t, 0.9, Similarity("Red Widgt", "Red Widget"))
	assert.Equal(t, 0.8, Similarity("abcdefghXY", "abcdefghij"))
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
	assert.Equal(t, 0.0, Similarity("", "abc"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Less(t, Similarity("abcdefghijkXYZ", "abcdefghijklmn"), FuzzyThreshold)
}

func TestJaccard(t *testing.T) {
	assert.Equal(t, 1.0, jaccard(tokenSet("red widget"), tokenSet("widget red red")))
	assert.Equal(t, 0.5, jaccard(tokenSet("steel rod bar"), tokenSet("steel rod long")))
	assert.InDelta(t, 1.0/3, jaccard(tokenSet("red widgt"), tokenSet("red widget")), 1e-9)
	assert.Equal(t, 0.0, jaccard(tokenSet(""), tokenSet("")))
	assert.Equal(t, 0.0, jaccard(tokenSet("abc"), tokenSet("")))
}

func TestTokenSet(t *testing.T) {
	set := tokenSet("  steel\trod  steel \n")
	assert.Len(t, set, 2)
	assert.Contains(t, set, "steel")
	assert.Contains(t, set, "rod")
}
