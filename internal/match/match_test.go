package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-migrator/internal/shape"
)

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"OrderID", []string{"order", "id"}},
		{"customerName", []string{"customer", "name"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"order_id", []string{"order", "id"}},
		{"field-10", []string{"field", "10"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenizeIdent(tt.in))
		})
	}

	assert.Equal(t, NormalizeIdent("order_id"), NormalizeIdent("OrderID"))
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("userName", "user_name"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.Greater(t, Similarity("emailAddr", "email"), Similarity("phone", "email"))
}

func TestRankCandidates(t *testing.T) {
	target := shape.Field{Name: "fullName", Type: "string"}
	pool := []shape.Field{
		{Name: "title", Type: "string"},
		{Name: "full_name", Type: "string"},
		{Name: "fullNames", Type: "[]string"},
		{Name: "age", Type: "int"},
	}

	got := RankCandidates(target, pool, DefaultThreshold)
	require.Len(t, got, 2)

	assert.Equal(t, "full_name", got[0].Source.Name)
	assert.InDelta(t, 1.1, got[0].Score, 1e-9)
	assert.Equal(t, "fullNames", got[1].Source.Name)

	assert.Empty(t, RankCandidates(target, nil, DefaultThreshold))
}
