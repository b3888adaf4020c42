package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "PADARIA CENTRAL", "padaria central"},
		{"strips punctuation", "pag*uber.trip", "pag uber trip"},
		{"removes stop words", "Compra no Supermercado do Bairro", "compra supermercado bairro"},
		{"removes entity suffixes", "Mercearia Silva LTDA", "mercearia silva"},
		{"collapses whitespace", "  uber    trip  ", "uber trip"},
		{"keeps accented letters", "Açaí São João", "açaí são joão"},
		{"empty input", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"supermercado", "bairro"}, Tokens("supermercado bairro"))
	// Words shorter than three characters and pure numbers are dropped.
	assert.Equal(t, []string{"uber"}, Tokens("uber 99 ab 12345"))
	assert.Empty(t, Tokens("ab 12"))
}

func TestJaccard(t *testing.T) {
	a := TokenSet("padaria central bairro")
	b := TokenSet("padaria central")

	// intersection 2, union 3
	assert.InDelta(t, 2.0/3.0, Jaccard(a, b), 0.0001)
	assert.InDelta(t, 1.0, Jaccard(a, a), 0.0001)
	assert.Zero(t, Jaccard(a, TokenSet("")))
	assert.Zero(t, Jaccard(TokenSet(""), b))
}

func TestOverlap(t *testing.T) {
	a := TokenSet("padaria central bairro")
	b := TokenSet("padaria central")

	// Every token of the smaller set appears in the larger one.
	assert.InDelta(t, 1.0, Overlap(a, b), 0.0001)
	assert.Zero(t, Overlap(a, TokenSet("farmacia")))
}

func TestSharedWordRatio(t *testing.T) {
	assert.InDelta(t, 1.0, SharedWordRatio("padaria central", "padaria central bairro"), 0.0001)
	assert.InDelta(t, 0.5, SharedWordRatio("padaria nova", "padaria central bairro"), 0.0001)
	assert.Zero(t, SharedWordRatio("", "padaria"))

	// Duplicate words must not push the ratio above one.
	assert.LessOrEqual(t, SharedWordRatio("uber uber uber", "uber"), 1.0)
}
