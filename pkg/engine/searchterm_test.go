package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/entrhq/shopsim/pkg/persona"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTermPrefixes(t *testing.T) {
	tests := []struct {
		name string
		spec persona.Spec
		want string
	}{
		{
			name: "price focused",
			spec: persona.Spec{Traits: []string{"luxury"}, DecisionStyle: "price_focused"},
			want: "affordable serum",
		},
		{
			name: "luxury buyer",
			spec: persona.Spec{Traits: []string{"premium", "trending"}},
			want: "premium serum",
		},
		{
			name: "trending",
			spec: persona.Spec{Traits: []string{"Trending-obsessed"}},
			want: "trending serum",
		},
		{
			name: "plain",
			spec: persona.Spec{Traits: []string{"curious"}},
			want: "serum",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.spec.Interests = []string{"serum"}
			tt.spec.Goals = []string{"serum"}
			p, err := persona.New(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, SearchTerm(p, rand.New(rand.NewSource(1))))
		})
	}
}

func TestSearchTermIsDeterministicForSeed(t *testing.T) {
	p, err := persona.New(persona.Spec{
		Interests: []string{"lipstick", "kajal", "toner"},
		Goals:     []string{"restock essentials"},
	})
	require.NoError(t, err)

	a := SearchTerm(p, rand.New(rand.NewSource(42)))
	b := SearchTerm(p, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
	assert.Contains(t, p.SearchPool(), a)

	seen := map[string]bool{}
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		term := SearchTerm(p, rnd)
		assert.False(t, strings.HasPrefix(term, "premium "))
		seen[term] = true
	}
	assert.Len(t, seen, 4)
}
