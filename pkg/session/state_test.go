package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, PageHomepage, s.PageKind)
	assert.Equal(t, -1, s.ObservedCartItems)
	assert.False(t, s.CartDiverged())
	assert.Equal(t, 0.0, s.Counters.SuccessRate())
}

func TestSetProductsCapsAndRenumbers(t *testing.T) {
	s := NewState()
	var products []Product
	for i := 0; i < 9; i++ {
		products = append(products, Product{Name: "p", Price: i, Index: 100 + i})
	}

	s.SetProducts(products)
	require.Len(t, s.Products, MaxVisibleProducts)
	for i, p := range s.Products {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, i, p.Price)
	}

	s.SetProducts([]Product{{Name: "only"}})
	require.Len(t, s.Products, 1)
	assert.Equal(t, "only", s.Products[0].Name)

	_, ok := s.Product(1)
	assert.False(t, ok)
	_, ok = s.Product(-1)
	assert.False(t, ok)
}

func TestCartNeverNegative(t *testing.T) {
	s := NewState()
	s.RemoveFromCart()
	assert.Equal(t, 0, s.CartItems)

	s.AddToCart()
	s.AddToCart()
	s.RemoveFromCart()
	assert.Equal(t, 1, s.CartItems)
}

func TestCountersAndRate(t *testing.T) {
	s := NewState()
	s.Record(true)
	s.Record(false)
	s.Record(true)
	s.Record(true)

	assert.Equal(t, Counters{Attempts: 4, Successes: 3}, s.Counters)
	assert.InDelta(t, 0.75, s.Counters.SuccessRate(), 1e-9)
}

func TestCartDivergence(t *testing.T) {
	s := NewState()
	s.AddToCart()
	s.ObservedCartItems = 1
	assert.False(t, s.CartDiverged())

	s.ObservedCartItems = 3
	assert.True(t, s.CartDiverged())
}

func TestSummaryWriteJSON(t *testing.T) {
	s := NewState()
	s.Record(true)
	s.AddToCart()

	summary := s.Summarize()
	summary.Persona = "Asha"
	path := filepath.Join(t.TempDir(), "out", "summary.json")
	require.NoError(t, summary.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Asha", decoded["persona"])
	assert.Equal(t, 1.0, decoded["attempts"])
	assert.Equal(t, 1.0, decoded["cart_item_count"])
	assert.Equal(t, 1.0, decoded["success_rate"])
}
