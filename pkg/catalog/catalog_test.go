package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{name: "search", input: "search_products", wantOK: true},
		{name: "complete", input: "complete_session", wantOK: true},
		{name: "unknown", input: "checkout_now", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "case sensitive", input: "Search_Products", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := Parse(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.input, op.String())
			}
		})
	}
}

func TestLookup(t *testing.T) {
	entry, ok := Lookup("hover_add_to_cart")
	require.True(t, ok)
	assert.Equal(t, HoverAddToCart, entry.Operation)
	assert.Equal(t, "int (0-5)", entry.Parameters["product_index"])

	_, ok = Lookup("teleport")
	assert.False(t, ok)
}

func TestLookupReturnsCopy(t *testing.T) {
	entry, ok := Lookup("search_products")
	require.True(t, ok)
	entry.Parameters["search_term"] = "mutated"

	again, _ := Lookup("search_products")
	assert.Equal(t, "string", again.Parameters["search_term"])
}

func TestNamesCoverEveryEntry(t *testing.T) {
	names := Names()
	assert.Len(t, names, 8)
	assert.Equal(t, "search_products", names[0])
	assert.Equal(t, "complete_session", names[len(names)-1])

	for _, name := range names {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}
	assert.Len(t, Entries(), len(names))
}
