// Package catalog is the fixed registry of shopping operations the engine knows
// how to perform. It is consulted by task generation to validate and describe
// operations; the engine dispatches on Operation values directly.
package catalog

// Operation names one atomic interaction step.
type Operation string

const (
	SearchProducts      Operation = "search_products"
	ExtractProducts     Operation = "extract_products"
	HoverAddToCart      Operation = "hover_add_to_cart"
	ClickProductDetails Operation = "click_product_details"
	AddFromDetails      Operation = "add_from_details"
	ViewCart            Operation = "view_cart"
	RemoveFromCart      Operation = "remove_from_cart"
	CompleteSession     Operation = "complete_session"
)

// Entry describes a catalog operation. None of these fields drive control flow.
type Entry struct {
	Operation     Operation
	Description   string
	UseCase       string
	Parameters    map[string]string
	SuccessRate   string
	PersonaImpact string
}

// order is the presentation order used in prompts and listings.
var order = []Operation{
	SearchProducts,
	ExtractProducts,
	HoverAddToCart,
	ClickProductDetails,
	AddFromDetails,
	ViewCart,
	RemoveFromCart,
	CompleteSession,
}

var entries = map[Operation]Entry{
	SearchProducts: {
		Operation:     SearchProducts,
		Description:   "Search for products with persona-specific typing behavior",
		UseCase:       "Finding products, starting shopping journey",
		Parameters:    map[string]string{"search_term": "string"},
		SuccessRate:   "100%",
		PersonaImpact: "High",
	},
	ExtractProducts: {
		Operation:     ExtractProducts,
		Description:   "Extract all visible products with names and prices",
		UseCase:       "Analyzing available products on current page",
		SuccessRate:   "100%",
		PersonaImpact: "Low",
	},
	HoverAddToCart: {
		Operation:     HoverAddToCart,
		Description:   "Add product to cart using hover interaction",
		UseCase:       "Quick impulsive purchase from search results",
		Parameters:    map[string]string{"product_index": "int (0-5)"},
		SuccessRate:   "100%",
		PersonaImpact: "High",
	},
	ClickProductDetails: {
		Operation:     ClickProductDetails,
		Description:   "Click product to examine details with tab handling",
		UseCase:       "Careful examination before purchase",
		Parameters:    map[string]string{"product_index": "int (0-5)"},
		SuccessRate:   "100%",
		PersonaImpact: "High",
	},
	AddFromDetails: {
		Operation:     AddFromDetails,
		Description:   "Add to cart from product detail page",
		UseCase:       "Purchase after detailed examination",
		SuccessRate:   "100%",
		PersonaImpact: "Medium",
	},
	ViewCart: {
		Operation:     ViewCart,
		Description:   "Check shopping cart contents and total",
		UseCase:       "Reviewing purchases, budget checking",
		SuccessRate:   "100%",
		PersonaImpact: "High",
	},
	RemoveFromCart: {
		Operation:     RemoveFromCart,
		Description:   "Remove item from cart",
		UseCase:       "Changing mind, budget concerns",
		SuccessRate:   "95%",
		PersonaImpact: "High",
	},
	CompleteSession: {
		Operation:     CompleteSession,
		Description:   "Finish shopping session with satisfaction",
		UseCase:       "When shopping goals are met",
		SuccessRate:   "100%",
		PersonaImpact: "Medium",
	},
}

// Parse converts a raw operation name into an Operation.
// The second return value is false for names that are not in the catalog.
func Parse(name string) (Operation, bool) {
	op := Operation(name)
	_, ok := entries[op]
	return op, ok
}

// Lookup returns the catalog entry for the named operation.
func Lookup(name string) (Entry, bool) {
	entry, ok := entries[Operation(name)]
	if !ok {
		return Entry{}, false
	}
	return entry.clone(), true
}

// Names returns every operation name in catalog order.
func Names() []string {
	names := make([]string, len(order))
	for i, op := range order {
		names[i] = string(op)
	}
	return names
}

// Entries returns a copy of every entry in catalog order.
func Entries() []Entry {
	out := make([]Entry, len(order))
	for i, op := range order {
		out[i] = entries[op].clone()
	}
	return out
}

func (e Entry) clone() Entry {
	if e.Parameters != nil {
		params := make(map[string]string, len(e.Parameters))
		for k, v := range e.Parameters {
			params[k] = v
		}
		e.Parameters = params
	}
	return e
}

// String returns the operation name.
func (o Operation) String() string {
	return string(o)
}
