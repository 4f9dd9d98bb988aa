package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// Session represents an active browser session with its associated resources.
type Session struct {
	// Name is the unique identifier for this session
	Name string

	// Browser is the Playwright browser instance
	Browser playwright.Browser

	// Context is the browser context (isolated session)
	Context playwright.BrowserContext

	// Page is the current active page; it changes when a click opens a new tab
	Page playwright.Page

	// Headless indicates if the browser is running in headless mode
	Headless bool

	// CreatedAt is the timestamp when the session was created
	CreatedAt time.Time

	// LastUsedAt is the timestamp of the last operation on this session
	LastUsedAt time.Time

	// LastURL is the URL observed after the most recent navigation or click
	LastURL string

	// Timeout is the per-operation timeout in milliseconds
	Timeout float64

	// release is invoked by Close to return the session to its manager
	release func() error
}

// SessionOptions configures a new browser session.
type SessionOptions struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Viewport sets the initial viewport size
	Viewport *Viewport

	// Timeout sets the default timeout for operations (in milliseconds)
	Timeout float64
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

// Selectors locate storefront elements. Card-relative selectors are CSS and are
// evaluated against the card's markup; the others are Playwright locators and may
// be CSS or XPath.
type Selectors struct {
	SearchInput     string `yaml:"search_input" json:"search_input"`
	ProductCards    string `yaml:"product_cards" json:"product_cards"`
	CardName        string `yaml:"card_name" json:"card_name"`
	CardPrice       string `yaml:"card_price" json:"card_price"`
	HoverAddButton  string `yaml:"hover_add_button" json:"hover_add_button"`
	DetailAddButton string `yaml:"detail_add_button" json:"detail_add_button"`
	CartItems       string `yaml:"cart_items" json:"cart_items"`
	RemoveButton    string `yaml:"remove_button" json:"remove_button"`
}

// DefaultSelectors returns selectors for the Tira Beauty storefront.
func DefaultSelectors() Selectors {
	return Selectors{
		SearchInput:     "xpath=//input[@id='search']",
		ProductCards:    "xpath=//div[@class='product-name']/..",
		CardName:        "div.product-name",
		CardPrice:       "p.discount-price",
		HoverAddButton:  "xpath=//button[@class='add-to-bag__btn']",
		DetailAddButton: "xpath=(//button[@class='custom-btn primary lg no-tap-highlight'])[1]",
		CartItems:       "xpath=//div[@class='bag']",
		RemoveButton:    "xpath=//div[@class='left']//button[1]",
	}
}

// Default values for various operations
const (
	DefaultTimeout        = 10000.0 // 10 seconds in milliseconds
	DefaultViewportWidth  = 1400
	DefaultViewportHeight = 1000
	DefaultMaxSessions    = 1
)
