package browser

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxNameLength is the display length product names are cut to.
const MaxNameLength = 50

// Card is a product tile parsed from storefront markup.
type Card struct {
	Name  string
	Price int
}

var priceRe = regexp.MustCompile(`(\d+(?:,\d+)*)`)

// ParseCard extracts the product name and price from a card's markup using the
// card-relative CSS selectors. A card without a name is rejected; a missing or
// non-numeric price parses as 0.
func ParseCard(markup string, sel Selectors) (Card, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return Card{}, fmt.Errorf("parse card: %w", err)
	}

	name := strings.TrimSpace(doc.Find(sel.CardName).First().Text())
	if name == "" {
		return Card{}, fmt.Errorf("%w: card has no product name", ErrNotFound)
	}
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = string(runes[:MaxNameLength]) + "..."
	}

	return Card{
		Name:  name,
		Price: ParsePrice(doc.Find(sel.CardPrice).First().Text()),
	}, nil
}

// ParsePrice reads the first number in text as whole currency units, ignoring
// currency symbols and thousands separators. Text without a number is 0; a
// number too large for int saturates to math.MaxInt so it never passes a
// budget check.
func ParsePrice(text string) int {
	match := priceRe.FindString(text)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}
