package session

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// PagePattern maps URL globs to a page kind. Patterns are matched against the
// lower-cased URL.
type PagePattern struct {
	Kind     PageKind `yaml:"kind" json:"kind"`
	Patterns []string `yaml:"patterns" json:"patterns"`
}

// DefaultPagePatterns checks search, then product, then cart; anything else is
// the homepage.
func DefaultPagePatterns() []PagePattern {
	return []PagePattern{
		{Kind: PageSearchResults, Patterns: []string{"*search*"}},
		{Kind: PageProductDetails, Patterns: []string{"*product*"}},
		{Kind: PageCart, Patterns: []string{"*cart*", "*bag*"}},
	}
}

type compiledPattern struct {
	kind  PageKind
	globs []glob.Glob
}

// Classifier derives a PageKind from a URL.
type Classifier struct {
	patterns []compiledPattern
}

// NewClassifier compiles patterns in order; the first matching kind wins.
func NewClassifier(patterns []PagePattern) (*Classifier, error) {
	c := &Classifier{}
	for _, p := range patterns {
		cp := compiledPattern{kind: p.Kind}
		for _, raw := range p.Patterns {
			g, err := glob.Compile(strings.ToLower(raw))
			if err != nil {
				return nil, fmt.Errorf("invalid page pattern %q for %s: %w", raw, p.Kind, err)
			}
			cp.globs = append(cp.globs, g)
		}
		c.patterns = append(c.patterns, cp)
	}
	return c, nil
}

// DefaultClassifier returns a Classifier using DefaultPagePatterns.
func DefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultPagePatterns())
	if err != nil {
		panic(err)
	}
	return c
}

// Classify returns the first matching kind, or PageHomepage.
func (c *Classifier) Classify(url string) PageKind {
	url = strings.ToLower(url)
	for _, p := range c.patterns {
		for _, g := range p.globs {
			if g.Match(url) {
				return p.kind
			}
		}
	}
	return PageHomepage
}
