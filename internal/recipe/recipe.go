// Package recipe extracts schema.org recipe data from HTML documents.
// It understands JSON-LD (including @graph containers) and falls back to
// microdata markup. No site-specific scraping lives here; every field is
// read from generic structured data.
package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoRecipe is returned by Parse when the document carries no
// schema.org recipe markup of any kind.
var ErrNoRecipe = errors.New("no recipe data found in document")

// ErrMissing is returned by accessors when the underlying field is not
// present in the structured data.
var ErrMissing = errors.New("field not present")

// Recipe is a parsed recipe document. One instance is built per request
// and discarded afterwards; it is not safe for concurrent mutation but
// accessors only read.
type Recipe struct {
	doc  *goquery.Document
	node map[string]any
	url  *url.URL
}

// Parse builds a Recipe from raw HTML and the page URL. It fails when
// the HTML cannot be parsed or when neither a JSON-LD Recipe node nor a
// microdata Recipe scope exists.
func Parse(html, pageURL string) (*Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		u = nil
	}

	node := findJSONLDRecipe(doc)
	if node == nil {
		node = findMicrodataRecipe(doc)
	}
	if node == nil {
		return nil, ErrNoRecipe
	}

	return &Recipe{doc: doc, node: node, url: u}, nil
}

// findJSONLDRecipe scans every ld+json script block for a Recipe node.
// Blocks that are not valid JSON are skipped rather than failing the
// whole document.
func findJSONLDRecipe(doc *goquery.Document) map[string]any {
	var found map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true
		}
		if node := findRecipeNode(payload); node != nil {
			found = node
			return false
		}
		return true
	})
	return found
}

// findRecipeNode walks a decoded JSON-LD value looking for the first
// object typed as Recipe. Publishers wrap the node in arrays, @graph
// containers, or mainEntity references.
func findRecipeNode(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		if isRecipeType(t["@type"]) {
			return t
		}
		if graph, ok := t["@graph"]; ok {
			if node := findRecipeNode(graph); node != nil {
				return node
			}
		}
		if main, ok := t["mainEntity"]; ok {
			if node := findRecipeNode(main); node != nil {
				return node
			}
		}
	case []any:
		for _, item := range t {
			if node := findRecipeNode(item); node != nil {
				return node
			}
		}
	}
	return nil
}

// isRecipeType matches @type values of "Recipe", which may be a single
// string or a list of types.
func isRecipeType(v any) bool {
	switch t := v.(type) {
	case string:
		return strings.EqualFold(t, "Recipe")
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.EqualFold(s, "Recipe") {
				return true
			}
		}
	}
	return false
}
