package recipe

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// scalarProps maps microdata itemprop names to the JSON-LD keys the
// accessors read, for single-valued fields.
var scalarProps = map[string]string{
	"name":           "name",
	"author":         "author",
	"description":    "description",
	"image":          "image",
	"recipeYield":    "recipeYield",
	"recipeCuisine":  "recipeCuisine",
	"recipeCategory": "recipeCategory",
	"cookingMethod":  "cookingMethod",
	"keywords":       "keywords",
	"totalTime":      "totalTime",
	"prepTime":       "prepTime",
	"cookTime":       "cookTime",
	"url":            "url",
}

var nutritionProps = []string{
	"calories", "servingSize", "fatContent", "saturatedFatContent",
	"unsaturatedFatContent", "transFatContent", "carbohydrateContent",
	"sugarContent", "fiberContent", "proteinContent", "sodiumContent",
	"cholesterolContent",
}

// findMicrodataRecipe synthesizes a JSON-LD-shaped node from microdata
// markup so the accessors work the same regardless of markup flavor.
func findMicrodataRecipe(doc *goquery.Document) map[string]any {
	scope := findRecipeScope(doc)
	if scope == nil {
		return nil
	}

	node := map[string]any{"@type": "Recipe"}

	for prop, key := range scalarProps {
		sel := scope.Find(`[itemprop~="` + prop + `"]`).First()
		if sel.Length() == 0 {
			continue
		}
		if v := itempropValue(sel); v != "" {
			node[key] = v
		}
	}

	var ingredients []any
	scope.Find(`[itemprop~="recipeIngredient"], [itemprop~="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		if v := itempropValue(s); v != "" {
			ingredients = append(ingredients, v)
		}
	})
	if len(ingredients) > 0 {
		node["recipeIngredient"] = ingredients
	}

	var steps []any
	scope.Find(`[itemprop~="recipeInstructions"]`).Each(func(_ int, s *goquery.Selection) {
		// a single container often holds one <li> per step
		items := s.Find("li")
		if items.Length() == 0 {
			if v := itempropValue(s); v != "" {
				steps = append(steps, v)
			}
			return
		}
		items.Each(func(_ int, li *goquery.Selection) {
			if v := strings.TrimSpace(li.Text()); v != "" {
				steps = append(steps, v)
			}
		})
	})
	if len(steps) > 0 {
		node["recipeInstructions"] = steps
	}

	rating := map[string]any{}
	for _, prop := range []string{"ratingValue", "ratingCount", "reviewCount"} {
		sel := scope.Find(`[itemprop~="` + prop + `"]`).First()
		if sel.Length() == 0 {
			continue
		}
		if v := itempropValue(sel); v != "" {
			rating[prop] = v
		}
	}
	if len(rating) > 0 {
		node["aggregateRating"] = rating
	}

	nutrition := map[string]any{}
	for _, prop := range nutritionProps {
		sel := scope.Find(`[itemprop~="` + prop + `"]`).First()
		if sel.Length() == 0 {
			continue
		}
		if v := itempropValue(sel); v != "" {
			nutrition[prop] = v
		}
	}
	if len(nutrition) > 0 {
		node["nutrition"] = nutrition
	}

	return node
}

func findRecipeScope(doc *goquery.Document) *goquery.Selection {
	var scope *goquery.Selection
	doc.Find(`[itemscope][itemtype]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		itemtype, _ := s.Attr("itemtype")
		itemtype = strings.TrimSuffix(strings.TrimSpace(itemtype), "/")
		if strings.HasSuffix(itemtype, "schema.org/Recipe") {
			scope = s
			return false
		}
		return true
	})
	return scope
}

// itempropValue reads a microdata value the way browsers do: content,
// datetime, src and href attributes win over element text.
func itempropValue(s *goquery.Selection) string {
	for _, attr := range []string{"content", "datetime", "src", "href"} {
		if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return strings.TrimSpace(s.Text())
}
