package recipe

import (
	"strings"
)

// Title returns the recipe name.
func (r *Recipe) Title() (string, error) {
	return r.strProp("name")
}

// Author returns the author name, unwrapping Person/Organization nodes.
func (r *Recipe) Author() (string, error) {
	return r.strProp("author")
}

// Description returns the recipe description.
func (r *Recipe) Description() (string, error) {
	return r.strProp("description")
}

// Image returns the primary image URL.
func (r *Recipe) Image() (string, error) {
	if v, ok := r.node["image"]; ok {
		if s := coerceURL(v); s != "" {
			return s, nil
		}
	}
	if s, ok := r.metaContent(`meta[property="og:image"]`); ok {
		return s, nil
	}
	return "", missing("image")
}

// Ingredients returns the ordered ingredient lines.
func (r *Recipe) Ingredients() ([]string, error) {
	for _, key := range []string{"recipeIngredient", "ingredients"} {
		if v, ok := r.node[key]; ok {
			if items := coerceStrings(v); len(items) > 0 {
				return items, nil
			}
		}
	}
	return nil, missing("recipeIngredient")
}

// Instructions returns the instruction steps joined with newlines, the
// shape the normalizer's string path expects.
func (r *Recipe) Instructions() (string, error) {
	steps, err := r.InstructionSteps()
	if err != nil {
		return "", err
	}
	var lines []string
	for _, step := range steps {
		if text := stepText(step); text != "" {
			lines = append(lines, text)
		}
	}
	if len(lines) == 0 {
		return "", missing("recipeInstructions")
	}
	return strings.Join(lines, "\n"), nil
}

// InstructionSteps returns the raw instruction steps: plain strings or
// decoded HowToStep objects, with HowToSection containers expanded in
// order. Callers decide how to read each step.
func (r *Recipe) InstructionSteps() ([]any, error) {
	v, ok := r.node["recipeInstructions"]
	if !ok {
		return nil, missing("recipeInstructions")
	}
	steps := flattenSteps(v)
	if len(steps) == 0 {
		return nil, missing("recipeInstructions")
	}
	return steps, nil
}

// Yields returns the declared yield ("4 servings").
func (r *Recipe) Yields() (string, error) {
	return r.strProp("recipeYield", "yield")
}

// TotalTime returns the total time in minutes.
func (r *Recipe) TotalTime() (int, error) {
	return r.minutesProp("totalTime")
}

// PrepTime returns the preparation time in minutes.
func (r *Recipe) PrepTime() (int, error) {
	return r.minutesProp("prepTime")
}

// CookTime returns the cooking time in minutes.
func (r *Recipe) CookTime() (int, error) {
	return r.minutesProp("cookTime")
}

// CanonicalURL prefers the document's canonical link, then og:url, then
// the recipe node's own url, then the supplied page URL.
func (r *Recipe) CanonicalURL() (string, error) {
	if href, ok := r.doc.Find(`link[rel="canonical"]`).Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href), nil
	}
	if s, ok := r.metaContent(`meta[property="og:url"]`); ok {
		return s, nil
	}
	for _, key := range []string{"url", "mainEntityOfPage"} {
		if v, ok := r.node[key]; ok {
			if s := coerceURL(v); s != "" {
				return s, nil
			}
		}
	}
	if r.url != nil && r.url.String() != "" {
		return r.url.String(), nil
	}
	return "", missing("url")
}

// Cuisine returns the cuisine, joining multi-valued markup.
func (r *Recipe) Cuisine() (string, error) {
	return r.joinedProp("recipeCuisine")
}

// Category returns the category, joining multi-valued markup.
func (r *Recipe) Category() (string, error) {
	return r.joinedProp("recipeCategory")
}

// Ratings returns the aggregate rating value.
func (r *Recipe) Ratings() (float64, error) {
	agg, ok := r.node["aggregateRating"].(map[string]any)
	if !ok {
		return 0, missing("aggregateRating")
	}
	if f, ok := coerceFloat(agg["ratingValue"]); ok {
		return f, nil
	}
	return 0, missing("ratingValue")
}

// RatingsCount returns the number of ratings, accepting reviewCount as
// a substitute.
func (r *Recipe) RatingsCount() (int, error) {
	agg, ok := r.node["aggregateRating"].(map[string]any)
	if !ok {
		return 0, missing("aggregateRating")
	}
	for _, key := range []string{"ratingCount", "reviewCount"} {
		if f, ok := coerceFloat(agg[key]); ok {
			return int(f), nil
		}
	}
	return 0, missing("ratingCount")
}

// Equipment returns the HowToTool entries.
func (r *Recipe) Equipment() ([]string, error) {
	if v, ok := r.node["tool"]; ok {
		if items := coerceStrings(v); len(items) > 0 {
			return items, nil
		}
	}
	return nil, missing("tool")
}

// Nutrients returns the NutritionInformation node as a flat mapping,
// with JSON-LD bookkeeping keys dropped.
func (r *Recipe) Nutrients() (map[string]string, error) {
	nut, ok := r.node["nutrition"].(map[string]any)
	if !ok {
		return nil, missing("nutrition")
	}
	out := make(map[string]string, len(nut))
	for key, v := range nut {
		if strings.HasPrefix(key, "@") {
			continue
		}
		if s := coerceString(v); s != "" {
			out[key] = s
		}
	}
	if len(out) == 0 {
		return nil, missing("nutrition")
	}
	return out, nil
}

// DietaryRestrictions returns suitableForDiet entries with the
// schema.org URL prefix stripped.
func (r *Recipe) DietaryRestrictions() ([]string, error) {
	v, ok := r.node["suitableForDiet"]
	if !ok {
		return nil, missing("suitableForDiet")
	}
	var out []string
	for _, item := range coerceStrings(v) {
		item = strings.TrimPrefix(item, "https://schema.org/")
		item = strings.TrimPrefix(item, "http://schema.org/")
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil, missing("suitableForDiet")
	}
	return out, nil
}

// Keywords returns the keyword list, splitting comma-separated strings.
func (r *Recipe) Keywords() ([]string, error) {
	v, ok := r.node["keywords"]
	if !ok {
		return nil, missing("keywords")
	}
	var out []string
	for _, item := range coerceStrings(v) {
		out = append(out, splitCSV(item)...)
	}
	if len(out) == 0 {
		return nil, missing("keywords")
	}
	return out, nil
}

// CookingMethod returns the cooking method.
func (r *Recipe) CookingMethod() (string, error) {
	return r.strProp("cookingMethod")
}

// SiteName prefers og:site_name over the publisher node.
func (r *Recipe) SiteName() (string, error) {
	if s, ok := r.metaContent(`meta[property="og:site_name"]`); ok {
		return s, nil
	}
	if v, ok := r.node["publisher"]; ok {
		if s := coerceString(v); s != "" {
			return s, nil
		}
	}
	return "", missing("site name")
}

// Host returns the hostname of the page URL.
func (r *Recipe) Host() (string, error) {
	if r.url == nil || r.url.Hostname() == "" {
		return "", missing("host")
	}
	return r.url.Hostname(), nil
}

// Language prefers the node's inLanguage over the document lang
// attribute.
func (r *Recipe) Language() (string, error) {
	if v, ok := r.node["inLanguage"]; ok {
		if s := coerceString(v); s != "" {
			return s, nil
		}
	}
	if lang, ok := r.doc.Find("html").Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		return strings.TrimSpace(lang), nil
	}
	return "", missing("language")
}

func (r *Recipe) strProp(keys ...string) (string, error) {
	for _, key := range keys {
		if v, ok := r.node[key]; ok {
			if s := coerceString(v); s != "" {
				return s, nil
			}
		}
	}
	return "", missing(keys[0])
}

func (r *Recipe) joinedProp(key string) (string, error) {
	v, ok := r.node[key]
	if !ok {
		return "", missing(key)
	}
	items := coerceStrings(v)
	if len(items) == 0 {
		return "", missing(key)
	}
	return strings.Join(items, ","), nil
}

func (r *Recipe) minutesProp(key string) (int, error) {
	v, ok := r.node[key]
	if !ok {
		return 0, missing(key)
	}
	n, err := parseMinutes(v)
	if err != nil {
		return 0, missing(key)
	}
	return n, nil
}

func (r *Recipe) metaContent(selector string) (string, bool) {
	content, ok := r.doc.Find(selector).Attr("content")
	content = strings.TrimSpace(content)
	return content, ok && content != ""
}

// flattenSteps expands recipeInstructions into a flat ordered list of
// raw steps. HowToSection containers are replaced by their
// itemListElement contents; everything else passes through untouched.
func flattenSteps(v any) []any {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) != "" {
			return []any{t}
		}
	case []any:
		var out []any
		for _, item := range t {
			out = append(out, flattenSteps(item)...)
		}
		return out
	case map[string]any:
		if isSection(t) {
			return flattenSteps(t["itemListElement"])
		}
		return []any{t}
	}
	return nil
}

func isSection(node map[string]any) bool {
	switch t := node["@type"].(type) {
	case string:
		return strings.EqualFold(t, "HowToSection")
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.EqualFold(s, "HowToSection") {
				return true
			}
		}
	}
	return false
}

// stepText reads the human text out of one raw step.
func stepText(step any) string {
	switch t := step.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		if s, ok := t["text"].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
		if s, ok := t["name"].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
