// Package normalizer turns the extraction engine's accessor surface
// into the flat RecipeRecord wire schema. Accessor failures never
// escape: a field that cannot be read resolves to null, and only the
// engine's own construction failure fails a request.
package normalizer

import (
	"strings"

	"github.com/willbiddy/recipe-to-notion/internal/recipe"
	"github.com/willbiddy/recipe-to-notion/internal/types"
)

// Source is the accessor surface the normalizer reads from. It is
// implemented by *recipe.Recipe; tests substitute fakes.
type Source interface {
	Title() (string, error)
	Author() (string, error)
	Description() (string, error)
	Image() (string, error)
	Ingredients() ([]string, error)
	Instructions() (string, error)
	InstructionSteps() ([]any, error)
	Yields() (string, error)
	TotalTime() (int, error)
	PrepTime() (int, error)
	CookTime() (int, error)
	CanonicalURL() (string, error)
	Cuisine() (string, error)
	Category() (string, error)
	Ratings() (float64, error)
	RatingsCount() (int, error)
	Equipment() ([]string, error)
	Nutrients() (map[string]string, error)
	DietaryRestrictions() ([]string, error)
	Keywords() ([]string, error)
	CookingMethod() (string, error)
	SiteName() (string, error)
	Host() (string, error)
	Language() (string, error)
}

// ExtractionError reports that the document contained no usable recipe
// data at all.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string { return e.Err.Error() }
func (e *ExtractionError) Unwrap() error { return e.Err }

// FromHTML parses the document and normalizes it into a RecipeRecord.
// Only construction failure returns an error; missing fields degrade to
// empty values or nulls.
func FromHTML(html, url string) (*types.RecipeRecord, error) {
	src, err := recipe.Parse(html, url)
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}
	return Normalize(src), nil
}

// Normalize assembles a RecipeRecord from a Source. Title degrades to
// "" and ingredients to an empty list; every other field is attempted
// and nulled on failure.
func Normalize(src Source) *types.RecipeRecord {
	title, err := src.Title()
	if err != nil {
		title = ""
	}
	ingredients, err := src.Ingredients()
	if err != nil || ingredients == nil {
		ingredients = []string{}
	}

	return &types.RecipeRecord{
		Title:               title,
		Author:              optString(src.Author),
		Description:         optString(src.Description),
		Image:               optString(src.Image),
		Ingredients:         ingredients,
		Instructions:        extractInstructions(src),
		Yields:              optString(src.Yields),
		TotalTime:           optInt(src.TotalTime),
		CanonicalURL:        optString(src.CanonicalURL),
		PrepTime:            optInt(src.PrepTime),
		CookTime:            optInt(src.CookTime),
		Cuisine:             optString(src.Cuisine),
		Category:            optString(src.Category),
		Ratings:             optFloat(src.Ratings),
		RatingsCount:        optInt(src.RatingsCount),
		Equipment:           optStrings(src.Equipment),
		Nutrients:           optMap(src.Nutrients),
		DietaryRestrictions: optStrings(src.DietaryRestrictions),
		Keywords:            optStrings(src.Keywords),
		CookingMethod:       optString(src.CookingMethod),
		SiteName:            optString(src.SiteName),
		Host:                optString(src.Host),
		Language:            optString(src.Language),
	}
}

// optString attempts an accessor and maps failure or an empty result to
// null.
func optString(fn func() (string, error)) *string {
	v, err := fn()
	if err != nil {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func optInt(fn func() (int, error)) *int {
	v, err := fn()
	if err != nil {
		return nil
	}
	return &v
}

func optFloat(fn func() (float64, error)) *float64 {
	v, err := fn()
	if err != nil {
		return nil
	}
	return &v
}

func optStrings(fn func() ([]string, error)) []string {
	v, err := fn()
	if err != nil || len(v) == 0 {
		return nil
	}
	return v
}

func optMap(fn func() (map[string]string, error)) map[string]string {
	v, err := fn()
	if err != nil || len(v) == 0 {
		return nil
	}
	return v
}
