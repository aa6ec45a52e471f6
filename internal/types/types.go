package types

// RecipeRecord is the normalized recipe schema returned to the backend.
// Title, Ingredients and Instructions are always present; every other
// field is either a concrete value or JSON null.
type RecipeRecord struct {
	Title               string            `json:"title"`
	Author              *string           `json:"author"`
	Description         *string           `json:"description"`
	Image               *string           `json:"image"`
	Ingredients         []string          `json:"ingredients"`
	Instructions        []string          `json:"instructions"`
	Yields              *string           `json:"yields"`
	TotalTime           *int              `json:"totalTime"`
	CanonicalURL        *string           `json:"canonicalUrl"`
	PrepTime            *int              `json:"prepTime"`
	CookTime            *int              `json:"cookTime"`
	Cuisine             *string           `json:"cuisine"`
	Category            *string           `json:"category"`
	Ratings             *float64          `json:"ratings"`
	RatingsCount        *int              `json:"ratingsCount"`
	Equipment           []string          `json:"equipment"`
	Nutrients           map[string]string `json:"nutrients"`
	DietaryRestrictions []string          `json:"dietaryRestrictions"`
	Keywords            []string          `json:"keywords"`
	CookingMethod       *string           `json:"cookingMethod"`
	SiteName            *string           `json:"siteName"`
	Host                *string           `json:"host"`
	Language            *string           `json:"language"`
}

// ScrapeRequest is the JSON body accepted by both transports.
type ScrapeRequest struct {
	URL  string `json:"url" binding:"required"`
	HTML string `json:"html" binding:"required"`
}

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorType string `json:"errorType"`
}
