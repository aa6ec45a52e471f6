package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipeHTML = `<html><head><script type="application/ld+json">
{"@context": "https://schema.org", "@type": "Recipe",
 "name": "Sheet Cake",
 "recipeIngredient": ["2 cups flour", "1 cup sugar"],
 "recipeInstructions": [{"@type": "HowToStep", "text": "Preheat oven to 350F and grease a 9x13 pan."}]}
</script></head><body></body></html>`

func assertCORS(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestHandlerPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	w := httptest.NewRecorder()

	Handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assertCORS(t, w)
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	Handler(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assertCORS(t, w)
}

func TestHandlerScrape(t *testing.T) {
	body, err := json.Marshal(map[string]string{
		"url":  "http://x.test/r",
		"html": recipeHTML,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assertCORS(t, w)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "Sheet Cake", record["title"])
	assert.Equal(t, []interface{}{"Preheat oven to 350F and grease a 9x13 pan."}, record["instructions"])

	// absent fields must be serialized as explicit nulls
	_, present := record["author"]
	assert.True(t, present)
	assert.Nil(t, record["author"])
}

func TestHandlerMissingFields(t *testing.T) {
	body, err := json.Marshal(map[string]string{"url": "http://x.test/r"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Handler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ValidationError", resp["errorType"])
}

func TestHandlerMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{nope")))
	w := httptest.NewRecorder()

	Handler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "JSONDecodeError", resp["errorType"])
}

func TestHandlerNoRecipeData(t *testing.T) {
	body, err := json.Marshal(map[string]string{
		"url":  "http://x.test/post",
		"html": "<html><body><p>plain page</p></body></html>",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Handler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ScrapingError", resp["errorType"])
}
