// Package handler is the Vercel entrypoint for the recipe scraper
// (Transport A). It shares the request pipeline with the local dev
// server: decode, normalize, map errors to statuses.
package handler

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/willbiddy/recipe-to-notion/internal/api"
	"github.com/willbiddy/recipe-to-notion/internal/normalizer"
	"github.com/willbiddy/recipe-to-notion/internal/types"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "scrape"})

// Handler is the entry point for Vercel's Go runtime.
func Handler(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
	case http.MethodPost:
		handleScrape(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed: "+r.Method, "MethodNotAllowed")
	}
}

func handleScrape(w http.ResponseWriter, r *http.Request) {
	var req types.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status, errType, msg := api.ClassifyBindError(err)
		writeError(w, status, msg, errType)
		return
	}
	if req.URL == "" || req.HTML == "" {
		writeError(w, http.StatusBadRequest, "missing required fields: 'url' and 'html'", api.ErrTypeValidation)
		return
	}

	record, err := normalizer.FromHTML(req.HTML, req.URL)
	if err != nil {
		status, errType := api.Classify(err)
		logger.Warn("scrape failed", "url", req.URL, "errorType", errType, "err", err)
		writeError(w, status, err.Error(), errType)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("encoding response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, errType string) {
	writeJSON(w, status, types.ErrorResponse{Error: message, ErrorType: errType})
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
