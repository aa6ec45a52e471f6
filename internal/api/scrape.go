package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/willbiddy/recipe-to-notion/internal/middleware"
	"github.com/willbiddy/recipe-to-notion/internal/normalizer"
	"github.com/willbiddy/recipe-to-notion/internal/types"
)

// ScrapeHandler serves the recipe extraction endpoints.
type ScrapeHandler struct {
	logger *log.Logger
}

func NewScrapeHandler(logger *log.Logger) *ScrapeHandler {
	return &ScrapeHandler{logger: logger}
}

// RegisterRoutes mounts the handler on the router.
func (h *ScrapeHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/scrape", h.Scrape)
	router.GET("/health", h.Health)
}

// Scrape extracts recipe data from the HTML supplied in the request
// body and returns the normalized record.
func (h *ScrapeHandler) Scrape(c *gin.Context) {
	var req types.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status, errType, msg := ClassifyBindError(err)
		c.JSON(status, types.ErrorResponse{Error: msg, ErrorType: errType})
		return
	}

	record, err := normalizer.FromHTML(req.HTML, req.URL)
	if err != nil {
		status, errType := Classify(err)
		h.logger.Warn("scrape failed",
			"url", req.URL,
			"errorType", errType,
			"request_id", c.GetString(middleware.RequestIDKey),
			"err", err)
		c.JSON(status, types.ErrorResponse{Error: err.Error(), ErrorType: errType})
		return
	}

	h.logger.Debug("scrape ok",
		"url", req.URL,
		"title", record.Title,
		"request_id", c.GetString(middleware.RequestIDKey))
	c.JSON(http.StatusOK, record)
}

// Health reports liveness for local tooling.
func (h *ScrapeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
