package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/willbiddy/recipe-to-notion/internal/normalizer"
)

// Error type names reported to callers in the errorType field.
const (
	ErrTypeJSONDecode = "JSONDecodeError"
	ErrTypeValidation = "ValidationError"
	ErrTypeScraping   = "ScrapingError"
	ErrTypeInternal   = "InternalError"
)

const missingFieldsMsg = "missing required fields: 'url' and 'html'"

// ClassifyBindError maps a request-decoding failure to a status code,
// an errorType and a caller-facing message. Malformed JSON is reported
// as a decode failure, a structurally valid body with missing fields as
// a validation failure.
func ClassifyBindError(err error) (int, string, string) {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return http.StatusBadRequest, ErrTypeJSONDecode, "invalid JSON: " + err.Error()
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, ErrTypeJSONDecode, "invalid JSON: empty or truncated body"
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest, ErrTypeValidation, missingFieldsMsg
	}
	return http.StatusBadRequest, ErrTypeValidation, err.Error()
}

// Classify maps a normalization failure to a status code and errorType.
// Extraction failures are the caller's problem (unusable document);
// anything unclassified is a server bug and reports as 500 on both
// transports.
func Classify(err error) (int, string) {
	var extractionErr *normalizer.ExtractionError
	if errors.As(err, &extractionErr) {
		return http.StatusBadRequest, ErrTypeScraping
	}
	return http.StatusInternalServerError, ErrTypeInternal
}
