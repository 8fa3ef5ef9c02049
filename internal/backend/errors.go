package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError is returned for any non-2xx response. The status is left for the
// caller to interpret.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && len(e.Errors) > 0 {
		msg = strings.Join(e.Errors, ", ")
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from a backend response (transport failure, decode failure).
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

func IsBadRequest(err error) bool {
	return StatusCode(err) == http.StatusBadRequest
}

// BodyMessage returns the "message" field of the error body, if any.
func BodyMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// BodyErrors returns the "errors" field of the error body, if any.
func BodyErrors(err error) []string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Errors
	}
	return nil
}

// errorBody covers the shapes the backend uses: a plain {"message": ...},
// an {"errors": [...]} list, and ASP.NET problem details where "errors" is
// an object of field → messages.
type errorBody struct {
	Message string          `json:"message"`
	Title   string          `json:"title"`
	Errors  json.RawMessage `json:"errors"`
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{Method: method, Path: path, StatusCode: status}

	var eb errorBody
	if len(body) == 0 || json.Unmarshal(body, &eb) != nil {
		return apiErr
	}

	apiErr.Message = eb.Message
	if apiErr.Message == "" {
		apiErr.Message = eb.Title
	}
	apiErr.Errors = flattenErrors(eb.Errors)
	return apiErr
}

func flattenErrors(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var byField map[string][]string
	if err := json.Unmarshal(raw, &byField); err != nil {
		return nil
	}
	keys := make([]string, 0, len(byField))
	for k := range byField {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []string
	for _, k := range keys {
		out = append(out, byField[k]...)
	}
	return out
}
