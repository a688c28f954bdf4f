package dto

import (
	"fmt"
	"net/http"

	"github.com/invoiceapi/backend/internal/domain/shared"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Routing, body-limit and rate-limit rejections answer with fixed statuses.
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeNotFound:     http.StatusNotFound,
	shared.CodeInvalidInput: http.StatusBadRequest,
	shared.CodeInvalidSeed:  http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorMode selects how lookup failures are reported on the wire.
type ErrorMode string

const (
	// ErrorModeStrict reports lookup failures with 4xx statuses.
	ErrorModeStrict ErrorMode = "strict"
	// ErrorModeLegacy reports lookup failures with 200 and an error body,
	// which is what existing RPA clients were written against.
	ErrorModeLegacy ErrorMode = "legacy"
)

// ParseErrorMode validates a configured error mode. Empty means strict.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch ErrorMode(s) {
	case "", ErrorModeStrict:
		return ErrorModeStrict, nil
	case ErrorModeLegacy:
		return ErrorModeLegacy, nil
	default:
		return "", fmt.Errorf("unknown error mode %q (want %q or %q)", s, ErrorModeStrict, ErrorModeLegacy)
	}
}

// StatusFor returns the status to send for code under this mode.
// Legacy mode only downgrades the two lookup failure codes.
func (m ErrorMode) StatusFor(code string) int {
	if m == ErrorModeLegacy && (code == shared.CodeNotFound || code == shared.CodeInvalidInput) {
		return http.StatusOK
	}
	return GetHTTPStatus(code)
}
