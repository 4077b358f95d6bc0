package expenseapi

import (
	"encoding/json"
	"io"
	"net/http"
)

// ErrorKind classifies API failures so callers can react without
// matching on status codes or message text.
type ErrorKind string

const (
	// KindValidation covers malformed or rejected request payloads.
	KindValidation ErrorKind = "validation"
	// KindAuthentication covers missing or invalid credentials.
	KindAuthentication ErrorKind = "authentication"
	// KindAuthorization covers operations on records the caller does not own.
	KindAuthorization ErrorKind = "authorization"
	// KindNotFound covers lookups of records that do not exist.
	KindNotFound ErrorKind = "not_found"
	// KindRateLimited covers throttled requests.
	KindRateLimited ErrorKind = "rate_limited"
	// KindInternal covers transport failures and unexpected server errors.
	KindInternal ErrorKind = "internal"
)

// APIError is an error returned by the API or the transport beneath it.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Code       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return e.Message + " (" + e.Code + ")"
	}
	return e.Message
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == kind
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{
		Kind:       kindForStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		apiErr.Message = parsed.Error
		apiErr.Code = parsed.Code
	}
	return apiErr
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest, http.StatusConflict:
		return KindValidation
	case http.StatusUnauthorized:
		return KindAuthentication
	case http.StatusForbidden:
		return KindAuthorization
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindInternal
	}
}
