package recharge

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// RedactedValue replaces credentials in logs and error diagnostics.
const RedactedValue = "REDACTED"

// Sentinel errors for errors.Is() checks.
var (
	// ErrTransport matches failures where no HTTP response was obtained.
	ErrTransport = errors.New("transport error")

	// ErrHTTP matches non-retryable HTTP error responses.
	ErrHTTP = errors.New("HTTP error")

	// ErrMaxRetriesExceeded matches requests that kept failing with 429 or 5xx.
	ErrMaxRetriesExceeded = errors.New("max retries reached")

	// ErrShapeMismatch matches payloads whose key or JSON type differs from the declared one.
	ErrShapeMismatch = errors.New("unexpected response shape")

	// ErrAuthorization matches local scope-guard rejections.
	ErrAuthorization = errors.New("insufficient token scopes")

	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized matches 401 responses.
	ErrUnauthorized = errors.New("invalid or expired access token")

	// ErrForbidden matches 403 responses.
	ErrForbidden = errors.New("access forbidden")

	// ErrUnprocessable matches 422 responses.
	ErrUnprocessable = errors.New("unprocessable entity")

	// ErrRateLimited matches requests that exhausted their retries on 429.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Static errors for err113 compliance.
var (
	ErrAccessTokenRequired = errors.New("access token is required")
	ErrConfigRequired      = errors.New("config is required")
	ErrNotImplemented      = errors.New("not implemented")
)

// TransportError is returned when the request never produced an HTTP
// response: connection failures, timeouts, cancelled contexts or requests
// that could not be built.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// HTTPError is returned for a response outside the retry paths, such as 400,
// 401, 403, 404 or 422. Body holds the decoded JSON error body, or the raw
// text when the body was not JSON. RequestHeaders never carry credentials.
type HTTPError struct {
	StatusCode     int
	Method         string
	URL            string
	Body           interface{}
	RequestHeaders http.Header
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	message := e.Message()
	if message == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode), message)
}

// Message extracts a human readable message from the error body. Recharge
// reports errors as {"errors": ...} or {"error": ...}.
func (e *HTTPError) Message() string {
	return bodyMessage(e.Body)
}

// Is implements errors.Is for sentinel error matching.
func (e *HTTPError) Is(target error) bool {
	if target == ErrHTTP {
		return true
	}

	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusForbidden:
		return target == ErrForbidden
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusUnprocessableEntity:
		return target == ErrUnprocessable
	}

	return false
}

// MaxRetriesExceededError is returned when a request was answered with 429
// or a 5xx status more times than the retry budget allows. No further
// automatic recovery is attempted.
type MaxRetriesExceededError struct {
	Method         string
	URL            string
	Retries        int
	LastStatusCode int
	Body           interface{}
	RequestHeaders http.Header
}

// Error implements the error interface.
func (e *MaxRetriesExceededError) Error() string {
	return fmt.Sprintf("%s %s: max retries reached after %d retries (last status %d)",
		e.Method, e.URL, e.Retries, e.LastStatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *MaxRetriesExceededError) Is(target error) bool {
	if target == ErrMaxRetriesExceeded {
		return true
	}

	return target == ErrRateLimited && e.LastStatusCode == http.StatusTooManyRequests
}

// ShapeMismatchError is returned when the decoded payload does not have the
// JSON type the caller declared. It is never retried.
type ShapeMismatchError struct {
	Key      string
	Expected Shape
	Actual   string
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("expected data to be of type %s, got %s", e.Expected, e.Actual)
	}

	return fmt.Sprintf("expected data under %q to be of type %s, got %s", e.Key, e.Expected, e.Actual)
}

// Is implements errors.Is for sentinel error matching.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// AuthorizationError is returned by the scope guard before any network call
// when the token lacks scopes an endpoint requires.
type AuthorizationError struct {
	Endpoint string
	Missing  []Scope
}

// Error implements the error interface.
func (e *AuthorizationError) Error() string {
	if len(e.Missing) == 0 {
		return "no scopes found for token"
	}

	names := make([]string, 0, len(e.Missing))
	for _, scope := range e.Missing {
		names = append(names, string(scope))
	}

	return fmt.Sprintf("endpoint %s missing scopes: %s", e.Endpoint, strings.Join(names, ", "))
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthorizationError) Is(target error) bool {
	return target == ErrAuthorization
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsForbidden checks if the error is a 403 response or a local scope rejection.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) || errors.Is(err, ErrAuthorization)
}

// IsRateLimited checks if the error is a retry budget exhausted on 429 responses.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsRetryable reports whether err is worth retrying later: a transport
// failure or an exhausted retry budget.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrMaxRetriesExceeded)
}

// StatusCode returns the HTTP status attached to err, or 0.
func StatusCode(err error) int {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	retryErr := &MaxRetriesExceededError{}
	if errors.As(err, &retryErr) {
		return retryErr.LastStatusCode
	}

	return 0
}

func bodyMessage(body interface{}) string {
	switch typed := body.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(typed)
	case map[string]interface{}:
		for _, key := range []string{"errors", "error", "message"} {
			value, ok := typed[key]
			if !ok {
				continue
			}

			return flattenMessage(value)
		}

		return flattenMessage(typed)
	default:
		return flattenMessage(typed)
	}
}

func flattenMessage(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return typed
	case []interface{}:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			parts = append(parts, flattenMessage(item))
		}

		return strings.Join(parts, "; ")
	case map[string]interface{}:
		parts := make([]string, 0, len(typed))
		for key, item := range typed {
			parts = append(parts, key+": "+flattenMessage(item))
		}

		sort.Strings(parts)

		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(typed)
	}
}
