package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// AccessTokenHeader carries the credential on every request.
const AccessTokenHeader = "X-Recharge-Access-Token"

// VersionHeader selects the API version of a request.
const VersionHeader = "X-Recharge-Version"

// RateLimitHeader reports the remaining call budget, e.g. "3/40".
const RateLimitHeader = "X-Recharge-Limit"

var sensitiveHeaders = []string{
	AccessTokenHeader,
	"Authorization",
	"Cookie",
	"Set-Cookie",
}

var sensitiveQueryParams = []string{
	"access_token",
	"token",
}

// RedactHeaders returns a copy of headers with credentials and cookies
// replaced by recharge.RedactedValue.
func RedactHeaders(headers http.Header) http.Header {
	redacted := headers.Clone()
	if redacted == nil {
		return http.Header{}
	}

	for _, name := range sensitiveHeaders {
		if _, ok := redacted[http.CanonicalHeaderKey(name)]; ok {
			redacted.Set(name, recharge.RedactedValue)
		}
	}

	return redacted
}

// RedactURL replaces credential query parameters in rawURL.
func RedactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	changed := false

	for _, name := range sensitiveQueryParams {
		if query.Has(name) {
			query.Set(name, recharge.RedactedValue)

			changed = true
		}
	}

	if parsed.User != nil {
		parsed.User = url.User(recharge.RedactedValue)
		changed = true
	}

	if !changed {
		return rawURL
	}

	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// RedactText removes every occurrence of secret from text.
func RedactText(text, secret string) string {
	if secret == "" {
		return text
	}

	return strings.ReplaceAll(text, secret, recharge.RedactedValue)
}
