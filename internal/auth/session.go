package auth

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// DefaultUserAgent identifies the client on the wire.
const DefaultUserAgent = "recharge-client-go/1.0"

// Static errors for err113 compliance.
var (
	ErrAccessTokenRequired = errors.New("access token is required")
)

// Session holds the credential and the default headers of every request.
// The credential never changes after construction. The default version may
// be changed with SetVersion; transport calls that carry their own version
// ignore it.
type Session struct {
	accessToken string
	userAgent   string

	mutex   sync.RWMutex
	version recharge.Version
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionUserAgent overrides the User-Agent header.
func WithSessionUserAgent(userAgent string) SessionOption {
	return func(s *Session) {
		if userAgent != "" {
			s.userAgent = userAgent
		}
	}
}

// WithSessionVersion sets the default version.
func WithSessionVersion(version recharge.Version) SessionOption {
	return func(s *Session) {
		if version.Valid() {
			s.version = version
		}
	}
}

// NewSession creates a session for accessToken.
func NewSession(accessToken string, opts ...SessionOption) (*Session, error) {
	if accessToken == "" {
		return nil, ErrAccessTokenRequired
	}

	session := &Session{
		accessToken: accessToken,
		userAgent:   DefaultUserAgent,
		version:     recharge.DefaultVersion,
	}

	for _, opt := range opts {
		opt(session)
	}

	return session, nil
}

// SetVersion changes the default version.
func (s *Session) SetVersion(version recharge.Version) error {
	if !version.Valid() {
		return fmt.Errorf("%w: %q", recharge.ErrUnknownVersion, string(version))
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.version = version

	return nil
}

// Version returns the default version.
func (s *Session) Version() recharge.Version {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.version
}

// Headers returns a fresh header set for one request sent with version.
func (s *Session) Headers(version recharge.Version) http.Header {
	if version == "" {
		version = s.Version()
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("Content-Type", "application/json")
	headers.Set("X-Recharge-Access-Token", s.accessToken)
	headers.Set("X-Recharge-Version", string(version))
	headers.Set("User-Agent", s.userAgent)

	return headers
}

// AccessToken returns the credential.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// String implements fmt.Stringer without exposing the credential.
func (s *Session) String() string {
	return fmt.Sprintf("Session{version: %s, token: %s}", s.Version(), recharge.RedactedValue)
}
