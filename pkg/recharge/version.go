package recharge

import (
	"errors"
	"fmt"
)

// Version selects the Recharge API version sent in the X-Recharge-Version header.
// The version also decides the response envelope conventions and the
// pagination scheme used by list endpoints.
type Version string

const (
	// Version202101 is the legacy API. List endpoints advertise the next page
	// through a Link response header.
	Version202101 Version = "2021-01"

	// Version202111 is the current API. List endpoints return a next_cursor
	// token in the response body.
	Version202111 Version = "2021-11"

	// DefaultVersion is used when neither the request nor the session names one.
	DefaultVersion = Version202111
)

// Static errors for err113 compliance.
var (
	ErrUnknownVersion = errors.New("unknown API version")
)

// Versions returns every API version the client understands.
func Versions() []Version {
	return []Version{Version202101, Version202111}
}

// Valid reports whether v is a known API version.
func (v Version) Valid() bool {
	switch v {
	case Version202101, Version202111:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return string(v)
}

// ParseVersion converts a user supplied value into a Version. The short
// aliases "v1" and "v2" are accepted as well.
func ParseVersion(value string) (Version, error) {
	switch value {
	case "v1", string(Version202101):
		return Version202101, nil
	case "v2", string(Version202111):
		return Version202111, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVersion, value)
	}
}
