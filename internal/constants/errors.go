package constants

import "errors"

// Authentication errors.
var (
	ErrNotLoggedIn   = errors.New("no access token configured, run 'recharge login' or set RECHARGE_ACCESS_TOKEN")
	ErrTokenRequired = errors.New("access token is required")
)

// Configuration errors.
var (
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidConfigValue = errors.New("invalid configuration value")
	ErrUnknownFormat      = errors.New("unknown output format")
)

// Command errors.
var (
	ErrUnknownResource    = errors.New("unknown resource")
	ErrInvalidQueryFormat = errors.New("invalid query format, expected key=value")
	ErrFileRequired       = errors.New("--file is required")
	ErrInvalidLimit       = errors.New("limit must be between 1 and 250")
)
