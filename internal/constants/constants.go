package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files. The file
	// holds the access token.
	ConfigFilePerm = 0600

	// ExportFilePerm is the permission for files written by export.
	ExportFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under the user's home holding the CLI config.
	ConfigDirName = ".recharge"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file format understood by viper.
	ConfigFileType = "yml"

	// EnvPrefix prefixes environment overrides, e.g. RECHARGE_ACCESS_TOKEN.
	EnvPrefix = "RECHARGE"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the page size used by list commands.
	DefaultPageSize = 50

	// MaxPageSize is the largest page the API accepts.
	MaxPageSize = 250
)

// Argument counts.
const (
	// MinimumArgumentCount is the argument count of KEY VALUE commands.
	MinimumArgumentCount = 2
)

// UI and display constants.
const (
	// NotAvailable is shown for empty values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in output.
	MaskedSecret = "***"

	// MaskedSuffixLength is how many trailing characters of a secret stay visible.
	MaskedSuffixLength = 4
)

// Boolean string constants.
const (
	// BooleanTrue represents true.
	BooleanTrue = "true"

	// BooleanFalse represents false.
	BooleanFalse = "false"
)

// Format constants.
const (
	// FormatTable renders a table.
	FormatTable = "table"

	// FormatJSON renders indented JSON.
	FormatJSON = "json"

	// FormatYAML renders YAML.
	FormatYAML = "yaml"

	// JSONIndent is the indentation of JSON output.
	JSONIndent = "  "
)

// Event relay defaults.
const (
	// DefaultNATSURL is used by events relay when no URL is configured.
	DefaultNATSURL = "nats://127.0.0.1:4222"

	// NATSClientName identifies CLI connections on the NATS server.
	NATSClientName = "recharge-cli"
)
