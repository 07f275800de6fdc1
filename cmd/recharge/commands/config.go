package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/recharge-client/internal/constants"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the Recharge CLI configuration stored in ~/.recharge/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration. The access token is masked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.AccessToken = maskSecret(config.AccessToken)

			done, err := encodeStructured(cmd.OutOrStdout(), outputFormat(), config)
			if done {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")
			_ = table.Append("Access Token", orNotAvailable(config.AccessToken))
			_ = table.Append("Token Name", orNotAvailable(config.TokenName))
			_ = table.Append("Base URL", orDefault(config.BaseURL, recharge.DefaultBaseURL))
			_ = table.Append("Output", orDefault(config.Output, constants.FormatTable))
			_ = table.Append("No Color", strconv.FormatBool(config.NoColor))
			_ = table.Append("Retry Max", orDefault(intValue(config.RetryMax), strconv.Itoa(recharge.DefaultRetryMax)))
			_ = table.Append("Requests/s", orNotAvailable(floatValue(config.RequestsPerSecond)))
			_ = table.Append("Cache", orDefault(config.Cache, string(recharge.CacheTypeNone)))
			_ = table.Append("NATS URL", orDefault(config.NATSURL, constants.DefaultNATSURL))
			_ = table.Append("Scopes", orNotAvailable(strings.Join(config.Scopes, ", ")))

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Keys: base_url, output, no_color, retry_max,
requests_per_second, cache, nats_url. Use 'recharge login' to change the token.`,
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Set %s to %s", key, value))

			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ConfigPath()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
}

// setConfigValue validates and applies one KEY VALUE pair.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case KeyBaseURL:
		config.BaseURL = value
	case KeyOutput:
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnknownFormat, value)
		}
	case KeyNoColor:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", constants.ErrInvalidConfigValue, key)
		}

		config.NoColor = parsed
	case KeyRetryMax:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", constants.ErrInvalidConfigValue, key)
		}

		config.RetryMax = parsed
	case KeyRequestsPerSecond:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || parsed < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", constants.ErrInvalidConfigValue, key)
		}

		config.RequestsPerSecond = parsed
	case KeyCache:
		cacheType, err := recharge.ParseCacheType(value)
		if err != nil {
			return err
		}

		config.Cache = string(cacheType)
	case KeyNATSURL:
		config.NATSURL = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func orNotAvailable(value string) string {
	return orDefault(value, constants.NotAvailable)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func intValue(value int) string {
	if value == 0 {
		return ""
	}

	return strconv.Itoa(value)
}

func floatValue(value float64) string {
	if value == 0 {
		return ""
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}
