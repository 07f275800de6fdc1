package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/recharge-client/internal/constants"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

func outputFormat() string {
	format := viper.GetString(KeyOutput)
	if format == "" {
		return constants.FormatTable
	}

	return format
}

// encodeStructured writes value as JSON or YAML. It reports false for the
// table format.
func encodeStructured(writer io.Writer, format string, value interface{}) (bool, error) {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", constants.JSONIndent)

		return true, encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(writer)
		defer func() { _ = encoder.Close() }()

		return true, encoder.Encode(value)
	case constants.FormatTable:
		return false, nil
	default:
		return true, fmt.Errorf("%w: %s", constants.ErrUnknownFormat, format)
	}
}

// renderObjects prints a listing, one table row per record.
func renderObjects(writer io.Writer, format string, objects []recharge.Object, columns []string) error {
	if objects == nil {
		objects = []recharge.Object{}
	}

	done, err := encodeStructured(writer, format, objects)
	if done {
		return err
	}

	if len(objects) == 0 {
		_, _ = fmt.Fprintln(writer, color.YellowString("No records found"))

		return nil
	}

	table := tablewriter.NewWriter(writer)
	table.Header(toRow(headers(columns))...)

	for _, object := range objects {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, cellValue(object, column))
		}

		_ = table.Append(toRow(row)...)
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderObject prints one record as a property table.
func renderObject(writer io.Writer, format string, object recharge.Object) error {
	done, err := encodeStructured(writer, format, object)
	if done {
		return err
	}

	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(writer)
	table.Header("Property", "Value")

	for _, key := range keys {
		_ = table.Append(key, cellValue(object, key))
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func cellValue(object recharge.Object, key string) string {
	value := object.Field(key)
	if value == "" {
		return constants.NotAvailable
	}

	if key == "status" {
		return colorStatus(value)
	}

	return value
}

// colorStatus highlights record states the way store admins scan them.
func colorStatus(status string) string {
	switch strings.ToLower(status) {
	case "active", "success", "queued", "processed", "enabled":
		return color.GreenString(status)
	case "error", "failed", "cancelled", "refunded", "expired":
		return color.RedString(status)
	case "skipped", "pending", "paused", "partially_refunded":
		return color.YellowString(status)
	default:
		return status
	}
}

func headers(columns []string) []string {
	result := make([]string, 0, len(columns))
	for _, column := range columns {
		result = append(result, strings.ToUpper(strings.ReplaceAll(column, "_", " ")))
	}

	return result
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, 0, len(values))
	for _, value := range values {
		row = append(row, value)
	}

	return row
}
