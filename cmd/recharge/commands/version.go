package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display the CLI build and the Recharge API versions it speaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version     string   `json:"version"      yaml:"version"`
				Commit      string   `json:"commit"       yaml:"commit"`
				Built       string   `json:"built"        yaml:"built"`
				APIVersions []string `json:"api_versions" yaml:"api_versions"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			for _, apiVersion := range recharge.Versions() {
				versionInfo.APIVersions = append(versionInfo.APIVersions, apiVersion.String())
			}

			done, err := encodeStructured(cmd.OutOrStdout(), outputFormat(), versionInfo)
			if done {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")
			_ = table.Append("Version", version)
			_ = table.Append("Commit", commit)
			_ = table.Append("Built", date)
			_ = table.Append("API Versions", fmt.Sprint(versionInfo.APIVersions))

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
