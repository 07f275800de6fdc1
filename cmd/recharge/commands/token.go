package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/recharge-client/internal/constants"
)

// NewTokenCommand creates the token command.
func NewTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Show access token information",
		Long:  "Display the application and scopes of the configured access token, read from GET /token_information",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			info, err := client.TokenInformation().Get(ctx)
			if err != nil {
				return fmt.Errorf("failed to read token information: %w", err)
			}

			done, err := encodeStructured(cmd.OutOrStdout(), outputFormat(), info)
			if done {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")
			_ = table.Append("Name", orNotAvailable(info.Name))
			_ = table.Append("Contact Email", orNotAvailable(info.ContactEmail))

			if info.Client != nil {
				_ = table.Append("Client", orNotAvailable(info.Client.Name))
			}

			_ = table.Append("Token", maskSecret(loadConfig().AccessToken))
			_ = table.Append("Scopes", orDefault(strings.Join(scopeNames(info.Scopes), ", "), constants.NotAvailable))

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
