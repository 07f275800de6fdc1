package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewStoreCommand creates the store command.
func NewStoreCommand() *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:     "store",
		Aliases: []string{"shop"},
		Short:   "Show store settings",
		Long:    "Display the store settings from GET /store, or GET /shop with --legacy",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			getStore := client.Store().Get
			if legacy {
				getStore = client.V1().Shop().Get
			}

			store, err := getStore(ctx)
			if err != nil {
				return fmt.Errorf("failed to get store: %w", err)
			}

			return renderObject(cmd.OutOrStdout(), outputFormat(), store)
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy", false, "use the 2021-01 shop endpoint")

	return cmd
}
