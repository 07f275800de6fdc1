package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/recharge-client/internal/constants"
	"github.com/fivetwenty-io/recharge-client/internal/relay"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

func newEventsRelayCommand() *cobra.Command {
	var (
		url     string
		prefix  string
		limit   int
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Publish store events to NATS",
		Long: `Walk the store event log and publish every event as JSON to the NATS
subject <prefix>.<object_type>.<verb>, e.g. recharge.events.charge.created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseQuery(filters, limit)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			if url == "" {
				url = natsURL(loadConfig())
			}

			conn, err := nats.Connect(url, nats.Name(constants.NATSClientName))
			if err != nil {
				return fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
			}
			defer conn.Close()

			level := slog.LevelWarn
			if viper.GetBool(KeyVerbose) {
				level = slog.LevelDebug
			}

			logger := recharge.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			eventRelay, err := relay.New(client.Events(), conn,
				relay.WithSubjectPrefix(prefix),
				relay.WithLogger(logger))
			if err != nil {
				return err
			}

			published, err := eventRelay.Run(ctx, query)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Published %d events to %s", published, url))

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "nats-url", "", "NATS server URL (default from config, then "+constants.DefaultNATSURL+")")
	cmd.Flags().StringVar(&prefix, "subject-prefix", relay.DefaultSubjectPrefix, "subject prefix")
	cmd.Flags().IntVar(&limit, "limit", constants.MaxPageSize, "page size")
	cmd.Flags().StringArrayVarP(&filters, "query", "q", nil, "filter as key=value, e.g. created_at_min=2024-01-01")

	return cmd
}
