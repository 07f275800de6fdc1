package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/fivetwenty-io/recharge-client/internal/constants"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

const progressBarWidth = 64

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var (
		file     string
		filters  []string
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "export RESOURCE",
		Short: "Export every record of a resource as JSON Lines",
		Long: `Follow every page of a resource and write one JSON object per line.

Valid resources: ` + fmt.Sprint(resourceNames()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := findResourceGroup(args[0])
			if err != nil {
				return err
			}

			if file == "" {
				return constants.ErrFileRequired
			}

			query, err := parseQuery(filters, constants.MaxPageSize)
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

			objects, err := group.lister(client).ListAll(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", group.name, err)
			}

			var bar *mpb.Bar

			var progressBar *mpb.Progress

			if progress && len(objects) > 0 {
				progressBar = mpb.New(mpb.WithOutput(cmd.ErrOrStderr()), mpb.WithWidth(progressBarWidth))
				bar = progressBar.AddBar(int64(len(objects)),
					mpb.PrependDecorators(
						decor.Name(group.name, decor.WCSyncSpaceR),
						decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
					),
					mpb.AppendDecorators(
						decor.OnComplete(decor.Percentage(decor.WCSyncSpace), "done"),
					),
				)
			}

			err = writeJSONLines(file, objects, func() {
				if bar != nil {
					bar.Increment()
				}
			})

			if bar != nil {
				if err != nil {
					bar.Abort(false)
				}

				progressBar.Wait()
			}

			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Exported %d %s to %s", len(objects), group.name, file))

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "output file (JSON Lines)")
	cmd.Flags().StringArrayVarP(&filters, "query", "q", nil, "filter as key=value (repeatable)")
	cmd.Flags().BoolVar(&progress, "progress", true, "show a progress bar")

	return cmd
}

// writeJSONLines writes one object per line, calling written after each.
func writeJSONLines(path string, objects []recharge.Object, written func()) error {
	// #nosec G304 -- the path is chosen by the user running the CLI
	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.ExportFilePerm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)

	for _, object := range objects {
		err = encoder.Encode(object)
		if err != nil {
			_ = file.Close()

			return fmt.Errorf("failed to write record %s: %w", object.Field("id"), err)
		}

		written()
	}

	err = writer.Flush()
	if err != nil {
		_ = file.Close()

		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
