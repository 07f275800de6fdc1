package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/recharge-client/internal/constants"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
	"github.com/fivetwenty-io/recharge-client/pkg/rechargeclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		token   string
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an access token",
		Long: `Verify an access token against GET /token_information and store it in the
config file. The token is read from --token, or prompted for without echo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				var err error

				token, err = promptToken(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}

			if token == "" {
				return constants.ErrTokenRequired
			}

			config := loadConfig()
			config.AccessToken = token

			if baseURL != "" {
				config.BaseURL = baseURL
			}

			clientConfig, err := buildClientConfig(config)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			client, err := rechargeclient.New(ctx, clientConfig)
			if err != nil {
				return fmt.Errorf("failed to verify access token: %w", err)
			}

			info, err := client.TokenInformation().Get(ctx)
			if err != nil {
				return fmt.Errorf("failed to read token information: %w", err)
			}

			config.TokenName = info.Name
			config.Scopes = scopeNames(client.Scopes())

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Logged in as %s with %d scopes", info.Name, len(config.Scopes)))

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "access token (prompted when omitted)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.AccessToken = ""
			config.TokenName = ""
			config.Scopes = nil

			err := saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Logged out"))

			return nil
		},
	}
}

// promptToken reads a token without echo from a terminal, or one line otherwise.
func promptToken(in io.Reader, out io.Writer) (string, error) {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		_, _ = fmt.Fprint(out, "Access token: ")

		secret, err := term.ReadPassword(int(file.Fd()))

		_, _ = fmt.Fprintln(out)

		if err != nil {
			return "", fmt.Errorf("failed to read access token: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read access token: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func scopeNames(scopes []recharge.Scope) []string {
	names := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		names = append(names, string(scope))
	}

	return names
}
