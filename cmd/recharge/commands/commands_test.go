package commands_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/recharge-client/cmd/recharge/commands"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	return names
}

func TestNewResourceCommands(t *testing.T) {
	t.Parallel()

	cmds := commands.NewResourceCommands()
	require.Len(t, cmds, 12)

	byName := make(map[string]*cobra.Command, len(cmds))
	for _, cmd := range cmds {
		byName[cmd.Name()] = cmd
	}

	for _, name := range []string{"addresses", "charges", "customers", "discounts", "onetimes", "orders",
		"payment-methods", "plans", "products", "subscriptions", "webhooks"} {
		cmd, ok := byName[name]
		require.True(t, ok, name)
		assert.ElementsMatch(t, []string{"list", "get"}, subcommandNames(cmd), name)
	}

	events := byName["events"]
	require.NotNil(t, events)
	assert.ElementsMatch(t, []string{"list", "relay"}, subcommandNames(events))

	relay := findSubcommand(events, "relay")
	require.NotNil(t, relay)
	assert.NotNil(t, relay.Flags().Lookup("nats-url"))
	assert.NotNil(t, relay.Flags().Lookup("subject-prefix"))

	list := findSubcommand(byName["charges"], "list")
	require.NotNil(t, list)
	assert.NotNil(t, list.Flags().Lookup("all"))
	assert.NotNil(t, list.Flags().Lookup("limit"))
	assert.NotNil(t, list.Flags().Lookup("query"))

	assert.Contains(t, byName["subscriptions"].Aliases, "subs")
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.ElementsMatch(t, []string{"show", "set", "path"}, subcommandNames(cmd))
}

func TestNewLoginAndLogoutCommands(t *testing.T) {
	t.Parallel()

	login := commands.NewLoginCommand()
	assert.Equal(t, "login", login.Use)
	assert.NotNil(t, login.Flags().Lookup("token"))
	assert.NotNil(t, login.Flags().Lookup("base-url"))

	logout := commands.NewLogoutCommand()
	assert.Equal(t, "logout", logout.Use)
}

func TestNewExportCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewExportCommand()
	assert.Equal(t, "export RESOURCE", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("file"))
	assert.Contains(t, cmd.Long, "subscriptions")
	require.Error(t, cmd.Args(cmd, nil))
}

func TestNewStoreAndTokenCommands(t *testing.T) {
	t.Parallel()

	store := commands.NewStoreCommand()
	assert.Equal(t, []string{"shop"}, store.Aliases)
	assert.NotNil(t, store.Flags().Lookup("legacy"))

	assert.Equal(t, "token", commands.NewTokenCommand().Use)
	assert.Equal(t, "version", commands.NewVersionCommand("1.0.0", "abc", "today").Use)
}
