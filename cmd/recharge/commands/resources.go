package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/recharge-client/internal/constants"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// resourceGroup describes a listable 2021-11 resource exposed as a command group.
type resourceGroup struct {
	name    string
	aliases []string
	short   string
	columns []string

	lister func(client recharge.Client) recharge.Lister
	// getter is nil for resources without a get endpoint.
	getter func(client recharge.Client) recharge.Getter
}

func resourceGroups() []resourceGroup {
	return []resourceGroup{
		{
			name:    "addresses",
			aliases: []string{"address"},
			short:   "Manage customer addresses",
			columns: []string{"id", "customer_id", "address1", "city", "zip", "country_code"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Addresses() },
			getter:  func(c recharge.Client) recharge.Getter { return c.Addresses() },
		},
		{
			name:    "charges",
			aliases: []string{"charge"},
			short:   "Manage charges",
			columns: []string{"id", "status", "scheduled_at", "total_price", "currency"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Charges() },
			getter:  func(c recharge.Client) recharge.Getter { return c.Charges() },
		},
		{
			name:    "customers",
			aliases: []string{"customer"},
			short:   "Manage customers",
			columns: []string{"id", "email", "first_name", "last_name", "subscriptions_active_count"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Customers() },
			getter:  func(c recharge.Client) recharge.Getter { return c.Customers() },
		},
		{
			name:    "discounts",
			aliases: []string{"discount"},
			short:   "Manage discounts",
			columns: []string{"id", "code", "status", "value", "value_type"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Discounts() },
			getter:  func(c recharge.Client) recharge.Getter { return c.Discounts() },
		},
		{
			name:    "events",
			aliases: []string{"event"},
			short:   "Read the store event log",
			columns: []string{"id", "object_type", "verb", "created_at"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Events() },
		},
		{
			name:    "onetimes",
			aliases: []string{"onetime"},
			short:   "Manage one-time products",
			columns: []string{"id", "product_title", "price", "quantity", "next_charge_scheduled_at"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Onetimes() },
			getter:  func(c recharge.Client) recharge.Getter { return c.Onetimes() },
		},
		{
			name:    "orders",
			aliases: []string{"order"},
			short:   "Manage orders",
			columns: []string{"id", "status", "scheduled_at", "total_price", "created_at"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Orders() },
			getter:  func(c recharge.Client) recharge.Getter { return c.Orders() },
		},
		{
			name:    "payment-methods",
			aliases: []string{"payment-method", "pm"},
			short:   "Manage payment methods",
			columns: []string{"id", "customer_id", "payment_type", "processor_name", "default"},
			lister:  func(c recharge.Client) recharge.Lister { return c.PaymentMethods() },
			getter:  func(c recharge.Client) recharge.Getter { return c.PaymentMethods() },
		},
		{
			name:    "plans",
			aliases: []string{"plan"},
			short:   "Manage selling plans",
			columns: []string{"id", "title", "type", "external_product_id"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Plans() },
			getter:  func(c recharge.Client) recharge.Getter { return c.Plans() },
		},
		{
			name:    "products",
			aliases: []string{"product"},
			short:   "Manage products",
			columns: []string{"id", "title", "vendor", "external_product_id"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Products() },
			getter:  func(c recharge.Client) recharge.Getter { return c.Products() },
		},
		{
			name:    "subscriptions",
			aliases: []string{"subscription", "subs"},
			short:   "Manage subscriptions",
			columns: []string{"id", "status", "product_title", "price", "next_charge_scheduled_at"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Subscriptions() },
			getter:  func(c recharge.Client) recharge.Getter { return c.Subscriptions() },
		},
		{
			name:    "webhooks",
			aliases: []string{"webhook"},
			short:   "Manage webhooks",
			columns: []string{"id", "topic", "address"},
			lister:  func(c recharge.Client) recharge.Lister { return c.Webhooks() },
			getter:  func(c recharge.Client) recharge.Getter { return c.Webhooks() },
		},
	}
}

func findResourceGroup(name string) (resourceGroup, error) {
	for _, group := range resourceGroups() {
		if group.name == name {
			return group, nil
		}

		for _, alias := range group.aliases {
			if alias == name {
				return group, nil
			}
		}
	}

	return resourceGroup{}, fmt.Errorf("%w: %s (valid: %s)", constants.ErrUnknownResource, name, strings.Join(resourceNames(), ", "))
}

func resourceNames() []string {
	groups := resourceGroups()

	names := make([]string, 0, len(groups))
	for _, group := range groups {
		names = append(names, group.name)
	}

	sort.Strings(names)

	return names
}

// NewResourceCommands creates one command group per resource.
func NewResourceCommands() []*cobra.Command {
	groups := resourceGroups()

	commands := make([]*cobra.Command, 0, len(groups))
	for _, group := range groups {
		commands = append(commands, newResourceCommand(group))
	}

	return commands
}

func newResourceCommand(group resourceGroup) *cobra.Command {
	cmd := &cobra.Command{
		Use:     group.name,
		Aliases: group.aliases,
		Short:   group.short,
		Long:    fmt.Sprintf("List and inspect Recharge %s", strings.ReplaceAll(group.name, "-", " ")),
	}

	cmd.AddCommand(newResourceListCommand(group))

	if group.getter != nil {
		cmd.AddCommand(newResourceGetCommand(group))
	}

	if group.name == "events" {
		cmd.AddCommand(newEventsRelayCommand())
	}

	return cmd
}

func newResourceListCommand(group resourceGroup) *cobra.Command {
	var (
		all     bool
		limit   int
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + group.name,
		Long:  fmt.Sprintf("List %s, one page by default or every page with --all", group.name),
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

			lister := group.lister(client)

			var objects []recharge.Object
			if all {
				objects, err = lister.ListAll(ctx, query)
			} else {
				objects, err = lister.List(ctx, query)
			}

			if err != nil {
				return fmt.Errorf("failed to list %s: %w", group.name, err)
			}

			return renderObjects(cmd.OutOrStdout(), outputFormat(), objects, group.columns)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "follow every page")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "page size")
	cmd.Flags().StringArrayVarP(&filters, "query", "q", nil, "filter as key=value (repeatable)")

	return cmd
}

func newResourceGetCommand(group resourceGroup) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get one record from " + group.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			object, err := group.getter(client).Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get %s %s: %w", group.name, args[0], err)
			}

			return renderObject(cmd.OutOrStdout(), outputFormat(), object)
		},
	}
}

// parseQuery builds a query from key=value pairs.
func parseQuery(pairs []string, limit int) (recharge.Query, error) {
	if limit < 1 || limit > constants.MaxPageSize {
		return nil, constants.ErrInvalidLimit
	}

	query := recharge.NewQuery().WithLimit(limit)

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidQueryFormat, pair)
		}

		query.With(key, value)
	}

	return query, nil
}
