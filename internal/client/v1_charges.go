package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// V1ChargesClient implements recharge.V1ChargesClient.
type V1ChargesClient struct {
	*ChargesClient
}

// NewV1ChargesClient creates a new 2021-01 charges client.
func NewV1ChargesClient(transport *http.Client, guard *auth.ScopeGuard) *V1ChargesClient {
	return &V1ChargesClient{ChargesClient: NewChargesClient(transport, guard, recharge.Version202101)}
}

// Count implements recharge.V1ChargesClient.Count.
func (c *V1ChargesClient) Count(ctx context.Context, query recharge.Query) (int, error) {
	return c.countAll(ctx, query, recharge.ScopeReadOrders)
}

// ChangeNextChargeDate implements recharge.V1ChargesClient.ChangeNextChargeDate.
func (c *V1ChargesClient) ChangeNextChargeDate(ctx context.Context, chargeID string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "changing next charge date",
		method:   nethttp.MethodPut,
		template: c.memberTemplate("change_next_charge_date"),
		path:     c.memberPath(chargeID, "change_next_charge_date"),
		body:     body,
		key:      c.singular,
		scopes:   []recharge.Scope{recharge.ScopeWriteOrders},
	})
}
