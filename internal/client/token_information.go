package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// TokenInformationClient implements recharge.TokenInformationClient. It
// needs no scope, so the client can introspect before the scope guard
// knows anything.
type TokenInformationClient struct {
	resource
}

// NewTokenInformationClient creates a new token information client for version.
func NewTokenInformationClient(transport *http.Client, version recharge.Version) *TokenInformationClient {
	return &TokenInformationClient{
		resource: newResource(transport, nil, version, "token_information", "token_information"),
	}
}

// Get implements recharge.TokenInformationClient.Get.
func (c *TokenInformationClient) Get(ctx context.Context) (*recharge.TokenInformation, error) {
	object, err := c.object(ctx, call{
		action:   "getting token information",
		method:   nethttp.MethodGet,
		template: "/token_information",
		path:     "/token_information",
		key:      "token_information",
		unscoped: true,
	})
	if err != nil {
		return nil, err
	}

	var info recharge.TokenInformation

	err = object.Decode(&info)
	if err != nil {
		return nil, fmt.Errorf("parsing token information: %w", err)
	}

	return &info, nil
}

// fetchGranted returns the scopes granted to accessToken, reading and
// filling cache when it is set.
func fetchGranted(ctx context.Context, tokens *TokenInformationClient, cache recharge.Cache, accessToken string, ttl time.Duration) ([]recharge.Scope, error) {
	if cache != nil {
		info, err := recharge.LoadTokenInformation(ctx, cache, accessToken)
		if err == nil {
			return info.Scopes, nil
		}
	}

	info, err := tokens.Get(ctx)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		// A cache failure only costs a later introspection.
		_ = recharge.StoreTokenInformation(ctx, cache, accessToken, info, ttl)
	}

	return info.Scopes, nil
}
