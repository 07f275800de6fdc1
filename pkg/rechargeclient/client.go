// Package rechargeclient provides the main entry point for creating Recharge API clients
package rechargeclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/recharge-client/internal/client"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// New creates a new Recharge API client. The token is introspected once to
// learn its scopes unless config.GrantedScopes is set.
func New(ctx context.Context, config *recharge.Config) (recharge.Client, error) {
	if config == nil {
		return nil, recharge.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	// Use the internal client implementation
	rechargeClient, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return rechargeClient, nil
}

// normalizeBaseURL trims the trailing slash and defaults the scheme to https.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return recharge.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithToken creates a new client for the production API with an access token.
func NewWithToken(ctx context.Context, token string) (recharge.Client, error) {
	return New(ctx, &recharge.Config{
		AccessToken: token,
	})
}

// NewWithScopes creates a client that trusts scopes instead of introspecting
// the token. Calls needing other scopes fail locally.
func NewWithScopes(ctx context.Context, token string, scopes ...recharge.Scope) (recharge.Client, error) {
	if scopes == nil {
		scopes = []recharge.Scope{}
	}

	return New(ctx, &recharge.Config{
		AccessToken:   token,
		GrantedScopes: scopes,
	})
}
