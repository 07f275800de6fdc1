// Package recharge provides types, interfaces, and helpers for working with
// the Recharge subscription API.
//
// # Overview
//
// The recharge package defines the resource client interfaces (e.g.,
// ChargesClient, SubscriptionsClient, V1ShopClient), the pass-through record
// type Object, the 27 OAuth scopes, the two API versions and the error
// taxonomy. A concrete implementation is provided by the rechargeclient
// package, which wires configuration, the retrying transport and the scope
// guard. Most consumers import rechargeclient to construct a client and then
// use the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/recharge-client/pkg/recharge"
//	  "github.com/fivetwenty-io/recharge-client/pkg/rechargeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := rechargeclient.New(ctx, &recharge.Config{AccessToken: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  subs, err := cli.Subscriptions().List(ctx, recharge.NewQuery().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = subs
//	}
//
// # Records
//
// Payloads are returned as Object (a decoded JSON object). Decode maps one
// into a typed struct and DecodeAll maps a listing:
//
//	type Charge struct {
//	  ID     int    `json:"id"`
//	  Status string `json:"status"`
//	}
//	charges, err := recharge.DecodeAll[Charge](objects)
//
// # Versions and pagination
//
// Resource clients on the Client use 2021-11, where listings are walked with
// the next_cursor field. Client.V1() exposes the 2021-01 clients, walked with
// the Link header. Every listing offers ListAll, which follows every page.
//
// # Scopes
//
// The scopes granted to the token are read once from GET /token_information.
// A call whose endpoint needs a scope the token lacks fails locally with an
// *AuthorizationError, without any network traffic. Token information can
// be shared between processes through a Cache, e.g. NATSKVCache.
//
// # Errors
//
// All errors match sentinels with errors.Is:
//
//	_, err := cli.Charges().Get(ctx, "123")
//	switch {
//	case recharge.IsNotFound(err):
//	case recharge.IsRateLimited(err):
//	case errors.Is(err, recharge.ErrAuthorization):
//	}
//
// 429 and 5xx responses are retried with backoff (Config.RetryMax,
// Config.RetryDelay, Config.Backoff) before MaxRetriesExceededError is
// returned.
//
// # Interceptors and metrics
//
// InterceptorChain runs request and response hooks once per logical call.
// LoggingInterceptor, HeaderInterceptor, RateLimitInterceptor and
// MetricsCollector are provided. Interceptors never see the access token.
package recharge
