// Package rechargeclient provides the primary entry point for constructing a
// Recharge API client that implements the recharge.Client interface.
//
// It layers configuration, the retrying HTTP transport and the scope guard on
// top of the resource interfaces defined in the recharge package. Most
// applications import rechargeclient to build a client, then use the
// returned recharge.Client to reach resource clients such as Charges(),
// Subscriptions() or V1().Shop().
//
// Quick start
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
//
//	  cli, err := rechargeclient.NewWithToken(ctx, os.Getenv("RECHARGE_ACCESS_TOKEN"))
//	  if err != nil { log.Fatal(err) }
//
//	  charges, err := cli.Charges().List(ctx, recharge.NewQuery().WithLimit(25))
//	  if err != nil { log.Fatal(err) }
//
//	  for _, charge := range charges {
//	    log.Println(charge.Field("id"), charge.Field("status"))
//	  }
//	}
//
// Construction calls GET /token_information to learn the scopes granted to
// the token. Set Config.Cache to share that result between processes, or
// Config.GrantedScopes to skip it.
//
// Errors
//
// Every call returns errors from the recharge package taxonomy. Use
// errors.Is with recharge.ErrNotFound, recharge.ErrAuthorization or
// recharge.ErrRateLimited, or errors.As with *recharge.HTTPError for the
// status and decoded body.
package rechargeclient
