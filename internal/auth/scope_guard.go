package auth

import (
	"sync"

	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// ScopeGuard rejects calls whose endpoint requires scopes the token was not
// granted. An endpoint that passed once is remembered per API version and
// never checked again for that version. It performs no I/O and is safe for
// concurrent use.
type ScopeGuard struct {
	mutex   sync.Mutex
	granted map[recharge.Scope]struct{}
	allowed map[string]struct{}
}

// NewScopeGuard creates a guard for the granted scopes.
func NewScopeGuard(granted []recharge.Scope) *ScopeGuard {
	guard := &ScopeGuard{
		allowed: make(map[string]struct{}),
	}
	guard.SetGranted(granted)

	return guard
}

// Endpoint formats an endpoint signature such as "GET /charges/:charge_id".
func Endpoint(method, template string) string {
	return method + " " + template
}

// signature keys the validated cache. The same template may need different
// scopes in each API version.
func signature(version recharge.Version, method, template string) string {
	return string(version) + " " + Endpoint(method, template)
}

// SetGranted replaces the granted scopes. Endpoints already validated stay
// validated.
func (g *ScopeGuard) SetGranted(granted []recharge.Scope) {
	set := make(map[recharge.Scope]struct{}, len(granted))
	for _, scope := range granted {
		set[scope] = struct{}{}
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.granted = set
}

// Granted returns the granted scopes.
func (g *ScopeGuard) Granted() []recharge.Scope {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	scopes := make([]recharge.Scope, 0, len(g.granted))
	for _, scope := range recharge.AllScopes() {
		if _, ok := g.granted[scope]; ok {
			scopes = append(scopes, scope)
		}
	}

	for scope := range g.granted {
		if !scope.Known() {
			scopes = append(scopes, scope)
		}
	}

	return scopes
}

// Check validates that every required scope of method and template was
// granted for version. With no granted scopes at all every check fails.
func (g *ScopeGuard) Check(version recharge.Version, method, template string, required ...recharge.Scope) error {
	endpoint := Endpoint(method, template)
	key := signature(version, method, template)

	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.allowed[key]; ok {
		return nil
	}

	if len(g.granted) == 0 {
		return &recharge.AuthorizationError{Endpoint: endpoint}
	}

	var missing []recharge.Scope

	for _, scope := range required {
		if _, ok := g.granted[scope]; !ok {
			missing = append(missing, scope)
		}
	}

	if len(missing) > 0 {
		return &recharge.AuthorizationError{Endpoint: endpoint, Missing: missing}
	}

	g.allowed[key] = struct{}{}

	return nil
}

// Validated reports whether the endpoint already passed a check for version.
func (g *ScopeGuard) Validated(version recharge.Version, method, template string) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	_, ok := g.allowed[signature(version, method, template)]

	return ok
}
