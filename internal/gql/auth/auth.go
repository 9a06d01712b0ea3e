package auth

import (
	"context"
	"sync"

	"github.com/washtime/api/internal/structures"
)

type contextKey int

const (
	actorKey contextKey = iota
	scopeKey
)

// WithActor attaches the authenticated principal to the request
// context. Anonymous requests simply never call this.
func WithActor(ctx context.Context, actor *structures.User) context.Context {
	if actor == nil {
		return ctx
	}
	return context.WithValue(ctx, actorKey, actor)
}

// For returns the authenticated principal, or nil for anonymous
// requests.
func For(ctx context.Context) *structures.User {
	actor, _ := ctx.Value(actorKey).(*structures.User)
	return actor
}

// Scope carries the request's typed operation intent. When a mutation
// establishes or updates the caller's own identity it grants that
// record here, and field guards honor the grant for the remainder of
// the request instead of re-inspecting the query text.
type Scope struct {
	mu       sync.Mutex
	ownID    string
	ownEmail string
}

func NewScope() *Scope {
	return &Scope{}
}

// WithScope attaches a request scope to the context. One scope is
// created per request at the transport layer.
func WithScope(ctx context.Context, scope *Scope) context.Context {
	if scope == nil {
		return ctx
	}
	return context.WithValue(ctx, scopeKey, scope)
}

// ScopeFor returns the request scope, or nil when none was attached.
func ScopeFor(ctx context.Context) *Scope {
	scope, _ := ctx.Value(scopeKey).(*Scope)
	return scope
}

// GrantOwn records that the request has proven or established control
// over the given identity.
func (s *Scope) GrantOwn(id, email string) {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		s.ownID = id
	}
	if email != "" {
		s.ownEmail = email
	}
}

// Covers reports whether a record identity falls under an own-identity
// grant. Empty record values never match.
func (s *Scope) Covers(id, email string) bool {
	if s == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && id == s.ownID {
		return true
	}
	if email != "" && email == s.ownEmail {
		return true
	}
	return false
}
