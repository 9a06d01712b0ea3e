package validators

import (
	"context"
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/errors"
	gqlauth "github.com/washtime/api/internal/gql/auth"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/structures"
)

// ownerRef is the identity a guarded resolution is about, extracted
// from the source record or the operation arguments.
type ownerRef struct {
	id    string
	email string
}

func (r ownerRef) empty() bool {
	return r.id == "" && r.email == ""
}

// matches compares against an actor, accepting both raw and
// global-encoded identifiers.
func (r ownerRef) matches(actor *structures.User) bool {
	if actor == nil {
		return false
	}

	if r.id != "" {
		if r.id == actor.ID {
			return true
		}
		if decoded := relay.FromGlobalID(r.id).ID; decoded != "" && decoded == actor.ID {
			return true
		}
	}

	return r.email != "" && r.email == actor.Email
}

func refFromRecord(source interface{}) ownerRef {
	switch record := source.(type) {
	case *structures.User:
		if record == nil {
			return ownerRef{}
		}
		return ownerRef{id: record.ID, email: record.Email}
	case map[string]interface{}:
		return refFromArgs(record)
	}
	return ownerRef{}
}

// refFromArgs digs an identity out of operation arguments, including
// the nested shapes relay mutations and filters use.
func refFromArgs(args map[string]interface{}) ownerRef {
	if args == nil {
		return ownerRef{}
	}

	ref := ownerRef{}
	for _, key := range []string{"_id", "id", "userId"} {
		if v, ok := args[key].(string); ok && v != "" {
			ref.id = v
			break
		}
	}
	if v, ok := args["email"].(string); ok {
		ref.email = v
	}

	// idOrEmail is disambiguated by the presence of '@'
	if v, ok := args["idOrEmail"].(string); ok && v != "" {
		if strings.Contains(v, "@") {
			ref.email = v
		} else if ref.id == "" {
			ref.id = v
		}
	}

	if !ref.empty() {
		return ref
	}

	for _, key := range []string{"input", "user"} {
		if nested, ok := args[key].(map[string]interface{}); ok {
			if ref = refFromArgs(nested); !ref.empty() {
				return ref
			}
		}
	}

	return ownerRef{}
}

func isActiveAdmin(actor *structures.User) bool {
	return actor != nil && actor.IsActive && actor.IsAdmin
}

// ValidateAdmin restricts a field to active administrators. A request
// that has established control of the record's own identity (login, a
// self update) may read it as well.
func ValidateAdmin(ctx context.Context, source interface{}, args map[string]interface{}, info graphql.ResolveInfo) error {
	if isActiveAdmin(gqlauth.For(ctx)) {
		return nil
	}

	if scope := gqlauth.ScopeFor(ctx); scope != nil {
		ref := refFromRecord(source)
		if scope.Covers(ref.id, ref.email) {
			return nil
		}
	}

	return errors.ErrUnauthorized
}

// ValidateOwner restricts a field to active administrators or the
// record's owner.
func ValidateOwner(ctx context.Context, source interface{}, args map[string]interface{}, info graphql.ResolveInfo) error {
	actor := gqlauth.For(ctx)
	if isActiveAdmin(actor) {
		return nil
	}

	ref := refFromRecord(source)

	if actor != nil && actor.IsActive && ref.matches(actor) {
		return nil
	}

	if scope := gqlauth.ScopeFor(ctx); scope != nil && scope.Covers(ref.id, ref.email) {
		return nil
	}

	return errors.ErrUnauthorized
}

// VerifyRequestForOwner enforces ownership for an operation before it
// runs. An empty target means the operation aims at the caller's own
// record, which any active principal may do; administrators may target
// anyone.
func VerifyRequestForOwner(ctx context.Context, args map[string]interface{}) error {
	actor := gqlauth.For(ctx)
	if actor == nil || !actor.IsActive {
		return errors.ErrUnauthorized
	}
	if actor.IsAdmin {
		return nil
	}

	ref := refFromArgs(args)
	if ref.empty() || ref.matches(actor) {
		return nil
	}

	return errors.ErrUnauthorized
}
