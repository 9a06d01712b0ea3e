package mutations

import (
	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/errors"
	gqlauth "github.com/washtime/api/internal/gql/auth"
	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/gql/resolvers"
	"github.com/washtime/api/internal/gql/types"
	"github.com/washtime/api/internal/gql/validators"
)

// updateUser creates or updates a user record. Without an id the
// mutation registers a new account, which requires the full credential
// set; with an id it patches the referenced record, which requires
// ownership or administrator rights. The input and payload shapes are
// both derived from the user descriptor.
func updateUser(r *resolvers.Resolver, t *types.Registry) *graphql.Field {
	return relay.MutationWithClientMutationID(relay.MutationConfig{
		Name:         "updateUser",
		Description:  "Registers a new user or updates an existing one.",
		InputFields:  t.UserDef.InputFields(),
		OutputFields: t.GuardedUserFields(),
		MutateAndGetPayload: func(p graphql.ResolveParams, input map[string]interface{}) (interface{}, error) {
			data := map[string]interface{}{}
			for key, value := range input {
				if key == "clientMutationId" || value == nil {
					continue
				}
				data[key] = value
			}

			creating := true
			if raw, ok := data["id"].(string); ok && raw != "" {
				creating = false

				id := relay.FromGlobalID(raw).ID
				if id == "" {
					id = raw
				}
				delete(data, "id")
				data["_id"] = id

				if len(data) < 2 {
					return nil, errors.ErrUserDataEmpty
				}
			} else {
				delete(data, "id")

				if v, _ := data["email"].(string); v == "" {
					return nil, errors.ErrUserEmailEmpty
				}
				if v, _ := data["password"].(string); v == "" {
					return nil, errors.ErrUserPasswordEmpty
				}
				if v, _ := data["firstName"].(string); v == "" {
					return nil, errors.ErrUserFirstNameEmpty
				}
				if v, _ := data["lastName"].(string); v == "" {
					return nil, errors.ErrUserLastNameEmpty
				}
			}

			actor := gqlauth.For(p.Context)
			admin := actor != nil && actor.IsActive && actor.IsAdmin

			// flipping privileged flags is an administrative operation;
			// anything else on an existing record needs ownership.
			// registration is open to anonymous callers.
			_, touchesAdmin := data["isAdmin"]
			_, touchesActive := data["isActive"]
			if touchesAdmin || touchesActive {
				if !admin {
					return nil, errors.ErrUnauthorized
				}
			} else if !creating {
				if err := validators.VerifyRequestForOwner(p.Context, data); err != nil {
					return nil, err
				}
			}

			decodeCarAssociations(data)

			fields := helpers.FieldsList(p.Info, helpers.ListOptions{
				Transform: map[string]string{"id": "_id", "clientMutationId": ""},
			})

			user, err := r.Ctx.Inst().User.Update(p.Context, data, fields)
			if err != nil {
				return nil, errors.FromDownstream(err, "Failed to update user", "USER_DATA_ERROR")
			}

			// a self update or a fresh registration may read back guarded
			// fields within this request
			if user != nil {
				if scope := gqlauth.ScopeFor(p.Context); scope != nil {
					if creating || (actor != nil && (actor.ID == user.ID || actor.Email == user.Email)) {
						scope.GrantOwn(user.ID, user.Email)
					}
				}
			}

			return user, nil
		},
	})
}

// decodeCarAssociations rewrites nested car association input in place:
// global identifiers become service-local ones and the exposed id key
// becomes the downstream document key.
func decodeCarAssociations(data map[string]interface{}) {
	cars, ok := data["cars"].([]interface{})
	if !ok {
		return
	}

	for _, entry := range cars {
		assoc, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		if raw, ok := assoc["carId"].(string); ok && raw != "" {
			if decoded := relay.FromGlobalID(raw).ID; decoded != "" {
				assoc["carId"] = decoded
			}
		}
		if raw, ok := assoc["id"].(string); ok && raw != "" {
			id := relay.FromGlobalID(raw).ID
			if id == "" {
				id = raw
			}
			delete(assoc, "id")
			assoc["_id"] = id
		}
	}
}
