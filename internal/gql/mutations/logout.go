package mutations

import (
	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/errors"
	gqlauth "github.com/washtime/api/internal/gql/auth"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/gql/resolvers"
)

// logout revokes a session token. Administrators may revoke any token;
// everyone else only their own sessions, which the auth service
// enforces by matching the token against the caller's email.
func logout(r *resolvers.Resolver) *graphql.Field {
	return relay.MutationWithClientMutationID(relay.MutationConfig{
		Name:        "logout",
		Description: "Revokes a session token.",
		InputFields: graphql.InputObjectConfigFieldMap{
			"token": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The session token to revoke.",
			},
		},
		OutputFields: graphql.Fields{
			"success": &graphql.Field{
				Type:        graphql.Boolean,
				Description: "Whether the token was revoked.",
			},
		},
		MutateAndGetPayload: func(p graphql.ResolveParams, input map[string]interface{}) (interface{}, error) {
			actor := gqlauth.For(p.Context)
			if actor == nil || !actor.IsActive {
				return nil, errors.ErrUnauthorized
			}

			token, _ := input["token"].(string)

			email := ""
			if !actor.IsAdmin {
				email = actor.Email
			}

			ok, err := r.Ctx.Inst().Auth.Logout(p.Context, token, email)
			if err != nil {
				return nil, errors.FromDownstream(err, "Failed to revoke token", "AUTH_ERROR")
			}
			if !ok {
				return nil, errors.ErrUnauthorized
			}

			return map[string]interface{}{"success": true}, nil
		},
	})
}
