package mutations

import (
	"github.com/graphql-go/graphql"
	"golang.org/x/sync/errgroup"

	"github.com/washtime/api/internal/errors"
	gqlauth "github.com/washtime/api/internal/gql/auth"
	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/gql/resolvers"
	"github.com/washtime/api/internal/gql/types"
	"github.com/washtime/api/internal/structures"
)

// login authenticates a user and returns the session token together
// with the user record. The token fetch and the user fetch run
// concurrently; both must succeed.
func login(r *resolvers.Resolver, t *types.Registry) *graphql.Field {
	return relay.MutationWithClientMutationID(relay.MutationConfig{
		Name:        "login",
		Description: "Authenticates a user with email and password.",
		InputFields: graphql.InputObjectConfigFieldMap{
			"email": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The account email.",
			},
			"password": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The account password.",
			},
		},
		OutputFields: graphql.Fields{
			"token": &graphql.Field{
				Type:        graphql.String,
				Description: "The session token to present as a bearer credential.",
			},
			"user": &graphql.Field{
				Type:        t.User,
				Description: "The authenticated user.",
			},
		},
		MutateAndGetPayload: func(p graphql.ResolveParams, input map[string]interface{}) (interface{}, error) {
			email, _ := input["email"].(string)
			password, _ := input["password"].(string)

			if email == "" {
				return nil, errors.ErrUserEmailEmpty
			}
			if password == "" {
				return nil, errors.ErrUserPasswordEmpty
			}

			// the activity check below depends on these fields being
			// present regardless of what the client selected
			fields := helpers.FieldsList(p.Info, helpers.ListOptions{
				Transform: map[string]string{"id": "_id", "clientMutationId": ""},
				Path:      "user",
			})
			fields = helpers.EnsureFields(fields, "_id", "email", "isActive")

			var (
				token string
				user  *structures.User
			)

			eg, ctx := errgroup.WithContext(p.Context)
			eg.Go(func() error {
				var err error
				token, err = r.Ctx.Inst().Auth.Login(ctx, email, password)
				return err
			})
			eg.Go(func() error {
				var err error
				user, err = r.Ctx.Inst().User.Fetch(ctx, email, fields)
				return err
			})

			if err := eg.Wait(); err != nil {
				return nil, errors.FromDownstream(err, "Given credentials are invalid!", "USER_CREDENTIALS_ERROR")
			}
			if token == "" || user == nil {
				return nil, errors.ErrInvalidCredentials
			}
			if !user.IsActive {
				return nil, errors.ErrAccountBlocked
			}

			// the caller proved control of this identity, so the payload
			// may expose the record's guarded fields
			if scope := gqlauth.ScopeFor(p.Context); scope != nil {
				scope.GrantOwn(user.ID, user.Email)
			}

			return map[string]interface{}{
				"token": token,
				"user":  user,
			}, nil
		},
	})
}
