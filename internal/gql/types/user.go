package types

import (
	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/gql/resolvers"
	"github.com/washtime/api/internal/structures"
)

func sourceUser(p graphql.ResolveParams) *structures.User {
	user, _ := p.Source.(*structures.User)
	return user
}

func newUserDef(r *resolvers.Resolver, carDef *helpers.TypeDef) *helpers.TypeDef {
	return &helpers.TypeDef{
		Name:        "User",
		Description: "A registered customer or administrator.",
		Fields: []helpers.FieldDef{
			{
				Name:        "id",
				Description: "The globally unique identifier of the user.",
				Type:        graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if user := sourceUser(p); user != nil {
						return relay.ToGlobalID("User", user.ID), nil
					}
					return nil, nil
				},
			},
			{
				Name:        "firstName",
				Description: "The user's given name.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if user := sourceUser(p); user != nil {
						return user.FirstName, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "lastName",
				Description: "The user's family name.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if user := sourceUser(p); user != nil {
						return user.LastName, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "email",
				Description: "The user's email. Visible to administrators and the user themselves.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if user := sourceUser(p); user != nil {
						return user.Email, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "password",
				Description: "The user's password hash. Restricted to administrators.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if user := sourceUser(p); user != nil && user.Password != "" {
						return user.Password, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "isActive",
				Description: "Whether the account is allowed to sign in.",
				Type:        graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if user := sourceUser(p); user != nil {
						return user.IsActive, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "isAdmin",
				Description: "Whether the account has administrative rights.",
				Type:        graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if user := sourceUser(p); user != nil {
						return user.IsAdmin, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "cars",
				Description: "The user's cars: catalog attributes merged with the registration number.",
				Object:      carDef,
				List:        true,
				Resolve:     r.CarsCollection,
			},
		},
	}
}
