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

// addCar attaches a catalog car to a user. Without an explicit target
// the caller's own record is used; targeting someone else requires
// administrator rights.
func addCar(r *resolvers.Resolver, t *types.Registry) *graphql.Field {
	return relay.MutationWithClientMutationID(relay.MutationConfig{
		Name:        "addCar",
		Description: "Attaches a catalog car with its registration number to a user.",
		InputFields: graphql.InputObjectConfigFieldMap{
			"idOrEmail": &graphql.InputObjectFieldConfig{
				Type:        graphql.ID,
				Description: "The target user; defaults to the caller.",
			},
			"carId": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "The catalog car to attach.",
			},
			"regNumber": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The registration number of the car.",
			},
		},
		OutputFields: graphql.Fields{
			"user": &graphql.Field{
				Type:        t.User,
				Description: "The updated user.",
			},
		},
		MutateAndGetPayload: func(p graphql.ResolveParams, input map[string]interface{}) (interface{}, error) {
			actor := gqlauth.For(p.Context)

			idOrEmail, _ := input["idOrEmail"].(string)
			if idOrEmail == "" {
				if actor == nil {
					return nil, errors.ErrUserCriteriaRequired
				}
				idOrEmail = actor.ID
			} else if decoded := relay.FromGlobalID(idOrEmail).ID; decoded != "" {
				idOrEmail = decoded
			}

			if err := validators.VerifyRequestForOwner(p.Context, map[string]interface{}{
				"idOrEmail": idOrEmail,
			}); err != nil {
				return nil, err
			}

			carID, _ := input["carId"].(string)
			if decoded := relay.FromGlobalID(carID).ID; decoded != "" {
				carID = decoded
			}
			regNumber, _ := input["regNumber"].(string)

			fields := helpers.FieldsList(p.Info, helpers.ListOptions{
				Transform: map[string]string{"id": "_id", "clientMutationId": ""},
				Path:      "user",
			})

			user, err := r.Ctx.Inst().User.AddCar(p.Context, idOrEmail, carID, regNumber, fields)
			if err != nil {
				return nil, errors.FromDownstream(err, "Failed to add car", "USER_CAR_ERROR")
			}

			return map[string]interface{}{"user": user}, nil
		},
	})
}

// removeCar detaches a car association from the caller's record.
func removeCar(r *resolvers.Resolver, t *types.Registry) *graphql.Field {
	return relay.MutationWithClientMutationID(relay.MutationConfig{
		Name:        "removeCar",
		Description: "Detaches a car from the caller's record.",
		InputFields: graphql.InputObjectConfigFieldMap{
			"carId": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "The car association to remove.",
			},
		},
		OutputFields: graphql.Fields{
			"user": &graphql.Field{
				Type:        t.User,
				Description: "The updated user.",
			},
		},
		MutateAndGetPayload: func(p graphql.ResolveParams, input map[string]interface{}) (interface{}, error) {
			if err := validators.VerifyRequestForOwner(p.Context, nil); err != nil {
				return nil, err
			}

			carID, _ := input["carId"].(string)
			if decoded := relay.FromGlobalID(carID).ID; decoded != "" {
				carID = decoded
			}

			fields := helpers.FieldsList(p.Info, helpers.ListOptions{
				Transform: map[string]string{"id": "_id", "clientMutationId": ""},
				Path:      "user",
			})

			user, err := r.Ctx.Inst().User.RemoveCar(p.Context, carID, fields)
			if err != nil {
				return nil, errors.FromDownstream(err, "Failed to remove car", "USER_CAR_ERROR")
			}

			return map[string]interface{}{"user": user}, nil
		},
	})
}
