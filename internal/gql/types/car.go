package types

import (
	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/structures"
)

func sourceCar(p graphql.ResolveParams) *structures.Car {
	car, _ := p.Source.(*structures.Car)
	return car
}

// The car type doubles as the catalog record and the user's composite
// view; in the composite case id carries the association identity and
// carId the catalog identity.
func newCarDef() *helpers.TypeDef {
	return &helpers.TypeDef{
		Name:        "Car",
		Description: "A car: a catalog entry, or a user's car with its registration number.",
		Fields: []helpers.FieldDef{
			{
				Name:        "id",
				Description: "The globally unique identifier of the car.",
				Type:        graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if car := sourceCar(p); car != nil {
						return relay.ToGlobalID("Car", car.ID), nil
					}
					return nil, nil
				},
			},
			{
				Name:        "carId",
				Description: "The catalog identifier behind a user's car.",
				Type:        graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if car := sourceCar(p); car != nil && car.CarID != "" {
						return relay.ToGlobalID("Car", car.CarID), nil
					}
					return nil, nil
				},
			},
			{
				Name:        "make",
				Description: "The manufacturer name.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if car := sourceCar(p); car != nil {
						return car.Make, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "model",
				Description: "The model name.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if car := sourceCar(p); car != nil {
						return car.Model, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "type",
				Description: "The body type, which drives washing pricing.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if car := sourceCar(p); car != nil {
						return car.Type, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "years",
				Description: "The production years of this model.",
				Type:        graphql.Int,
				List:        true,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if car := sourceCar(p); car != nil {
						return car.Years, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "regNumber",
				Description: "The registration number of a user's car.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if car := sourceCar(p); car != nil && car.RegNumber != "" {
						return car.RegNumber, nil
					}
					return nil, nil
				},
			},
		},
	}
}
