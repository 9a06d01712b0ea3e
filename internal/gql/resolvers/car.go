package resolvers

import (
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/washtime/api/internal/errors"
	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/structures"
)

// FetchCarByID resolves a single catalog car.
func (r *Resolver) FetchCarByID(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	if id == "" {
		return nil, errors.New("Car id is required!", "CAR_FETCH_ERROR")
	}

	fields := helpers.FieldsList(p.Info, helpers.ListOptions{})

	car, err := r.Ctx.Inst().Car.Fetch(p.Context, decodeID(id), fields)
	if err != nil {
		return nil, errors.FromDownstream(err, "Failed to fetch car", "CAR_FETCH_ERROR")
	}

	return car, nil
}

// FetchCars resolves the catalog listing, optionally narrowed to a
// brand. Catalog reads degrade to an empty list when the downstream
// service is unavailable.
func (r *Resolver) FetchCars(p graphql.ResolveParams) (interface{}, error) {
	brand, _ := p.Args["brand"].(string)

	cars, err := r.Ctx.Inst().Car.List(p.Context, brand, helpers.FieldsList(p.Info, helpers.ListOptions{}))
	if err != nil {
		zap.S().Errorw("failed to fetch cars",
			"brand", brand,
			"error", err,
		)
		return []*structures.Car{}, nil
	}

	return cars, nil
}

// FetchCarBrands resolves the distinct catalog brands.
func (r *Resolver) FetchCarBrands(p graphql.ResolveParams) (interface{}, error) {
	brands, err := r.Ctx.Inst().Car.Brands(p.Context)
	if err != nil {
		zap.S().Errorw("failed to fetch car brands",
			"error", err,
		)
		return []string{}, nil
	}

	return brands, nil
}
