package mutations

import (
	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/gql/resolvers"
	"github.com/washtime/api/internal/gql/types"
)

// New assembles the mutation surface. Every mutation follows the relay
// convention: one input object, one payload object, an echoed
// clientMutationId.
func New(r *resolvers.Resolver, t *types.Registry) graphql.Fields {
	return graphql.Fields{
		"login":             login(r, t),
		"logout":            logout(r),
		"updateUser":        updateUser(r, t),
		"addCar":            addCar(r, t),
		"removeCar":         removeCar(r, t),
		"reserve":           reserve(r, t),
		"cancelReservation": cancelReservation(r, t),
	}
}
