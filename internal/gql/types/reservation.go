package types

import (
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/gql/resolvers"
	"github.com/washtime/api/internal/structures"
)

func sourceReservation(p graphql.ResolveParams) *structures.Reservation {
	reservation, _ := p.Source.(*structures.Reservation)
	return reservation
}

func newReservationDef(r *resolvers.Resolver, userDef, carDef *helpers.TypeDef) *helpers.TypeDef {
	return &helpers.TypeDef{
		Name:        "Reservation",
		Description: "A washing time slot booked for a user's car.",
		Fields: []helpers.FieldDef{
			{
				Name:        "id",
				Description: "The globally unique identifier of the reservation.",
				Type:        graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if reservation := sourceReservation(p); reservation != nil {
						return relay.ToGlobalID("Reservation", strconv.FormatInt(reservation.ID, 10)), nil
					}
					return nil, nil
				},
			},
			{
				Name:        "car",
				Description: "The reserved car, merged with its owner's registration number.",
				Object:      carDef,
				Resolve:     r.FetchReservationCar,
			},
			{
				Name:        "user",
				Description: "The user who booked the slot.",
				Object:      userDef,
				Resolve:     r.FetchReservationUser,
			},
			{
				Name:        "type",
				Description: "The washing type: fast, std or full.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if reservation := sourceReservation(p); reservation != nil {
						return reservation.Type, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "start",
				Description: "The slot start time, ISO-8601.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if reservation := sourceReservation(p); reservation != nil {
						return reservation.Duration[0], nil
					}
					return nil, nil
				},
			},
			{
				Name:        "end",
				Description: "The slot end time, ISO-8601.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if reservation := sourceReservation(p); reservation != nil {
						return reservation.Duration[1], nil
					}
					return nil, nil
				},
			},
		},
	}
}
