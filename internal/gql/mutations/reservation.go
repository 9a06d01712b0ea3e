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
	"github.com/washtime/api/internal/structures"
)

// reserve books a washing slot. Both mutations return the refreshed
// reservation list so clients update their time-table view in one round
// trip.
func reserve(r *resolvers.Resolver, t *types.Registry) *graphql.Field {
	return relay.MutationWithClientMutationID(relay.MutationConfig{
		Name:        "reserve",
		Description: "Books a washing slot for a user's car.",
		InputFields: graphql.InputObjectConfigFieldMap{
			"userId": &graphql.InputObjectFieldConfig{
				Type:        graphql.ID,
				Description: "The user the slot is booked for; defaults to the caller.",
			},
			"carId": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "The car to wash.",
			},
			"type": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The washing type: fast, std or full.",
			},
			"duration": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.String)),
				Description: "The slot as a [start, end] pair, ISO-8601.",
			},
		},
		OutputFields: graphql.Fields{
			"reservations": &graphql.Field{
				Type:        graphql.NewList(t.Reservation),
				Description: "The refreshed reservation list.",
			},
		},
		MutateAndGetPayload: func(p graphql.ResolveParams, input map[string]interface{}) (interface{}, error) {
			actor := gqlauth.For(p.Context)
			if actor == nil || !actor.IsActive {
				return nil, errors.ErrUnauthorized
			}

			userID, _ := input["userId"].(string)
			if userID == "" {
				userID = actor.ID
			} else if decoded := relay.FromGlobalID(userID).ID; decoded != "" {
				userID = decoded
			}

			if err := validators.VerifyRequestForOwner(p.Context, map[string]interface{}{
				"userId": userID,
			}); err != nil {
				return nil, err
			}

			carID, _ := input["carId"].(string)
			if decoded := relay.FromGlobalID(carID).ID; decoded != "" {
				carID = decoded
			}

			washingType, _ := input["type"].(string)

			duration, err := durationFromInput(input["duration"])
			if err != nil {
				return nil, err
			}

			reservation := &structures.Reservation{
				CarID:    carID,
				UserID:   userID,
				Type:     washingType,
				Duration: duration,
			}

			fields := helpers.FieldsList(p.Info, helpers.ListOptions{
				Path: "reservations",
			})

			reservations, err := r.Ctx.Inst().TimeTable.Reserve(p.Context, reservation, fields)
			if err != nil {
				return nil, errors.FromDownstream(err, "Failed to make reservation", "ADD_RESERVATION_ERROR")
			}

			return map[string]interface{}{"reservations": reservations}, nil
		},
	})
}

func durationFromInput(arg interface{}) ([2]string, error) {
	var duration [2]string

	raw, ok := arg.([]interface{})
	if !ok || len(raw) != 2 {
		return duration, errors.New("Reservation duration must be a [start, end] pair", "ADD_RESERVATION_ERROR")
	}

	for i, value := range raw {
		s, ok := value.(string)
		if !ok || s == "" {
			return duration, errors.New("Reservation duration must be a [start, end] pair", "ADD_RESERVATION_ERROR")
		}
		duration[i] = s
	}

	return duration, nil
}

// cancelReservation frees a booked slot. The slot's owning user is
// looked up first so ownership can be enforced against the actual
// record rather than client-supplied input.
func cancelReservation(r *resolvers.Resolver, t *types.Registry) *graphql.Field {
	return relay.MutationWithClientMutationID(relay.MutationConfig{
		Name:        "cancelReservation",
		Description: "Cancels a booked washing slot.",
		InputFields: graphql.InputObjectConfigFieldMap{
			"id": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "The reservation to cancel.",
			},
		},
		OutputFields: graphql.Fields{
			"reservations": &graphql.Field{
				Type:        graphql.NewList(t.Reservation),
				Description: "The refreshed reservation list.",
			},
		},
		MutateAndGetPayload: func(p graphql.ResolveParams, input map[string]interface{}) (interface{}, error) {
			actor := gqlauth.For(p.Context)
			if actor == nil || !actor.IsActive {
				return nil, errors.ErrUnauthorized
			}

			id, _ := input["id"].(string)
			if decoded := relay.FromGlobalID(id).ID; decoded != "" {
				id = decoded
			}

			reservation, err := r.Ctx.Inst().TimeTable.Fetch(p.Context, id, []string{"id", "userId"})
			if err != nil {
				return nil, errors.FromDownstream(err, "Failed to cancel reservation", "CANCEL_RESERVATION_ERROR")
			}
			if reservation == nil {
				return nil, errors.New("Reservation not found", "CANCEL_RESERVATION_ERROR")
			}

			if err := validators.VerifyRequestForOwner(p.Context, map[string]interface{}{
				"userId": reservation.UserID,
			}); err != nil {
				return nil, err
			}

			fields := helpers.FieldsList(p.Info, helpers.ListOptions{
				Path: "reservations",
			})

			reservations, err := r.Ctx.Inst().TimeTable.Cancel(p.Context, id, fields)
			if err != nil {
				return nil, errors.FromDownstream(err, "Failed to cancel reservation", "CANCEL_RESERVATION_ERROR")
			}

			return map[string]interface{}{"reservations": reservations}, nil
		},
	})
}
