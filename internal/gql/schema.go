package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/global"
	"github.com/washtime/api/internal/gql/mutations"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/gql/resolvers"
	"github.com/washtime/api/internal/gql/types"
	"github.com/washtime/api/internal/gql/validators"
)

// NewSchema assembles the executable schema. The guarded fields are
// registered here, in one place, so the authorization surface of the
// whole graph is reviewable at a glance.
func NewSchema(gCtx global.Context) (graphql.Schema, error) {
	r := resolvers.New(gCtx)

	guards := validators.FieldSet{
		"User:password": {validators.ValidateAdmin},
		"User:email":    {validators.ValidateOwner},
	}

	t := types.New(r, guards)

	usersArgs := relay.NewConnectionArgs()
	usersArgs["filter"] = &graphql.ArgumentConfig{Type: t.UserFilter}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"node": &graphql.Field{
				Type:        t.Node,
				Description: "Refetches any object by its globally unique identifier.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.FetchNodeByID,
			},
			"user": &graphql.Field{
				Type:        t.User,
				Description: "Fetches a user by identifier or email; defaults to the caller.",
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.ID},
					"email": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.FetchUserByIDOrEmail,
			},
			"users": &graphql.Field{
				Type:        t.UserConnection,
				Description: "Pages through registered users.",
				Args:        usersArgs,
				Resolve:     r.FetchUsers,
			},
			"car": &graphql.Field{
				Type:        t.Car,
				Description: "Fetches a catalog car.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.FetchCarByID,
			},
			"cars": &graphql.Field{
				Type:        graphql.NewList(t.Car),
				Description: "Lists catalog cars, optionally narrowed to a brand.",
				Args: graphql.FieldConfigArgument{
					"brand": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.FetchCars,
			},
			"brands": &graphql.Field{
				Type:        graphql.NewList(graphql.String),
				Description: "Lists distinct catalog brands.",
				Resolve:     r.FetchCarBrands,
			},
			"reservations": &graphql.Field{
				Type:        graphql.NewList(t.Reservation),
				Description: "Lists booked washing slots from the given start time onwards.",
				Args: graphql.FieldConfigArgument{
					"startFrom": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.FetchReservations,
			},
			"closestReservation": &graphql.Field{
				Type:        t.Reservation,
				Description: "Finds the nearest free slot of the given washing type.",
				Args: graphql.FieldConfigArgument{
					"type":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"startFrom": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.FetchClosestReservation,
			},
			"options": &graphql.Field{
				Type:        t.Options,
				Description: "The time-table operating configuration.",
				Resolve:     r.FetchTimeTableOptions,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: mutations.New(r, t),
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
