package resolvers

import (
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/washtime/api/internal/errors"
	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/structures"
)

// FetchReservations resolves the time-table listing from the given
// start time onwards.
func (r *Resolver) FetchReservations(p graphql.ResolveParams) (interface{}, error) {
	startFrom, _ := p.Args["startFrom"].(string)

	fields := helpers.FieldsList(p.Info, helpers.ListOptions{})

	reservations, err := r.Ctx.Inst().TimeTable.List(p.Context, startFrom, fields)
	if err != nil {
		zap.S().Errorw("failed to fetch reservations",
			"start_from", startFrom,
			"error", err,
		)
		return []*structures.Reservation{}, nil
	}

	return reservations, nil
}

// FetchClosestReservation resolves the nearest free slot of the given
// washing type.
func (r *Resolver) FetchClosestReservation(p graphql.ResolveParams) (interface{}, error) {
	washingType, _ := p.Args["type"].(string)
	startFrom, _ := p.Args["startFrom"].(string)

	reservation, err := r.Ctx.Inst().TimeTable.Closest(p.Context, washingType, startFrom)
	if err != nil {
		return nil, errors.FromDownstream(err, "Failed to find a free reservation slot", "RESERVATION_FETCH_ERROR")
	}

	return reservation, nil
}

// FetchTimeTableOptions resolves the time-table configuration.
func (r *Resolver) FetchTimeTableOptions(p graphql.ResolveParams) (interface{}, error) {
	options, err := r.Ctx.Inst().TimeTable.Config(p.Context)
	if err != nil {
		return nil, errors.FromDownstream(err, "Failed to fetch time-table options", "OPTIONS_FETCH_ERROR")
	}

	return options, nil
}

// FetchReservationCar resolves a reservation's car as the same
// composite view the user's collection exposes: the catalog record
// merged with the owning user's association. A reservation whose car
// can not be loaded resolves to null rather than failing the listing.
func (r *Resolver) FetchReservationCar(p graphql.ResolveParams) (interface{}, error) {
	reservation, _ := p.Source.(*structures.Reservation)
	if reservation == nil || reservation.CarID == "" {
		return nil, nil
	}

	requested := helpers.FieldsList(p.Info, helpers.ListOptions{})

	wantCatalogID := false
	for _, name := range requested {
		if name == "carId" {
			wantCatalogID = true
			break
		}
	}

	owner, err := r.Ctx.Inst().User.Fetch(p.Context, reservation.UserID, []string{"cars"})
	if err != nil {
		zap.S().Errorw("failed to fetch reservation owner",
			"reservation_id", reservation.ID,
			"user_id", reservation.UserID,
			"error", err,
		)
		return nil, nil
	}

	car, err := r.Ctx.Inst().Car.Fetch(p.Context, reservation.CarID, helpers.EnsureFields(requested, "id"))
	if err != nil || car == nil {
		zap.S().Errorw("failed to fetch reservation car",
			"reservation_id", reservation.ID,
			"car_id", reservation.CarID,
			"error", err,
		)
		return nil, nil
	}

	view := *car
	if wantCatalogID {
		view.CarID = car.ID
	}
	if owner != nil {
		for _, assoc := range owner.Cars {
			if assoc.CarID == car.ID {
				view.RegNumber = assoc.RegNumber
				view.ID = assoc.ID
				break
			}
		}
	}

	return &view, nil
}

// FetchReservationUser resolves a reservation's owning user.
func (r *Resolver) FetchReservationUser(p graphql.ResolveParams) (interface{}, error) {
	reservation, _ := p.Source.(*structures.Reservation)
	if reservation == nil || reservation.UserID == "" {
		return nil, nil
	}

	fields := helpers.FieldsList(p.Info, helpers.ListOptions{Transform: idTransform})

	user, err := r.Ctx.Inst().User.Fetch(p.Context, reservation.UserID, fields)
	if err != nil {
		zap.S().Errorw("failed to fetch reservation user",
			"reservation_id", reservation.ID,
			"user_id", reservation.UserID,
			"error", err,
		)
		return nil, nil
	}

	return user, nil
}
