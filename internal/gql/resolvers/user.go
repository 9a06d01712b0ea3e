package resolvers

import (
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/washtime/api/internal/errors"
	gqlauth "github.com/washtime/api/internal/gql/auth"
	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/structures"
)

// FetchUserByIDOrEmail resolves the user query. Without explicit
// criteria the authenticated principal's email is used, so a signed-in
// client can ask for itself with a bare `user { ... }`.
func (r *Resolver) FetchUserByIDOrEmail(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	email, _ := p.Args["email"].(string)

	criteria := id
	if criteria == "" {
		criteria = email
	}
	if criteria == "" {
		if actor := gqlauth.For(p.Context); actor != nil {
			criteria = actor.Email
		}
	}
	if criteria == "" {
		return nil, errors.ErrUserFetchCriteriaInvalid
	}

	if !isEmail(criteria) {
		criteria = decodeID(criteria)
	}

	fields := helpers.FieldsList(p.Info, helpers.ListOptions{Transform: idTransform})

	user, err := r.Ctx.Inst().User.Fetch(p.Context, criteria, fields)
	if err != nil {
		return nil, errors.FromDownstream(err, "Failed to fetch user", "USER_FETCH_ERROR")
	}

	return user, nil
}

// FetchUsers resolves the paginated users query. The page of records
// and the total count are fetched concurrently; the projection descends
// to the connection's node selection.
func (r *Resolver) FetchUsers(p graphql.ResolveParams) (interface{}, error) {
	args := relay.ParseConnectionArgs(p.Args)
	filter := userFilterFromArgs(p.Args["filter"])

	limits := r.Ctx.Config().Limits

	limit := limits.DefaultPage
	switch {
	case args.First > 0:
		limit = args.First
	case args.Last > 0:
		limit = args.Last
	}

	actor := gqlauth.For(p.Context)
	admin := actor != nil && actor.IsActive && actor.IsAdmin
	if !admin && limit > limits.MaxPage {
		limit = limits.MaxPage
	}

	skip := 0
	if offset := relay.CursorToOffset(args.After); offset >= 0 {
		skip = offset + 1
	}
	if end := relay.CursorToOffset(args.Before); end >= 0 {
		// a window of `limit` items ending just before the cursor
		skip = end - limit
		if skip < 0 {
			skip = 0
			limit = end
		}
	}

	if limit <= 0 {
		return relay.EmptyConnection(), nil
	}

	fields := helpers.FieldsList(p.Info, helpers.ListOptions{
		Transform: idTransform,
		Path:      "edges.node",
	})

	var (
		total int
		users []*structures.User
	)

	eg, ctx := errgroup.WithContext(p.Context)
	eg.Go(func() error {
		var err error
		total, err = r.Ctx.Inst().User.Count(ctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		users, err = r.Ctx.Inst().User.Find(ctx, filter, fields, skip, limit)
		return err
	})

	if err := eg.Wait(); err != nil {
		zap.S().Errorw("failed to fetch users",
			"error", err,
		)
		return relay.EmptyConnection(), nil
	}

	nodes := make([]interface{}, len(users))
	for i, user := range users {
		nodes[i] = user
	}

	return relay.ConnectionFromSlice(nodes, skip, total), nil
}

func userFilterFromArgs(arg interface{}) *structures.UserFilter {
	raw, ok := arg.(map[string]interface{})
	if !ok || len(raw) == 0 {
		return nil
	}

	filter := &structures.UserFilter{}
	if v, ok := raw["isActive"].(bool); ok {
		filter.IsActive = &v
	}
	if v, ok := raw["isAdmin"].(bool); ok {
		filter.IsAdmin = &v
	}

	return filter
}

// CarsCollection resolves a user's cars as composite views: catalog
// attributes merged with the association's registration number. The
// exposed id is the association's, so relay identity stays stable when
// the same catalog entry is attached to several users.
func (r *Resolver) CarsCollection(p graphql.ResolveParams) (interface{}, error) {
	user, _ := p.Source.(*structures.User)
	if user == nil || len(user.Cars) == 0 {
		return []*structures.Car{}, nil
	}

	requested := helpers.FieldsList(p.Info, helpers.ListOptions{})

	wantCatalogID := false
	for _, name := range requested {
		if name == "carId" {
			wantCatalogID = true
			break
		}
	}

	associations := make(map[string]structures.UserCar, len(user.Cars))
	ids := make([]string, 0, len(user.Cars))
	for _, assoc := range user.Cars {
		associations[assoc.CarID] = assoc
		ids = append(ids, assoc.CarID)
	}

	fields := helpers.EnsureFields(requested, "id")

	cars, err := r.Ctx.Inst().Car.FetchMany(p.Context, ids, fields)
	if err != nil {
		zap.S().Errorw("failed to fetch user cars",
			"user_id", user.ID,
			"error", err,
		)
		return []*structures.Car{}, nil
	}

	merged := make([]*structures.Car, 0, len(cars))
	for _, car := range cars {
		if car == nil {
			continue
		}
		assoc, ok := associations[car.ID]
		if !ok {
			continue
		}

		view := *car
		view.RegNumber = assoc.RegNumber
		if wantCatalogID {
			view.CarID = car.ID
		}
		view.ID = assoc.ID
		merged = append(merged, &view)
	}

	return merged, nil
}
