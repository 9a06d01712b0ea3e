package resolvers

import (
	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/gql/relay"
)

// FetchNodeByID refetches any object by its global identifier, per the
// relay node contract. Unknown types and malformed identifiers resolve
// to null.
func (r *Resolver) FetchNodeByID(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	resolved := relay.FromGlobalID(id)

	switch resolved.Type {
	case "User":
		fields := helpers.FieldsList(p.Info, helpers.ListOptions{Transform: idTransform})
		return r.Ctx.Inst().User.Fetch(p.Context, resolved.ID, fields)
	case "Car":
		fields := helpers.FieldsList(p.Info, helpers.ListOptions{})
		return r.Ctx.Inst().Car.Fetch(p.Context, resolved.ID, fields)
	case "Reservation":
		fields := helpers.FieldsList(p.Info, helpers.ListOptions{})
		return r.Ctx.Inst().TimeTable.Fetch(p.Context, resolved.ID, fields)
	}

	return nil, nil
}
