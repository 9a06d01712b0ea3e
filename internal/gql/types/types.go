package types

import (
	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/gql/resolvers"
	"github.com/washtime/api/internal/gql/validators"
	"github.com/washtime/api/internal/structures"
)

// Registry holds the schema's object types together with the
// descriptors they were derived from, so mutations can mirror an
// entity's fields into their own input and payload shapes.
type Registry struct {
	Node *graphql.Interface

	UserDef        *helpers.TypeDef
	User           *graphql.Object
	UserConnection *graphql.Object
	UserFilter     *graphql.InputObject

	CarDef *helpers.TypeDef
	Car    *graphql.Object

	ReservationDef *helpers.TypeDef
	Reservation    *graphql.Object

	OptionsDef *helpers.TypeDef
	Options    *graphql.Object

	guards validators.FieldSet
}

// GuardedUserFields derives a fresh copy of the user's output fields
// with the field guards attached, for payload shapes that flatten the
// user instead of nesting the shared object type.
func (reg *Registry) GuardedUserFields() graphql.Fields {
	return validators.Apply("User", reg.UserDef.OutputFields(), reg.guards)
}

// New builds every entity type. Guards are attached to the derived
// output fields here, at assembly, so the full authorization surface is
// declared in one place rather than scattered through resolvers.
func New(r *resolvers.Resolver, guards validators.FieldSet) *Registry {
	reg := &Registry{guards: guards}

	reg.Node = graphql.NewInterface(graphql.InterfaceConfig{
		Name:        "Node",
		Description: "An object with a globally unique identifier.",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "The globally unique identifier of the object.",
			},
		},
	})

	reg.CarDef = newCarDef()
	reg.UserDef = newUserDef(r, reg.CarDef)
	reg.ReservationDef = newReservationDef(r, reg.UserDef, reg.CarDef)
	reg.OptionsDef = newOptionsDef()

	wrap := func(typeName string, fields graphql.Fields) graphql.Fields {
		return validators.Apply(typeName, fields, guards)
	}
	reg.CarDef.WrapFields = wrap
	reg.UserDef.WrapFields = wrap
	reg.ReservationDef.WrapFields = wrap

	// Nested entities inherit an already built object type, so types
	// implementing Node must be built before anything embedding them.
	reg.Car = reg.CarDef.Object(reg.Node)
	reg.User = reg.UserDef.Object(reg.Node)
	reg.Reservation = reg.ReservationDef.Object(reg.Node)
	reg.Options = reg.OptionsDef.Object(reg.Node)

	reg.Node.ResolveType = func(p graphql.ResolveTypeParams) *graphql.Object {
		switch p.Value.(type) {
		case *structures.User:
			return reg.User
		case *structures.Car:
			return reg.Car
		case *structures.Reservation:
			return reg.Reservation
		case *structures.TimeTableOptions:
			return reg.Options
		}
		return nil
	}

	reg.UserConnection = relay.ConnectionDefinitions("User", reg.User)
	reg.UserFilter = newUserFilter()

	return reg
}

func newUserFilter() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "UserFilter",
		Description: "Criteria narrowing a user listing.",
		Fields: graphql.InputObjectConfigFieldMap{
			"isActive": &graphql.InputObjectFieldConfig{
				Type:        graphql.Boolean,
				Description: "Match users by account active state.",
			},
			"isAdmin": &graphql.InputObjectFieldConfig{
				Type:        graphql.Boolean,
				Description: "Match users by administrator flag.",
			},
		},
	})
}
