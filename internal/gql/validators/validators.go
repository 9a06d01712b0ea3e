package validators

import (
	"context"

	"github.com/graphql-go/graphql"
)

// Validator guards a single field resolution. A nil return lets the
// wrapped resolver run; an error becomes the field's error and the
// field resolves to null.
type Validator func(ctx context.Context, source interface{}, args map[string]interface{}, info graphql.ResolveInfo) error

// FieldSet maps "Type:field" keys to the validators guarding that
// field. It is registered explicitly at schema assembly, so the full
// authorization surface is visible in one place.
type FieldSet map[string][]Validator

// Apply wraps the resolvers of every guarded field of the given type.
// Fields without an entry pass through untouched.
func Apply(typeName string, fields graphql.Fields, set FieldSet) graphql.Fields {
	for name, field := range fields {
		guards := set[typeName+":"+name]
		if len(guards) == 0 {
			continue
		}
		field.Resolve = guarded(field.Resolve, guards)
	}

	return fields
}

func guarded(inner graphql.FieldResolveFn, guards []Validator) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		for _, guard := range guards {
			if err := guard(p.Context, p.Source, p.Args, p.Info); err != nil {
				return nil, err
			}
		}

		if inner != nil {
			return inner(p)
		}
		return graphql.DefaultResolveFn(p)
	}
}
