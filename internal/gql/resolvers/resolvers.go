package resolvers

import (
	"strings"

	"github.com/washtime/api/internal/global"
	"github.com/washtime/api/internal/gql/relay"
)

// Resolver carries the application context into query resolution. Every
// resolver is a method so downstream clients and limits come from the
// same place.
type Resolver struct {
	Ctx global.Context
}

func New(gCtx global.Context) *Resolver {
	return &Resolver{Ctx: gCtx}
}

// idTransform renames the exposed id field to the downstream document
// key in projections.
var idTransform = map[string]string{"id": "_id"}

// decodeID unwraps a global identifier, passing through values that
// were not encoded so clients may send raw downstream identifiers too.
func decodeID(id string) string {
	if decoded := relay.FromGlobalID(id).ID; decoded != "" {
		return decoded
	}
	return id
}

// isEmail tells identifiers from email addresses in arguments that
// accept either.
func isEmail(criteria string) bool {
	return strings.Contains(criteria, "@")
}
