package types

import (
	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/gql/helpers"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/structures"
)

func sourceOptions(p graphql.ResolveParams) *structures.TimeTableOptions {
	options, _ := p.Source.(*structures.TimeTableOptions)
	return options
}

func newOptionsDef() *helpers.TypeDef {
	baseTime := &helpers.TypeDef{
		Name:        "BaseTimeOption",
		Description: "One washing type with its base slot duration.",
		Fields: []helpers.FieldDef{
			{
				Name:        "key",
				Description: "The washing type key: fast, std or full.",
				Type:        graphql.String,
			},
			{
				Name:        "title",
				Description: "The human-readable washing type name.",
				Type:        graphql.String,
			},
			{
				Name:        "duration",
				Description: "The base slot duration in minutes.",
				Type:        graphql.Int,
			},
		},
	}

	return &helpers.TypeDef{
		Name:        "Options",
		Description: "The time-table operating configuration.",
		Fields: []helpers.FieldDef{
			{
				Name:        "id",
				Description: "The globally unique identifier of the configuration singleton.",
				Type:        graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return relay.ToGlobalID("Options", "time-table-options"), nil
				},
			},
			{
				Name:        "start",
				Description: "The opening time of the washing boxes, HH:MM.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if options := sourceOptions(p); options != nil {
						return options.Start, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "end",
				Description: "The closing time of the washing boxes, HH:MM.",
				Type:        graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if options := sourceOptions(p); options != nil {
						return options.End, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "boxes",
				Description: "The number of washing boxes operating in parallel.",
				Type:        graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if options := sourceOptions(p); options != nil {
						return options.Boxes, nil
					}
					return nil, nil
				},
			},
			{
				Name:        "baseTime",
				Description: "The available washing types and their durations.",
				Object:      baseTime,
				List:        true,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if options := sourceOptions(p); options != nil {
						return options.BaseTime, nil
					}
					return nil, nil
				},
			},
		},
	}
}
