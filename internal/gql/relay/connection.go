package relay

import (
	"github.com/graphql-go/graphql"
)

type PageInfo struct {
	StartCursor     string `json:"startCursor"`
	EndCursor       string `json:"endCursor"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	HasNextPage     bool   `json:"hasNextPage"`
}

type Edge struct {
	Node   interface{} `json:"node"`
	Cursor string      `json:"cursor"`
}

type Connection struct {
	Edges      []*Edge  `json:"edges"`
	PageInfo   PageInfo `json:"pageInfo"`
	TotalCount int      `json:"totalCount"`
}

// ConnectionArgs are the standard pagination arguments after type
// assertion. Zero values mean the argument was not supplied.
type ConnectionArgs struct {
	First  int
	Last   int
	After  string
	Before string
}

// NewConnectionArgs returns a fresh argument map so callers can extend
// it with query-specific arguments without sharing state.
func NewConnectionArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"first":  &graphql.ArgumentConfig{Type: graphql.Int},
		"last":   &graphql.ArgumentConfig{Type: graphql.Int},
		"after":  &graphql.ArgumentConfig{Type: graphql.String},
		"before": &graphql.ArgumentConfig{Type: graphql.String},
	}
}

func ParseConnectionArgs(args map[string]interface{}) ConnectionArgs {
	parsed := ConnectionArgs{}

	if v, ok := args["first"].(int); ok {
		parsed.First = v
	}
	if v, ok := args["last"].(int); ok {
		parsed.Last = v
	}
	if v, ok := args["after"].(string); ok {
		parsed.After = v
	}
	if v, ok := args["before"].(string); ok {
		parsed.Before = v
	}

	return parsed
}

var pageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "PageInfo",
	Description: "Information about pagination in a connection.",
	Fields: graphql.Fields{
		"startCursor": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if info, ok := p.Source.(PageInfo); ok && info.StartCursor != "" {
					return info.StartCursor, nil
				}
				return nil, nil
			},
		},
		"endCursor": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if info, ok := p.Source.(PageInfo); ok && info.EndCursor != "" {
					return info.EndCursor, nil
				}
				return nil, nil
			},
		},
		"hasPreviousPage": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				info, _ := p.Source.(PageInfo)
				return info.HasPreviousPage, nil
			},
		},
		"hasNextPage": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				info, _ := p.Source.(PageInfo)
				return info.HasNextPage, nil
			},
		},
	},
})

// ConnectionDefinitions builds the edge and connection object types for
// a node type, following the relay connection shape.
func ConnectionDefinitions(name string, nodeType graphql.Output) *graphql.Object {
	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name:        name + "Edge",
		Description: "An edge in a connection.",
		Fields: graphql.Fields{
			"node": &graphql.Field{
				Type: nodeType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					edge, _ := p.Source.(*Edge)
					if edge == nil {
						return nil, nil
					}
					return edge.Node, nil
				},
			},
			"cursor": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					edge, _ := p.Source.(*Edge)
					if edge == nil {
						return nil, nil
					}
					return edge.Cursor, nil
				},
			},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name:        name + "Connection",
		Description: "A connection to a list of items.",
		Fields: graphql.Fields{
			"edges": &graphql.Field{
				Type: graphql.NewList(edgeType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					conn, _ := p.Source.(*Connection)
					if conn == nil {
						return nil, nil
					}
					return conn.Edges, nil
				},
			},
			"pageInfo": &graphql.Field{
				Type: graphql.NewNonNull(pageInfoType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					conn, _ := p.Source.(*Connection)
					if conn == nil {
						return nil, nil
					}
					return conn.PageInfo, nil
				},
			},
			"totalCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					conn, _ := p.Source.(*Connection)
					if conn == nil {
						return 0, nil
					}
					return conn.TotalCount, nil
				},
			},
		},
	})
}

// ConnectionFromSlice wraps one page of an already paginated collection.
// sliceStart is the absolute offset of the first node and total the size
// of the whole collection, which is what drives hasNextPage.
func ConnectionFromSlice(nodes []interface{}, sliceStart, total int) *Connection {
	edges := make([]*Edge, len(nodes))
	for i, node := range nodes {
		edges[i] = &Edge{
			Node:   node,
			Cursor: OffsetToCursor(sliceStart + i),
		}
	}

	info := PageInfo{
		HasPreviousPage: sliceStart > 0,
		HasNextPage:     sliceStart+len(nodes) < total,
	}
	if len(edges) > 0 {
		info.StartCursor = edges[0].Cursor
		info.EndCursor = edges[len(edges)-1].Cursor
	}

	return &Connection{
		Edges:      edges,
		PageInfo:   info,
		TotalCount: total,
	}
}

// EmptyConnection is what degraded collection reads return.
func EmptyConnection() *Connection {
	return &Connection{Edges: []*Edge{}}
}
