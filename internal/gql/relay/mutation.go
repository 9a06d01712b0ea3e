package relay

import (
	"github.com/graphql-go/graphql"
)

// MutationConfig describes a relay-style mutation: a single non-null
// input object argument and a payload object, both carrying an optional
// clientMutationId the server echoes back untouched.
type MutationConfig struct {
	Name         string
	Description  string
	InputFields  graphql.InputObjectConfigFieldMap
	OutputFields graphql.Fields

	MutateAndGetPayload func(p graphql.ResolveParams, input map[string]interface{}) (interface{}, error)
}

// Payload wraps a mutation result together with the echoed
// clientMutationId. Output field resolvers receive the unwrapped value.
type Payload struct {
	Value            interface{}
	ClientMutationID string
}

// MutationWithClientMutationID builds the mutation field from its
// config, deriving <Name>Input and <Name>Payload types.
func MutationWithClientMutationID(cfg MutationConfig) *graphql.Field {
	inputFields := graphql.InputObjectConfigFieldMap{}
	for name, field := range cfg.InputFields {
		inputFields[name] = field
	}
	inputFields["clientMutationId"] = &graphql.InputObjectFieldConfig{
		Type: graphql.String,
	}

	inputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   cfg.Name + "Input",
		Fields: inputFields,
	})

	outputFields := graphql.Fields{}
	for name, field := range cfg.OutputFields {
		outputFields[name] = unwrappingField(field)
	}
	outputFields["clientMutationId"] = &graphql.Field{
		Type: graphql.String,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			payload, _ := p.Source.(*Payload)
			if payload == nil || payload.ClientMutationID == "" {
				return nil, nil
			}
			return payload.ClientMutationID, nil
		},
	}

	payloadType := graphql.NewObject(graphql.ObjectConfig{
		Name:   cfg.Name + "Payload",
		Fields: outputFields,
	})

	return &graphql.Field{
		Type:        payloadType,
		Description: cfg.Description,
		Args: graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewNonNull(inputType),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			input, _ := p.Args["input"].(map[string]interface{})
			if input == nil {
				input = map[string]interface{}{}
			}

			value, err := cfg.MutateAndGetPayload(p, input)
			if err != nil {
				return nil, err
			}

			id, _ := input["clientMutationId"].(string)
			return &Payload{Value: value, ClientMutationID: id}, nil
		},
	}
}

// unwrappingField forwards resolution to the configured field against
// the payload's inner value, so output fields written for the domain
// value never see the Payload wrapper.
func unwrappingField(field *graphql.Field) *graphql.Field {
	inner := field.Resolve

	wrapped := *field
	wrapped.Resolve = func(p graphql.ResolveParams) (interface{}, error) {
		if payload, ok := p.Source.(*Payload); ok {
			p.Source = payload.Value
		}
		if inner != nil {
			return inner(p)
		}
		return graphql.DefaultResolveFn(p)
	}

	return &wrapped
}
