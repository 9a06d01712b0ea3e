package helpers

import (
	"github.com/graphql-go/graphql"
)

// TypeDef declaratively describes a GraphQL entity as an ordered list
// of field descriptors. The same descriptor is projected into the
// output object type and, for mutations accepting the shape they
// return, into a mirrored input type, so the two never drift apart as
// fields are added.
type TypeDef struct {
	Name        string
	Description string
	Fields      []FieldDef

	// WrapFields, when set, post-processes the derived output fields
	// before the object type is built. Field-level authorization guards
	// are attached through it at schema assembly.
	WrapFields func(typeName string, fields graphql.Fields) graphql.Fields

	object *graphql.Object
	input  *graphql.InputObject
}

// FieldDef describes one field of an entity. Exactly one of Type or
// Object is set: Type for scalar fields, Object for nested entities.
// List wraps the resulting type.
type FieldDef struct {
	Name        string
	Description string
	Type        graphql.Output
	Object      *TypeDef
	List        bool
	Args        graphql.FieldConfigArgument
	Resolve     graphql.FieldResolveFn
}

// OutputFields projects the descriptors into object fields, keeping
// type, description, arguments and resolver.
func (d *TypeDef) OutputFields() graphql.Fields {
	fields := graphql.Fields{}

	for i := range d.Fields {
		def := &d.Fields[i]
		fields[def.Name] = &graphql.Field{
			Type:        def.outputType(),
			Description: def.Description,
			Args:        def.Args,
			Resolve:     def.Resolve,
		}
	}

	return fields
}

// InputFields mirrors the field set as input definitions, keeping only
// type and description. Nested entities become distinct <Name>Input
// types and non-null wrappers are stripped so partial updates stay
// expressible.
func (d *TypeDef) InputFields() graphql.InputObjectConfigFieldMap {
	fields := graphql.InputObjectConfigFieldMap{}

	for i := range d.Fields {
		def := &d.Fields[i]
		fields[def.Name] = &graphql.InputObjectFieldConfig{
			Type:        def.inputType(),
			Description: def.Description,
		}
	}

	return fields
}

// Object returns the output object type, built once on first call. The
// interfaces argument only applies to that first call, so entity types
// implementing Node must be built before anything references them as a
// nested field.
func (d *TypeDef) Object(interfaces ...*graphql.Interface) *graphql.Object {
	if d.object == nil {
		fields := d.OutputFields()
		if d.WrapFields != nil {
			fields = d.WrapFields(d.Name, fields)
		}

		d.object = graphql.NewObject(graphql.ObjectConfig{
			Name:        d.Name,
			Description: d.Description,
			Interfaces:  interfaces,
			Fields:      fields,
		})
	}

	return d.object
}

// Input returns the mirrored input object type, built once.
func (d *TypeDef) Input() *graphql.InputObject {
	if d.input == nil {
		d.input = graphql.NewInputObject(graphql.InputObjectConfig{
			Name:        d.Name + "Input",
			Description: d.Description,
			Fields:      d.InputFields(),
		})
	}

	return d.input
}

func (f *FieldDef) outputType() graphql.Output {
	var t graphql.Output
	if f.Object != nil {
		t = f.Object.Object()
	} else {
		t = f.Type
	}

	if f.List {
		t = graphql.NewList(t)
	}

	return t
}

func (f *FieldDef) inputType() graphql.Input {
	var t graphql.Input
	if f.Object != nil {
		t = f.Object.Input()
	} else {
		t = f.Type
		if nonNull, ok := t.(*graphql.NonNull); ok {
			if inner, ok := nonNull.OfType.(graphql.Input); ok {
				t = inner
			}
		}
	}

	if f.List {
		t = graphql.NewList(t)
	}

	return t
}
