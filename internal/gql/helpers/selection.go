package helpers

import (
	"sort"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// Fragment expansion is depth-bounded so a pathological document cannot
// recurse the extractor into a stack overflow.
const maxFragmentDepth = 32

// ListOptions controls how FieldsList collects leaf names.
type ListOptions struct {
	// Transform renames leaf fields before they are returned; mapping a
	// name to the empty string drops it from the projection.
	Transform map[string]string

	// Path descends through nested selections ("edges.node") before
	// collecting. A path segment missing from the query yields an empty
	// projection.
	Path string
}

// SelectedFields returns the top-level leaf field names requested for
// the field being resolved.
func SelectedFields(info graphql.ResolveInfo, transform map[string]string) []string {
	return FieldsList(info, ListOptions{Transform: transform})
}

// FieldsList extracts the client's field selection for the resolved
// field so resolvers can project exactly what was asked for downstream.
// When no selection set is available the projection fails open to every
// declared field of the return type, so a downstream call can never
// under-fetch.
func FieldsList(info graphql.ResolveInfo, opts ListOptions) []string {
	set := currentSelection(info)
	if set == nil {
		return returnTypeFields(info, opts.Transform)
	}

	if opts.Path != "" {
		for _, segment := range strings.Split(opts.Path, ".") {
			next := findField(set, segment, info.Fragments)
			if next == nil || next.SelectionSet == nil {
				return []string{}
			}
			set = next.SelectionSet
		}
	}

	expanded := expand(set, info.Fragments, maxFragmentDepth)

	names := make([]string, 0, len(expanded))
	seen := map[string]bool{}

	for _, field := range expanded {
		if field.Name == nil {
			continue
		}

		name := field.Name.Value
		if renamed, ok := opts.Transform[name]; ok {
			name = renamed
		}
		if name == "" || seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}

// currentSelection locates the AST node of the field being resolved.
// The engine can attach several nodes when equivalent selections were
// merged; the first one carrying a selection set wins.
func currentSelection(info graphql.ResolveInfo) *ast.SelectionSet {
	for _, node := range info.FieldASTs {
		if node == nil || node.Name == nil {
			continue
		}
		if node.Name.Value == info.FieldName && node.SelectionSet != nil {
			return node.SelectionSet
		}
	}
	return nil
}

// expand flattens a selection set into concrete fields, splicing named
// and inline fragments in place.
func expand(set *ast.SelectionSet, fragments map[string]ast.Definition, depth int) []*ast.Field {
	if set == nil || depth <= 0 {
		return nil
	}

	var fields []*ast.Field

	for _, selection := range set.Selections {
		switch node := selection.(type) {
		case *ast.Field:
			fields = append(fields, node)
		case *ast.FragmentSpread:
			if node.Name == nil {
				continue
			}
			fragment, ok := fragments[node.Name.Value]
			if !ok {
				continue
			}
			fields = append(fields, expand(fragment.GetSelectionSet(), fragments, depth-1)...)
		case *ast.InlineFragment:
			fields = append(fields, expand(node.SelectionSet, fragments, depth-1)...)
		}
	}

	return fields
}

func findField(set *ast.SelectionSet, name string, fragments map[string]ast.Definition) *ast.Field {
	for _, field := range expand(set, fragments, maxFragmentDepth) {
		if field.Name != nil && field.Name.Value == name {
			return field
		}
	}
	return nil
}

// returnTypeFields is the fail-open projection: every declared field of
// the resolved field's return type, unwrapped from non-null and list
// wrappers. Sorted so the downstream request shape is deterministic.
func returnTypeFields(info graphql.ResolveInfo, transform map[string]string) []string {
	var t graphql.Type = info.ReturnType
	if nonNull, ok := t.(*graphql.NonNull); ok {
		t = nonNull.OfType
	}
	if list, ok := t.(*graphql.List); ok {
		t = list.OfType
	}
	if nonNull, ok := t.(*graphql.NonNull); ok {
		t = nonNull.OfType
	}

	object, ok := t.(*graphql.Object)
	if !ok {
		return nil
	}

	definitions := object.Fields()
	names := make([]string, 0, len(definitions))

	for name := range definitions {
		if renamed, ok := transform[name]; ok {
			name = renamed
		}
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// EnsureFields appends the given names to a projection unless already
// present. Resolvers use it to force fields their own logic depends on.
func EnsureFields(fields []string, required ...string) []string {
	for _, name := range required {
		found := false
		for _, existing := range fields {
			if existing == name {
				found = true
				break
			}
		}
		if !found {
			fields = append(fields, name)
		}
	}
	return fields
}
