package enumfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func syntaxErr(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, n.Line, fmt.Sprintf(format, args...))
}

func parseDocument(doc *yaml.Node) ([]*Definition, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, syntaxErr(root, "top level must map type names to definitions")
	}

	defs := make([]*Definition, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, body := root.Content[i], root.Content[i+1]
		if name.Kind != yaml.ScalarNode || name.Value == "" {
			return nil, syntaxErr(name, "type name must be a non-empty string")
		}
		def, err := parseDefinition(name.Value, body)
		if err != nil {
			return nil, err
		}
		def.Line = name.Line
		defs = append(defs, def)
	}
	return defs, nil
}

func parseDefinition(name string, body *yaml.Node) (*Definition, error) {
	def := &Definition{Name: name}
	if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
		return def, nil
	}
	if body.Kind != yaml.MappingNode {
		return nil, syntaxErr(body, "definition of %s must be a mapping", name)
	}

	for i := 0; i+1 < len(body.Content); i += 2 {
		field, val := body.Content[i], body.Content[i+1]
		switch field.Value {
		case "description":
			if err := val.Decode(&def.Description); err != nil {
				return nil, syntaxErr(val, "%s.description: %v", name, err)
			}
		case "extends":
			if err := val.Decode(&def.Extends); err != nil {
				return nil, syntaxErr(val, "%s.extends: %v", name, err)
			}
		case "case-insensitive":
			if err := val.Decode(&def.CaseInsensitive); err != nil {
				return nil, syntaxErr(val, "%s.case-insensitive: %v", name, err)
			}
		case "values":
			values, err := parseValues(name, val)
			if err != nil {
				return nil, err
			}
			def.Values = values
		default:
			return nil, syntaxErr(field, "%s: unknown field %q", name, field.Value)
		}
	}
	return def, nil
}

// parseValues keeps repeated keys; rejecting them is the registry's job.
func parseValues(typ string, n *yaml.Node) ([]Declared, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, syntaxErr(n, "%s.values must be a mapping of member keys to values", typ)
	}

	values := make([]Declared, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, syntaxErr(key, "%s: member key must be a non-empty string", typ)
		}

		d := Declared{Key: key.Value, Line: key.Line}
		switch val.Kind {
		case yaml.ScalarNode, yaml.AliasNode:
			v, err := decodeScalar(val)
			if err != nil {
				return nil, syntaxErr(val, "%s.%s: %v", typ, key.Value, err)
			}
			d.Value = v
		case yaml.MappingNode:
			if err := parseLongForm(typ, &d, val); err != nil {
				return nil, err
			}
		default:
			return nil, syntaxErr(val, "%s.%s: value must be a scalar", typ, key.Value)
		}
		values = append(values, d)
	}
	return values, nil
}

// parseLongForm handles `Key: {value: ..., description: ...}`.
func parseLongForm(typ string, d *Declared, n *yaml.Node) error {
	var sawValue bool
	for i := 0; i+1 < len(n.Content); i += 2 {
		field, val := n.Content[i], n.Content[i+1]
		switch field.Value {
		case "value":
			v, err := decodeScalar(val)
			if err != nil {
				return syntaxErr(val, "%s.%s.value: %v", typ, d.Key, err)
			}
			d.Value = v
			sawValue = true
		case "description":
			if err := val.Decode(&d.Description); err != nil {
				return syntaxErr(val, "%s.%s.description: %v", typ, d.Key, err)
			}
		default:
			return syntaxErr(field, "%s.%s: unknown field %q", typ, d.Key, field.Value)
		}
	}
	if !sawValue {
		return syntaxErr(n, "%s.%s: missing value", typ, d.Key)
	}
	return nil
}

func decodeScalar(n *yaml.Node) (any, error) {
	target := n
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		target = n.Alias
	}
	if target.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("value must be a scalar")
	}
	var v any
	if err := target.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
