package jsonc

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/HarveyLijh/zod-n-json/schema"
)

// Document field names. Every node is an object with "type" plus the fields
// its kind calls for; nullable/optional appear only when true.
const (
	fieldType        = "type"
	fieldDescription = "description"
	fieldNullable    = "nullable"
	fieldOptional    = "optional"
	fieldConst       = "const"
	fieldEnum        = "enum"
	fieldItems       = "items"
	fieldProperties  = "properties"
	fieldOneOf       = "oneOf"
)

// DecodeSchema reads document text into a schema node.
func DecodeSchema(text string) (*schema.Node, error) {
	v, err := Decode(text)
	if err != nil {
		return nil, err
	}
	return NodeFromValue(v)
}

// NodeFromValue builds a schema node from a decoded document value. The root
// must be an object; below that the builder is tolerant: unknown "type"
// values become the any node and auxiliary fields that do not match the kind
// are ignored.
func NodeFromValue(v any) (*schema.Node, error) {
	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("jsonc: schema document must be an object, got %T", v)
	}
	return nodeFromObject(obj), nil
}

func nodeFromObject(obj *Object) *schema.Node {
	n := &schema.Node{Kind: inferKind(obj)}
	if s, ok := obj.Get(fieldDescription); ok {
		if d, ok := s.(string); ok {
			n.Description = d
		}
	}
	if b, ok := obj.Get(fieldNullable); ok {
		n.Nullable, _ = b.(bool)
	}
	if b, ok := obj.Get(fieldOptional); ok {
		n.Optional, _ = b.(bool)
	}
	switch n.Kind {
	case schema.KindLiteral:
		if v, ok := obj.Get(fieldConst); ok {
			switch v.(type) {
			case string, json.Number, bool:
				n.Literal = v
			}
		}
	case schema.KindEnum:
		if v, ok := obj.Get(fieldEnum); ok {
			if arr, ok := v.([]any); ok {
				for _, e := range arr {
					switch e.(type) {
					case string, json.Number:
						n.Enum = append(n.Enum, e)
					}
				}
			}
		}
	case schema.KindArray:
		if v, ok := obj.Get(fieldItems); ok {
			if child, ok := v.(*Object); ok {
				n.Items = nodeFromObject(child)
			}
		}
		if n.Items == nil {
			n.Items = &schema.Node{Kind: schema.KindAny}
		}
	case schema.KindObject:
		if v, ok := obj.Get(fieldProperties); ok {
			if props, ok := v.(*Object); ok {
				for _, name := range props.Keys {
					child, ok := props.Values[name].(*Object)
					if !ok {
						continue
					}
					n.Properties = append(n.Properties, schema.Property{
						Name: name,
						Node: nodeFromObject(child),
					})
				}
			}
		}
	case schema.KindUnion:
		if v, ok := obj.Get(fieldOneOf); ok {
			if arr, ok := v.([]any); ok {
				for _, m := range arr {
					if child, ok := m.(*Object); ok {
						n.Members = append(n.Members, nodeFromObject(child))
					}
				}
			}
		}
	}
	return n
}

// inferKind resolves the node kind from "type", falling back to the shape of
// the present auxiliary fields when "type" is absent.
func inferKind(obj *Object) schema.Kind {
	if v, ok := obj.Get(fieldType); ok {
		if s, ok := v.(string); ok {
			return schema.KindFromString(s)
		}
	}
	switch {
	case has(obj, fieldProperties):
		return schema.KindObject
	case has(obj, fieldItems):
		return schema.KindArray
	case has(obj, fieldEnum):
		return schema.KindEnum
	case has(obj, fieldOneOf):
		return schema.KindUnion
	case has(obj, fieldConst):
		return schema.KindLiteral
	}
	return schema.KindAny
}

func has(obj *Object, key string) bool {
	_, ok := obj.Get(key)
	return ok
}
