package jsonc

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/HarveyLijh/zod-n-json/schema"
)

// EncodeSchemaYAML renders a schema node as a YAML document with the same
// field layout as the JSON form. Key order is preserved by building the
// yaml.Node tree by hand; descriptions become head comments on the "type" key
// when includeComments is set.
func EncodeSchemaYAML(n *schema.Node, includeComments bool) (string, error) {
	root := yamlNode(n, includeComments)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DecodeSchemaYAML reads a YAML document into a schema node. YAML mappings
// keep their key order via the yaml.Node API, matching the JSON reader.
func DecodeSchemaYAML(text string) (*schema.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("jsonc: empty YAML document")
	}
	v, err := yamlToValue(doc.Content[0])
	if err != nil {
		return nil, err
	}
	return NodeFromValue(v)
}

func yamlNode(n *schema.Node, comments bool) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, v *yaml.Node) {
		k := yamlString(key)
		if len(m.Content) == 0 && comments && n.Description != "" {
			k.HeadComment = n.Description
		}
		m.Content = append(m.Content, k, v)
	}

	add(fieldType, yamlString(string(n.Kind)))
	if n.Description != "" {
		add(fieldDescription, yamlString(n.Description))
	}
	if n.Nullable {
		add(fieldNullable, yamlBool(true))
	}
	if n.Optional {
		add(fieldOptional, yamlBool(true))
	}
	switch n.Kind {
	case schema.KindLiteral:
		if n.Literal != nil {
			add(fieldConst, yamlScalar(n.Literal))
		}
	case schema.KindEnum:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range n.Enum {
			seq.Content = append(seq.Content, yamlScalar(v))
		}
		add(fieldEnum, seq)
	case schema.KindArray:
		items := n.Items
		if items == nil {
			items = &schema.Node{Kind: schema.KindAny}
		}
		add(fieldItems, yamlNode(items, comments))
	case schema.KindObject:
		props := &yaml.Node{Kind: yaml.MappingNode}
		for _, p := range n.Properties {
			props.Content = append(props.Content, yamlString(p.Name), yamlNode(p.Node, comments))
		}
		add(fieldProperties, props)
	case schema.KindUnion:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, member := range n.Members {
			seq.Content = append(seq.Content, yamlNode(member, comments))
		}
		add(fieldOneOf, seq)
	}
	return m
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlBool(b bool) *yaml.Node {
	v := "false"
	if b {
		v = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
}

func yamlScalar(v any) *yaml.Node {
	switch t := v.(type) {
	case string:
		return yamlString(t)
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(t.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}
	case bool:
		return yamlBool(t)
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// yamlToValue converts a decoded yaml.Node into the reader's value form,
// mirroring the JSON token path: mappings become ordered Objects, scalars
// become string/json.Number/bool/nil.
func yamlToValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			v, err := yamlToValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlToValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!str":
			return n.Value, nil
		case "!!int", "!!float":
			return json.Number(n.Value), nil
		case "!!bool":
			return n.Value == "true" || n.Value == "True", nil
		case "!!null":
			return nil, nil
		default:
			return n.Value, nil
		}
	case yaml.AliasNode:
		return yamlToValue(n.Alias)
	default:
		return nil, fmt.Errorf("jsonc: unsupported YAML node kind %d", n.Kind)
	}
}
