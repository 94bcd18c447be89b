package univalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes the first document of a YAML input into a Value tree.
// Mapping keys must be strings; entry order is preserved. Integer and float
// scalars are re-rendered as canonical decimal text so the result obeys the
// same string-backed number storage as JSON input.
func FromYAML(data []byte) (*Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("univalue: empty YAML input")
		}
		return nil, err
	}
	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return NewNull(), nil
		}
		node = node.Content[0]
	}
	return fromYAMLNode(node)
}

func fromYAMLNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		o := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode || k.Tag != "!!str" {
				return nil, fmt.Errorf("univalue: YAML mapping key at line %d is not a string", k.Line)
			}
			cv, err := fromYAMLNode(v)
			if err != nil {
				return nil, err
			}
			if err := o.Set(k.Value, cv); err != nil {
				return nil, err
			}
		}
		return o, nil

	case yaml.SequenceNode:
		a := NewArray()
		for _, c := range n.Content {
			cv, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			if err := a.Append(cv); err != nil {
				return nil, err
			}
		}
		return a, nil

	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)

	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	}
	return nil, fmt.Errorf("univalue: unsupported YAML node kind %d at line %d", n.Kind, n.Line)
}

func fromYAMLScalar(n *yaml.Node) (*Value, error) {
	switch n.Tag {
	case "!!null":
		return NewNull(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return NewBool(b), nil
	case "!!int":
		// Decode through the native types so octal/hex spellings come out as
		// canonical decimal text.
		var i int64
		if err := n.Decode(&i); err == nil {
			return NewInt64(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return nil, err
		}
		return NewUint64(u), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		if v, err := NewNumStr(strconv.FormatFloat(f, 'g', -1, 64)); err == nil {
			return v, nil
		}
		// .inf/.nan have no JSON number form.
		return nil, fmt.Errorf("univalue: YAML float %q at line %d has no JSON representation", n.Value, n.Line)
	default:
		return NewStr(n.Value), nil
	}
}
