package output

import (
	"bytes"
	"encoding/json"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// orderedObject is a JSON object whose keys keep their insertion order.
// A repeated key keeps its first position and value.
type orderedObject struct {
	keys   []string
	values []string
}

func (o *orderedObject) add(key, value string) {
	if slices.Contains(o.keys, key) {
		return
	}
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

func (o *orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// yamlNode returns the object as an ordered YAML mapping of strings.
func (o *orderedObject) yamlNode() *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, key := range o.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: o.values[i]},
		)
	}
	return node
}
