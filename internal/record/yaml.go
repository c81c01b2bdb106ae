package record

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the record as a mapping that keeps field order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for i, v := range r.values {
		var value yaml.Node
		if err := value.Encode(v); err != nil {
			return nil, err
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.shape.Field(i).Name},
			&value,
		)
	}

	return node, nil
}
