package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/payloads/pkg/types"
)

// decodeYAML reads one YAML document. It walks the node tree rather than
// decoding into a map so payload keys keep their document order.
func decodeYAML(r io.Reader) ([]*types.Store, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", types.ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidDocument, err)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", types.ErrInvalidDocument)
	}

	var (
		uri     string
		payload types.Payload
		layout  []types.LayoutEntry
	)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		switch key.Value {
		case "uri":
			if err := value.Decode(&uri); err != nil {
				return nil, fmt.Errorf("%w: uri: %w", types.ErrInvalidDocument, err)
			}
		case "payload":
			p, err := decodeYAMLPayload(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", types.ErrInvalidDocument, err)
			}
			payload = p
		case "layout":
			if err := value.Decode(&layout); err != nil {
				return nil, fmt.Errorf("%w: layout: %w", types.ErrInvalidDocument, err)
			}
		}
	}
	return []*types.Store{types.NewStore(uri, payload, layout)}, nil
}

func decodeYAMLPayload(node *yaml.Node) (types.Payload, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return types.Payload{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return types.Payload{}, types.ErrInvalidPayload
	}
	entries := make([]types.Entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var item types.PayloadItem
		if err := node.Content[i+1].Decode(&item); err != nil {
			return types.Payload{}, fmt.Errorf("item %q: %w", key, err)
		}
		entries = append(entries, types.Entry{Key: key, Item: item})
	}
	return types.NewPayload(entries...), nil
}
