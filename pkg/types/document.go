package types

// Document is the serialized form of a store as delivered by a results
// backend: {"uri": ..., "payload": {key: {"type", "data"}}, "layout": [...]}.
type Document struct {
	URI     string        `json:"uri"`
	Payload Payload       `json:"payload"`
	Layout  []LayoutEntry `json:"layout"`
}

// Store builds a Store from the document.
func (d Document) Store() *Store {
	return NewStore(d.URI, d.Payload, d.Layout)
}
