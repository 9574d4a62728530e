package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry pairs a payload key with its item.
type Entry struct {
	Key  string
	Item PayloadItem
}

// Payload is an insertion-ordered mapping from key to PayloadItem.
// The zero value is an empty payload.
type Payload struct {
	keys  []string
	items map[string]PayloadItem
}

// NewPayload builds a payload from entries in order. A repeated key replaces
// the earlier item but keeps the position of its first occurrence.
func NewPayload(entries ...Entry) Payload {
	p := Payload{items: make(map[string]PayloadItem, len(entries))}
	for _, e := range entries {
		p.set(e.Key, e.Item)
	}
	return p
}

func (p *Payload) set(key string, item PayloadItem) {
	if p.items == nil {
		p.items = make(map[string]PayloadItem)
	}
	if _, ok := p.items[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.items[key] = item
}

// Len returns the number of items.
func (p Payload) Len() int {
	return len(p.keys)
}

// Get returns the item at key and whether it exists.
func (p Payload) Get(key string) (PayloadItem, bool) {
	item, ok := p.items[key]
	return item, ok
}

// Keys returns a copy of the keys in insertion order.
func (p Payload) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Entries returns the key/item pairs in insertion order.
func (p Payload) Entries() []Entry {
	entries := make([]Entry, 0, len(p.keys))
	for _, k := range p.keys {
		entries = append(entries, Entry{Key: k, Item: p.items[k]})
	}
	return entries
}

// MarshalJSON encodes the payload as a JSON object with keys in insertion
// order.
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		ib, err := json.Marshal(p.items[k])
		if err != nil {
			return nil, fmt.Errorf("marshal item %q: %w", k, err)
		}
		buf.Write(ib)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping its keys in document order.
// A JSON null decodes to an empty payload.
func (p *Payload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = Payload{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrInvalidPayload
	}

	out := Payload{items: make(map[string]PayloadItem)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return ErrInvalidPayload
		}
		var item PayloadItem
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("item %q: %w", key, err)
		}
		out.set(key, item)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = out
	return nil
}
