package types

// Store holds the result items of one computation together with their
// display layout. A Store is immutable after NewStore returns and may be
// read from multiple goroutines without locking.
type Store struct {
	uri     string
	payload Payload
	layout  []LayoutEntry
}

// Summary counts the items of a store per category.
type Summary struct {
	Plots     int `json:"plots"`
	Artifacts int `json:"artifacts"`
	Info      int `json:"info"`
	Unknown   int `json:"unknown"`
}

// NewStore creates a store over payload and layout. Nothing is validated:
// unknown item types and layout keys missing from the payload are accepted.
// Both inputs are copied.
func NewStore(uri string, payload Payload, layout []LayoutEntry) *Store {
	l := make([]LayoutEntry, len(layout))
	copy(l, layout)
	return &Store{
		uri:     uri,
		payload: NewPayload(payload.Entries()...),
		layout:  l,
	}
}

// URI returns the source identifier of the store.
func (s *Store) URI() string {
	return s.uri
}

// Len returns the number of items in the payload.
func (s *Store) Len() int {
	return s.payload.Len()
}

// Get returns the item at key. The second result is false if key is absent.
func (s *Store) Get(key string) (PayloadItem, bool) {
	return s.payload.Get(key)
}

// Keys returns every payload key in insertion order.
func (s *Store) Keys() []string {
	return s.payload.Keys()
}

// Layout returns a copy of the layout entries in order.
func (s *Store) Layout() []LayoutEntry {
	l := make([]LayoutEntry, len(s.layout))
	copy(l, s.layout)
	return l
}

// PlotKeys returns the keys of vega and matplotlib_figure items.
func (s *Store) PlotKeys() []string {
	return s.KeysByCategory(CategoryPlot)
}

// ArtifactKeys returns the keys of file items.
func (s *Store) ArtifactKeys() []string {
	return s.KeysByCategory(CategoryArtifact)
}

// InfoKeys returns the keys of all items that are neither plots nor artifacts.
func (s *Store) InfoKeys() []string {
	return s.KeysByCategory(CategoryInfo)
}

// UnknownKeys returns the keys of items whose type is outside the
// enumeration. These items appear in none of PlotKeys, ArtifactKeys or
// InfoKeys.
func (s *Store) UnknownKeys() []string {
	return s.KeysByCategory(CategoryUnknown)
}

// KeysByCategory returns, in insertion order, the keys whose item type
// belongs to c. The result is recomputed on every call and is never nil.
func (s *Store) KeysByCategory(c Category) []string {
	keys := []string{}
	for _, k := range s.payload.keys {
		if s.payload.items[k].Type.Category() == c {
			keys = append(keys, k)
		}
	}
	return keys
}

// DanglingLayoutKeys returns the layout keys that reference no payload item,
// in layout order.
func (s *Store) DanglingLayoutKeys() []string {
	keys := []string{}
	for _, e := range s.layout {
		if _, ok := s.payload.items[e.Key]; !ok {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Summary counts the items per category.
func (s *Store) Summary() Summary {
	var sum Summary
	for _, k := range s.payload.keys {
		switch s.payload.items[k].Type.Category() {
		case CategoryPlot:
			sum.Plots++
		case CategoryArtifact:
			sum.Artifacts++
		case CategoryInfo:
			sum.Info++
		default:
			sum.Unknown++
		}
	}
	return sum
}

// Document returns the store in its serializable form.
func (s *Store) Document() Document {
	return Document{
		URI:     s.uri,
		Payload: NewPayload(s.payload.Entries()...),
		Layout:  s.Layout(),
	}
}
