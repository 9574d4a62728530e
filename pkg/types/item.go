package types

// PayloadItem is one named unit of result data. Data is passed through as
// decoded and is never checked against Type.
type PayloadItem struct {
	Type ItemType `json:"type" yaml:"type"`
	Data any      `json:"data" yaml:"data"`
}

// Category returns the presentation bucket of the item's type.
func (i PayloadItem) Category() Category {
	return i.Type.Category()
}

// LayoutSize is the panel size hint for a layout entry.
type LayoutSize string

// Layout sizes.
const (
	SizeSmall  LayoutSize = "small"
	SizeMedium LayoutSize = "medium"
	SizeLarge  LayoutSize = "large"
)

// validLayoutSizes is the set of recognized layout sizes.
var validLayoutSizes = map[LayoutSize]bool{
	SizeSmall:  true,
	SizeMedium: true,
	SizeLarge:  true,
}

// ParseLayoutSize returns the layout size named s.
// Returns ErrInvalidLayoutSize if s is not small, medium or large.
func ParseLayoutSize(s string) (LayoutSize, error) {
	if !validLayoutSizes[LayoutSize(s)] {
		return "", ErrInvalidLayoutSize
	}
	return LayoutSize(s), nil
}

// IsValid reports whether s is one of the recognized sizes. The store never
// calls it; sizes are display hints for the UI.
func (s LayoutSize) IsValid() bool {
	return validLayoutSizes[s]
}

// LayoutEntry places the item at Key in a panel of the given Size.
type LayoutEntry struct {
	Key  string     `json:"key" yaml:"key"`
	Size LayoutSize `json:"size" yaml:"size"`
}
