package types

// ItemType is the declared content kind of a payload item.
type ItemType string

// Item types. The set is closed; adding a member requires a matching case in
// ItemType.Category.
const (
	TypeBoolean          ItemType = "boolean"
	TypeInteger          ItemType = "integer"
	TypeNumber           ItemType = "number"
	TypeString           ItemType = "string"
	TypeAny              ItemType = "any"
	TypeArray            ItemType = "array"
	TypeDate             ItemType = "date"
	TypeDatetime         ItemType = "datetime"
	TypeFile             ItemType = "file"
	TypeHTML             ItemType = "html"
	TypeMarkdown         ItemType = "markdown"
	TypeMatplotlibFigure ItemType = "matplotlib_figure"
	TypeVega             ItemType = "vega"
	TypeDataFrame        ItemType = "dataframe"
	TypeImage            ItemType = "image"
	TypeCVResults        ItemType = "cv_results"
	TypeNumpyArray       ItemType = "numpy_array"
)

// AllItemTypes lists every item type in declaration order.
var AllItemTypes = []ItemType{
	TypeBoolean,
	TypeInteger,
	TypeNumber,
	TypeString,
	TypeAny,
	TypeArray,
	TypeDate,
	TypeDatetime,
	TypeFile,
	TypeHTML,
	TypeMarkdown,
	TypeMatplotlibFigure,
	TypeVega,
	TypeDataFrame,
	TypeImage,
	TypeCVResults,
	TypeNumpyArray,
}

// Category is the presentation bucket an item is rendered in.
type Category int

// Categories. CategoryUnknown is reserved for type tags outside the
// enumeration; items in it appear in none of the store views.
const (
	CategoryUnknown Category = iota
	CategoryPlot
	CategoryArtifact
	CategoryInfo
)

// String returns the lower-case name of the category.
func (c Category) String() string {
	switch c {
	case CategoryPlot:
		return "plot"
	case CategoryArtifact:
		return "artifact"
	case CategoryInfo:
		return "info"
	default:
		return "unknown"
	}
}

// ParseCategory returns the category named s.
// Returns ErrInvalidCategory if s names no category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "plot":
		return CategoryPlot, nil
	case "artifact":
		return CategoryArtifact, nil
	case "info":
		return CategoryInfo, nil
	case "unknown":
		return CategoryUnknown, nil
	default:
		return CategoryUnknown, ErrInvalidCategory
	}
}

// Category returns the presentation bucket for t. Every member of the
// enumeration maps to exactly one of plot, artifact or info.
func (t ItemType) Category() Category {
	switch t {
	case TypeVega, TypeMatplotlibFigure:
		return CategoryPlot
	case TypeFile:
		return CategoryArtifact
	case TypeBoolean, TypeInteger, TypeNumber, TypeString, TypeAny,
		TypeArray, TypeDate, TypeDatetime, TypeHTML, TypeMarkdown,
		TypeDataFrame, TypeImage, TypeCVResults, TypeNumpyArray:
		return CategoryInfo
	default:
		return CategoryUnknown
	}
}

// IsKnown reports whether t is a member of the enumeration.
func (t ItemType) IsKnown() bool {
	return t.Category() != CategoryUnknown
}
