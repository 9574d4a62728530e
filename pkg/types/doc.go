// Package types defines the payload store and its item, layout and category
// types for the payloads results viewer.
//
// A Store holds named result items produced by an external computation and
// classifies each item as a plot, an artifact or an informational value
// according to its declared ItemType. The package performs no I/O and never
// validates item data.
package types
