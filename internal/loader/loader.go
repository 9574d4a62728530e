// Package loader decodes result documents into payload stores.
//
// A document has the shape {"uri", "payload", "layout"} and may be stored as
// a single JSON object, as JSON Lines with one document per line, or as YAML.
// Payload key order is preserved in every format.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/payloads/pkg/types"
)

// Format identifies the encoding of a document file.
type Format string

// Supported formats.
const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// ErrUnsupportedFormat is returned for file extensions with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// formatsByExt maps lower-case file extensions to formats.
var formatsByExt = map[string]Format{
	".json":   FormatJSON,
	".jsonl":  FormatJSONL,
	".ndjson": FormatJSONL,
	".yaml":   FormatYAML,
	".yml":    FormatYAML,
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formatsByExt[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// Loader decodes documents and reports suspicious contents to its logger.
type Loader struct {
	logger *slog.Logger
}

// New returns a Loader that logs to logger. A nil logger discards output.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// LoadFile reads the document file at path. The format is chosen from the
// file extension.
func (l *Loader) LoadFile(path string) ([]*types.Store, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	stores, err := l.decode(f, format, path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return stores, nil
}

// Decode reads all documents from r in the given format.
func (l *Loader) Decode(r io.Reader, format Format) ([]*types.Store, error) {
	return l.decode(r, format, "<input>")
}

func (l *Loader) decode(r io.Reader, format Format, source string) ([]*types.Store, error) {
	var (
		stores []*types.Store
		err    error
	)
	switch format {
	case FormatJSON:
		stores, err = decodeJSON(r)
	case FormatJSONL:
		stores, err = l.decodeJSONL(r, source)
	case FormatYAML:
		stores, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	for _, s := range stores {
		l.report(s, source)
	}
	return stores, nil
}

// decodeJSON reads exactly one JSON document.
func decodeJSON(r io.Reader) ([]*types.Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidDocument, err)
	}
	return []*types.Store{doc.Store()}, nil
}

// report logs items that no view will show and layout entries with no item.
func (l *Loader) report(s *types.Store, source string) {
	sum := s.Summary()
	l.logger.Debug("loaded payload",
		"source", source,
		"uri", s.URI(),
		"plots", sum.Plots,
		"artifacts", sum.Artifacts,
		"info", sum.Info,
	)
	for _, k := range s.UnknownKeys() {
		item, _ := s.Get(k)
		l.logger.Warn("item has unknown type and will not be shown",
			"source", source, "uri", s.URI(), "key", k, "type", string(item.Type))
	}
	for _, k := range s.DanglingLayoutKeys() {
		l.logger.Warn("layout references missing item",
			"source", source, "uri", s.URI(), "key", k)
	}
}
