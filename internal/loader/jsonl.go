package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/payloads/pkg/types"
)

// maxLineSize bounds a single JSONL document; payloads can embed figures.
const maxLineSize = 64 << 20

// decodeJSONL reads one document per line. Blank lines are ignored and
// malformed lines are skipped with a warning.
func (l *Loader) decodeJSONL(r io.Reader, source string) ([]*types.Store, error) {
	var stores []*types.Store
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			l.logger.Warn("skipping malformed line", "source", source, "line", lineNo)
			continue
		}
		var doc types.Document
		if err := json.Unmarshal(line, &doc); err != nil {
			l.logger.Warn("skipping invalid document", "source", source, "line", lineNo, "error", err)
			continue
		}
		stores = append(stores, doc.Store())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning line %d: %w", lineNo+1, err)
	}
	return stores, nil
}
