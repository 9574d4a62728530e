package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/payloads/pkg/types"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// joinKeys renders a key list for text output.
func joinKeys(keys []string) string {
	if len(keys) == 0 {
		return "-"
	}
	return strings.Join(keys, ", ")
}

// writeHeader separates documents in text output when a file holds several.
func writeHeader(w io.Writer, s *types.Store, many bool) {
	if many {
		fmt.Fprintf(w, "# %s\n", s.URI())
	}
}
