package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/payloads/pkg/types"
)

// layoutRow is the JSON form of one layout entry.
type layoutRow struct {
	URI      string           `json:"uri"`
	Key      string           `json:"key"`
	Size     types.LayoutSize `json:"size"`
	Category string           `json:"category,omitempty"`
	Missing  bool             `json:"missing,omitempty"`
}

func newLayoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout FILE",
		Short: "List layout entries with the category of each referenced item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stores, err := a.loadStores(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.settings.Output == outputJSON {
				rows := []layoutRow{}
				for _, s := range stores {
					rows = append(rows, layoutRows(s)...)
				}
				return writeJSON(out, rows)
			}

			many := len(stores) > 1
			for _, s := range stores {
				writeHeader(out, s, many)
				for _, r := range layoutRows(s) {
					category := r.Category
					if r.Missing {
						category = "missing"
					}
					fmt.Fprintf(out, "%s\t%s\t%s\n", r.Key, r.Size, category)
				}
			}
			return nil
		},
	}
}

// layoutRows resolves each layout entry of s against its payload.
func layoutRows(s *types.Store) []layoutRow {
	layout := s.Layout()
	rows := make([]layoutRow, 0, len(layout))
	for _, e := range layout {
		row := layoutRow{URI: s.URI(), Key: e.Key, Size: e.Size}
		if item, ok := s.Get(e.Key); ok {
			row.Category = item.Category().String()
		} else {
			row.Missing = true
		}
		rows = append(rows, row)
	}
	return rows
}
