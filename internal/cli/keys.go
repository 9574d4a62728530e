package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/payloads/pkg/types"
)

const categoryAll = "all"

// keyRow is the JSON form of one classified key.
type keyRow struct {
	URI      string         `json:"uri"`
	Key      string         `json:"key"`
	Type     types.ItemType `json:"type"`
	Category string         `json:"category"`
}

func newKeysCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "keys FILE",
		Short: "List item keys, optionally limited to one category",
		Long: "List item keys in payload order. --category selects plot, artifact,\n" +
			"info or unknown; the default lists every key with its category.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all := category == categoryAll
			var want types.Category
			if !all {
				c, err := types.ParseCategory(category)
				if err != nil {
					return fmt.Errorf("%w: %q", err, category)
				}
				want = c
			}

			stores, err := a.loadStores(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.settings.Output == outputJSON {
				rows := []keyRow{}
				for _, s := range stores {
					rows = append(rows, keyRows(s, all, want)...)
				}
				return writeJSON(out, rows)
			}

			many := len(stores) > 1
			for _, s := range stores {
				writeHeader(out, s, many)
				for _, r := range keyRows(s, all, want) {
					if all {
						fmt.Fprintf(out, "%s\t%s\n", r.Category, r.Key)
					} else {
						fmt.Fprintln(out, r.Key)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", categoryAll, "plot, artifact, info, unknown or all")
	return cmd
}

// keyRows lists the keys of s, every key when all is set and otherwise only
// those in category want.
func keyRows(s *types.Store, all bool, want types.Category) []keyRow {
	keys := s.Keys()
	if !all {
		keys = s.KeysByCategory(want)
	}
	rows := make([]keyRow, 0, len(keys))
	for _, k := range keys {
		item, _ := s.Get(k)
		rows = append(rows, keyRow{
			URI:      s.URI(),
			Key:      k,
			Type:     item.Type,
			Category: item.Category().String(),
		})
	}
	return rows
}
