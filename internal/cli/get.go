package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errKeyNotFound = errors.New("key not found")

func newGetCmd(a *app) *cobra.Command {
	var uri string
	cmd := &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Print one item as JSON",
		Long: "Print the item stored under KEY. When FILE holds several documents\n" +
			"the first one containing KEY is used unless --uri selects one.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[1]
			stores, err := a.loadStores(args[0])
			if err != nil {
				return err
			}

			for _, s := range stores {
				if uri != "" && s.URI() != uri {
					continue
				}
				item, ok := s.Get(key)
				if !ok {
					continue
				}
				a.logger.Debug("found item", "uri", s.URI(), "key", key, "type", string(item.Type))
				return writeJSON(cmd.OutOrStdout(), item)
			}
			if uri != "" {
				return fmt.Errorf("%w: %q in %q", errKeyNotFound, key, uri)
			}
			return fmt.Errorf("%w: %q", errKeyNotFound, key)
		},
	}
	cmd.Flags().StringVar(&uri, "uri", "", "only search the document with this uri")
	return cmd
}
