package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/payloads/pkg/payloads"
)

const modulePath = "github.com/mesh-intelligence/payloads"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the payloads version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "payloads v%s\nmodule: %s\n", payloads.Version, modulePath)
			return nil
		},
	}
}
