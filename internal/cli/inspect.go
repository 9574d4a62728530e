package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/payloads/pkg/types"
)

// inspectResult is the JSON form of one inspected document.
type inspectResult struct {
	URI       string              `json:"uri"`
	Summary   types.Summary       `json:"summary"`
	Plots     []string            `json:"plots"`
	Artifacts []string            `json:"artifacts"`
	Info      []string            `json:"info"`
	Unknown   []string            `json:"unknown"`
	Layout    []types.LayoutEntry `json:"layout"`
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize the items of each document in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stores, err := a.loadStores(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.settings.Output == outputJSON {
				results := make([]inspectResult, 0, len(stores))
				for _, s := range stores {
					results = append(results, inspectResult{
						URI:       s.URI(),
						Summary:   s.Summary(),
						Plots:     s.PlotKeys(),
						Artifacts: s.ArtifactKeys(),
						Info:      s.InfoKeys(),
						Unknown:   s.UnknownKeys(),
						Layout:    s.Layout(),
					})
				}
				return writeJSON(out, results)
			}

			for i, s := range stores {
				if i > 0 {
					fmt.Fprintln(out)
				}
				writeInspect(out, s)
			}
			return nil
		},
	}
}

func writeInspect(w io.Writer, s *types.Store) {
	sum := s.Summary()
	fmt.Fprintf(w, "uri:       %s\n", s.URI())
	fmt.Fprintf(w, "items:     %d (plots %d, artifacts %d, info %d, unknown %d)\n",
		s.Len(), sum.Plots, sum.Artifacts, sum.Info, sum.Unknown)
	fmt.Fprintf(w, "plots:     %s\n", joinKeys(s.PlotKeys()))
	fmt.Fprintf(w, "artifacts: %s\n", joinKeys(s.ArtifactKeys()))
	fmt.Fprintf(w, "info:      %s\n", joinKeys(s.InfoKeys()))
	if sum.Unknown > 0 {
		fmt.Fprintf(w, "unknown:   %s\n", joinKeys(s.UnknownKeys()))
	}

	layout := s.Layout()
	entries := make([]string, 0, len(layout))
	for _, e := range layout {
		entries = append(entries, fmt.Sprintf("%s(%s)", e.Key, e.Size))
	}
	fmt.Fprintf(w, "layout:    %s\n", joinKeys(entries))
}
