package cmd

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/yumyai/ggscreen/pkg/model"
	"github.com/yumyai/ggscreen/pkg/render"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [flags] REPORT...",
	Short: "Combine screen reports into a presence/absence matrix",
	Long: `Combine screen reports into a presence/absence matrix

Rows are input reports, columns are every gene seen in any of them. A cell
holds the gene's percent coverage, or a dot when the report lacks the gene.
NUM_FOUND counts the distinct genes per row.

With a single input report the rows come from its file column instead, so
a combined multi-file report unfolds back into per-sample rows.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSummary,
}

func init() {
	RootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().BoolP("csv", "", false, "read and write comma-separated data")
	summaryCmd.Flags().BoolP("nopath", "", false, "strip directories from row names")
}

func runSummary(cmd *cobra.Command, args []string) error {
	sep := separator(boolOr(cmd, "csv", cfg.CSV))

	summary := model.NewSummary(sep)
	dutch := len(args) == 1
	for _, file := range args {
		if err := summary.Read(file, dutch); err != nil {
			return err
		}
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := render.RenderSummary(out, summary, sep, boolOr(cmd, "nopath", cfg.NoPath)); err != nil {
		return err
	}
	return out.Flush()
}
