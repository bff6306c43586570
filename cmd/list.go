package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yumyai/ggscreen/pkg/db"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the databases installed under the data directory",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	registry, err := db.NewRegistry(cfg.DataDir)
	if err != nil {
		return err
	}

	dbs, err := registry.List()
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	fmt.Fprintln(out, strings.Join([]string{"DATABASE", "SEQUENCES", "DBTYPE", "DATE"}, "\t"))
	for _, d := range dbs {
		fmt.Fprintf(out, "%s\t%d\t%s\t%s\n", d.Name, d.Sequences, d.Type, d.Date.Format("2006-01-02"))
	}
	return out.Flush()
}
