package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/ggscreen/logger"
	"github.com/yumyai/ggscreen/pkg/db"
)

var setupCmd = &cobra.Command{
	Use:   "setup [DATABASE...]",
	Short: "Build the aligner indices for installed databases",
	Long: `Build the aligner indices for installed databases

Without arguments every database under the data directory is indexed.
Rerunning is safe, existing indices are rebuilt.`,
	RunE: runSetup,
}

func init() {
	RootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	registry, err := db.NewRegistry(cfg.DataDir)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names, err = registry.Names()
		if err != nil {
			return err
		}
	}

	for _, name := range names {
		d, err := registry.Setup(name)
		if err != nil {
			return err
		}
		logger.Info("Indexed database",
			zap.String("name", d.Name),
			zap.String("type", d.Type),
			zap.Int("sequences", d.Sequences))
	}
	return nil
}
