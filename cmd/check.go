package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/ggscreen/logger"
	"github.com/yumyai/ggscreen/pkg/db"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the external aligner tools are installed and recent enough",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	missing := 0
	for _, tool := range db.RequiredTools {
		version, err := db.CheckTool(tool)
		if err != nil {
			logger.Error("Tool check failed", zap.String("tool", tool.Name), zap.Error(err))
			missing++
			continue
		}
		logger.Info("Found tool", zap.String("tool", tool.Name), zap.String("version", version))
	}

	if missing > 0 {
		return fmt.Errorf("%d of %d required tools missing or outdated", missing, len(db.RequiredTools))
	}
	logger.Info("All required tools present")
	return nil
}
