// Package cmd wires the ggscreen commands: screen, summary, list, setup and
// check. Configuration resolves in layers, defaults then config file then
// environment, with command-line flags on top.
package cmd

import (
	"github.com/shenwei356/bio/seq"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/yumyai/ggscreen/internal/config"
	"github.com/yumyai/ggscreen/internal/version"
	"github.com/yumyai/ggscreen/logger"
)

// Run configuration shared by the subcommands, resolved in the persistent
// pre-run before any of them executes.
var cfg config.Config

var RootCmd = &cobra.Command{
	Use:     "ggscreen",
	Short:   "Mass screening of contigs for gene databases",
	Version: version.Long(),
	Long: `ggscreen - mass screening of contigs for gene databases

Screens assembled contigs against curated gene databases and reports the
genes found, one row per hit, plus a summary matrix across samples.

Reports go to stdout, logs to stderr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("datadir") {
			cfg.DataDir, _ = cmd.Flags().GetString("datadir")
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		if err := logger.InitLogger(logLevel(cfg.LogLevel, quiet)); err != nil {
			return err
		}

		// Only counting and reformatting sequences here, no need to
		// validate residues.
		seq.ValidateSeq = false
		return nil
	},
}

// logLevel maps the configured log level name to zap. --quiet wins over the
// config file; anything unset or unknown runs at info.
func logLevel(name string, quiet bool) zapcore.Level {
	if quiet {
		return zapcore.WarnLevel
	}
	if name == "" {
		return zapcore.InfoLevel
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func init() {
	RootCmd.PersistentFlags().StringP("datadir", "", "",
		"directory holding the gene databases (default from config, then ./db)")
	RootCmd.PersistentFlags().BoolP("quiet", "q", false,
		"only log warnings and errors")
}

// Execute runs the selected command and returns the process exit code.
func Execute() int {
	defer logger.Sync()

	if err := RootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
