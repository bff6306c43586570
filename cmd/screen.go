package cmd

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/ggscreen/logger"
	"github.com/yumyai/ggscreen/pkg/db"
	"github.com/yumyai/ggscreen/pkg/model"
	"github.com/yumyai/ggscreen/pkg/render"
)

var screenCmd = &cobra.Command{
	Use:   "screen [flags] CONTIGS...",
	Short: "Screen contig files against a gene database",
	Long: `Screen contig files against a gene database

Each input file is aligned against the selected database and the accepted
hits are written to stdout, one row per gene found. Input may be FASTA or
FASTQ, optionally gzipped.

A row reports where the gene sits on the contig, how much of the reference
it covers and at which identity, plus the gene metadata carried by the
database. The header is printed once per run, so the output of a
multi-file run is a single well-formed report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScreen,
}

func init() {
	RootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("db", "d", "", "database to screen against")
	screenCmd.Flags().Float64P("minid", "", 0, "minimum percent identity handed to the aligner")
	screenCmd.Flags().Float64P("mincov", "", 0, "minimum percent coverage of the reference, inclusive")
	screenCmd.Flags().IntP("threads", "t", 0, "aligner threads")
	screenCmd.Flags().BoolP("csv", "", false, "write comma-separated output")
	screenCmd.Flags().BoolP("noheader", "", false, "suppress the column header")
	screenCmd.Flags().BoolP("nopath", "", false, "strip directories from the file column")
	screenCmd.Flags().BoolP("broken-map", "", false, "draw split coverage bars for hits with gap openings")
}

func runScreen(cmd *cobra.Command, args []string) error {
	dbname := stringOr(cmd, "db", cfg.Database)
	minid := float64Or(cmd, "minid", cfg.MinIdentity)
	mincov := float64Or(cmd, "mincov", cfg.MinCoverage)
	threads := intOr(cmd, "threads", cfg.Threads)
	sep := separator(boolOr(cmd, "csv", cfg.CSV))
	nopath := boolOr(cmd, "nopath", cfg.NoPath)

	registry, err := db.NewRegistry(cfg.DataDir)
	if err != nil {
		return err
	}
	database, err := registry.Load(dbname)
	if err != nil {
		return err
	}
	logger.Info("Using database",
		zap.String("name", database.Name),
		zap.String("type", database.Type),
		zap.Int("sequences", database.Sequences))

	// Inputs that need reformatting are staged in a per-run scratch
	// directory, gone when the run ends.
	runID := "run-" + uuid.New().String()
	staging := filepath.Join(os.TempDir(), "ggscreen-"+runID)
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return err
	}
	defer os.RemoveAll(staging)
	logger.Debug("Staging ready", zap.String("run", runID), zap.String("dir", staging))

	opts := model.ScreenOptions{
		Database:    dbname,
		MinCoverage: mincov,
		Separator:   sep,
		BrokenMap:   boolOr(cmd, "broken-map", cfg.BrokenMap),
	}
	blastOpts := model.BlastOptions{MinIdentity: minid, Threads: threads}

	out := bufio.NewWriter(cmd.OutOrStdout())

	if !boolOr(cmd, "noheader", cfg.NoHeader) {
		if err := render.RenderReportHeader(out, sep); err != nil {
			return err
		}
	}

	for _, file := range args {
		logger.Info("Processing", zap.String("file", file))

		query, err := model.StageQuery(file, staging)
		if err != nil {
			return err
		}

		label := file
		if nopath {
			label = filepath.Base(file)
		}

		var hits []model.GeneHit
		err = model.RunBlast(database.Type, database.Path, query, blastOpts, func(r io.Reader) error {
			var serr error
			hits, serr = model.ScreenStream(r, label, opts)
			return serr
		})
		if err != nil {
			return err
		}

		logger.Info("Found genes", zap.Int("count", len(hits)), zap.String("file", file))
		if err := render.RenderHits(out, hits, sep); err != nil {
			return err
		}
	}

	return out.Flush()
}
