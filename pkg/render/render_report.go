// Package render writes the tabular surfaces of ggscreen: per-file gene
// reports and the cross-report summary matrix.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/yumyai/ggscreen/pkg/model"
)

// Field separators a report can be rendered with.
const (
	SepTSV = "\t"
	SepCSV = ","
)

// RenderReportHeader writes the column header. It is emitted once per run,
// not once per file.
func RenderReportHeader(w io.Writer, sep string) error {
	_, err := fmt.Fprintln(w, strings.Join(model.ReportColumns, sep))
	return err
}

// RenderHits writes the report rows for one screened file, ordered by
// sequence id and then numeric start. Hits with the same locus keep their
// arrival order.
func RenderHits(w io.Writer, hits []model.GeneHit, sep string) error {
	sorted := make([]model.GeneHit, len(hits))
	copy(sorted, hits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Sequence != sorted[j].Sequence {
			return sorted[i].Sequence < sorted[j].Sequence
		}
		return sorted[i].Start < sorted[j].Start
	})

	for _, h := range sorted {
		fields := []string{
			h.File,
			h.Sequence,
			strconv.Itoa(h.Start),
			strconv.Itoa(h.End),
			h.Strand,
			h.Gene,
			h.Coverage,
			h.CoverageMap,
			h.Gaps,
			fmt.Sprintf("%.2f", h.PercentCoverage),
			fmt.Sprintf("%.2f", h.PercentIdentity),
			h.Database,
			h.Accession,
			h.Product,
			h.Resistance,
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, sep)); err != nil {
			return err
		}
	}
	return nil
}
