package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yumyai/ggscreen/pkg/model"
)

// Multiple coverage values for one gene under one key share a cell.
const valueSeparator = ";"

// RenderSummary writes the presence/absence matrix: one row per report key,
// one column per gene seen anywhere, both sorted. Cells hold the gene's
// coverage values or the absence marker. nopath shortens row names to their
// basename after sorting, so row order never depends on it.
func RenderSummary(w io.Writer, s *model.Summary, sep string, nopath bool) error {
	genes := s.Genes()

	header := append([]string{"#FILE", "NUM_FOUND"}, genes...)
	if _, err := fmt.Fprintln(w, strings.Join(header, sep)); err != nil {
		return err
	}

	for _, key := range s.Keys() {
		name := key
		if nopath {
			name = filepath.Base(name)
		}

		row := make([]string, 0, len(genes)+2)
		row = append(row, name, strconv.Itoa(s.NumFound(key)))
		for _, gene := range genes {
			if values := s.Values(key, gene); len(values) > 0 {
				row = append(row, strings.Join(values, valueSeparator))
			} else {
				row = append(row, model.AbsentMarker)
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, sep)); err != nil {
			return err
		}
	}
	return nil
}
