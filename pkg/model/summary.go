package model

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yumyai/ggscreen/logger"
)

// AbsentMarker fills summary cells for genes a report never mentioned.
const AbsentMarker = "."

// Summary folds one or more rendered reports into a presence/absence matrix
// of report keys against gene names.
//
// The header of the first line read in the whole run defines the column
// layout for every subsequent file; header lines after that are recognized
// by their comment prefix and skipped. Reports rendered with a different
// column set than the first one are therefore read through the first
// header's layout. That matches the historical reader and stays.
type Summary struct {
	sep    string
	header []string
	genes  map[string]struct{}
	matrix map[string]map[string][]string // report key -> gene -> %COVERAGE values
	read   map[string]struct{}            // input files already consumed
}

func NewSummary(sep string) *Summary {
	return &Summary{
		sep:    sep,
		genes:  make(map[string]struct{}),
		matrix: make(map[string]map[string][]string),
		read:   make(map[string]struct{}),
	}
}

// Read consumes one rendered report. With dutch set, matrix keys come from
// each row's own file column instead of path, which folds a combined report
// back into its per-file rows. A path given twice is read once; repeats are
// skipped with a warning.
func (s *Summary) Read(path string, dutch bool) error {
	if _, dup := s.read[path]; dup {
		logger.Warn("Skipping duplicate report", zap.String("file", path))
		return nil
	}
	s.read[path] = struct{}{}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open report %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if s.header == nil {
			s.header = strings.Split(line, s.sep)
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		s.addRow(path, strings.Split(line, s.sep), dutch)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read report %s: %w", path, err)
	}
	return nil
}

// addRow files one report row under its key. Columns are matched to the run
// header by position; surplus columns are ignored, missing ones stay unset.
func (s *Summary) addRow(path string, cols []string, dutch bool) {
	row := make(map[string]string, len(s.header))
	for i, name := range s.header {
		if i < len(cols) {
			row[name] = cols[i]
		}
	}

	gene := row[ColGene]
	if gene == "" {
		return
	}

	key := path
	if dutch {
		key = row[ColFile]
	}

	s.genes[gene] = struct{}{}
	cells := s.matrix[key]
	if cells == nil {
		cells = make(map[string][]string)
		s.matrix[key] = cells
	}
	cells[gene] = append(cells[gene], row[ColCoverage])
}

// Genes returns every gene seen across all reports, sorted.
func (s *Summary) Genes() []string {
	genes := make([]string, 0, len(s.genes))
	for g := range s.genes {
		genes = append(genes, g)
	}
	sort.Strings(genes)
	return genes
}

// Keys returns every report key, sorted.
func (s *Summary) Keys() []string {
	keys := make([]string, 0, len(s.matrix))
	for k := range s.matrix {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NumFound counts the distinct genes found under a key, not the hits.
func (s *Summary) NumFound(key string) int {
	return len(s.matrix[key])
}

// Values returns the coverage values collected for a gene under a key, in
// arrival order, or nil when the gene never showed up there.
func (s *Summary) Values(key, gene string) []string {
	return s.matrix[key][gene]
}
