package model

import (
	"bufio"
	"fmt"
	"io"
)

// ScreenOptions configures the hit pipeline for one run.
type ScreenOptions struct {
	Database    string  // run database name, used when a subject id has no composite parts
	MinCoverage float64 // percent, inclusive lower bound on reference coverage
	Separator   string  // output field separator, stripped from product text
	BrokenMap   bool    // draw two-part coverage bars for hits with gap openings
}

// Screener filters, deduplicates and enriches the alignment rows of one
// input file. Build a fresh Screener per file so the dedup set never leaks
// across files.
type Screener struct {
	opts ScreenOptions
	file string
	seen map[hitKey]struct{}
	hits []GeneHit
}

// The aligner reports one candidate per (query, span) pair per subject, so
// the query span triple identifies a locus.
type hitKey struct {
	seq        string
	start, end int
}

func NewScreener(file string, opts ScreenOptions) *Screener {
	return &Screener{
		opts: opts,
		file: file,
		seen: make(map[hitKey]struct{}),
	}
}

// Add runs one raw aligner row through the pipeline. Dropped rows, either a
// repeated query span or coverage under the threshold, produce no error;
// only malformed rows do.
func (s *Screener) Add(line string) error {
	rec, err := ParseAlignmentRecord(line, s.file)
	if err != nil {
		return err
	}

	// First alignment for a query span wins, whatever later ones score.
	key := hitKey{seq: rec.QueryID, start: rec.QueryStart, end: rec.QueryEnd}
	if _, dup := s.seen[key]; dup {
		return nil
	}
	s.seen[key] = struct{}{}

	pccov := 100 * float64(rec.Length-rec.Gaps) / float64(rec.SubjectLen)
	if pccov < s.opts.MinCoverage {
		return nil
	}

	s.hits = append(s.hits, s.enrich(rec, pccov))
	return nil
}

// enrich turns an accepted record into a report-ready hit.
func (s *Screener) enrich(rec AlignmentRecord, pccov float64) GeneHit {
	parts, ok := DecomposeSeqID(rec.SubjectID)
	if !ok {
		parts = FallbackSeqID(rec.SubjectID, s.opts.Database)
	}

	broken := s.opts.BrokenMap && rec.GapOpens > 0

	return GeneHit{
		File:            s.file,
		Sequence:        rec.QueryID,
		Start:           rec.QueryStart,
		End:             rec.QueryEnd,
		Strand:          rec.StrandSymbol(),
		Gene:            parts.Gene,
		Coverage:        fmt.Sprintf("%d-%d/%d", rec.SubjectStart, rec.SubjectEnd, rec.SubjectLen),
		CoverageMap:     CoverageMap(rec.SubjectStart, rec.SubjectEnd, rec.SubjectLen, broken),
		Gaps:            fmt.Sprintf("%d/%d", rec.GapOpens, rec.Gaps),
		PercentCoverage: pccov,
		PercentIdentity: rec.PercentID,
		Database:        parts.Database,
		Accession:       parts.Accession,
		Product:         CleanProduct(rec.Title, s.opts.Separator),
		Resistance:      parts.Resistance,
	}
}

// Hits returns the accepted hits in arrival order.
func (s *Screener) Hits() []GeneHit {
	return s.hits
}

// ScreenStream feeds every line of r through a fresh Screener and returns
// the accepted hits. file labels the hits and any malformed-row error.
func ScreenStream(r io.Reader, file string, opts ScreenOptions) ([]GeneHit, error) {
	s := NewScreener(file, opts)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := s.Add(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading alignments for %s: %w", file, err)
	}

	return s.Hits(), nil
}
