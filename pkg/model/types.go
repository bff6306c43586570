package model

import "fmt"

// NumAlignmentFields is the exact column count of one raw aligner row, as
// requested through OutFormat.
const NumAlignmentFields = 15

// ReportColumns is the canonical column order of a rendered report. The
// first name carries the comment prefix so the header line can be emitted,
// and later recognized by the summary reader, as-is.
var ReportColumns = []string{
	"#FILE", "SEQUENCE", "START", "END", "STRAND",
	"GENE", "COVERAGE", "COVERAGE_MAP", "GAPS",
	"%COVERAGE", "%IDENTITY", "DATABASE", "ACCESSION", "PRODUCT", "RESISTANCE",
}

// Column names the summary reader looks up in a parsed report row.
const (
	ColFile     = "#FILE"
	ColGene     = "GENE"
	ColCoverage = "%COVERAGE"
)

// AlignmentRecord is one aligner row after normalization. Subject
// coordinates always satisfy SubjectStart <= SubjectEnd; minus-strand rows
// arrive reversed from the aligner and are swapped during parsing.
type AlignmentRecord struct {
	QueryID      string
	QueryStart   int
	QueryEnd     int
	QueryLen     int
	SubjectID    string
	SubjectStart int
	SubjectEnd   int
	SubjectLen   int
	Strand       string // "plus" or "minus"
	EValue       float64
	Length       int // alignment length, gaps included
	PercentID    float64
	Gaps         int // gapped bases across the alignment
	GapOpens     int
	Title        string // free-text subject description
}

// Minus reports whether the alignment lies on the reverse strand.
func (r *AlignmentRecord) Minus() bool {
	return r.Strand == "minus"
}

// StrandSymbol returns "-" for minus-strand alignments and "+" otherwise.
func (r *AlignmentRecord) StrandSymbol() string {
	if r.Minus() {
		return "-"
	}
	return "+"
}

// GeneHit is one accepted, fully enriched alignment, carrying every value a
// report row needs.
type GeneHit struct {
	File            string
	Sequence        string
	Start           int
	End             int
	Strand          string
	Gene            string
	Coverage        string // "start-end/length" on the reference
	CoverageMap     string
	Gaps            string // "openings/bases"
	PercentCoverage float64
	PercentIdentity float64
	Database        string
	Accession       string
	Product         string
	Resistance      string
}

// MalformedRowError reports an aligner row whose field count does not match
// the requested tabular format. It names the input file the row came from.
type MalformedRowError struct {
	Source string
	Fields int
	Line   string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed alignment row from %s: got %d fields, want %d",
		e.Source, e.Fields, NumAlignmentFields)
}
