package model

import (
	"strconv"
	"strings"
)

// ParseAlignmentRecord converts one raw tab-separated aligner row into a
// typed record. source names the input file the row belongs to and is only
// used for error reporting.
//
// Minus-strand rows carry their subject coordinates high-to-low; they are
// swapped here so SubjectStart <= SubjectEnd always holds. Callers read
// Strand to recover the direction.
func ParseAlignmentRecord(line, source string) (AlignmentRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != NumAlignmentFields {
		return AlignmentRecord{}, &MalformedRowError{Source: source, Fields: len(fields), Line: line}
	}

	rec := AlignmentRecord{
		QueryID:      fields[0],
		QueryStart:   atoi(fields[1]),
		QueryEnd:     atoi(fields[2]),
		QueryLen:     atoi(fields[3]),
		SubjectID:    fields[4],
		SubjectStart: atoi(fields[5]),
		SubjectEnd:   atoi(fields[6]),
		SubjectLen:   atoi(fields[7]),
		Strand:       fields[8],
		EValue:       atof(fields[9]),
		Length:       atoi(fields[10]),
		PercentID:    atof(fields[11]),
		Gaps:         atoi(fields[12]),
		GapOpens:     atoi(fields[13]),
		Title:        fields[14],
	}

	if rec.Minus() {
		rec.SubjectStart, rec.SubjectEnd = rec.SubjectEnd, rec.SubjectStart
	}

	return rec, nil
}

// String to int helper. The aligner output is machine generated, so only the
// field count is validated; anything unparseable coerces to zero.
func atoi(s string) int {
	i, _ := strconv.Atoi(strings.TrimSpace(s))
	return i
}

// String to float64 helper.
func atof(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
