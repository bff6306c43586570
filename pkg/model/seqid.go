package model

import (
	"regexp"
	"strings"
)

// SeparatorToken splits the composite subject identifiers our curated
// databases use: database~~~gene~~~accession~~~resistance.
const SeparatorToken = "~~~"

// SeqIDParts is a decomposed composite subject identifier. Fields past the
// last separator stay empty.
type SeqIDParts struct {
	Database   string
	Gene       string
	Accession  string
	Resistance string
}

// DecomposeSeqID splits a composite subject identifier. ok is false when no
// gene name can be extracted; callers then fall back to FallbackSeqID with
// the whole identifier.
func DecomposeSeqID(raw string) (SeqIDParts, bool) {
	fields := strings.Split(raw, SeparatorToken)

	// Trailing separators contribute nothing, same as empty trailing
	// fields in the classic split semantics.
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) < 2 {
		return SeqIDParts{}, false
	}

	parts := SeqIDParts{Database: fields[0], Gene: fields[1]}
	if len(fields) > 2 {
		parts.Accession = fields[2]
	}
	if len(fields) > 3 {
		parts.Resistance = fields[3]
	}
	return parts, true
}

// FallbackSeqID wraps an unstructured subject identifier: the whole id
// becomes the gene name and the database is the one selected for the run.
func FallbackSeqID(raw, database string) SeqIDParts {
	return SeqIDParts{Database: database, Gene: raw}
}

var leadingWord = regexp.MustCompile(`^\S+\s+`)

// CleanProduct tidies a subject title for the PRODUCT column: characters
// that would collide with the output separator are stripped, and when the
// title still opens with a composite identifier that echoed the sequence id,
// the leading word is dropped.
func CleanProduct(title, sep string) string {
	product := title
	if sep != "" {
		product = strings.ReplaceAll(product, sep, "")
	}
	if strings.Contains(product, SeparatorToken) {
		product = leadingWord.ReplaceAllString(product, "")
	}
	return product
}
