package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yumyai/ggscreen/pkg/model"
)

func TestRenderReportHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReportHeader(&buf, SepTSV); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "#FILE\tSEQUENCE\tSTART\tEND\tSTRAND\tGENE\tCOVERAGE\tCOVERAGE_MAP\tGAPS\t%COVERAGE\t%IDENTITY\tDATABASE\tACCESSION\tPRODUCT\tRESISTANCE\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRenderHitsRow(t *testing.T) {
	hit := model.GeneHit{
		File:            "sample.fa",
		Sequence:        "contig1",
		Start:           100,
		End:             130,
		Strand:          "-",
		Gene:            "blaTEM",
		Coverage:        "5-35/861",
		CoverageMap:     "=..............",
		Gaps:            "0/0",
		PercentCoverage: 3.48432,
		PercentIdentity: 99.5,
		Database:        "ncbi",
		Accession:       "ACC123",
		Product:         "beta-lactamase TEM",
		Resistance:      "",
	}

	var buf bytes.Buffer
	if err := RenderHits(&buf, []model.GeneHit{hit}, SepTSV); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "sample.fa\tcontig1\t100\t130\t-\tblaTEM\t5-35/861\t=..............\t0/0\t3.48\t99.50\tncbi\tACC123\tbeta-lactamase TEM\t\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRenderHitsOrder(t *testing.T) {
	hits := []model.GeneHit{
		{Sequence: "contig2", Start: 50, Gene: "c"},
		{Sequence: "contig1", Start: 900, Gene: "b"},
		{Sequence: "contig1", Start: 7, Gene: "a"},
		// Same locus as the first contig2 hit, arrived later.
		{Sequence: "contig2", Start: 50, Gene: "d"},
	}

	var buf bytes.Buffer
	if err := RenderHits(&buf, hits, SepTSV); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var genes []string
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		genes = append(genes, strings.Split(line, "\t")[5])
	}
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if genes[i] != want[i] {
			t.Fatalf("got order %v, want %v", genes, want)
		}
	}

	// The input slice stays as it arrived.
	if hits[0].Gene != "c" {
		t.Errorf("input slice reordered: %+v", hits)
	}
}

func TestRenderHitsSortsSequencesLexically(t *testing.T) {
	// Sequence names sort as strings, so contig10 ranks before contig2.
	hits := []model.GeneHit{
		{Sequence: "contig2", Start: 1, Gene: "late"},
		{Sequence: "contig10", Start: 1, Gene: "early"},
	}

	var buf bytes.Buffer
	if err := RenderHits(&buf, hits, SepTSV); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "early") || !strings.Contains(lines[1], "late") {
		t.Errorf("wrong order:\n%s", buf.String())
	}
}

func TestRenderHitsCSV(t *testing.T) {
	hit := model.GeneHit{
		File: "sample.fa", Sequence: "contig1", Start: 1, End: 9, Strand: "+",
		Gene: "g", Coverage: "1-9/9", CoverageMap: "===============", Gaps: "0/0",
		PercentCoverage: 100, PercentIdentity: 100, Database: "db", Accession: "a",
		Product: "p", Resistance: "r",
	}

	var buf bytes.Buffer
	if err := RenderHits(&buf, []model.GeneHit{hit}, SepCSV); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := strings.TrimSuffix(buf.String(), "\n")
	if got := len(strings.Split(line, ",")); got != len(model.ReportColumns) {
		t.Errorf("got %d comma fields, want %d: %q", got, len(model.ReportColumns), line)
	}
}
