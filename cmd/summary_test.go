package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yumyai/ggscreen/pkg/model"
)

func reportLine(file, gene, cov string) string {
	return tabs(
		file, "contig1", "1", "100", "+", gene,
		"1-100/100", "===============", "0/0",
		cov, "99.00", "resdb", "acc", "some product", "",
	)
}

func writeReportFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write report: %v", err)
	}
	return p
}

func TestSummaryCommand(t *testing.T) {
	t.Setenv("GGSCREEN_DATADIR", "")
	t.Setenv("GGSCREEN_CONFIG", "")
	dir := t.TempDir()
	header := strings.Join(model.ReportColumns, "\t")

	fileA := writeReportFile(t, dir, "a.tab",
		header,
		reportLine("a.fa", "geneX", "60.00"),
		reportLine("a.fa", "geneY", "99.99"),
	)
	fileB := writeReportFile(t, dir, "b.tab",
		header,
		reportLine("b.fa", "geneX", "100.00"),
	)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"summary", fileA, fileB})

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	want := strings.Join([]string{
		"#FILE\tNUM_FOUND\tgeneX\tgeneY",
		fileA + "\t2\t60.00\t99.99",
		fileB + "\t1\t100.00\t.",
	}, "\n") + "\n"
	if out.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestSummaryCommandConfigDrivenCSV(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "ggscreen.yaml")
	if err := os.WriteFile(cfgFile, []byte("csv: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GGSCREEN_CONFIG", cfgFile)
	t.Setenv("GGSCREEN_DATADIR", "")

	// The whole run speaks commas, input included.
	report := writeReportFile(t, dir, "a.csv",
		strings.Join(model.ReportColumns, ","),
		strings.Join([]string{
			"a.fa", "contig1", "1", "100", "+", "geneX",
			"1-100/100", "===============", "0/0",
			"60.00", "99.00", "resdb", "acc", "some product", "",
		}, ","),
	)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"summary", report})

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	want := "#FILE,NUM_FOUND,geneX\na.fa,1,60.00\n"
	if out.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestSummaryCommandSingleReportUsesFileColumn(t *testing.T) {
	t.Setenv("GGSCREEN_DATADIR", "")
	t.Setenv("GGSCREEN_CONFIG", "")
	dir := t.TempDir()

	combined := writeReportFile(t, dir, "combined.tab",
		strings.Join(model.ReportColumns, "\t"),
		reportLine("sampleA.fa", "geneX", "60.00"),
		reportLine("sampleB.fa", "geneY", "70.00"),
	)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"summary", combined})

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	want := strings.Join([]string{
		"#FILE\tNUM_FOUND\tgeneX\tgeneY",
		"sampleA.fa\t1\t60.00\t.",
		"sampleB.fa\t1\t.\t70.00",
	}, "\n") + "\n"
	if out.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", out.String(), want)
	}
}
