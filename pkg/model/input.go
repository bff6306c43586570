package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
)

// Extensions the aligner reads directly. Everything else gets staged.
var plainFastaExts = map[string]bool{
	".fa":    true,
	".fasta": true,
	".fna":   true,
	".ffn":   true,
}

// StageQuery readies one query file for the aligner. Plain FASTA is handed
// over untouched; compressed or FASTQ input is rewritten as plain FASTA
// under dir, which the caller owns and cleans up.
func StageQuery(file, dir string) (string, error) {
	if plainFastaExts[strings.ToLower(filepath.Ext(file))] {
		if _, err := os.Stat(file); err != nil {
			return "", fmt.Errorf("unreadable input %s: %w", file, err)
		}
		return file, nil
	}

	fastxReader, err := fastx.NewReader(nil, file, "")
	if err != nil {
		return "", fmt.Errorf("unreadable input %s: %w", file, err)
	}
	defer fastxReader.Close()

	staged := filepath.Join(dir, strings.TrimSuffix(filepath.Base(file), ".gz")+".fasta")
	out, err := os.Create(staged)
	if err != nil {
		return "", fmt.Errorf("failed to stage %s: %w", file, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	var record *fastx.Record
	for {
		record, err = fastxReader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", fmt.Errorf("unreadable input %s: %w", file, err)
		}
		fmt.Fprintf(w, ">%s\n%s\n", record.ID, record.Seq.Seq)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to stage %s: %w", file, err)
	}

	return staged, nil
}
