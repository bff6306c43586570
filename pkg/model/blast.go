package model

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// Residue types a database can hold. They decide which aligner runs.
const (
	DBTypeNucl = "nucl"
	DBTypeProt = "prot"
)

// OutFormat is the tabular layout requested from the aligner. The parser in
// record.go depends on this exact field order, change them together.
const OutFormat = "6 qseqid qstart qend qlen sseqid sstart send slen sstrand evalue length pident gaps gapopen stitle"

// Candidate alignments worse than this are not worth reporting.
const maxEValue = "1E-20"

// BlastOptions carries the per-run knobs of an aligner invocation.
type BlastOptions struct {
	MinIdentity float64 // percent identity cutoff, nucleotide searches only
	Threads     int
}

// BlastCommand assembles the aligner command line for one query file
// against an indexed database. Nucleotide databases get blastn, protein
// databases blastx.
func BlastCommand(dbtype, dbpath, query string, opts BlastOptions) (string, []string) {
	var name string
	var args []string

	switch dbtype {
	case DBTypeProt:
		name = "blastx"
	default:
		name = "blastn"
		// Plasmid-borne genes repeat a lot, so keep low-complexity
		// filtering off and let the identity cutoff do the work.
		args = append(args,
			"-task", "blastn",
			"-dust", "no",
			"-perc_identity", strconv.FormatFloat(opts.MinIdentity, 'f', -1, 64),
		)
	}

	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}

	args = append(args,
		"-db", dbpath,
		"-query", query,
		"-num_threads", strconv.Itoa(threads),
		"-evalue", maxEValue,
		"-culling_limit", "1",
		"-outfmt", OutFormat,
	)
	return name, args
}

// RunBlast executes the aligner for one query file and hands its stdout,
// one candidate alignment per line, to consume while the process runs.
func RunBlast(dbtype, dbpath, query string, opts BlastOptions, consume func(io.Reader) error) error {
	name, args := BlastCommand(dbtype, dbpath, query, opts)

	cmd := exec.Command(name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", name, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to execute %s: %w", name, err)
	}

	consumeErr := consume(stdout)
	if consumeErr != nil {
		// The consumer bailed early. Swallow whatever the aligner still
		// has to say so it can exit and Wait cannot stall on a full pipe.
		io.Copy(io.Discard, stdout)
	}
	waitErr := cmd.Wait()

	if consumeErr != nil {
		return consumeErr
	}
	if waitErr != nil {
		return fmt.Errorf("%s failed: %w: %s", name, waitErr, strings.TrimSpace(stderr.String()))
	}
	return nil
}
