// Package db locates, inspects and indexes the gene databases under a data
// directory. Each database is one subdirectory holding a FASTA file named
// "sequences" whose headers carry composite identifiers, plus the aligner
// index built next to it by Setup.
package db

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"time"

	"github.com/shenwei356/bio/seqio/fastx"

	"github.com/yumyai/ggscreen/internal/util"
	"github.com/yumyai/ggscreen/pkg/model"
)

// Defining possible error
var ErrNoDatabase = errors.New("database is not installed")

// Name of the FASTA file every database directory must hold.
const sequenceFile = "sequences"

// Residue sniffing looks at the first records only; a database mixes types
// never, so that is plenty.
const sniffRecords = 100

// Database describes one installed gene database.
type Database struct {
	Name      string
	Path      string // the sequences FASTA, also the aligner index prefix
	Type      string // model.DBTypeNucl or model.DBTypeProt
	Sequences int
	Date      time.Time
}

// Registry is a data directory which hosts [name]/sequences databases.
type Registry struct {
	Dir string
}

func NewRegistry(dir string) (*Registry, error) {
	if !util.DirExists(dir) {
		return nil, fmt.Errorf("%w: %s", os.ErrNotExist, dir)
	}
	return &Registry{Dir: dir}, nil
}

// Resolve returns the sequences path of a named database.
func (r *Registry) Resolve(name string) (string, error) {
	p := path.Join(r.Dir, name, sequenceFile)
	if !util.FileExists(p) {
		return "", fmt.Errorf("%w: %q, looked in %s", ErrNoDatabase, name, r.Dir)
	}
	return p, nil
}

// Load resolves a named database and inspects its FASTA: sequence count,
// residue type and last-modified date.
func (r *Registry) Load(name string) (*Database, error) {
	p, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}

	count, dbtype, err := inspectFasta(p)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect database %q: %w", name, err)
	}

	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect database %q: %w", name, err)
	}

	return &Database{
		Name:      name,
		Path:      p,
		Type:      dbtype,
		Sequences: count,
		Date:      info.ModTime(),
	}, nil
}

// List loads every database under the data directory, sorted by name.
// Subdirectories without a sequences file are not databases and are ignored.
func (r *Registry) List() ([]*Database, error) {
	names, err := r.Names()
	if err != nil {
		return nil, err
	}

	dbs := make([]*Database, 0, len(names))
	for _, name := range names {
		d, err := r.Load(name)
		if err != nil {
			return nil, err
		}
		dbs = append(dbs, d)
	}
	return dbs, nil
}

// Names returns the installed database names, sorted.
func (r *Registry) Names() ([]string, error) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", r.Dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if util.FileExists(path.Join(r.Dir, entry.Name(), sequenceFile)) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// inspectFasta counts the records of a database FASTA and sniffs whether it
// holds nucleotide or protein sequences.
func inspectFasta(p string) (int, string, error) {
	fastxReader, err := fastx.NewReader(nil, p, "")
	if err != nil {
		return 0, "", err
	}
	defer fastxReader.Close()

	var count, nucl, residues int
	var record *fastx.Record
	for {
		record, err = fastxReader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, "", err
		}
		count++
		if count <= sniffRecords {
			n, total := countNucleotides(record.Seq.Seq)
			nucl += n
			residues += total
		}
	}
	if count == 0 {
		return 0, "", fmt.Errorf("no sequences in %s", p)
	}

	// Protein sequences still contain A, C, G and T amino acids, so an
	// overwhelming majority is required before calling it nucleotide.
	dbtype := model.DBTypeProt
	if residues > 0 && float64(nucl)/float64(residues) >= 0.9 {
		dbtype = model.DBTypeNucl
	}
	return count, dbtype, nil
}

func countNucleotides(seq []byte) (int, int) {
	n := 0
	for _, c := range seq {
		switch c {
		case 'A', 'C', 'G', 'T', 'U', 'N', 'a', 'c', 'g', 't', 'u', 'n':
			n++
		}
	}
	return n, len(seq)
}
