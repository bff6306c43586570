package db

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Setup builds the aligner index for a named database, next to its
// sequences file. Safe to rerun, the index is simply rebuilt.
func (r *Registry) Setup(name string) (*Database, error) {
	d, err := r.Load(name)
	if err != nil {
		return nil, err
	}

	args := []string{
		"-in", d.Path,
		"-title", d.Name,
		"-dbtype", d.Type,
		"-hash_index",
		"-logfile", os.DevNull,
	}
	cmd := exec.Command("makeblastdb", args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		// Will be print to output (due to stderr.)
		return nil, fmt.Errorf("makeblastdb on %q failed: %w - %s", name, err, strings.TrimSpace(string(output)))
	}

	return d, nil
}
