// Package report summarizes corpus runs for diagnostics output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/TFMV/pqcorpus/pkg/core"
)

// RunReport captures the outcome of one corpus generation run.
type RunReport struct {
	// RunID is a random identifier for correlating log lines; it never
	// enters the generated files.
	RunID string `json:"run_id"`

	// OutputDir is the corpus directory.
	OutputDir string `json:"output_dir"`

	// StartTime is when the run began.
	StartTime time.Time `json:"start_time"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration"`

	// Entries lists the files produced, in write order.
	Entries []core.CorpusEntry `json:"files"`
}

// TotalRows sums the row counts of all written files.
func (r *RunReport) TotalRows() int64 {
	var total int64
	for _, e := range r.Entries {
		total += e.Rows
	}
	return total
}

// TotalBytes sums the on-disk sizes of all written files.
func (r *RunReport) TotalBytes() int64 {
	var total int64
	for _, e := range r.Entries {
		total += e.Bytes
	}
	return total
}

// WriteJSON renders the report as indented JSON.
func (r *RunReport) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteText renders a human-readable summary.
func (r *RunReport) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "corpus written to %s (%d files, %d rows, %d bytes, %s)\n",
		r.OutputDir, len(r.Entries), r.TotalRows(), r.TotalBytes(), r.Duration.Round(time.Millisecond)); err != nil {
		return err
	}
	for _, e := range r.Entries {
		if _, err := fmt.Fprintf(w, "  %s: scenario %q, %d rows in %d row groups\n",
			e.Path, e.Scenario, e.Rows, e.RowGroups); err != nil {
			return err
		}
	}
	return nil
}
