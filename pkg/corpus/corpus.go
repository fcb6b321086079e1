// Package corpus orchestrates corpus generation: it turns scenarios into
// validated record batches and writes them as sequentially numbered Parquet
// files.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/TFMV/pqcorpus/pkg/batch"
	"github.com/TFMV/pqcorpus/pkg/core"
	"github.com/TFMV/pqcorpus/pkg/gen"
	"github.com/TFMV/pqcorpus/pkg/schema"
	"github.com/TFMV/pqcorpus/pkg/writers"
	"github.com/TFMV/pqcorpus/report"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner writes a corpus of Parquet files into a directory. Scenarios are
// processed strictly in order; the first failure aborts the run and is
// returned to the caller. Files already written, including a partially
// written file from a failed write, are left on disk.
type Runner struct {
	prefix string
	writer core.WriterConfig
	log    *zap.Logger
}

// NewRunner creates a Runner. An empty prefix falls back to DefaultPrefix;
// a nil logger falls back to zap.NewNop().
func NewRunner(prefix string, writerCfg core.WriterConfig, log *zap.Logger) *Runner {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		prefix: prefix,
		writer: writerCfg,
		log:    log,
	}
}

// Run generates every scenario into outDir, creating the directory if
// needed. File names are the prefix followed by a 1-based sequence number
// that resets each run.
func (r *Runner) Run(ctx context.Context, outDir string, scenarios []core.Scenario) (*report.RunReport, error) {
	start := time.Now()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	rep := &report.RunReport{
		RunID:     uuid.NewString(),
		OutputDir: outDir,
		StartTime: start,
	}
	log := r.log.With(zap.String("run_id", rep.RunID))

	sampleID := 0
	for _, sc := range scenarios {
		sampleID++
		entry, err := r.writeScenario(ctx, log, outDir, sampleID, sc)
		if err != nil {
			return nil, fmt.Errorf("scenario %q (sample %d): %w", sc.Name, sampleID, err)
		}
		rep.Entries = append(rep.Entries, entry)
	}

	rep.Duration = time.Since(start)
	return rep, nil
}

func (r *Runner) writeScenario(ctx context.Context, log *zap.Logger, outDir string, id int, sc core.Scenario) (core.CorpusEntry, error) {
	record, err := BuildBatch(sc)
	if err != nil {
		return core.CorpusEntry{}, err
	}
	defer record.Release()

	path := filepath.Join(outDir, fmt.Sprintf("%s-%d", r.prefix, id))
	log.Info("writing corpus file",
		zap.String("path", path),
		zap.String("scenario", sc.Name),
		zap.Int("sample", id),
		zap.Int64("rows", record.NumRows()))

	w, err := writers.NewParquetWriter(path, r.writer)
	if err != nil {
		return core.CorpusEntry{}, err
	}
	if err := w.Write(ctx, record); err != nil {
		// The write error is what the caller needs; the close is best-effort.
		_ = w.Close()
		return core.CorpusEntry{}, err
	}
	if err := w.Close(); err != nil {
		return core.CorpusEntry{}, fmt.Errorf("failed to close %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return core.CorpusEntry{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	groups := int((record.NumRows() + r.writer.RowGroupSize - 1) / r.writer.RowGroupSize)
	return core.CorpusEntry{
		ID:        id,
		Path:      path,
		Scenario:  sc.Name,
		Rows:      record.NumRows(),
		RowGroups: groups,
		Bytes:     info.Size(),
	}, nil
}

// BuildBatch generates, assembles, and validates the record for one
// scenario. The result is a pure function of the scenario.
func BuildBatch(sc core.Scenario) (arrow.Record, error) {
	g := gen.New(sc.Seed)

	cols := make([]arrow.Array, 0, len(sc.Columns))
	names := make([]string, 0, len(sc.Columns))
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	for _, spec := range sc.Columns {
		col, err := g.Column(spec, sc.Rows)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
		names = append(names, spec.Name)
	}

	sch, err := schema.Assemble(cols, names, sc.MetadataKeys, sc.MetadataValues)
	if err != nil {
		return nil, err
	}
	return batch.Assemble(sch, cols)
}
