package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/TFMV/pqcorpus/pkg/core"
	"github.com/TFMV/pqcorpus/pkg/readers"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesCanonicalCorpus(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(DefaultPrefix, DefaultWriterConfig(), nil)

	rep, err := runner.Run(context.Background(), dir, DefaultScenarios())
	require.NoError(t, err)
	require.Len(t, rep.Entries, 1)

	entry := rep.Entries[0]
	assert.Equal(t, 1, entry.ID)
	assert.Equal(t, filepath.Join(dir, "pq-table-1"), entry.Path)
	assert.Equal(t, int64(DefaultRows), entry.Rows)
	assert.Equal(t, 3, entry.RowGroups)
	assert.Positive(t, entry.Bytes)

	r, err := readers.NewParquetReader(entry.Path)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, int64(1000), r.NumRows())
	assert.Equal(t, 3, r.NumRowGroups())
	assert.Equal(t, 6, r.Schema().NumFields())
}

func TestRunIsReproducible(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	runner := NewRunner(DefaultPrefix, DefaultWriterConfig(), nil)

	_, err := runner.Run(context.Background(), first, DefaultScenarios())
	require.NoError(t, err)
	_, err = runner.Run(context.Background(), second, DefaultScenarios())
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(first, "pq-table-1"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(second, "pq-table-1"))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed and scenarios must produce identical files")
}

func TestRunAgainstExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(DefaultPrefix, DefaultWriterConfig(), nil)

	_, err := runner.Run(context.Background(), dir, DefaultScenarios())
	require.NoError(t, err)

	// A second run against the same directory must not fail at creation.
	_, err = runner.Run(context.Background(), dir, DefaultScenarios())
	require.NoError(t, err)
}

func TestRunNumbersScenariosSequentially(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(DefaultPrefix, DefaultWriterConfig(), nil)

	scenarios := DefaultScenarios()
	extra := scenarios[0]
	extra.Name = "mixed-encodings-reseeded"
	extra.Seed = 43
	scenarios = append(scenarios, extra)

	rep, err := runner.Run(context.Background(), dir, scenarios)
	require.NoError(t, err)
	require.Len(t, rep.Entries, 2)

	assert.FileExists(t, filepath.Join(dir, "pq-table-1"))
	assert.FileExists(t, filepath.Join(dir, "pq-table-2"))
	assert.Equal(t, 1, rep.Entries[0].ID)
	assert.Equal(t, 2, rep.Entries[1].ID)
}

func TestRunFailsFastOnBadScenario(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(DefaultPrefix, DefaultWriterConfig(), nil)

	bad := core.Scenario{
		Name: "inverted-range",
		Seed: 1,
		Rows: 10,
		Columns: []core.ColumnSpec{
			{Name: "x", Type: arrow.PrimitiveTypes.Int16, Strategy: core.StrategyScalarRange, Min: 5, Max: -5},
		},
	}

	_, err := runner.Run(context.Background(), dir, []core.Scenario{bad})
	require.ErrorIs(t, err, core.ErrInvalidSpec)
	assert.Contains(t, err.Error(), "inverted-range")
	assert.NoFileExists(t, filepath.Join(dir, "pq-table-1"))
}

func TestBuildBatchDeterminism(t *testing.T) {
	sc := DefaultScenarios()[0]

	first, err := BuildBatch(sc)
	require.NoError(t, err)
	defer first.Release()

	second, err := BuildBatch(sc)
	require.NoError(t, err)
	defer second.Release()

	assert.True(t, array.RecordEqual(first, second))
	assert.Equal(t, int64(DefaultRows), first.NumRows())
	assert.Equal(t, int64(6), first.NumCols())
}
