// Package core provides the shared types and error taxonomy for the pqcorpus
// fuzz-seed corpus generator.
package core

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// Strategy selects how a column's values are produced.
type Strategy string

const (
	// StrategyScalarRange draws each value uniformly from [Min, Max].
	StrategyScalarRange Strategy = "scalar-range"

	// StrategyConstant repeats a single value for every row, with no nulls.
	// Aimed at the encoder's run-length path.
	StrategyConstant Strategy = "constant"

	// StrategyBoundedString draws string lengths uniformly from
	// [MinLength, MaxLength]. Tight bounds yield low-cardinality strings
	// that favor dictionary encoding; loose bounds defeat it.
	StrategyBoundedString Strategy = "bounded-string"

	// StrategyListOfScalar produces a variable-length list column whose
	// child values are drawn as scalar-range with the same spec.
	StrategyListOfScalar Strategy = "list-of-scalar"
)

// ColumnSpec describes one column to generate. For list columns, Type is the
// child element type and Min/Max/NullProbability apply to the child values.
// Immutable once constructed.
type ColumnSpec struct {
	// Name is the field name in the resulting schema.
	Name string

	// Type is the Arrow logical type of the values.
	Type arrow.DataType

	// Strategy selects the generation strategy.
	Strategy Strategy

	// NullProbability is the per-row probability of a null, in [0, 1].
	NullProbability float64

	// Min and Max bound the value domain for numeric strategies.
	Min float64
	Max float64

	// MinLength and MaxLength bound the string length for bounded-string.
	MinLength int
	MaxLength int

	// Constant is the repeated value for the constant strategy.
	Constant int64
}

// Scenario describes one logical batch of the corpus: a seeded set of column
// specs plus schema-level metadata. Scenarios with the same seed and specs
// produce byte-identical output.
type Scenario struct {
	// Name identifies the scenario in logs and reports.
	Name string

	// Seed feeds the deterministic generator.
	Seed int64

	// Rows is the number of rows in the batch.
	Rows int

	// Columns are the per-column generation specs, in schema order.
	Columns []ColumnSpec

	// MetadataKeys and MetadataValues are attached to the schema verbatim,
	// order-preserving. Values may be empty.
	MetadataKeys   []string
	MetadataValues []string
}

// WriterConfig configures the Parquet writer for a batch.
type WriterConfig struct {
	// RowGroupSize is the upper bound on rows per physical row group.
	RowGroupSize int64

	// NoDictionary lists column names for which dictionary encoding is
	// disabled.
	NoDictionary []string
}

// CorpusEntry records one output artifact of a corpus run.
type CorpusEntry struct {
	// ID is the 1-based sequence number of the file within the run.
	ID int `json:"id"`

	// Path is the file path on disk.
	Path string `json:"path"`

	// Scenario is the name of the scenario that produced the file.
	Scenario string `json:"scenario"`

	// Rows is the total row count written.
	Rows int64 `json:"rows"`

	// RowGroups is the number of physical row groups in the file.
	RowGroups int `json:"row_groups"`

	// Bytes is the file size on disk.
	Bytes int64 `json:"bytes"`
}
