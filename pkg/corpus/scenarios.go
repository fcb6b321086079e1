package corpus

import (
	"github.com/TFMV/pqcorpus/pkg/core"
	"github.com/apache/arrow-go/v18/arrow"
)

// Corpus defaults. The row-group size is deliberately smaller than the batch
// so every file spans multiple row groups, exercising boundary handling in
// the decoder under fuzz.
const (
	DefaultSeed         = 42
	DefaultRows         = 1000
	DefaultRowGroupSize = DefaultRows * 3 / 8
	DefaultPrefix       = "pq-table"
)

// NoDictColumn is the column written with dictionary encoding disabled.
const NoDictColumn = "no_dict"

// DefaultWriterConfig returns the writer configuration used for the shipped
// corpus.
func DefaultWriterConfig() core.WriterConfig {
	return core.WriterConfig{
		RowGroupSize: DefaultRowGroupSize,
		NoDictionary: []string{NoDictColumn},
	}
}

// DefaultScenarios returns the built-in scenario list. Each column is tuned
// to provoke a specific physical encoding: tiny strings for the dictionary
// path, a repeated constant for run-length encoding, a wide string domain
// for the plain path, and a nested list for repetition levels.
func DefaultScenarios() []core.Scenario {
	return []core.Scenario{
		{
			Name: "mixed-encodings",
			Seed: DefaultSeed,
			Rows: DefaultRows,
			Columns: []core.ColumnSpec{
				{
					Name:            "a",
					Type:            arrow.PrimitiveTypes.Int16,
					Strategy:        core.StrategyScalarRange,
					Min:             -10000,
					Max:             10000,
					NullProbability: 0.2,
				},
				{
					Name:     "b",
					Type:     arrow.PrimitiveTypes.Float64,
					Strategy: core.StrategyScalarRange,
					Min:      -1e10,
					Max:      1e10,
				},
				{
					// Tiny strings to trigger dictionary encoding.
					Name:            "c",
					Type:            arrow.BinaryTypes.String,
					Strategy:        core.StrategyBoundedString,
					MinLength:       0,
					MaxLength:       3,
					NullProbability: 0.2,
				},
				{
					Name:            "d",
					Type:            arrow.PrimitiveTypes.Int64,
					Strategy:        core.StrategyListOfScalar,
					Min:             -10000,
					Max:             10000,
					NullProbability: 0.2,
				},
				{
					// A repeated constant to trigger RLE.
					Name:     "e",
					Type:     arrow.PrimitiveTypes.Int16,
					Strategy: core.StrategyConstant,
					Constant: 42,
				},
				{
					Name:            NoDictColumn,
					Type:            arrow.BinaryTypes.String,
					Strategy:        core.StrategyBoundedString,
					MinLength:       0,
					MaxLength:       30,
					NullProbability: 0.2,
				},
			},
			MetadataKeys:   []string{"key1", "key2"},
			MetadataValues: []string{"value1", ""},
		},
	}
}
