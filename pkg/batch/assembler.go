// Package batch assembles generated columns into validated Arrow records.
package batch

import (
	"fmt"

	"github.com/TFMV/pqcorpus/pkg/core"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Assemble combines a schema and its columns into one record, validating
// structural consistency first. The returned record's row count is the shared
// column length.
func Assemble(schema *arrow.Schema, columns []arrow.Array) (arrow.Record, error) {
	if err := validateColumns(schema, columns); err != nil {
		return nil, err
	}

	rows := int64(0)
	if len(columns) > 0 {
		rows = int64(columns[0].Len())
	}
	return array.NewRecord(schema, columns, rows), nil
}

// Validate re-checks a record's structural invariants. It runs at assembly
// and again immediately before serialization, so a record modified between
// the two cannot reach the encoder.
func Validate(record arrow.Record) error {
	cols := make([]arrow.Array, record.NumCols())
	for i := range cols {
		cols[i] = record.Column(i)
	}
	if err := validateColumns(record.Schema(), cols); err != nil {
		return err
	}
	if len(cols) > 0 && int64(cols[0].Len()) != record.NumRows() {
		return fmt.Errorf("%w: record claims %d rows but columns hold %d",
			core.ErrBatchValidation, record.NumRows(), cols[0].Len())
	}
	return nil
}

func validateColumns(schema *arrow.Schema, columns []arrow.Array) error {
	if schema.NumFields() != len(columns) {
		return fmt.Errorf("%w: schema has %d fields but %d columns supplied",
			core.ErrBatchValidation, schema.NumFields(), len(columns))
	}

	for i, col := range columns {
		field := schema.Field(i)
		if !arrow.TypeEqual(field.Type, col.DataType()) {
			return fmt.Errorf("%w: column %q has type %s, schema expects %s",
				core.ErrBatchValidation, field.Name, col.DataType(), field.Type)
		}
		if i > 0 && col.Len() != columns[0].Len() {
			return fmt.Errorf("%w: column %q has length %d, expected %d",
				core.ErrBatchValidation, field.Name, col.Len(), columns[0].Len())
		}
		if lst, ok := col.(*array.List); ok {
			if err := validateList(field.Name, lst); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateList checks the offsets invariants for a list column: length+1
// offsets, starting at zero, non-decreasing, bounded by the child length.
func validateList(name string, lst *array.List) error {
	offsets := lst.Offsets()
	if len(offsets) != lst.Len()+1 {
		return fmt.Errorf("%w: list column %q has %d offsets for %d rows",
			core.ErrBatchValidation, name, len(offsets), lst.Len())
	}
	if offsets[0] != 0 {
		return fmt.Errorf("%w: list column %q offsets start at %d, expected 0",
			core.ErrBatchValidation, name, offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return fmt.Errorf("%w: list column %q offsets decrease at row %d (%d -> %d)",
				core.ErrBatchValidation, name, i-1, offsets[i-1], offsets[i])
		}
	}
	childLen := int32(lst.ListValues().Len())
	if last := offsets[len(offsets)-1]; last > childLen {
		return fmt.Errorf("%w: list column %q final offset %d exceeds child length %d",
			core.ErrBatchValidation, name, last, childLen)
	}
	return nil
}
