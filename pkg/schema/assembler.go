// Package schema derives Arrow schemas from generated columns.
package schema

import (
	"fmt"

	"github.com/TFMV/pqcorpus/pkg/core"
	"github.com/apache/arrow-go/v18/arrow"
)

// Assemble builds a schema from generated columns and their names, attaching
// the given metadata pairs verbatim and order-preserving. Field types are
// inferred from the concrete column types. Duplicate field names and
// duplicate metadata keys are rejected.
func Assemble(columns []arrow.Array, names []string, metaKeys, metaValues []string) (*arrow.Schema, error) {
	if len(columns) != len(names) {
		return nil, fmt.Errorf("%w: %d columns but %d names",
			core.ErrBatchValidation, len(columns), len(names))
	}
	if len(metaKeys) != len(metaValues) {
		return nil, fmt.Errorf("%w: %d metadata keys but %d values",
			core.ErrDuplicateMetadataKey, len(metaKeys), len(metaValues))
	}

	seen := make(map[string]struct{}, len(names))
	fields := make([]arrow.Field, len(columns))
	for i, col := range columns {
		name := names[i]
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateField, name)
		}
		seen[name] = struct{}{}
		fields[i] = arrow.Field{Name: name, Type: col.DataType(), Nullable: true}
	}

	seenKeys := make(map[string]struct{}, len(metaKeys))
	for _, key := range metaKeys {
		if _, ok := seenKeys[key]; ok {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateMetadataKey, key)
		}
		seenKeys[key] = struct{}{}
	}

	if len(metaKeys) == 0 {
		return arrow.NewSchema(fields, nil), nil
	}
	md := arrow.NewMetadata(metaKeys, metaValues)
	return arrow.NewSchema(fields, &md), nil
}
