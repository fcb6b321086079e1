// Package writers serializes validated record batches into Parquet files.
package writers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/TFMV/pqcorpus/pkg/batch"
	"github.com/TFMV/pqcorpus/pkg/core"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// ParquetWriter writes record batches to a single Parquet file, splitting
// each batch into row groups of at most the configured size and disabling
// dictionary encoding for the configured columns.
type ParquetWriter struct {
	file   *os.File
	writer *pqarrow.FileWriter
	config core.WriterConfig
}

// NewParquetWriter creates a writer for the file at path. The file is
// created (truncated) immediately; the underlying Parquet writer is created
// on the first Write, once the schema is known.
func NewParquetWriter(path string, config core.WriterConfig) (*ParquetWriter, error) {
	if path == "" {
		return nil, errors.New("path is required for Parquet writer")
	}
	if config.RowGroupSize <= 0 {
		return nil, fmt.Errorf("row group size must be positive, got %d", config.RowGroupSize)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create Parquet file: %w", err)
	}

	return &ParquetWriter{
		file:   file,
		config: config,
	}, nil
}

// Write validates the record and hands it to the encoder in row-group-sized
// chunks. Any encoder error aborts the write; the partially written file is
// left on disk for the caller to deal with.
func (w *ParquetWriter) Write(ctx context.Context, record arrow.Record) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Last line of defense before serialization.
	if err := batch.Validate(record); err != nil {
		return err
	}

	if w.writer == nil {
		schema := record.Schema()

		opts := []parquet.WriterProperty{
			parquet.WithDictionaryDefault(true),
		}
		for _, name := range w.config.NoDictionary {
			opts = append(opts, parquet.WithDictionaryFor(name, false))
		}
		writeProps := parquet.NewWriterProperties(opts...)

		writer, err := pqarrow.NewFileWriter(
			schema,
			w.file,
			writeProps,
			pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema()),
		)
		if err != nil {
			return fmt.Errorf("failed to create Parquet writer: %w", err)
		}
		w.writer = writer
	}

	table := array.NewTableFromRecords(record.Schema(), []arrow.Record{record})
	defer table.Release()

	if err := w.writer.WriteTable(table, w.config.RowGroupSize); err != nil {
		return fmt.Errorf("failed to write row groups: %w", err)
	}
	return nil
}

// Close closes the writer and flushes any pending data.
func (w *ParquetWriter) Close() error {
	var err error

	if w.writer != nil {
		// The parquet writer closes the underlying sink along with itself.
		err = w.writer.Close()
		w.writer = nil
		w.file = nil
		return err
	}

	if w.file != nil {
		err = w.file.Close()
		w.file = nil
	}
	return err
}
