// Package readers opens generated Parquet files for inspection and
// verification.
package readers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// ParquetReader exposes the schema and row-group layout of a Parquet file.
type ParquetReader struct {
	file        *os.File
	fileReader  *file.Reader
	arrowReader *pqarrow.FileReader
	schema      *arrow.Schema
}

// NewParquetReader opens the Parquet file at path.
func NewParquetReader(path string) (*ParquetReader, error) {
	if path == "" {
		return nil, errors.New("path is required for Parquet reader")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Parquet file: %w", err)
	}

	fileReader, err := file.NewParquetReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create Parquet file reader: %w", err)
	}

	arrowReader, err := pqarrow.NewFileReader(fileReader, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		fileReader.Close()
		f.Close()
		return nil, fmt.Errorf("failed to create Arrow reader: %w", err)
	}

	schema, err := arrowReader.Schema()
	if err != nil {
		fileReader.Close()
		f.Close()
		return nil, fmt.Errorf("failed to get schema: %w", err)
	}

	return &ParquetReader{
		file:        f,
		fileReader:  fileReader,
		arrowReader: arrowReader,
		schema:      schema,
	}, nil
}

// Schema returns the Arrow schema of the file.
func (r *ParquetReader) Schema() *arrow.Schema {
	return r.schema
}

// NumRows returns the total row count of the file.
func (r *ParquetReader) NumRows() int64 {
	return r.fileReader.NumRows()
}

// NumRowGroups returns the number of physical row groups.
func (r *ParquetReader) NumRowGroups() int {
	return r.fileReader.NumRowGroups()
}

// RowGroupRows returns the row count of the i-th row group.
func (r *ParquetReader) RowGroupRows(i int) int64 {
	return r.fileReader.RowGroup(i).NumRows()
}

// ReadTable materializes the whole file as an Arrow table.
func (r *ParquetReader) ReadTable(ctx context.Context) (arrow.Table, error) {
	table, err := r.arrowReader.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	return table, nil
}

// Close closes the reader and the underlying file.
func (r *ParquetReader) Close() error {
	var err error
	if r.fileReader != nil {
		err = r.fileReader.Close()
		r.fileReader = nil
		// The parquet reader closes the file it wraps.
		r.file = nil
		return err
	}
	if r.file != nil {
		err = r.file.Close()
		r.file = nil
	}
	return err
}
