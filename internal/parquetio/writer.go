package parquetio

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/rehtriage/internal/model"
)

// Writer streams ScoredRow records to a Parquet file.
type Writer struct {
	file   *os.File
	writer *parquet.GenericWriter[model.ScoredRow]
	rows   int64
}

// Create creates (or truncates) path and returns a Writer for it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create parquet file: %w", err)
	}
	w := parquet.NewGenericWriter[model.ScoredRow](f)
	return &Writer{file: f, writer: w}, nil
}

// Write appends rows.
func (w *Writer) Write(rows []model.ScoredRow) error {
	n, err := w.writer.Write(rows)
	w.rows += int64(n)
	if err != nil {
		return fmt.Errorf("write scored rows: %w", err)
	}
	return nil
}

// Rows returns the number of rows written so far.
func (w *Writer) Rows() int64 {
	return w.rows
}

// Close flushes the footer and closes the file.
func (w *Writer) Close() error {
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	if err := w.file.Sync(); err != nil {
		w.file.Close()
		return fmt.Errorf("sync parquet file: %w", err)
	}
	return w.file.Close()
}

// WriteEvaluations writes rows to path as an evaluation export.
func WriteEvaluations(path string, rows []model.EvaluationRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[model.EvaluationRow](f)
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("write evaluation rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}

// ReadScored loads every scored row from path.
func ReadScored(path string) ([]model.ScoredRow, error) {
	rows, err := parquet.ReadFile[model.ScoredRow](path)
	if err != nil {
		return nil, fmt.Errorf("read scored parquet: %w", err)
	}
	return rows, nil
}
