package parquetio

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/rehtriage/internal/model"
)

// ValidateSchema checks that the Parquet schema contains all required columns
// and at least one SOFA or APACHE II measurement column.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	for _, col := range model.RequiredColumns {
		if !columns[col] {
			return fmt.Errorf("missing required column: %s", col)
		}
	}

	measurementCols := append(model.SofaColumns(), model.ApacheColumns()...)
	for _, col := range measurementCols {
		if columns[col] {
			return nil
		}
	}
	return fmt.Errorf("no measurement columns found; need at least one of: %s",
		strings.Join(measurementCols, ", "))
}
