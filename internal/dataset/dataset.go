// Package dataset provides the in-memory tabular data model shared by the
// conversion, combining, and plotting stages.
//
// A Dataset keeps its column order explicit, unlike a bare slice of row
// maps, so that schema comparison and CSV output are deterministic.
package dataset

import (
	"fmt"
	"strconv"
)

// SourceColumn is the name of the column added to combined datasets to
// track which file each row came from.
const SourceColumn = "source"

// Dataset is an ordered sequence of rows sharing one column set.
//
// Columns is the dataset's schema: the ordered list of column names. Every
// row maps exactly those names to values.
type Dataset struct {
	Columns []string
	Rows    []map[string]interface{}
}

// New creates an empty dataset with the given ordered columns.
func New(columns []string) *Dataset {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Dataset{Columns: cols}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// HasColumn reports whether the dataset's schema contains name.
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// SchemaEquals reports whether two datasets have list-equal schemas.
// Comparison is order-sensitive: the same columns in a different order are
// not equal.
func (d *Dataset) SchemaEquals(other *Dataset) bool {
	if len(d.Columns) != len(other.Columns) {
		return false
	}
	for i, col := range d.Columns {
		if other.Columns[i] != col {
			return false
		}
	}
	return true
}

// AddSource appends the source-tracking column to the schema and sets it to
// name on every row. Intended only for datasets about to be combined.
func (d *Dataset) AddSource(name string) {
	d.Columns = append(d.Columns, SourceColumn)
	for _, row := range d.Rows {
		row[SourceColumn] = name
	}
}

// Append concatenates other's rows onto d. The caller is responsible for
// ensuring the schemas match.
func (d *Dataset) Append(other *Dataset) {
	d.Rows = append(d.Rows, other.Rows...)
}

// Float converts a cell value to float64 for plotting. Parquet readers
// produce typed numerics while CSV reloads produce strings, so both are
// handled. Returns false for values that aren't numeric.
func Float(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// FormatValue converts a cell value to its natural textual form for CSV
// output.
func FormatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
