// Package schema inspects parquet file schemas and renders them as ASCII
// tables.
package schema

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/parqplot/internal/reader"
)

// Column describes one leaf column of a parquet file.
type Column struct {
	Name       string
	Type       string
	Repetition string
}

// Describe extracts the leaf columns of a parquet file in schema order.
// Nested fields use dot notation (e.g. "address.street").
func Describe(path string) ([]Column, error) {
	r, err := reader.NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var columns []Column
	for _, field := range r.Schema().Fields() {
		columns = append(columns, describeField(field, "")...)
	}
	return columns, nil
}

// Render writes the columns of one file as a table headed by the file name.
func Render(w io.Writer, file string, columns []Column) {
	fmt.Fprintf(w, "%s\n", file)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NAME", "TYPE", "REPETITION"})
	for _, col := range columns {
		table.Append([]string{col.Name, col.Type, col.Repetition})
	}
	table.Render()
}

func describeField(field parquet.Field, prefix string) []Column {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}

	// Groups contribute their leaves, not themselves.
	if children := field.Fields(); len(children) > 0 {
		var columns []Column
		for _, child := range children {
			columns = append(columns, describeField(child, name)...)
		}
		return columns
	}

	return []Column{{
		Name:       name,
		Type:       friendlyType(field),
		Repetition: repetition(field),
	}}
}

func repetition(field parquet.Field) string {
	switch {
	case field.Repeated():
		return "repeated"
	case field.Optional():
		return "optional"
	default:
		return "required"
	}
}

// friendlyType maps a field's logical or physical type to a short
// user-facing name.
func friendlyType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	if lt := field.Type().LogicalType(); lt != nil {
		switch lt.String() {
		case "STRING", "UTF8":
			return "STRING"
		case "DATE":
			return "DATE"
		case "TIME":
			return "TIME"
		case "TIMESTAMP":
			return "TIMESTAMP"
		case "DECIMAL":
			return "DECIMAL"
		case "UUID":
			return "UUID"
		case "JSON":
			return "JSON"
		}
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}
