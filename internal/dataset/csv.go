package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteCSV writes the dataset to w as comma-delimited text with a header
// row. Columns appear in schema order.
func (d *Dataset) WriteCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(d.Columns); err != nil {
		return err
	}

	record := make([]string, len(d.Columns))
	for _, row := range d.Rows {
		for i, col := range d.Columns {
			record[i] = FormatValue(row[col])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// WriteFile writes the dataset as CSV to the given path, creating or
// truncating the file.
func (d *Dataset) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writeErr := d.WriteCSV(f)
	closeErr := f.Close()

	if writeErr != nil {
		return writeErr
	}
	return closeErr
}

// LoadCSV reads a CSV file produced by WriteFile back into a dataset. The
// first record becomes the schema; all cell values are loaded as strings.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	csvReader := csv.NewReader(f)
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file: %s", path)
	}

	ds := New(records[0])
	ds.Rows = make([]map[string]interface{}, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]interface{}, len(ds.Columns))
		for i, col := range ds.Columns {
			row[col] = record[i]
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}
