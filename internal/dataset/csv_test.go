package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCSV_ColumnOrder(t *testing.T) {
	// Header must follow schema order, not alphabetical order.
	ds := New([]string{"temperature", "pressure", "source"})
	ds.Rows = []map[string]interface{}{
		{"temperature": 21.5, "pressure": 1.2, "source": "a.parquet"},
	}

	var buf bytes.Buffer
	if err := ds.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "temperature,pressure,source" {
		t.Errorf("header = %q, want %q", lines[0], "temperature,pressure,source")
	}
	if lines[1] != "21.5,1.2,a.parquet" {
		t.Errorf("row = %q, want %q", lines[1], "21.5,1.2,a.parquet")
	}
}

func TestWriteCSV_EmptyDataset(t *testing.T) {
	ds := New([]string{"temperature", "pressure"})

	var buf bytes.Buffer
	if err := ds.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "temperature,pressure" {
		t.Errorf("output = %q, want header only", got)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	ds := New([]string{"temperature", "pressure"})
	ds.Rows = []map[string]interface{}{
		{"temperature": 21.5, "pressure": 1.2},
		{"temperature": 30.0, "pressure": 2.4},
		{"temperature": 45.25, "pressure": 3.8},
	}

	path := filepath.Join(t.TempDir(), "readings.csv")
	if err := ds.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}

	if !loaded.SchemaEquals(ds) {
		t.Errorf("reloaded columns = %v, want %v", loaded.Columns, ds.Columns)
	}
	if loaded.Len() != ds.Len() {
		t.Errorf("reloaded rows = %d, want %d", loaded.Len(), ds.Len())
	}

	// Values come back as strings but must parse to the same numbers.
	for i, row := range loaded.Rows {
		got, ok := Float(row["temperature"])
		if !ok {
			t.Fatalf("row %d temperature %v not numeric", i, row["temperature"])
		}
		want, _ := Float(ds.Rows[i]["temperature"])
		if got != want {
			t.Errorf("row %d temperature = %v, want %v", i, got, want)
		}
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("LoadCSV() expected error for missing file")
	}
}
