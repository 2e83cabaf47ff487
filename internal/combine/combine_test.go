package combine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/parqplot/internal/dataset"
)

type weatherRow struct {
	Temperature float64 `parquet:"temperature"`
	Pressure    float64 `parquet:"pressure"`
}

type humidityRow struct {
	Temperature float64 `parquet:"temperature"`
	Humidity    float64 `parquet:"humidity"`
}

func writeParquet[T any](t *testing.T, dir, filename string, rows []T) string {
	t.Helper()
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[T](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return path
}

func TestFiles_SchemaMismatchSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	f1 := writeParquet(t, tmpDir, "f1.parquet", []weatherRow{
		{Temperature: 21.5, Pressure: 1.2},
		{Temperature: 30.0, Pressure: 2.4},
	})
	f2 := writeParquet(t, tmpDir, "f2.parquet", []weatherRow{
		{Temperature: 45.0, Pressure: 3.8},
	})
	f3 := writeParquet(t, tmpDir, "f3.parquet", []humidityRow{
		{Temperature: 18.0, Humidity: 0.6},
	})

	combined, results := Files([]string{f1, f2, f3})

	if combined == nil {
		t.Fatal("Files() returned nil dataset")
	}
	if combined.Len() != 3 {
		t.Errorf("combined rows = %d, want 3 (f1+f2 only)", combined.Len())
	}

	// Reference schema plus the appended source column.
	if got := combined.Columns[len(combined.Columns)-1]; got != dataset.SourceColumn {
		t.Errorf("last column = %q, want %q", got, dataset.SourceColumn)
	}

	wantSources := []string{"f1.parquet", "f1.parquet", "f2.parquet"}
	for i, row := range combined.Rows {
		if row[dataset.SourceColumn] != wantSources[i] {
			t.Errorf("row %d source = %v, want %s", i, row[dataset.SourceColumn], wantSources[i])
		}
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Err != nil || results[1].Err != nil {
		t.Errorf("matching files reported errors: %v, %v", results[0].Err, results[1].Err)
	}
	if !errors.Is(results[2].Err, ErrSchemaMismatch) {
		t.Errorf("f3 error = %v, want ErrSchemaMismatch", results[2].Err)
	}
}

func TestFiles_LoadFailureSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	good := writeParquet(t, tmpDir, "good.parquet", []weatherRow{
		{Temperature: 21.5, Pressure: 1.2},
	})
	missing := filepath.Join(tmpDir, "missing.parquet")

	combined, results := Files([]string{missing, good})

	if combined == nil {
		t.Fatal("Files() returned nil dataset")
	}
	if combined.Len() != 1 {
		t.Errorf("combined rows = %d, want 1", combined.Len())
	}
	if results[0].Err == nil {
		t.Error("missing file should report an error")
	}
	if errors.Is(results[0].Err, ErrSchemaMismatch) {
		t.Error("load failure must not be reported as schema mismatch")
	}

	// The reference schema comes from the first file that loads, not the
	// first path given.
	if results[1].Err != nil {
		t.Errorf("good file reported error: %v", results[1].Err)
	}
}

func TestFiles_NoResult(t *testing.T) {
	tmpDir := t.TempDir()
	combined, results := Files([]string{
		filepath.Join(tmpDir, "a.parquet"),
		filepath.Join(tmpDir, "b.parquet"),
	})

	if combined != nil {
		t.Errorf("Files() = %v, want nil dataset", combined)
	}
	for i, res := range results {
		if res.Err == nil {
			t.Errorf("result %d expected an error", i)
		}
	}
}
