// Package combine merges schema-compatible parquet files into one dataset
// with per-row source tracking.
package combine

import (
	"errors"
	"path/filepath"

	"github.com/vegasq/parqplot/internal/dataset"
	"github.com/vegasq/parqplot/internal/reader"
)

// ErrSchemaMismatch marks a file whose columns don't match the reference
// schema established by the first loadable file.
var ErrSchemaMismatch = errors.New("column headers don't match")

// Result records the outcome for one input file: either it was included
// (Err nil, Rows set) or skipped (Err set).
type Result struct {
	Path string
	Rows int
	Err  error
}

// Files loads each path in order and concatenates the ones whose schema
// matches the first successfully loaded file's schema. Every included
// file's rows are tagged with a source column holding the file's base name.
//
// Load failures and schema mismatches skip that file only; they are
// reported through the returned results, never by aborting the run. The
// dataset is nil when no file could be combined.
func Files(paths []string) (*dataset.Dataset, []Result) {
	var combined *dataset.Dataset
	var reference *dataset.Dataset
	results := make([]Result, 0, len(paths))

	for _, path := range paths {
		ds, err := reader.LoadFile(path)
		if err != nil {
			results = append(results, Result{Path: path, Err: err})
			continue
		}

		if reference == nil {
			reference = dataset.New(ds.Columns)
		} else if !ds.SchemaEquals(reference) {
			results = append(results, Result{Path: path, Err: ErrSchemaMismatch})
			continue
		}

		ds.AddSource(filepath.Base(path))
		if combined == nil {
			combined = dataset.New(ds.Columns)
		}
		combined.Append(ds)
		results = append(results, Result{Path: path, Rows: ds.Len()})
	}

	return combined, results
}
