// Package convert turns parquet files into CSV files, one output per input.
package convert

import (
	"path/filepath"

	"github.com/vegasq/parqplot/internal/reader"
)

// Result records the outcome for one input file: the produced CSV path, or
// the error that made the file unconvertible.
type Result struct {
	Input  string
	Output string
	Err    error
}

// OutputPath derives the CSV path for a parquet input, placed in outDir.
// The recognized parquet suffix is stripped from the base name and ".csv"
// appended.
func OutputPath(input, outDir string) string {
	base := reader.TrimSuffix(filepath.Base(input))
	return filepath.Join(outDir, base+".csv")
}

// Files converts each parquet file independently to CSV in outDir. A
// file's load or write failure skips that file only and is recorded in its
// result; no cross-file schema check is performed.
func Files(paths []string, outDir string) []Result {
	results := make([]Result, 0, len(paths))

	for _, path := range paths {
		ds, err := reader.LoadFile(path)
		if err != nil {
			results = append(results, Result{Input: path, Err: err})
			continue
		}

		out := OutputPath(path, outDir)
		if err := ds.WriteFile(out); err != nil {
			results = append(results, Result{Input: path, Err: err})
			continue
		}
		results = append(results, Result{Input: path, Output: out})
	}

	return results
}

// Outputs returns the produced CSV paths in input order, skipping failures.
func Outputs(results []Result) []string {
	outputs := make([]string, 0, len(results))
	for _, res := range results {
		if res.Err == nil {
			outputs = append(outputs, res.Output)
		}
	}
	return outputs
}
