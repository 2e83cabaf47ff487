package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Recognized input file suffixes. SuffixSnappy is a naming-convention
// superset of SuffixPlain, so a plain HasSuffix check on SuffixPlain
// already matches both without double-counting.
const (
	SuffixSnappy = ".snappy.parquet"
	SuffixPlain  = ".parquet"
)

// Discover returns the parquet files directly inside dir, in directory
// listing order. A directory with no matching files yields an empty slice,
// not an error.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), SuffixPlain) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

// TrimSuffix strips the recognized parquet suffix from a file name. The
// longer snappy suffix is checked first so "a.snappy.parquet" becomes "a",
// never "a.snappy".
func TrimSuffix(name string) string {
	if strings.HasSuffix(name, SuffixSnappy) {
		return strings.TrimSuffix(name, SuffixSnappy)
	}
	return strings.TrimSuffix(name, SuffixPlain)
}
