// Package scatter renders scatter plots of two dataset columns as PNG
// images.
//
// Each figure is an explicit plot.Plot built, drawn, and saved in one call;
// no canvas state is shared between renders. Plots come in three shapes:
// one figure per CSV file, one overlay figure built from several CSV files,
// and one overlay figure built directly from an in-memory combined dataset.
package scatter

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vegasq/parqplot/internal/dataset"
)

// ErrMissingColumns marks a file that lacks the requested x and/or y
// column. The file's plot or series is skipped; the run continues.
var ErrMissingColumns = errors.New("missing requested columns")

// ImageSuffix is appended to a CSV file's stem to form its per-file plot
// path.
const ImageSuffix = "_scatter.png"

const (
	figWidth  = 6 * vg.Inch
	figHeight = 4 * vg.Inch
)

// Options configures a combined overlay plot.
type Options struct {
	X        string
	Y        string
	Legend   bool
	SavePath string
}

// Result records the outcome of plotting one CSV file: the image produced
// (per-file mode only), or the error that suppressed it.
type Result struct {
	Path  string
	Image string
	Err   error
}

// SeparateFiles renders one scatter plot per CSV file, saved next to the
// file with the ImageSuffix appended to its stem. A file that fails to
// load or lacks a requested column is skipped; its result carries the
// reason.
func SeparateFiles(paths []string, x, y string) []Result {
	results := make([]Result, 0, len(paths))

	for _, path := range paths {
		ds, err := dataset.LoadCSV(path)
		if err != nil {
			results = append(results, Result{Path: path, Err: err})
			continue
		}
		if !ds.HasColumn(x) || !ds.HasColumn(y) {
			results = append(results, Result{Path: path, Err: ErrMissingColumns})
			continue
		}

		p := newFigure(fmt.Sprintf("%s: %s vs %s", filepath.Base(path), x, y), x, y)
		s, err := newSeries(ds, x, y, SeriesColor(0))
		if err != nil {
			results = append(results, Result{Path: path, Err: err})
			continue
		}
		p.Add(s)

		image := strings.TrimSuffix(path, ".csv") + ImageSuffix
		if err := p.Save(figWidth, figHeight, image); err != nil {
			results = append(results, Result{Path: path, Err: fmt.Errorf("failed to save plot: %w", err)})
			continue
		}
		results = append(results, Result{Path: path, Image: image})
	}

	return results
}

// CombinedFiles renders all CSV files onto one shared figure, one colored
// series per file, and saves it to opts.SavePath. Series k takes the k-th
// palette color, k being the file's position in paths. Legend entries are
// the file base names and appear only when opts.Legend is set.
//
// Files that fail to load or lack a requested column contribute no series;
// their results carry the reason. The returned error covers the final save
// only.
func CombinedFiles(paths []string, opts Options) ([]Result, error) {
	p := newFigure(fmt.Sprintf("Combined Scatterplot of %s vs %s", opts.X, opts.Y), opts.X, opts.Y)
	results := make([]Result, 0, len(paths))

	for idx, path := range paths {
		ds, err := dataset.LoadCSV(path)
		if err != nil {
			results = append(results, Result{Path: path, Err: err})
			continue
		}
		if !ds.HasColumn(opts.X) || !ds.HasColumn(opts.Y) {
			results = append(results, Result{Path: path, Err: ErrMissingColumns})
			continue
		}

		s, err := newSeries(ds, opts.X, opts.Y, SeriesColor(idx))
		if err != nil {
			results = append(results, Result{Path: path, Err: err})
			continue
		}
		p.Add(s)
		if opts.Legend {
			p.Legend.Add(filepath.Base(path), s)
		}
		results = append(results, Result{Path: path})
	}

	if opts.Legend {
		p.Legend.Top = true
	}
	if err := p.Save(figWidth, figHeight, opts.SavePath); err != nil {
		return results, fmt.Errorf("failed to save plot: %w", err)
	}
	return results, nil
}

// FromDataset renders a combined dataset onto one figure and saves it to
// opts.SavePath. With opts.Legend set and a source column present, rows are
// grouped by source value in first-appearance order, one colored series and
// legend entry per group; otherwise all rows form a single series.
//
// Returns an error naming both columns if either is absent; nothing is
// rendered in that case.
func FromDataset(ds *dataset.Dataset, opts Options) error {
	if !ds.HasColumn(opts.X) || !ds.HasColumn(opts.Y) {
		return fmt.Errorf("columns %s and/or %s not found in dataset", opts.X, opts.Y)
	}

	p := newFigure(fmt.Sprintf("Combined Scatterplot of %s vs %s", opts.X, opts.Y), opts.X, opts.Y)

	if opts.Legend && ds.HasColumn(dataset.SourceColumn) {
		order, groups := groupBySource(ds)
		for idx, src := range order {
			s, err := newSeries(groups[src], opts.X, opts.Y, SeriesColor(idx))
			if err != nil {
				return err
			}
			p.Add(s)
			p.Legend.Add(src, s)
		}
		p.Legend.Top = true
	} else {
		s, err := newSeries(ds, opts.X, opts.Y, SeriesColor(0))
		if err != nil {
			return err
		}
		p.Add(s)
	}

	if err := p.Save(figWidth, figHeight, opts.SavePath); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// newFigure creates a titled, labeled figure with the grid enabled.
func newFigure(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Add(plotter.NewGrid())
	return p
}

// newSeries builds one scatter series from the dataset's x and y columns.
// Rows whose x or y value isn't numeric are left out of the series.
func newSeries(ds *dataset.Dataset, x, y string, c color.Color) (*plotter.Scatter, error) {
	pts := make(plotter.XYs, 0, ds.Len())
	for _, row := range ds.Rows {
		xv, okX := dataset.Float(row[x])
		yv, okY := dataset.Float(row[y])
		if okX && okY {
			pts = append(pts, plotter.XY{X: xv, Y: yv})
		}
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scatter series: %w", err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(2.5)
	return s, nil
}

// groupBySource splits a combined dataset into per-source groups, keyed and
// ordered by first appearance of each source value.
func groupBySource(ds *dataset.Dataset) ([]string, map[string]*dataset.Dataset) {
	var order []string
	groups := make(map[string]*dataset.Dataset)

	for _, row := range ds.Rows {
		src := dataset.FormatValue(row[dataset.SourceColumn])
		g, ok := groups[src]
		if !ok {
			g = dataset.New(ds.Columns)
			groups[src] = g
			order = append(order, src)
		}
		g.Rows = append(g.Rows, row)
	}

	return order, groups
}
