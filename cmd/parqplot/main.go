package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vegasq/parqplot/internal/combine"
	"github.com/vegasq/parqplot/internal/convert"
	"github.com/vegasq/parqplot/internal/dataset"
	"github.com/vegasq/parqplot/internal/reader"
	"github.com/vegasq/parqplot/internal/scatter"
	"github.com/vegasq/parqplot/internal/schema"
)

const (
	combinedCSVName = "combined_output.csv"
	defaultPlotName = "combined_scatter.png"
)

var (
	combineFlag     = flag.Bool("combine", false, "Combine matching files into one CSV before saving")
	xFlag           = flag.String("x", "", "X-axis column for plotting")
	yFlag           = flag.String("y", "", "Y-axis column for plotting")
	plotFlag        = flag.Bool("plot", false, "Enable scatterplot of selected columns")
	separateFlag    = flag.Bool("separate-plots", false, "Generate separate plots per file")
	combinePlotFlag = flag.Bool("combine-plot", false, "Generate a combined plot")
	saveFigFlag     = flag.String("save-fig", "", "Path to save combined plot (e.g., ./plot.png)")
	legendFlag      = flag.Bool("legend", false, "Enable legend in combined plot")
	schemaFlag      = flag.Bool("schema", false, "Show schema information instead of converting")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <folder>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert Parquet files to CSV with optional combining and plotting.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE the folder argument.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./data\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --combine ./data\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --plot --x temperature --y pressure --separate-plots ./data\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --combine --combine-plot --plot --x temperature --y pressure --legend --save-fig plot.png ./data\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --schema ./data\n", os.Args[0])
	}

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing folder argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	folder := flag.Arg(0)

	files, err := reader.Discover(folder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("No Parquet files found.")
		return
	}

	if *schemaFlag {
		handleSchemaMode(files)
		return
	}

	var combined *dataset.Dataset
	var csvFiles []string

	if *combineFlag {
		combined, csvFiles = runCombine(folder, files)
	} else {
		csvFiles = runConvert(folder, files)
	}

	if *plotFlag {
		runPlot(folder, combined, csvFiles)
	}
}

// handleSchemaMode prints a schema table per discovered file. Unreadable
// files get a diagnostic and are skipped.
func handleSchemaMode(files []string) {
	for _, file := range files {
		columns, err := schema.Describe(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			continue
		}
		schema.Render(os.Stdout, file, columns)
	}
}

// runCombine merges the schema-compatible files, writes the combined CSV
// into folder, and returns the combined dataset plus the CSV paths to feed
// the plotting stage.
func runCombine(folder string, files []string) (*dataset.Dataset, []string) {
	combined, results := combine.Files(files)
	for _, res := range results {
		switch {
		case errors.Is(res.Err, combine.ErrSchemaMismatch):
			fmt.Fprintf(os.Stderr, "Skipping %s: column headers don't match.\n", res.Path)
		case res.Err != nil:
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", res.Path, res.Err)
		}
	}

	if combined == nil {
		fmt.Fprintln(os.Stderr, "No matching Parquet files could be combined.")
		return nil, nil
	}

	out := filepath.Join(folder, combinedCSVName)
	if err := combined.WriteFile(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
		return combined, nil
	}
	fmt.Printf("Combined CSV saved: %s\n", out)
	return combined, []string{out}
}

// runConvert converts each file to CSV in folder and returns the produced
// paths in input order.
func runConvert(folder string, files []string) []string {
	results := convert.Files(files, folder)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", res.Input, res.Err)
			continue
		}
		fmt.Printf("Saved CSV: %s\n", res.Output)
	}
	return convert.Outputs(results)
}

// runPlot dispatches to the right plotting mode. All plotting failures are
// soft: diagnostic, return, process keeps its success exit.
func runPlot(folder string, combined *dataset.Dataset, csvFiles []string) {
	if *xFlag == "" || *yFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: --x and --y are required for plotting.")
		return
	}
	if len(csvFiles) == 0 {
		fmt.Fprintln(os.Stderr, "No CSV outputs to plot.")
		return
	}

	opts := scatter.Options{
		X:        *xFlag,
		Y:        *yFlag,
		Legend:   *legendFlag,
		SavePath: *saveFigFlag,
	}
	if opts.SavePath == "" {
		opts.SavePath = filepath.Join(folder, defaultPlotName)
	}

	if *combineFlag && combined != nil && *combinePlotFlag {
		if err := scatter.FromDataset(combined, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Saved plot: %s\n", opts.SavePath)
		return
	}

	if *separateFlag {
		for _, res := range scatter.SeparateFiles(csvFiles, opts.X, opts.Y) {
			switch {
			case errors.Is(res.Err, scatter.ErrMissingColumns):
				fmt.Fprintf(os.Stderr, "Missing columns in %s\n", res.Path)
			case res.Err != nil:
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", res.Path, res.Err)
			default:
				fmt.Printf("Saved plot: %s\n", res.Image)
			}
		}
		return
	}

	results, err := scatter.CombinedFiles(csvFiles, opts)
	for _, res := range results {
		switch {
		case errors.Is(res.Err, scatter.ErrMissingColumns):
			fmt.Fprintf(os.Stderr, "Missing columns in %s\n", res.Path)
		case res.Err != nil:
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", res.Path, res.Err)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Saved combined plot: %s\n", opts.SavePath)
}
