// Command normalize widens a raw car dataset CSV with min-max normalized
// feature columns so the recommendation service can score it.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/carpilot/carpilot/internal/etl"
)

func main() {
	inPath := flag.String("in", "car_dataset.csv", "input CSV with raw feature columns")
	outPath := flag.String("out", "cars_dataset_normalized.csv", "output CSV with added _norm columns")
	cols := flag.String("cols", "", "comma-separated columns to normalize (default: built-in feature list)")
	flag.Parse()

	columns := etl.DefaultColumns
	if *cols != "" {
		columns = strings.Split(*cols, ",")
		for i := range columns {
			columns[i] = strings.TrimSpace(columns[i])
		}
	}

	in, err := os.Open(*inPath)
	if err != nil {
		os.Stderr.WriteString("open input: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer in.Close()

	out, err := os.Create(*outPath)
	if err != nil {
		os.Stderr.WriteString("create output: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer out.Close()

	if err := etl.Normalize(in, out, columns); err != nil {
		os.Stderr.WriteString("normalize: " + err.Error() + "\n")
		os.Exit(1)
	}

	os.Stdout.WriteString("normalization complete: " + *outPath + "\n")
}
