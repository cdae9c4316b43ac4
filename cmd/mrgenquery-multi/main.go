// Command mrgenquery-multi synthesizes one query file per fixed
// selectivity level (0.0001, 0.001, 0.01, 0.1), each named
// <prefix>_sel_<selectivity>.csv, mirroring QueryGenMultiple.cpp's sweep.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/csqv/mrtree2d/internal/loader"
	"github.com/csqv/mrtree2d/internal/workload"
)

var (
	inputPath string
	prefix    string
	dialect   string
	count     int
	seed      int64
)

var rootCmd = &cobra.Command{
	Use:   "mrgenquery-multi",
	Short: "Generate one query file per fixed selectivity level",
	RunE:  runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "", "path to the point dataset (required)")
	rootCmd.Flags().StringVar(&prefix, "prefix", "queries", "output file prefix")
	rootCmd.Flags().StringVar(&dialect, "dialect", "narrow", "point dialect: narrow or wide")
	rootCmd.Flags().IntVar(&count, "count", 100, "number of queries to generate per selectivity level")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	_ = rootCmd.MarkFlagRequired("input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, err := parseDialect(dialect)
	if err != nil {
		return err
	}
	pts, err := loader.LoadPoints(inputPath, d, nil)
	if err != nil {
		return fmt.Errorf("mrgenquery-multi: %w", err)
	}
	if len(pts) == 0 {
		return fmt.Errorf("mrgenquery-multi: %s contained no usable points", inputPath)
	}

	mbr := workload.ComputeMBR(pts)
	rnd := rand.New(rand.NewSource(seed))

	for _, sel := range workload.SelectivityLevels {
		queries := workload.GenerateBySelectivity(rnd, pts, mbr, count, sel)
		outputPath := fmt.Sprintf("%s_sel_%s.csv", prefix, strconv.FormatFloat(sel, 'f', -1, 64))
		if err := loader.WriteQueries(outputPath, queries); err != nil {
			return fmt.Errorf("mrgenquery-multi: %w", err)
		}
		fmt.Printf("wrote %d queries to %s\n", len(queries), outputPath)
	}
	return nil
}

func parseDialect(s string) (loader.Dialect, error) {
	switch s {
	case "narrow":
		return loader.Narrow, nil
	case "wide":
		return loader.Wide, nil
	default:
		return 0, fmt.Errorf("mrgenquery-multi: unknown dialect %q (want narrow or wide)", s)
	}
}
