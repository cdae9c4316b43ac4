// Command mrgenquery synthesizes a batch of random range queries against a
// point dataset and writes them, with ground-truth match counts, to a
// query file that mrquery can consume.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/csqv/mrtree2d/internal/loader"
	"github.com/csqv/mrtree2d/internal/workload"
)

var (
	inputPath   string
	outputPath  string
	dialect     string
	count       int
	minFraction float64
	maxFraction float64
	seed        int64
)

var rootCmd = &cobra.Command{
	Use:   "mrgenquery",
	Short: "Generate a batch of random range queries sized by fraction of the dataset extent",
	RunE:  runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "", "path to the point dataset (required)")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "path to write the query file (required)")
	rootCmd.Flags().StringVar(&dialect, "dialect", "narrow", "point dialect: narrow or wide")
	rootCmd.Flags().IntVar(&count, "count", 100, "number of queries to generate")
	rootCmd.Flags().Float64Var(&minFraction, "min-fraction", 0.001, "minimum query size as a fraction of the dataset extent")
	rootCmd.Flags().Float64Var(&maxFraction, "max-fraction", 0.05, "maximum query size as a fraction of the dataset extent")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")
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
		return fmt.Errorf("mrgenquery: %w", err)
	}
	if len(pts) == 0 {
		return fmt.Errorf("mrgenquery: %s contained no usable points", inputPath)
	}

	mbr := workload.ComputeMBR(pts)
	rnd := rand.New(rand.NewSource(seed))
	queries := workload.GenerateByFraction(rnd, pts, mbr, count, minFraction, maxFraction)

	if err := loader.WriteQueries(outputPath, queries); err != nil {
		return fmt.Errorf("mrgenquery: %w", err)
	}
	fmt.Printf("wrote %d queries to %s\n", len(queries), outputPath)
	return nil
}

func parseDialect(s string) (loader.Dialect, error) {
	switch s {
	case "narrow":
		return loader.Narrow, nil
	case "wide":
		return loader.Wide, nil
	default:
		return 0, fmt.Errorf("mrgenquery: unknown dialect %q (want narrow or wide)", s)
	}
}
