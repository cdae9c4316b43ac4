// Command mrbuild bulk-loads a point dataset into an MR-tree and reports
// construction timing and tree shape, in the spirit of the original
// Test2DIndex.cpp harness.
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/csqv/mrtree2d"
	"github.com/csqv/mrtree2d/internal/loader"
	"github.com/csqv/mrtree2d/internal/logging"
)

var (
	inputPath string
	dialect   string
	capacity  int
	order     string
	jsonLog   bool
)

var rootCmd = &cobra.Command{
	Use:   "mrbuild",
	Short: "Bulk-load a point dataset into an MR-tree and report timing and shape",
	RunE:  runBuild,
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "", "path to the point dataset (required)")
	rootCmd.Flags().StringVar(&dialect, "dialect", "narrow", "point dialect: narrow or wide")
	rootCmd.Flags().IntVar(&capacity, "capacity", 32, "leaf/internal node capacity")
	rootCmd.Flags().StringVar(&order, "order", "morton", "sort order: lexicographic or morton")
	rootCmd.Flags().BoolVar(&jsonLog, "json-log", false, "emit structured logs as JSON instead of text")
	_ = rootCmd.MarkFlagRequired("input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	log := logging.NewTextLogger(slog.LevelInfo)
	if jsonLog {
		log = logging.NewJSONLogger(slog.LevelInfo)
	}

	d, err := parseDialect(dialect)
	if err != nil {
		return err
	}
	pts, err := loader.LoadPoints(inputPath, d, log)
	if err != nil {
		return fmt.Errorf("mrbuild: %w", err)
	}
	if len(pts) == 0 {
		return fmt.Errorf("mrbuild: %s contained no usable points", inputPath)
	}

	po, err := parseOrder(order)
	if err != nil {
		return err
	}

	start := time.Now()
	root, err := mrtree2d.BulkLoad(pts, capacity, po)
	elapsed := time.Since(start)
	if err != nil {
		log.LogBulkLoad(len(pts), capacity, 0, "", err)
		return fmt.Errorf("mrbuild: %w", err)
	}

	stats := mrtree2d.ComputeTreeStats(root)
	digestHex := hex.EncodeToString(stats.Digest[:])
	log.LogBulkLoad(len(pts), capacity, stats.Height, digestHex, nil)

	fmt.Printf("points:      %d\n", len(pts))
	fmt.Printf("capacity:    %d\n", capacity)
	fmt.Printf("order:       %s\n", order)
	fmt.Printf("build time:  %s\n", elapsed)
	fmt.Printf("height:      %d\n", stats.Height)
	fmt.Printf("leaf count:  %d\n", stats.LeafCount)
	fmt.Printf("root MBR:    (%d,%d)-(%d,%d)\n", stats.MBR.LX, stats.MBR.LY, stats.MBR.UX, stats.MBR.UY)
	fmt.Printf("root digest: %s\n", digestHex)
	return nil
}

func parseDialect(s string) (loader.Dialect, error) {
	switch s {
	case "narrow":
		return loader.Narrow, nil
	case "wide":
		return loader.Wide, nil
	default:
		return 0, fmt.Errorf("mrbuild: unknown dialect %q (want narrow or wide)", s)
	}
}

func parseOrder(s string) (mrtree2d.PointOrder, error) {
	switch s {
	case "lexicographic":
		return mrtree2d.OrderLexicographic, nil
	case "morton":
		return mrtree2d.OrderMorton, nil
	default:
		return 0, fmt.Errorf("mrbuild: unknown order %q (want lexicographic or morton)", s)
	}
}
