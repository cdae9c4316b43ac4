// Command mrquery builds an MR-tree from a point dataset, runs every
// rectangle in a query file against it, verifies each verification object,
// and reports per-query and aggregate timing.
package main

import (
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
	queryPath string
	dialect   string
	capacity  int
	order     string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "mrquery",
	Short: "Run and verify a batch of range queries against an MR-tree",
	RunE:  runQuery,
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "", "path to the point dataset (required)")
	rootCmd.Flags().StringVar(&queryPath, "queries", "", "path to the query file (required)")
	rootCmd.Flags().StringVar(&dialect, "dialect", "narrow", "point dialect: narrow or wide")
	rootCmd.Flags().IntVar(&capacity, "capacity", 32, "leaf/internal node capacity")
	rootCmd.Flags().StringVar(&order, "order", "morton", "sort order: lexicographic or morton")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "print per-query results")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("queries")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runQuery(cmd *cobra.Command, args []string) error {
	log := logging.NewTextLogger(slog.LevelInfo)

	d, err := parseDialect(dialect)
	if err != nil {
		return err
	}
	pts, err := loader.LoadPoints(inputPath, d, log)
	if err != nil {
		return fmt.Errorf("mrquery: %w", err)
	}

	po, err := parseOrder(order)
	if err != nil {
		return err
	}
	root, err := mrtree2d.BulkLoad(pts, capacity, po)
	if err != nil {
		return fmt.Errorf("mrquery: %w", err)
	}

	queries, err := loader.LoadQueries(queryPath)
	if err != nil {
		return fmt.Errorf("mrquery: %w", err)
	}

	var total mrtree2d.Stats
	mismatches := 0
	start := time.Now()
	for i, q := range queries {
		if err := mrtree2d.ValidateRect(q.Rect); err != nil {
			fmt.Fprintf(os.Stderr, "mrquery: skipping query %d: %v\n", i, err)
			continue
		}
		var s mrtree2d.Stats
		result := mrtree2d.QueryAndVerify(root, q.Rect, &s)
		verified := result.Check(root.Digest()) == nil
		if !verified {
			mismatches++
		}
		log.LogQuery(len(result.Matching), s.NodesVisited, s.NodesPruned, verified)
		if verbose {
			fmt.Printf("query %d: matching=%d nodes_visited=%d nodes_pruned=%d verified=%t query_time=%s verify_time=%s\n",
				i, len(result.Matching), s.NodesVisited, s.NodesPruned, verified, s.QueryTime, s.VerifyTime)
		}
		total.NodesVisited += s.NodesVisited
		total.NodesPruned += s.NodesPruned
		total.PointsExamined += s.PointsExamined
		total.PointsReturned += len(result.Matching)
		total.QueryTime += s.QueryTime
		total.VerifyTime += s.VerifyTime
	}
	elapsed := time.Since(start)

	fmt.Printf("queries:         %d\n", len(queries))
	fmt.Printf("mismatches:      %d\n", mismatches)
	fmt.Printf("total wall time: %s\n", elapsed)
	fmt.Printf("total query cpu: %s\n", total.QueryTime)
	fmt.Printf("total verify cpu: %s\n", total.VerifyTime)
	fmt.Printf("nodes visited:   %d\n", total.NodesVisited)
	fmt.Printf("nodes pruned:    %d\n", total.NodesPruned)
	fmt.Printf("points returned: %d\n", total.PointsReturned)

	if mismatches > 0 {
		return fmt.Errorf("mrquery: %d of %d queries failed verification", mismatches, len(queries))
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
		return 0, fmt.Errorf("mrquery: unknown dialect %q (want narrow or wide)", s)
	}
}

func parseOrder(s string) (mrtree2d.PointOrder, error) {
	switch s {
	case "lexicographic":
		return mrtree2d.OrderLexicographic, nil
	case "morton":
		return mrtree2d.OrderMorton, nil
	default:
		return 0, fmt.Errorf("mrquery: unknown order %q (want lexicographic or morton)", s)
	}
}
