// Package loader reads delimited-text point datasets (wide and narrow
// CSV) and query files. It is the only place in this module that touches
// a filesystem; the core package (github.com/csqv/mrtree2d) never
// performs I/O.
package loader

import (
	"encoding/csv"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"strconv"

	"github.com/csqv/mrtree2d"
	"github.com/csqv/mrtree2d/internal/logging"
	"github.com/csqv/mrtree2d/internal/workload"
)

// Dialect selects which CSV column layout a point file uses.
type Dialect int

const (
	// Wide reads columns id,year,month,day,time,x,y and uses only
	// columns 0, 5, and 6; the textual id is hashed to a uint32 modulo
	// 2^32-1, a lossy but deterministic normalization the source data
	// format simply accepts.
	Wide Dialect = iota
	// Narrow reads columns x,y and assigns identifiers sequentially
	// starting from zero.
	Narrow
)

// LoadPoints reads a point dataset from path in the given dialect.
// Malformed lines are skipped with a warning logged, matching the
// original loader's skip-and-continue behavior. A file that yields zero
// points is not an error here either: LoadPoints then returns an empty
// slice and a nil error, and callers check the count themselves.
func LoadPoints(path string, dialect Dialect, log *logging.Logger) ([]mrtree2d.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var points []mrtree2d.Record
	var nextID uint32
	lineNo := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			logWarn(log, "loader: skipping unparsable line %d in %s: %v", lineNo, path, err)
			continue
		}
		if len(row) == 0 {
			continue
		}

		rec, ok := parseRow(row, dialect, &nextID)
		if !ok {
			logWarn(log, "loader: skipping invalid line %d in %s: %v", lineNo, path, row)
			continue
		}
		points = append(points, rec)
	}

	logInfo(log, "loader: loaded %d points from %s", len(points), path)
	return points, nil
}

func parseRow(row []string, dialect Dialect, nextID *uint32) (mrtree2d.Record, bool) {
	switch dialect {
	case Narrow:
		if len(row) < 2 {
			return mrtree2d.Record{}, false
		}
		x, err1 := strconv.ParseInt(row[0], 10, 32)
		y, err2 := strconv.ParseInt(row[1], 10, 32)
		if err1 != nil || err2 != nil {
			return mrtree2d.Record{}, false
		}
		id := *nextID
		*nextID++
		return mrtree2d.Record{ID: id, Loc: mrtree2d.Point{X: int32(x), Y: int32(y)}}, true

	default: // Wide
		if len(row) < 7 {
			return mrtree2d.Record{}, false
		}
		x, err1 := strconv.ParseInt(row[5], 10, 32)
		y, err2 := strconv.ParseInt(row[6], 10, 32)
		if err1 != nil || err2 != nil {
			return mrtree2d.Record{}, false
		}
		id := hashID(row[0])
		return mrtree2d.Record{ID: id, Loc: mrtree2d.Point{X: int32(x), Y: int32(y)}}, true
	}
}

// hashID hashes a textual identifier to a uint32 modulo 2^32-1, for the
// wide-CSV dialect. This can collide and can never produce the value
// 2^32-1; that is an accepted input-side normalization, not a bug.
func hashID(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32() % (^uint32(0))
}

// QueryRow is one parsed line of a query file. It holds only the
// rectangle: LoadQueries reads LX/LY/UX/UY and does not keep the
// informational trailer columns (matching count, selectivity), which are
// produced by the workload generator and consumed only by
// humans/spreadsheets.
type QueryRow struct {
	Rect mrtree2d.Rect
}

// LoadQueries reads a query file, ignoring any trailer columns beyond the
// first four.
func LoadQueries(path string) ([]QueryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows []QueryRow
	lineNo := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			continue
		}
		if len(row) < 4 {
			continue
		}
		lx, err1 := strconv.ParseInt(row[0], 10, 32)
		ly, err2 := strconv.ParseInt(row[1], 10, 32)
		ux, err3 := strconv.ParseInt(row[2], 10, 32)
		uy, err4 := strconv.ParseInt(row[3], 10, 32)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		rows = append(rows, QueryRow{Rect: mrtree2d.Rect{
			LX: int32(lx), LY: int32(ly), UX: int32(ux), UY: int32(uy),
		}})
	}
	return rows, nil
}

// WriteQueries writes generated queries to path as CSV rows
// lx,ly,ux,uy,matching,point_fraction,area_selectivity, one row per query,
// mirroring the query generator's output format.
func WriteQueries(path string, queries []workload.GeneratedQuery) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, q := range queries {
		record := []string{
			strconv.FormatInt(int64(q.Rect.LX), 10),
			strconv.FormatInt(int64(q.Rect.LY), 10),
			strconv.FormatInt(int64(q.Rect.UX), 10),
			strconv.FormatInt(int64(q.Rect.UY), 10),
			strconv.Itoa(q.Matching),
			strconv.FormatFloat(q.PointFraction, 'g', -1, 64),
			strconv.FormatFloat(q.AreaSelectivity, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("loader: write %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

func logInfo(log *logging.Logger, format string, args ...any) {
	if log != nil {
		log.Info(fmt.Sprintf(format, args...))
	}
}

func logWarn(log *logging.Logger, format string, args ...any) {
	if log != nil {
		log.Warn(fmt.Sprintf(format, args...))
	}
}
