// Package workload generates synthetic query rectangles against a
// dataset, both by fractional size range and by target area selectivity.
package workload

import (
	"math"
	"math/rand"

	"github.com/csqv/mrtree2d"
)

// SelectivityLevels are the fixed selectivity levels
// original_source/CSQV/QueryGenMultiple.cpp sweeps by default.
var SelectivityLevels = []float64{0.0001, 0.001, 0.01, 0.1}

// GeneratedQuery is one synthesized query rectangle plus the ground-truth
// statistics the generator computed against the dataset it was built for.
type GeneratedQuery struct {
	Rect              mrtree2d.Rect
	Matching          int
	PointFraction     float64
	AreaSelectivity   float64
	TargetSelectivity float64
}

// ComputeMBR folds pts into their minimum bounding rectangle.
func ComputeMBR(pts []mrtree2d.Record) mrtree2d.Rect {
	mbr := mrtree2d.EmptyRect
	for _, p := range pts {
		mbr = mrtree2d.EnlargePoint(mbr, p.Loc)
	}
	return mbr
}

// CountInRange counts points that satisfy Contains(p, q).
func CountInRange(pts []mrtree2d.Record, q mrtree2d.Rect) int {
	n := 0
	for _, p := range pts {
		if mrtree2d.Contains(p.Loc, q) {
			n++
		}
	}
	return n
}

// GenerateByFraction produces n rectangles sized between minFraction and
// maxFraction of mbr's width/height, placed uniformly at random so each
// fits inside mbr.
func GenerateByFraction(rnd *rand.Rand, pts []mrtree2d.Record, mbr mrtree2d.Rect, n int, minFraction, maxFraction float64) []GeneratedQuery {
	width := int(mbr.UX - mbr.LX)
	height := int(mbr.UY - mbr.LY)

	out := make([]GeneratedQuery, 0, n)
	for i := 0; i < n; i++ {
		sizeFactor := minFraction + rnd.Float64()*(maxFraction-minFraction)
		qw := int32(float64(width) * sizeFactor)
		qh := int32(float64(height) * sizeFactor)

		maxX := maxI32(mbr.LX, mbr.UX-qw)
		maxY := maxI32(mbr.LY, mbr.UY-qh)
		lx := mbr.LX + int32(rnd.Intn(int(maxX-mbr.LX)+1))
		ly := mbr.LY + int32(rnd.Intn(int(maxY-mbr.LY)+1))
		ux := minI32(mbr.UX, lx+qw)
		uy := minI32(mbr.UY, ly+qh)

		q := mrtree2d.Rect{LX: lx, LY: ly, UX: ux, UY: uy}
		out = append(out, statsFor(pts, q, mbr))
	}
	return out
}

// GenerateBySelectivity produces n rectangles whose width and height are
// sqrt(targetSelectivity)*W and sqrt(targetSelectivity)*H, with a ±20%
// uniform perturbation, placed uniformly at random inside mbr.
func GenerateBySelectivity(rnd *rand.Rand, pts []mrtree2d.Record, mbr mrtree2d.Rect, n int, targetSelectivity float64) []GeneratedQuery {
	width := float64(mbr.UX - mbr.LX)
	height := float64(mbr.UY - mbr.LY)
	sideRatio := math.Sqrt(targetSelectivity)
	targetWidth := width * sideRatio
	targetHeight := height * sideRatio

	out := make([]GeneratedQuery, 0, n)
	for i := 0; i < n; i++ {
		variation := 0.8 + rnd.Float64()*0.4 // ±20% around 1.0
		qw := max1I32(int32(targetWidth * variation))
		qh := max1I32(int32(targetHeight * variation))

		maxX := maxI32(mbr.LX, mbr.UX-qw)
		maxY := maxI32(mbr.LY, mbr.UY-qh)
		lx := mbr.LX + int32(rnd.Intn(int(maxX-mbr.LX)+1))
		ly := mbr.LY + int32(rnd.Intn(int(maxY-mbr.LY)+1))
		ux := minI32(mbr.UX, lx+qw)
		uy := minI32(mbr.UY, ly+qh)

		q := mrtree2d.Rect{LX: lx, LY: ly, UX: ux, UY: uy}
		gq := statsFor(pts, q, mbr)
		gq.TargetSelectivity = targetSelectivity
		out = append(out, gq)
	}
	return out
}

func statsFor(pts []mrtree2d.Record, q, mbr mrtree2d.Rect) GeneratedQuery {
	matching := CountInRange(pts, q)
	dataArea := int64(mbr.UX-mbr.LX) * int64(mbr.UY-mbr.LY)
	queryArea := int64(q.UX-q.LX) * int64(q.UY-q.LY)
	areaSelectivity := 0.0
	if dataArea > 0 {
		areaSelectivity = float64(queryArea) / float64(dataArea)
	}
	pointFraction := 0.0
	if len(pts) > 0 {
		pointFraction = float64(matching) / float64(len(pts))
	}
	return GeneratedQuery{
		Rect:            q,
		Matching:        matching,
		PointFraction:   pointFraction,
		AreaSelectivity: areaSelectivity,
	}
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func max1I32(v int32) int32 {
	if v < 1 {
		return 1
	}
	return v
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
