package mrtree2d

import "time"

// Stats is a per-query counter aggregate. A caller passes a *Stats by
// reference into Query and Verify (or QueryAndVerify); the core never
// writes to a shared global, and a single Stats value is meant for one
// query at a time, not shared across concurrent queries.
type Stats struct {
	NodesVisited   int
	NodesPruned    int
	PointsExamined int
	PointsReturned int
	QueryTime      time.Duration
	VerifyTime     time.Duration
}

// Reset zeroes all counters and timings, leaving s ready for reuse on a
// fresh query.
func (s *Stats) Reset() {
	*s = Stats{}
}
