// Package mrtree2d implements an authenticated 2D range-query index: a
// bulk-loaded, Merkle-hashed R-tree over integer points that lets a client
// retrieve the points inside a query rectangle together with a
// verification object proving the result is both sound and complete,
// given only a trusted root digest.
//
// The package is single-threaded and synchronous. BulkLoad builds an
// immutable tree; Query walks a built tree to produce a VO; Verify
// recomputes a root digest from a VO while filtering points against the
// query. Independent queries against the same tree may run concurrently
// without coordination, provided each uses its own *Stats.
package mrtree2d
