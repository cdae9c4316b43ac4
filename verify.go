package mrtree2d

import "time"

// VerificationResult is the reconstructed (MBR, digest) of a VO subtree
// together with the points from it that satisfy the query predicate.
type VerificationResult struct {
	MBR      Rect
	Digest   Digest
	Matching []Record
}

// Verify recomputes the root digest from vo while simultaneously filtering
// the point set against q. stats may be nil; PointsReturned is incremented
// as matching points are discovered in VOLeaf nodes.
//
// A nil vo (the VO of a nil tree) verifies to the empty result: MBR is the
// empty-rectangle sentinel and Digest is the zero digest.
//
// The caller is responsible for comparing the returned Digest against the
// trusted root digest: equal means accept, unequal means reject.
func Verify(vo VO, q Rect, stats *Stats) VerificationResult {
	if vo == nil {
		return VerificationResult{MBR: EmptyRect}
	}
	switch v := vo.(type) {
	case *VOLeaf:
		return verifyLeaf(v, q, stats)
	case *VOPruned:
		return VerificationResult{MBR: v.MBR, Digest: v.Digest}
	case *VOContainer:
		return verifyContainer(v, q, stats)
	default:
		panic("mrtree2d: unknown VO kind")
	}
}

func verifyLeaf(v *VOLeaf, q Rect, stats *Stats) VerificationResult {
	buf := NewHashBuffer(len(v.Points) * 12)
	mbr := EmptyRect
	var matching []Record
	for _, p := range v.Points {
		mbr = EnlargePoint(mbr, p.Loc)
		p.serialize(buf)
		if Contains(p.Loc, q) {
			matching = append(matching, p)
			if stats != nil {
				stats.PointsReturned++
			}
		}
	}
	return VerificationResult{MBR: mbr, Digest: buf.Sum(), Matching: matching}
}

func verifyContainer(v *VOContainer, q Rect, stats *Stats) VerificationResult {
	buf := NewHashBuffer(len(v.Children) * (16 + DigestSize))
	mbr := EmptyRect
	var matching []Record
	for _, child := range v.Children {
		res := Verify(child, q, stats)
		matching = append(matching, res.Matching...)
		mbr = EnlargeRect(mbr, res.MBR)
		buf.PutI32(res.MBR.LX).PutI32(res.MBR.LY).PutI32(res.MBR.UX).PutI32(res.MBR.UY).PutBytes(res.Digest[:])
	}
	return VerificationResult{MBR: mbr, Digest: buf.Sum(), Matching: matching}
}

// Check compares r's recomputed digest against trusted, the digest a
// client obtained out-of-band from a source it already trusts. It returns
// ErrVerificationMismatch on a mismatch and nil otherwise.
func (r VerificationResult) Check(trusted Digest) error {
	if r.Digest != trusted {
		return ErrVerificationMismatch
	}
	return nil
}

// QueryAndVerify runs Query followed by Verify against root, recording
// elapsed time for each phase in stats if non-nil. It is the composition
// the CLI shell in cmd/mrquery drives.
func QueryAndVerify(root Node, q Rect, stats *Stats) VerificationResult {
	queryStart := time.Now()
	vo := Query(root, q, stats)
	queryElapsed := time.Since(queryStart)

	verifyStart := time.Now()
	result := Verify(vo, q, stats)
	verifyElapsed := time.Since(verifyStart)

	if stats != nil {
		stats.QueryTime += queryElapsed
		stats.VerifyTime += verifyElapsed
	}
	return result
}
