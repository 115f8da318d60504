package curve

import (
	"fmt"
	"math/big"
)

// Point is an element of the group of a Curve: either the identity O, or an
// affine pair (X, Y) satisfying the curve equation. Every Point carries a
// reference to the Curve it belongs to, following the same pattern as the
// teacher's frost.Point/Ciphersuite pairing, generalized with an explicit
// curve-mismatch check since this package (unlike frost) must support more
// than one curve at a time.
type Point struct {
	Curve *Curve
	X, Y  *big.Int // nil, nil for the identity
}

// Identity returns the identity element (point at infinity) of c.
func (c *Curve) Identity() Point {
	return Point{Curve: c}
}

// IsIdentity reports whether P is the identity element.
func (p Point) IsIdentity() bool {
	return p.X == nil || p.Y == nil
}

// NewAffinePoint constructs a non-identity point (x, y) on c. The caller is
// responsible for ensuring the coordinates satisfy the curve equation;
// Curve.IsOnCurve can be used to check this first.
func (c *Curve) NewAffinePoint(x, y *big.Int) Point {
	return Point{Curve: c, X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Equal reports whether p and q represent the same group element. Two
// identity points on different curves are still considered equal, matching
// the specification's P == Q rule ("equal iff both are O, or both are
// affine with identical (x, y)"), which does not condition identity
// equality on curve membership.
func (p Point) Equal(q Point) bool {
	if p.IsIdentity() && q.IsIdentity() {
		return true
	}
	if p.IsIdentity() || q.IsIdentity() {
		return false
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// sameCurve reports whether p and q belong to the same Curve value,
// required before any GroupOps operation combining the two.
func sameCurve(p, q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return true
	}
	return p.Curve == q.Curve
}

func (p Point) String() string {
	if p.IsIdentity() {
		return "Point<O>"
	}
	return fmt.Sprintf("Point<0x%X, 0x%X>", p.X, p.Y)
}
