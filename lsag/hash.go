package lsag

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/ringsig/lsag/curve"
)

// These salts disambiguate the three distinct hash roles LSAG relies on
// (ring-membership hash, hash-to-point for the per-signature generator H,
// and the per-step Fiat-Shamir challenge) so that a value computed for one
// role can never collide with a value computed for another, even though
// all three are built from the same underlying HashToField/HashToPoint
// primitives. Grounded byte-for-byte on original_source/sample_lsag.py,
// which prefixes exactly these two roles and leaves the ring hash bare.
const (
	h2Salt = "H2_salt"
	h1Salt = "H1_salt"
)

// serializeRingCoords renders a ring of public keys the same way
// original_source/point.py's list-of-Points __str__ does: a Python-style
// list literal of decimal (x, y) tuples. Both ringHash and h2 are computed
// over this exact byte string, so any change here changes every signature
// this package produces.
func serializeRingCoords(ring []curve.Point) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, p := range ring {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "(%s, %s)", p.X.String(), p.Y.String())
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// ringHash computes the ring-membership digest shared by every step of
// Sign and Verify. Unlike h2, it carries no salt prefix.
func ringHash(c *curve.Curve, ring []curve.Point) *big.Int {
	return c.HashToField(serializeRingCoords(ring))
}

// h2 derives the per-signature generator H by hashing the ring to a curve
// point, salted so it can never coincide with the value ringHash's unsalted
// HashToField call produces over the same ring bytes.
func h2(c *curve.Curve, ring []curve.Point) (curve.Point, error) {
	input := append([]byte(h2Salt), serializeRingCoords(ring)...)
	return c.HashToPoint(input)
}

// h1 computes the per-step Fiat-Shamir challenge c_{i+1} from the ring
// hash, the linking tag, the message, and the pair of "commitment" points
// (z'_i, z''_i) produced at step i. The result is reduced into [0, n) since
// it is always used as a scalar.
//
// Input layout (grounded on sample_lsag.py's Sig_LSAG._challenge_iteration):
//
//	"H1_salt" || ringHash || "," || repr(tag) || "," || message || ","
//	|| hex(p1.X) || "," || hex(p1.Y) || "," || hex(p2.X) || "," || hex(p2.Y)
//
// repr(tag) reuses Point.String(), whose "Point<0x%X, 0x%X>" rendering
// already matches the uppercase-hex-no-leading-zeros convention the
// original's repr(Point) produces; the coordinate hex fields below use the
// same %X formatting directly on the coordinates.
func h1(c *curve.Curve, ringHashVal *big.Int, tag curve.Point, message []byte, p1, p2 curve.Point) *big.Int {
	var buf bytes.Buffer
	buf.WriteString(h1Salt)
	buf.WriteString(ringHashVal.String())
	buf.WriteByte(',')
	buf.WriteString(tag.String())
	buf.WriteByte(',')
	buf.Write(message)
	buf.WriteByte(',')
	fmt.Fprintf(&buf, "%X", p1.X)
	buf.WriteByte(',')
	fmt.Fprintf(&buf, "%X", p1.Y)
	buf.WriteByte(',')
	fmt.Fprintf(&buf, "%X", p2.X)
	buf.WriteByte(',')
	fmt.Fprintf(&buf, "%X", p2.Y)

	digest := c.HashToField(buf.Bytes())
	return new(big.Int).Mod(digest, c.N())
}

// formatRing is a debugging helper, not part of the wire format: a
// human-readable summary of a ring's public keys.
func formatRing(ring []curve.Point) string {
	parts := make([]string, len(ring))
	for i, p := range ring {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
