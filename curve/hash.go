package curve

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ringsig/lsag/fieldmath"
)

// maxTryAndIncrementAttempts bounds HashToPoint's try-and-increment loop.
// Each attempt succeeds with probability ~1/2, so this many failures in a
// row only happens with negligible probability; the bound exists purely so
// a buggy curve (or a deliberately malformed f(x)) cannot hang the caller.
const maxTryAndIncrementAttempts = 10000

// HashToField computes the canonical H1-style digest used throughout this
// module: SHA-512 of msg, truncated to the leading ceil(bitlength/4) hex
// nibbles (equivalently the leading ceil(bitlength/8) bytes with the top
// byte masked to bitlength mod 8 bits), interpreted as a big-endian
// unsigned integer in [0, 2^bitlength).
//
// The specification notes that the original source has an off-by-one
// variant of this function (indexing a single hex digit instead of taking
// a prefix of them); this is the corrected behavior, per specification
// section 4.2.
func (c *Curve) HashToField(msg []byte) *big.Int {
	digest := sha512.Sum512(msg)
	hexDigest := hex.EncodeToString(digest[:])

	nibbles := (c.bitlength + 3) / 4
	if nibbles > len(hexDigest) {
		nibbles = len(hexDigest)
	}

	result, ok := new(big.Int).SetString(hexDigest[:nibbles], 16)
	if !ok {
		// unreachable: hexDigest is always valid hex.
		panic("curve: malformed hex digest")
	}
	return result
}

// HashToPoint maps msg to a curve point via try-and-increment: starting
// from x0 = HashToField(msg), it tries x0, x0+1, x0+2, ... until
// f(x) = x^3 + a*x + b (mod p) has a square root, and returns (x, y) for
// the first such x. Grounded on Curve.find_point_try_and_increment from
// original_source/curve.py.
func (c *Curve) HashToPoint(msg []byte) (Point, error) {
	x := c.HashToField(msg)
	x = new(big.Int).Set(x)

	for attempt := 0; attempt < maxTryAndIncrementAttempts; attempt++ {
		fx := c.f(x)
		y := fieldmath.ModSqrt(fx, c.p)
		if y.Sign() != 0 {
			return c.NewAffinePoint(x, y), nil
		}
		x = new(big.Int).Add(x, big.NewInt(1))
	}

	return Point{}, fmt.Errorf(
		"curve: hash-to-point did not converge after %d attempts",
		maxTryAndIncrementAttempts,
	)
}

// f evaluates x^3 + a*x + b (mod p).
func (c *Curve) f(x *big.Int) *big.Int {
	x3 := new(big.Int).Exp(x, big.NewInt(3), c.p)
	ax := new(big.Int).Mul(c.a, x)
	r := new(big.Int).Add(x3, ax)
	r.Add(r, c.b)
	return r.Mod(r, c.p)
}
