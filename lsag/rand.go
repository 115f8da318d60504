package lsag

import (
	"fmt"
	"io"
	"math/big"

	"github.com/ringsig/lsag/curve"
)

// randomScalar draws a uniformly random scalar in [0, n) from entropy,
// rejection-sampling any draw that lands outside the range rather than
// reducing it modulo n. The specification (section 9, "Randomness range")
// calls this out explicitly: a naive inclusive-upper-bound draw admits
// u = n with negligible but nonzero probability, which this avoids.
func randomScalar(c *curve.Curve, entropy io.Reader) (*big.Int, error) {
	n := c.N()
	byteLen := (n.BitLen() + 7) / 8
	if byteLen == 0 {
		byteLen = 1
	}

	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(entropy, buf); err != nil {
			return nil, fmt.Errorf("lsag: reading entropy: %w", err)
		}
		candidate := new(big.Int).SetBytes(buf)
		if candidate.Cmp(n) < 0 {
			return candidate, nil
		}
	}
}
