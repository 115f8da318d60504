// Package bigint wraps math/big with the handful of operations the LSAG
// ring signature scheme needs: modular addition/subtraction/multiplication,
// modular exponentiation, parity, halving, and minimal big-endian byte
// encoding. math/big is the injected arbitrary-precision integer capability
// this package is built on top of, not a stand-in for one.
package bigint

import "math/big"

// AddMod returns (a + b) mod m.
func AddMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, m)
}

// SubMod returns (a - b) mod m, normalized into [0, m).
func SubMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	r.Mod(r, m)
	if r.Sign() < 0 {
		r.Add(r, m)
	}
	return r
}

// MulMod returns (a * b) mod m.
func MulMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m)
}

// PowMod returns a^e mod m, computed in O(log e) multiplications.
func PowMod(a, e, m *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, m)
}

// Halve returns a / 2, rounded toward zero.
func Halve(a *big.Int) *big.Int {
	return new(big.Int).Rsh(a, 1)
}

// IsOdd reports whether a is odd.
func IsOdd(a *big.Int) bool {
	return a.Bit(0) == 1
}

// IsZero reports whether a is the zero integer.
func IsZero(a *big.Int) bool {
	return a.Sign() == 0
}

// Equal reports whether a and b represent the same integer.
func Equal(a, b *big.Int) bool {
	return a.Cmp(b) == 0
}

// ToBytes encodes a non-negative integer as a minimal big-endian byte
// string: no leading zero padding, and zero maps to the empty slice.
func ToBytes(a *big.Int) []byte {
	if a.Sign() == 0 {
		return []byte{}
	}
	return a.Bytes()
}

// FromBytes decodes a big-endian byte string (as produced by ToBytes, or any
// unpadded/left-padded big-endian encoding) into a non-negative integer. An
// empty slice decodes to zero.
func FromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// ToFixedBytes encodes a as a big-endian byte string of exactly size bytes,
// left-padded with zeros. Used for wire encodings that require a fixed
// coordinate width (e.g. SEC1 point serialization), as opposed to the
// minimal encoding produced by ToBytes.
func ToFixedBytes(a *big.Int, size int) []byte {
	buf := make([]byte, size)
	return a.FillBytes(buf)
}
