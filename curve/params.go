package curve

import (
	"crypto/elliptic"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto/secp256k1"
)

// Params describes a prime-field Weierstrass curve y^2 = x^3 + A*x + B
// (mod P), with base point (Gx, Gy) of order N and cofactor H. This is the
// concrete shape of the "Curve parameter provider" external interface from
// the specification: something outside this package resolves a curve name
// or a DER ECParameters blob down to these seven integers.
type Params struct {
	P, A, B *big.Int
	Gx, Gy  *big.Int
	N, H    *big.Int
}

// Provider resolves a curve name to its domain parameters. It is the
// interface-level stand-in for whatever loads named-curve tables or parses
// ASN.1 ECParameters blobs in a full deployment; see DERDecoder for the
// latter.
type Provider interface {
	Parameters(name string) (Params, error)
}

// namedCurveProvider is the built-in Provider implementation. It is backed
// by two concrete, independently-sourced curves to demonstrate that Curve
// itself is not hard-coded to a single field: secp256k1's parameters come
// from github.com/ethereum/go-ethereum's secp256k1 implementation (the same
// one the rest of this corpus's Bitcoin/Schnorr tooling uses), while
// secp256r1's come from the standard library's crypto/elliptic.
type namedCurveProvider struct{}

// DefaultProvider is the Provider used by New when no explicit Provider is
// supplied.
var DefaultProvider Provider = namedCurveProvider{}

func (namedCurveProvider) Parameters(name string) (Params, error) {
	switch name {
	case "secp256k1":
		return secp256k1Params(), nil
	case "secp256r1", "P-256":
		return secp256r1Params(), nil
	default:
		return Params{}, fmt.Errorf("%w: %q", ErrUnsupportedField, name)
	}
}

// secp256k1Params reads the canonical secp256k1 domain parameters off
// go-ethereum's BitCurve. secp256k1 has A = 0, which go-ethereum's BitCurve
// does not expose as a field (it is baked into the optimized group law), so
// it is filled in here explicitly.
func secp256k1Params() Params {
	c := secp256k1.S256()
	return Params{
		P:  new(big.Int).Set(c.P),
		A:  big.NewInt(0),
		B:  new(big.Int).Set(c.B),
		Gx: new(big.Int).Set(c.Gx),
		Gy: new(big.Int).Set(c.Gy),
		N:  new(big.Int).Set(c.N),
		H:  big.NewInt(1),
	}
}

// secp256r1Params reads the canonical NIST P-256 domain parameters off the
// standard library's elliptic.P256 curve. P-256 uses A = P-3, the
// conventional NIST choice, which is likewise not carried as an explicit
// field on elliptic.CurveParams.
func secp256r1Params() Params {
	c := elliptic.P256().Params()
	a := new(big.Int).Sub(c.P, big.NewInt(3))
	a.Mod(a, c.P)
	return Params{
		P:  new(big.Int).Set(c.P),
		A:  a,
		B:  new(big.Int).Set(c.B),
		Gx: new(big.Int).Set(c.Gx),
		Gy: new(big.Int).Set(c.Gy),
		N:  new(big.Int).Set(c.N),
		H:  big.NewInt(1),
	}
}
