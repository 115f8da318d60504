package lsag

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"

	"github.com/ringsig/lsag/curve"
)

// KeyPair is (d, Q) with d the private scalar in [1, n) and Q = d*G. A
// "public-only" key pair (D == nil) carries just the public point and may
// appear in a ring, but Sign rejects it as the signer (ErrMissingPrivateKey).
type KeyPair struct {
	Curve *curve.Curve
	D     *big.Int // nil for a public-only key pair
	Q     curve.Point
}

// NewKeyPair derives Q = d*G for the caller-supplied private scalar d,
// which must lie in [1, n).
func NewKeyPair(c *curve.Curve, d *big.Int) (*KeyPair, error) {
	if d.Sign() <= 0 || d.Cmp(c.N()) >= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidScalar, d)
	}

	q, err := c.EcBaseMul(d)
	if err != nil {
		return nil, err
	}

	return &KeyPair{Curve: c, D: new(big.Int).Set(d), Q: q}, nil
}

// PublicKeyPair builds a public-only key pair around an existing point, for
// ring members whose private scalar is not known to the caller.
func PublicKeyPair(c *curve.Curve, q curve.Point) *KeyPair {
	return &KeyPair{Curve: c, Q: q}
}

// NewRandomKeyPair draws a fresh private scalar and derives the
// corresponding public point.
//
// For secp256k1, generation is delegated to
// github.com/btcsuite/btcd/btcec's NewPrivateKey, the same secp256k1 key
// generator the Bitcoin tooling in this corpus relies on; any other curve
// falls back to a generic rejection-sampling draw over crypto/rand.
func NewRandomKeyPair(c *curve.Curve) (*KeyPair, error) {
	if c.Name() == "secp256k1" {
		priv, err := btcec.NewPrivateKey(btcec.S256())
		if err != nil {
			return nil, fmt.Errorf("lsag: secp256k1 key generation: %w", err)
		}
		d := new(big.Int).Mod(priv.D, c.N())
		if d.Sign() == 0 {
			d.SetInt64(1)
		}
		return NewKeyPair(c, d)
	}

	d, err := randomScalar(c, rand.Reader)
	if err != nil {
		return nil, err
	}
	if d.Sign() == 0 {
		d.SetInt64(1)
	}
	return NewKeyPair(c, d)
}

// HasPrivateKey reports whether kp carries a private scalar.
func (kp *KeyPair) HasPrivateKey() bool {
	return kp.D != nil
}
