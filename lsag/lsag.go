// Package lsag implements the Linkable Spontaneous Anonymous Group ring
// signature scheme: a signer proves membership in a ring of public keys
// without revealing which member signed, while any two signatures produced
// by the same private key over the same ring expose a shared linking tag
// that lets a verifier detect reuse without learning the signer's identity.
//
// Grounded on original_source/sample_lsag.py's Sig_LSAG class, generalized
// from its hardcoded curve to the curve package's Provider abstraction so
// the scheme runs over either secp256k1 or secp256r1.
package lsag

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/ringsig/lsag/bigint"
	"github.com/ringsig/lsag/curve"
)

// Sign produces a ring signature over message, proving that the caller
// knows the private scalar of ring[signerIndex] without revealing the
// index to a verifier. ring must contain at least one key pair, and the
// key pair at signerIndex must carry a private scalar.
//
// entropy supplies every random draw Sign makes: the nonce u and one
// response s_i for each ring position other than the signer's. Nothing
// drawn from it is cached or reused across calls. A nil entropy uses
// crypto/rand.Reader.
func Sign(c *curve.Curve, ring []*KeyPair, signerIndex int, message []byte, entropy io.Reader) (*Signature, error) {
	k := len(ring)
	if k == 0 {
		return nil, ErrEmptyRing
	}
	if signerIndex < 0 || signerIndex >= k {
		return nil, ErrInvalidSignerIndex
	}
	signer := ring[signerIndex]
	if !signer.HasPrivateKey() {
		return nil, ErrMissingPrivateKey
	}
	if entropy == nil {
		entropy = rand.Reader
	}

	n := c.N()
	points := make([]curve.Point, k)
	for i, kp := range ring {
		points[i] = kp.Q
	}

	rh := ringHash(c, points)

	h, err := h2(c, points)
	if err != nil {
		return nil, fmt.Errorf("lsag: deriving generator: %w", err)
	}

	tag, err := c.EcMul(h, signer.D)
	if err != nil {
		return nil, fmt.Errorf("lsag: computing link tag: %w", err)
	}

	u, err := randomScalar(c, entropy)
	if err != nil {
		return nil, err
	}

	s := make([]*big.Int, k)

	// challenges[i] is the value c_i consumed when verifying ring position
	// i (z'_i = s_i*G + c_i*Q_i, z''_i = s_i*H + c_i*Tag). The chain is
	// generated walking forward from the signer's own position, which
	// fills every index exactly once regardless of where the signer sits;
	// challenges[0] becomes the signature's stored seed so that Verify,
	// which always starts its own walk at index 0, closes against it.
	challenges := make([]*big.Int, k)

	uG, err := c.EcBaseMul(u)
	if err != nil {
		return nil, err
	}
	uH, err := c.EcMul(h, u)
	if err != nil {
		return nil, err
	}

	challenges[(signerIndex+1)%k] = h1(c, rh, tag, message, uG, uH)

	// Walk the ring starting the step after the signer, wrapping around,
	// drawing a fresh response s_i at every position except the signer's
	// own, where s is instead solved for once the chain closes.
	for steps := 1; steps < k; steps++ {
		i := (signerIndex + steps) % k
		cI := challenges[i]

		si, err := randomScalar(c, entropy)
		if err != nil {
			return nil, err
		}
		s[i] = si

		// z'_i = s_i*G + c_i*Q_i
		siG, err := c.EcBaseMul(si)
		if err != nil {
			return nil, err
		}
		ciQi, err := c.EcMul(points[i], cI)
		if err != nil {
			return nil, err
		}
		zPrime, err := c.EcAdd(siG, ciQi)
		if err != nil {
			return nil, err
		}

		// z''_i = s_i*H + c_i*Tag
		siH, err := c.EcMul(h, si)
		if err != nil {
			return nil, err
		}
		ciTag, err := c.EcMul(tag, cI)
		if err != nil {
			return nil, err
		}
		zDouble, err := c.EcAdd(siH, ciTag)
		if err != nil {
			return nil, err
		}

		challenges[(i+1)%k] = h1(c, rh, tag, message, zPrime, zDouble)
	}

	// Close the chain: s_signer = u - d_signer * c_signer (mod n).
	cSigner := challenges[signerIndex]
	dc := bigint.MulMod(signer.D, cSigner, n)
	s[signerIndex] = bigint.SubMod(u, dc, n)

	return &Signature{
		Ring:    points,
		Message: append([]byte(nil), message...),
		C0:      challenges[0],
		S:       s,
		Tag:     tag,
	}, nil
}

// Verify checks whether sig is a valid ring signature over its own
// message and ring, recomputing the hash chain and comparing the result
// against the stored seed c0. It returns false (not an error) whenever the
// recomputed chain does not close, reserving errors for structural defects
// that make the signature impossible to even evaluate.
func Verify(c *curve.Curve, sig *Signature) (bool, error) {
	k := len(sig.Ring)
	if k == 0 {
		return false, ErrEmptyRing
	}
	if len(sig.S) != k {
		return false, ErrMalformedSignature
	}
	if !c.IsOnCurve(sig.Tag) {
		return false, ErrMalformedSignature
	}
	for _, q := range sig.Ring {
		if !c.IsOnCurve(q) {
			return false, ErrMalformedSignature
		}
	}

	rh := ringHash(c, sig.Ring)

	h, err := h2(c, sig.Ring)
	if err != nil {
		return false, fmt.Errorf("lsag: deriving generator: %w", err)
	}

	cNext := sig.C0
	for i := 0; i < k; i++ {
		si := sig.S[i]

		siG, err := c.EcBaseMul(si)
		if err != nil {
			return false, fmt.Errorf("lsag: invalid response scalar at index %d: %w", i, err)
		}
		ciQi, err := c.EcMul(sig.Ring[i], cNext)
		if err != nil {
			return false, err
		}
		zPrime, err := c.EcAdd(siG, ciQi)
		if err != nil {
			return false, err
		}

		siH, err := c.EcMul(h, si)
		if err != nil {
			return false, fmt.Errorf("lsag: invalid response scalar at index %d: %w", i, err)
		}
		ciTag, err := c.EcMul(sig.Tag, cNext)
		if err != nil {
			return false, err
		}
		zDouble, err := c.EcAdd(siH, ciTag)
		if err != nil {
			return false, err
		}

		cNext = h1(c, rh, sig.Tag, sig.Message, zPrime, zDouble)
	}

	return bigint.Equal(cNext, sig.C0), nil
}
