package lsag

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ringsig/lsag/curve"
	"github.com/ringsig/lsag/internal/testutils"
)

func mustCurve(t *testing.T) *curve.Curve {
	t.Helper()
	c, err := curve.New("secp256k1")
	testutils.AssertNoError(t, "constructing secp256k1", err)
	return c
}

// buildRing constructs a ring of k fresh key pairs and returns it alongside
// the index of one arbitrarily chosen signer.
func buildRing(t *testing.T, c *curve.Curve, k int) ([]*KeyPair, int) {
	t.Helper()
	ring := make([]*KeyPair, k)
	for i := 0; i < k; i++ {
		kp, err := NewRandomKeyPair(c)
		testutils.AssertNoError(t, "generating ring member key pair", err)
		ring[i] = kp
	}
	return ring, k / 2
}

func TestSignVerifyRoundTrip(t *testing.T) {
	c := mustCurve(t)

	for _, k := range []int{1, 2, 3, 5, 10, 100} {
		ring, signerIndex := buildRing(t, c, k)
		message := []byte("attack at dawn")

		sig, err := Sign(c, ring, signerIndex, message, nil)
		testutils.AssertNoError(t, "signing", err)

		ok, err := Verify(c, sig)
		testutils.AssertNoError(t, "verifying", err)
		if !ok {
			t.Errorf("ring size %d: valid signature failed to verify", k)
		}
	}
}

func TestSignEmptyRing(t *testing.T) {
	c := mustCurve(t)
	_, err := Sign(c, nil, 0, []byte("m"), nil)
	testutils.AssertErrorIs(t, "signing over an empty ring", err, ErrEmptyRing)
}

func TestSignInvalidSignerIndex(t *testing.T) {
	c := mustCurve(t)
	ring, _ := buildRing(t, c, 3)

	_, err := Sign(c, ring, 3, []byte("m"), nil)
	testutils.AssertErrorIs(t, "signer index out of range", err, ErrInvalidSignerIndex)

	_, err = Sign(c, ring, -1, []byte("m"), nil)
	testutils.AssertErrorIs(t, "negative signer index", err, ErrInvalidSignerIndex)
}

func TestSignMissingPrivateKey(t *testing.T) {
	c := mustCurve(t)
	ring, _ := buildRing(t, c, 3)
	ring[1] = PublicKeyPair(c, ring[1].Q)

	_, err := Sign(c, ring, 1, []byte("m"), nil)
	testutils.AssertErrorIs(t, "signer has no private key", err, ErrMissingPrivateKey)
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	c := mustCurve(t)
	ring, signerIndex := buildRing(t, c, 4)

	sig, err := Sign(c, ring, signerIndex, []byte("original message"), nil)
	testutils.AssertNoError(t, "signing", err)

	sig.Message = bytes.Replace(sig.Message, []byte("original"), []byte("replaced"), 1)

	ok, err := Verify(c, sig)
	testutils.AssertNoError(t, "verifying tampered message", err)
	if ok {
		t.Errorf("signature verified after message was tampered with")
	}
}

func TestVerifyRejectsTamperedResponse(t *testing.T) {
	c := mustCurve(t)
	ring, signerIndex := buildRing(t, c, 4)

	sig, err := Sign(c, ring, signerIndex, []byte("message"), nil)
	testutils.AssertNoError(t, "signing", err)

	sig.S[0] = bigIntAddOne(sig.S[0])

	ok, err := Verify(c, sig)
	testutils.AssertNoError(t, "verifying tampered response", err)
	if ok {
		t.Errorf("signature verified after a response scalar was tampered with")
	}
}

func TestVerifyRejectsForgedTag(t *testing.T) {
	c := mustCurve(t)
	ring, signerIndex := buildRing(t, c, 4)

	sig, err := Sign(c, ring, signerIndex, []byte("message"), nil)
	testutils.AssertNoError(t, "signing", err)

	sig.Tag = c.G()

	ok, err := Verify(c, sig)
	testutils.AssertNoError(t, "verifying forged tag", err)
	if ok {
		t.Errorf("signature verified after the link tag was replaced with G")
	}
}

func TestVerifyRejectsTamperedSeed(t *testing.T) {
	c := mustCurve(t)
	ring, signerIndex := buildRing(t, c, 4)

	sig, err := Sign(c, ring, signerIndex, []byte("message"), nil)
	testutils.AssertNoError(t, "signing", err)

	sig.C0 = new(big.Int).Xor(sig.C0, big.NewInt(1))

	ok, err := Verify(c, sig)
	testutils.AssertNoError(t, "verifying tampered seed", err)
	if ok {
		t.Errorf("signature verified after c0 was flipped")
	}
}

func TestVerifyRejectsMalformedSignature(t *testing.T) {
	c := mustCurve(t)
	ring, signerIndex := buildRing(t, c, 3)

	sig, err := Sign(c, ring, signerIndex, []byte("m"), nil)
	testutils.AssertNoError(t, "signing", err)

	sig.S = sig.S[:len(sig.S)-1]
	_, err = Verify(c, sig)
	testutils.AssertErrorIs(t, "wrong number of responses", err, ErrMalformedSignature)
}

func TestLinkageSameSignerSameTagAcrossMessages(t *testing.T) {
	c := mustCurve(t)
	ring, signerIndex := buildRing(t, c, 5)

	sig1, err := Sign(c, ring, signerIndex, []byte("message one"), nil)
	testutils.AssertNoError(t, "signing first message", err)

	sig2, err := Sign(c, ring, signerIndex, []byte("message two"), nil)
	testutils.AssertNoError(t, "signing second message", err)

	if !sig1.Tag.Equal(sig2.Tag) {
		t.Errorf("same signer over the same ring produced different link tags across messages")
	}
}

func TestLinkageDifferentSignersDifferentTags(t *testing.T) {
	c := mustCurve(t)
	ring, signerA := buildRing(t, c, 5)
	signerB := (signerA + 1) % len(ring)

	sigA, err := Sign(c, ring, signerA, []byte("message"), nil)
	testutils.AssertNoError(t, "signing as A", err)

	sigB, err := Sign(c, ring, signerB, []byte("message"), nil)
	testutils.AssertNoError(t, "signing as B", err)

	if sigA.Tag.Equal(sigB.Tag) {
		t.Errorf("distinct signers produced the same link tag")
	}
}

func bigIntAddOne(a *big.Int) *big.Int {
	return new(big.Int).Add(a, big.NewInt(1))
}
