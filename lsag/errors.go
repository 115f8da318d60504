package lsag

import "errors"

// Error kinds, matching specification section 7. Every kind here is fatal
// to the caller; VerificationFailed is deliberately absent as an error —
// Verify reports a failed hash check by returning false, not by erroring.
var (
	// ErrEmptyRing is returned by Sign and Verify when the ring has no
	// members.
	ErrEmptyRing = errors.New("lsag: ring is empty")

	// ErrInvalidSignerIndex is returned by Sign when the signer index is
	// outside [0, len(ring)).
	ErrInvalidSignerIndex = errors.New("lsag: signer index out of range")

	// ErrMissingPrivateKey is returned by Sign when the ring member at the
	// signer index has no private scalar.
	ErrMissingPrivateKey = errors.New("lsag: signer key pair has no private scalar")

	// ErrMalformedSignature is returned by Verify when the signature fails
	// a structural check: the number of s-values does not match the ring
	// size, or the link tag or a ring member does not lie on the curve.
	ErrMalformedSignature = errors.New("lsag: malformed signature")

	// ErrInvalidScalar is returned by KeyPair construction when the
	// supplied private scalar is outside [1, n).
	ErrInvalidScalar = errors.New("lsag: private scalar out of range")
)
