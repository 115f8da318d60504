package lsag

import (
	"math/big"

	"github.com/ringsig/lsag/curve"
)

// Signature is the output of Sign: a ring of public keys, the message that
// was signed, the hash-chain seed c0, one response scalar per ring member,
// and the linking tag Ỹ that ties every signature produced by the same
// private key (over the same ring, for any message) back to the same value
// without revealing which ring member signed. The tag is derived from the
// ring, so signatures by one key over different rings carry different tags.
type Signature struct {
	Ring    []curve.Point
	Message []byte
	C0      *big.Int
	S       []*big.Int
	Tag     curve.Point
}
