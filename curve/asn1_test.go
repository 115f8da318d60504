package curve

import (
	"encoding/asn1"
	"testing"

	"github.com/ringsig/lsag/internal/testutils"
)

func TestDERDecoderNamedCurve(t *testing.T) {
	decoder := NewDERDecoder(nil)

	der, err := asn1.Marshal(oidSecp256k1)
	testutils.AssertNoError(t, "marshal secp256k1 OID", err)

	params, err := decoder.Parse(der)
	testutils.AssertNoError(t, "decode secp256k1 OID", err)

	want := secp256k1Params()
	testutils.AssertBigIntsEqual(t, "decoded P", want.P, params.P)
	testutils.AssertBigIntsEqual(t, "decoded N", want.N, params.N)
}

func TestDERDecoderUnknownOID(t *testing.T) {
	decoder := NewDERDecoder(nil)

	der, err := asn1.Marshal(asn1.ObjectIdentifier{1, 2, 3, 4})
	testutils.AssertNoError(t, "marshal unknown OID", err)

	_, err = decoder.Parse(der)
	testutils.AssertErrorIs(t, "unrecognized OID", err, ErrUnsupportedField)
}
