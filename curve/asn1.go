package curve

import (
	"encoding/asn1"
	"fmt"
)

// DERDecoder decodes a DER-encoded ECParameters CHOICE (RFC 3279) down to
// domain parameters. Per specification section 1, the full ASN.1 decoder is
// peripheral plumbing and is specified only at this interface level; the
// concrete decoder below covers the namedCurve OID branch, which is all
// this module's curve table needs.
type DERDecoder interface {
	Parse(der []byte) (Params, error)
}

var (
	oidSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
	oidSecp256r1 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
)

// namedCurveOIDDecoder implements DERDecoder for the namedCurve branch of
// ECParameters, delegating the OID-to-parameters lookup to a Provider.
type namedCurveOIDDecoder struct {
	provider Provider
}

// NewDERDecoder returns a DERDecoder that resolves namedCurve OIDs through
// provider (DefaultProvider if nil).
func NewDERDecoder(provider Provider) DERDecoder {
	if provider == nil {
		provider = DefaultProvider
	}
	return namedCurveOIDDecoder{provider: provider}
}

// Parse decodes der as an ASN.1 OBJECT IDENTIFIER naming one of the curves
// known to the wrapped Provider. The ecParameters explicit-parameter branch
// (a SEQUENCE of field/curve/base-point/order/cofactor, as produced by
// original_source/asnhelper.py's generic consume()) is not implemented:
// every curve this module supports is reachable through the namedCurve
// branch, and specification section 1 frames the full decoder as
// out-of-scope peripheral plumbing.
func (d namedCurveOIDDecoder) Parse(der []byte) (Params, error) {
	var oid asn1.ObjectIdentifier
	if _, err := asn1.Unmarshal(der, &oid); err != nil {
		return Params{}, fmt.Errorf("curve: ECParameters decode: %w", err)
	}

	switch {
	case oid.Equal(oidSecp256k1):
		return d.provider.Parameters("secp256k1")
	case oid.Equal(oidSecp256r1):
		return d.provider.Parameters("secp256r1")
	default:
		return Params{}, fmt.Errorf(
			"%w: unrecognized namedCurve OID %s", ErrUnsupportedField, oid,
		)
	}
}
