package curve

import "testing"

func TestPointEqual(t *testing.T) {
	c := mustCurve(t, "secp256k1")

	g1 := c.G()
	g2 := c.NewAffinePoint(c.G().X, c.G().Y)

	if !g1.Equal(g2) {
		t.Errorf("two points with identical coordinates compared unequal")
	}

	if !c.Identity().Equal(c.Identity()) {
		t.Errorf("identity does not equal itself")
	}

	if g1.Equal(c.Identity()) {
		t.Errorf("non-identity point compared equal to identity")
	}
}

func TestPointIsIdentity(t *testing.T) {
	c := mustCurve(t, "secp256k1")

	if !c.Identity().IsIdentity() {
		t.Errorf("Identity() did not report IsIdentity()")
	}
	if c.G().IsIdentity() {
		t.Errorf("base point reported IsIdentity()")
	}
}
