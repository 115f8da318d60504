package fieldmath

import (
	"math/big"
	"testing"

	"github.com/ringsig/lsag/internal/testutils"
)

func bi(i int64) *big.Int {
	return big.NewInt(i)
}

func TestLegendreKnownValues(t *testing.T) {
	testutils.AssertIntsEqual(t, "L(2, 7)", 1, Legendre(bi(2), bi(7)))
	testutils.AssertIntsEqual(t, "L(3, 7)", -1, Legendre(bi(3), bi(7)))
	testutils.AssertIntsEqual(t, "L(7, 7)", 0, Legendre(bi(7), bi(7)))
}

func TestModSqrtKnownValues(t *testing.T) {
	x := ModSqrt(bi(10), bi(13))
	if x.Int64() != 6 && x.Int64() != 7 {
		t.Fatalf("modular_sqrt(10, 13): expected 6 or 7, got %v", x)
	}

	testutils.AssertBigIntsEqual(t, "modular_sqrt(5, 13)", bi(0), ModSqrt(bi(5), bi(13)))
}

func TestModSqrtRoundTripForSmallPrimes(t *testing.T) {
	for _, p := range smallOddPrimes(1000) {
		pBig := big.NewInt(int64(p))
		for a := int64(0); a < p; a++ {
			aBig := big.NewInt(a)
			if Legendre(aBig, pBig) != 1 {
				continue
			}
			root := ModSqrt(aBig, pBig)
			square := new(big.Int).Exp(root, big.NewInt(2), pBig)
			if square.Cmp(new(big.Int).Mod(aBig, pBig)) != 0 {
				t.Fatalf(
					"modular_sqrt(%d, %d) = %v, but %v^2 mod %d = %v, want %v",
					a, p, root, root, p, square, a,
				)
			}
		}
	}
}

// smallOddPrimes returns every odd prime strictly below limit via trial
// division; limit is small enough (< 1000) that this is not worth
// optimizing further.
func smallOddPrimes(limit int64) []int64 {
	var primes []int64
	for n := int64(3); n < limit; n += 2 {
		isPrime := true
		for d := int64(3); d*d <= n; d += 2 {
			if n%d == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, n)
		}
	}
	return primes
}
