package stable

import (
	"math"
	"math/rand/v2"
	"testing"

	"gotest.tools/v3/assert"
)

// assertClose allows the relative error accumulated by a round trip
// through log space.
func assertClose(t *testing.T, got, want float64) {
	t.Helper()
	if want == 0 {
		assert.Assert(t, math.Abs(got) < 1e-12, "got %g, want 0", got)
		return
	}
	assert.Assert(t, math.Abs(got-want) <= 1e-9*math.Abs(want),
		"got %g, want %g", got, want)
}

func TestZeroValueIsOne(t *testing.T) {
	var d Double
	assert.Equal(t, d.Float64(), 1.0)

	// A declared Double is ready to accumulate products.
	var p Double
	for _, x := range []float64{2, 3, 4} {
		p = p.Mul(FromFloat64(x))
	}
	assertClose(t, p.Float64(), 24)
}

func TestConversionRoundTrip(t *testing.T) {
	assert.Equal(t, FromFloat64(0).Float64(), 0.0)
	for _, x := range []float64{
		1, -1, 0.5, -2.25, 12345.678, 1e300, -1e300, 1e-300, -1e-300,
	} {
		assertClose(t, FromFloat64(x).Float64(), x)
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, Zero().Sign(), 0)
	assert.Equal(t, Zero().Neg().Sign(), 0)
	assert.Equal(t, FromFloat64(-3).Sign(), -1)
	assert.Equal(t, FromFloat64(3).Sign(), 1)
	assert.Equal(t, FromLog(-4000, true).Sign(), -1)
}

func TestProductsSurviveUnderflow(t *testing.T) {
	factor := FromFloat64(1e-30)
	naive := 1.0
	var p Double
	for i := 0; i < 20; i++ {
		p = p.Mul(factor)
		naive *= 1e-30
	}

	// float64 flushed to zero around the eleventh factor.
	assert.Equal(t, naive, 0.0)
	assert.Equal(t, p.Sign(), 1)
	assertClose(t, p.Log(), 20*math.Log(1e-30))

	// The magnitude is intact, so we can climb all the way back up.
	for i := 0; i < 20; i++ {
		p = p.Div(factor)
	}
	assertClose(t, p.Float64(), 1)
}

func TestProductsSurviveOverflow(t *testing.T) {
	x := 1e300
	assert.Assert(t, math.IsInf(x*x, 1))

	a := FromFloat64(1e300)
	sq := a.Mul(a)
	assert.Equal(t, sq.Sign(), 1)
	assert.Assert(t, math.IsInf(sq.Float64(), 1)) // only the conversion clips
	assertClose(t, sq.Div(a).Float64(), 1e300)
}

func TestAddition(t *testing.T) {
	for _, tc := range []struct{ a, b float64 }{
		{2, 3}, {-2, 3}, {2, -3}, {-2, -3}, {0, 7}, {7, 0}, {0, 0},
	} {
		assertClose(t, FromFloat64(tc.a).Add(FromFloat64(tc.b)).Float64(), tc.a+tc.b)
	}

	// Exact cancellation yields a true zero.
	assert.Equal(t, FromFloat64(2.5).Sub(FromFloat64(2.5)).Sign(), 0)

	// Deep in log space: exp(-5000) + exp(-5000) = exp(-5000 + ln 2).
	a := FromLog(-5000, false)
	assertClose(t, a.Add(a).Log(), -5000+math.Ln2)
}

func TestSubtraction(t *testing.T) {
	assertClose(t, FromFloat64(5).Sub(FromFloat64(3)).Float64(), 2)
	assertClose(t, FromFloat64(3).Sub(FromFloat64(5)).Float64(), -2)
	assertClose(t, FromFloat64(-3).Sub(FromFloat64(5)).Float64(), -8)

	// exp(-5000) - exp(-5001) = exp(-5000 + log(1 - 1/e)).
	b := FromLog(-5000, false)
	c := FromLog(-5001, false)
	assertClose(t, b.Sub(c).Log(), -5000.458675145387)
	assert.Equal(t, c.Sub(b).Sign(), -1)
}

func TestComparisons(t *testing.T) {
	increasing := []Double{
		FromLog(500, true), // far below float64 range
		FromFloat64(-2),
		FromLog(-700, true), // infinitesimally negative
		Zero(),
		FromLog(-700, false),
		FromFloat64(2),
		FromLog(500, false),
	}
	for i, a := range increasing {
		for j, b := range increasing {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			assert.Check(t, a.Cmp(b) == want, "Cmp(%v, %v) != %d", a, b, want)
		}
	}
}

func TestZerosCompareEqualEitherSign(t *testing.T) {
	negZero := FromFloat64(0).Neg()
	assert.Assert(t, Zero().Equal(negZero))
	assert.Equal(t, Zero().Cmp(negZero), 0)
	assert.Equal(t, negZero.Cmp(Zero()), 0)
	assert.Assert(t, !negZero.Less(FromFloat64(0)))
	assert.Assert(t, !FromFloat64(0).Less(negZero))
}

func TestMulDivSignsAndInverse(t *testing.T) {
	assertClose(t, FromFloat64(-4).Mul(FromFloat64(-5)).Float64(), 20)
	assertClose(t, FromFloat64(-4).Mul(FromFloat64(5)).Float64(), -20)
	assertClose(t, FromFloat64(20).Div(FromFloat64(-5)).Float64(), -4)

	assertClose(t, FromFloat64(4).Inverse().Float64(), 0.25)
	assertClose(t, FromFloat64(-4).Inverse().Float64(), -0.25)
	assert.Assert(t, math.IsInf(Zero().Inverse().Float64(), 1))

	x := FromFloat64(123.456)
	assertClose(t, x.Div(x).Float64(), 1)
}

func TestString(t *testing.T) {
	assert.Equal(t, FromLog(2.5, false).String(), "exp(2.5)")
	assert.Equal(t, FromLog(2.5, true).String(), "-exp(2.5)")
}

// TestRandomizedAgainstFloat64 drives the four operations and Cmp on small
// integers, where float64 arithmetic is exact and can act as the oracle.
func TestRandomizedAgainstFloat64(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 1))
	for trial := 0; trial < 2000; trial++ {
		a := float64(rng.IntN(41) - 20)
		b := float64(rng.IntN(41) - 20)
		da, db := FromFloat64(a), FromFloat64(b)

		assertClose(t, da.Add(db).Float64(), a+b)
		assertClose(t, da.Sub(db).Float64(), a-b)
		assertClose(t, da.Mul(db).Float64(), a*b)
		if b != 0 {
			assertClose(t, da.Div(db).Float64(), a/b)
		}

		want := 0
		switch {
		case a < b:
			want = -1
		case a > b:
			want = 1
		}
		assert.Check(t, da.Cmp(db) == want, "Cmp(%g, %g) != %d", a, b, want)
	}
}
