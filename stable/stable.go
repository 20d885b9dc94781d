package stable

import (
	"fmt"
	"math"
)

// logZero stands in for log(0). The most negative finite float is used
// rather than -Inf so that arithmetic on zeros stays NaN-free: -Inf minus
// -Inf poisons the usual log-space identities, while anything added to
// -MaxFloat64 is absorbed and exp of it still underflows cleanly to 0.
const logZero = -math.MaxFloat64

// Double is a float64 alternative that stores the logarithm of its
// absolute value plus a sign, trading precision in some ranges for
// resistance to overflow and underflow. Products of thousands of tiny
// probabilities, say, keep their magnitudes exactly where float64 would
// flush to zero.
//
// The zero value of Double is 1, the multiplicative identity, so a
// freshly declared Double is ready to accumulate products. Use Zero or
// FromFloat64(0) for an additive zero.
type Double struct {
	logAbs   float64
	negative bool
}

// Zero returns the Double representing 0.
func Zero() Double {
	return Double{logAbs: logZero}
}

// FromFloat64 converts x to a Double.
func FromFloat64(x float64) Double {
	switch {
	case x == 0:
		return Zero()
	case x < 0:
		return Double{logAbs: math.Log(-x), negative: true}
	}
	return Double{logAbs: math.Log(x)}
}

// FromLog builds the Double ±exp(logAbs) directly, without leaving log
// space. This is the lossless way in: FromLog(-1e6, false) is a perfectly
// good positive number even though exp(-1e6) underflows.
func FromLog(logAbs float64, negative bool) Double {
	return Double{logAbs: logAbs, negative: negative}
}

// Float64 converts back to a float64. Magnitudes outside float64's range
// come out as 0 or ±Inf; the Double itself is unharmed.
func (d Double) Float64() float64 {
	if d.negative {
		return -math.Exp(d.logAbs)
	}
	return math.Exp(d.logAbs)
}

// Log returns log|d|.
func (d Double) Log() float64 { return d.logAbs }

// Sign returns -1, 0, or +1.
func (d Double) Sign() int {
	switch {
	case d.logAbs == logZero:
		return 0
	case d.negative:
		return -1
	}
	return 1
}

// Neg returns -d.
func (d Double) Neg() Double {
	return Double{logAbs: d.logAbs, negative: !d.negative}
}

// Inverse returns 1/d. The inverse of 0 overflows, as with floats.
func (d Double) Inverse() Double {
	return Double{logAbs: -d.logAbs, negative: d.negative}
}

// Mul returns d*e.
func (d Double) Mul(e Double) Double {
	return Double{logAbs: d.logAbs + e.logAbs, negative: d.negative != e.negative}
}

// Div returns d/e.
func (d Double) Div(e Double) Double {
	return Double{logAbs: d.logAbs - e.logAbs, negative: d.negative != e.negative}
}

// Add returns d+e, computed without leaving log space.
func (d Double) Add(e Double) Double {
	if d.negative == e.negative {
		return Double{logAbs: addLog(d.logAbs, e.logAbs), negative: d.negative}
	}
	// Opposite signs: the larger magnitude wins, equal magnitudes cancel.
	switch {
	case d.logAbs == e.logAbs:
		return Zero()
	case d.logAbs > e.logAbs:
		return Double{logAbs: subLog(d.logAbs, e.logAbs), negative: d.negative}
	}
	return Double{logAbs: subLog(e.logAbs, d.logAbs), negative: e.negative}
}

// Sub returns d-e.
func (d Double) Sub(e Double) Double {
	return d.Add(e.Neg())
}

// Equal reports whether d and e represent the same number. Zeros are
// equal regardless of their sign bit.
func (d Double) Equal(e Double) bool {
	return d.logAbs == e.logAbs && (d.logAbs == logZero || d.negative == e.negative)
}

// Cmp compares d and e, returning -1, 0, or +1.
func (d Double) Cmp(e Double) int {
	switch {
	case d.Equal(e):
		return 0
	case d.Less(e):
		return -1
	}
	return 1
}

// Less reports whether d < e.
func (d Double) Less(e Double) bool {
	if d.negative != e.negative {
		// Differing sign bits only decide it when they are not both zero.
		return d.negative && (d.logAbs != logZero || e.logAbs != logZero)
	}
	if d.negative {
		return d.logAbs > e.logAbs
	}
	return d.logAbs < e.logAbs
}

// String renders the number in log space, e.g. "-exp(102.5)".
func (d Double) String() string {
	if d.negative {
		return fmt.Sprintf("-exp(%g)", d.logAbs)
	}
	return fmt.Sprintf("exp(%g)", d.logAbs)
}

// addLog returns log(exp(x) + exp(y)), anchored on the larger argument so
// the exponential never overflows.
func addLog(x, y float64) float64 {
	if x > y {
		return x + math.Log1p(math.Exp(y-x))
	}
	return y + math.Log1p(math.Exp(x-y))
}

// subLog returns log(exp(x) - exp(y)). Requires x > y.
func subLog(x, y float64) float64 {
	return x + math.Log(-math.Expm1(y-x))
}
