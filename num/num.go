/*package num contains the high-precision decimal arithmetic used by vectors and
planes.

All near-zero tests in this module go through a Context, so every zero, parallel,
and orthogonal check agrees on a single tolerance. The precision of the
arithmetic is also carried by the Context rather than set globally, which means
two Contexts with different precisions can be used side by side.
*/
package num

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

const (
	// DefaultPrecision is the number of significant decimal digits used by
	// DefaultContext.
	DefaultPrecision = 30
	// DefaultEps is the near-zero tolerance used by DefaultContext.
	DefaultEps = "1e-10"
)

var defaultContext = mustContext(DefaultPrecision, DefaultEps)

// Context bundles a decimal precision with the tolerance below which a value
// is treated as zero. A Context is never modified after it is created and can
// be shared between goroutines.
type Context struct {
	dc  *apd.Context
	eps *apd.Decimal
}

// NewContext creates a Context which rounds results to precision significant
// digits and treats any value whose magnitude is below eps as zero.
func NewContext(precision uint32, eps string) (*Context, error) {
	if precision == 0 {
		return nil, fmt.Errorf("Precision must be positive.")
	}

	e, _, err := apd.NewFromString(eps)
	if err != nil {
		return nil, fmt.Errorf("Invalid tolerance '%s': %w", eps, err)
	} else if e.Sign() <= 0 {
		return nil, fmt.Errorf("Tolerance must be positive, but is %s.", eps)
	}

	return &Context{dc: apd.BaseContext.WithPrecision(precision), eps: e}, nil
}

func mustContext(precision uint32, eps string) *Context {
	c, err := NewContext(precision, eps)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// DefaultContext returns a Context with DefaultPrecision digits and a
// tolerance of DefaultEps.
func DefaultContext() *Context { return defaultContext }

// Precision returns the number of significant digits kept by arithmetic.
func (c *Context) Precision() uint32 { return c.dc.Precision }

// Eps returns a copy of the near-zero tolerance.
func (c *Context) Eps() *apd.Decimal { return new(apd.Decimal).Set(c.eps) }

// Equal returns true if c and o have the same precision and tolerance.
func (c *Context) Equal(o *Context) bool {
	return c == o || (c.dc.Precision == o.dc.Precision && c.eps.Cmp(o.eps) == 0)
}

// IsNearZero returns true if |x| < eps.
func (c *Context) IsNearZero(x *apd.Decimal) bool {
	return new(apd.Decimal).Abs(x).Cmp(c.eps) < 0
}

// FirstNonzeroIndex returns the index of the first element of xs whose
// magnitude is not within tolerance of zero.
//
// ok is returned as false if every element of xs is near zero. This is the
// expected result for a zero vector and is not an error.
func (c *Context) FirstNonzeroIndex(xs []*apd.Decimal) (idx int, ok bool) {
	for i, x := range xs {
		if !c.IsNearZero(x) {
			return i, true
		}
	}
	return -1, false
}

// Parse converts a decimal string to a Decimal. The value is stored exactly
// and is only rounded once it takes part in arithmetic.
func (c *Context) Parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("Could not parse '%s' as a decimal: %w", s, err)
	}
	return d, nil
}

// FromFloat64 converts x to the shortest Decimal which round-trips to x.
func (c *Context) FromFloat64(x float64) (*apd.Decimal, error) {
	d, err := new(apd.Decimal).SetFloat64(x)
	if err != nil {
		return nil, fmt.Errorf("Could not convert %g to a decimal: %w", x, err)
	}
	return d, nil
}

func (c *Context) Add(x, y *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if _, err := c.dc.Add(d, x, y); err != nil {
		return nil, fmt.Errorf("%s + %s: %w", x, y, err)
	}
	return d, nil
}

func (c *Context) Sub(x, y *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if _, err := c.dc.Sub(d, x, y); err != nil {
		return nil, fmt.Errorf("%s - %s: %w", x, y, err)
	}
	return d, nil
}

func (c *Context) Mul(x, y *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if _, err := c.dc.Mul(d, x, y); err != nil {
		return nil, fmt.Errorf("%s * %s: %w", x, y, err)
	}
	return d, nil
}

// Quo returns x / y. Division by zero is reported as an error.
func (c *Context) Quo(x, y *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if _, err := c.dc.Quo(d, x, y); err != nil {
		return nil, fmt.Errorf("%s / %s: %w", x, y, err)
	}
	return d, nil
}

func (c *Context) Sqrt(x *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if _, err := c.dc.Sqrt(d, x); err != nil {
		return nil, fmt.Errorf("sqrt(%s): %w", x, err)
	}
	return d, nil
}

// Round rounds x to the given number of decimal places and strips trailing
// zeros. Values which cannot be rounded at the current precision are returned
// unchanged.
func (c *Context) Round(x *apd.Decimal, places int32) *apd.Decimal {
	d := new(apd.Decimal)
	if _, err := c.dc.Quantize(d, x, -places); err != nil {
		d.Set(x)
	}
	d.Reduce(d)
	if d.IsZero() {
		d.Negative = false
	}
	return d
}
