// Package vector provides fixed-length vectors of high-precision decimal
// coordinates.
//
// Vectors are immutable: every operation returns a new Vector. All zero,
// parallel, and orthogonal tests use the tolerance of the Vector's num.Context.
package vector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/phil-mansfield/planes/num"
)

var (
	// ErrDimensionMismatch indicates that two vectors have different lengths.
	ErrDimensionMismatch = errors.New("vector dimensions do not match")
	// ErrNormalizeZero indicates an attempt to normalize the zero vector.
	ErrNormalizeZero = errors.New("cannot normalize the zero vector")
)

// Vector is an ordered tuple of decimal coordinates.
type Vector struct {
	ctx    *num.Context
	coords []*apd.Decimal
}

// New creates a Vector from the given coordinates. The coordinates are copied.
// A nil ctx is replaced by num.DefaultContext() and nil coordinates are
// treated as zero.
func New(ctx *num.Context, coords ...*apd.Decimal) *Vector {
	if ctx == nil {
		ctx = num.DefaultContext()
	}
	v := &Vector{ctx: ctx, coords: make([]*apd.Decimal, len(coords))}
	for i, x := range coords {
		v.coords[i] = new(apd.Decimal)
		if x != nil {
			v.coords[i].Set(x)
		}
	}
	return v
}

// Zero returns the zero vector with dim coordinates.
func Zero(ctx *num.Context, dim int) *Vector {
	if dim < 0 {
		panic(fmt.Sprintf("Vector dimension must be non-negative, not %d.", dim))
	}
	return New(ctx, make([]*apd.Decimal, dim)...)
}

// Parse creates a Vector from decimal strings.
func Parse(ctx *num.Context, coords ...string) (*Vector, error) {
	if ctx == nil {
		ctx = num.DefaultContext()
	}
	xs := make([]*apd.Decimal, len(coords))
	for i, s := range coords {
		x, err := ctx.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		xs[i] = x
	}
	return &Vector{ctx: ctx, coords: xs}, nil
}

// FromFloat64s creates a Vector from float64 coordinates.
func FromFloat64s(ctx *num.Context, coords ...float64) (*Vector, error) {
	if ctx == nil {
		ctx = num.DefaultContext()
	}
	xs := make([]*apd.Decimal, len(coords))
	for i, f := range coords {
		x, err := ctx.FromFloat64(f)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		xs[i] = x
	}
	return &Vector{ctx: ctx, coords: xs}, nil
}

func (v *Vector) Context() *num.Context { return v.ctx }

func (v *Vector) Dim() int { return len(v.coords) }

// Coord returns a copy of the i-th coordinate.
func (v *Vector) Coord(i int) *apd.Decimal {
	return new(apd.Decimal).Set(v.coords[i])
}

// Coords returns copies of all coordinates.
func (v *Vector) Coords() []*apd.Decimal {
	xs := make([]*apd.Decimal, len(v.coords))
	for i := range v.coords {
		xs[i] = v.Coord(i)
	}
	return xs
}

func (v *Vector) checkDim(w *Vector) error {
	if v.Dim() != w.Dim() {
		return fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, v.Dim(), w.Dim())
	}
	return nil
}

// zip applies f to each pair of coordinates in v and w.
func (v *Vector) zip(
	w *Vector, f func(x, y *apd.Decimal) (*apd.Decimal, error),
) (*Vector, error) {
	if err := v.checkDim(w); err != nil {
		return nil, err
	}
	out := &Vector{ctx: v.ctx, coords: make([]*apd.Decimal, v.Dim())}
	for i := range v.coords {
		x, err := f(v.coords[i], w.coords[i])
		if err != nil {
			return nil, err
		}
		out.coords[i] = x
	}
	return out, nil
}

func (v *Vector) Plus(w *Vector) (*Vector, error) { return v.zip(w, v.ctx.Add) }

func (v *Vector) Minus(w *Vector) (*Vector, error) { return v.zip(w, v.ctx.Sub) }

// Scale returns k*v.
func (v *Vector) Scale(k *apd.Decimal) (*Vector, error) {
	out := &Vector{ctx: v.ctx, coords: make([]*apd.Decimal, v.Dim())}
	for i, x := range v.coords {
		y, err := v.ctx.Mul(k, x)
		if err != nil {
			return nil, err
		}
		out.coords[i] = y
	}
	return out, nil
}

func (v *Vector) Dot(w *Vector) (*apd.Decimal, error) {
	if err := v.checkDim(w); err != nil {
		return nil, err
	}
	sum := new(apd.Decimal)
	for i := range v.coords {
		prod, err := v.ctx.Mul(v.coords[i], w.coords[i])
		if err != nil {
			return nil, err
		}
		if sum, err = v.ctx.Add(sum, prod); err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// Magnitude returns the Euclidean norm of v.
func (v *Vector) Magnitude() (*apd.Decimal, error) {
	sq, err := v.Dot(v)
	if err != nil {
		return nil, err
	}
	return v.ctx.Sqrt(sq)
}

// Normalized returns the unit vector pointing in the direction of v.
func (v *Vector) Normalized() (*Vector, error) {
	if v.IsZero() {
		return nil, ErrNormalizeZero
	}
	mag, err := v.Magnitude()
	if err != nil {
		return nil, err
	}
	inv, err := v.ctx.Quo(apd.New(1, 0), mag)
	if err != nil {
		return nil, err
	}
	return v.Scale(inv)
}

// IsZero returns true if every coordinate of v is within tolerance of zero.
func (v *Vector) IsZero() bool {
	_, ok := v.ctx.FirstNonzeroIndex(v.coords)
	return !ok
}

// IsParallelTo returns true if one of v and w is a scalar multiple of the
// other. The scalar may be negative, and the zero vector is parallel to every
// vector, including itself.
func (v *Vector) IsParallelTo(w *Vector) (bool, error) {
	if err := v.checkDim(w); err != nil {
		return false, err
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}

	u1, err := v.Normalized()
	if err != nil {
		return false, err
	}
	u2, err := w.Normalized()
	if err != nil {
		return false, err
	}

	diff, err := u1.Minus(u2)
	if err != nil {
		return false, err
	}
	if diff.IsZero() {
		return true, nil
	}
	sum, err := u1.Plus(u2)
	if err != nil {
		return false, err
	}
	return sum.IsZero(), nil
}

// IsOrthogonalTo returns true if v . w is within tolerance of zero.
func (v *Vector) IsOrthogonalTo(w *Vector) (bool, error) {
	dot, err := v.Dot(w)
	if err != nil {
		return false, err
	}
	return v.ctx.IsNearZero(dot), nil
}

// Equal returns true if v and w have the same dimension and every pair of
// coordinates differs by less than the tolerance.
func (v *Vector) Equal(w *Vector) bool {
	diff, err := v.Minus(w)
	if err != nil {
		return false
	}
	return diff.IsZero()
}

func (v *Vector) String() string {
	strs := make([]string, len(v.coords))
	for i, x := range v.coords {
		strs[i] = x.String()
	}
	return "(" + strings.Join(strs, ", ") + ")"
}
