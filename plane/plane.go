/*package plane represents planes in three dimensional space and decides whether
pairs of planes are parallel or coincident.

A plane is written as n . x = c, where n is the normal vector and c is the
constant term. Two planes are coincident when they contain the same points,
even if their coefficients differ by a scale factor.
*/
package plane

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/phil-mansfield/planes/num"
	"github.com/phil-mansfield/planes/vector"
)

// Dimension is the number of coordinates in a Plane's normal vector.
const Dimension = 3

var (
	// ErrDimensionMismatch is returned when a normal vector or a second plane
	// does not have the expected number of coordinates.
	ErrDimensionMismatch = vector.ErrDimensionMismatch
	// ErrNoBasepoint is returned when the basepoint of a plane with a zero
	// normal vector is requested.
	ErrNoBasepoint = errors.New("plane with a zero normal vector has no basepoint")
	// ErrContextMismatch is returned when two planes being compared use
	// different precisions or tolerances.
	ErrContextMismatch = errors.New("planes use different numeric contexts")
)

// Plane is the set of points x with n . x = c. Planes are immutable.
type Plane struct {
	ctx       *num.Context
	dim       int
	normal    *vector.Vector
	constant  *apd.Decimal
	basepoint *vector.Vector // nil if normal is zero.
}

// New creates a plane with the given normal vector and constant term. A nil
// ctx is replaced by num.DefaultContext(), a nil normal by the zero vector,
// and a nil constant by zero.
//
// An error is returned if normal does not have Dimension coordinates or if the
// basepoint cannot be computed. A zero normal vector is not an error: the
// resulting plane simply has no basepoint.
func New(
	ctx *num.Context, normal *vector.Vector, constant *apd.Decimal,
) (*Plane, error) {
	if ctx == nil {
		ctx = num.DefaultContext()
	}

	p := &Plane{ctx: ctx, dim: Dimension, constant: new(apd.Decimal)}
	if normal == nil {
		p.normal = vector.Zero(ctx, p.dim)
	} else if normal.Dim() != p.dim {
		return nil, fmt.Errorf(
			"%w: normal vector %s has %d coordinates, but planes have %d",
			ErrDimensionMismatch, normal, normal.Dim(), p.dim,
		)
	} else {
		p.normal = vector.New(ctx, normal.Coords()...)
	}
	if constant != nil {
		p.constant.Set(constant)
	}

	bp, err := p.findBasepoint()
	if err != nil {
		return nil, fmt.Errorf("Could not find basepoint of %s: %w", p, err)
	}
	p.basepoint = bp

	return p, nil
}

// Parse creates a plane from decimal strings.
func Parse(ctx *num.Context, normal []string, constant string) (*Plane, error) {
	if ctx == nil {
		ctx = num.DefaultContext()
	}
	n, err := vector.Parse(ctx, normal...)
	if err != nil {
		return nil, err
	}
	c, err := ctx.Parse(constant)
	if err != nil {
		return nil, err
	}
	return New(ctx, n, c)
}

// findBasepoint returns the point on p which is zero in every coordinate
// except the first one where the normal vector is nonzero. nil is returned if
// the normal vector is zero.
func (p *Plane) findBasepoint() (*vector.Vector, error) {
	n := p.normal.Coords()
	i, ok := p.ctx.FirstNonzeroIndex(n)
	if !ok {
		return nil, nil
	}

	coords := make([]*apd.Decimal, p.dim)
	x, err := p.ctx.Quo(p.constant, n[i])
	if err != nil {
		return nil, err
	}
	coords[i] = x

	return vector.New(p.ctx, coords...), nil
}

func (p *Plane) Context() *num.Context { return p.ctx }

func (p *Plane) Dim() int { return p.dim }

func (p *Plane) Normal() *vector.Vector { return p.normal }

// Constant returns a copy of the constant term.
func (p *Plane) Constant() *apd.Decimal { return new(apd.Decimal).Set(p.constant) }

// Basepoint returns a point on the plane. ok is false if the normal vector is
// zero, in which case no such point is defined.
func (p *Plane) Basepoint() (bp *vector.Vector, ok bool) {
	return p.basepoint, p.basepoint != nil
}

func (p *Plane) mustBasepoint() (*vector.Vector, error) {
	if p.basepoint == nil {
		return nil, ErrNoBasepoint
	}
	return p.basepoint, nil
}

// checkCompatible returns an error unless p and q have the same dimension
// and share a precision and tolerance.
func (p *Plane) checkCompatible(q *Plane) error {
	if p.dim != q.dim {
		return fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, p.dim, q.dim)
	} else if !p.ctx.Equal(q.ctx) {
		return fmt.Errorf(
			"%w: precision %d, eps %s and precision %d, eps %s",
			ErrContextMismatch, p.ctx.Precision(), p.ctx.Eps(),
			q.ctx.Precision(), q.ctx.Eps(),
		)
	}
	return nil
}

// IsParallelTo returns true if the normal vectors of p and q are parallel. A
// plane with a zero normal vector is parallel to every plane. p and q must
// use equal num.Contexts.
func (p *Plane) IsParallelTo(q *Plane) (bool, error) {
	if err := p.checkCompatible(q); err != nil {
		return false, err
	}
	return p.normal.IsParallelTo(q.normal)
}

// Equal returns true if p and q are the same plane, possibly written with
// different coefficients.
//
// Two planes with zero normal vectors are equal if their constant terms are
// within tolerance of each other. A plane with a zero normal vector is never
// equal to one with a nonzero normal vector. p and q must use equal
// num.Contexts.
func (p *Plane) Equal(q *Plane) (bool, error) {
	if err := p.checkCompatible(q); err != nil {
		return false, err
	}

	if p.normal.IsZero() {
		if !q.normal.IsZero() {
			return false, nil
		}
		diff, err := p.ctx.Sub(p.constant, q.constant)
		if err != nil {
			return false, err
		}
		return p.ctx.IsNearZero(diff), nil
	} else if q.normal.IsZero() {
		return false, nil
	}

	if parallel, err := p.IsParallelTo(q); err != nil || !parallel {
		return false, err
	}

	// Parallel planes coincide iff the segment between their basepoints lies
	// in the plane, i.e. is orthogonal to the shared normal direction. The
	// unit normal is used so the tolerance does not depend on |n|.
	b1, err := p.mustBasepoint()
	if err != nil {
		return false, err
	}
	b2, err := q.mustBasepoint()
	if err != nil {
		return false, err
	}
	v, err := b1.Minus(b2)
	if err != nil {
		return false, err
	}
	u, err := p.normal.Normalized()
	if err != nil {
		return false, err
	}
	return u.IsOrthogonalTo(v)
}
