package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/planes/num"
	"github.com/phil-mansfield/planes/plane"
	"github.com/phil-mansfield/planes/vector"
)

// NamedPlane is a plane together with the label it was given in its input
// file.
type NamedPlane struct {
	Name string
	*plane.Plane
}

// ReadPlaneTable reads planes from a whitespace-separated table. Each row is
// written as n1 n2 n3 c and is named after its row number, starting at 1.
// The columns used can be changed with cols, which must contain the column
// indices of n1, n2, n3, and c in that order. A nil cols selects the first
// four columns.
func ReadPlaneTable(
	fname string, cols []int, ctx *num.Context,
) ([]NamedPlane, error) {
	if cols == nil {
		cols = []int{0, 1, 2, 3}
	} else if len(cols) != plane.Dimension+1 {
		return nil, fmt.Errorf(
			"Plane tables need %d columns, but %d were requested.",
			plane.Dimension+1, len(cols),
		)
	}

	vals, err := table.ReadTable(fname, cols, nil)
	if err != nil {
		return nil, err
	}
	return planesFromColumns(vals, ctx)
}

// planesFromColumns converts column-major table data into planes.
func planesFromColumns(vals [][]float64, ctx *num.Context) ([]NamedPlane, error) {
	if ctx == nil {
		ctx = num.DefaultContext()
	}
	if len(vals) != plane.Dimension+1 {
		return nil, fmt.Errorf(
			"Expected %d columns, got %d.", plane.Dimension+1, len(vals),
		)
	}
	rows := len(vals[0])
	for i := range vals {
		if len(vals[i]) != rows {
			return nil, fmt.Errorf(
				"Column %d has %d rows, but column 0 has %d.",
				i, len(vals[i]), rows,
			)
		}
	}

	planes := make([]NamedPlane, rows)
	for row := range planes {
		n, err := vector.FromFloat64s(
			ctx, vals[0][row], vals[1][row], vals[2][row],
		)
		if err != nil {
			return nil, fmt.Errorf("Row %d: %w", row+1, err)
		}
		c, err := ctx.FromFloat64(vals[3][row])
		if err != nil {
			return nil, fmt.Errorf("Row %d: %w", row+1, err)
		}
		p, err := plane.New(ctx, n, c)
		if err != nil {
			return nil, fmt.Errorf("Row %d: %w", row+1, err)
		}
		planes[row] = NamedPlane{Name: fmt.Sprintf("row%d", row+1), Plane: p}
	}

	return planes, nil
}

// Comparison records whether two planes are parallel and whether they are
// equal.
type Comparison struct {
	A, B            NamedPlane
	Parallel, Equal bool
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s parallel=%v equal=%v",
		c.A.Name, c.B.Name, c.Parallel, c.Equal)
}

// CompareAll compares every unordered pair of planes, in input order.
func CompareAll(planes []NamedPlane) ([]Comparison, error) {
	out := []Comparison{}
	for i := range planes {
		for j := i + 1; j < len(planes); j++ {
			a, b := planes[i], planes[j]

			parallel, err := a.IsParallelTo(b.Plane)
			if err != nil {
				return nil, fmt.Errorf("%s vs. %s: %w", a.Name, b.Name, err)
			}
			equal, err := a.Equal(b.Plane)
			if err != nil {
				return nil, fmt.Errorf("%s vs. %s: %w", a.Name, b.Name, err)
			}

			out = append(out, Comparison{a, b, parallel, equal})
		}
	}
	return out, nil
}
