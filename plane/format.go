package plane

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// decimalPlaces is the number of digits printed after the decimal point.
const decimalPlaces = 3

// writeCoefficient formats a rounded coefficient. The leading term gets a bare
// sign, later terms get a sign followed by a space so they can be joined with
// spaces. Coefficients of magnitude one are written without the number.
func writeCoefficient(x *apd.Decimal, initial bool) string {
	sb := &strings.Builder{}

	if x.Sign() < 0 {
		sb.WriteString("-")
	} else if x.Sign() > 0 && !initial {
		sb.WriteString("+")
	}
	if !initial {
		sb.WriteString(" ")
	}

	abs := new(apd.Decimal).Abs(x)
	if abs.Cmp(apd.New(1, 0)) != 0 {
		sb.WriteString(abs.Text('f'))
	}

	return sb.String()
}

// String renders p as a linear equation, e.g. "-0.412x_1 + 3.806x_2 = -3.46".
// Coefficients are rounded to three decimal places and terms which round to
// zero are left out. A plane with a zero normal vector is written as "0 = c".
func (p *Plane) String() string {
	n := p.normal.Coords()

	terms := []string{}
	if initial, ok := p.ctx.FirstNonzeroIndex(n); ok {
		for i := range n {
			x := p.ctx.Round(n[i], decimalPlaces)
			if x.IsZero() {
				continue
			}
			terms = append(terms,
				fmt.Sprintf("%sx_%d", writeCoefficient(x, i == initial), i+1))
		}
	}

	lhs := strings.Join(terms, " ")
	if len(terms) == 0 {
		lhs = "0"
	}

	c := p.ctx.Round(p.constant, decimalPlaces)
	return fmt.Sprintf("%s = %s", lhs, c.Text('f'))
}
