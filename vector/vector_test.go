package vector

import (
	"errors"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, coords ...string) *Vector {
	v, err := Parse(nil, coords...)
	require.NoError(t, err)
	return v
}

func TestParse(t *testing.T) {
	v := mustParse(t, "-0.412", "3.806", "0.728")
	assert.Equal(t, 3, v.Dim())
	assert.Equal(t, "(-0.412, 3.806, 0.728)", v.String())

	_, err := Parse(nil, "1", "two", "3")
	assert.Error(t, err)
}

func TestZero(t *testing.T) {
	v := Zero(nil, 3)
	assert.Equal(t, 3, v.Dim())
	assert.True(t, v.IsZero())
	assert.Panics(t, func() { Zero(nil, -1) })
}

func TestCoordsAreCopies(t *testing.T) {
	x := apd.New(5, 0)
	v := New(nil, x, apd.New(1, 0))
	x.SetInt64(7)
	assert.Equal(t, "5", v.Coord(0).String())

	v.Coords()[1].SetInt64(9)
	assert.Equal(t, "1", v.Coord(1).String())
}

func TestArithmetic(t *testing.T) {
	v := mustParse(t, "8.218", "-9.341")
	w := mustParse(t, "-1.129", "2.111")

	sum, err := v.Plus(w)
	require.NoError(t, err)
	assert.True(t, sum.Equal(mustParse(t, "7.089", "-7.230")), "sum = %s", sum)

	diff, err := v.Minus(w)
	require.NoError(t, err)
	assert.True(t, diff.Equal(mustParse(t, "9.347", "-11.452")), "diff = %s", diff)

	scaled, err := w.Scale(apd.New(-2, 0))
	require.NoError(t, err)
	assert.True(t, scaled.Equal(mustParse(t, "2.258", "-4.222")), "scaled = %s", scaled)

	dot, err := mustParse(t, "1", "2", "3").Dot(mustParse(t, "4", "-5", "6"))
	require.NoError(t, err)
	assert.Equal(t, 0, dot.Cmp(apd.New(12, 0)), "dot = %s", dot)

	mag, err := mustParse(t, "3", "4").Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 0, mag.Cmp(apd.New(5, 0)), "mag = %s", mag)
}

func TestDimensionMismatch(t *testing.T) {
	v := mustParse(t, "1", "2", "3")
	w := mustParse(t, "1", "2")

	_, err := v.Minus(w)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = v.Dot(w)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = v.IsParallelTo(w)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = v.IsOrthogonalTo(w)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.False(t, v.Equal(w))
}

func TestNormalized(t *testing.T) {
	u, err := mustParse(t, "0", "-3", "4").Normalized()
	require.NoError(t, err)
	assert.True(t, u.Equal(mustParse(t, "0", "-0.6", "0.8")), "u = %s", u)

	_, err = Zero(nil, 3).Normalized()
	assert.True(t, errors.Is(err, ErrNormalizeZero))
}

func TestIsZero(t *testing.T) {
	table := []struct {
		coords []string
		zero   bool
	}{
		{[]string{"0", "0", "0"}, true},
		{[]string{"1e-11", "-1e-12", "0"}, true},
		{[]string{"0", "0", "1e-9"}, false},
		{[]string{"-7.926", "8.625", "-7.212"}, false},
	}

	for i, test := range table {
		v := mustParse(t, test.coords...)
		if v.IsZero() != test.zero {
			t.Errorf("%d) IsZero(%s) = %v, expected %v.",
				i+1, v, !test.zero, test.zero)
		}
	}
}

func TestIsParallelTo(t *testing.T) {
	table := []struct {
		v, w     []string
		parallel bool
	}{
		{[]string{"-7.926", "8.625", "-7.212"}, []string{"-2.642", "2.875", "-2.404"}, true},
		{[]string{"-0.412", "3.806", "0.728"}, []string{"1.03", "-9.515", "-1.82"}, true},
		{[]string{"2.611", "5.528", "0.283"}, []string{"7.715", "8.306", "5.342"}, false},
		{[]string{"1", "0", "0"}, []string{"0", "1", "0"}, false},
		{[]string{"1", "2", "3"}, []string{"1", "2", "3.0001"}, false},
		{[]string{"0", "0", "0"}, []string{"4", "5", "6"}, true},
		{[]string{"0", "0", "0"}, []string{"0", "0", "0"}, true},
	}

	for i, test := range table {
		v, w := mustParse(t, test.v...), mustParse(t, test.w...)
		for _, pair := range [][2]*Vector{{v, w}, {w, v}, {v, v}} {
			ok, err := pair[0].IsParallelTo(pair[1])
			require.NoError(t, err)
			expected := test.parallel || pair[0] == pair[1]
			if ok != expected {
				t.Errorf("%d) %s parallel to %s = %v, expected %v.",
					i+1, pair[0], pair[1], ok, expected)
			}
		}
	}
}

func TestIsOrthogonalTo(t *testing.T) {
	table := []struct {
		v, w       []string
		orthogonal bool
	}{
		{[]string{"1", "0", "0"}, []string{"0", "1", "0"}, true},
		{[]string{"-2.328", "-7.284", "-1.214"}, []string{"-1.821", "1.072", "-2.94"}, true},
		{[]string{"1", "2", "3"}, []string{"0", "0", "0"}, true},
		{[]string{"1", "1", "0"}, []string{"1", "0", "0"}, false},
	}

	for i, test := range table {
		v, w := mustParse(t, test.v...), mustParse(t, test.w...)
		ok, err := v.IsOrthogonalTo(w)
		require.NoError(t, err)
		assert.Equal(t, test.orthogonal, ok, "%d) %s orthogonal to %s", i+1, v, w)
	}
}

func BenchmarkIsParallelTo(b *testing.B) {
	v, _ := Parse(nil, "-7.926", "8.625", "-7.212")
	w, _ := Parse(nil, "-2.642", "2.875", "-2.404")
	for i := 0; i < b.N; i++ {
		v.IsParallelTo(w)
	}
}
