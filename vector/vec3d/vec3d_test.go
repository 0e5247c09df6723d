package vec3d

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/handyman/scalar"
	"github.com/hupe1980/handyman/testutil"
)

func TestFromTuple(t *testing.T) {
	assert.Equal(t, Vec3D[int]{1, 3, 5}, FromTuple([3]int{1, 3, 5}))
	assert.Equal(t, New(1, 3, 5), FromTuple([3]int{1, 3, 5}))
}

func TestAccessors(t *testing.T) {
	v := New(1, 2, 3)
	assert.Equal(t, 1, v.X())
	assert.Equal(t, 2, v.Y())
	assert.Equal(t, 3, v.Z())
	assert.Equal(t, [3]int{1, 2, 3}, v.Array())
	assert.Equal(t, "(1, 2, 3)", v.String())
}

func TestApply(t *testing.T) {
	assert.Equal(t, New(3, 4, 5), Apply(New(1, 2, 3), func(x int) int { return x + 2 }))
	assert.Equal(t, New(true, false, true), Apply(New(2, 3, 4), func(x int) bool { return x%2 == 0 }))

	var calls []string
	Apply(New("x", "y", "z"), func(s string) string {
		calls = append(calls, s)
		return s
	})
	assert.Equal(t, []string{"x", "y", "z"}, calls)
}

func TestZipWith(t *testing.T) {
	got := ZipWith(New(1, 2, 3), New(4, 5, 6), func(a, b int) int { return a * b })
	assert.Equal(t, New(4, 10, 18), got)

	scaled := ZipWith(New(1.5, 2.0, -1.0), New(2, 3, 4), func(a float64, n int) float64 {
		return a * float64(n)
	})
	assert.Equal(t, New(3.0, 6.0, -4.0), scaled)

	a, b := New(1, 2, 3), New(-4, 5, 9)
	assert.Equal(t, Add(a, b), ZipWith(a, b, func(x, y int) int { return x + y }))
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Vec3D[int]
		expected Vec3D[int]
	}{
		{"Add", Add(New(1, 2, 3), New(3, 4, 5)), New(4, 6, 8)},
		{"Mul", Mul(New(1, 3, 5), 2), New(2, 6, 10)},
		{"Neg", Neg(New(2, -3, 0)), New(-2, 3, 0)},
		{"Zero", Zero[int](), New(0, 0, 0)},
		{"One", One[int](), New(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestProperties(t *testing.T) {
	rng := testutil.NewRNG(1234)
	random := func() Vec3D[int64] {
		return New(
			rng.Int64Between(-1e6, 1e6),
			rng.Int64Between(-1e6, 1e6),
			rng.Int64Between(-1e6, 1e6),
		)
	}

	for range 500 {
		a, b := random(), random()
		k := rng.Int64Between(-1000, 1000)

		require.Equal(t, a, Add(a, Zero[int64]()))
		require.Equal(t, a, Mul(a, 1))
		require.Equal(t, Add(a, b), Add(b, a))
		require.Equal(t, Zero[int64](), Add(a, Neg(a)))
		require.Equal(t, Mul(Add(a, b), k), Add(Mul(a, k), Mul(b, k)))
		require.Equal(t, a, FromTuple(a.Array()))
	}
}

func TestFloatProperties(t *testing.T) {
	rng := testutil.NewRNG(99)

	for range 200 {
		a := New(rng.Float64(), rng.Float64(), rng.Float64())
		b := New(rng.Float64(), rng.Float64(), rng.Float64())

		assert.Equal(t, Add(a, b), Add(b, a))
		assert.Equal(t, Zero[float64](), Add(a, Neg(a)))

		lhs := Mul(Add(a, b), 3)
		rhs := Add(Mul(a, 3), Mul(b, 3))
		for i := range lhs {
			assert.InDelta(t, lhs[i], rhs[i], 1e-12)
		}
	}
}

func TestDecimalRing(t *testing.T) {
	ops := OverSigned[decimal.Decimal](scalar.Decimal{})
	eq := scalar.Decimal{}.Equal
	d := decimal.RequireFromString

	a := New(d("0.1"), d("-2.5"), d("3"))
	b := New(d("0.2"), d("2.5"), d("-0.75"))

	assert.True(t, EqualFunc(New(d("0.3"), d("0"), d("2.25")), ops.Add(a, b), eq))
	assert.True(t, EqualFunc(New(d("-0.1"), d("2.5"), d("-3")), ops.Neg(a), eq))
	assert.True(t, EqualFunc(New(d("0.3"), d("-7.5"), d("9")), ops.Mul(a, d("3")), eq))
	assert.True(t, EqualFunc(ops.Zero(), ops.Add(a, ops.Neg(a)), eq))
	assert.True(t, EqualFunc(a, ops.Mul(a, ops.One().X()), eq))
}

func TestCheckedOverflowPropagates(t *testing.T) {
	ops := Over[uint8](scalar.Checked[uint8]{})

	assert.Equal(t, New[uint8](255, 0, 2), ops.Add(New[uint8](200, 0, 1), New[uint8](55, 0, 1)))

	assert.PanicsWithError(t, "integer overflow: 200 + 56", func() {
		ops.Add(New[uint8](200, 0, 0), New[uint8](56, 0, 0))
	})

	signed := OverSigned[int64](scalar.CheckedSigned[int64]{})
	func() {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, scalar.ErrOverflow))
		}()
		signed.Neg(New[int64](1, 2, math.MinInt64))
	}()
}

func TestEqualFunc(t *testing.T) {
	approx := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	assert.True(t, EqualFunc(New(0.1+0.2, 1.0, 2.0), New(0.3, 1.0, 2.0), approx))
	assert.False(t, EqualFunc(New(1.0, 1.0, 2.0), New(1.0, 1.0, 2.5), approx))
}
