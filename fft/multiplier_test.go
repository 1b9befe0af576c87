package fft_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpreal/mpcore/fft"
	"github.com/mpreal/mpcore/limb"
)

// newMultiplier builds a Multiplier directly on a fresh PlanCache/KissProvider
// pair, bypassing precision.CorePrecision -- this package sits below
// precision and should be testable on its own.
func newMultiplier() *fft.Multiplier {
	provider := fft.NewKissProvider()
	cache := fft.NewPlanCache(provider)
	return fft.NewMultiplier(cache, 1, nil)
}

func oneLimb(v uint32) limb.Array {
	a := limb.MustNew(1)
	a.Set(0, v)
	return a
}

// TestMultiplyCarryPropagation squares 99999999 (a single limb whose
// product overflows into a second limb with every half-limb digit
// position carrying), checking the known result 9999999800000001.
func TestMultiplyCarryPropagation(t *testing.T) {
	m := newMultiplier()
	u := oneLimb(99999999)

	product, err := m.Multiply(u, u, 1, nil)
	require.NoError(t, err)
	require.Equal(t, 2, product.Len())
	require.Equal(t, uint32(99999998), product.Get(0))
	require.Equal(t, uint32(1), product.Get(1))
}

// TestMultiplySmallOperands checks a product that stays within a single
// limb, exercising the no-carry path.
func TestMultiplySmallOperands(t *testing.T) {
	m := newMultiplier()
	u := oneLimb(1234)
	v := oneLimb(5678)

	product, err := m.Multiply(u, v, 1, nil)
	require.NoError(t, err)
	require.Equal(t, uint32(1234*5678), product.Get(product.Len()-1))
}

// TestMultiplyZeroOperand checks the degenerate all-zero case.
func TestMultiplyZeroOperand(t *testing.T) {
	m := newMultiplier()
	u := oneLimb(0)
	v := oneLimb(42)

	product, err := m.Multiply(u, v, 1, nil)
	require.NoError(t, err)
	for i := 0; i < product.Len(); i++ {
		require.Equal(t, uint32(0), product.Get(i))
	}
}
