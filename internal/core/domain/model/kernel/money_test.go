package kernel_test

import (
	"testing"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid_amounts", func(t *testing.T) {
		for _, cents := range []int64{0, 1, 7500, 1_000_000} {
			m, err := kernel.NewMoney(cents)
			require.NoError(t, err)
			assert.Equal(t, cents, m.AmountInCents())
		}
	})

	t.Run("negative_amount_fails", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Add(t *testing.T) {
	a, _ := kernel.NewMoney(5000)
	b, _ := kernel.NewMoney(2500)

	sum := a.Add(b)

	assert.Equal(t, int64(7500), sum.AmountInCents())
	// operands are untouched
	assert.Equal(t, int64(5000), a.AmountInCents())
	assert.Equal(t, int64(2500), b.AmountInCents())
}

func TestMoney_Add_ZeroIsIdentity(t *testing.T) {
	m, _ := kernel.NewMoney(1234)

	assert.True(t, m.Add(kernel.ZeroMoney()).IsEqual(m))
	assert.True(t, kernel.ZeroMoney().Add(m).IsEqual(m))
}

func TestMoney_Multiply(t *testing.T) {
	t.Run("positive_factor", func(t *testing.T) {
		m, _ := kernel.NewMoney(7500)

		total, err := m.Multiply(3)

		require.NoError(t, err)
		assert.Equal(t, int64(22500), total.AmountInCents())
	})

	t.Run("zero_factor", func(t *testing.T) {
		m, _ := kernel.NewMoney(7500)

		total, err := m.Multiply(0)

		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("negative_factor_fails", func(t *testing.T) {
		m, _ := kernel.NewMoney(7500)

		_, err := m.Multiply(-2)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_IsZero(t *testing.T) {
	assert.True(t, kernel.ZeroMoney().IsZero())

	m, _ := kernel.NewMoney(1)
	assert.False(t, m.IsZero())
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		cents    int64
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{7500, "75.00"},
		{22500, "225.00"},
		{99, "0.99"},
	}

	for _, tc := range tests {
		m, err := kernel.NewMoney(tc.cents)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, m.String())
	}
}
