package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestApply(t *testing.T) {
	id := uuid.New()

	after, err := Apply(id, 10, -3)
	require.NoError(t, err)
	assert.Equal(t, 7, after)

	after, err = Apply(id, 3, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, after)

	after, err = Apply(id, 2, -3)
	var ise *InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 2, after)
	assert.Equal(t, 2, ise.Available)
	assert.Equal(t, 3, ise.Requested)
	assert.Equal(t, id, ise.ProductID)
}

func TestCrossedLowStock(t *testing.T) {
	cases := []struct {
		before, after, threshold int
		want                     bool
	}{
		{15, 5, 10, true},
		{11, 10, 10, true},
		{10, 9, 10, false},
		{5, 12, 10, false},
		{12, 3, 10, true},
		{5, 3, 10, false},
		{20, 15, 10, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CrossedLowStock(tc.before, tc.after, tc.threshold),
			"%d -> %d (threshold %d)", tc.before, tc.after, tc.threshold)
	}
}

func TestCrossingSequenceEmitsOncePerDescent(t *testing.T) {
	levels := []int{15, 5, 12, 3}
	threshold := 10

	emitted := 0
	for i := 1; i < len(levels); i++ {
		if CrossedLowStock(levels[i-1], levels[i], threshold) {
			emitted++
		}
	}

	assert.Equal(t, 2, emitted)
}

func TestParseTxnType(t *testing.T) {
	got, err := ParseTxnType("waste")
	require.NoError(t, err)
	assert.Equal(t, TxnWaste, got)

	_, err = ParseTxnType("gift")
	assert.True(t, httperr.IsBusiness(err, "invalid_transaction_type"))
}

func TestValidateDelta(t *testing.T) {
	assert.NoError(t, ValidateDelta(-1))
	assert.True(t, httperr.IsBusiness(ValidateDelta(0), "invalid_quantity"))
}
