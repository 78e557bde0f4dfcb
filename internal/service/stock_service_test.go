package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStock_AdjustFloorsAtZero(t *testing.T) {
	cases := []struct {
		name    string
		initial *int
		delta   int
		want    int
	}{
		{name: "increase", initial: intPtr(10), delta: 5, want: 15},
		{name: "decrease", initial: intPtr(10), delta: -4, want: 6},
		{name: "exact zero", initial: intPtr(10), delta: -10, want: 0},
		{name: "large negative", initial: intPtr(10), delta: -1000000, want: 0},
		{name: "missing record positive", initial: nil, delta: 7, want: 7},
		{name: "missing record negative", initial: nil, delta: -7, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, nil)
			ctx := context.Background()
			if tc.initial != nil {
				_, err := f.stocks.Set(ctx, "P1", "O1", *tc.initial)
				require.NoError(t, err)
			}
			got, err := f.stocks.Adjust(ctx, "P1", "O1", tc.delta)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.AvailableQuantity)

			stored, err := f.stocks.Get(ctx, "P1", "O1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, stored.AvailableQuantity)
		})
	}
}

func TestStock_SetAcceptsAnyValue(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	got, err := f.stocks.Set(ctx, "P1", "O1", -3)
	require.NoError(t, err)
	assert.Equal(t, -3, got.AvailableQuantity)

	got, err = f.stocks.Set(ctx, "P1", "O1", 40)
	require.NoError(t, err)
	assert.Equal(t, 40, got.AvailableQuantity)

	require.Len(t, f.notifier.stocks, 2)
	last := f.notifier.stocks[1]
	require.Len(t, last.Stocks, 1)
	assert.Equal(t, "P1", last.Stocks[0].ProductID)
	assert.Equal(t, 40, last.Stocks[0].AvailableQuantity)
	assert.False(t, last.SyncedAt.IsZero())
}

func TestStock_GetMissing(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.stocks.Get(context.Background(), "P1", "O1")
	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestStock_ListAndSyncAll(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.stocks.SyncAll(ctx))
	assert.Empty(t, f.notifier.stocks)

	_, err := f.stocks.Set(ctx, "P2", "O1", 2)
	require.NoError(t, err)
	_, err = f.stocks.Set(ctx, "P1", "O1", 1)
	require.NoError(t, err)

	list, err := f.stocks.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "P1", list[0].ProductID)

	require.NoError(t, f.stocks.SyncAll(ctx))
	require.Len(t, f.notifier.stocks, 3)
	assert.Len(t, f.notifier.stocks[2].Stocks, 2)
}

func TestStock_NotifierFailureIsSwallowed(t *testing.T) {
	f := newFixture(t, errMallDown)
	ctx := context.Background()

	got, err := f.stocks.Adjust(ctx, "P1", "O1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got.AvailableQuantity)
	require.NoError(t, f.stocks.SyncAll(ctx))
	assert.Len(t, f.notifier.stocks, 2)
}

func intPtr(v int) *int { return &v }
