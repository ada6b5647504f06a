package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cryptodash/internal/database"
	"cryptodash/internal/market"
	"cryptodash/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func pricedCoin(id string, price float64) models.Coin {
	return models.Coin{ID: id, CurrentPrice: decimal.NewNullDecimal(dec(price))}
}

func newTestPriceService(ctrl *gomock.Controller) (*PriceService, *MockPriceStore, *MockMarketSource) {
	store := NewMockPriceStore(ctrl)
	m := NewMockMarketSource(ctrl)
	p := NewPriceService(store, m, 15*time.Minute, logrus.New())
	p.now = func() time.Time { return testNow }
	return p, store, m
}

func TestPriceService_GetPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh stored price skips the market", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, store, _ := newTestPriceService(ctrl)
		seen := testNow.Add(-time.Minute)
		store.EXPECT().GetLatestPrice(gomock.Any(), "bitcoin").Return(dec(43250), seen, nil)

		price, ts, err := p.GetPrice(ctx, "bitcoin")
		require.NoError(t, err)
		require.True(t, price.Equal(dec(43250)))
		require.Equal(t, seen, ts)
	})
	t.Run("old price is refetched and stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, store, m := newTestPriceService(ctrl)
		store.EXPECT().GetLatestPrice(gomock.Any(), "bitcoin").Return(dec(40000), testNow.Add(-time.Hour), nil)
		m.EXPECT().CoinsByIDs(gomock.Any(), []string{"bitcoin"}).Return([]models.Coin{pricedCoin("bitcoin", 43250)}, nil)
		store.EXPECT().UpsertPrice(gomock.Any(), "bitcoin", gomock.Any(), testNow).
			DoAndReturn(func(_ context.Context, _ string, price decimal.Decimal, _ time.Time) error {
				require.True(t, price.Equal(dec(43250)))
				return nil
			})

		price, ts, err := p.GetPrice(ctx, "bitcoin")
		require.NoError(t, err)
		require.True(t, price.Equal(dec(43250)))
		require.Equal(t, testNow, ts)
	})
	t.Run("market down serves stale price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, store, m := newTestPriceService(ctrl)
		old := testNow.Add(-time.Hour)
		store.EXPECT().GetLatestPrice(gomock.Any(), "bitcoin").Return(dec(40000), old, nil)
		m.EXPECT().CoinsByIDs(gomock.Any(), gomock.Any()).Return(nil, market.ErrDataUnavailable)

		price, ts, err := p.GetPrice(ctx, "bitcoin")
		require.NoError(t, err)
		require.True(t, price.Equal(dec(40000)))
		require.Equal(t, old, ts)
	})
	t.Run("no price anywhere is unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, store, m := newTestPriceService(ctrl)
		store.EXPECT().GetLatestPrice(gomock.Any(), "bitcoin").Return(decimal.Zero, time.Time{}, database.ErrNotFound)
		m.EXPECT().CoinsByIDs(gomock.Any(), gomock.Any()).Return(nil, market.ErrDataUnavailable)

		_, _, err := p.GetPrice(ctx, "bitcoin")
		require.True(t, errors.Is(err, market.ErrDataUnavailable))
	})
	t.Run("unknown coin is unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, store, m := newTestPriceService(ctrl)
		store.EXPECT().GetLatestPrice(gomock.Any(), "nope").Return(decimal.Zero, time.Time{}, database.ErrNotFound)
		m.EXPECT().CoinsByIDs(gomock.Any(), []string{"nope"}).Return([]models.Coin{}, nil)

		_, _, err := p.GetPrice(ctx, "nope")
		require.True(t, errors.Is(err, market.ErrDataUnavailable))
	})
	t.Run("coin without a price is unavailable and not stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, store, m := newTestPriceService(ctrl)
		store.EXPECT().GetLatestPrice(gomock.Any(), "bitcoin").Return(decimal.Zero, time.Time{}, database.ErrNotFound)
		m.EXPECT().CoinsByIDs(gomock.Any(), []string{"bitcoin"}).Return([]models.Coin{{ID: "bitcoin"}}, nil)

		_, _, err := p.GetPrice(ctx, "bitcoin")
		require.ErrorIs(t, err, market.ErrDataUnavailable)
	})
	t.Run("coin without a price falls back to the stored one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, store, m := newTestPriceService(ctrl)
		old := testNow.Add(-time.Hour)
		store.EXPECT().GetLatestPrice(gomock.Any(), "bitcoin").Return(dec(40000), old, nil)
		m.EXPECT().CoinsByIDs(gomock.Any(), []string{"bitcoin"}).Return([]models.Coin{{ID: "bitcoin"}}, nil)

		price, ts, err := p.GetPrice(ctx, "bitcoin")
		require.NoError(t, err)
		require.True(t, price.Equal(dec(40000)))
		require.Equal(t, old, ts)
	})
}

func TestPriceService_GetPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, store, m := newTestPriceService(ctrl)

	store.EXPECT().GetLatestPrice(gomock.Any(), "bitcoin").Return(dec(43250), testNow, nil)
	store.EXPECT().GetLatestPrice(gomock.Any(), "cardano").Return(decimal.Zero, time.Time{}, database.ErrNotFound)
	store.EXPECT().GetLatestPrice(gomock.Any(), "solana").Return(decimal.Zero, time.Time{}, database.ErrNotFound)
	m.EXPECT().CoinsByIDs(gomock.Any(), []string{"cardano", "solana"}).Return([]models.Coin{
		pricedCoin("cardano", 0.52),
		pricedCoin("solana", 98),
	}, nil)
	store.EXPECT().UpsertPrice(gomock.Any(), gomock.Any(), gomock.Any(), testNow).Return(nil).Times(2)

	quotes, err := p.GetPrices(context.Background(), []string{"solana", "bitcoin", "cardano", "bitcoin"})
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	require.True(t, quotes["cardano"].Price.Equal(dec(0.52)))
}

func TestPriceService_Refresh(t *testing.T) {
	t.Run("stores every returned price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, store, m := newTestPriceService(ctrl)
		store.EXPECT().GetTrackedAssets(gomock.Any()).Return([]string{"bitcoin", "ethereum"}, nil)
		m.EXPECT().CoinsByIDs(gomock.Any(), []string{"bitcoin", "ethereum"}).Return([]models.Coin{
			pricedCoin("bitcoin", 43250),
			pricedCoin("ethereum", 2650),
		}, nil)
		store.EXPECT().UpsertPrice(gomock.Any(), "bitcoin", gomock.Any(), testNow).Return(nil)
		store.EXPECT().UpsertPrice(gomock.Any(), "ethereum", gomock.Any(), testNow).Return(nil)

		require.NoError(t, p.Refresh(context.Background()))
	})
	t.Run("coins without a price are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, store, m := newTestPriceService(ctrl)
		store.EXPECT().GetTrackedAssets(gomock.Any()).Return([]string{"bitcoin", "delisted"}, nil)
		m.EXPECT().CoinsByIDs(gomock.Any(), []string{"bitcoin", "delisted"}).Return([]models.Coin{
			pricedCoin("bitcoin", 43250),
			{ID: "delisted"},
		}, nil)
		store.EXPECT().UpsertPrice(gomock.Any(), "bitcoin", gomock.Any(), testNow).Return(nil)

		require.NoError(t, p.Refresh(context.Background()))
	})
	t.Run("market failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, store, m := newTestPriceService(ctrl)
		store.EXPECT().GetTrackedAssets(gomock.Any()).Return([]string{"bitcoin"}, nil)
		m.EXPECT().CoinsByIDs(gomock.Any(), gomock.Any()).Return(nil, market.ErrDataUnavailable)

		require.ErrorIs(t, p.Refresh(context.Background()), market.ErrDataUnavailable)
	})
	t.Run("overlapping refresh is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p, _, _ := newTestPriceService(ctrl)
		p.refreshing.Lock()
		defer p.refreshing.Unlock()

		// no store or market expectations: any call fails the test
		require.NoError(t, p.Refresh(context.Background()))
	})
}

func TestPriceService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, store, _ := newTestPriceService(ctrl)

	called := make(chan struct{}, 1)
	store.EXPECT().GetTrackedAssets(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
		select {
		case called <- struct{}{}:
		default:
		}
		return []string{}, nil
	}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx, time.Hour)
	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("refresh did not run on start")
	}
	cancel()
}
