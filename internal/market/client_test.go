package market

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const btcMarket = `[{"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://img/btc.png",
"current_price":43250,"market_cap":847000000000,"market_cap_rank":1,"price_change_24h":-512.3,
"price_change_percentage_24h":-1.17,"total_volume":21000000000,"high_24h":44000,"low_24h":null,
"last_updated":"2024-01-15T10:00:00.000Z"}]`

func newTestClient(url string) *Client {
	c := NewClient(url, "", time.Second, 2, logrus.New())
	c.Backoff = time.Millisecond
	return c
}

func TestClient_TopCoins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/coins/markets", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "usd", q.Get("vs_currency"))
		require.Equal(t, "market_cap_desc", q.Get("order"))
		require.Equal(t, "250", q.Get("per_page"))
		require.Equal(t, "1", q.Get("page"))
		fmt.Fprint(w, btcMarket)
	}))
	defer srv.Close()

	coins, err := newTestClient(srv.URL).TopCoins(context.Background(), 1000)
	require.NoError(t, err)
	require.Len(t, coins, 1)
	c := coins[0]
	require.Equal(t, "bitcoin", c.ID)
	require.Equal(t, 1, c.MarketCapRank)
	require.True(t, c.CurrentPrice.Valid)
	require.True(t, c.CurrentPrice.Decimal.Equal(decimal.NewFromInt(43250)))
	require.True(t, c.PriceChangePercentage24h.Equal(decimal.RequireFromString("-1.17")))
	require.True(t, c.Low24h.IsZero())
	require.Equal(t, 2024, c.LastUpdated.Year())
}

func TestClient_Search(t *testing.T) {
	t.Run("resolves ids then markets", func(t *testing.T) {
		var ids []string
		for i := 0; i < 12; i++ {
			ids = append(ids, fmt.Sprintf(`{"id":"coin-%d"}`, i))
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/search":
				require.Equal(t, "bit", r.URL.Query().Get("query"))
				fmt.Fprintf(w, `{"coins":[%s]}`, strings.Join(ids, ","))
			case "/coins/markets":
				got := strings.Split(r.URL.Query().Get("ids"), ",")
				require.Len(t, got, 10)
				require.Equal(t, "coin-0", got[0])
				fmt.Fprint(w, btcMarket)
			default:
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
		}))
		defer srv.Close()

		coins, err := newTestClient(srv.URL).Search(context.Background(), " bit ")
		require.NoError(t, err)
		require.Len(t, coins, 1)
	})
	t.Run("no matches", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			fmt.Fprint(w, `{"coins":[]}`)
		}))
		defer srv.Close()

		coins, err := newTestClient(srv.URL).Search(context.Background(), "zzzz")
		require.NoError(t, err)
		require.Empty(t, coins)
		require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
	t.Run("blank query skips the api", func(t *testing.T) {
		coins, err := newTestClient("http://127.0.0.1:0").Search(context.Background(), "   ")
		require.NoError(t, err)
		require.Empty(t, coins)
	})
}

func TestClient_UnpricedCoins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"delisted","symbol":"dl","name":"Delisted","current_price":null},
{"id":"fresh","symbol":"fr","name":"Fresh"},
{"id":"airdrop","symbol":"ad","name":"Airdrop","current_price":0}]`)
	}))
	defer srv.Close()

	coins, err := newTestClient(srv.URL).CoinsByIDs(context.Background(), []string{"delisted", "fresh", "airdrop"})
	require.NoError(t, err)
	require.Len(t, coins, 3)
	require.False(t, coins[0].CurrentPrice.Valid)
	require.False(t, coins[1].CurrentPrice.Valid)
	require.True(t, coins[2].CurrentPrice.Valid)
	require.True(t, coins[2].CurrentPrice.Decimal.IsZero())
}

func TestClient_CoinByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ids") == "bitcoin" {
			fmt.Fprint(w, btcMarket)
			return
		}
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()
	c := newTestClient(srv.URL)

	coin, err := c.CoinByID(context.Background(), "bitcoin")
	require.NoError(t, err)
	require.Equal(t, "Bitcoin", coin.Name)

	_, err = c.CoinByID(context.Background(), "nope")
	require.True(t, errors.Is(err, ErrNotFound))
	require.False(t, errors.Is(err, ErrDataUnavailable))
}

func TestClient_Retries(t *testing.T) {
	t.Run("server errors are retried", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			fmt.Fprint(w, btcMarket)
		}))
		defer srv.Close()

		coins, err := newTestClient(srv.URL).TopCoins(context.Background(), 50)
		require.NoError(t, err)
		require.Len(t, coins, 1)
		require.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})
	t.Run("gives up after max retries", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).TopCoins(context.Background(), 50)
		require.True(t, errors.Is(err, ErrDataUnavailable))
		var se StatusError
		require.True(t, errors.As(err, &se))
		require.Equal(t, http.StatusTooManyRequests, se.StatusCode)
		require.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})
	t.Run("client errors are not retried", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).TopCoins(context.Background(), 50)
		require.True(t, errors.Is(err, ErrDataUnavailable))
		require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"not":"a list"`)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).TopCoins(context.Background(), 50)
		require.True(t, errors.Is(err, ErrDataUnavailable))
	})
	t.Run("cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := newTestClient(srv.URL)
		c.Backoff = time.Hour
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()
		_, err := c.TopCoins(ctx, 10)
		require.True(t, errors.Is(err, ErrDataUnavailable))
	})
}

func Test_retryAfter(t *testing.T) {
	require.Equal(t, 2*time.Second, retryAfter("2"))
	require.Equal(t, time.Duration(0), retryAfter(""))
	require.Equal(t, time.Duration(0), retryAfter("Wed, 21 Oct 2015 07:28:00 GMT"))
}
