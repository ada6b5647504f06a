package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sqlx.DB {
	url := os.Getenv("POSTGRES_URL")
	if url == "" {
		t.Skip("POSTGRES_URL is not set; skipping integration tests")
	}
	db, err := sqlx.Open("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	b, err := os.ReadFile("../../migrations/0001_init.up.sql")
	require.NoError(t, err)
	if _, err := db.Exec(string(b)); err != nil {
		t.Logf("exec migration: %v", err)
	}
	return db
}

func resetUser(t *testing.T, db *sqlx.DB, userID string) {
	_, _ = db.Exec(`DELETE FROM holdings WHERE user_id = $1`, userID)
	_, _ = db.Exec(`DELETE FROM notification_settings WHERE user_id = $1`, userID)
	_, _ = db.Exec(`DELETE FROM users WHERE id = $1`, userID)
}

func TestHoldings(t *testing.T) {
	db := setupDB(t)
	r := New(db, logrus.New())
	ctx := context.Background()

	userID := "test-holdings-user"
	resetUser(t, db, userID)
	require.NoError(t, r.EnsureUserExists(ctx, userID, "Holdings User", "holdings@example.com"))

	btcDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	solDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	solID, err := r.CreateHolding(ctx, NewHolding{
		UserID: userID, AssetID: "solana", Symbol: "SOL", Name: "Solana",
		Quantity: decimal.NewFromInt(15), PurchasePrice: decimal.NewFromInt(85), PurchaseDate: solDate,
	})
	require.NoError(t, err)
	btcID, err := r.CreateHolding(ctx, NewHolding{
		UserID: userID, AssetID: "bitcoin", Symbol: "BTC", Name: "Bitcoin",
		Quantity: decimal.RequireFromString("0.5"), PurchasePrice: decimal.NewFromInt(35000), PurchaseDate: btcDate,
	})
	require.NoError(t, err)

	holdings, err := r.GetHoldings(ctx, userID)
	require.NoError(t, err)
	require.Len(t, holdings, 2)
	require.Equal(t, btcID, holdings[0].ID, "ordered by purchase date")
	require.Equal(t, "BTC", holdings[0].Symbol)
	require.True(t, holdings[0].Quantity.Equal(decimal.RequireFromString("0.5")))
	require.True(t, holdings[0].CurrentPrice.IsZero(), "current price is never stored")
	require.Equal(t, solID, holdings[1].ID)

	tracked, err := r.GetTrackedAssets(ctx)
	require.NoError(t, err)
	require.Contains(t, tracked, "bitcoin")
	require.Contains(t, tracked, "solana")

	require.NoError(t, r.DeleteHolding(ctx, userID, solID))
	require.ErrorIs(t, r.DeleteHolding(ctx, userID, solID), ErrNotFound)
	require.ErrorIs(t, r.DeleteHolding(ctx, userID, "not-a-uuid"), ErrNotFound)

	holdings, err = r.GetHoldings(ctx, userID)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
}

func TestCreateHolding_Rejects(t *testing.T) {
	db := setupDB(t)
	r := New(db, logrus.New())
	ctx := context.Background()

	t.Run("negative quantity", func(t *testing.T) {
		_, err := r.CreateHolding(ctx, NewHolding{
			UserID: "anyone", AssetID: "bitcoin", Symbol: "BTC",
			Quantity: decimal.NewFromInt(-1), PurchasePrice: decimal.NewFromInt(1),
		})
		require.Error(t, err)
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := r.CreateHolding(ctx, NewHolding{
			UserID: "no-such-user", AssetID: "bitcoin", Symbol: "BTC",
			Quantity: decimal.NewFromInt(1), PurchasePrice: decimal.NewFromInt(1),
		})
		require.ErrorIs(t, err, ErrUnknownUser)
	})
}
