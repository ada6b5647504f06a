package service

import (
	"context"
	"time"

	"cryptodash/internal/database"
	"cryptodash/internal/models"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=service

type MarketSource interface {
	CoinsByIDs(ctx context.Context, ids []string) ([]models.Coin, error)
}

type PriceStore interface {
	GetLatestPrice(ctx context.Context, assetID string) (decimal.Decimal, time.Time, error)
	UpsertPrice(ctx context.Context, assetID string, price decimal.Decimal, ts time.Time) error
	GetTrackedAssets(ctx context.Context) ([]string, error)
}

type HoldingStore interface {
	GetHoldings(ctx context.Context, userID string) ([]models.Holding, error)
	CreateHolding(ctx context.Context, in database.NewHolding) (string, error)
	DeleteHolding(ctx context.Context, userID, holdingID string) error
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, p models.UserProfile) error
	GetNotificationSettings(ctx context.Context, userID string) (models.NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, userID string, s models.NotificationSettings) error
}
