package database

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrUnknownUser = errors.New("unknown user")
)

// NewHolding is the input to CreateHolding.
type NewHolding struct {
	UserID        string          `json:"-"`
	AssetID       string          `json:"asset_id" binding:"required"`
	Symbol        string          `json:"symbol" binding:"required"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  time.Time       `json:"purchase_date"`
}

type PricePoint struct {
	AssetID   string          `db:"asset_id" json:"asset_id"`
	Price     decimal.Decimal `db:"price_usd" json:"price"`
	Timestamp time.Time       `db:"timestamp" json:"timestamp"`
}
