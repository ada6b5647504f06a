package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a single position in one priced asset. CurrentPrice is supplied
// by the caller at read time and is never persisted with the holding.
type Holding struct {
	ID            string          `db:"id" json:"id"`
	UserID        string          `db:"user_id" json:"user_id"`
	AssetID       string          `db:"asset_id" json:"asset_id"`
	Symbol        string          `db:"symbol" json:"symbol"`
	Name          string          `db:"name" json:"name"`
	Quantity      decimal.Decimal `db:"quantity" json:"quantity"`
	PurchasePrice decimal.Decimal `db:"purchase_price" json:"purchase_price"`
	CurrentPrice  decimal.Decimal `db:"-" json:"current_price"`
	PurchaseDate  time.Time       `db:"purchase_date" json:"purchase_date"`
}

// Coin is one market record as returned by the market data source.
// CurrentPrice is invalid when the source has no price for the coin.
type Coin struct {
	ID                       string              `json:"id"`
	Symbol                   string              `json:"symbol"`
	Name                     string              `json:"name"`
	Image                    string              `json:"image"`
	CurrentPrice             decimal.NullDecimal `json:"current_price"`
	MarketCap                decimal.Decimal     `json:"market_cap"`
	MarketCapRank            int                 `json:"market_cap_rank"`
	PriceChange24h           decimal.Decimal     `json:"price_change_24h"`
	PriceChangePercentage24h decimal.Decimal     `json:"price_change_percentage_24h"`
	TotalVolume              decimal.Decimal     `json:"total_volume"`
	High24h                  decimal.Decimal     `json:"high_24h"`
	Low24h                   decimal.Decimal     `json:"low_24h"`
	LastUpdated              time.Time           `json:"last_updated"`
}

type UserProfile struct {
	ID       string    `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Email    string    `db:"email" json:"email"`
	Avatar   string    `db:"avatar" json:"avatar,omitempty"`
	JoinDate time.Time `db:"join_date" json:"join_date"`
}

type BlogPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Author  string `json:"author"`
	Image   string `json:"image,omitempty"`
}
