package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cryptodash/internal/database"
	"cryptodash/internal/valuation"

	"github.com/sirupsen/logrus"
)

// Portfolio is a user's holdings valued at current prices. PricedAt is the
// oldest quote used, so callers can tell how stale the valuation is.
type Portfolio struct {
	UserID      string                       `json:"user_id"`
	Summary     valuation.PortfolioSummary   `json:"summary"`
	Allocations map[string]valuation.Percent `json:"allocations"`
	PricedAt    time.Time                    `json:"priced_at"`
}

type PortfolioService struct {
	holdings HoldingStore
	prices   PriceProvider
	log      *logrus.Logger
}

func NewPortfolioService(h HoldingStore, p PriceProvider, log *logrus.Logger) *PortfolioService {
	return &PortfolioService{holdings: h, prices: p, log: log}
}

// Portfolio values every holding of userID. If any holding cannot be priced
// the whole call fails with market.ErrDataUnavailable; a partially priced
// portfolio is never returned.
func (s *PortfolioService) Portfolio(ctx context.Context, userID string) (Portfolio, error) {
	holdings, err := s.holdings.GetHoldings(ctx, userID)
	if err != nil {
		return Portfolio{}, fmt.Errorf("load holdings: %w", err)
	}
	out := Portfolio{UserID: userID}

	if len(holdings) > 0 {
		ids := make([]string, 0, len(holdings))
		for _, h := range holdings {
			ids = append(ids, h.AssetID)
		}
		quotes, err := s.prices.GetPrices(ctx, ids)
		if err != nil {
			return Portfolio{}, err
		}
		for i := range holdings {
			q := quotes[holdings[i].AssetID]
			holdings[i].CurrentPrice = q.Price
			if out.PricedAt.IsZero() || q.At.Before(out.PricedAt) {
				out.PricedAt = q.At
			}
		}
	}

	summary, err := valuation.Summarize(holdings)
	if err != nil {
		return Portfolio{}, err
	}
	out.Summary = summary
	out.Allocations = valuation.Allocations(summary)
	return out, nil
}

// AddHolding validates and stores a new holding, returning its id.
func (s *PortfolioService) AddHolding(ctx context.Context, in database.NewHolding) (string, error) {
	in.AssetID = strings.TrimSpace(in.AssetID)
	if in.AssetID == "" {
		return "", fmt.Errorf("%w: asset id is required", valuation.ErrInvalidHolding)
	}
	if in.Quantity.IsNegative() || in.PurchasePrice.IsNegative() {
		return "", fmt.Errorf("%w: quantity and purchase price must be non-negative", valuation.ErrInvalidHolding)
	}
	in.Symbol = strings.ToUpper(strings.TrimSpace(in.Symbol))
	id, err := s.holdings.CreateHolding(ctx, in)
	if err != nil {
		return "", err
	}
	s.log.Infof("user %s added holding %s (%s %s)", in.UserID, id, in.Quantity, in.Symbol)
	return id, nil
}

func (s *PortfolioService) RemoveHolding(ctx context.Context, userID, holdingID string) error {
	if err := s.holdings.DeleteHolding(ctx, userID, holdingID); err != nil {
		return err
	}
	s.log.Infof("user %s removed holding %s", userID, holdingID)
	return nil
}
