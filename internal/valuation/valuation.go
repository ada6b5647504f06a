// Package valuation computes cost basis, current value, profit/loss and
// allocation for portfolio holdings. Every function is pure: inputs are read,
// new values are returned, nothing is retained.
package valuation

import (
	"errors"
	"fmt"

	"cryptodash/internal/models"

	"github.com/shopspring/decimal"
)

var ErrInvalidHolding = errors.New("invalid holding")

var hundred = decimal.NewFromInt(100)

type HoldingValuation struct {
	Holding           models.Holding  `json:"holding"`
	CostBasis         decimal.Decimal `json:"cost_basis"`
	CurrentValue      decimal.Decimal `json:"current_value"`
	ProfitLoss        decimal.Decimal `json:"profit_loss"`
	ProfitLossPercent Percent         `json:"profit_loss_percent"`
}

// PortfolioSummary is the derived snapshot of a holding sequence. Holdings
// keeps the input order.
type PortfolioSummary struct {
	Holdings               []HoldingValuation `json:"holdings"`
	TotalCurrentValue      decimal.Decimal    `json:"total_current_value"`
	TotalCostBasis         decimal.Decimal    `json:"total_cost_basis"`
	TotalProfitLoss        decimal.Decimal    `json:"total_profit_loss"`
	TotalProfitLossPercent Percent            `json:"total_profit_loss_percent"`
}

func validate(h models.Holding) error {
	switch {
	case h.Quantity.IsNegative():
		return fmt.Errorf("%w %s: negative quantity %s", ErrInvalidHolding, h.ID, h.Quantity)
	case h.PurchasePrice.IsNegative():
		return fmt.Errorf("%w %s: negative purchase price %s", ErrInvalidHolding, h.ID, h.PurchasePrice)
	case h.CurrentPrice.IsNegative():
		return fmt.Errorf("%w %s: negative current price %s", ErrInvalidHolding, h.ID, h.CurrentPrice)
	}
	return nil
}

func ValueHolding(h models.Holding) (HoldingValuation, error) {
	if err := validate(h); err != nil {
		return HoldingValuation{}, err
	}
	cost := h.Quantity.Mul(h.PurchasePrice)
	value := h.Quantity.Mul(h.CurrentPrice)
	pl := value.Sub(cost)
	return HoldingValuation{
		Holding:           h,
		CostBasis:         cost,
		CurrentValue:      value,
		ProfitLoss:        pl,
		ProfitLossPercent: percentOf(pl, cost),
	}, nil
}

// Summarize folds ValueHolding over holdings. The first invalid holding
// aborts the whole summary, as does a repeated holding id.
func Summarize(holdings []models.Holding) (PortfolioSummary, error) {
	s := PortfolioSummary{
		Holdings:          make([]HoldingValuation, 0, len(holdings)),
		TotalCurrentValue: decimal.Zero,
		TotalCostBasis:    decimal.Zero,
	}
	seen := make(map[string]struct{}, len(holdings))
	for _, h := range holdings {
		if _, dup := seen[h.ID]; dup {
			return PortfolioSummary{}, fmt.Errorf("%w %s: duplicate holding id", ErrInvalidHolding, h.ID)
		}
		seen[h.ID] = struct{}{}
		v, err := ValueHolding(h)
		if err != nil {
			return PortfolioSummary{}, err
		}
		s.Holdings = append(s.Holdings, v)
		s.TotalCurrentValue = s.TotalCurrentValue.Add(v.CurrentValue)
		s.TotalCostBasis = s.TotalCostBasis.Add(v.CostBasis)
	}
	s.TotalProfitLoss = s.TotalCurrentValue.Sub(s.TotalCostBasis)
	s.TotalProfitLossPercent = percentOf(s.TotalProfitLoss, s.TotalCostBasis)
	return s, nil
}

// AllocationOf is the share of the portfolio's current value held in h.
func AllocationOf(h models.Holding, summary PortfolioSummary) (Percent, error) {
	if err := validate(h); err != nil {
		return NotApplicable(), err
	}
	return percentOf(h.Quantity.Mul(h.CurrentPrice), summary.TotalCurrentValue), nil
}

// Allocations returns AllocationOf for every holding in the summary, keyed by
// holding id.
func Allocations(summary PortfolioSummary) map[string]Percent {
	out := make(map[string]Percent, len(summary.Holdings))
	for _, v := range summary.Holdings {
		out[v.Holding.ID] = percentOf(v.CurrentValue, summary.TotalCurrentValue)
	}
	return out
}
