package present

import (
	"io"

	"cryptodash/internal/valuation"

	"github.com/gocarina/gocsv"
)

const dateLayout = "Jan 2, 2006"

type HoldingDisplay struct {
	ID                string `json:"id"`
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	Quantity          string `json:"quantity"`
	CurrentPrice      string `json:"current_price"`
	CurrentValue      string `json:"current_value"`
	CostBasis         string `json:"cost_basis"`
	ProfitLoss        string `json:"profit_loss"`
	ProfitLossPercent string `json:"profit_loss_percent"`
	Allocation        string `json:"allocation"`
	PurchaseDate      string `json:"purchase_date"`
}

type SummaryDisplay struct {
	TotalValue             string `json:"total_value"`
	TotalInvested          string `json:"total_invested"`
	TotalProfitLoss        string `json:"total_profit_loss"`
	TotalProfitLossPercent string `json:"total_profit_loss_percent"`
}

type PortfolioDisplay struct {
	Summary  SummaryDisplay   `json:"summary"`
	Holdings []HoldingDisplay `json:"holdings"`
}

func Portfolio(s valuation.PortfolioSummary, allocations map[string]valuation.Percent) PortfolioDisplay {
	out := PortfolioDisplay{
		Summary: SummaryDisplay{
			TotalValue:             USD(s.TotalCurrentValue),
			TotalInvested:          USD(s.TotalCostBasis),
			TotalProfitLoss:        SignedUSD(s.TotalProfitLoss),
			TotalProfitLossPercent: SignedPercent(s.TotalProfitLossPercent),
		},
		Holdings: make([]HoldingDisplay, 0, len(s.Holdings)),
	}
	for _, v := range s.Holdings {
		h := v.Holding
		alloc, ok := allocations[h.ID]
		if !ok {
			alloc = valuation.NotApplicable()
		}
		d := HoldingDisplay{
			ID:                h.ID,
			Symbol:            h.Symbol,
			Name:              h.Name,
			Quantity:          h.Quantity.String() + " " + h.Symbol,
			CurrentPrice:      USD(h.CurrentPrice),
			CurrentValue:      USD(v.CurrentValue),
			CostBasis:         USD(v.CostBasis),
			ProfitLoss:        SignedUSD(v.ProfitLoss),
			ProfitLossPercent: SignedPercent(v.ProfitLossPercent),
			Allocation:        Percent(alloc),
		}
		if !h.PurchaseDate.IsZero() {
			d.PurchaseDate = h.PurchaseDate.Format(dateLayout)
		}
		out.Holdings = append(out.Holdings, d)
	}
	return out
}

// ExportRow is one holding in the CSV export. Amounts are raw decimals so the
// file can be re-imported without loss.
type ExportRow struct {
	ID                string `csv:"id"`
	AssetID           string `csv:"asset_id"`
	Symbol            string `csv:"symbol"`
	Quantity          string `csv:"quantity"`
	PurchasePrice     string `csv:"purchase_price"`
	CurrentPrice      string `csv:"current_price"`
	CostBasis         string `csv:"cost_basis"`
	CurrentValue      string `csv:"current_value"`
	ProfitLoss        string `csv:"profit_loss"`
	ProfitLossPercent string `csv:"profit_loss_percent"`
	Allocation        string `csv:"allocation_percent"`
	PurchaseDate      string `csv:"purchase_date"`
}

func ExportRows(s valuation.PortfolioSummary, allocations map[string]valuation.Percent) []*ExportRow {
	rows := make([]*ExportRow, 0, len(s.Holdings))
	for _, v := range s.Holdings {
		h := v.Holding
		row := &ExportRow{
			ID:                h.ID,
			AssetID:           h.AssetID,
			Symbol:            h.Symbol,
			Quantity:          h.Quantity.String(),
			PurchasePrice:     h.PurchasePrice.String(),
			CurrentPrice:      h.CurrentPrice.String(),
			CostBasis:         v.CostBasis.String(),
			CurrentValue:      v.CurrentValue.String(),
			ProfitLoss:        v.ProfitLoss.String(),
			ProfitLossPercent: rawPercent(v.ProfitLossPercent),
			Allocation:        rawPercent(allocations[h.ID]),
		}
		if !h.PurchaseDate.IsZero() {
			row.PurchaseDate = h.PurchaseDate.Format("2006-01-02")
		}
		rows = append(rows, row)
	}
	return rows
}

func WriteCSV(w io.Writer, rows []*ExportRow) error {
	return gocsv.Marshal(&rows, w)
}

// rawPercent leaves not applicable cells empty
func rawPercent(p valuation.Percent) string {
	if !p.Applicable {
		return ""
	}
	return p.Value.String()
}
