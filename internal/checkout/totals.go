package checkout

import "github.com/bungalowparadise/storefront/internal/model"

// TaxRate is the storefront's taxes-and-fees rate applied on top of the
// room subtotal ("15% taxes and fees" in the displayed copy).
const TaxRate = 0.15

// Totals is the client-side price breakdown shown before confirmation. The
// engine's confirmed amount remains authoritative for what was charged.
type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	TaxesAndFees float64 `json:"taxesAndFees"`
	GrandTotal   float64 `json:"grandTotal"`
}

// ComputeTotals sums price × nights per item and applies the tax rate.
func ComputeTotals(items []model.CartItem) Totals {
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Total()
	}
	taxes := subtotal * TaxRate
	return Totals{
		Subtotal:     subtotal,
		TaxesAndFees: taxes,
		GrandTotal:   subtotal + taxes,
	}
}
