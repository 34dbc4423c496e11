package engine

import (
	"io"

	"computesales/internal/common"
)

// This is the cost engine: it joins sale lines against the price lookup.

// PriceLookup resolves a product title to its unit price.
type PriceLookup interface {
	Lookup(title string) (float64, bool)
}

// Summary is the outcome of a calculation.
type Summary struct {
	Total   float64 // Sum of price * quantity over matched lines
	Matched int     // Lines whose product was found
	Missing int     // Lines skipped for an unknown product
}

// Calculate walks lines in order and adds price * quantity for every line
// whose product is known. Unknown products are reported to diag, with the
// line's position in lines, and contribute nothing. No rounding is done here.
func Calculate(prices PriceLookup, lines []common.SaleLine, diag io.Writer) Summary {
	var summary Summary
	for idx, line := range lines {
		price, ok := prices.Lookup(line.Product)
		if !ok {
			summary.Missing++
			common.Diagnose(diag, common.TagMissingProduct,
				"Line %d: '%s' not found in catalogue. Skipping.", idx, line.Product)
			continue
		}

		summary.Matched++
		summary.Total += price * line.Quantity
	}
	return summary
}

// TotalCost returns only the total of Calculate.
func TotalCost(prices PriceLookup, lines []common.SaleLine, diag io.Writer) float64 {
	return Calculate(prices, lines, diag).Total
}
