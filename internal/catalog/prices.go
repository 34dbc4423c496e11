package catalog

import (
	"github.com/tidwall/btree"
)

// Prices maps a product title to its unit price. Titles are kept sorted so
// listings and logs come out in a stable order.
//
// NOTE: prices are float64, the same as the input JSON. Rounding only happens
// when the report is formatted.
type Prices struct {
	titles btree.Map[string, float64]
}

func NewPrices() *Prices {
	return &Prices{}
}

// Set stores price under title, replacing any earlier entry. It reports
// whether an entry was replaced.
func (p *Prices) Set(title string, price float64) bool {
	_, replaced := p.titles.Set(title, price)
	return replaced
}

// Lookup returns the unit price for title.
func (p *Prices) Lookup(title string) (float64, bool) {
	return p.titles.Get(title)
}

func (p *Prices) Len() int { return p.titles.Len() }

// Titles returns every title in ascending order.
func (p *Prices) Titles() []string {
	return p.titles.Keys()
}

// Map copies the prices into a plain map.
func (p *Prices) Map() map[string]float64 {
	out := make(map[string]float64, p.titles.Len())
	p.titles.Scan(func(title string, price float64) bool {
		out[title] = price
		return true
	})
	return out
}
