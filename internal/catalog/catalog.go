// Package catalog builds the product price lookup from a price catalogue
// document. Invalid entries are reported and skipped; only a document that is
// not a list at all is an error.
package catalog

import (
	"errors"
	"io"

	"computesales/internal/common"
	"computesales/internal/source"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

var ErrNotList = errors.New("price catalogue JSON must be a list of products")

// Field names used by the catalogue format.
const (
	FieldTitle = "title"
	FieldPrice = "price"
)

// Result holds the built prices along with bookkeeping for logging.
type Result struct {
	Prices   *Prices
	Entries  int // Elements in the input array
	Skipped  int // Elements rejected by validation
	Replaced int // Valid elements that overwrote an earlier title
}

// Build converts a parsed catalogue document into Prices. One diagnostic line
// is written to diag for every skipped entry, in input order. Duplicate titles
// are not an error: the last one wins.
func Build(doc gjson.Result, diag io.Writer) (*Prices, error) {
	res, err := BuildWithLog(doc, diag, zerolog.Nop())
	if err != nil {
		return nil, err
	}
	return res.Prices, nil
}

// BuildWithLog is Build with per-entry debug logging and counters.
func BuildWithLog(doc gjson.Result, diag io.Writer, logger zerolog.Logger) (Result, error) {
	if !doc.IsArray() {
		return Result{}, ErrNotList
	}

	res := Result{Prices: NewPrices()}
	for idx, item := range doc.Array() {
		res.Entries++

		title, price, rejection := validateProduct(idx, item)
		if rejection != nil {
			res.Skipped++
			common.Diagnose(diag, common.TagCatalog, "%s", rejection)
			logger.Debug().
				Int("index", idx).
				Str("field", rejection.Field).
				Msg("catalogue entry skipped")
			continue
		}

		if res.Prices.Set(title, price) {
			res.Replaced++
			logger.Debug().Str("title", title).Msg("duplicate title replaced")
		}
	}

	return res, nil
}

// validateProduct checks a single catalogue element. The title is checked
// before the price, so an element with neither is reported for its title.
func validateProduct(idx int, item gjson.Result) (string, float64, *common.Rejection) {
	if !item.IsObject() {
		return "", 0, &common.Rejection{Noun: "Item", Index: idx, Reason: common.NotAnObject}
	}

	title, ok := source.Text(source.Field(item, FieldTitle))
	if !ok {
		return "", 0, &common.Rejection{
			Noun: "Item", Index: idx, Field: FieldTitle, Reason: common.InvalidKey,
		}
	}

	price, ok := source.Number(source.Field(item, FieldPrice))
	if !ok {
		return "", 0, &common.Rejection{
			Noun: "Item", Index: idx, Key: title, Field: FieldPrice, Reason: common.InvalidAmount,
		}
	}

	return title, price, nil
}
