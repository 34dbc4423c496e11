// Package sales turns a sales record document into validated sale lines.
package sales

import (
	"errors"
	"io"

	"computesales/internal/common"
	"computesales/internal/source"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

var ErrNotList = errors.New("sales record JSON must be a list of sales lines")

// Field names used by the sales record format. The capitalisation differs
// from the catalogue format and existing data files depend on it.
const (
	FieldProduct  = "Product"
	FieldQuantity = "Quantity"
)

// Parse converts a parsed sales document into sale lines, keeping the input
// order. Invalid elements are reported to diag and dropped without leaving a
// gap.
func Parse(doc gjson.Result, diag io.Writer) ([]common.SaleLine, error) {
	return ParseWithLog(doc, diag, zerolog.Nop())
}

func ParseWithLog(doc gjson.Result, diag io.Writer, logger zerolog.Logger) ([]common.SaleLine, error) {
	if !doc.IsArray() {
		return nil, ErrNotList
	}

	items := doc.Array()
	lines := make([]common.SaleLine, 0, len(items))
	for idx, item := range items {
		line, rejection := validateLine(idx, item)
		if rejection != nil {
			common.Diagnose(diag, common.TagSales, "%s", rejection)
			logger.Debug().
				Int("index", idx).
				Str("field", rejection.Field).
				Msg("sales line skipped")
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func validateLine(idx int, item gjson.Result) (common.SaleLine, *common.Rejection) {
	if !item.IsObject() {
		return common.SaleLine{}, &common.Rejection{Noun: "Line", Index: idx, Reason: common.NotAnObject}
	}

	product, ok := source.Text(source.Field(item, FieldProduct))
	if !ok {
		return common.SaleLine{}, &common.Rejection{
			Noun: "Line", Index: idx, Field: FieldProduct, Reason: common.InvalidKey,
		}
	}

	quantity, ok := source.Number(source.Field(item, FieldQuantity))
	if !ok {
		return common.SaleLine{}, &common.Rejection{
			Noun: "Line", Index: idx, Key: product, Field: FieldQuantity, Reason: common.InvalidAmount,
		}
	}

	return common.SaleLine{Product: product, Quantity: quantity}, nil
}
