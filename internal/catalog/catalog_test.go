package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// --- Setup & Helpers --------------------------------------------------------

func buildTestCatalog(t *testing.T, raw string) (*Prices, []string) {
	t.Helper()
	var diag bytes.Buffer
	prices, err := Build(gjson.Parse(raw), &diag)
	require.NoError(t, err)
	return prices, diagLines(diag.String())
}

func diagLines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// --- Tests ------------------------------------------------------------------

func TestBuild_Valid(t *testing.T) {
	prices, diag := buildTestCatalog(t, `[
		{"title":"Widget","price":10},
		{"title":"Gadget","price":2.5,"type":"tools","stock":3}
	]`)

	assert.Empty(t, diag)
	assert.Equal(t, map[string]float64{"Widget": 10, "Gadget": 2.5}, prices.Map())
	assert.Equal(t, []string{"Gadget", "Widget"}, prices.Titles())
}

func TestBuild_BlankTitleSkipped(t *testing.T) {
	prices, diag := buildTestCatalog(t, `[{"title":"A","price":5},{"title":""}]`)

	assert.Equal(t, map[string]float64{"A": 5}, prices.Map())
	assert.Equal(t, []string{"[CATALOG ERROR] Item 1 missing valid 'title'. Skipping."}, diag)
}

func TestBuild_InvalidEntries(t *testing.T) {
	prices, diag := buildTestCatalog(t, `[
		"not an object",
		42,
		["title", "price"],
		{"price": 3},
		{"title": 7, "price": 3},
		{"title": "   ", "price": 3},
		{"title": "NoPrice"},
		{"title": "StringPrice", "price": "3.00"},
		{"title": "ListPrice", "price": [3]},
		{"title": "NullPrice", "price": null},
		{"title": "Ok", "price": 1}
	]`)

	assert.Equal(t, map[string]float64{"Ok": 1}, prices.Map())
	assert.Equal(t, []string{
		"[CATALOG ERROR] Item 0 is not an object. Skipping.",
		"[CATALOG ERROR] Item 1 is not an object. Skipping.",
		"[CATALOG ERROR] Item 2 is not an object. Skipping.",
		"[CATALOG ERROR] Item 3 missing valid 'title'. Skipping.",
		"[CATALOG ERROR] Item 4 missing valid 'title'. Skipping.",
		"[CATALOG ERROR] Item 5 missing valid 'title'. Skipping.",
		"[CATALOG ERROR] Item 6 'NoPrice' missing valid 'price'. Skipping.",
		"[CATALOG ERROR] Item 7 'StringPrice' missing valid 'price'. Skipping.",
		"[CATALOG ERROR] Item 8 'ListPrice' missing valid 'price'. Skipping.",
		"[CATALOG ERROR] Item 9 'NullPrice' missing valid 'price'. Skipping.",
	}, diag)
}

func TestBuild_BooleanPrices(t *testing.T) {
	prices, diag := buildTestCatalog(t, `[
		{"title":"Free","price":false},
		{"title":"One","price":true},
		{"title":true,"price":1}
	]`)

	assert.Equal(t, map[string]float64{"Free": 0, "One": 1}, prices.Map())
	assert.Equal(t, []string{"[CATALOG ERROR] Item 2 missing valid 'title'. Skipping."}, diag)
}

func TestBuild_TitleCheckedBeforePrice(t *testing.T) {
	_, diag := buildTestCatalog(t, `[{"title":"","price":"x"}]`)
	assert.Equal(t, []string{"[CATALOG ERROR] Item 0 missing valid 'title'. Skipping."}, diag)
}

func TestBuild_DuplicateTitleLastWins(t *testing.T) {
	var diag bytes.Buffer
	res, err := BuildWithLog(gjson.Parse(`[
		{"title":"Widget","price":10},
		{"title":"Widget","price":12},
		{"title":"Widget"}
	]`), &diag, zerolog.Nop())
	require.NoError(t, err)

	price, ok := res.Prices.Lookup("Widget")
	assert.True(t, ok)
	assert.Equal(t, 12.0, price)
	assert.Equal(t, 1, res.Prices.Len())
	assert.Equal(t, 3, res.Entries)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Replaced)
}

func TestBuild_Empty(t *testing.T) {
	prices, diag := buildTestCatalog(t, `[]`)
	assert.Equal(t, 0, prices.Len())
	assert.Empty(t, diag)
}

func TestBuild_AllInvalidIsNotAnError(t *testing.T) {
	prices, diag := buildTestCatalog(t, `[1, {"title":""}]`)
	assert.Equal(t, 0, prices.Len())
	assert.Len(t, diag, 2)
}

func TestBuild_NotAList(t *testing.T) {
	for _, raw := range []string{`{"title":"A","price":1}`, `12`, `"x"`, `null`} {
		var diag bytes.Buffer
		prices, err := Build(gjson.Parse(raw), &diag)
		assert.ErrorIs(t, err, ErrNotList, "raw %s", raw)
		assert.Nil(t, prices)
		assert.Empty(t, diag.String())
	}
}

func TestBuild_TitleKeptVerbatim(t *testing.T) {
	prices, _ := buildTestCatalog(t, `[{"title":" Widget ","price":1}]`)

	_, ok := prices.Lookup("Widget")
	assert.False(t, ok)
	_, ok = prices.Lookup(" Widget ")
	assert.True(t, ok)
}
