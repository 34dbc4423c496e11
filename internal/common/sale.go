package common

// SaleLine is a single validated sales transaction. Values are only built
// from records that passed validation, so Product is never blank.
type SaleLine struct {
	Product  string  // Catalogue title this line refers to
	Quantity float64 // Units sold, may be fractional or negative
}
