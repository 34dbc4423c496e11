package common

import (
	"fmt"
	"io"
)

// Diagnostic tags. Every skip or abort message printed to the user carries
// exactly one of these as a prefix.
const (
	TagCatalog        = "[CATALOG ERROR]"
	TagSales          = "[SALES ERROR]"
	TagMissingProduct = "[MISSING PRODUCT]"
	TagFatal          = "[FATAL]"
)

type Reason int

const (
	// The element is not a JSON object.
	NotAnObject Reason = iota
	// The key field (title/Product) is missing, not a string or blank.
	InvalidKey
	// The amount field (price/Quantity) is missing or not a number.
	InvalidAmount
)

// Rejection describes why a raw record was dropped. It is a value, not an
// error: callers report it and move on to the next record.
type Rejection struct {
	Noun   string // "Item" for the catalogue, "Line" for sales
	Index  int    // Position in the input array
	Key    string // Key value, set once the key field validated
	Field  string // Name of the offending field
	Reason Reason
}

func (r Rejection) String() string {
	switch r.Reason {
	case NotAnObject:
		return fmt.Sprintf("%s %d is not an object. Skipping.", r.Noun, r.Index)
	case InvalidKey:
		return fmt.Sprintf("%s %d missing valid '%s'. Skipping.", r.Noun, r.Index, r.Field)
	default:
		return fmt.Sprintf("%s %d '%s' missing valid '%s'. Skipping.", r.Noun, r.Index, r.Key, r.Field)
	}
}

// Diagnose writes one tagged diagnostic line.
func Diagnose(w io.Writer, tag string, format string, args ...any) {
	fmt.Fprintf(w, tag+" "+format+"\n", args...)
}
