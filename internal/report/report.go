// Package report renders the run summary and persists it next to the console
// output.
package report

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ResultsFile is written in the current working directory on every
// successful run, replacing any earlier copy.
const ResultsFile = "SalesResults.txt"

const (
	title     = "Sales Results"
	separator = "============="
)

// Format renders the fixed-layout report block. The total is shown with
// thousands separators and two decimals, elapsed time in seconds with six.
func Format(total float64, elapsed time.Duration) string {
	var sb strings.Builder

	sb.WriteString(title + "\n")
	sb.WriteString(separator + "\n")
	sb.WriteString(fmt.Sprintf("Total cost: $%s\n", Money(total)))
	sb.WriteString(fmt.Sprintf("Elapsed time: %.6f seconds\n", elapsed.Seconds()))

	return sb.String()
}

// Money formats an amount as 1,234,567.89. The amount is rounded to the
// nearest cent from its exact binary value, ties to even, and the integer
// part may exceed the int64 range.
func Money(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, cents, _ := strings.Cut(s, ".")

	digits, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		// Inf or NaN
		return sign + s
	}
	return sign + humanize.BigComma(digits) + "." + cents
}

// Write stores the report at path, truncating any existing file.
func Write(report string, path string) error {
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("unable to write results: %w", err)
	}
	return nil
}

// Emit prints the report to w followed by a blank line, then writes the same
// block to path.
func Emit(w io.Writer, report string, path string) error {
	if _, err := fmt.Fprintln(w, report); err != nil {
		return fmt.Errorf("unable to print results: %w", err)
	}
	return Write(report, path)
}
