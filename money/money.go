// Package money renders whole-rupee amounts for display. All arithmetic in
// the cart and pricing packages stays on int64 rupees; formatting happens
// only at the response boundary.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount as an INR string with digit grouping and no
// fraction digits, e.g. Format(5000) == "₹5,000".
func Format(amount int64) string {
	return printer.Sprintf("₹%v", number.Decimal(amount))
}
