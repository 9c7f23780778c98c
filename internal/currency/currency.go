// Package currency maps currency codes to display symbols. This is a
// presentation convenience only: amounts are stored as plain numbers with
// no currency-aware precision rules.
package currency

import "fmt"

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"INR": "₹",
	"RUB": "₽",
	"BRL": "R$",
	"CAD": "CA$",
	"AUD": "A$",
	"CHF": "CHF ",
	"SEK": "kr ",
	"NOK": "kr ",
	"DKK": "kr ",
	"PLN": "zł ",
	"TRY": "₺",
	"MXN": "MX$",
}

// Symbol returns the display symbol for a currency code. Unknown codes
// fall back to a "<CODE> " prefix.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code + " "
}

// Format renders an amount with its currency symbol, e.g. "$12.50".
func Format(amount float64, code string) string {
	return fmt.Sprintf("%s%.2f", Symbol(code), amount)
}
