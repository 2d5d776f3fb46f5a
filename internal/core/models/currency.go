package models

const DefaultCurrencySymbol = "€"

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"UAH": "₴",
	"BTC": "₿",
}

// CurrencySymbol maps a currency code to its display symbol. Unknown codes,
// including the empty string, fall back to the euro sign.
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return DefaultCurrencySymbol
}
