// Package currency is the static currency metadata table: it maps a currency
// code to its symbol, display precision and category. Lookups are pure and
// unknown codes fail loudly rather than defaulting, so data errors surface
// instead of being masked by downstream formatting.
package currency

import (
	"fmt"
	"sort"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
)

// Category classifies a currency for precision and presentation purposes.
type Category string

const (
	Standard       Category = "STANDARD"
	PreciousMetal  Category = "PRECIOUS_METAL"
	Cryptocurrency Category = "CRYPTOCURRENCY"
)

// Display precisions per category. Standard currencies default to 2 decimals
// with an explicit override list for 0-decimal codes; precious metals are
// gram-based (3 decimals); cryptocurrencies go down to satoshi level.
const (
	standardPrecision    = 2
	zeroDecimalPrecision = 0
	metalPrecision       = 3
	cryptoPrecision      = 8
)

// Currency describes one entry of the metadata table.
type Currency struct {
	Code      string   `json:"code"`
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Precision int      `json:"precision"`
	Category  Category `json:"category"`
}

type entry struct {
	symbol string
	name   string
}

var standardCurrencies = map[string]entry{
	"USD": {"$", "US Dollar"},
	"EUR": {"€", "Euro"},
	"GBP": {"£", "British Pound"},
	"JPY": {"¥", "Japanese Yen"},
	"CHF": {"CHF", "Swiss Franc"},
	"CAD": {"C$", "Canadian Dollar"},
	"AUD": {"A$", "Australian Dollar"},
	"NZD": {"NZ$", "New Zealand Dollar"},
	"CNY": {"¥", "Chinese Yuan"},
	"HKD": {"HK$", "Hong Kong Dollar"},
	"SGD": {"S$", "Singapore Dollar"},
	"INR": {"₹", "Indian Rupee"},
	"KRW": {"₩", "South Korean Won"},
	"IDR": {"Rp", "Indonesian Rupiah"},
	"VND": {"₫", "Vietnamese Dong"},
	"THB": {"฿", "Thai Baht"},
	"MYR": {"RM", "Malaysian Ringgit"},
	"PHP": {"₱", "Philippine Peso"},
	"RUB": {"₽", "Russian Ruble"},
	"TRY": {"₺", "Turkish Lira"},
	"BRL": {"R$", "Brazilian Real"},
	"MXN": {"Mex$", "Mexican Peso"},
	"CLP": {"CLP$", "Chilean Peso"},
	"ZAR": {"R", "South African Rand"},
	"SEK": {"kr", "Swedish Krona"},
	"NOK": {"kr", "Norwegian Krone"},
	"DKK": {"kr", "Danish Krone"},
	"ISK": {"kr", "Icelandic Krona"},
	"PLN": {"zł", "Polish Zloty"},
	"CZK": {"Kč", "Czech Koruna"},
	"HUF": {"Ft", "Hungarian Forint"},
	"AED": {"د.إ", "UAE Dirham"},
	"SAR": {"﷼", "Saudi Riyal"},
	"ILS": {"₪", "Israeli New Shekel"},
}

// Standard currencies whose minor unit is not in use: amounts are whole units.
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
	"IDR": true,
	"VND": true,
	"CLP": true,
	"ISK": true,
}

var metalCurrencies = map[string]entry{
	"XAU": {"Au", "Gold (gram)"},
	"XAG": {"Ag", "Silver (gram)"},
	"XPT": {"Pt", "Platinum (gram)"},
	"XPD": {"Pd", "Palladium (gram)"},
}

var cryptoCurrencies = map[string]entry{
	"BTC":  {"₿", "Bitcoin"},
	"ETH":  {"Ξ", "Ethereum"},
	"LTC":  {"Ł", "Litecoin"},
	"USDT": {"₮", "Tether"},
}

// Lookup resolves a currency code to its metadata. Unknown codes return an
// error wrapping apperrors.ErrUnknownCurrency.
func Lookup(code string) (Currency, error) {
	if e, ok := standardCurrencies[code]; ok {
		precision := standardPrecision
		if zeroDecimalCurrencies[code] {
			precision = zeroDecimalPrecision
		}
		return Currency{Code: code, Symbol: e.symbol, Name: e.name, Precision: precision, Category: Standard}, nil
	}
	if e, ok := metalCurrencies[code]; ok {
		return Currency{Code: code, Symbol: e.symbol, Name: e.name, Precision: metalPrecision, Category: PreciousMetal}, nil
	}
	if e, ok := cryptoCurrencies[code]; ok {
		return Currency{Code: code, Symbol: e.symbol, Name: e.name, Precision: cryptoPrecision, Category: Cryptocurrency}, nil
	}
	return Currency{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
}

// IsKnown reports whether a code is present in the metadata table.
func IsKnown(code string) bool {
	_, err := Lookup(code)
	return err == nil
}

// List returns all known currencies sorted by code.
func List() []Currency {
	codes := make([]string, 0, len(standardCurrencies)+len(metalCurrencies)+len(cryptoCurrencies))
	for code := range standardCurrencies {
		codes = append(codes, code)
	}
	for code := range metalCurrencies {
		codes = append(codes, code)
	}
	for code := range cryptoCurrencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	currencies := make([]Currency, 0, len(codes))
	for _, code := range codes {
		c, _ := Lookup(code)
		currencies = append(currencies, c)
	}
	return currencies
}
