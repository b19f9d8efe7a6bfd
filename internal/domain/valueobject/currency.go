// Package valueobject contains domain value objects for the finapple backend.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
)

// Currency codes with a fixed conversion rate.
const (
	CurrencyUAH = "UAH"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Basis is the target currency a total is expressed in.
type Basis string

const (
	// BasisLocal expresses totals in the primary local currency (UAH).
	BasisLocal Basis = CurrencyUAH
	// BasisUSD expresses totals in US dollars.
	BasisUSD Basis = CurrencyUSD
)

// rate converts one unit of a source currency into a basis as mul/div.
type rate struct {
	mul decimal.Decimal
	div decimal.Decimal
}

func ratio(mul, div int64) rate {
	return rate{mul: decimal.NewFromInt(mul), div: decimal.NewFromInt(div)}
}

// rateTable holds the fixed conversion rates. There is no exchange-rate service.
var rateTable = map[Basis]map[string]rate{
	BasisLocal: {
		CurrencyUAH: ratio(1, 1),
		CurrencyUSD: ratio(41, 1),
		CurrencyEUR: ratio(44, 1),
	},
	BasisUSD: {
		CurrencyUAH: ratio(1, 41),
		CurrencyUSD: ratio(1, 1),
		CurrencyEUR: ratio(108, 100),
	},
}

var currencySymbols = map[string]string{
	"₴": CurrencyUAH,
	"$": CurrencyUSD,
	"€": CurrencyEUR,
}

// NormalizeCurrency returns the upper-case ISO code for a currency code or symbol.
// Unrecognised values are returned trimmed and upper-cased.
func NormalizeCurrency(currency string) string {
	c := strings.TrimSpace(currency)
	if code, ok := currencySymbols[c]; ok {
		return code
	}
	return strings.ToUpper(c)
}

// Convert expresses amount, held in the given currency, in the target basis.
// Unknown currencies pass through unconverted.
func Convert(amount decimal.Decimal, from string, basis Basis) decimal.Decimal {
	rates, ok := rateTable[basis]
	if !ok {
		return amount
	}
	r, ok := rates[NormalizeCurrency(from)]
	if !ok {
		return amount
	}
	return amount.Mul(r.mul).Div(r.div)
}

// TotalBalance sums every wallet balance converted to the given basis.
func TotalBalance(wallets []entity.Wallet, basis Basis) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(Convert(w.Balance, w.Currency, basis))
	}
	return total
}

// HoldingsIn sums the balances of wallets held in the given currency, unconverted.
func HoldingsIn(wallets []entity.Wallet, currency string) decimal.Decimal {
	code := NormalizeCurrency(currency)
	total := decimal.Zero
	for _, w := range wallets {
		if NormalizeCurrency(w.Currency) == code {
			total = total.Add(w.Balance)
		}
	}
	return total
}
