// Package currency maps currency codes to display symbols.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is used for codes missing from the table.
const DefaultSymbol = "$"

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var table = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
}

// All returns the table in display order.
func All() []Currency {
	out := make([]Currency, len(table))
	copy(out, table)
	return out
}

// Lookup finds a currency by code (case-insensitive).
func Lookup(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range table {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Symbol returns the symbol for code, or DefaultSymbol when the code is unknown.
func Symbol(code string) string {
	if c, ok := Lookup(code); ok {
		return c.Symbol
	}
	return DefaultSymbol
}

// FormatAmount renders v with exactly two decimals, prefixed by symbol.
func FormatAmount(symbol string, v float64) string {
	return symbol + decimal.NewFromFloat(v).StringFixed(2)
}
