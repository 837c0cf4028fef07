// Package ledger keeps an invoice and its derived totals consistent.
package ledger

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/diewo77/invoice-studio/internal/design"
)

// DateLayout is the date format used for invoice and due dates.
const DateLayout = "2006-01-02"

// DefaultPaymentTerm is the gap between the invoice date and its due date.
const DefaultPaymentTerm = 14 * 24 * time.Hour

// LineItem is one billed line. Amount is a cache of Quantity*Rate.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Party is the sender or recipient of an invoice.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Invoice is the aggregate edited by a Ledger.
// TaxAmount, Total and BalanceRemaining are derived and only written by the ledger.
type Invoice struct {
	Number      string        `json:"invoice_number"`
	Date        string        `json:"date"`
	DueDate     string        `json:"due_date"`
	From        Party         `json:"from"`
	To          Party         `json:"to"`
	Items       []LineItem    `json:"items"`
	Currency    string        `json:"currency"`
	TaxRate     float64       `json:"tax_rate"`
	Notes       string        `json:"notes"`
	AdvancePaid float64       `json:"advance_paid"`
	Design      design.Design `json:"design"`

	TaxAmount        float64 `json:"tax_amount"`
	Total            float64 `json:"total"`
	BalanceRemaining float64 `json:"balance_remaining"`
}

// NewInvoice returns a blank invoice dated now.
// Format of the number: INV-YYYY-NNN (e.g., INV-2025-042).
func NewInvoice(now time.Time, rnd *rand.Rand) Invoice {
	return Invoice{
		Number:   fmt.Sprintf("INV-%d-%03d", now.Year(), rnd.Intn(1000)),
		Date:     now.Format(DateLayout),
		DueDate:  now.Add(DefaultPaymentTerm).Format(DateLayout),
		Items:    []LineItem{},
		Currency: "USD",
		Design:   design.Default(),
	}
}

// clone returns a deep copy; the items slice is never shared.
func (inv Invoice) clone() Invoice {
	out := inv
	out.Items = make([]LineItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return out
}
