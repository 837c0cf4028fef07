package ledger

import (
	"strings"

	"github.com/diewo77/invoice-studio/internal/design"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Ledger owns one invoice. Every mutation that can affect totals recomputes
// them before returning. A Ledger is not safe for concurrent use.
type Ledger struct {
	inv Invoice
}

// New wraps inv and computes its totals.
func New(inv Invoice) *Ledger {
	l := &Ledger{inv: inv.clone()}
	l.inv.TaxRate = finite(l.inv.TaxRate)
	l.inv.AdvancePaid = finite(l.inv.AdvancePaid)
	if l.inv.Items == nil {
		l.inv.Items = []LineItem{}
	}
	l.recomputeTotals()
	return l
}

// Snapshot returns a deep copy of the current invoice.
func (l *Ledger) Snapshot() Invoice {
	return l.inv.clone()
}

// Len returns the number of line items.
func (l *Ledger) Len() int {
	return len(l.inv.Items)
}

// AddItem appends a blank item with quantity 1 and returns its index.
func (l *Ledger) AddItem() int {
	l.inv.Items = append(l.inv.Items, LineItem{Quantity: 1})
	l.recomputeTotals()
	return len(l.inv.Items) - 1
}

// RemoveItem deletes the item at index, keeping the order of the others.
func (l *Ledger) RemoveItem(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.inv.Items = append(l.inv.Items[:index], l.inv.Items[index+1:]...)
	l.recomputeTotals()
	return nil
}

// UpdateItem applies m to the item at index. A value that cannot be priced is
// stored as 0 and reported with an *InvalidNumericError; totals are still recomputed.
func (l *Ledger) UpdateItem(index int, m ItemMutation) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	err := m.apply(&l.inv.Items[index])
	l.recomputeTotals()
	return err
}

func (l *Ledger) SetTaxRate(v float64) {
	l.inv.TaxRate = finite(v)
	l.recomputeTotals()
}

func (l *Ledger) SetAdvancePaid(v float64) {
	l.inv.AdvancePaid = finite(v)
	l.recomputeTotals()
}

// SelectDesign swaps the active design. Totals are unaffected.
func (l *Ledger) SelectDesign(d design.Design) {
	l.inv.Design = d
}

func (l *Ledger) SetNumber(number string) {
	l.inv.Number = strings.TrimSpace(number)
}

func (l *Ledger) SetDates(date, dueDate string) {
	l.inv.Date = date
	l.inv.DueDate = dueDate
}

func (l *Ledger) SetFrom(p Party) { l.inv.From = p }

func (l *Ledger) SetTo(p Party) { l.inv.To = p }

// SetCurrency stores the code as given; unknown codes are allowed and render with the default symbol.
func (l *Ledger) SetCurrency(code string) {
	l.inv.Currency = strings.ToUpper(strings.TrimSpace(code))
}

func (l *Ledger) SetNotes(notes string) { l.inv.Notes = notes }

// Subtotal is the sum of item amounts.
func (l *Ledger) Subtotal() float64 {
	return subtotal(l.inv.Items).InexactFloat64()
}

func (l *Ledger) checkIndex(index int) error {
	if index < 0 || index >= len(l.inv.Items) {
		return &IndexError{Index: index, Len: len(l.inv.Items)}
	}
	return nil
}

// recomputeTotals derives subtotal, then tax, then total, then balance.
func (l *Ledger) recomputeTotals() {
	sub := subtotal(l.inv.Items)
	tax := sub.Mul(decimal.NewFromFloat(l.inv.TaxRate)).Div(hundred)
	total := sub.Add(tax)
	balance := total.Sub(decimal.NewFromFloat(l.inv.AdvancePaid))

	l.inv.TaxAmount = tax.InexactFloat64()
	l.inv.Total = total.InexactFloat64()
	l.inv.BalanceRemaining = balance.InexactFloat64()
}

func subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(finite(it.Amount)))
	}
	return sum
}
