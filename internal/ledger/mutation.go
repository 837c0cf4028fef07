package ledger

// ItemMutation changes one field of a line item.
// The set of mutations is closed: SetDescription, SetQuantity and SetRate.
type ItemMutation interface {
	apply(item *LineItem) error
}

type SetDescription struct{ Value string }

type SetQuantity struct{ Value float64 }

type SetRate struct{ Value float64 }

// Description changes never touch Amount.
func (m SetDescription) apply(item *LineItem) error {
	item.Description = m.Value
	return nil
}

// A quantity whose amount would overflow is stored as 0, like any other
// non-numeric input, so Amount always equals Quantity*Rate.
func (m SetQuantity) apply(item *LineItem) error {
	item.Quantity = finite(m.Value)
	if !item.reprice() {
		item.Quantity, item.Amount = 0, 0
		return &InvalidNumericError{Field: "quantity", Input: plainNumber(m.Value)}
	}
	return nil
}

func (m SetRate) apply(item *LineItem) error {
	item.Rate = finite(m.Value)
	if !item.reprice() {
		item.Rate, item.Amount = 0, 0
		return &InvalidNumericError{Field: "rate", Input: plainNumber(m.Value)}
	}
	return nil
}

// reprice sets Amount to Quantity*Rate and reports whether the product is finite.
func (it *LineItem) reprice() bool {
	it.Amount = it.Quantity * it.Rate
	return isFinite(it.Amount)
}
