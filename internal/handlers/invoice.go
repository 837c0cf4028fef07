package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/diewo77/invoice-studio/httpx"
	"github.com/diewo77/invoice-studio/internal/ledger"
	"github.com/diewo77/invoice-studio/internal/services"
	"github.com/diewo77/invoice-studio/validation"
)

// invoiceResponse is returned by every endpoint that reads or mutates the invoice.
type invoiceResponse struct {
	Invoice    ledger.Invoice        `json:"invoice"`
	Violations validation.Violations `json:"violations,omitempty"`
}

// numericInput accepts a JSON string or number so form fields can be posted verbatim.
type numericInput string

func (n *numericInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = numericInput(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("expected number or string: %w", err)
	}
	*n = numericInput(num.String())
	return nil
}

type valueRequest struct {
	Value numericInput `json:"value"`
}

// invoicePatch carries the header fields of the editor form; nil fields are left alone.
type invoicePatch struct {
	Number   *string       `json:"invoice_number"`
	Date     *string       `json:"date"`
	DueDate  *string       `json:"due_date"`
	From     *ledger.Party `json:"from"`
	To       *ledger.Party `json:"to"`
	Currency *string       `json:"currency"`
	Notes    *string       `json:"notes"`
}

type InvoiceHandler struct {
	session *services.Session
}

func NewInvoiceHandler(session *services.Session) *InvoiceHandler {
	return &InvoiceHandler{session: session}
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, invoiceResponse{Invoice: h.session.Snapshot()})
}

// Update applies the header fields present in the body.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p invoicePatch
	if err := httpx.Decode(r, &p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	inv, _ := h.session.Apply(func(l *ledger.Ledger) error {
		cur := l.Snapshot()
		if p.Number != nil {
			l.SetNumber(*p.Number)
		}
		if p.Date != nil || p.DueDate != nil {
			date, due := cur.Date, cur.DueDate
			if p.Date != nil {
				date = *p.Date
			}
			if p.DueDate != nil {
				due = *p.DueDate
			}
			l.SetDates(date, due)
		}
		if p.From != nil {
			l.SetFrom(*p.From)
		}
		if p.To != nil {
			l.SetTo(*p.To)
		}
		if p.Currency != nil {
			l.SetCurrency(*p.Currency)
		}
		if p.Notes != nil {
			l.SetNotes(*p.Notes)
		}
		return nil
	})
	v := validation.Violations{}
	validation.Required("invoice_number", inv.Number, v)
	httpx.JSON(w, http.StatusOK, invoiceResponse{Invoice: inv, Violations: nonEmpty(v)})
}

// SetTax sets the tax percentage. Rates outside 0-100 are accepted and flagged.
func (h *InvoiceHandler) SetTax(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	v := validation.Violations{}
	rate := validation.Numeric("tax_rate", string(req.Value), v)
	if v.Empty() {
		validation.RangeFloat("tax_rate", rate, 0, 100, v)
	}
	inv, _ := h.session.Apply(func(l *ledger.Ledger) error {
		l.SetTaxRate(rate)
		return nil
	})
	httpx.JSON(w, http.StatusOK, invoiceResponse{Invoice: inv, Violations: nonEmpty(v)})
}

func (h *InvoiceHandler) SetAdvance(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	v := validation.Violations{}
	paid := validation.Numeric("advance_paid", string(req.Value), v)
	inv, _ := h.session.Apply(func(l *ledger.Ledger) error {
		l.SetAdvancePaid(paid)
		return nil
	})
	httpx.JSON(w, http.StatusOK, invoiceResponse{Invoice: inv, Violations: nonEmpty(v)})
}

func nonEmpty(v validation.Violations) validation.Violations {
	if v.Empty() {
		return nil
	}
	return v
}

// writeLedgerError maps ledger errors onto API error codes.
func writeLedgerError(w http.ResponseWriter, err error) {
	var ie *ledger.IndexError
	if errors.As(err, &ie) {
		httpx.JSONError(w, http.StatusNotFound, "index_out_of_range", map[string]int{"index": ie.Index, "len": ie.Len})
		return
	}
	httpx.JSONError(w, http.StatusInternalServerError, "internal_error", err.Error())
}
