package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diewo77/invoice-studio/httpx"
	"github.com/diewo77/invoice-studio/internal/ledger"
	"github.com/diewo77/invoice-studio/internal/services"
	"github.com/diewo77/invoice-studio/validation"
)

type itemUpdateRequest struct {
	Field string       `json:"field"`
	Value numericInput `json:"value"`
}

type ItemHandler struct {
	session *services.Session
}

func NewItemHandler(session *services.Session) *ItemHandler {
	return &ItemHandler{session: session}
}

// Add appends a blank item (quantity 1).
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	inv, _ := h.session.Apply(func(l *ledger.Ledger) error {
		l.AddItem()
		return nil
	})
	httpx.JSON(w, http.StatusCreated, invoiceResponse{Invoice: inv})
}

// Update edits one field of the item at {index}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}
	var req itemUpdateRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	v := validation.Violations{}
	var m ledger.ItemMutation
	switch req.Field {
	case "description":
		m = ledger.SetDescription{Value: string(req.Value)}
	case "quantity":
		m = ledger.SetQuantity{Value: validation.Numeric("quantity", string(req.Value), v)}
	case "rate":
		m = ledger.SetRate{Value: validation.Numeric("rate", string(req.Value), v)}
	default:
		httpx.JSONError(w, http.StatusBadRequest, "unknown_field", req.Field)
		return
	}
	inv, err := h.session.Apply(func(l *ledger.Ledger) error {
		return l.UpdateItem(index, m)
	})
	var ne *ledger.InvalidNumericError
	if errors.As(err, &ne) {
		v[ne.Field] = "invalid_number"
		err = nil
	}
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoiceResponse{Invoice: inv, Violations: nonEmpty(v)})
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}
	inv, err := h.session.Apply(func(l *ledger.Ledger) error {
		return l.RemoveItem(index)
	})
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoiceResponse{Invoice: inv})
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_index", r.PathValue("index"))
		return 0, false
	}
	return index, true
}
