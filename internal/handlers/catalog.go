package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/invoice-studio/httpx"
	"github.com/diewo77/invoice-studio/internal/currency"
	"github.com/diewo77/invoice-studio/internal/design"
	"github.com/diewo77/invoice-studio/internal/services"
)

type DesignHandler struct {
	session *services.Session
}

func NewDesignHandler(session *services.Session) *DesignHandler {
	return &DesignHandler{session: session}
}

// List returns the catalog in display order with the active id.
func (h *DesignHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"designs": design.Catalog(),
		"active":  h.session.Snapshot().Design.ID,
	})
}

func (h *DesignHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	inv, err := h.session.SelectDesign(id)
	if errors.Is(err, services.ErrUnknownDesign) {
		httpx.JSONError(w, http.StatusNotFound, "unknown_design", id)
		return
	}
	httpx.JSON(w, http.StatusOK, invoiceResponse{Invoice: inv})
}

// Currencies lists the supported currency codes and symbols.
func Currencies(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, currency.All())
}
