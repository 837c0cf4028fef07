package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/diewo77/invoice-studio/httpx"
	"github.com/diewo77/invoice-studio/internal/notify"
	"github.com/diewo77/invoice-studio/internal/services"
)

type ExportHandler struct {
	exports  *services.ExportService
	notifier *notify.Center
}

func NewExportHandler(exports *services.ExportService, notifier *notify.Center) *ExportHandler {
	return &ExportHandler{exports: exports, notifier: notifier}
}

// Ops returns the draw operations for the current invoice.
func (h *ExportHandler) Ops(w http.ResponseWriter, r *http.Request) {
	body, err := h.exports.Render().Encode()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "encode_error", err.Error())
		return
	}
	httpx.RawJSON(w, http.StatusOK, body)
}

// Export renders, writes and streams the PDF.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	res, err := h.exports.Export(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "export_failed", err.Error())
		return
	}
	w.Header().Set("X-Export-Ref", res.Export.Ref)
	httpx.Attachment(w, "application/pdf", res.Export.Filename, res.Data)
}

// History lists recent export attempts (?limit=N).
func (h *ExportHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	list, err := h.exports.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("[EXPORT] history: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "history_unavailable", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

// Notifications drains pending user-facing messages.
func (h *ExportHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.notifier.Drain())
}
