package main

import (
	"net/http"

	"github.com/diewo77/invoice-studio/internal/config"
	"github.com/diewo77/invoice-studio/internal/currency"
	"github.com/diewo77/invoice-studio/internal/design"
	"github.com/diewo77/invoice-studio/internal/handlers"
	"github.com/diewo77/invoice-studio/internal/ledger"
	"github.com/diewo77/invoice-studio/internal/middleware"
	"github.com/diewo77/invoice-studio/internal/notify"
	"github.com/diewo77/invoice-studio/internal/services"
	"github.com/diewo77/invoice-studio/view"
	"gorm.io/gorm"
)

// App is the editor application: one session, one ledger.
type App struct {
	mux      *http.ServeMux
	handler  http.Handler
	session  *services.Session
	exports  *services.ExportService
	notifier *notify.Center
}

// NewApp creates the application with all routes configured. db may be nil.
func NewApp(cfg *config.Config, db *gorm.DB, inv ledger.Invoice) *App {
	notifier := notify.New(cfg.App.NotificationBuffer)
	session := services.NewSession(inv, notifier, cfg.App.Lang)
	app := &App{
		mux:      http.NewServeMux(),
		session:  session,
		exports:  services.NewExportService(db, session, notifier, cfg.App.OutputDir),
		notifier: notifier,
	}
	view.SetLangResolver(middleware.LangFrom)
	app.setupRoutes()
	app.handler = middleware.Prefs(cfg.App.Lang)(app.mux)
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *App) setupRoutes() {
	vh := handlers.NewInvoiceHandler(a.session)
	ih := handlers.NewItemHandler(a.session)
	dh := handlers.NewDesignHandler(a.session)
	eh := handlers.NewExportHandler(a.exports, a.notifier)

	a.mux.HandleFunc("GET /{$}", a.editorPage)

	// Invoice
	a.mux.HandleFunc("GET /api/invoice", vh.Get)
	a.mux.HandleFunc("POST /api/invoice", vh.Update)
	a.mux.HandleFunc("POST /api/invoice/tax", vh.SetTax)
	a.mux.HandleFunc("POST /api/invoice/advance", vh.SetAdvance)
	a.mux.HandleFunc("GET /api/invoice/ops", eh.Ops)

	// Items
	a.mux.HandleFunc("POST /api/items", ih.Add)
	a.mux.HandleFunc("POST /api/items/{index}", ih.Update)
	a.mux.HandleFunc("POST /api/items/{index}/delete", ih.Delete)

	// Catalogs
	a.mux.HandleFunc("GET /api/designs", dh.List)
	a.mux.HandleFunc("POST /api/designs/{id}/select", dh.Select)
	a.mux.HandleFunc("GET /api/currencies", handlers.Currencies)

	// Export
	a.mux.HandleFunc("POST /api/export", eh.Export)
	a.mux.HandleFunc("GET /api/exports", eh.History)
	a.mux.HandleFunc("GET /api/notifications", eh.Notifications)
}

func (a *App) editorPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Invoice":    a.session.Snapshot(),
		"Designs":    design.Catalog(),
		"Currencies": currency.All(),
	}
	if err := view.Render(w, r, "editor.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
	}
}
