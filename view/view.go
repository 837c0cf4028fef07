// Package view renders the editor page from embedded templates.
package view

import (
	"embed"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/diewo77/invoice-studio/i18n"
	"github.com/diewo77/invoice-studio/internal/currency"
)

//go:embed templates/*.html
var files embed.FS

var (
	parseOnce sync.Once
	base      *template.Template
	parseErr  error

	langResolver = func(_ *http.Request) string { return i18n.Default }
)

// SetLangResolver allows the host app to provide the request language (e.g., from middleware context).
func SetLangResolver(f func(*http.Request) string) {
	if f != nil {
		langResolver = f
	}
}

// Funcs returns the func map bound to the request language.
func Funcs(r *http.Request) template.FuncMap {
	lang := langResolver(r)
	return template.FuncMap{
		"t":    func(code string) string { return i18n.T(lang, code) },
		"lang": func() string { return lang },
		"money": func(code string, v float64) string {
			return currency.FormatAmount(currency.Symbol(code), v)
		},
		"year": func() int { return time.Now().Year() },
	}
}

func parse(r *http.Request) {
	// funcs are rebound per request on a clone
	base, parseErr = template.New("").Funcs(Funcs(r)).ParseFS(files, "templates/*.html")
}

// Render executes the named embedded template with request-bound funcs.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	parseOnce.Do(func() { parse(r) })
	if parseErr != nil {
		return parseErr
	}
	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["Year"]; !exists {
		data["Year"] = time.Now().Year()
	}
	t, err := base.Clone()
	if err != nil {
		return err
	}
	t.Funcs(Funcs(r))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, name, data)
}
