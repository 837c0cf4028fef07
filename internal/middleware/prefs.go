package middleware

import (
	"context"
	"net/http"

	"github.com/diewo77/invoice-studio/i18n"
)

type ctxKey string

const ctxLang ctxKey = "pref_lang"

// Prefs resolves the editor language (query > cookie > Accept-Language > def)
// and stores it in the request context. A query-provided language is
// persisted in a cookie for ~30 days.
func Prefs(def string) func(http.Handler) http.Handler {
	if !i18n.Supported(def) {
		def = i18n.Default
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if c, err := r.Cookie("lang"); err == nil && i18n.Supported(c.Value) {
				lang = c.Value
			}
			if ql := r.URL.Query().Get("lang"); i18n.Supported(ql) {
				lang = ql
				http.SetCookie(w, &http.Cookie{Name: "lang", Value: lang, Path: "/", MaxAge: 86400 * 30, HttpOnly: true})
			}
			if lang == "" && r.Header.Get("Accept-Language") != "" {
				lang = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
			}
			if lang == "" {
				lang = def
			}
			ctx := context.WithValue(r.Context(), ctxLang, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LangFrom returns language preference from context or fallback.
func LangFrom(r *http.Request) string {
	if r == nil {
		return i18n.Default
	}
	if v, ok := r.Context().Value(ctxLang).(string); ok && v != "" {
		return v
	}
	return i18n.Default
}
