// Package i18n holds the translated labels used on the editor page and in rendered documents.
package i18n

import "strings"

// Default is the fallback language.
const Default = "en"

var translations = map[string]map[string]string{
	"en": {
		"invoice":        "INVOICE",
		"invoice_number": "Invoice Number",
		"date":           "Date",
		"due_date":       "Due Date",
		"from":           "From",
		"to":             "To",
		"description":    "Description",
		"qty":            "Qty",
		"rate":           "Rate",
		"amount":         "Amount",
		"tax":            "Tax",
		"total":          "Total",
		"advance_paid":   "Advance Paid",
		"balance_due":    "Balance Due",
		"notes":          "Notes",
		"required":       "Required",
		"invalid_number": "Not a number, treated as 0",
		"out_of_range":   "Out of range",
		"design_applied": "Applied %s design",
		"export_ok":      "Invoice PDF generated successfully!",
		"export_failed":  "Could not generate the invoice PDF",
	},
	"fr": {
		"invoice":        "FACTURE",
		"invoice_number": "Numéro de facture",
		"date":           "Date",
		"due_date":       "Échéance",
		"from":           "De",
		"to":             "À",
		"description":    "Description",
		"qty":            "Qté",
		"rate":           "Prix",
		"amount":         "Montant",
		"tax":            "TVA",
		"total":          "Total",
		"advance_paid":   "Acompte versé",
		"balance_due":    "Reste à payer",
		"notes":          "Notes",
		"required":       "Requis",
		"invalid_number": "Nombre invalide, remplacé par 0",
		"out_of_range":   "Hors limites",
		"design_applied": "Modèle %s appliqué",
		"export_ok":      "Facture PDF générée avec succès !",
		"export_failed":  "Impossible de générer la facture PDF",
	},
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// DetectLanguage picks the first supported language of an Accept-Language header.
func DetectLanguage(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		base := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if Supported(base) {
			return base
		}
	}
	return Default
}

// T translates code. Unknown languages fall back to Default; unknown codes return the code.
func T(lang, code string) string {
	if m, ok := translations[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := translations[Default][code]; ok {
		return s
	}
	return code
}
