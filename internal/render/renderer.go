// Package render turns an invoice and its design into a deterministic sequence of drawing ops
// for a single portrait page.
package render

import (
	"math"
	"strconv"

	"github.com/diewo77/invoice-studio/i18n"
	"github.com/diewo77/invoice-studio/internal/currency"
	"github.com/diewo77/invoice-studio/internal/design"
	"github.com/diewo77/invoice-studio/internal/ledger"
	"github.com/shopspring/decimal"
)

// Page geometry, in page units (A4 millimetres).
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	headerBandHeight = 40.0
	marginStripWidth = 8.0

	marginLeft   = 20.0
	tableWidth   = 170.0
	rowHeight    = 10.0
	bandHeight   = 8.0
	bandOffset   = 5.0 // bands start this far above the text baseline
	notesGap     = 40.0
	notesPadding = 10.0

	colDescription = 25.0
	colQty         = 100.0
	colRate        = 130.0
	colAmount      = 160.0
	colLabel       = 130.0
	colValue       = 160.0
	balanceWidth   = 60.0

	titleSize = 24.0
	bodySize  = 10.0
	labelSize = 12.0
	notesSize = 9.0
)

// Renderer produces documents with labels in one language.
type Renderer struct {
	lang string
}

// New returns a renderer for lang; unsupported languages use i18n.Default.
func New(lang string) *Renderer {
	if !i18n.Supported(lang) {
		lang = i18n.Default
	}
	return &Renderer{lang: lang}
}

func (r *Renderer) t(code string) string { return i18n.T(r.lang, code) }

// Render draws inv with its own design. The same invoice always yields the same ops.
func (r *Renderer) Render(inv ledger.Invoice) Document {
	d := inv.Design
	style := styleFor(d.Layout)
	sym := currency.Symbol(inv.Currency)

	var ops []Op
	emit := func(o ...Op) { ops = append(ops, o...) }

	emit(style.background(d)...)

	emit(
		SetFontSize{Size: titleSize},
		SetTextColor{Color: style.titleColor(d)},
		Text{X: PageWidth / 2, Y: 20, Text: r.t("invoice"), Align: AlignCenter},
		SetTextColor{Color: style.bodyColor(d)},
	)

	emit(
		SetFontSize{Size: bodySize},
		left(marginLeft, 40, r.t("invoice_number")+": "+inv.Number),
		left(marginLeft, 45, r.t("date")+": "+inv.Date),
		left(marginLeft, 50, r.t("due_date")+": "+inv.DueDate),
	)

	emit(r.party(d, r.t("from"), inv.From, 65)...)
	emit(r.party(d, r.t("to"), inv.To, 95)...)

	y := 130.0
	emit(
		SetFillColor{Color: d.Primary},
		SetTextColor{Color: design.White},
		FillRect{X: marginLeft, Y: y - bandOffset, W: tableWidth, H: bandHeight},
		left(colDescription, y, r.t("description")),
		left(colQty, y, r.t("qty")),
		left(colRate, y, r.t("rate")),
		left(colAmount, y, r.t("amount")),
		SetTextColor{Color: design.Black},
	)

	y += rowHeight
	for i, item := range inv.Items {
		if style.stripeRows {
			fill := design.White
			if i%2 == 1 {
				fill = d.Secondary
			}
			emit(
				SetFillColor{Color: fill},
				FillRect{X: marginLeft, Y: y - bandOffset, W: tableWidth, H: bandHeight},
			)
		}
		emit(
			left(colDescription, y, item.Description),
			left(colQty, y, plain(item.Quantity)),
			left(colRate, y, sym+plain(item.Rate)),
			left(colAmount, y, sym+plain(cents(item.Amount))),
		)
		y += rowHeight
	}

	y += rowHeight
	emit(r.totalLine(d, y, r.t("tax")+" ("+plain(inv.TaxRate)+"%):", currency.FormatAmount(sym, inv.TaxAmount))...)
	y += rowHeight
	emit(r.totalLine(d, y, r.t("total")+":", currency.FormatAmount(sym, inv.Total))...)
	y += rowHeight
	emit(r.totalLine(d, y, r.t("advance_paid")+":", currency.FormatAmount(sym, inv.AdvancePaid))...)
	y += rowHeight
	emit(
		SetFillColor{Color: d.Primary},
		FillRect{X: colLabel, Y: y - bandOffset, W: balanceWidth, H: bandHeight},
		SetTextColor{Color: design.White},
		left(colLabel, y, r.t("balance_due")+":"),
		left(colValue, y, currency.FormatAmount(sym, inv.BalanceRemaining)),
	)

	// Notes sit a fixed distance under the balance row; nothing checks the page bottom.
	if inv.Notes != "" {
		y += notesGap
		emit(
			SetTextColor{Color: d.Primary},
			left(marginLeft, y, r.t("notes")+":"),
			SetTextColor{Color: design.Black},
			SetFontSize{Size: notesSize},
			WrapText{X: marginLeft, Y: y + notesPadding, Width: tableWidth, Text: inv.Notes},
		)
	}

	emit(Save{Name: Filename(inv.Number)})

	return Document{Width: PageWidth, Height: PageHeight, FontFamily: d.FontFamily, Ops: ops}
}

// Filename is the artifact name for an invoice number.
func Filename(number string) string {
	return "invoice-" + number + ".pdf"
}

func (r *Renderer) party(d design.Design, label string, p ledger.Party, y float64) []Op {
	return []Op{
		SetFontSize{Size: labelSize},
		SetTextColor{Color: d.Primary},
		left(marginLeft, y, label+":"),
		SetTextColor{Color: design.Black},
		SetFontSize{Size: bodySize},
		left(marginLeft, y+5, p.Name),
		left(marginLeft, y+10, p.Email),
		left(marginLeft, y+15, p.Address),
	}
}

func (r *Renderer) totalLine(d design.Design, y float64, label, value string) []Op {
	return []Op{
		SetTextColor{Color: d.Primary},
		left(colLabel, y, label),
		SetTextColor{Color: design.Black},
		left(colValue, y, value),
	}
}

func left(x, y float64, s string) Text {
	return Text{X: x, Y: y, Text: s, Align: AlignLeft}
}

// cents rounds an item amount to two decimals; non-finite values show as 0.
func cents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// plain formats a number the shortest way that round-trips, without exponent.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
