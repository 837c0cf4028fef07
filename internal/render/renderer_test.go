package render

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/diewo77/invoice-studio/internal/design"
	"github.com/diewo77/invoice-studio/internal/ledger"
)

func sampleInvoice(t *testing.T, designID string) ledger.Invoice {
	t.Helper()
	d, ok := design.Lookup(designID)
	if !ok {
		t.Fatalf("unknown design %s", designID)
	}
	l := ledger.New(ledger.Invoice{
		Number:   "INV-2025-007",
		Date:     "2025-03-01",
		DueDate:  "2025-03-15",
		From:     ledger.Party{Name: "Studio", Email: "hi@studio.test", Address: "1 Main St"},
		To:       ledger.Party{Name: "Client", Email: "ap@client.test", Address: "2 High St"},
		Currency: "EUR",
		Design:   d,
	})
	for _, it := range []struct {
		desc      string
		qty, rate float64
	}{{"Design work", 10, 50}, {"Hosting", 1, 20}, {"Support", 2, 15}} {
		i := l.AddItem()
		_ = l.UpdateItem(i, ledger.SetDescription{Value: it.desc})
		_ = l.UpdateItem(i, ledger.SetQuantity{Value: it.qty})
		_ = l.UpdateItem(i, ledger.SetRate{Value: it.rate})
	}
	l.SetTaxRate(10)
	l.SetAdvancePaid(100)
	return l.Snapshot()
}

func texts(doc Document) []Text {
	var out []Text
	for _, op := range doc.Ops {
		if tx, ok := op.(Text); ok {
			out = append(out, tx)
		}
	}
	return out
}

func findText(doc Document, s string) (Text, bool) {
	for _, tx := range texts(doc) {
		if tx.Text == s {
			return tx, true
		}
	}
	return Text{}, false
}

func count[T Op](doc Document) int {
	n := 0
	for _, op := range doc.Ops {
		if _, ok := op.(T); ok {
			n++
		}
	}
	return n
}

func TestRenderDeterministic(t *testing.T) {
	r := New("en")
	for _, d := range design.Catalog() {
		t.Run(d.ID, func(t *testing.T) {
			inv := sampleInvoice(t, d.ID)
			inv.Notes = "Payment within 14 days."
			a, err := r.Render(inv).Encode()
			if err != nil {
				t.Fatal(err)
			}
			b, err := r.Render(inv).Encode()
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(a, b) {
				t.Fatalf("renders differ")
			}
		})
	}
}

func TestElegantBackground(t *testing.T) {
	r := New("en")
	d, _ := design.Lookup("rose-elegance")
	doc := r.Render(sampleInvoice(t, d.ID))
	want := []Op{
		SetFillColor{Color: d.Secondary},
		FillRect{X: 0, Y: 0, W: PageWidth, H: PageHeight},
		SetFillColor{Color: d.Primary},
		FillRect{X: 0, Y: 0, W: 8, H: PageHeight},
	}
	if !reflect.DeepEqual(doc.Ops[:4], want) {
		t.Fatalf("unexpected elegant prefix: %#v", doc.Ops[:4])
	}
}

func TestOnlyElegantFillsWholePage(t *testing.T) {
	r := New("en")
	for _, d := range design.Catalog() {
		doc := r.Render(sampleInvoice(t, d.ID))
		full := false
		for _, op := range doc.Ops {
			if op == (FillRect{X: 0, Y: 0, W: PageWidth, H: PageHeight}) {
				full = true
			}
		}
		if full != (d.Layout == design.LayoutElegant) {
			t.Errorf("%s (%s): full page fill = %v", d.ID, d.Layout, full)
		}
	}
}

func TestBandLayouts(t *testing.T) {
	r := New("en")
	for _, id := range []string{"modern-minimal", "creative-purple"} {
		d, _ := design.Lookup(id)
		doc := r.Render(sampleInvoice(t, id))
		if doc.Ops[0] != (SetFillColor{Color: d.Primary}) || doc.Ops[1] != (FillRect{X: 0, Y: 0, W: PageWidth, H: 40}) {
			t.Fatalf("%s: expected header band, got %#v", id, doc.Ops[:2])
		}
		if doc.Ops[3] != (SetTextColor{Color: design.White}) {
			t.Fatalf("%s: expected white title, got %#v", id, doc.Ops[3])
		}
		title, ok := findText(doc, "INVOICE")
		if !ok || title.Align != AlignCenter || title.X != 105 {
			t.Fatalf("%s: unexpected title %#v", id, title)
		}
	}
}

func TestClassicHasNoBackground(t *testing.T) {
	d, _ := design.Lookup("corporate-blue")
	doc := New("en").Render(sampleInvoice(t, d.ID))
	if _, ok := doc.Ops[0].(SetFontSize); !ok {
		t.Fatalf("classic should start with the title, got %#v", doc.Ops[0])
	}
	if doc.Ops[1] != (SetTextColor{Color: d.Primary}) {
		t.Fatalf("classic title should be primary, got %#v", doc.Ops[1])
	}
	if doc.Ops[3] != (SetTextColor{Color: design.Black}) {
		t.Fatalf("classic body should be black, got %#v", doc.Ops[3])
	}
}

func TestRowStriping(t *testing.T) {
	d, _ := design.Lookup("corporate-blue")
	doc := New("en").Render(sampleInvoice(t, d.ID))
	var stripes []design.Color
	for i, op := range doc.Ops {
		if fr, ok := op.(FillRect); ok && fr.X == 20 && fr.W == 170 && fr.Y > 130 {
			stripes = append(stripes, doc.Ops[i-1].(SetFillColor).Color)
		}
	}
	want := []design.Color{design.White, d.Secondary, design.White}
	if !reflect.DeepEqual(stripes, want) {
		t.Fatalf("stripes = %v, want %v", stripes, want)
	}
}

func TestMinimalLayout(t *testing.T) {
	d, _ := design.Lookup("eco-green")
	doc := New("en").Render(sampleInvoice(t, d.ID))
	// table header band and balance band only
	if n := count[FillRect](doc); n != 2 {
		t.Fatalf("expected 2 fills for minimal got %d", n)
	}
	if doc.Ops[3] != (SetTextColor{Color: d.Primary}) {
		t.Fatalf("minimal body should be primary, got %#v", doc.Ops[3])
	}
}

func TestItemRows(t *testing.T) {
	doc := New("en").Render(sampleInvoice(t, "corporate-blue"))
	desc, ok := findText(doc, "Design work")
	if !ok || desc.Y != 140 || desc.X != 25 {
		t.Fatalf("unexpected first row %#v", desc)
	}
	if _, ok := findText(doc, "€50"); !ok {
		t.Fatalf("expected rate with currency symbol")
	}
	if _, ok := findText(doc, "€500"); !ok {
		t.Fatalf("expected amount with currency symbol")
	}
	support, _ := findText(doc, "Support")
	if support.Y != 160 {
		t.Fatalf("expected uniform row height, third row at %v", support.Y)
	}
	for _, s := range []string{"Tax (10%):", "€55.00", "€605.00", "€100.00", "€505.00", "Balance Due:"} {
		if _, ok := findText(doc, s); !ok {
			t.Errorf("missing %q", s)
		}
	}
	balance, _ := findText(doc, "Balance Due:")
	if balance.Y != 210 {
		t.Fatalf("balance row at %v, want 210", balance.Y)
	}
}

func TestEmptyInvoice(t *testing.T) {
	inv := ledger.New(ledger.Invoice{Number: "1", Design: design.Default()}).Snapshot()
	doc := New("en").Render(inv)
	for _, tx := range texts(doc) {
		if tx.X == colQty && tx.Text != "Qty" {
			t.Fatalf("unexpected item row %#v", tx)
		}
	}
	for _, s := range []string{"Total:", "$0.00"} {
		if _, ok := findText(doc, s); !ok {
			t.Errorf("missing %q", s)
		}
	}
}

func TestUnknownCurrency(t *testing.T) {
	inv := sampleInvoice(t, "corporate-blue")
	inv.Currency = "XXX"
	doc := New("en").Render(inv)
	if _, ok := findText(doc, "$500"); !ok {
		t.Fatalf("expected default $ symbol")
	}
}

func TestNotes(t *testing.T) {
	inv := sampleInvoice(t, "corporate-blue")
	if count[WrapText](New("en").Render(inv)) != 0 {
		t.Fatalf("no notes expected")
	}
	inv.Notes = "Thank you for your business."
	doc := New("en").Render(inv)
	label, ok := findText(doc, "Notes:")
	if !ok || label.Y != 250 {
		t.Fatalf("unexpected notes label %#v", label)
	}
	var wrap WrapText
	for _, op := range doc.Ops {
		if w, ok := op.(WrapText); ok {
			wrap = w
		}
	}
	if wrap.Text != inv.Notes || wrap.Width != 170 || wrap.Y != 260 {
		t.Fatalf("unexpected wrap op %#v", wrap)
	}
}

func TestSaveIsLast(t *testing.T) {
	doc := New("en").Render(sampleInvoice(t, "tech-slate"))
	last := doc.Ops[len(doc.Ops)-1]
	if last != (Save{Name: "invoice-INV-2025-007.pdf"}) {
		t.Fatalf("unexpected last op %#v", last)
	}
	if doc.Filename() != "invoice-INV-2025-007.pdf" {
		t.Fatalf("unexpected filename %s", doc.Filename())
	}
}

func TestFrenchLabels(t *testing.T) {
	doc := New("fr").Render(sampleInvoice(t, "tech-slate"))
	if _, ok := findText(doc, "FACTURE"); !ok {
		t.Fatalf("expected french title")
	}
	if New("xx").lang != "en" {
		t.Fatalf("unsupported language should fall back to en")
	}
}

func TestEncodeShape(t *testing.T) {
	doc := Document{Width: 1, Height: 2, FontFamily: "Inter", Ops: []Op{SetFontSize{Size: 9}, Save{Name: "a.pdf"}}}
	b, err := doc.Encode()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"width":1,"height":2,"font_family":"Inter","ops":[{"op":"set_font_size","args":{"size":9}},{"op":"save","args":{"name":"a.pdf"}}]}`
	if string(b) != want {
		t.Fatalf("encode = %s", b)
	}
}

func TestItemAmountRoundedToCents(t *testing.T) {
	l := ledger.New(ledger.Invoice{Number: "INV-2025-010", Currency: "USD", Design: design.Default()})
	i := l.AddItem()
	_ = l.UpdateItem(i, ledger.SetQuantity{Value: 3})
	_ = l.UpdateItem(i, ledger.SetRate{Value: 0.1})
	doc := New("en").Render(l.Snapshot())
	if _, ok := findText(doc, "$0.3"); !ok {
		t.Fatalf("expected amount rounded to cents")
	}
	for _, tx := range texts(doc) {
		if tx.X == colAmount && strings.Contains(tx.Text, "0000") {
			t.Fatalf("unrounded amount %q", tx.Text)
		}
	}
}

func TestCents(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.30000000000000004, 0.3},
		{12.345, 12.35},
		{500, 500},
		{math.Inf(1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := cents(tt.in); got != tt.want {
			t.Errorf("cents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
