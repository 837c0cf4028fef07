package pdf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/diewo77/invoice-studio/internal/design"
	"github.com/diewo77/invoice-studio/internal/ledger"
	"github.com/diewo77/invoice-studio/internal/render"
	"github.com/phpdave11/gofpdf"
)

func renderedDoc(t *testing.T) render.Document {
	t.Helper()
	d, _ := design.Lookup("luxury-gold")
	l := ledger.New(ledger.Invoice{Number: "INV-2025-001", Currency: "EUR", Design: d, Notes: "Paid by bank transfer within fourteen days of the invoice date, quoting the invoice number."})
	i := l.AddItem()
	_ = l.UpdateItem(i, ledger.SetDescription{Value: "Café consulting"})
	_ = l.UpdateItem(i, ledger.SetRate{Value: 120})
	return render.New("en").Render(l.Snapshot())
}

func TestBytes(t *testing.T) {
	data, err := Bytes(renderedDoc(t))
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected PDF header got %q", data[:8])
	}
}

func TestEmptyDocument(t *testing.T) {
	if _, err := Bytes(render.Document{Width: 210, Height: 297}); !errors.Is(err, ErrExport) {
		t.Fatalf("expected ErrExport got %v", err)
	}
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"invoice-INV-2025-001.pdf", "invoice-INV-2025-001.pdf"},
		{"invoice-a/b.pdf", "invoice-a-b.pdf"},
		{"../../etc/passwd", "..-..-etc-passwd"},
		{"..", "invoice.pdf"},
		{"", "invoice.pdf"},
	}
	for _, tt := range tests {
		if got := SafeName(tt.in); got != tt.want {
			t.Errorf("SafeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	path, err := WriteFile([]byte("%PDF-1.3"), dir, "invoice-1.pdf")
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if path != filepath.Join(dir, "invoice-1.pdf") {
		t.Fatalf("unexpected path %s", path)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "%PDF-1.3" {
		t.Fatalf("unexpected content %q err=%v", got, err)
	}
}

func TestWriteFileFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteFile([]byte("x"), file, "a.pdf"); !errors.Is(err, ErrExport) {
		t.Fatalf("expected ErrExport got %v", err)
	}
}

func TestCoreFont(t *testing.T) {
	if coreFont("Georgia") != "Times" || coreFont("Inter") != "Helvetica" || coreFont("") != "Helvetica" {
		t.Fatalf("unexpected font mapping")
	}
}

func TestCp1252Encoder(t *testing.T) {
	enc := cp1252Encoder(gofpdf.New("P", "mm", "A4", "").UnicodeTranslatorFromDescriptor(""))
	tests := []struct {
		in, want string
	}{
		{"₹12.00", "Rs.12.00"},
		{"€12.00", "\x8012.00"},
		{"£5.00", "\xa35.00"},
		{"$1.00", "$1.00"},
	}
	for _, tt := range tests {
		if got := enc(tt.in); got != tt.want {
			t.Errorf("encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBytesINR(t *testing.T) {
	l := ledger.New(ledger.Invoice{Number: "INV-2025-002", Currency: "INR", Design: design.Default()})
	i := l.AddItem()
	_ = l.UpdateItem(i, ledger.SetRate{Value: 12})
	doc := render.New("en").Render(l.Snapshot())
	data, err := Bytes(doc)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected PDF header")
	}
}
