// Package pdf executes render documents with gofpdf.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/diewo77/invoice-studio/internal/render"
	"github.com/phpdave11/gofpdf"
)

// ErrExport wraps every failure to produce the artifact.
var ErrExport = errors.New("export failed")

const lineHeightFactor = 1.15

// coreFont maps design font labels onto the PDF core fonts.
func coreFont(family string) string {
	switch strings.ToLower(family) {
	case "georgia", "times", "times new roman":
		return "Times"
	case "courier", "courier new":
		return "Courier"
	default:
		return "Helvetica"
	}
}

// Build executes doc and returns the PDF document, not yet serialized.
func Build(doc render.Document) (*gofpdf.Fpdf, error) {
	if len(doc.Ops) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrExport)
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: doc.Width, Ht: doc.Height},
	})
	p.SetAutoPageBreak(false, 0)
	p.SetMargins(0, 0, 0)
	p.AddPage()
	p.SetFont(coreFont(doc.FontFamily), "", 16)
	tr := cp1252Encoder(p.UnicodeTranslatorFromDescriptor(""))

	for _, op := range doc.Ops {
		switch o := op.(type) {
		case render.SetFillColor:
			p.SetFillColor(int(o.Color.R), int(o.Color.G), int(o.Color.B))
		case render.FillRect:
			p.Rect(o.X, o.Y, o.W, o.H, "F")
		case render.SetTextColor:
			p.SetTextColor(int(o.Color.R), int(o.Color.G), int(o.Color.B))
		case render.SetFontSize:
			p.SetFontSize(o.Size)
		case render.Text:
			drawText(p, tr, o)
		case render.WrapText:
			_, unit := p.GetFontSize()
			lines := p.SplitLines([]byte(tr(o.Text)), o.Width)
			for i, line := range lines {
				p.Text(o.X, o.Y+float64(i)*unit*lineHeightFactor, string(line))
			}
		case render.Save:
			// serialization is done by the caller
		default:
			return nil, fmt.Errorf("%w: unsupported op %q", ErrExport, op.Kind())
		}
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	return p, nil
}

// Core fonts are cp1252; symbols it cannot encode get a spelled-out form.
var cp1252Fallbacks = strings.NewReplacer("₹", "Rs.")

func cp1252Encoder(tr func(string) string) func(string) string {
	return func(s string) string { return tr(cp1252Fallbacks.Replace(s)) }
}

// drawText writes each line of o.Text one line-height apart.
func drawText(p *gofpdf.Fpdf, tr func(string) string, o render.Text) {
	_, unit := p.GetFontSize()
	for i, line := range strings.Split(o.Text, "\n") {
		s := tr(line)
		x := o.X
		if o.Align == render.AlignCenter {
			x -= p.GetStringWidth(s) / 2
		}
		p.Text(x, o.Y+float64(i)*unit*lineHeightFactor, s)
	}
}

// Write renders doc as PDF into w.
func Write(doc render.Document, w io.Writer) error {
	p, err := Build(doc)
	if err != nil {
		return err
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

// Bytes renders doc as PDF in memory.
func Bytes(doc render.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SafeName strips directory components from an artifact name.
func SafeName(name string) string {
	name = strings.NewReplacer("/", "-", "\\", "-").Replace(strings.TrimSpace(name))
	name = filepath.Base(name)
	if name == "." || name == ".." || name == "" {
		return "invoice.pdf"
	}
	return name
}

// WriteFile writes the rendered bytes to dir under the document's Save name and returns the path.
func WriteFile(data []byte, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	path := filepath.Join(dir, SafeName(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	return path, nil
}
