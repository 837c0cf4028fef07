package render

import (
	"encoding/json"

	"github.com/diewo77/invoice-studio/internal/design"
)

// Op is one drawing instruction. The set of ops is closed; a backend switches on the concrete type.
type Op interface {
	Kind() string
}

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

type SetFillColor struct {
	Color design.Color `json:"color"`
}

// FillRect fills a rectangle with the current fill color.
type FillRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type SetTextColor struct {
	Color design.Color `json:"color"`
}

type SetFontSize struct {
	Size float64 `json:"size"`
}

// Text places a string with its baseline at Y. With AlignCenter, X is the horizontal midpoint.
type Text struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Text  string  `json:"text"`
	Align Align   `json:"align"`
}

// WrapText asks the backend to word-wrap Text to Width, starting at (X, Y).
type WrapText struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
	Text  string  `json:"text"`
}

// Save finalizes the document under Name.
type Save struct {
	Name string `json:"name"`
}

func (SetFillColor) Kind() string { return "set_fill_color" }
func (FillRect) Kind() string     { return "fill_rect" }
func (SetTextColor) Kind() string { return "set_text_color" }
func (SetFontSize) Kind() string  { return "set_font_size" }
func (Text) Kind() string         { return "text" }
func (WrapText) Kind() string     { return "wrap_text" }
func (Save) Kind() string         { return "save" }

// Document is the renderer output: a page of fixed size and its op sequence.
type Document struct {
	Width      float64
	Height     float64
	FontFamily string
	Ops        []Op
}

// Filename returns the name carried by the final Save op, or "" if there is none.
func (d Document) Filename() string {
	for i := len(d.Ops) - 1; i >= 0; i-- {
		if s, ok := d.Ops[i].(Save); ok {
			return s.Name
		}
	}
	return ""
}

type encodedOp struct {
	Op   string `json:"op"`
	Args Op     `json:"args"`
}

type encodedDocument struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	FontFamily string      `json:"font_family"`
	Ops        []encodedOp `json:"ops"`
}

// MarshalJSON encodes the document canonically: identical documents encode to identical bytes.
func (d Document) MarshalJSON() ([]byte, error) {
	out := encodedDocument{Width: d.Width, Height: d.Height, FontFamily: d.FontFamily, Ops: make([]encodedOp, len(d.Ops))}
	for i, op := range d.Ops {
		out.Ops[i] = encodedOp{Op: op.Kind(), Args: op}
	}
	return json.Marshal(out)
}

// Encode is json.Marshal(d).
func (d Document) Encode() ([]byte, error) {
	return json.Marshal(d)
}
