package render

import "github.com/diewo77/invoice-studio/internal/design"

// layoutStyle is the per-layout part of the drawing procedure.
type layoutStyle struct {
	background  func(d design.Design) []Op
	titleOnBand bool // title sits on a primary band and is drawn white
	bodyPrimary bool // metadata block uses the primary color instead of black
	stripeRows  bool
}

func headerBand(d design.Design) []Op {
	return []Op{
		SetFillColor{Color: d.Primary},
		FillRect{X: 0, Y: 0, W: PageWidth, H: headerBandHeight},
	}
}

func framedPage(d design.Design) []Op {
	return []Op{
		SetFillColor{Color: d.Secondary},
		FillRect{X: 0, Y: 0, W: PageWidth, H: PageHeight},
		SetFillColor{Color: d.Primary},
		FillRect{X: 0, Y: 0, W: marginStripWidth, H: PageHeight},
	}
}

func noBackground(design.Design) []Op { return nil }

var layoutStyles = map[design.Layout]layoutStyle{
	design.LayoutClassic: {background: noBackground, stripeRows: true},
	design.LayoutModern:  {background: headerBand, titleOnBand: true, stripeRows: true},
	design.LayoutBold:    {background: headerBand, titleOnBand: true, stripeRows: true},
	design.LayoutElegant: {background: framedPage, stripeRows: true},
	design.LayoutMinimal: {background: noBackground, bodyPrimary: true},
}

// styleFor falls back to classic for layouts outside the catalog enum.
func styleFor(l design.Layout) layoutStyle {
	if s, ok := layoutStyles[l]; ok {
		return s
	}
	return layoutStyles[design.LayoutClassic]
}

func (s layoutStyle) titleColor(d design.Design) design.Color {
	if s.titleOnBand {
		return design.White
	}
	return d.Primary
}

func (s layoutStyle) bodyColor(d design.Design) design.Color {
	if s.bodyPrimary {
		return d.Primary
	}
	return design.Black
}
