// Package pdf adapts go-pdf/fpdf to the DocumentRenderer port.
package pdf

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// Renderer draws report text onto a single A4 portrait page, positions in
// millimetres. It tracks the current size and weight so the two can be set
// independently, the way the report writer drives them.
type Renderer struct {
	doc  *fpdf.Fpdf
	tr   func(string) string
	size float64
	bold bool
}

func NewRenderer() *Renderer {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont(fontFamily, "", 12)
	return &Renderer{
		doc:  doc,
		tr:   doc.UnicodeTranslatorFromDescriptor(""),
		size: 12,
	}
}

func (r *Renderer) SetFontSize(pt float64) {
	r.size = pt
	r.applyFont()
}

func (r *Renderer) SetBold(bold bool) {
	r.bold = bold
	r.applyFont()
}

func (r *Renderer) Text(x, y float64, s string) {
	r.doc.Text(x, y, r.tr(s))
}

func (r *Renderer) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) applyFont() {
	style := ""
	if r.bold {
		style = "B"
	}
	r.doc.SetFont(fontFamily, style, r.size)
}
