// Package pdf renders the printable documents: participant lists, payment
// and refund certificates, the social fund decision notice, the budget report
// and the payment schedule letter. Everything is built with go-pdf/fpdf on
// A4 pages with 15mm margins.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	pageMargin = 15.0
	lineHeight = 7.0
)

// nowFn is swapped in tests to pin the printed dates.
var nowFn = time.Now

// Letterhead carries the institution identity printed on every document.
// Image paths are absolute; empty means no image.
type Letterhead struct {
	Name            string
	AuthorizerName  string
	SecretaryName   string
	SignatureCity   string
	CertificateText string

	LogoPath            string
	AuthorizerImagePath string
	SecretaryImagePath  string
}

func (lh *Letterhead) name() string {
	if lh.Name == "" {
		return "Nom du Collège"
	}
	return lh.Name
}

func (lh *Letterhead) city() string {
	if lh.SignatureCity == "" {
		return "Ville"
	}
	return lh.SignatureCity
}

func (lh *Letterhead) authorizer() string {
	if lh.AuthorizerName == "" {
		return "Le Principal,"
	}
	return lh.AuthorizerName
}

func (lh *Letterhead) secretary() string {
	if lh.SecretaryName == "" {
		return "Le Secrétaire Général,"
	}
	return lh.SecretaryName
}

// Generator renders documents. It probes its font directories once for a
// unicode TTF (DejaVuSans or NotoSans); without one, text falls back to the
// built-in Helvetica with cp1252 translation and ASCII folding of anything
// cp1252 cannot carry.
type Generator struct {
	fontFamily string
	fontFile   string
	boldFile   string
}

// NewGenerator probes the given directories for a usable unicode font.
func NewGenerator(fontDirs ...string) *Generator {
	g := &Generator{}
	candidates := []struct {
		family, regular, bold string
	}{
		{"DejaVuSans", "DejaVuSans.ttf", "DejaVuSans-Bold.ttf"},
		{"NotoSans", "NotoSans-Regular.ttf", "NotoSans-Bold.ttf"},
	}
	for _, dir := range fontDirs {
		for _, c := range candidates {
			regular := filepath.Join(dir, c.regular)
			if fi, err := os.Stat(regular); err != nil || fi.Size() == 0 {
				continue
			}
			g.fontFamily = c.family
			g.fontFile = regular
			if bold := filepath.Join(dir, c.bold); fileUsable(bold) {
				g.boldFile = bold
			}
			return g
		}
	}
	return g
}

func fileUsable(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Size() > 0
}

// doc wraps one document under construction.
type doc struct {
	pdf     *fpdf.Fpdf
	family  string
	tr      func(string) string
	unicode bool
	lh      Letterhead
}

func (g *Generator) newDoc(orientation string, lh Letterhead) *doc {
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	d := &doc{pdf: pdf, lh: lh}
	if g.fontFamily != "" {
		pdf.AddUTF8Font(g.fontFamily, "", g.fontFile)
		if g.boldFile != "" {
			pdf.AddUTF8Font(g.fontFamily, "B", g.boldFile)
		} else {
			pdf.AddUTF8Font(g.fontFamily, "B", g.fontFile)
		}
		pdf.AddUTF8Font(g.fontFamily, "I", g.fontFile)
		d.family = g.fontFamily
		d.unicode = true
		d.tr = func(s string) string { return s }
	} else {
		d.family = "Helvetica"
		translate := pdf.UnicodeTranslatorFromDescriptor("")
		d.tr = func(s string) string { return translate(foldBeyondCP1252(s)) }
	}
	pdf.AddPage()
	return d
}

func (d *doc) setFont(style string, size float64) {
	d.pdf.SetFont(d.family, style, size)
}

func (d *doc) contentWidth() float64 {
	w, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	return w - left - right
}

// euros renders cents using the € sign when the font can carry it, "EUR"
// otherwise.
func (d *doc) euros(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	unit := "EUR"
	if d.unicode {
		unit = "€"
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, unit)
}

func (d *doc) cell(w, h float64, txt, border string, ln int, align string, fill bool) {
	d.pdf.CellFormat(w, h, d.tr(txt), border, ln, align, fill, 0, "")
}

func (d *doc) multiCell(w, h float64, txt, border, align string, fill bool) {
	d.pdf.MultiCell(w, h, d.tr(txt), border, align, fill)
}

// datedSignature writes the "Fait à ..." line and the signature pair that
// closes every letter and certificate.
func (d *doc) datedSignature(on time.Time) {
	d.setFont("", 11)
	d.cell(0, lineHeight, fmt.Sprintf("Fait à %s, le %s", d.lh.city(), on.Format("02/01/2006")), "", 1, "R", false)
	d.pdf.Ln(12)
	d.signaturePair()
}

func (d *doc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// foldBeyondCP1252 keeps Latin-1 text intact (cp1252 renders French accents
// fine) and accent-folds anything beyond it, so exotic input degrades to
// readable ASCII instead of glyph noise.
func foldBeyondCP1252(s string) string {
	needsFold := false
	for _, r := range s {
		if r > 0x24F {
			needsFold = true
			break
		}
	}
	if !needsFold {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range folded {
		if r > 0xFF {
			b.WriteRune('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("02/01/2006")
}
