package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/yungbote/officeorder-backend/internal/platform/fonts"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrNoUnicodeFont is returned when a document needs the UTF-8 font set
// and the renderer was built without it.
var ErrNoUnicodeFont = errors.New("render: unicode font set not loaded")

// fallbackFamily names the UTF-8 face registered for profiles whose core
// font cannot encode the document text.
const fallbackFamily = "UnicodeSerif"

type PDFRenderer struct {
	fonts    *fonts.Set
	compress bool
}

type PDFOption func(*PDFRenderer)

// WithCompression toggles stream compression; tests turn it off to read
// the content streams.
func WithCompression(on bool) PDFOption {
	return func(r *PDFRenderer) { r.compress = on }
}

func NewPDFRenderer(set *fonts.Set, opts ...PDFOption) *PDFRenderer {
	r := &PDFRenderer{fonts: set, compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *PDFRenderer) ContentType() string { return ContentTypePDF }

func (r *PDFRenderer) Render(w io.Writer, l Layout) error {
	pdf, _, err := r.draw(l)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// pdfPage tracks the font family and text translation for one document.
type pdfPage struct {
	pdf      *fpdf.Fpdf
	family   string
	tr       func(string) string
	contentW float64
	blocks   []string
}

func (p *pdfPage) font(style string, size float64) {
	p.pdf.SetFont(p.family, style, size)
}

func (p *pdfPage) mark(kind string) { p.blocks = append(p.blocks, kind) }

// texts lists every string drawn for l.
func (l Layout) texts() []string {
	out := append([]string(nil), l.Header...)
	out = append(out, l.RefLabel, l.RefValue, l.DateLabel, l.DateValue, l.Title)
	for _, para := range l.Paragraphs {
		out = append(out, para...)
	}
	return append(out, l.From, l.Issuer, l.ToLabel, l.To)
}

// fitsCP1252 reports whether the core fonts can draw every rune of l.
func fitsCP1252(l Layout) bool {
	for _, s := range l.texts() {
		for _, r := range s {
			if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
				return false
			}
		}
	}
	return true
}

// draw lays out l. The returned page records the font family used and
// the block kinds in drawing order.
func (r *PDFRenderer) draw(l Layout) (*fpdf.Fpdf, *pdfPage, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetMargins(20, 15, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(l.Title, true)
	pdf.SetAuthor(l.Issuer, true)
	pdf.SetCreator("officeorder", true)

	page := &pdfPage{pdf: pdf, family: l.Profile.PDFFont, tr: func(s string) string { return s }}
	unicode := l.Profile.PDFUnicode
	if !unicode && !fitsCP1252(l) {
		unicode, page.family = true, fallbackFamily
	}
	if unicode {
		if r.fonts == nil {
			return nil, nil, ErrNoUnicodeFont
		}
		pdf.AddUTF8FontFromBytes(page.family, "", r.fonts.Regular)
		pdf.AddUTF8FontFromBytes(page.family, "B", r.fonts.Bold)
	} else {
		page.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	if pdf.Err() {
		return nil, nil, fmt.Errorf("render pdf: fonts: %w", pdf.Error())
	}

	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	lm, _, rm, _ := pdf.GetMargins()
	page.contentW = pageW - lm - rm

	page.header(l.Header)
	pdf.Ln(2)
	y := pdf.GetY()
	pdf.SetLineWidth(0.4)
	pdf.Line(lm, y, pageW-rm, y)
	pdf.Ln(5)

	page.refDate(l)
	pdf.Ln(6)
	page.title(l.Title)
	pdf.Ln(6)

	page.font("", 12)
	for _, para := range l.Paragraphs {
		pdf.MultiCell(page.contentW, 6.5, page.tr(strings.Join(para, "\n")), "", "J", false)
		page.mark("paragraph")
		pdf.Ln(4)
	}

	pdf.Ln(10)
	page.from(l.From, l.Issuer)
	pdf.Ln(8)
	page.to(l.ToLabel, l.To)

	if pdf.Err() {
		return nil, nil, fmt.Errorf("render pdf: %w", pdf.Error())
	}
	return pdf, page, nil
}

func (p *pdfPage) header(lines []string) {
	for i, line := range lines {
		size := 12.0
		if i == 0 {
			size = 13
		}
		p.font("B", size)
		p.pdf.MultiCell(p.contentW, 6, p.tr(line), "", "C", false)
	}
	p.mark("header")
}

func (p *pdfPage) refDate(l Layout) {
	p.font("", 11)
	half := p.contentW / 2
	p.pdf.CellFormat(half, 7, p.tr(strings.TrimSpace(l.RefLabel+" "+l.RefValue)), "", 0, "L", false, 0, "")
	p.pdf.CellFormat(half, 7, p.tr(strings.TrimSpace(l.DateLabel+" "+l.DateValue)), "", 1, "R", false, 0, "")
	p.mark("refdate")
}

func (p *pdfPage) title(title string) {
	p.font("BU", 14)
	p.pdf.CellFormat(p.contentW, 8, p.tr(title), "", 1, "C", false, 0, "")
	p.mark("title")
}

func (p *pdfPage) from(from, issuer string) {
	p.font("B", 12)
	p.pdf.CellFormat(p.contentW, 6, p.tr(from), "", 1, "R", false, 0, "")
	if issuer != "" {
		p.font("", 11)
		p.pdf.CellFormat(p.contentW, 6, p.tr(issuer), "", 1, "R", false, 0, "")
	}
	p.mark("from")
}

func (p *pdfPage) to(label, to string) {
	p.font("B", 12)
	p.pdf.CellFormat(p.contentW, 6, p.tr(label), "", 1, "L", false, 0, "")
	p.font("", 12)
	p.pdf.MultiCell(p.contentW, 6, p.tr(to), "", "L", false)
	p.mark("to")
}
