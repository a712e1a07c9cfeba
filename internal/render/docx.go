package render

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"

	"github.com/yungbote/officeorder-backend/internal/domain"
)

const (
	// A4 in twentieths of a point, with 20mm side margins and a 15mm top.
	pageW        = 11906
	pageH        = 16838
	marginSide   = 1134
	marginTop    = 850
	marginHeader = 708
	halfColumn   = 4680

	corePropsPart = "docProps/core.xml"
)

// coreProps replaces the template's document properties. godocx keeps
// docProps/core.xml as an opaque part.
type coreProps struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	NSCP    string   `xml:"xmlns:cp,attr"`
	NSDC    string   `xml:"xmlns:dc,attr"`
	Title   string   `xml:"dc:title"`
	Creator string   `xml:"dc:creator"`
	Lang    string   `xml:"dc:language"`
}

type DOCXRenderer struct{}

func NewDOCXRenderer() *DOCXRenderer { return &DOCXRenderer{} }

func (r *DOCXRenderer) ContentType() string { return ContentTypeDOCX }

func (r *DOCXRenderer) Render(w io.Writer, l Layout) error {
	rd, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("render docx: template: %w", err)
	}
	buildDocument(rd, l)

	core, err := xml.Marshal(coreProps{
		NSCP:    "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		NSDC:    "http://purl.org/dc/elements/1.1/",
		Title:   l.Title,
		Creator: l.Issuer,
		Lang:    langTag(l.Profile.Language),
	})
	if err != nil {
		return fmt.Errorf("render docx: %s: %w", corePropsPart, err)
	}
	rd.FileMap.Store(corePropsPart, append([]byte(xml.Header), core...))

	if err := rd.Write(w); err != nil {
		return fmt.Errorf("render docx: %w", err)
	}
	return nil
}

func langTag(lang domain.Language) string {
	if lang == domain.LanguageHindi {
		return "hi-IN"
	}
	return "en-IN"
}

// docxText builds runs in one profile's font and language.
type docxText struct {
	font string
	lang domain.Language
}

type runStyle struct {
	bold      bool
	underline bool
	size      uint64 // points
}

const bodySize = 12

// props sets the complex-script twins of every attribute so Devanagari
// runs pick up the same font, weight and size as Latin ones.
func (d docxText) props(s runStyle) *ctypes.RunProperty {
	tag := langTag(d.lang)
	p := &ctypes.RunProperty{
		Fonts: &ctypes.RunFonts{Ascii: d.font, HAnsi: d.font, CS: d.font, EastAsia: d.font},
		Lang:  &ctypes.Lang{Val: &tag},
	}
	if d.lang == domain.LanguageHindi {
		p.Lang.Bidi = &tag
	}
	if s.bold {
		p.Bold, p.BoldCS = ctypes.OnOffFromBool(true), ctypes.OnOffFromBool(true)
	}
	size := s.size
	if size == 0 {
		size = bodySize
	}
	p.Size, p.SizeCs = ctypes.NewFontSize(size*2), ctypes.NewFontSizeCS(size*2)
	if s.underline {
		p.Underline = ctypes.NewGenSingleStrVal(stypes.UnderlineSingle)
	}
	return p
}

// write appends lines to p as runs joined by soft breaks.
func (d docxText) write(p *docx.Paragraph, s runStyle, lines ...string) *docx.Paragraph {
	ct := p.GetCT()
	for i, line := range lines {
		run := &ctypes.Run{
			Property: d.props(s),
			Children: []ctypes.RunChild{{Text: ctypes.TextFromString(line)}},
		}
		if i < len(lines)-1 {
			run.Children = append(run.Children, ctypes.RunChild{Break: &ctypes.Break{}})
		}
		ct.Children = append(ct.Children, ctypes.ParagraphChild{Run: run})
	}
	return p
}

func aligned(p *docx.Paragraph, jc stypes.Justification, before, after uint64) *docx.Paragraph {
	p.Justification(jc)
	p.Spacing(before, after)
	return p
}

func buildDocument(rd *docx.RootDoc, l Layout) {
	d := docxText{font: l.Profile.DOCXFont, lang: l.Profile.Language}

	for i, line := range l.Header {
		size := uint64(12)
		if i == 0 {
			size = 13
		}
		d.write(aligned(rd.AddEmptyParagraph(), stypes.JustificationCenter, 0, 0), runStyle{bold: true, size: size}, line)
	}
	rule := rd.AddEmptyParagraph()
	rule.Spacing(0, 240)
	ruleSize, ruleSpace, ruleColor := 8, "1", "auto"
	rule.GetCT().Property.Border = &ctypes.ParaBorder{
		Bottom: &ctypes.Border{Val: stypes.BorderStyleSingle, Size: &ruleSize, Space: &ruleSpace, Color: &ruleColor},
	}

	refDateTable(rd, d, l)

	title := aligned(rd.AddEmptyParagraph(), stypes.JustificationCenter, 240, 240)
	d.write(title, runStyle{bold: true, underline: true, size: 14}, l.Title)

	for _, para := range l.Paragraphs {
		d.write(aligned(rd.AddEmptyParagraph(), stypes.JustificationBoth, 0, 200), runStyle{}, para...)
	}

	d.write(aligned(rd.AddEmptyParagraph(), stypes.JustificationRight, 480, 0), runStyle{bold: true}, l.From)
	if l.Issuer != "" {
		d.write(aligned(rd.AddEmptyParagraph(), stypes.JustificationRight, 0, 0), runStyle{}, l.Issuer)
	}

	d.write(aligned(rd.AddEmptyParagraph(), stypes.JustificationLeft, 360, 0), runStyle{bold: true}, l.ToLabel)
	d.write(aligned(rd.AddEmptyParagraph(), stypes.JustificationLeft, 0, 0), runStyle{}, l.To)

	setPage(rd)
}

func refDateTable(rd *docx.RootDoc, d docxText, l Layout) {
	t := rd.AddTable()
	t.Width(2*halfColumn, stypes.TableWidthDxa).Grid(halfColumn, halfColumn).Layout(stypes.TableLayoutFixed)
	none := func() *ctypes.Border { return &ctypes.Border{Val: stypes.BorderStyleNil} }
	t.GetCT().TableProp.Borders = &ctypes.TableBorders{
		Top: none(), Left: none(), Bottom: none(),
		Right: none(), InsideH: none(), InsideV: none(),
	}

	row := t.AddRow()
	cell := func(jc stypes.Justification, text string) {
		c := row.AddCell().Width(halfColumn, stypes.TableWidthDxa)
		d.write(aligned(c.AddEmptyPara(), jc, 0, 0), runStyle{}, text)
	}
	cell(stypes.JustificationLeft, joinLabel(l.RefLabel, l.RefValue))
	cell(stypes.JustificationRight, joinLabel(l.DateLabel, l.DateValue))
}

func setPage(rd *docx.RootDoc) {
	body := rd.Document.Body
	if body.SectPr == nil {
		body.SectPr = ctypes.NewSectionProper()
	}
	w, h := uint64(pageW), uint64(pageH)
	body.SectPr.PageSize = &ctypes.PageSize{Width: &w, Height: &h}
	side, top, header, gutter := marginSide, marginTop, marginHeader, 0
	body.SectPr.PageMargin = &ctypes.PageMargin{
		Top: &top, Bottom: &side, Left: &side, Right: &side,
		Header: &header, Footer: &header, Gutter: &gutter,
	}
}

func joinLabel(label, value string) string {
	if value == "" {
		return label
	}
	return label + " " + value
}
