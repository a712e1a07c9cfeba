// Package render lays a composed draft into the institutional office-order
// template and writes it as PDF or DOCX.
package render

import (
	"regexp"
	"strings"

	"github.com/yungbote/officeorder-backend/internal/catalog"
	"github.com/yungbote/officeorder-backend/internal/session"
)

// Layout is the format-independent content of one office order, top to
// bottom. Both renderers draw exactly these blocks.
type Layout struct {
	Profile catalog.Profile

	Header    []string
	RefLabel  string
	RefValue  string
	DateLabel string
	DateValue string
	Title     string
	// Paragraphs holds one entry per body section; each section keeps its
	// internal line breaks as separate lines.
	Paragraphs [][]string
	From       string
	Issuer     string
	ToLabel    string
	To         string
}

func BuildLayout(p catalog.Profile, reg *catalog.Registry, d session.Draft) Layout {
	return Layout{
		Profile:    p,
		Header:     append([]string(nil), p.HeaderLines...),
		RefLabel:   p.RefLabel,
		RefValue:   strings.TrimSpace(d.ReferenceID),
		DateLabel:  p.DateLabel,
		DateValue:  strings.TrimSpace(d.OrderDate),
		Title:      p.Title,
		Paragraphs: SplitParagraphs(d.Content),
		From:       reg.Display(d.From, p.Language),
		Issuer:     p.IssuerLine,
		ToLabel:    p.ToLabel,
		To:         reg.Display(d.To, p.Language),
	}
}

var blankLine = regexp.MustCompile(`\n[ \t]*\n`)

// SplitParagraphs splits on blank lines. Empty sections are dropped and
// trailing spaces are trimmed from every line.
func SplitParagraphs(content string) [][]string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var out [][]string
	for _, section := range blankLine.Split(content, -1) {
		section = strings.Trim(section, "\n")
		if strings.TrimSpace(section) == "" {
			continue
		}
		lines := strings.Split(section, "\n")
		for i, l := range lines {
			lines[i] = strings.TrimRight(l, " \t")
		}
		out = append(out, lines)
	}
	return out
}
