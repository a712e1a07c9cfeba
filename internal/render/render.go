package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/yungbote/officeorder-backend/internal/domain"
)

// FilenameBase names every downloaded order; the extension follows the format.
const FilenameBase = "BISAG_Office_Order"

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	}
	return "", fmt.Errorf("%w: unsupported format %q", domain.ErrInvalidRequest, s)
}

func (f Format) Filename() string { return FilenameBase + "." + string(f) }

type Renderer interface {
	Render(w io.Writer, l Layout) error
	ContentType() string
}

// Set picks the renderer for a format.
type Set struct {
	PDF  Renderer
	DOCX Renderer
}

func (s Set) For(f Format) (Renderer, error) {
	var r Renderer
	switch f {
	case FormatPDF:
		r = s.PDF
	case FormatDOCX:
		r = s.DOCX
	}
	if r == nil {
		return nil, fmt.Errorf("%w: no renderer for %q", domain.ErrInvalidRequest, f)
	}
	return r, nil
}
