package catalog

import "github.com/yungbote/officeorder-backend/internal/domain"

// Profile carries every language-dependent presentation choice a renderer
// needs. It is picked once per request and threaded through rendering.
type Profile struct {
	Language    domain.Language
	Title       string
	HeaderLines []string
	RefLabel    string
	DateLabel   string
	ToLabel     string
	IssuerLine  string

	// PDFFont is a core font name, or the family the Devanagari TTFs are
	// registered under when PDFUnicode is set.
	PDFFont    string
	PDFUnicode bool
	DOCXFont   string
}
