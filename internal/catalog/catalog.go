// Package catalog holds the deploy-time tables the service renders from:
// the designation registry, one locale profile per language and the
// prompt templates sent to the text-generation service.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
)

const (
	PromptStrict = "strict"
	PromptBasic  = "basic"
)

//go:embed default.yaml
var defaultFS embed.FS

type yamlCatalog struct {
	Version      int                          `yaml:"version"`
	Designations []Designation                `yaml:"designations"`
	Profiles     map[string]yamlProfile       `yaml:"profiles"`
	Prompts      map[string]map[string]string `yaml:"prompts"`
}

type yamlProfile struct {
	Title      string   `yaml:"title"`
	Header     []string `yaml:"header"`
	RefLabel   string   `yaml:"ref_label"`
	DateLabel  string   `yaml:"date_label"`
	ToLabel    string   `yaml:"to_label"`
	Issuer     string   `yaml:"issuer"`
	PDFFont    string   `yaml:"pdf_font"`
	PDFUnicode bool     `yaml:"pdf_unicode"`
	DOCXFont   string   `yaml:"docx_font"`
}

// Catalog is built once at startup and shared read-only by every request.
type Catalog struct {
	Registry *Registry
	profiles map[domain.Language]Profile
	prompts  map[string]map[domain.Language]string
}

// Load reads the catalog at path, or the embedded default when path is empty.
func Load(path string, log *logger.Logger) (*Catalog, error) {
	var (
		data []byte
		err  error
	)
	path = strings.TrimSpace(path)
	if path == "" {
		data, err = defaultFS.ReadFile("default.yaml")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read catalog: %v", domain.ErrConfiguration, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if log != nil {
		source := path
		if source == "" {
			source = "embedded"
		}
		log.Info("catalog loaded", "source", source, "designations", len(c.Registry.Keys()), "prompt_variants", c.PromptVariants())
	}
	return c, nil
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Load("", nil)
	if err != nil {
		panic(err)
	}
	return c
}

func Parse(data []byte) (*Catalog, error) {
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse catalog: %v", domain.ErrConfiguration, err)
	}
	if err := validate(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}

	reg, err := NewRegistry(raw.Designations)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	c := &Catalog{
		Registry: reg,
		profiles: map[domain.Language]Profile{},
		prompts:  map[string]map[domain.Language]string{},
	}
	for name, p := range raw.Profiles {
		lang, _ := domain.ParseLanguage(name)
		c.profiles[lang] = Profile{
			Language:    lang,
			Title:       strings.TrimSpace(p.Title),
			HeaderLines: p.Header,
			RefLabel:    p.RefLabel,
			DateLabel:   p.DateLabel,
			ToLabel:     p.ToLabel,
			IssuerLine:  p.Issuer,
			PDFFont:     p.PDFFont,
			PDFUnicode:  p.PDFUnicode,
			DOCXFont:    p.DOCXFont,
		}
	}
	for variant, byLang := range raw.Prompts {
		v := strings.ToLower(strings.TrimSpace(variant))
		c.prompts[v] = map[domain.Language]string{}
		for name, text := range byLang {
			lang, _ := domain.ParseLanguage(name)
			c.prompts[v][lang] = strings.TrimSpace(text)
		}
	}
	return c, nil
}

func validate(raw *yamlCatalog) error {
	if len(raw.Designations) == 0 {
		return errors.New("catalog has no designations")
	}
	seen := map[domain.Language]bool{}
	for name, p := range raw.Profiles {
		lang, err := domain.ParseLanguage(name)
		if err != nil {
			return fmt.Errorf("profile %q: %v", name, err)
		}
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("profile %q: missing title", name)
		}
		if len(p.Header) != 3 {
			return fmt.Errorf("profile %q: header needs 3 lines, got %d", name, len(p.Header))
		}
		if strings.TrimSpace(p.PDFFont) == "" || strings.TrimSpace(p.DOCXFont) == "" {
			return fmt.Errorf("profile %q: missing font", name)
		}
		seen[lang] = true
	}
	for _, lang := range domain.Languages {
		if !seen[lang] {
			return fmt.Errorf("missing profile for %s", lang)
		}
	}
	if len(raw.Prompts) == 0 {
		return errors.New("catalog has no prompt templates")
	}
	for variant, byLang := range raw.Prompts {
		have := map[domain.Language]bool{}
		for name, text := range byLang {
			lang, err := domain.ParseLanguage(name)
			if err != nil {
				return fmt.Errorf("prompt %q: %v", variant, err)
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("prompt %q/%s is empty", variant, name)
			}
			have[lang] = true
		}
		for _, lang := range domain.Languages {
			if !have[lang] {
				return fmt.Errorf("prompt %q: missing %s text", variant, lang)
			}
		}
	}
	return nil
}

// Profile returns the locale profile for lang. Both languages are
// guaranteed present after Parse.
func (c *Catalog) Profile(lang domain.Language) Profile {
	if p, ok := c.profiles[lang]; ok {
		return p
	}
	return c.profiles[domain.LanguageEnglish]
}

// Prompt returns the system instruction for variant and lang.
func (c *Catalog) Prompt(variant string, lang domain.Language) (string, error) {
	byLang, ok := c.prompts[strings.ToLower(strings.TrimSpace(variant))]
	if !ok {
		return "", fmt.Errorf("%w: unknown prompt variant %q", domain.ErrConfiguration, variant)
	}
	return byLang[lang], nil
}

func (c *Catalog) PromptVariants() []string {
	out := make([]string, 0, len(c.prompts))
	for v := range c.prompts {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
