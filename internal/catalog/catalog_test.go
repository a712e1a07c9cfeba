package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yungbote/officeorder-backend/internal/domain"
)

func TestEveryDesignationHasBothLanguages(t *testing.T) {
	c := Default()
	keys := c.Registry.Keys()
	if len(keys) == 0 {
		t.Fatalf("expected designations")
	}
	for _, k := range keys {
		d, ok := c.Registry.Lookup(k)
		if !ok {
			t.Fatalf("Lookup(%q) missing", k)
		}
		if d.English == "" || d.Hindi == "" {
			t.Fatalf("designation %q has empty display: %+v", k, d)
		}
	}
}

func TestDisplayStrings(t *testing.T) {
	reg := Default().Registry
	cases := []struct {
		role domain.Role
		lang domain.Language
		want string
	}{
		{domain.Role{Key: "Director General"}, domain.LanguageEnglish, "Director General"},
		{domain.Role{Key: "Director General"}, domain.LanguageHindi, "महानिदेशक"},
		{domain.Role{Key: "Project Manager"}, domain.LanguageHindi, "परियोजना प्रबंधक"},
		{domain.Role{Key: "All Employee"}, domain.LanguageEnglish, "All Employees"},
		{domain.Role{Key: "Registrar", Custom: true}, domain.LanguageHindi, "Registrar"},
		{domain.Role{Key: "Director General", Custom: true}, domain.LanguageHindi, "Director General"},
	}
	for _, tc := range cases {
		if got := reg.Display(tc.role, tc.lang); got != tc.want {
			t.Errorf("Display(%+v, %s) = %q, want %q", tc.role, tc.lang, got, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	reg := Default().Registry

	got, err := reg.Resolve(domain.RoleInput{Position: "Senior Manager", Other: "ignored"})
	if err != nil || got != (domain.Role{Key: "Senior Manager"}) {
		t.Fatalf("registry key: got %+v, %v", got, err)
	}

	got, err = reg.Resolve(domain.RoleInput{Position: "Other", Other: "  Registrar "})
	if err != nil || got != (domain.Role{Key: "Registrar", Custom: true}) {
		t.Fatalf("other: got %+v, %v", got, err)
	}

	for _, in := range []domain.RoleInput{
		{Position: "Other"},
		{Position: ""},
		{Position: "Chief Wizard"},
	} {
		if _, err := reg.Resolve(in); !errors.Is(err, domain.ErrUnknownDesignation) {
			t.Errorf("Resolve(%+v): expected ErrUnknownDesignation, got %v", in, err)
		}
	}
}

func TestProfiles(t *testing.T) {
	c := Default()
	en := c.Profile(domain.LanguageEnglish)
	hi := c.Profile(domain.LanguageHindi)
	if en.Title != "OFFICE ORDER" || hi.Title != "कार्यालय आदेश" {
		t.Fatalf("titles: %q / %q", en.Title, hi.Title)
	}
	if len(en.HeaderLines) != 3 || len(hi.HeaderLines) != 3 {
		t.Fatalf("header lines: %d / %d", len(en.HeaderLines), len(hi.HeaderLines))
	}
	if en.PDFUnicode || !hi.PDFUnicode {
		t.Fatalf("unexpected PDF font selection: en=%v hi=%v", en.PDFUnicode, hi.PDFUnicode)
	}
}

func TestPromptVariants(t *testing.T) {
	c := Default()
	for _, v := range []string{PromptStrict, PromptBasic} {
		for _, lang := range domain.Languages {
			p, err := c.Prompt(v, lang)
			if err != nil || p == "" {
				t.Fatalf("Prompt(%s, %s) = %q, %v", v, lang, p, err)
			}
		}
	}
	strict, _ := c.Prompt(PromptStrict, domain.LanguageEnglish)
	basic, _ := c.Prompt(PromptBasic, domain.LanguageEnglish)
	if !strings.Contains(strict, "subject line") || strings.Contains(basic, "subject line") {
		t.Fatalf("strict variant should carry the extra exclusions")
	}
	if _, err := c.Prompt("loose", domain.LanguageEnglish); !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestLoadOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data, err := defaultFS.ReadFile("default.yaml")
	if err != nil {
		t.Fatal(err)
	}
	override := strings.Replace(string(data), `hi: "महानिदेशक"`, `hi: "महानिदेशक (प्रभारी)"`, 1)
	if err := os.WriteFile(path, []byte(override), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Registry.Display(domain.Role{Key: "Director General"}, domain.LanguageHindi); got != "महानिदेशक (प्रभारी)" {
		t.Fatalf("override not applied: %q", got)
	}
}

func TestParseRejectsIncompleteCatalog(t *testing.T) {
	bad := []string{
		`designations: []`,
		`designations: [{key: "A", en: "A"}]`,
		"designations: [{key: A, en: A, hi: अ}]\nprofiles: {}\n",
	}
	for _, raw := range bad {
		if _, err := Parse([]byte(raw)); !errors.Is(err, domain.ErrConfiguration) {
			t.Errorf("Parse(%q): expected ErrConfiguration, got %v", raw, err)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for missing file, got %v", err)
	}
}
