// Package fonts loads the UTF-8 TrueType faces used for Hindi output and
// for English text outside cp1252, and checks that they can draw both
// scripts before the server starts.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// probe covers consonants, vowel signs, the virama and the danda.
var probe = []rune{'क', 'र', 'ा', 'ि', '्', '।'}

// Reference ids and dates stay Latin inside Hindi orders.
var latinProbe = []rune{'A', 'z', '0', '/'}

var (
	ErrNoDevanagari = errors.New("font has no Devanagari glyphs")
	ErrNoLatin      = errors.New("font has no Latin glyphs")
)

type Set struct {
	Regular []byte
	Bold    []byte
}

// Load reads the regular face and, when bold is set, the bold one. Without
// a bold file the regular face draws bold text too.
func Load(dir, regular, bold string) (*Set, error) {
	reg, err := loadOne(filepath.Join(dir, regular))
	if err != nil {
		return nil, err
	}
	if bold == "" {
		return &Set{Regular: reg, Bold: reg}, nil
	}
	b, err := loadOne(filepath.Join(dir, bold))
	if err != nil {
		return nil, err
	}
	return &Set{Regular: reg, Bold: b}, nil
}

func loadOne(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return data, nil
}

// Validate parses a TTF and requires a glyph with an advance for every
// Devanagari and Latin probe rune.
func Validate(data []byte) error {
	parsed, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse TTF: %w", err)
	}
	face := truetype.NewFace(parsed, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	defer face.Close()
	if err := covers(parsed, face, probe, ErrNoDevanagari); err != nil {
		return err
	}
	return covers(parsed, face, latinProbe, ErrNoLatin)
}

func covers(parsed *truetype.Font, face font.Face, runes []rune, missing error) error {
	for _, r := range runes {
		if parsed.Index(r) == 0 {
			return fmt.Errorf("%w: missing %U", missing, r)
		}
		if _, ok := face.GlyphAdvance(r); !ok {
			return fmt.Errorf("%w: no advance for %U", missing, r)
		}
	}
	return nil
}
