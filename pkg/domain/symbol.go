package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Display glyphs of the reserved markers.
const (
	StartGlyph = 'ç'
	EndGlyph   = '$'
	BlankGlyph = '_'
)

// SymbolKind tells markers apart from ordinary letters.
type SymbolKind uint8

const (
	KindLetter SymbolKind = iota
	KindStart
	KindEnd
	KindBlank
)

// Symbol is the content of a single tape cell.
// Markers carry no character; letters carry exactly one rune that is never a marker glyph.
// Build letters with SymbolOf or ParseSymbol.
type Symbol struct {
	kind SymbolKind
	char rune
}

// Reserved markers.
var (
	Start = Symbol{kind: KindStart}
	End   = Symbol{kind: KindEnd}
	Blank = Symbol{kind: KindBlank}
)

// SymbolOf maps a rune to its cell value. Marker glyphs map to the markers.
func SymbolOf(r rune) Symbol {
	switch r {
	case StartGlyph:
		return Start
	case EndGlyph:
		return End
	case BlankGlyph:
		return Blank
	}
	return Symbol{kind: KindLetter, char: r}
}

// Kind reports whether s is a letter or which marker it is.
func (s Symbol) Kind() SymbolKind { return s.kind }

// Char returns the rune of a letter, or the display glyph of a marker.
func (s Symbol) Char() rune {
	switch s.kind {
	case KindStart:
		return StartGlyph
	case KindEnd:
		return EndGlyph
	case KindBlank:
		return BlankGlyph
	}
	return s.char
}

// ParseSymbol reads a single-character token.
func ParseSymbol(s string) (Symbol, error) {
	if utf8.RuneCountInString(s) != 1 {
		return Symbol{}, fmt.Errorf("%w: symbol %q must be exactly one character", ErrTransitionArgs, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return SymbolOf(r), nil
}

// ParseSymbols reads a list of single-character tokens.
func ParseSymbols(tokens []string) ([]Symbol, error) {
	out := make([]Symbol, len(tokens))
	for i, tok := range tokens {
		sym, err := ParseSymbol(tok)
		if err != nil {
			return nil, err
		}
		out[i] = sym
	}
	return out, nil
}

// ParseWord converts every rune of s into a Symbol.
// Marker glyphs are kept as markers so that Feed can reject them.
func ParseWord(s string) []Symbol {
	out := make([]Symbol, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, SymbolOf(r))
	}
	return out
}

// IsMarker reports whether the symbol is one of Start, End or Blank.
func (s Symbol) IsMarker() bool {
	return s.kind != KindLetter
}

func (s Symbol) String() string {
	return string(s.Char())
}

func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Symbol) UnmarshalText(b []byte) error {
	parsed, err := ParseSymbol(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// FormatSymbols joins symbols with sep.
func FormatSymbols(symbols []Symbol, sep string) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = s.String()
	}
	return strings.Join(parts, sep)
}
