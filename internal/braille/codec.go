package braille

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Codec encodes and decodes text against one symbol table.
type Codec struct {
	table      *Table
	normalize  bool
	numberRuns bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithNormalization NFC-normalizes text before encoding or checking it, so
// decomposed accents such as "á" map like "á".
func WithNormalization() Option {
	return func(c *Codec) { c.normalize = true }
}

// WithNumberRuns emits one numeric marker per run of digits and decodes
// the cells a..j as digits while a run is open.
func WithNumberRuns() Option {
	return func(c *Codec) { c.numberRuns = true }
}

// New returns a codec over t. A nil table selects Spanish().
func New(t *Table, opts ...Option) *Codec {
	if t == nil {
		t = spanish
	}
	c := &Codec{table: t}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = New(nil)

// Default returns the option-free codec over the Spanish table.
func Default() *Codec { return defaultCodec }

// Table returns the codec's symbol table.
func (c *Codec) Table() *Table { return c.table }

// Encode converts text to Braille. Uppercase runes get a capital marker
// whether or not their lowercase form is mapped; characters without a
// mapping are copied through unchanged.
func (c *Codec) Encode(text string) string {
	if text == "" {
		return ""
	}
	if c.normalize {
		text = norm.NFC.String(text)
	}

	var b strings.Builder
	b.Grow(len(text) * 3)
	inNumber := false

	for _, r := range text {
		if cells, ok := c.table.forward[r]; ok {
			if c.numberRuns && isDigit(r) {
				if inNumber {
					cells = strings.TrimPrefix(cells, string(NumericMarker))
				}
				inNumber = true
			} else {
				if c.numberRuns && inNumber && isRunLetter(r) {
					b.WriteRune(LetterSwitch)
				}
				inNumber = false
			}
			b.WriteString(cells)
			continue
		}
		inNumber = false

		lr := lower(r)
		if r != lr && r != ' ' {
			b.WriteRune(CapitalMarker)
		}
		cells, ok := c.table.forward[lr]
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteString(cells)
	}
	return b.String()
}

// Decode converts Braille to text using longest-match lookup. A capital
// marker uppercases the next recognized grapheme only; unrecognized runes
// are copied through and leave a pending capital in place. With number
// runs, a capital marker or a letter switch closes the open run.
func (c *Codec) Decode(braille string) string {
	if braille == "" {
		return ""
	}

	cells := []rune(braille)
	var b strings.Builder
	b.Grow(len(braille))
	capitalPending := false
	inNumber := false

	for i := 0; i < len(cells); {
		src, n := c.table.match(cells[i:])
		if n == 0 {
			switch {
			case cells[i] == CapitalMarker:
				capitalPending = true
				inNumber = false
			case c.numberRuns && inNumber && cells[i] == LetterSwitch:
				inNumber = false
			default:
				b.WriteRune(cells[i])
				inNumber = false
			}
			i++
			continue
		}
		i += n

		switch {
		case c.numberRuns && inNumber && isRunLetter(src):
			src = letterDigit(src)
		case c.numberRuns:
			inNumber = isDigit(src)
		}
		if capitalPending {
			b.WriteString(strings.ToUpper(string(src)))
			capitalPending = false
			continue
		}
		b.WriteRune(src)
	}
	return b.String()
}

// IsValidBraille reports whether every rune of text is a space, the
// capital marker, or a cell used by the table. Empty text is valid.
func (c *Codec) IsValidBraille(text string) bool {
	for _, r := range text {
		if r == ' ' || c.table.KnownCell(r) {
			continue
		}
		return false
	}
	return true
}

// CheckResult is the outcome of a convertibility pre-check.
type CheckResult struct {
	Valid       bool     `json:"valid"`
	Error       string   `json:"error,omitempty"`
	Unsupported []string `json:"unsupported,omitempty"`
}

// Err returns nil for a valid result, ErrEmptyText, or an *UnsupportedError.
func (r CheckResult) Err() error {
	switch {
	case r.Valid:
		return nil
	case len(r.Unsupported) > 0:
		return &UnsupportedError{Chars: r.Unsupported}
	default:
		return ErrEmptyText
	}
}

// CanConvert is an advisory check that text has a mapping for every rune.
// Encode never fails regardless of the outcome.
func (c *Codec) CanConvert(text string) CheckResult {
	if strings.TrimSpace(text) == "" {
		return CheckResult{Error: "text must not be empty"}
	}
	if c.normalize {
		text = norm.NFC.String(text)
	}

	var unsupported []string
	seen := make(map[rune]struct{})
	for _, r := range text {
		if r == ' ' || c.table.Supports(r) {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		unsupported = append(unsupported, string(r))
	}

	if len(unsupported) > 0 {
		err := &UnsupportedError{Chars: unsupported}
		return CheckResult{Error: err.Error(), Unsupported: unsupported}
	}
	return CheckResult{Valid: true}
}

// Encode converts text with the default codec.
func Encode(text string) string { return defaultCodec.Encode(text) }

// Decode converts Braille with the default codec.
func Decode(braille string) string { return defaultCodec.Decode(braille) }

// IsValidBraille checks text against the default codec.
func IsValidBraille(text string) bool { return defaultCodec.IsValidBraille(text) }

// CanConvert pre-checks text against the default codec.
func CanConvert(text string) CheckResult { return defaultCodec.CanConvert(text) }

func lower(r rune) rune {
	return unicode.ToLower(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// letterDigit maps a..j to 1..9,0.
func letterDigit(r rune) rune {
	if r == 'j' {
		return '0'
	}
	return '1' + (r - 'a')
}

// isRunLetter reports whether r decodes as a digit inside a number run.
func isRunLetter(r rune) bool {
	return r >= 'a' && r <= 'j'
}
