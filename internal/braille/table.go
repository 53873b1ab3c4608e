package braille

import (
	"fmt"
	"unicode/utf8"
)

const (
	// CapitalMarker makes the next decoded letter uppercase.
	CapitalMarker = '⠨'
	// NumericMarker prefixes every digit cell.
	NumericMarker = '⠼'
	// LetterSwitch closes a number run before a letter a..j. It only ever
	// appears as the first cell of a longer value.
	LetterSwitch = '⠐'
	// BlankCell is the empty pattern, used for the space character.
	BlankCell = '⠀'
)

// Entry maps one source grapheme to its cell sequence.
type Entry struct {
	Source rune
	Cells  string
}

// spanishEntries is the canonical table. Order matters: when two sources
// share a cell sequence, the earlier entry is what Decode produces.
var spanishEntries = []Entry{
	{'a', "⠁"}, {'b', "⠃"}, {'c', "⠉"}, {'d', "⠙"}, {'e', "⠑"},
	{'f', "⠋"}, {'g', "⠛"}, {'h', "⠓"}, {'i', "⠊"}, {'j', "⠚"},
	{'k', "⠅"}, {'l', "⠇"}, {'m', "⠍"}, {'n', "⠝"}, {'ñ', "⠻"},
	{'o', "⠕"}, {'p', "⠏"}, {'q', "⠟"}, {'r', "⠗"}, {'s', "⠎"},
	{'t', "⠞"}, {'u', "⠥"}, {'v', "⠧"}, {'w', "⠺"}, {'x', "⠭"},
	{'y', "⠽"}, {'z', "⠵"},

	{'á', "⠷"}, {'é', "⠮"}, {'í', "⠌"}, {'ó', "⠬"}, {'ú', "⠾"},
	{'ü', "⠳"},

	{'1', "⠼⠁"}, {'2', "⠼⠃"}, {'3', "⠼⠉"}, {'4', "⠼⠙"}, {'5', "⠼⠑"},
	{'6', "⠼⠋"}, {'7', "⠼⠛"}, {'8', "⠼⠓"}, {'9', "⠼⠊"}, {'0', "⠼⠚"},

	{' ', "⠀"},
	{'.', "⠄"}, {',', "⠂"}, {';', "⠆"}, {':', "⠒"},
	{'?', "⠢"}, {'¿', "⠢"}, {'!', "⠖"}, {'¡', "⠖"},
	{'-', "⠤"}, {'(', "⠐⠣"}, {')', "⠐⠜"},
	{'"', "⠦"}, {'\'', "⠄"}, {'«', "⠦"}, {'»', "⠴"},

	{'+', "⠐⠖"}, {'*', "⠡"}, {'×', "⠡"}, {'/', "⠸⠌"}, {'÷', "⠸⠌"},
	{'=', "⠶"}, {'<', "⠐⠅"}, {'>', "⠨⠂"}, {'%', "⠸⠴"},
	{'@', "⠈⠁"}, {'$', "⠈⠎"}, {'€', "⠈⠑"}, {'&', "⠯"},
	{'[', "⠷"}, {']', "⠾"}, {'{', "⠐⠷"}, {'}', "⠐⠾"},
	{'\\', "⠸⠡"}, {'|', "⠸⠳"}, {'~', "⠈⠱"}, {'^', "⠈⠢"},
	{'°', "⠴"},
}

var spanish = mustTable(spanishEntries)

// Spanish returns the canonical Spanish symbol table.
func Spanish() *Table { return spanish }

// Table is an immutable symbol table with its reverse index.
type Table struct {
	entries []Entry
	forward map[rune]string
	reverse map[string]rune
	cells   map[rune]struct{}
	maxSeq  int
}

// NewTable validates entries and builds the forward and reverse indexes.
// Every value must be a non-empty run of Braille cells, keys must be
// lowercase and unique, and no marker may be a standalone value.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, len(entries)),
		forward: make(map[rune]string, len(entries)),
		reverse: make(map[string]rune, len(entries)),
		cells:   make(map[rune]struct{}),
	}
	copy(t.entries, entries)

	for _, e := range entries {
		if e.Cells == "" {
			return nil, fmt.Errorf("%w: empty value for %q", ErrMalformedTable, e.Source)
		}
		if _, dup := t.forward[e.Source]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrMalformedTable, e.Source)
		}
		if e.Source != lower(e.Source) {
			return nil, fmt.Errorf("%w: key %q is not lowercase", ErrMalformedTable, e.Source)
		}
		for _, r := range e.Cells {
			if !IsCell(r) {
				return nil, fmt.Errorf("%w: %q maps to non-cell %q", ErrMalformedTable, e.Source, r)
			}
			t.cells[r] = struct{}{}
		}
		if e.Cells == string(CapitalMarker) || e.Cells == string(NumericMarker) || e.Cells == string(LetterSwitch) {
			return nil, fmt.Errorf("%w: %q maps to a reserved marker", ErrMalformedTable, e.Source)
		}

		t.forward[e.Source] = e.Cells
		if _, taken := t.reverse[e.Cells]; !taken {
			t.reverse[e.Cells] = e.Source
		}
		if n := utf8.RuneCountInString(e.Cells); n > t.maxSeq {
			t.maxSeq = n
		}
	}
	t.cells[CapitalMarker] = struct{}{}
	return t, nil
}

func mustTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the cell sequence for r exactly as given.
func (t *Table) Lookup(r rune) (string, bool) {
	s, ok := t.forward[r]
	return s, ok
}

// Reverse returns the source grapheme for a complete cell sequence.
func (t *Table) Reverse(cells string) (rune, bool) {
	r, ok := t.reverse[cells]
	return r, ok
}

// Supports reports whether r maps directly or through its lowercase form.
func (t *Table) Supports(r rune) bool {
	if _, ok := t.forward[r]; ok {
		return true
	}
	_, ok := t.forward[lower(r)]
	return ok
}

// KnownCell reports whether r occurs in some value or is the capital marker.
func (t *Table) KnownCell(r rune) bool {
	_, ok := t.cells[r]
	return ok
}

// MaxSequence is the length in cells of the longest value.
func (t *Table) MaxSequence() int { return t.maxSeq }

// Entries returns a copy of the table in its canonical order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// match finds the longest value that prefixes cells.
func (t *Table) match(cells []rune) (rune, int) {
	n := t.maxSeq
	if len(cells) < n {
		n = len(cells)
	}
	for ; n > 0; n-- {
		if src, ok := t.reverse[string(cells[:n])]; ok {
			return src, n
		}
	}
	return 0, 0
}
