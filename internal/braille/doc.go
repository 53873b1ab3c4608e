// Package braille converts between Spanish text and six-dot Unicode Braille.
//
// The package is built around three pieces:
//
//   - [Table]: the immutable symbol table (grapheme → cell sequence) and its
//     derived reverse table
//   - [Codec]: encoder/decoder over a table, with optional NFC normalization
//     and Spanish number runs
//   - [Cell]: a single six-dot pattern in the U+2800 block
//
// # Markers
//
// Three reserved cells are layered on top of the table. [CapitalMarker] (⠨)
// precedes a letter to make it uppercase and applies to the next decoded
// grapheme only. [NumericMarker] (⠼) prefixes digits, which reuse the cells
// of the letters a through j. In number-run mode [LetterSwitch] (⠐) ends a
// run so that a following a..j cell reads as a letter again.
//
// # Example
//
//	out := braille.Encode("Hola 2024")
//	back := braille.Decode(out) // "Hola 2024"
//
//	if chk := braille.CanConvert("hola 😀"); !chk.Valid {
//		fmt.Println(chk.Error) // unsupported characters: 😀
//	}
//
// # Thread Safety
//
// Tables and codecs are read-only after construction. All functions are safe
// for concurrent use and never panic on any input string.
package braille
