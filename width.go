package termpanel

import "github.com/unilibs/uniwidth"

// runeWidth returns the number of columns a rune occupies: 2 for wide
// characters (CJK, fullwidth forms, emoji), 0 for zero-width marks and
// control characters, 1 otherwise.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune reports whether the rune occupies two columns and therefore
// needs a spacer cell.
func isWideRune(r rune) bool {
	return runeWidth(r) == 2
}

// StringWidth returns the total display width of a string in columns.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
