package fat

// validNameChar is the legal-character table for short (8.3) names, carried
// over verbatim from the reference implementation this engine's semantics
// are grounded on. Only the printable ASCII subset is legal; control
// characters and most of the shell/glob metacharacters are rejected.
var validNameChar = [256]bool{
	'#': true, '$': true, '%': true, '&': true, '\'': true,
	'(': true, ')': true, '+': true, ',': true, '-': true, '.': true,
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	';': true, '=': true, '@': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'J': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'O': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true,
	'Y': true, 'Z': true,
	'[': true, ']': true, '^': true, '_': true, '`': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true,
	'g': true, 'h': true, 'i': true, 'j': true, 'k': true, 'l': true,
	'm': true, 'n': true, 'o': true, 'p': true, 'q': true, 'r': true,
	's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true,
	'y': true, 'z': true,
	'{': true, '}': true, '~': true,
}

// isValidNameChar reports whether c is legal in a short name. Values outside
// 0-255 (shouldn't occur, since callers only pass decoded bytes) are
// rejected.
func isValidNameChar(c byte) bool {
	return validNameChar[c]
}
