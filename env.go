package xo

import "strconv"

// env.go implements the XO_OPTIONS environment-variable option parser from
// spec.md §6, renamed from the original's LIBXO_OPTIONS to match this
// module's name (the character encoding is unchanged). spec.md §1
// explicitly scopes "process-wide option parsing from an environment
// variable" out of the core as "just a thin option parser producing a
// configuration record" — this file is exactly that, with no dependency on
// the rest of the package beyond the Style/Flags types it produces.
//
// Grounded on libxo.c's xo_parse_args option-character scan.

// parseEnvOptions scans s, the value of XO_OPTIONS, for option characters:
//
//	H, J, T, X   - select style: Html, Json, Text, Xml
//	P, W, I, x   - set Pretty, Warn, Info, Xpath
//	i<digits>    - set indent-by to the decimal integer immediately following
//
// Unknown characters are ignored. The style defaults to Text and indent-by
// to DefaultIndentBy if never named.
func parseEnvOptions(s string) (Style, Flags, int) {
	style := Text
	var flags Flags
	indentBy := DefaultIndentBy

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'H':
			style = Html
		case 'J':
			style = Json
		case 'T':
			style = Text
		case 'X':
			style = Xml
		case 'P':
			flags |= Pretty
		case 'W':
			flags |= Warn
		case 'I':
			flags |= Info
		case 'x':
			flags |= Xpath
		case 'i':
			j := i + 1
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			if j > i+1 {
				if n, err := strconv.Atoi(s[i+1 : j]); err == nil {
					indentBy = n
				}
				i = j - 1
			}
		default:
			// Unknown characters are ignored.
		}
	}

	return style, flags, indentBy
}
