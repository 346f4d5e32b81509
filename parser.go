package xo

// parser.go implements the brace-field grammar from spec.md §4.5:
//
//	span        := literal-run | escaped-braces | brace-field | newline
//	escaped-braces := '{{' chars-until-'}}' '}}'
//	newline     := '\n'
//	brace-field := '{' modifiers [':' content] ['/' print-fmt ['/' encode-fmt]] '}'
//	modifiers   := modifier-char*
//
// Grounded on console-slog's parseFormat (handler.go), which scans a
// similar small grammar (percent verbs, not brace fields) into typed
// tokens in a single forward pass with no backtracking, and on
// libxo.c's xo_emit_hv, which performs the same field-splitting inline in
// its per-call loop rather than pre-tokenizing. We follow the latter's
// "parse fresh every call" structure (format strings are call-scoped
// arguments in this API, not fixed at handle-construction time the way
// console-slog's HeaderFormat is), exposing it as nextSpan so emit.go can
// drive the walk.

type spanKind int

const (
	spanLiteral spanKind = iota
	spanEscaped
	spanNewline
	spanField
)

// fieldSpec is one parsed brace field.
type fieldSpec struct {
	kind       Kind
	content    string
	printFmt   string
	encodeFmt  string
	flags      FieldFlags
}

// span is one classified slice of a format string.
type span struct {
	kind  spanKind
	text  string // literal/escaped text payload
	field fieldSpec
}

// nextSpan extracts the first span from fmtStr and returns it along with
// the unconsumed remainder. warn is called (only when the handle's Warn
// flag is set, which the caller arranges by passing a no-op warn
// otherwise) on format-string anomalies: multiple style letters, an
// unknown modifier.
func nextSpan(fmtStr string, formatter FormatterFunc, warn func(string, ...any)) (span, string) {
	if fmtStr == "" {
		return span{}, ""
	}

	if fmtStr[0] == '\n' {
		return span{kind: spanNewline}, fmtStr[1:]
	}

	if fmtStr[0] != '{' {
		i := 0
		for i < len(fmtStr) && fmtStr[i] != '{' && fmtStr[i] != '\n' {
			i++
		}
		return span{kind: spanLiteral, text: fmtStr[:i]}, fmtStr[i:]
	}

	// '{{' ... '}}' is an escaped literal.
	if len(fmtStr) > 1 && fmtStr[1] == '{' {
		rest := fmtStr[2:]
		end := indexDoubleBrace(rest)
		if end == -1 {
			// Unterminated escape: treat the remainder as the escaped
			// text, best-effort, per spec.md §7's "format-string
			// anomalies are advisory."
			warn("unterminated {{escaped}} field: %s", fmtStr)
			return span{kind: spanEscaped, text: rest}, ""
		}
		return span{kind: spanEscaped, text: rest[:end]}, rest[end+2:]
	}

	// A real brace field. Find its closing '}' first so the formatter
	// hook can see the raw contents (spec.md §4.5's "raw contents of the
	// brace field, excluding the braces").
	end := indexByte(fmtStr[1:], '}')
	if end == -1 {
		warn("unterminated brace field: %s", fmtStr)
		// Best-effort: treat the rest of the string as the field body
		// with no closing brace.
		raw := fmtStr[1:]
		fs := parseFieldBody(raw, warn)
		return span{kind: spanField, field: fs}, ""
	}
	raw := fmtStr[1 : 1+end]
	rest := fmtStr[1+end+1:]

	if formatter != nil {
		if repl, ok := formatter(raw); ok {
			raw = repl
		}
	}

	fs := parseFieldBody(raw, warn)
	return span{kind: spanField, field: fs}, rest
}

// parseFieldBody parses the inside of a brace field (without the
// surrounding braces): modifiers [':' content] ['/' print-fmt ['/'
// encode-fmt]].
func parseFieldBody(body string, warn func(string, ...any)) fieldSpec {
	var fs fieldSpec
	var styleSeen bool

	i := 0
modifiers:
	for i < len(body) {
		switch body[i] {
		case ':', '/':
			break modifiers
		case 'D':
			if styleSeen {
				warn("format string uses multiple styles: %s", body)
			}
			fs.kind, styleSeen = KindDecoration, true
		case 'L':
			if styleSeen {
				warn("format string uses multiple styles: %s", body)
			}
			fs.kind, styleSeen = KindLabel, true
		case 'P':
			if styleSeen {
				warn("format string uses multiple styles: %s", body)
			}
			fs.kind, styleSeen = KindPadding, true
		case 'T':
			if styleSeen {
				warn("format string uses multiple styles: %s", body)
			}
			fs.kind, styleSeen = KindTitle, true
		case 'V':
			if styleSeen {
				warn("format string uses multiple styles: %s", body)
			}
			fs.kind, styleSeen = KindValue, true
		case 'C':
			fs.flags |= FieldColon
		case 'W':
			fs.flags |= FieldWs
		case 'H':
			fs.flags |= FieldHide
		case 'Q':
			fs.flags |= FieldQuote
		case 'N':
			fs.flags |= FieldNoQuote
		default:
			warn("format string uses unknown modifier: %c in %s", body[i], body)
		}
		i++
	}

	if i < len(body) && body[i] == ':' {
		i++
		start := i
		for i < len(body) && body[i] != '/' {
			i++
		}
		fs.content = body[start:i]
	}

	if i < len(body) && body[i] == '/' {
		i++
		start := i
		for i < len(body) && body[i] != '/' {
			i++
		}
		fs.printFmt = body[start:i]
	}

	if i < len(body) && body[i] == '/' {
		i++
		fs.encodeFmt = body[i:]
	}

	if fs.printFmt == "" {
		fs.printFmt = "%s"
	}
	if fs.encodeFmt == "" {
		fs.encodeFmt = fs.printFmt
	}

	return fs
}

// indexDoubleBrace finds the first occurrence of "}}" in s.
func indexDoubleBrace(s string) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '}' && s[i+1] == '}' {
			return i
		}
	}
	return -1
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
