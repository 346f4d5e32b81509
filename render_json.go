package xo

import "strings"

// render_json.go implements the JSON style's Value rendering and its
// comma-and-newline separator logic. Grounded on libxo.c's xo_format_prep
// (the NotFirst-driven separator) and xo_format_value's JSON case (the
// quote-policy decision: explicit Q/N field flags win, otherwise a
// trailing 's' in the conversion specifier means "string, so quote it").

// jsonSeparator emits the separator that precedes every value but the
// first within a frame — ",\n" when Pretty, ", " when compact (spec.md
// §4.4) — consulting and then setting the current frame's NotFirst bit.
// Mirrors xo_format_prep.
func jsonSeparator(h *Handle) {
	if h.stk.notFirst() {
		h.fmtBuf.AppendByte(',')
		if h.flags.has(Pretty) {
			h.fmtBuf.AppendByte('\n')
		} else {
			h.fmtBuf.AppendByte(' ')
		}
	}
}

// jsonValue appends a "name": value member. format (encodeFmt) is left with
// its conversion specifier unresolved for emit.go's deferred pass; only the
// decision of whether to wrap it in quotes is made now, since that depends
// on the field's flags and the literal text of the specifier rather than
// the substituted value itself.
func jsonValue(h *Handle, name, encodeFmt string, flags FieldFlags) {
	jsonSeparator(h)

	quote := strings.HasSuffix(encodeFmt, "s")
	switch {
	case flags.has(FieldQuote):
		quote = true
	case flags.has(FieldNoQuote):
		quote = false
	}

	if h.flags.has(Pretty) {
		h.fmtBuf.Pad(h.indentWidth(), ' ')
	}
	h.fmtBuf.AppendByte('"')
	appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), name)
	h.fmtBuf.AppendString(`": `)
	if quote {
		h.fmtBuf.AppendByte('"')
	}
	h.fmtBuf.AppendString(encodeFmt)
	if quote {
		h.fmtBuf.AppendByte('"')
	}
}
