package xo

import "fmt"

// render_html.go implements HTML's title rendering and the shared div
// builder every other HTML field kind (format.go's formatText/Label/
// Decoration/Padding, and htmlValue below) funnels through. Grounded on
// libxo.c's xo_buf_append_div: ensure the line-div is open, indent flatly
// by indentBy (not depth-scaled, unlike XML/JSON tags), emit the class,
// optional data-tag/data-xpath/data-type/data-help attributes, the escaped
// value, and the closing div.

// htmlTitle immediately formats content through printFmt, the same
// immediate-substitution rule Text's textTitle follows, then wraps it in a
// "title" div. The formatted text is known now, so it is eligible for
// Escape, unlike a Value field's still-unresolved conversion specifier.
func htmlTitle(h *Handle, content, printFmt string) {
	htmlDiv(h, "title", "", false, fmt.Sprintf(printFmt, content), true)
}

// htmlValue wraps a Value field's (still-unresolved) printFmt in a "data"
// div tagged with the field's name. The printFmt text is a conversion
// specifier, not caller data, so it is never routed through Escape: the
// actual substituted value is realized later, by emit.go's deferred pass,
// by which point it is already inside the rendered payload and out of this
// renderer's reach. This is the same limitation the original carries.
func htmlValue(h *Handle, name, printFmt string) {
	htmlDiv(h, "data", name, true, printFmt, false)
}

// htmlDiv appends one <div class="class" ...>value</div> element. hasName
// controls whether name-derived attributes (data-tag, and conditionally
// data-xpath/data-type/data-help) are included; text/label/decoration/
// padding divs pass hasName=false. escapeValue controls whether value
// itself is routed through Escape: true for already-resolved text (title,
// label, decoration, padding, literal text), false for a Value field's
// unresolved conversion specifier.
func htmlDiv(h *Handle, class, name string, hasName bool, value string, escapeValue bool) {
	h.lineEnsureOpen()

	pretty := h.flags.has(Pretty)
	if pretty {
		h.fmtBuf.Pad(h.indentBy, ' ')
	}

	h.fmtBuf.AppendString(`<div class="`)
	h.fmtBuf.AppendString(class)
	h.fmtBuf.AppendByte('"')

	if hasName {
		h.fmtBuf.AppendString(` data-tag="`)
		appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), name)
		h.fmtBuf.AppendByte('"')

		if h.flags.has(Xpath) {
			h.fmtBuf.AppendString(` data-xpath="`)
			appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), h.stk.xpath(name))
			h.fmtBuf.AppendByte('"')
		}

		if h.flags.has(Info) && h.info != nil {
			if entry, ok := findInfo(h.info, name); ok {
				if entry.Type != "" {
					h.fmtBuf.AppendString(` data-type="`)
					appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), entry.Type)
					h.fmtBuf.AppendByte('"')
				}
				if entry.Help != "" {
					h.fmtBuf.AppendString(` data-help="`)
					appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), entry.Help)
					h.fmtBuf.AppendByte('"')
				}
			}
		}
	}

	h.fmtBuf.AppendByte('>')
	if escapeValue {
		appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), value)
	} else {
		h.fmtBuf.AppendString(value)
	}
	h.fmtBuf.AppendString("</div>")

	if pretty {
		h.fmtBuf.AppendByte('\n')
	}
}
