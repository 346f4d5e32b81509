package xo

// render_xml.go implements the XML style's Value rendering: a depth-indented
// <name>encode-fmt</name> element, the encode-fmt left unresolved for
// emit.go's deferred substitution pass. Grounded on libxo.c's
// xo_format_value XML case and, for the escape-on-demand element name, on
// titanous-go.xml's marshal.go routing every piece of character data
// through an Escape helper before it reaches the wire.
func xmlValue(h *Handle, name, encodeFmt string) {
	pretty := h.flags.has(Pretty)

	if pretty {
		h.fmtBuf.Pad(h.indentWidth(), ' ')
	}
	h.fmtBuf.AppendByte('<')
	appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), name)
	h.fmtBuf.AppendByte('>')
	h.fmtBuf.AppendString(encodeFmt)
	h.fmtBuf.AppendString("</")
	appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), name)
	h.fmtBuf.AppendByte('>')
	if pretty {
		h.fmtBuf.AppendByte('\n')
	}
}
