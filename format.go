package xo

// format.go is the per-field rendering dispatch shared by every style: it
// decides, from a parsed fieldSpec's Kind, which style-specific renderer in
// render_text.go / render_xml.go / render_json.go / render_html.go to call,
// and handles the cross-style concerns from spec.md §4.5/§4.6 that do not
// belong to any one style: the HTML line-div lifecycle, and the trailing
// Colon/Ws field flags.
//
// Grounded directly on libxo.c's xo_format_value/_title/_label/_decoration/
// _padding family, each of which is a small switch on xo_style; and on
// console-slog's per-kind encode* methods on encoder (encodeHeader,
// encodeLevel, encodeMessage, ...), which is the same "one Handle-ish
// receiver, one method per semantic field kind" shape translated from slog
// attributes to brace-field kinds.

// indentWidth returns the %*s-style padding width used before XML/JSON
// structural delimiters and field tags: the stack's structural indent
// times indentBy when Pretty is set, zero otherwise. Mirrors xo_indent().
func (h *Handle) indentWidth() int {
	if !h.flags.has(Pretty) {
		return 0
	}
	return h.stk.indent * h.indentBy
}

// lineEnsureOpen opens an HTML "line" div if one is not already open. It is
// a no-op for every other style. Mirrors xo_line_ensure_open.
func (h *Handle) lineEnsureOpen() {
	if h.flags.has(divOpen) {
		return
	}
	if h.style != Html {
		return
	}
	h.flags |= divOpen
	h.fmtBuf.AppendString(`<div class="line">`)
	if h.flags.has(Pretty) {
		h.fmtBuf.AppendByte('\n')
	}
}

// lineClose closes an HTML "line" div (opening one first if needed, so that
// a bare "\n" with no preceding fields still produces an empty line) or
// appends a literal newline in Text. It is a no-op for XML/JSON, matching
// xo_line_close's switch, which has no case for those styles.
func (h *Handle) lineClose() {
	switch h.style {
	case Html:
		if !h.flags.has(divOpen) {
			h.lineEnsureOpen()
		}
		h.flags &^= divOpen
		h.fmtBuf.AppendString("</div>")
		if h.flags.has(Pretty) {
			h.fmtBuf.AppendByte('\n')
		}
	case Text:
		h.fmtBuf.AppendByte('\n')
	}
}

// formatText renders one literal run (or the contents of an {{escaped}}
// span) per spec.md §4.6: verbatim in Text, a "text" div in HTML, nothing
// in XML/JSON (they are data formats with no room for free-standing
// literal text outside fields).
func (h *Handle) formatText(str string) {
	switch h.style {
	case Text:
		appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), str)
	case Html:
		htmlDiv(h, "text", "", false, str, true)
	}
}

// formatNewline handles the '\n' span kind.
func (h *Handle) formatNewline() {
	h.lineClose()
}

// formatField dispatches one parsed brace field to its style-specific
// renderer, then emits the trailing Colon/Ws decorations. Mirrors the tail
// of libxo.c's xo_emit_hv field-handling block.
func (h *Handle) formatField(fs fieldSpec) {
	switch fs.kind {
	case KindTitle:
		h.formatTitle(fs.content, fs.printFmt)
	case KindLabel:
		h.formatLabel(fs.content)
	case KindValue:
		h.formatValue(fs.content, fs.printFmt, fs.encodeFmt, fs.flags)
	case KindDecoration:
		h.formatDecoration(fs.content)
	case KindPadding:
		h.formatPadding(fs.content)
	}

	if fs.flags.has(FieldColon) {
		h.formatDecoration(":")
	}
	if fs.flags.has(FieldWs) {
		h.formatPadding(" ")
	}
}

// formatTitle renders a Title field: content is snprintf-formatted through
// printFmt immediately (not deferred to the final printf pass, unlike
// Value), matching xo_format_title.
func (h *Handle) formatTitle(content, printFmt string) {
	switch h.style {
	case Text:
		textTitle(h, content, printFmt)
	case Html:
		htmlTitle(h, content, printFmt)
	}
}

// formatLabel renders a Label field: verbatim text surrounding a value.
func (h *Handle) formatLabel(content string) {
	switch h.style {
	case Text:
		appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), content)
	case Html:
		htmlDiv(h, "label", "", false, content, true)
	}
}

// formatDecoration renders a Decoration field: non-data punctuation.
func (h *Handle) formatDecoration(content string) {
	switch h.style {
	case Text:
		h.fmtBuf.AppendString(content)
	case Html:
		htmlDiv(h, "decoration", "", false, content, true)
	}
}

// formatPadding renders a Padding field: column-alignment whitespace.
func (h *Handle) formatPadding(content string) {
	switch h.style {
	case Text:
		h.fmtBuf.AppendString(content)
	case Html:
		htmlDiv(h, "padding", "", false, content, true)
	}
}

// formatValue renders a Value field. The rendered fragment still contains
// the unresolved printf conversion specifier (printFmt/encodeFmt); the
// caller's variadic argument for this field is substituted later, in one
// pass, by the emission driver (spec.md §4.7, the "two-buffer pipeline"
// from §9).
func (h *Handle) formatValue(name, printFmt, encodeFmt string, flags FieldFlags) {
	if flags.has(FieldHide) && h.style == Text {
		return
	}

	switch h.style {
	case Text:
		textValue(h, printFmt)
	case Html:
		htmlValue(h, name, printFmt)
	case Xml:
		xmlValue(h, name, encodeFmt)
	case Json:
		jsonValue(h, name, encodeFmt, flags)
	}
}
