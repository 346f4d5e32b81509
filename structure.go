package xo

// structure.go implements the six structural operations from spec.md §4.4:
// open/close container, list, instance. Each applies the style-dependent
// rendering the spec's table describes (XML and JSON only; Text and HTML
// emit no structural delimiters of their own, deriving shape implicitly
// from field emission) plus a push/pop on the handle's structural stack.
//
// None of these calls carry caller variadic arguments, so unlike Emit they
// never go through the deferred printf-substitution pipeline: each one
// renders straight into the format-work buffer and flushes it to the sink
// immediately.
//
// Grounded on libxo.c's xo_open_container_h/xo_close_container_h family
// (each a small style switch, a depth_change call, and a direct write) and
// on console-slog's group-stack push/pop in Handle.Handle for the "small
// fixed-capacity stack, rolled forward and back around a write" shape.

// flush writes the handle's format-work buffer to the sink and resets it.
// Structural operations use this directly instead of Emit's deferred
// printf pass, since they have no conversion specifiers to resolve.
func (h *Handle) flush() (int, error) {
	if h.fmtBuf.Len() == 0 {
		return 0, nil
	}
	s := h.fmtBuf.String()
	h.fmtBuf.Reset()
	if h.write == nil {
		return 0, nil
	}
	return h.write(s)
}

// structuralIndentDelta reports how much the pretty-print indent counter
// moves for one push/pop of the given frame kind under h's current style.
// XML and JSON increase structural indent for containers and instances;
// JSON (but not XML) also increases it for lists, since a JSON list
// introduces its own "[" nesting level that XML has no equivalent for (XML
// lists are just repeated instance elements with no wrapping tag). Text and
// HTML never carry structural indent (spec.md §4.3's invariant).
func (h *Handle) structuralIndentDelta(kind frameFlags) int {
	switch h.style {
	case Xml:
		if kind == frameList {
			return 0
		}
		return 1
	case Json:
		return 1
	default:
		return 0
	}
}

// padDelim left-pads the next structural delimiter by the current
// structural indent when Pretty is set, per spec.md §4.4's "Pretty-print
// spacing" rule.
func (h *Handle) padDelim() {
	if h.flags.has(Pretty) {
		h.fmtBuf.Pad(h.indentWidth(), ' ')
	}
}

// newlineDelim appends a newline after a structural delimiter when Pretty
// is set.
func (h *Handle) newlineDelim() {
	if h.flags.has(Pretty) {
		h.fmtBuf.AppendByte('\n')
	}
}

// jsonDocumentOpen wraps the outermost container in an unnamed "{" so the
// overall JSON stream is one well-formed document rather than a bare
// "name": value pair. Triggered only on a container's depth 0->1 transition;
// a list or instance opened without an enclosing container renders exactly
// as the original xo_open_list_h/xo_open_instance_h did, with no wrapper.
func (h *Handle) jsonDocumentOpen() {
	if h.style == Json && h.stk.depth == 0 {
		h.fmtBuf.AppendByte('{')
		h.newlineDelim()
	}
}

// jsonDocumentClose emits the matching "}" for jsonDocumentOpen, on the
// depth 1->0 transition.
func (h *Handle) jsonDocumentClose() {
	if h.style == Json && h.stk.depth == 0 {
		h.newlineDelim()
		h.fmtBuf.AppendByte('}')
	}
}

// OpenContainer renders the opening delimiter for a named container against
// the process-default handle. See (*Handle).OpenContainer.
func OpenContainer(name string) (int, error) { return DefaultHandle().OpenContainer(name) }

// OpenContainerH is OpenContainer against h, or the default handle if h is
// nil.
func OpenContainerH(h *Handle, name string) (int, error) { return resolve(h).OpenContainer(name) }

// OpenContainer opens a named container: XML emits "<name>", JSON emits
// "\"name\": {" (preceded by a comma separator if a sibling was already
// emitted in the enclosing frame), Text and HTML emit nothing. Every style
// pushes a container frame onto h's structural stack.
func (h *Handle) OpenContainer(name string) (int, error) {
	switch h.style {
	case Xml:
		h.padDelim()
		h.fmtBuf.AppendByte('<')
		appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), name)
		h.fmtBuf.AppendByte('>')
		h.newlineDelim()
	case Json:
		h.jsonDocumentOpen()
		jsonSeparator(h)
		h.padDelim()
		h.fmtBuf.AppendByte('"')
		appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), name)
		h.fmtBuf.AppendString(`": {`)
		h.newlineDelim()
	}
	h.stk.push(name, h.structuralIndentDelta(0), 0, h.keepFrameNames())
	return h.flush()
}

// CloseContainer closes the most recently opened container against the
// process-default handle. See (*Handle).CloseContainer.
func CloseContainer(name string) (int, error) { return DefaultHandle().CloseContainer(name) }

// CloseContainerH is CloseContainer against h, or the default handle if h
// is nil.
func CloseContainerH(h *Handle, name string) (int, error) { return resolve(h).CloseContainer(name) }

// CloseContainer closes a named container: XML emits "</name>", JSON emits
// "}" (with a trailing newline once the stack returns to depth 0, marking
// the end of the top-level document), Text and HTML emit nothing.
func (h *Handle) CloseContainer(name string) (int, error) {
	h.stk.pop(name, -h.structuralIndentDelta(0), 0, h.flags.has(Warn), h.warnf())

	switch h.style {
	case Xml:
		h.padDelim()
		h.fmtBuf.AppendString("</")
		appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), name)
		h.fmtBuf.AppendByte('>')
		h.newlineDelim()
	case Json:
		h.newlineDelim()
		h.padDelim()
		h.fmtBuf.AppendByte('}')
		if h.stk.depth == 0 {
			h.jsonDocumentClose()
			h.fmtBuf.AppendByte('\n')
		}
		h.stk.notFirst()
	}
	return h.flush()
}

// OpenList opens a named list against the process-default handle. See
// (*Handle).OpenList.
func OpenList(name string) (int, error) { return DefaultHandle().OpenList(name) }

// OpenListH is OpenList against h, or the default handle if h is nil.
func OpenListH(h *Handle, name string) (int, error) { return resolve(h).OpenList(name) }

// OpenList opens a named list: JSON emits "\"name\": [" (with the same
// leading separator as a container); XML has no list-wrapper element of
// its own (a list is just repeated instance elements, see
// structuralIndentDelta), so it emits nothing. Text and HTML emit nothing.
func (h *Handle) OpenList(name string) (int, error) {
	if h.style == Json {
		jsonSeparator(h)
		h.padDelim()
		h.fmtBuf.AppendByte('"')
		appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), name)
		h.fmtBuf.AppendString(`": [`)
		h.newlineDelim()
	}
	h.stk.push(name, h.structuralIndentDelta(frameList), frameList, h.keepFrameNames())
	return h.flush()
}

// CloseList closes the most recently opened list against the process-
// default handle. See (*Handle).CloseList.
func CloseList(name string) (int, error) { return DefaultHandle().CloseList(name) }

// CloseListH is CloseList against h, or the default handle if h is nil.
func CloseListH(h *Handle, name string) (int, error) { return resolve(h).CloseList(name) }

// CloseList closes a named list: JSON emits "]"; XML, Text, and HTML emit
// nothing. Unlike the original xo_close_list_h, which discarded the sink's
// write result, this always returns it (spec.md §9's "discarding rc" is
// treated as a bug per DESIGN.md).
func (h *Handle) CloseList(name string) (int, error) {
	h.stk.pop(name, -h.structuralIndentDelta(frameList), frameList, h.flags.has(Warn), h.warnf())

	if h.style == Json {
		h.newlineDelim()
		h.padDelim()
		h.fmtBuf.AppendByte(']')
		h.stk.notFirst()
	}
	return h.flush()
}

// OpenInstance opens a named list instance against the process-default
// handle. See (*Handle).OpenInstance.
func OpenInstance(name string) (int, error) { return DefaultHandle().OpenInstance(name) }

// OpenInstanceH is OpenInstance against h, or the default handle if h is
// nil.
func OpenInstanceH(h *Handle, name string) (int, error) { return resolve(h).OpenInstance(name) }

// OpenInstance opens one instance within a list: XML emits "<name>" (the
// repeated element IS the list's structure in XML); JSON emits "{"
// unnamed, since the enclosing list already carries the name; Text and
// HTML emit nothing.
func (h *Handle) OpenInstance(name string) (int, error) {
	switch h.style {
	case Xml:
		h.padDelim()
		h.fmtBuf.AppendByte('<')
		appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), name)
		h.fmtBuf.AppendByte('>')
		h.newlineDelim()
	case Json:
		jsonSeparator(h)
		h.padDelim()
		h.fmtBuf.AppendByte('{')
		h.newlineDelim()
	}
	h.stk.push(name, h.structuralIndentDelta(frameInstance), frameInstance, h.keepFrameNames())
	return h.flush()
}

// CloseInstance closes the most recently opened instance against the
// process-default handle. See (*Handle).CloseInstance.
func CloseInstance(name string) (int, error) { return DefaultHandle().CloseInstance(name) }

// CloseInstanceH is CloseInstance against h, or the default handle if h is
// nil.
func CloseInstanceH(h *Handle, name string) (int, error) { return resolve(h).CloseInstance(name) }

// CloseInstance closes one instance within a list: XML emits "</name>",
// JSON emits "}", Text and HTML emit nothing.
func (h *Handle) CloseInstance(name string) (int, error) {
	h.stk.pop(name, -h.structuralIndentDelta(frameInstance), frameInstance, h.flags.has(Warn), h.warnf())

	switch h.style {
	case Xml:
		h.padDelim()
		h.fmtBuf.AppendString("</")
		appendMaybeEscaped(&h.fmtBuf, h.style, h.flags.has(Escape), name)
		h.fmtBuf.AppendByte('>')
		h.newlineDelim()
	case Json:
		h.newlineDelim()
		h.padDelim()
		h.fmtBuf.AppendByte('}')
		h.stk.notFirst()
	}
	return h.flush()
}
