package xo

import "fmt"

// render_text.go implements the Text style's two field kinds that need more
// than a verbatim append: Title (snprintf'd immediately) and Value (left
// with its printFmt unresolved for emit.go's deferred pass). Everything
// else Text does lives inline in format.go, since it is a one-line verbatim
// append with no Text-specific wrinkle worth a named function.

// textTitle immediately formats content through printFmt and appends the
// result. Unlike Value, a Title's content is a Go string known at format
// time, not a caller variadic argument, so there is nothing to defer.
// Mirrors xo_format_title's immediate snprintf.
func textTitle(h *Handle, content, printFmt string) {
	h.fmtBuf.AppendString(fmt.Sprintf(printFmt, content))
}

// textValue appends printFmt verbatim; its conversion specifier(s) are
// resolved later, against the caller's variadic arguments, in one pass
// across the whole format-work buffer (emit.go).
func textValue(h *Handle, printFmt string) {
	h.fmtBuf.AppendString(printFmt)
}
