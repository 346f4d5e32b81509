package xo

import "fmt"

// emit.go implements the emission driver from spec.md §4.7: walk the format
// string once, dispatching each span to the style renderer appropriate for
// its kind (format.go/render_*.go), accumulating rendered fragments — often
// still carrying unresolved printf conversion specifiers — into the
// format-work buffer. After the walk, a single printf-style substitution
// pass consumes the caller's variadic arguments against that buffer and
// writes the result into the data buffer, which is then handed to the
// sink. This two-buffer split (spec.md §9) is what lets renderers freely
// append conversion specifiers that only the final pass resolves.
//
// Grounded on libxo.c's xo_emit_hv (the parse-then-vsnprintf pipeline this
// function embodies) and on console-slog's Handle method, which similarly
// walks a parsed token slice once, accumulating into a buffer, before a
// single write to its io.Writer.
//
// The C API exposes xo_emit/xo_emit_h/xo_emit_hv (plain varargs, explicit
// handle, and va_list forms). Go's variadic parameters already are the
// va_list equivalent, so there is no separate "from a va_list" form to
// port: Emit and EmitH below cover the "handle-omitting" and
// "handle-taking" halves of the C API's convention, and (*Handle).Emit
// covers both at once as the idiomatic method form.

// Emit renders format against the process-default handle, substituting
// args per the brace fields it contains. See (*Handle).Emit for the full
// contract.
func Emit(format string, args ...any) (int, error) {
	return DefaultHandle().Emit(format, args...)
}

// EmitH renders format against h, or the process-default handle if h is
// nil, per spec.md §6's "all public functions accept a null handle to mean
// the default" convention.
func EmitH(h *Handle, format string, args ...any) (int, error) {
	return resolve(h).Emit(format, args...)
}

// noopWarn discards format-string anomaly reports; used when a handle's
// Warn flag is unset so the parser never has to branch on whether warnings
// are wanted.
func noopWarn(string, ...any) {}

// Emit walks format per spec.md §4.5, dispatching each span to h's current
// style's renderer (format.go), then substitutes args against the
// accumulated format-work buffer in one pass and writes the rendered
// payload to h's sink.
//
// Returns the number of bytes the sink accepted, or a negative value with a
// non-nil error if the data buffer could not grow enough to hold the
// rendered payload (spec.md §7's allocation-failure kind). A sink error is
// propagated as-is: no retry.
func (h *Handle) Emit(format string, args ...any) (int, error) {
	h.fmtBuf.Reset()

	warn := noopWarn
	if h.flags.has(Warn) {
		warn = h.warn
	}

	rest := format
	for rest != "" {
		var sp span
		sp, rest = nextSpan(rest, h.formatter, warn)
		switch sp.kind {
		case spanLiteral, spanEscaped:
			h.formatText(sp.text)
		case spanNewline:
			h.formatNewline()
		case spanField:
			h.formatField(sp.field)
		}
	}

	// The format-work buffer may still hold %-verbs the renderers left
	// unresolved (Value fields' printFmt/encodeFmt). One fmt.Sprintf pass
	// resolves them all at once against the caller's variadic arguments,
	// exactly as xo_emit_hv defers to vsnprintf for the same purpose.
	rendered := fmt.Sprintf(h.fmtBuf.String(), args...)

	// Writing into the data buffer through AppendString (rather than
	// simply using the Go string `rendered` as the sink payload) keeps the
	// two-buffer split real: growth is computed fresh, every time, against
	// the buffer's *current* capacity (buffer.go's EnsureRoom). This is
	// what fixes the §9 "xo_printf retry sizing" bug — the original
	// recomputed the vsnprintf retry's size argument against the
	// pre-growth buffer, truncating the second attempt. There is no
	// "stale size" here to reuse by mistake: a failed EnsureRoom drops the
	// whole append rather than writing a truncated prefix, so a caller
	// never sees partial output silently passed off as complete.
	h.dataBuf.Reset()
	before := h.dataBuf.Len()
	h.dataBuf.AppendString(rendered)
	if h.dataBuf.Len()-before != len(rendered) {
		return -1, wrapAlloc("data buffer", len(rendered))
	}

	if h.write == nil {
		return len(rendered), nil
	}
	n, err := h.write(h.dataBuf.String())
	h.dataBuf.Reset()
	return n, err
}
