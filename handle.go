package xo

import (
	"io"
	"os"
	"sync"
)

// WriteFunc is the sink's write callback: it receives one fully rendered,
// NUL-free emission payload and reports how many bytes were accepted (or an
// error). It is invoked at most once per Emit/EmitH call.
type WriteFunc func(s string) (int, error)

// CloseFunc is the sink's close callback, invoked at most once, when a
// Handle with CloseFp set is destroyed.
type CloseFunc func() error

// FormatterFunc is a caller-supplied hook that gets the raw contents of a
// brace field (the text between '{' and the matching '}', before modifier
// parsing) and may return a replacement string to parse in its place. When
// ok is false the field is parsed unchanged.
type FormatterFunc func(raw string) (replacement string, ok bool)

// Handle is per-stream emission state: style, flags, indentation, sink
// callbacks, an optional formatter hook, an optional info table, the
// format-work and data buffers, and the structural stack. A Handle is not
// safe for concurrent use from multiple goroutines (spec.md §5); separate
// Handles are fully independent.
//
// Grounded on console-slog's Handler (a long-lived, mutable-in-place record
// holding output writer, options, and reusable buffers) generalized from
// "one slog.Handler per colorized console stream" to "one emission target
// per rendering style."
type Handle struct {
	style   Style
	flags   Flags
	indentBy int

	fmtBuf  buffer
	dataBuf buffer
	stk     *stack

	info      []InfoEntry
	formatter FormatterFunc

	write WriteFunc
	close CloseFunc

	warnOut io.Writer
}

// New creates a Handle with the given style and flags, writing to standard
// output by default.
func New(style Style, flags Flags) *Handle {
	h := &Handle{
		style:    style,
		flags:    flags &^ divOpen,
		indentBy: DefaultIndentBy,
		stk:      newStack(DefaultStackDepth),
	}
	h.write = defaultWriter(os.Stdout)
	return h
}

// NewToFile creates a Handle wired to write to f. The handle's CloseFp flag
// is set automatically, since the file's lifetime is now owned by the
// handle: (*Handle).Destroy will close f.
func NewToFile(f *os.File, style Style, flags Flags) *Handle {
	h := New(style, flags|CloseFp)
	h.write = defaultWriter(f)
	h.close = f.Close
	return h
}

// defaultWriter adapts an io.Writer into a WriteFunc.
func defaultWriter(w io.Writer) WriteFunc {
	return func(s string) (int, error) {
		return io.WriteString(w, s)
	}
}

// Destroy releases the handle's buffers and structural stack and, if
// CloseFp is set, invokes the sink's close callback. Resources requiring
// scoped release (spec.md §5) all go away here.
func (h *Handle) Destroy() error {
	h.fmtBuf.Reset()
	h.dataBuf.Reset()
	h.stk = nil
	if h.flags.has(CloseFp) && h.close != nil {
		return h.close()
	}
	return nil
}

// Style reports the handle's current output style.
func (h *Handle) Style() Style { return h.style }

// SetStyle changes the handle's output style. Fixed across any one Emit
// call, mutable between calls, per spec.md §3.
func (h *Handle) SetStyle(s Style) { h.style = s }

// Flags reports the handle's current flag set.
func (h *Handle) Flags() Flags { return h.flags }

// SetFlags ORs bits into the handle's flag set. Setting already-set bits is
// a no-op (spec.md §8 idempotence property). divOpen is internal and is
// silently masked out: callers cannot set it directly.
func (h *Handle) SetFlags(f Flags) { h.flags |= f &^ divOpen }

// ClearFlags ANDs bits out of the handle's flag set. Clearing already-unset
// bits is a no-op.
func (h *Handle) ClearFlags(f Flags) { h.flags &^= f &^ divOpen }

// IndentBy reports the number of spaces used per indentation level.
func (h *Handle) IndentBy() int { return h.indentBy }

// SetIndentBy sets the number of spaces used per indentation level when
// Pretty is set. The default is DefaultIndentBy.
func (h *Handle) SetIndentBy(n int) {
	if n < 0 {
		n = 0
	}
	h.indentBy = n
}

// SetInfo installs a field-name -> {type, help} lookup table used to
// annotate HTML output when Info is set. table must already be sorted by
// Name; SetInfo panics if it is not, since the spec relies on this
// invariant for binary search and a silently-wrong lookup is worse than a
// loud failure at setup time.
func (h *Handle) SetInfo(table []InfoEntry) {
	if !sortedByName(table) {
		panic("xo: SetInfo table must be sorted by Name")
	}
	h.info = table
}

// SetFormatter installs a caller-supplied pre-format hook, called once per
// brace field with that field's raw (unparsed) contents.
func (h *Handle) SetFormatter(f FormatterFunc) { h.formatter = f }

// SetWriter installs the sink's write and close callbacks directly, the Go
// analogue of wiring an opaque pointer plus two C function pointers.
func (h *Handle) SetWriter(write WriteFunc, closeFn CloseFunc) {
	h.write = write
	h.close = closeFn
}

// SetWarnWriter redirects warning output (spec.md §4.8); the default is
// os.Stderr.
func (h *Handle) SetWarnWriter(w io.Writer) { h.warnOut = w }

// keepFrameNames reports whether the handle's current flags require
// structural frames to retain their names (for XPath breadcrumbs or
// warning diagnostics).
func (h *Handle) keepFrameNames() bool {
	return h.flags.has(Xpath) || h.flags.has(Warn)
}

// The process-default Handle, lazily initialized on first use from
// XO_OPTIONS (see env.go), and reset when destroyed, per spec.md §5.
var (
	defaultMu     sync.Mutex
	defaultHandle *Handle
)

// DefaultHandle returns the process-wide default Handle, initializing it
// from the XO_OPTIONS environment variable on first use if it has not been
// initialized (or has been reset by a prior DestroyDefault) yet.
func DefaultHandle() *Handle {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultHandle == nil {
		style, flags, indentBy := parseEnvOptions(os.Getenv("XO_OPTIONS"))
		defaultHandle = New(style, flags)
		defaultHandle.indentBy = indentBy
	}
	return defaultHandle
}

// DestroyDefault destroys the process-default handle and clears the
// one-shot initialized flag, so the next call to DefaultHandle (directly,
// or via any package-level function) re-initializes it from XO_OPTIONS.
func DestroyDefault() error {
	defaultMu.Lock()
	h := defaultHandle
	defaultHandle = nil
	defaultMu.Unlock()
	if h == nil {
		return nil
	}
	return h.Destroy()
}

// resolve returns h if non-nil, else the process-default handle. Every
// public, handle-taking function in this package funnels its handle
// argument through resolve, implementing the "null handle means use the
// default" convention from spec.md §6.
func resolve(h *Handle) *Handle {
	if h != nil {
		return h
	}
	return DefaultHandle()
}
