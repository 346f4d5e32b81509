package xo

import (
	"fmt"
	"os"
)

// warn writes one formatted line to the handle's warning sink when Warn is
// set. Warnings are always advisory: they never change an emission's return
// value and never abort the emission stream, per spec.md §7.
//
// The original's xo_warn branched on an XOF_WARN_XML flag whose two
// branches were byte-for-byte identical; spec.md §9 calls this out as
// unfinished. We implement the single behavior both branches actually had:
// plain text to the warning sink, one warning per call.
func (h *Handle) warn(format string, args ...any) {
	if !h.flags.has(Warn) {
		return
	}
	w := h.warnOut
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "xo: "+format+"\n", args...)
}

// warnf adapts (*Handle).warn to the func(string, ...any) shape the
// structural stack's pop needs, so stack.go stays free of any Handle
// dependency.
func (h *Handle) warnf() func(string, ...any) {
	return h.warn
}
