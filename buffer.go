package xo

import (
	"io"
	"strconv"
	"time"

	"github.com/ansel1/go-xo/internal"
)

// minGrow is the smallest chunk a buffer grows by; growth doubles the
// buffer's capacity from there, the same double-by-chunk policy the
// original C implementation used for its xo_buffer_t.
const minGrow = 64

// buffer is an append-only byte sequence that grows on demand. It is the
// shared substrate for both the format-work buffer (built by the style
// renderers) and the data buffer (built by the final printf-style
// substitution pass).
//
// A buffer may be given a maxSize: once growing it would exceed that size,
// EnsureRoom reports failure instead of growing further. This is the Go
// stand-in for the original's allocator-hook failure path, which this
// package does not otherwise have a way to simulate deterministically.
type buffer struct {
	buf     []byte
	maxSize int
}

// Len reports the number of bytes currently held.
func (b *buffer) Len() int { return len(b.buf) }

// Reset truncates the buffer back to empty without releasing its backing
// array, matching the original's "logically truncated, not cleared"
// buffer-reuse contract between emission calls.
func (b *buffer) Reset() { b.buf = b.buf[:0] }

// Bytes returns the buffer's current payload. The slice is only valid until
// the next mutating call.
func (b *buffer) Bytes() []byte { return b.buf }

// String returns a copy of the buffer's current payload.
func (b *buffer) String() string { return string(b.buf) }

// SetMaxSize bounds how large this buffer is allowed to grow. Zero (the
// default) means unbounded.
func (b *buffer) SetMaxSize(n int) { b.maxSize = n }

// EnsureRoom grows the buffer, if necessary, so that at least n additional
// bytes can be appended without a further allocation. It reports false if
// the grown size would exceed the buffer's configured maxSize, mirroring
// xo_buf_has_room's allocation-failure return.
func (b *buffer) EnsureRoom(n int) bool {
	need := len(b.buf) + n
	if cap(b.buf) >= need {
		return true
	}

	newCap := cap(b.buf)
	if newCap == 0 {
		newCap = minGrow
	}
	for newCap < need {
		newCap *= 2
	}
	if internal.FeatureFlagStrictAllocLimit && b.maxSize > 0 && newCap > b.maxSize {
		if need > b.maxSize {
			return false
		}
		newCap = b.maxSize
	}

	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
	return true
}

// Append appends p to the buffer. A failed grow silently drops the append:
// callers of the renderer pipeline treat buffer operations as best-effort
// during assembly and only check the final realized-write return (see
// emit.go).
func (b *buffer) Append(p []byte) {
	if !b.EnsureRoom(len(p)) {
		return
	}
	b.buf = append(b.buf, p...)
}

// AppendString is Append for a string, avoiding a []byte conversion on the
// caller's part.
func (b *buffer) AppendString(s string) {
	if !b.EnsureRoom(len(s)) {
		return
	}
	b.buf = append(b.buf, s...)
}

// AppendByte appends a single byte.
func (b *buffer) AppendByte(c byte) {
	if !b.EnsureRoom(1) {
		return
	}
	b.buf = append(b.buf, c)
}

// AppendInt appends the base-10 rendering of an int64.
func (b *buffer) AppendInt(i int64) {
	b.buf = strconv.AppendInt(b.buf, i, 10)
}

// AppendUint appends the base-10 rendering of a uint64.
func (b *buffer) AppendUint(u uint64) {
	b.buf = strconv.AppendUint(b.buf, u, 10)
}

// AppendFloat appends the shortest round-tripping rendering of a float64.
func (b *buffer) AppendFloat(f float64) {
	b.buf = strconv.AppendFloat(b.buf, f, 'g', -1, 64)
}

// AppendBool appends "true" or "false".
func (b *buffer) AppendBool(v bool) {
	b.buf = strconv.AppendBool(b.buf, v)
}

// AppendTime appends t formatted with layout.
func (b *buffer) AppendTime(t time.Time, layout string) {
	b.buf = t.AppendFormat(b.buf, layout)
}

// Pad appends n copies of c.
func (b *buffer) Pad(n int, c byte) {
	if n <= 0 {
		return
	}
	if !b.EnsureRoom(n) {
		return
	}
	start := len(b.buf)
	b.buf = b.buf[:start+n]
	for i := start; i < start+n; i++ {
		b.buf[i] = c
	}
}

// WriteTo writes the buffer's contents to w and resets it, matching
// io.WriterTo. It reports io.ErrShortWrite if w accepted fewer bytes than
// were available, the same check the teacher's buffer performs.
func (b *buffer) WriteTo(w io.Writer) (int64, error) {
	if len(b.buf) == 0 {
		return 0, nil
	}
	want := len(b.buf)
	n, err := w.Write(b.buf)
	b.Reset()
	if err != nil {
		return int64(n), err
	}
	if n < want {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// Write implements io.Writer, appending p and always reporting success;
// buffer growth failures are absorbed the same way Append absorbs them.
func (b *buffer) Write(p []byte) (int, error) {
	b.Append(p)
	return len(p), nil
}
