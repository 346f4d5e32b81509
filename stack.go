package xo

// frameFlags tags the kind of structural element a stack frame represents.
type frameFlags uint8

const (
	// frameNotFirst marks that at least one child has already been
	// emitted within this frame, so the next JSON child needs a leading
	// comma.
	frameNotFirst frameFlags = 1 << iota
	frameList
	frameInstance
)

func (f frameFlags) has(bit frameFlags) bool { return f&bit != 0 }

// frame is one level of the structural stack: one open container, list, or
// instance. name is only populated when the containing handle has Xpath or
// Warn set (see stack.push), mirroring the original's "owned only when
// needed" frame name.
type frame struct {
	flags frameFlags
	name  string
}

// stack is the structural stack tracking the open container/list/instance
// chain for one Handle. It starts with a pre-sized frame array and doubles
// it when a push would run past the end (see push). depth 0 is the
// implicit root and is always present.
//
// Grounded on go-render-quill's formatState (a slice used as a push/pop
// stack of "currently open tags") generalized from HTML inline formats to
// container/list/instance frames, and on console-slog's small
// fixed-capacity encodeState stack (used in Handler.Handle to track nested
// %{...%} groups) for the "avoid allocation with a pre-sized array" shape.
type stack struct {
	frames []frame
	depth  int
	indent int
}

func newStack(maxDepth int) *stack {
	if maxDepth < 1 {
		maxDepth = DefaultStackDepth
	}
	return &stack{frames: make([]frame, maxDepth)}
}

// top returns the frame currently on top of the stack.
func (s *stack) top() *frame { return &s.frames[s.depth] }

// notFirst reports and then sets the NotFirst bit on the current top frame,
// returning the value the bit held before this call. JSON separator logic
// uses this: "comma iff a child was already emitted here."
func (s *stack) notFirst() bool {
	f := s.top()
	was := f.flags.has(frameNotFirst)
	f.flags |= frameNotFirst
	return was
}

// push advances the depth cursor and initializes the new top frame. name is
// retained on the frame only when keepName is true (the caller decides this
// based on whether Xpath or Warn is active), per the spec's "owned only
// when needed" rule.
func (s *stack) push(name string, indentDelta int, flags frameFlags, keepName bool) {
	if s.depth+1 >= len(s.frames) {
		// Stack overflow beyond the configured fixed depth: grow rather
		// than silently corrupt state. The original used a fixed array
		// with no such escape hatch; a typed reimplementation can afford
		// the occasional reallocation instead of undefined behavior.
		grown := make([]frame, len(s.frames)*2)
		copy(grown, s.frames)
		s.frames = grown
	}
	s.depth++
	f := s.top()
	*f = frame{flags: flags}
	if keepName {
		f.name = name
	}
	s.indent += indentDelta
}

// pop performs a structural close. If the stack is already at depth 0, it
// reports that to warnf (when warn is true) and returns without modifying
// depth, per the spec's boundary behavior. Otherwise it checks the closing
// name and list/instance flags against the open frame (again only when
// warn is true) before popping.
func (s *stack) pop(name string, indentDelta int, flags frameFlags, warn bool, warnf func(string, ...any)) {
	if s.depth == 0 {
		if warn {
			warnf("close with empty stack: '%s'", name)
		}
		return
	}

	top := s.top()
	if warn {
		if top.name != "" && top.name != name {
			warnf("incorrect close: '%s' .vs. '%s'", name, top.name)
		}
		if top.flags.has(frameList) != flags.has(frameList) {
			warnf("list close on list conflict: '%s'", name)
		}
		if top.flags.has(frameInstance) != flags.has(frameInstance) {
			warnf("instance close on instance conflict: '%s'", name)
		}
	}

	top.name = ""
	s.depth--
	s.indent += indentDelta
}

// xpath joins the non-empty names of every frame from root to the current
// depth, building the "/a/b/leaf" breadcrumb used by HTML data-xpath
// attributes.
func (s *stack) xpath(leaf string) string {
	var b buffer
	for i := 1; i <= s.depth; i++ {
		if s.frames[i].name == "" {
			continue
		}
		b.AppendByte('/')
		b.AppendString(s.frames[i].name)
	}
	b.AppendByte('/')
	b.AppendString(leaf)
	return b.String()
}
