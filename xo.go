// Package xo renders a single brace-delimited format-string description of a
// program's output into any one of four rendering styles: plain text, XML,
// JSON, or HTML, selected at runtime on a per-Handle basis.
//
// A caller instruments a program once, using [Emit] (or the [Handle]-taking
// [EmitH]) together with the structural calls [OpenContainer], [OpenList],
// and [OpenInstance] (and their closing counterparts), and lets the style in
// effect on the handle decide how that single description is rendered.
package xo

import "fmt"

// Style selects the rendering style a Handle uses for every subsequent
// emission and structural call.
type Style int

const (
	// Text renders free-form, column-aligned output with no structural
	// delimiters; containers, lists, and instances are invisible.
	Text Style = iota
	// Xml renders well-formed XML element fragments, no declaration.
	Xml
	// Json renders JSON objects and arrays.
	Json
	// Html renders HTML fragments built from nested <div> elements.
	Html
)

func (s Style) String() string {
	switch s {
	case Text:
		return "text"
	case Xml:
		return "xml"
	case Json:
		return "json"
	case Html:
		return "html"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Flags is a bitset of independent, per-Handle behaviors.
type Flags uint32

const (
	// Pretty inserts indentation and newlines between structural elements.
	Pretty Flags = 1 << iota
	// Warn reports shape mismatches and format-string anomalies to the
	// warning sink.
	Warn
	// Xpath includes an XPath-like breadcrumb in HTML data-xpath
	// attributes. Implies retaining frame names on the structural stack.
	Xpath
	// Info emits data-type/data-help attributes in HTML, sourced from the
	// handle's info table.
	Info
	// CloseFp indicates the sink owns its underlying file and that file
	// must be closed when the handle is destroyed.
	CloseFp
	// Escape turns on minimal well-formedness escaping of field names and
	// text resolved at render time: XML/HTML escape '<', '>', '&', '"';
	// JSON escapes '"', '\', and control bytes. A Value field's substituted
	// argument is not escaped. Off by default, matching the original
	// library's unescaped behavior.
	Escape

	// divOpen tracks whether an HTML line-div is currently open. It is
	// never user-settable; Flags.has reports it like any other bit, but
	// SetFlags/ClearFlags reject it (see handle.go).
	divOpen
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Kind is the semantic category of one parsed brace field.
type Kind int

const (
	// KindValue is a data field; the default kind when no style letter
	// appears in a field's modifiers.
	KindValue Kind = iota
	KindTitle
	KindLabel
	KindPadding
	KindDecoration
	// kindText is not used by any code: literal runs and {{escaped}} spans
	// are classified by spanKind (parser.go), and it never appears as a
	// parsed field's Kind.
	kindText
)

// FieldFlags is a bitset of per-field modifiers parsed from a brace field's
// modifier run.
type FieldFlags uint8

const (
	// FieldColon appends a ':' decoration immediately after the field.
	FieldColon FieldFlags = 1 << iota
	// FieldWs appends a single space padding immediately after the field.
	FieldWs
	// FieldHide suppresses a Value field from Text output.
	FieldHide
	// FieldQuote forces JSON to quote the field's value.
	FieldQuote
	// FieldNoQuote forces JSON to not quote the field's value.
	FieldNoQuote
)

func (f FieldFlags) has(bit FieldFlags) bool { return f&bit != 0 }

// InfoEntry describes one field's type and help text, used to annotate HTML
// output when the Info flag is set. The table passed to (*Handle).SetInfo
// must be sorted by Name; lookups use binary search.
type InfoEntry struct {
	Name string
	Type string
	Help string
}

const (
	// DefaultIndentBy is the number of spaces used per indentation level
	// when Pretty is set and no explicit IndentBy has been configured.
	DefaultIndentBy = 2
	// DefaultStackDepth is the number of structural frames a Handle's
	// stack is allocated with; a push beyond it grows the stack.
	DefaultStackDepth = 512
)
