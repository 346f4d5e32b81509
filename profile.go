package xo

import (
	"io"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v2"
)

// profile.go adds a filesystem-backed analogue of env.go's XO_OPTIONS: a
// YAML document of named presets, each bundling {Style, Flags, IndentBy},
// that a program can load once and apply to any number of Handles by name.
// Where XO_OPTIONS gives a process exactly one configuration from exactly
// one environment string, a Profile document gives it as many named,
// swappable configurations as it wants, the way a CLI might let a user
// pick "--profile=debug" vs "--profile=ci".
//
// Grounded on yaml-go-yaml's Unmarshal-into-typed-struct idiom (used
// throughout that repo to hydrate config from a YAML document) and on
// console-slog's Theme: a named, swappable bundle of rendering choices,
// generalized here from "built-in Go struct literal" to "loaded from a
// file."

// Profile is one named bundle of style/flags/indentation, as decoded from
// a YAML document.
type Profile struct {
	Style    string   `yaml:"style"`
	Flags    []string `yaml:"flags"`
	IndentBy int      `yaml:"indentBy"`
}

// ProfileSet is a named collection of Profiles, decoded from a YAML
// document shaped like:
//
//	compact-json:
//	  style: json
//	pretty-xml-debug:
//	  style: xml
//	  flags: [pretty, warn, xpath]
//	  indentBy: 4
type ProfileSet map[string]Profile

// LoadProfiles decodes a ProfileSet from r.
func LoadProfiles(r io.Reader) (ProfileSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "xo: reading profile document")
	}
	var ps ProfileSet
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, errors.Wrap(err, "xo: decoding profile document")
	}
	return ps, nil
}

// styleNames maps a Profile's lowercase style string to a Style.
var styleNames = map[string]Style{
	"":     Text,
	"text": Text,
	"xml":  Xml,
	"json": Json,
	"html": Html,
}

// flagNames maps one Profile flag string to a Flags bit. divOpen is
// intentionally absent: it is internal bookkeeping, never a user-settable
// preset bit.
var flagNames = map[string]Flags{
	"pretty":  Pretty,
	"warn":    Warn,
	"xpath":   Xpath,
	"info":    Info,
	"closefp": CloseFp,
	"escape":  Escape,
}

// Apply looks up name in ps, sets h's style, adds the profile's flags to
// h's current flags (flags already set on h stay set), and sets indent-by
// when the profile gives a positive value. An unrecognized flag name is
// ignored (env.go's "unknown
// characters are ignored" posture, carried over to the YAML form); an
// unknown style name or missing profile name is reported as an error,
// since those are program configuration mistakes, not casually-typable
// single characters.
func (ps ProfileSet) Apply(h *Handle, name string) error {
	p, ok := ps[name]
	if !ok {
		return errors.Newf("xo: no profile named %q", name)
	}
	style, ok := styleNames[p.Style]
	if !ok {
		return errors.Newf("xo: profile %q has unknown style %q", name, p.Style)
	}

	var flags Flags
	for _, f := range p.Flags {
		if bit, ok := flagNames[f]; ok {
			flags |= bit
		}
	}

	h.SetStyle(style)
	h.SetFlags(flags)
	if p.IndentBy > 0 {
		h.SetIndentBy(p.IndentBy)
	}
	return nil
}

// NewProfile creates a Handle and applies the named profile from ps to it
// in one call, the Profile analogue of New(style, flags).
func NewProfile(ps ProfileSet, name string) (*Handle, error) {
	h := New(Text, 0)
	if err := ps.Apply(h, name); err != nil {
		return nil, err
	}
	return h, nil
}
