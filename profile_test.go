package xo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testProfileYAML = `
compact-json:
  style: json
pretty-xml-debug:
  style: xml
  flags: [pretty, warn, xpath]
  indentBy: 4
`

func TestLoadProfiles(t *testing.T) {
	ps, err := LoadProfiles(strings.NewReader(testProfileYAML))
	require.NoError(t, err)
	require.Len(t, ps, 2)
	require.Equal(t, "json", ps["compact-json"].Style)
	require.Equal(t, []string{"pretty", "warn", "xpath"}, ps["pretty-xml-debug"].Flags)
	require.Equal(t, 4, ps["pretty-xml-debug"].IndentBy)
}

func TestLoadProfiles_InvalidYAML(t *testing.T) {
	_, err := LoadProfiles(strings.NewReader("not: [valid"))
	require.Error(t, err)
}

func TestProfileSet_Apply(t *testing.T) {
	ps, err := LoadProfiles(strings.NewReader(testProfileYAML))
	require.NoError(t, err)

	h := New(Text, 0)
	require.NoError(t, ps.Apply(h, "pretty-xml-debug"))
	require.Equal(t, Xml, h.style)
	require.True(t, h.flags.has(Pretty))
	require.True(t, h.flags.has(Warn))
	require.True(t, h.flags.has(Xpath))
	require.Equal(t, 4, h.indentBy)
}

func TestProfileSet_Apply_DefaultIndentByUnchangedWhenZero(t *testing.T) {
	ps, err := LoadProfiles(strings.NewReader(testProfileYAML))
	require.NoError(t, err)

	h := New(Text, 0)
	require.NoError(t, ps.Apply(h, "compact-json"))
	require.Equal(t, Json, h.style)
	require.Equal(t, DefaultIndentBy, h.indentBy)
}

func TestProfileSet_Apply_UnknownProfile(t *testing.T) {
	ps, err := LoadProfiles(strings.NewReader(testProfileYAML))
	require.NoError(t, err)

	h := New(Text, 0)
	err = ps.Apply(h, "does-not-exist")
	require.Error(t, err)
}

func TestProfileSet_Apply_UnknownStyle(t *testing.T) {
	ps, err := LoadProfiles(strings.NewReader("bogus:\n  style: yaml\n"))
	require.NoError(t, err)

	h := New(Text, 0)
	err = ps.Apply(h, "bogus")
	require.Error(t, err)
}

func TestProfileSet_Apply_UnknownFlagIgnored(t *testing.T) {
	ps, err := LoadProfiles(strings.NewReader("p:\n  style: text\n  flags: [pretty, made-up]\n"))
	require.NoError(t, err)

	h := New(Text, 0)
	require.NoError(t, ps.Apply(h, "p"))
	require.True(t, h.flags.has(Pretty))
}

func TestNewProfile(t *testing.T) {
	ps, err := LoadProfiles(strings.NewReader(testProfileYAML))
	require.NoError(t, err)

	h, err := NewProfile(ps, "compact-json")
	require.NoError(t, err)
	require.Equal(t, Json, h.style)
}

func TestNewProfile_UnknownName(t *testing.T) {
	ps, err := LoadProfiles(strings.NewReader(testProfileYAML))
	require.NoError(t, err)

	_, err = NewProfile(ps, "nope")
	require.Error(t, err)
}
