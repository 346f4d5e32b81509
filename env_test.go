package xo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnvOptions_Defaults(t *testing.T) {
	style, flags, indentBy := parseEnvOptions("")
	require.Equal(t, Text, style)
	require.Zero(t, flags)
	require.Equal(t, DefaultIndentBy, indentBy)
}

func TestParseEnvOptions_Style(t *testing.T) {
	tests := []struct {
		opt  string
		want Style
	}{
		{"H", Html},
		{"J", Json},
		{"T", Text},
		{"X", Xml},
	}
	for _, tt := range tests {
		style, _, _ := parseEnvOptions(tt.opt)
		require.Equal(t, tt.want, style)
	}
}

func TestParseEnvOptions_LastStyleWins(t *testing.T) {
	style, _, _ := parseEnvOptions("XJH")
	require.Equal(t, Html, style)
}

func TestParseEnvOptions_Flags(t *testing.T) {
	_, flags, _ := parseEnvOptions("PWIx")
	require.True(t, flags.has(Pretty))
	require.True(t, flags.has(Warn))
	require.True(t, flags.has(Info))
	require.True(t, flags.has(Xpath))
}

func TestParseEnvOptions_IndentBy(t *testing.T) {
	_, _, indentBy := parseEnvOptions("i4")
	require.Equal(t, 4, indentBy)
}

func TestParseEnvOptions_IndentBy_MultiDigit(t *testing.T) {
	_, _, indentBy := parseEnvOptions("i12")
	require.Equal(t, 12, indentBy)
}

func TestParseEnvOptions_IndentBy_NoDigitsLeavesDefault(t *testing.T) {
	_, _, indentBy := parseEnvOptions("i")
	require.Equal(t, DefaultIndentBy, indentBy)
}

func TestParseEnvOptions_Combined(t *testing.T) {
	style, flags, indentBy := parseEnvOptions("JPi4W")
	require.Equal(t, Json, style)
	require.True(t, flags.has(Pretty))
	require.True(t, flags.has(Warn))
	require.Equal(t, 4, indentBy)
}

func TestParseEnvOptions_UnknownCharsIgnored(t *testing.T) {
	style, flags, indentBy := parseEnvOptions("JqzZ")
	require.Equal(t, Json, style)
	require.Zero(t, flags)
	require.Equal(t, DefaultIndentBy, indentBy)
}
