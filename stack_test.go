package xo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack_PushPop(t *testing.T) {
	s := newStack(4)
	require.Equal(t, 0, s.depth)

	s.push("top", 1, 0, true)
	require.Equal(t, 1, s.depth)
	require.Equal(t, 1, s.indent)
	require.Equal(t, "top", s.top().name)

	var warnings []string
	warnf := func(format string, args ...any) { warnings = append(warnings, format) }

	s.pop("top", -1, 0, true, warnf)
	require.Equal(t, 0, s.depth)
	require.Equal(t, 0, s.indent)
	require.Empty(t, warnings)
}

func TestStack_PopEmpty_Warns(t *testing.T) {
	s := newStack(4)
	var warnings []string
	warnf := func(format string, args ...any) { warnings = append(warnings, format) }

	s.pop("top", -1, 0, true, warnf)
	require.Equal(t, 0, s.depth)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "close with empty stack")
}

func TestStack_PopEmpty_NoWarnWhenDisabled(t *testing.T) {
	s := newStack(4)
	var warnings []string
	warnf := func(format string, args ...any) { warnings = append(warnings, format) }

	s.pop("top", -1, 0, false, warnf)
	require.Equal(t, 0, s.depth)
	require.Empty(t, warnings)
}

func TestStack_MismatchedClose_Warns(t *testing.T) {
	s := newStack(4)
	s.push("a", 1, 0, true)

	var warnings []string
	warnf := func(format string, args ...any) { warnings = append(warnings, format) }
	s.pop("b", -1, 0, true, warnf)

	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "incorrect close")
	require.Equal(t, 0, s.depth)
}

func TestStack_ListInstanceFlagMismatch_Warns(t *testing.T) {
	s := newStack(4)
	s.push("item", 0, frameList, true)

	var warnings []string
	warnf := func(format string, args ...any) { warnings = append(warnings, format) }
	s.pop("item", 0, frameInstance, true, warnf)

	require.Len(t, warnings, 2) // list-conflict and instance-conflict both fire
}

func TestStack_NotFirst(t *testing.T) {
	s := newStack(4)
	require.False(t, s.notFirst())
	require.True(t, s.notFirst())
	require.True(t, s.notFirst())
}

func TestStack_NameKeptOnlyWhenRequested(t *testing.T) {
	s := newStack(4)
	s.push("top", 0, 0, false)
	require.Equal(t, "", s.top().name)
}

func TestStack_Grows_BeyondInitialDepth(t *testing.T) {
	s := newStack(2)
	for i := 0; i < 10; i++ {
		s.push("frame", 0, 0, false)
	}
	require.Equal(t, 10, s.depth)
}

func TestStack_XPath(t *testing.T) {
	s := newStack(4)
	s.push("a", 0, 0, true)
	s.push("b", 0, 0, true)
	require.Equal(t, "/a/b/leaf", s.xpath("leaf"))
}

func TestStack_XPath_SkipsUnnamedFrames(t *testing.T) {
	s := newStack(4)
	s.push("a", 0, 0, true)
	s.push("", 0, 0, false)
	require.Equal(t, "/a/leaf", s.xpath("leaf"))
}
