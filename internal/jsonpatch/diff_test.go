package jsonpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetweenAddsNewStep(t *testing.T) {
	before := map[string]map[string]string{}
	after := map[string]map[string]string{
		"passport-info": {"passportNumber": "TK1234567"},
	}

	ops, err := Between(before, after)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "add", ops[0].Op)
	assert.Equal(t, "/passport-info", ops[0].Path)
}

func TestDiffReplacesAndRemovesInKeyOrder(t *testing.T) {
	a := map[string]any{"a": "1", "b": "2", "c": "3"}
	b := map[string]any{"a": "1", "b": "x"}

	ops := Diff(a, b, "")
	require.Len(t, ops, 2)
	assert.Equal(t, Operation{Op: "remove", Path: "/c"}, ops[0])
	assert.Equal(t, Operation{Op: "replace", Path: "/b", Value: "x"}, ops[1])
}

func TestDiffArraysShrinkFromTail(t *testing.T) {
	a := []any{"x", "y", "z"}
	b := []any{"x"}

	ops := Diff(a, b, "/members")
	require.Len(t, ops, 2)
	assert.Equal(t, "/members/2", ops[0].Path)
	assert.Equal(t, "/members/1", ops[1].Path)
}

func TestDiffTypeChangeReplaces(t *testing.T) {
	ops := Diff(map[string]any{"v": "text"}, map[string]any{"v": []any{"a"}}, "")
	require.Len(t, ops, 1)
	assert.Equal(t, "replace", ops[0].Op)
	assert.Equal(t, "/v", ops[0].Path)
}

func TestEscapeKey(t *testing.T) {
	assert.Equal(t, "a~1b~0c", escapeKey("a/b~c"))
}
