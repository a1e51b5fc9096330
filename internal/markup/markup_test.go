package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_PlainTextPassesThrough(t *testing.T) {
	out := Format("hello")
	assert.Equal(t, "hello", out)
	assert.NotContains(t, out, "<")
}

func TestFormat_Empty(t *testing.T) {
	assert.Equal(t, "", Format(""))
}

func TestFormat_BoldThenItalic(t *testing.T) {
	out := Format("**bold** and *italic*")
	assert.Equal(t, "<strong>bold</strong> and <em>italic</em>", out)

	// Order sanity: bold appears before italic in the output.
	assert.Less(t, strings.Index(out, "<strong>"), strings.Index(out, "<em>"))
}

func TestFormat_BoldIsNonGreedy(t *testing.T) {
	out := Format("**a** mid **b**")
	assert.Equal(t, "<strong>a</strong> mid <strong>b</strong>", out)
}

func TestFormat_ListMerging(t *testing.T) {
	t.Run("adjacent items share one container", func(t *testing.T) {
		out := Format("* a\n* b")
		assert.Equal(t, "<ul><li>a</li><li>b</li></ul>", out)
		assert.Equal(t, 1, strings.Count(out, "<ul>"))
	})

	t.Run("non-adjacent items get separate containers", func(t *testing.T) {
		out := Format("* a\ntext\n* b")
		assert.Equal(t, 2, strings.Count(out, "<ul>"))
		assert.Contains(t, out, "<ul><li>a</li></ul>")
		assert.Contains(t, out, "<ul><li>b</li></ul>")
		assert.Contains(t, out, "<br>text<br>")
	})

	t.Run("item order preserved", func(t *testing.T) {
		out := Format("* first\n* second")
		assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	})
}

func TestFormat_Newlines(t *testing.T) {
	assert.Equal(t, "a<br>b", Format("a\nb"))
}

func TestFormat_Headings(t *testing.T) {
	t.Run("levels", func(t *testing.T) {
		assert.Equal(t, "<h1>One</h1>", Format("# One"))
		assert.Equal(t, "<h2>Two</h2>", Format("## Two"))
		assert.Equal(t, "<h3>Three</h3>", Format("### Three"))
	})

	t.Run("recognized only at source line start", func(t *testing.T) {
		out := Format("intro\n## Section\nbody")
		assert.Equal(t, "intro<br><h2>Section</h2><br>body", out)

		// A hash mid-line is literal text, not a heading.
		assert.Equal(t, "see # note", Format("see # note"))
	})

	t.Run("consecutive headings", func(t *testing.T) {
		out := Format("# A\n# B")
		assert.Equal(t, "<h1>A</h1><br><h1>B</h1>", out)
	})

	t.Run("inline markup inside heading", func(t *testing.T) {
		assert.Equal(t, "<h1><strong>T</strong></h1>", Format("# **T**"))
	})
}

func TestFormat_OrderedItemsNotMerged(t *testing.T) {
	out := Format("1. a\n2. b")
	assert.Equal(t, "<li>a</li><br><li>b</li>", out)
	assert.NotContains(t, out, "<ul>")
}

func TestFormat_InlineCode(t *testing.T) {
	assert.Equal(t, "run <code>go test</code> now", Format("run `go test` now"))
}

func TestFormat_MixedDocument(t *testing.T) {
	in := "# Title\nSome **bold** intro.\n* one\n* two\nUse `x` here."
	out := Format(in)

	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<ul><li>one</li><li>two</li></ul>")
	assert.Contains(t, out, "<code>x</code>")
}

func TestFormat_Deterministic(t *testing.T) {
	// Malformed nesting is undefined but must be stable run to run.
	in := "***tangle** up*"
	first := Format(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Format(in))
	}
}
