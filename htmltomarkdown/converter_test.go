package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/bluemonday"
	"github.com/fwojciec/jobscrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements jobscrape.Converter at compile time.
var _ jobscrape.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Hello, world!", md)
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h2>Responsibilities</h2><h3>Day to day</h3>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## Responsibilities")
		assert.Contains(t, md, "### Day to day")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Apply at <a href="https://example.com/apply">our site</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[our site](https://example.com/apply)")
	})

	t.Run("converts requirement lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>Go</li><li>SQL</li></ul><ol><li>Apply</li><li>Interview</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Go")
		assert.Contains(t, md, "- SQL")
		assert.Contains(t, md, "1. Apply")
		assert.Contains(t, md, "2. Interview")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Level</th><th>Salary</th></tr></thead>
<tbody><tr><td>Senior</td><td>150k</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Level")
		assert.Contains(t, md, "150k")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><strong>Bold</strong> and <em>italic</em> text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(" ")

		require.NoError(t, err)
		assert.Empty(t, md)
	})

	t.Run("converts sanitizer output", func(t *testing.T) {
		t.Parallel()

		clean := bluemonday.NewSanitizer().Sanitize(`<div><b>Role</b></div><div>Build &amp; ship.</div>`)

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(clean)

		require.NoError(t, err)
		assert.Equal(t, "**Role**\n\nBuild & ship.", md)
	})
}
