package bluemonday_test

import (
	"testing"

	"github.com/fwojciec/jobscrape/bluemonday"
	"github.com/stretchr/testify/assert"
)

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	t.Run("removes scripts and styles and normalizes containers", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()
		in := `<div onclick="x()"><script>evil()</script><b>Role</b><style>.a{}</style></div>`

		assert.Equal(t, "<p><strong>Role</strong></p>", s.Sanitize(in))
	})

	t.Run("drops script blocks regardless of case and attributes", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()
		in := `<p>Before</p><SCRIPT type="text/javascript">var a = 1;</SCRIPT><p>After</p>`

		got := s.Sanitize(in)

		assert.Equal(t, "<p>Before</p><p>After</p>", got)
		assert.NotContains(t, got, "var a")
	})

	t.Run("removes inline brace fragments", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		got := s.Sanitize(`<p>Salary {"min": 1, "max": 2} competitive</p>`)

		assert.Equal(t, "<p>Salary  competitive</p>", got)
	})

	t.Run("keeps allowed structure", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()
		in := `<h2>Requirements</h2><ul><li><em>Go</em></li><li><i>SQL</i></li></ul><hr>`

		assert.Equal(t, `<h2>Requirements</h2><ul><li><em>Go</em></li><li><i>SQL</i></li></ul><hr>`, s.Sanitize(in))
	})

	t.Run("strips disallowed elements but keeps their text", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		got := s.Sanitize(`<section><span class="x">Hello</span> <button>Apply</button></section>`)

		assert.Equal(t, "Hello Apply", got)
	})

	t.Run("keeps safe links and drops unsafe targets", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		assert.Equal(t,
			`<a href="https://example.com/apply" title="Apply">Apply</a>`,
			s.Sanitize(`<a href="https://example.com/apply" title="Apply" onclick="track()">Apply</a>`),
		)
		assert.Equal(t, "Click", s.Sanitize(`<a href="javascript:alert(1)">Click</a>`))
	})

	t.Run("keeps table span attributes and drops others", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		got := s.Sanitize(`<table><tr><td colspan="2" class="cell" style="color:red">Pay</td></tr></table>`)

		assert.Equal(t, `<table><tr><td colspan="2">Pay</td></tr></table>`, got)
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		got := s.Sanitize(`<p>Open <strong>bold<div>nested`)

		assert.NotContains(t, got, "<div")
		assert.Contains(t, got, "nested")
	})

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		assert.Empty(t, s.Sanitize(""))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()
		inputs := []string{
			`<div onclick="x()"><script>evil()</script><b>Role</b><style>.a{}</style></div>`,
			`<p>&#123;template&#125; text</p>`,
			`<scr<script></script>ipt>alert(1)</script>`,
			`<div><div><b class="x">Deep</b></div></div>`,
			`<p>5 &lt; 6 &amp;&amp; {x}</p>`,
		}
		for _, in := range inputs {
			once := s.Sanitize(in)
			assert.Equal(t, once, s.Sanitize(once), "input %q", in)
		}
	})

	t.Run("never emits script or style tags", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()
		inputs := []string{
			`<scr<script></script>ipt>alert(1)</script>`,
			`<style>p{}</style><STYLE>x</STYLE>`,
			`<svg><script>alert(1)</script></svg>`,
		}
		for _, in := range inputs {
			got := s.Sanitize(in)
			assert.NotContains(t, got, "<script", "input %q", in)
			assert.NotContains(t, got, "<style", "input %q", in)
		}
	})
}

func TestSanitizer_Text(t *testing.T) {
	t.Parallel()

	t.Run("returns plain text without markup", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		got := s.Text(`<h2>About</h2><p>Build  <strong>APIs</strong> &amp; tools</p>`)

		assert.Equal(t, "About Build APIs & tools", got)
	})
}
