package ui

import (
	"regexp"
	"strings"
)

var (
	liRe      = regexp.MustCompile(`(?s)<li>(.*?)</li>`)
	h1Re      = regexp.MustCompile(`(?s)<h1>(.*?)</h1>`)
	h2Re      = regexp.MustCompile(`(?s)<h2>(.*?)</h2>`)
	h3Re      = regexp.MustCompile(`(?s)<h3>(.*?)</h3>`)
	strongRe  = regexp.MustCompile(`(?s)<strong>(.*?)</strong>`)
	emRe      = regexp.MustCompile(`(?s)<em>(.*?)</em>`)
	codeTagRe = regexp.MustCompile("(?s)<code>(.*?)</code>")
)

// RenderMarkup converts the formatter's structured markup into styled
// terminal text. The input is trusted content produced by internal/markup;
// plain text passes through untouched. Structural tags are resolved before
// inline ones so list bullets and headings land on their own lines.
func RenderMarkup(tagged string, s Styles) string {
	if tagged == "" {
		return ""
	}

	out := tagged

	// Structural tags first.
	out = strings.ReplaceAll(out, "<ul>", "\n")
	out = strings.ReplaceAll(out, "</ul>", "")
	out = liRe.ReplaceAllString(out, "  • $1\n")
	out = strings.ReplaceAll(out, "<br>", "\n")

	out = h1Re.ReplaceAllStringFunc(out, func(m string) string {
		return s.H1.Render(h1Re.FindStringSubmatch(m)[1])
	})
	out = h2Re.ReplaceAllStringFunc(out, func(m string) string {
		return s.H2.Render(h2Re.FindStringSubmatch(m)[1])
	})
	out = h3Re.ReplaceAllStringFunc(out, func(m string) string {
		return s.H3.Render(h3Re.FindStringSubmatch(m)[1])
	})

	// Inline tags.
	out = codeTagRe.ReplaceAllStringFunc(out, func(m string) string {
		return s.InlineCode.Render(codeTagRe.FindStringSubmatch(m)[1])
	})
	out = strongRe.ReplaceAllStringFunc(out, func(m string) string {
		return s.Bold.Render(strongRe.FindStringSubmatch(m)[1])
	})
	out = emRe.ReplaceAllStringFunc(out, func(m string) string {
		return s.Italic.Render(emRe.FindStringSubmatch(m)[1])
	})

	return out
}
