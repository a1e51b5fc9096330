// Package markup converts the constrained markdown-like dialect used in
// backend answers into structured markup suitable for direct rendering.
//
// The conversion is a fixed sequence of named rewrite stages. The ordering
// is part of the contract, not an implementation detail: later stages
// operate on the output of earlier ones (italics run after bold so that
// residual single asterisks are read as italics; headings run after
// newline conversion so a prefix is only recognized at the true start of
// an original source line). Reordering stages is a breaking change and
// must be reviewed as one.
//
// The output is trusted structured content. The formatter is the sole
// sanitization boundary; callers render it verbatim.
package markup

import (
	"regexp"
	"strings"
)

// stage is one named rewrite step in the pipeline.
type stage struct {
	name  string
	apply func(string) string
}

var (
	boldRe     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe   = regexp.MustCompile(`\*(.*?)\*`)
	listItemRe = regexp.MustCompile(`(?m)^\* (.*)$`)
	listRunRe  = regexp.MustCompile(`(?s)<li>.*?</li>(?:\s*<li>.*?</li>)*`)
	itemRe     = regexp.MustCompile(`(?s)<li>.*?</li>`)
	orderedRe  = regexp.MustCompile(`^\d+\. (.*)$`)
	codeRe     = regexp.MustCompile("`([^`]+)`")
)

// pipeline is the ordered list of rewrite stages. Order matters; see the
// package comment.
var pipeline = []stage{
	{"bold", applyBold},
	{"italic", applyItalic},
	{"list-item", applyListItems},
	{"list-wrap", wrapListRuns},
	{"newline", applyNewlines},
	{"heading", applyHeadings},
	{"ordered", applyOrdered},
	{"code", applyCode},
}

// Format converts dialect text to structured markup. Empty input yields
// an empty result.
func Format(text string) string {
	if text == "" {
		return ""
	}
	for _, s := range pipeline {
		text = s.apply(text)
	}
	return text
}

func applyBold(s string) string {
	return boldRe.ReplaceAllString(s, "<strong>$1</strong>")
}

// applyItalic runs after bold markers are removed, so any surviving single
// asterisk pair reads as italics. Malformed nested bold/italic combinations
// therefore produce undefined but deterministic output; that is an accepted
// dialect limitation, not something to patch up here.
func applyItalic(s string) string {
	return italicRe.ReplaceAllString(s, "<em>$1</em>")
}

func applyListItems(s string) string {
	return listItemRe.ReplaceAllString(s, "<li>$1</li>")
}

// wrapListRuns merges each run of consecutive list items (separated only by
// whitespace) into a single enclosing <ul>. Non-adjacent items end up in
// separate containers. The whitespace between merged items is dropped so the
// later newline stage does not inject breaks inside a list.
func wrapListRuns(s string) string {
	return listRunRe.ReplaceAllStringFunc(s, func(run string) string {
		var b strings.Builder
		b.WriteString("<ul>")
		for _, item := range itemRe.FindAllString(run, -1) {
			b.WriteString(item)
		}
		b.WriteString("</ul>")
		return b.String()
	})
}

func applyNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}

// applyHeadings recognizes #/##/### prefixes. It runs after the newline
// stage, when every <br> marks a literal source newline, so splitting on
// <br> recovers the original line starts exactly. A heading consumes the
// rest of its source line.
func applyHeadings(s string) string {
	return mapSourceLines(s, func(line string) string {
		switch {
		case strings.HasPrefix(line, "### "):
			return "<h3>" + line[4:] + "</h3>"
		case strings.HasPrefix(line, "## "):
			return "<h2>" + line[3:] + "</h2>"
		case strings.HasPrefix(line, "# "):
			return "<h1>" + line[2:] + "</h1>"
		}
		return line
	})
}

// applyOrdered turns "<n>. item" source lines into list items. Unlike the
// unordered stage these are not merged into a container; accepted
// limitation of the dialect.
func applyOrdered(s string) string {
	return mapSourceLines(s, func(line string) string {
		return orderedRe.ReplaceAllString(line, "<li>$1</li>")
	})
}

func applyCode(s string) string {
	return codeRe.ReplaceAllString(s, "<code>$1</code>")
}

// mapSourceLines applies fn to each <br>-delimited segment. Only valid in
// stages that run after newline conversion and before anything else could
// emit a <br>.
func mapSourceLines(s string, fn func(string) string) string {
	if !strings.Contains(s, "<br>") {
		return fn(s)
	}
	lines := strings.Split(s, "<br>")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "<br>")
}
