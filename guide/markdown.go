package guide

import (
	"regexp"
	"strings"
)

var (
	boldRe     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe   = regexp.MustCompile(`\*(.*?)\*`)
	bulletRe   = regexp.MustCompile(`(?m)^- (.*)$`)
	numberedRe = regexp.MustCompile(`(?m)^\d+\. (.*)$`)
	ulRunRe    = regexp.MustCompile(`(?s)<uli>.*?</uli>(\n<uli>.*?</uli>)*`)
	olRunRe    = regexp.MustCompile(`(?s)<oli>.*?</oli>(\n<oli>.*?</oli>)*`)
)

// MarkdownToHTML converts the small markdown subset the guide persona
// is told to use. Anything outside bold, italics, and the two list
// forms passes through untouched.
func MarkdownToHTML(text string) string {
	out := boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")

	out = bulletRe.ReplaceAllString(out, "<uli>$1</uli>")
	out = numberedRe.ReplaceAllString(out, "<oli>$1</oli>")

	out = ulRunRe.ReplaceAllStringFunc(out, func(run string) string {
		run = strings.ReplaceAll(run, "\n", "")
		run = strings.ReplaceAll(run, "<uli>", "<li>")
		run = strings.ReplaceAll(run, "</uli>", "</li>")
		return "<ul>" + run + "</ul>"
	})
	out = olRunRe.ReplaceAllStringFunc(out, func(run string) string {
		run = strings.ReplaceAll(run, "\n", "")
		run = strings.ReplaceAll(run, "<oli>", "<li>")
		run = strings.ReplaceAll(run, "</oli>", "</li>")
		return "<ol>" + run + "</ol>"
	})

	return strings.ReplaceAll(out, "\n", "<br>")
}
