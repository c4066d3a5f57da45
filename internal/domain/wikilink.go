package domain

import (
	"regexp"
	"strings"
)

// Wikilink patterns, one per syntactic form. The heading form is the most
// specific and is scanned first; the plain scan is suppressed for spans
// already captured as heading links; embeds are disjoint (leading "!").
var (
	headingLinkPattern = regexp.MustCompile(`\[\[([^\[\]|#\n]+)#([^\[\]|\n]*)(?:\|([^\[\]\n]+))?\]\]`)
	plainLinkPattern   = regexp.MustCompile(`\[\[([^\[\]|#\n]+)(?:\|([^\[\]\n]+))?\]\]`)
	embedLinkPattern   = regexp.MustCompile(`!\[\[([^\[\]|\n]+)(?:\|([^\[\]\n]+))?\]\]`)
)

// ParseLinks extracts every wikilink occurrence from text. Pure and
// deterministic; malformed bracket sequences are simply not matched.
// Each line is scanned independently: heading links first, then plain
// links, then embeds. Line numbers are 1-based and the trimmed line is
// recorded as context.
func ParseLinks(text string) []LinkOccurrence {
	var out []LinkOccurrence
	for i, line := range strings.Split(text, "\n") {
		out = append(out, parseLine(line, i+1)...)
	}
	return out
}

func parseLine(line string, lineNum int) []LinkOccurrence {
	var out []LinkOccurrence
	context := strings.TrimSpace(line)
	seen := make(map[string]bool)

	for _, m := range headingLinkPattern.FindAllStringSubmatchIndex(line, -1) {
		if precededByBang(line, m[0]) {
			continue
		}
		raw := line[m[0]:m[1]]
		seen[raw] = true
		out = append(out, LinkOccurrence{
			RawText: raw,
			Target:  line[m[2]:m[3]],
			Heading: line[m[4]:m[5]],
			Alias:   group(line, m, 3),
			Line:    lineNum,
			Context: context,
		})
	}

	for _, m := range plainLinkPattern.FindAllStringSubmatchIndex(line, -1) {
		if precededByBang(line, m[0]) {
			continue
		}
		raw := line[m[0]:m[1]]
		if seen[raw] {
			continue
		}
		out = append(out, LinkOccurrence{
			RawText: raw,
			Target:  line[m[2]:m[3]],
			Alias:   group(line, m, 2),
			Line:    lineNum,
			Context: context,
		})
	}

	for _, m := range embedLinkPattern.FindAllStringSubmatchIndex(line, -1) {
		raw := line[m[0]:m[1]]
		target, heading := splitHeading(line[m[2]:m[3]])
		out = append(out, LinkOccurrence{
			RawText: raw,
			Target:  target,
			Heading: heading,
			Alias:   group(line, m, 2),
			IsEmbed: true,
			Line:    lineNum,
			Context: context,
		})
	}

	return out
}

// precededByBang reports whether the match at start belongs to an embed
// link. Go's regexp has no lookbehind, so the heading/plain scans check
// the preceding byte instead.
func precededByBang(line string, start int) bool {
	return start > 0 && line[start-1] == '!'
}

// group returns the n-th submatch of an index slice, or "" when the
// group did not participate in the match.
func group(s string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return s[m[2*n]:m[2*n+1]]
}

// splitHeading splits "target#heading" into its two parts.
func splitHeading(target string) (string, string) {
	if idx := strings.Index(target, "#"); idx >= 0 {
		return target[:idx], target[idx+1:]
	}
	return target, ""
}
