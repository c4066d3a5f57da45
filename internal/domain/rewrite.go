package domain

import (
	"fmt"
	"regexp"
)

// RewriteOptions controls how RewriteLinks rebuilds matched occurrences.
type RewriteOptions struct {
	DestVault  string // destination vault name for cross-vault moves
	CrossVault bool   // rewrite targets to "DestVault/name"
}

// RewriteLinks rewrites every wikilink in text whose target base-name
// equals oldPath's base-name. Pure function over one note's text.
//
// An empty newPath means the target was deleted: matching occurrences are
// wrapped in strike-through markup and left in place. With CrossVault set
// the target is prefixed with "DestVault/"; otherwise the target becomes
// newPath's base-name. Alias and heading fragments are carried through
// verbatim.
//
// The three passes run in heading, plain, embed order. The ordering is a
// contract: each pass's pattern requires the original base-name, which no
// longer appears in spans an earlier pass rewrote, so later passes cannot
// re-match or double-rewrite.
func RewriteLinks(text, oldPath, newPath string, opts RewriteOptions) string {
	oldBase := TargetBase(oldPath)
	if oldBase == "" {
		return text
	}
	quoted := regexp.QuoteMeta(oldBase)
	// Optional folder prefix: links may address the target by a path whose
	// final segment is the base-name.
	prefix := `(?:[^\[\]|#/\n]+/)*`

	headingRe := regexp.MustCompile(`\[\[` + prefix + quoted + `#([^\[\]|\n]*)((?:\|[^\[\]\n]+)?)\]\]`)
	plainRe := regexp.MustCompile(`\[\[` + prefix + quoted + `((?:\|[^\[\]\n]+)?)\]\]`)
	embedRe := regexp.MustCompile(`!\[\[` + prefix + quoted + `((?:#[^\[\]|\n]*)?)((?:\|[^\[\]\n]+)?)\]\]`)

	strike := newPath == "" && !opts.CrossVault
	target := func() string {
		if opts.CrossVault {
			return opts.DestVault + "/" + oldBase
		}
		return TargetBase(newPath)
	}()

	text = replaceLinks(text, headingRe, true, func(raw string, groups []string) string {
		if strike {
			return "~~" + raw + "~~"
		}
		return fmt.Sprintf("[[%s#%s%s]]", target, groups[0], groups[1])
	})
	text = replaceLinks(text, plainRe, true, func(raw string, groups []string) string {
		if strike {
			return "~~" + raw + "~~"
		}
		return fmt.Sprintf("[[%s%s]]", target, groups[0])
	})
	text = replaceLinks(text, embedRe, false, func(raw string, groups []string) string {
		if strike {
			return "~~" + raw + "~~"
		}
		return fmt.Sprintf("![[%s%s%s]]", target, groups[0], groups[1])
	})
	return text
}

// replaceLinks substitutes every match of re in text. When skipEmbeds is
// set, matches immediately preceded by "!" are left for the embed pass.
func replaceLinks(text string, re *regexp.Regexp, skipEmbeds bool, repl func(raw string, groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var out []byte
	last := 0
	for _, m := range matches {
		if skipEmbeds && m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		raw := text[m[0]:m[1]]
		groups := make([]string, 0, len(m)/2-1)
		for g := 1; g < len(m)/2; g++ {
			groups = append(groups, group(text, m, g))
		}
		out = append(out, text[last:m[0]]...)
		out = append(out, repl(raw, groups)...)
		last = m[1]
	}
	out = append(out, text[last:]...)
	return string(out)
}
