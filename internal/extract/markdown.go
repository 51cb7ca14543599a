package extract

import (
	"regexp"
	"strings"
)

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// MarkdownLinks returns the internal markdown links in content, in file order.
// A target is kept only when it is not an http/https URL and carries a
// markdown-file marker in its path. Anchor-only targets are dropped; fragment
// suffixes on kept targets are preserved.
func MarkdownLinks(content string) []Link {
	links := make([]Link, 0)
	for _, match := range linkPattern.FindAllStringSubmatch(content, -1) {
		target := match[2]
		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
			continue
		}
		if !strings.Contains(target, ".md") {
			continue
		}
		path, _ := SplitFragment(target)
		if path == "" {
			continue
		}
		links = append(links, Link{Text: match[1], Target: target})
	}
	return links
}
