package extract

import (
	"regexp"
	"strings"
)

// Extractor pulls raw import references out of source text. Implementations
// must never fail on malformed input: a file that cannot be understood simply
// contributes no references.
type Extractor interface {
	Imports(filename string, content []byte) []Reference
}

// Three alternative textual shapes cover the common module syntaxes. Matches
// are concatenated pattern-major, then file order; duplicates across patterns
// are deliberately preserved.
var importPatterns = []*regexp.Regexp{
	regexp.MustCompile(`import\s+(?:.*?\s+from\s+)?['"]([^'"]+)['"]`),
	regexp.MustCompile(`require\(['"]([^'"]+)['"]\)`),
	regexp.MustCompile(`from\s+['"]([^'"]+)['"]`),
}

// RegexExtractor is the default pattern-based extractor. It trades parsing
// accuracy for independence from any language grammar.
type RegexExtractor struct {
	aliasPrefixes []string
}

// NewRegexExtractor builds an extractor that classifies targets against the
// given alias prefixes (most specific first).
func NewRegexExtractor(aliasPrefixes []string) *RegexExtractor {
	return &RegexExtractor{aliasPrefixes: aliasPrefixes}
}

func (e *RegexExtractor) Imports(filename string, content []byte) []Reference {
	refs := make([]Reference, 0)
	for _, pattern := range importPatterns {
		for _, match := range pattern.FindAllSubmatch(content, -1) {
			target := string(match[1])
			refs = append(refs, Reference{
				Target: target,
				Kind:   classify(target, e.aliasPrefixes),
			})
		}
	}
	return refs
}

func classify(target string, aliasPrefixes []string) Kind {
	if strings.HasPrefix(target, ".") {
		return KindRelative
	}
	for _, prefix := range aliasPrefixes {
		if strings.HasPrefix(target, prefix) {
			return KindAliased
		}
	}
	return KindExternal
}
