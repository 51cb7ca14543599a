package extract

import "strings"

// Kind classifies how an import reference should be resolved.
type Kind string

const (
	// KindRelative references begin with a path-relative marker ("./", "../").
	KindRelative Kind = "relative"
	// KindAliased references begin with a configured project alias prefix.
	KindAliased Kind = "aliased"
	// KindExternal references are bare package names.
	KindExternal Kind = "external"
)

// Reference is a raw import target extracted from source text.
// Immutable once extracted.
type Reference struct {
	Target string
	Kind   Kind
}

// Link is one inline markdown link. Target keeps any fragment suffix so the
// original construct can be reproduced exactly.
type Link struct {
	Text   string
	Target string
}

// Markdown reproduces the inline-link construct as it appears in the file.
func (l Link) Markdown() string {
	return "[" + l.Text + "](" + l.Target + ")"
}

// SplitFragment splits a link target into its path and fragment suffix.
// The fragment includes the leading "#" when present.
func SplitFragment(target string) (path, fragment string) {
	if idx := strings.Index(target, "#"); idx != -1 {
		return target[:idx], target[idx:]
	}
	return target, ""
}
