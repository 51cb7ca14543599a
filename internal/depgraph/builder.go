package depgraph

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docaudit-dev/docaudit/internal/extract"
	"github.com/docaudit-dev/docaudit/internal/ignore"
)

// Builder constructs a dependency graph from the files under a root
// directory. Building is a pure function of the tree's content at call time;
// nothing is cached across calls.
type Builder struct {
	Extensions []string          // source extensions to scan, e.g. [".ts", ".tsx"]
	Aliases    map[string]string // alias prefix -> root-relative prefix
	Matcher    *ignore.Matcher
	Extractor  extract.Extractor
}

// Build enumerates matching files under root, extracts their import
// references, and resolves each into a canonical identity. Unreadable files
// contribute no edges; relative references escaping the root are dropped.
func (b *Builder) Build(root string) (*Graph, error) {
	g := &Graph{Root: root, Edges: make(map[string][]string)}

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("walk error", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if b.Matcher != nil && b.Matcher.ShouldIgnore(rel, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !b.scannable(rel) {
			return nil
		}

		content, readErr := os.ReadFile(p)
		if readErr != nil {
			// Unreadable files contribute no edges; the scan continues.
			slog.Warn("failed to read source file", "path", rel, "error", readErr)
			g.Edges[rel] = []string{}
			return nil
		}

		refs := b.Extractor.Imports(rel, content)
		resolved := make([]string, 0, len(refs))
		for _, ref := range refs {
			if target, ok := b.resolve(rel, ref); ok {
				resolved = append(resolved, target)
			}
		}
		g.Edges[rel] = resolved
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// scannable filters by extension and excludes test/spec files.
func (b *Builder) scannable(rel string) bool {
	ext := strings.ToLower(path.Ext(rel))
	found := false
	for _, want := range b.Extensions {
		if ext == strings.ToLower(want) {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	if strings.Contains(rel, "__tests__/") {
		return false
	}
	name := path.Base(rel)
	if strings.Contains(name, ".test.") || strings.Contains(name, ".spec.") {
		return false
	}
	return true
}

func (b *Builder) resolve(sourceRel string, ref extract.Reference) (string, bool) {
	switch ref.Kind {
	case extract.KindRelative:
		resolved := path.Clean(path.Join(path.Dir(sourceRel), ref.Target))
		if resolved == ".." || strings.HasPrefix(resolved, "../") {
			// Escapes the scanned root: silently dropped.
			return "", false
		}
		return resolved, true

	case extract.KindAliased:
		for _, prefix := range b.aliasPrefixes() {
			if strings.HasPrefix(ref.Target, prefix) {
				return b.Aliases[prefix] + ref.Target[len(prefix):], true
			}
		}
		return ExternalPrefix + ref.Target, true

	default:
		return ExternalPrefix + ref.Target, true
	}
}

func (b *Builder) aliasPrefixes() []string {
	prefixes := make([]string, 0, len(b.Aliases))
	for prefix := range b.Aliases {
		prefixes = append(prefixes, prefix)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	return prefixes
}
