package docindex

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docaudit-dev/docaudit/internal/ignore"
)

// Index maps a bare filename to every path under the scanned root carrying
// that name. It is built by a single full-tree walk and never mutated
// afterward: later rewrites change file content, not names or positions, so
// the index stays valid for the whole run.
type Index struct {
	root   string
	byName map[string][]string
	total  int
}

// Build walks root once, recording every file whose extension is in exts.
// Install directories and hidden-directory segments are skipped.
func Build(root string, exts []string, matcher *ignore.Matcher) (*Index, error) {
	idx := &Index{
		root:   root,
		byName: make(map[string][]string),
	}

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

		if matcher != nil && matcher.ShouldIgnore(rel, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !hasExtension(rel, exts) {
			return nil
		}

		name := filepath.Base(p)
		idx.byName[name] = append(idx.byName[name], p)
		idx.total++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return idx, nil
}

// Lookup returns the candidate paths for a bare filename, in walk order.
func (ix *Index) Lookup(name string) []string {
	return ix.byName[name]
}

// Names returns every indexed filename, sorted.
func (ix *Index) Names() []string {
	names := make([]string, 0, len(ix.byName))
	for name := range ix.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len is the total number of indexed files.
func (ix *Index) Len() int {
	return ix.total
}

// Root is the directory the index was built from.
func (ix *Index) Root() string {
	return ix.root
}

func hasExtension(rel string, exts []string) bool {
	ext := filepath.Ext(rel)
	for _, want := range exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
