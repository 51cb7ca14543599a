package linkfix

import (
	"path/filepath"
	"strings"
)

// ConfidenceFloor is the minimum heuristic score required to accept a scored
// candidate without falling back to a default.
const ConfidenceFloor = 3

// Scorer picks the best replacement for a broken link from the candidates
// sharing its bare filename. Bare-filename collisions are common in a large
// tree; the score rewards directory-structure similarity and penalizes
// archived duplicates without requiring exact path matching.
type Scorer struct {
	DocsDir      string
	ArchiveDirs  []string
	CategoryDirs []string
}

// Choose returns the winning candidate path, or false when there are no
// candidates. A single candidate is used unconditionally. With multiple
// candidates the highest score wins, ties broken by enumeration order; when
// the best score is below the confidence floor the first non-archival
// candidate wins, and when every candidate is archival the first one does.
func (s *Scorer) Choose(brokenTarget string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}

	origParts := splitParts(brokenTarget)
	var origDirs []string
	if len(origParts) > 0 {
		origDirs = origParts[:len(origParts)-1]
	}

	best := ""
	bestScore := 0
	for _, candidate := range candidates {
		score := s.score(origParts, origDirs, candidate)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	if best != "" && bestScore >= ConfidenceFloor {
		return best, true
	}

	for _, candidate := range candidates {
		if !s.archival(candidate) {
			return candidate, true
		}
	}
	return candidates[0], true
}

func (s *Scorer) score(origParts, origDirs []string, candidate string) int {
	candParts := splitParts(filepath.ToSlash(candidate))

	score := 0
	for _, part := range origDirs {
		if containsPart(candParts, part) {
			score += 2
		}
	}
	if containsPart(candParts, s.DocsDir) {
		score++
	}
	if !s.archival(candidate) {
		score += 3
	}
	for _, category := range s.CategoryDirs {
		if containsPart(origParts, category) && containsPart(candParts, category) {
			score += 5
		}
	}
	return score
}

func (s *Scorer) archival(candidate string) bool {
	parts := splitParts(filepath.ToSlash(candidate))
	for _, dir := range s.ArchiveDirs {
		if containsPart(parts, dir) {
			return true
		}
	}
	return false
}

// RelativeTo re-expresses an absolute candidate path relative to the source
// file's directory, with forward slashes.
func RelativeTo(sourceFile, candidate string) string {
	rel, err := filepath.Rel(filepath.Dir(sourceFile), candidate)
	if err != nil {
		return filepath.ToSlash(candidate)
	}
	return filepath.ToSlash(rel)
}

func splitParts(path string) []string {
	parts := make([]string, 0, 8)
	for _, part := range strings.Split(path, "/") {
		if part == "" || part == "." {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

func containsPart(parts []string, want string) bool {
	for _, part := range parts {
		if part == want {
			return true
		}
	}
	return false
}
