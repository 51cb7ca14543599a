package linkfix

import "github.com/hbollon/go-edlib"

// NearestName returns the indexed filename closest to name by edit distance,
// or empty when nothing is near enough to be a useful hint. Suggestions are
// purely advisory and never applied automatically.
func NearestName(name string, names []string) string {
	best := ""
	bestDistance := -1
	for _, candidate := range names {
		distance := edlib.LevenshteinDistance(name, candidate)
		if bestDistance == -1 || distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}
	if best == "" || bestDistance > len(name)/2 {
		return ""
	}
	return best
}
