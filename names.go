package quakerisk

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxFuzzyDistance caps the edit distance accepted by FindCity.
const maxFuzzyDistance = 3

// fuzzyMatch compares two strings with optional Levenshtein tolerance.
// maxDist 0 means an exact case-insensitive match.
func fuzzyMatch(query, candidate string, maxDist int) bool {
	if maxDist == 0 {
		return strings.EqualFold(query, candidate)
	}
	dist := levenshtein.ComputeDistance(
		strings.ToLower(query),
		strings.ToLower(candidate),
	)
	return dist <= maxDist
}

// FindCity resolves a city by name so a host can build a selection Target
// from typed input. An exact case-insensitive match always wins; otherwise
// the closest name within maxDist edits is returned, ties broken by larger
// population then input order. It returns nil when nothing matches.
func FindCity(cities []*City, name string, maxDist int) *City {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if maxDist > maxFuzzyDistance {
		maxDist = maxFuzzyDistance
	}
	if maxDist < 0 {
		maxDist = 0
	}

	for _, c := range cities {
		if strings.EqualFold(name, c.Name) {
			return c
		}
	}
	if maxDist == 0 {
		return nil
	}

	var best *City
	bestDist := maxDist + 1
	lname := strings.ToLower(name)
	for _, c := range cities {
		if !fuzzyMatch(name, c.Name, maxDist) {
			continue
		}
		d := levenshtein.ComputeDistance(lname, strings.ToLower(c.Name))
		switch {
		case d < bestDist:
			best, bestDist = c, d
		case d == bestDist && population(c) > population(best):
			best = c
		}
	}
	return best
}

func population(c *City) int64 {
	if c == nil || c.Population == nil {
		return 0
	}
	return *c.Population
}
