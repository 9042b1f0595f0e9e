package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/tutorhub/client/internal/models"
)

// maxSuggestDistance bounds how far a typo may be from a known subject name
// before no suggestion is offered.
const maxSuggestDistance = 3

// SuggestSubject returns the known subject name closest to the query, for
// "did you mean" prompts when a subject filter matches nothing. Matching is
// case-insensitive; an exact match or an empty query yields no suggestion.
func SuggestSubject(query string, subjects []models.Subject) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, subject := range subjects {
		name := strings.ToLower(subject.Name)
		if name == q {
			return "", false
		}
		dist := levenshtein.ComputeDistance(q, name)
		if dist < bestDist {
			bestDist = dist
			best = subject.Name
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}
