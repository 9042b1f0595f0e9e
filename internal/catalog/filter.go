package catalog

import (
	"strings"

	"github.com/tutorhub/client/internal/models"
)

// FilterSpec describes the active catalog filters. It is transient,
// client-only state and is never persisted. Zero-valued fields are inactive;
// MinFee and MaxFee use pointers so a zero bound can be distinguished from
// an absent one.
type FilterSpec struct {
	Text       string
	Subject    string
	MinFee     *float64
	MaxFee     *float64
	MinRating  float64
	OnlineOnly bool
}

// IsZero reports whether no filter is active.
func (s FilterSpec) IsZero() bool {
	return s.Text == "" && s.Subject == "" && s.MinFee == nil && s.MaxFee == nil &&
		s.MinRating == 0 && !s.OnlineOnly
}

// Filter returns the tutors matching every active predicate, preserving the
// input catalog order. It is pure and synchronous: cheap enough to re-run on
// every keystroke over the full in-memory catalog.
func Filter(tutors []models.Tutor, spec FilterSpec) []models.Tutor {
	if spec.IsZero() {
		return tutors
	}

	matched := make([]models.Tutor, 0, len(tutors))
	for _, tutor := range tutors {
		if matches(tutor, spec) {
			matched = append(matched, tutor)
		}
	}
	return matched
}

func matches(tutor models.Tutor, spec FilterSpec) bool {
	if spec.Text != "" && !matchesText(tutor, spec.Text) {
		return false
	}
	if spec.Subject != "" && !hasSubject(tutor, spec.Subject) {
		return false
	}
	// a missing fee is treated as zero
	if spec.MinFee != nil && float64(tutor.Fee) < *spec.MinFee {
		return false
	}
	if spec.MaxFee != nil && float64(tutor.Fee) > *spec.MaxFee {
		return false
	}
	// a missing rating is treated as zero, so a rating floor excludes
	// unrated tutors
	if spec.MinRating > 0 && tutor.AverageRating < spec.MinRating {
		return false
	}
	if spec.OnlineOnly && !tutor.IsOnline {
		return false
	}
	return true
}

// matchesText reports whether the query is a case-insensitive substring of
// the tutor's display name or any of its subject names.
func matchesText(tutor models.Tutor, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(tutor.Name), q) {
		return true
	}
	for _, subject := range tutor.Subjects {
		if strings.Contains(strings.ToLower(subject.Name), q) {
			return true
		}
	}
	return false
}

// hasSubject reports whether the tutor teaches the exact subject name.
func hasSubject(tutor models.Tutor, name string) bool {
	for _, subject := range tutor.Subjects {
		if subject.Name == name {
			return true
		}
	}
	return false
}
