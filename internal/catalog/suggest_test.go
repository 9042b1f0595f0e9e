package catalog

import (
	"testing"

	"github.com/tutorhub/client/internal/models"
)

func knownSubjects() []models.Subject {
	return []models.Subject{
		{ID: 1, Name: "Math"},
		{ID: 2, Name: "Physics"},
		{ID: 3, Name: "Chemistry"},
	}
}

func TestSuggestSubjectForTypo(t *testing.T) {
	suggestion, ok := SuggestSubject("Fisics", knownSubjects())
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if suggestion != "Physics" {
		t.Fatalf("expected Physics got %q", suggestion)
	}
}

func TestSuggestSubjectExactMatchYieldsNothing(t *testing.T) {
	if _, ok := SuggestSubject("math", knownSubjects()); ok {
		t.Fatal("an exact (case-insensitive) match needs no suggestion")
	}
}

func TestSuggestSubjectTooFar(t *testing.T) {
	if _, ok := SuggestSubject("Woodworking", knownSubjects()); ok {
		t.Fatal("expected no suggestion for an unrelated query")
	}
}

func TestSuggestSubjectEmptyQuery(t *testing.T) {
	if _, ok := SuggestSubject("   ", knownSubjects()); ok {
		t.Fatal("expected no suggestion for an empty query")
	}
}
