package api

import (
	"context"

	"github.com/tutorhub/client/internal/models"
)

// StudentProfile fetches the calling student's profile.
func (c *Client) StudentProfile(ctx context.Context) (models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := c.get(ctx, "/api/student-profile/", &profile); err != nil {
		return models.StudentProfile{}, err
	}
	return profile, nil
}

// UpdateStudentProfile stores the student's preferences.
func (c *Client) UpdateStudentProfile(ctx context.Context, profile models.StudentProfile) error {
	return c.put(ctx, "/api/student-profile/", profile, nil)
}

// TutorProfileUpdate carries the editable fields of a tutor listing.
type TutorProfileUpdate struct {
	Bio             string       `json:"bio"`
	Fee             models.Money `json:"fee"`
	Location        string       `json:"location"`
	IsOnline        bool         `json:"is_online"`
	ExperienceYears int          `json:"experience_years"`
	SubjectIDs      []int64      `json:"subjects,omitempty"`
}

// TutorProfile fetches the calling tutor's own listing. A tutor without a
// profile yet receives a not-found RemoteError.
func (c *Client) TutorProfile(ctx context.Context) (models.TutorProfile, error) {
	var profile models.TutorProfile
	if err := c.get(ctx, "/api/tutor-profile/", &profile); err != nil {
		return models.TutorProfile{}, err
	}
	return profile, nil
}

// CreateTutorProfile publishes a first-time tutor listing.
func (c *Client) CreateTutorProfile(ctx context.Context, update TutorProfileUpdate) (models.TutorProfile, error) {
	var profile models.TutorProfile
	if err := c.post(ctx, "/api/tutor-profile/create/", update, &profile); err != nil {
		return models.TutorProfile{}, err
	}
	return profile, nil
}

// UpdateTutorProfile edits an existing tutor listing.
func (c *Client) UpdateTutorProfile(ctx context.Context, update TutorProfileUpdate) (models.TutorProfile, error) {
	var profile models.TutorProfile
	if err := c.put(ctx, "/api/tutor-profile/update/", update, &profile); err != nil {
		return models.TutorProfile{}, err
	}
	return profile, nil
}

// MyStudents lists students the calling tutor has taught, with completed
// session counts.
func (c *Client) MyStudents(ctx context.Context) ([]models.StudentSummary, error) {
	var students []models.StudentSummary
	if err := c.get(ctx, "/api/my-students/", &students); err != nil {
		return nil, err
	}
	return students, nil
}
