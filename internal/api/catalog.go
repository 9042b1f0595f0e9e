package api

import (
	"context"
	"fmt"

	"github.com/tutorhub/client/internal/models"
)

// Tutors fetches the full tutor catalog. The catalog is read wholesale; no
// incremental patching is modeled.
func (c *Client) Tutors(ctx context.Context) ([]models.Tutor, error) {
	var tutors []models.Tutor
	if err := c.get(ctx, "/tutors/", &tutors); err != nil {
		return nil, err
	}
	return tutors, nil
}

// TutorByID fetches a single tutor record.
func (c *Client) TutorByID(ctx context.Context, id int64) (models.Tutor, error) {
	var tutor models.Tutor
	if err := c.get(ctx, fmt.Sprintf("/tutors/%d/", id), &tutor); err != nil {
		return models.Tutor{}, err
	}
	return tutor, nil
}

// Subjects lists every teachable subject.
func (c *Client) Subjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := c.get(ctx, "/api/subjects/", &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// CreateSubject registers a new subject by name.
func (c *Client) CreateSubject(ctx context.Context, name string) (models.Subject, error) {
	var subject models.Subject
	payload := map[string]string{"name": name}
	if err := c.post(ctx, "/api/subjects/", payload, &subject); err != nil {
		return models.Subject{}, err
	}
	return subject, nil
}
