package profile

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tutorhub/client/internal/api"
	"github.com/tutorhub/client/internal/models"
)

// ErrInvalidSubjectName indicates a subject could not be created from the
// provided name.
var ErrInvalidSubjectName = errors.New("subject name must not be empty")

// API is the remote profile surface the service depends on.
type API interface {
	StudentProfile(ctx context.Context) (models.StudentProfile, error)
	UpdateStudentProfile(ctx context.Context, profile models.StudentProfile) error
	TutorProfile(ctx context.Context) (models.TutorProfile, error)
	CreateTutorProfile(ctx context.Context, update api.TutorProfileUpdate) (models.TutorProfile, error)
	UpdateTutorProfile(ctx context.Context, update api.TutorProfileUpdate) (models.TutorProfile, error)
	Subjects(ctx context.Context) ([]models.Subject, error)
	CreateSubject(ctx context.Context, name string) (models.Subject, error)
	MyStudents(ctx context.Context) ([]models.StudentSummary, error)
}

// Service mediates profile and subject management for both roles.
type Service struct {
	api API
}

// NewService constructs a profile Service.
func NewService(remote API) *Service {
	if remote == nil {
		panic("profile: remote API must not be nil")
	}
	return &Service{api: remote}
}

// StudentProfile fetches the student's stored preferences.
func (s *Service) StudentProfile(ctx context.Context) (models.StudentProfile, error) {
	return s.api.StudentProfile(ctx)
}

// SaveStudentProfile stores the student's preferences.
func (s *Service) SaveStudentProfile(ctx context.Context, profile models.StudentProfile) error {
	return s.api.UpdateStudentProfile(ctx, profile)
}

// TutorProfile fetches the tutor's own listing. hasProfile is false when the
// tutor has not published one yet.
func (s *Service) TutorProfile(ctx context.Context) (profile models.TutorProfile, hasProfile bool, err error) {
	profile, err = s.api.TutorProfile(ctx)
	if err != nil {
		var remote *api.RemoteError
		if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
			return models.TutorProfile{}, false, nil
		}
		return models.TutorProfile{}, false, err
	}
	return profile, true, nil
}

// SaveTutorProfile publishes or edits the tutor's listing: the first save
// creates it, later saves update it in place.
func (s *Service) SaveTutorProfile(ctx context.Context, update api.TutorProfileUpdate) (models.TutorProfile, error) {
	_, hasProfile, err := s.TutorProfile(ctx)
	if err != nil {
		return models.TutorProfile{}, err
	}
	if hasProfile {
		return s.api.UpdateTutorProfile(ctx, update)
	}
	return s.api.CreateTutorProfile(ctx, update)
}

// Subjects lists every teachable subject.
func (s *Service) Subjects(ctx context.Context) ([]models.Subject, error) {
	return s.api.Subjects(ctx)
}

// AddSubject creates a new subject, trimming surrounding whitespace first.
func (s *Service) AddSubject(ctx context.Context, name string) (models.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Subject{}, ErrInvalidSubjectName
	}
	return s.api.CreateSubject(ctx, name)
}

// Students lists the tutor's taught students with completed session counts.
func (s *Service) Students(ctx context.Context) ([]models.StudentSummary, error) {
	return s.api.MyStudents(ctx)
}
