package profile

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/tutorhub/client/internal/api"
	"github.com/tutorhub/client/internal/models"
)

type fakeAPI struct {
	tutorProfile    models.TutorProfile
	tutorProfileErr error

	createCalls int
	updateCalls int

	subjects    []models.Subject
	lastSubject string
}

func (f *fakeAPI) StudentProfile(context.Context) (models.StudentProfile, error) {
	return models.StudentProfile{}, nil
}

func (f *fakeAPI) UpdateStudentProfile(context.Context, models.StudentProfile) error {
	return nil
}

func (f *fakeAPI) TutorProfile(context.Context) (models.TutorProfile, error) {
	return f.tutorProfile, f.tutorProfileErr
}

func (f *fakeAPI) CreateTutorProfile(_ context.Context, update api.TutorProfileUpdate) (models.TutorProfile, error) {
	f.createCalls++
	return models.TutorProfile{Bio: update.Bio}, nil
}

func (f *fakeAPI) UpdateTutorProfile(_ context.Context, update api.TutorProfileUpdate) (models.TutorProfile, error) {
	f.updateCalls++
	return models.TutorProfile{Bio: update.Bio}, nil
}

func (f *fakeAPI) Subjects(context.Context) ([]models.Subject, error) {
	return f.subjects, nil
}

func (f *fakeAPI) CreateSubject(_ context.Context, name string) (models.Subject, error) {
	f.lastSubject = name
	return models.Subject{ID: 1, Name: name}, nil
}

func (f *fakeAPI) MyStudents(context.Context) ([]models.StudentSummary, error) {
	return nil, nil
}

func TestTutorProfileNotFoundMeansNoProfile(t *testing.T) {
	remote := &fakeAPI{tutorProfileErr: &api.RemoteError{StatusCode: http.StatusNotFound, Message: "not found"}}
	svc := NewService(remote)

	_, hasProfile, err := svc.TutorProfile(context.Background())
	if err != nil {
		t.Fatalf("a missing profile is not an error: %v", err)
	}
	if hasProfile {
		t.Fatal("expected hasProfile false")
	}
}

func TestTutorProfileOtherErrorsSurface(t *testing.T) {
	remote := &fakeAPI{tutorProfileErr: &api.RemoteError{StatusCode: http.StatusInternalServerError, Message: "boom"}}
	svc := NewService(remote)

	if _, _, err := svc.TutorProfile(context.Background()); err == nil {
		t.Fatal("expected error to surface")
	}
}

func TestSaveTutorProfileCreatesFirstTime(t *testing.T) {
	remote := &fakeAPI{tutorProfileErr: &api.RemoteError{StatusCode: http.StatusNotFound, Message: "not found"}}
	svc := NewService(remote)

	if _, err := svc.SaveTutorProfile(context.Background(), api.TutorProfileUpdate{Bio: "hi"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if remote.createCalls != 1 || remote.updateCalls != 0 {
		t.Fatalf("expected a create, got create=%d update=%d", remote.createCalls, remote.updateCalls)
	}
}

func TestSaveTutorProfileUpdatesExisting(t *testing.T) {
	remote := &fakeAPI{tutorProfile: models.TutorProfile{ID: 4, Bio: "old"}}
	svc := NewService(remote)

	if _, err := svc.SaveTutorProfile(context.Background(), api.TutorProfileUpdate{Bio: "new"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if remote.createCalls != 0 || remote.updateCalls != 1 {
		t.Fatalf("expected an update, got create=%d update=%d", remote.createCalls, remote.updateCalls)
	}
}

func TestAddSubjectTrimsAndValidates(t *testing.T) {
	remote := &fakeAPI{}
	svc := NewService(remote)

	subject, err := svc.AddSubject(context.Background(), "  Chemistry  ")
	if err != nil {
		t.Fatalf("add subject: %v", err)
	}
	if subject.Name != "Chemistry" || remote.lastSubject != "Chemistry" {
		t.Fatalf("expected trimmed name, got %q", remote.lastSubject)
	}

	if _, err := svc.AddSubject(context.Background(), "   "); !errors.Is(err, ErrInvalidSubjectName) {
		t.Fatalf("expected ErrInvalidSubjectName, got %v", err)
	}
}
