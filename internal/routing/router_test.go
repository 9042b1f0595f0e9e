package routing

import (
	"testing"

	"github.com/tutorhub/client/internal/models"
)

func TestRoute(t *testing.T) {
	cases := []struct {
		name    string
		session *models.Session
		want    Destination
	}{
		{name: "no session", session: nil, want: DestinationLogin},
		{
			name:    "student",
			session: &models.Session{User: models.User{Role: models.RoleStudent}},
			want:    DestinationStudentHome,
		},
		{
			name:    "tutor",
			session: &models.Session{User: models.User{Role: models.RoleTutor}},
			want:    DestinationTutorHome,
		},
		{
			name:    "unknown role fails closed",
			session: &models.Session{User: models.User{Role: "admin"}},
			want:    DestinationLogin,
		},
		{
			name:    "empty role fails closed",
			session: &models.Session{},
			want:    DestinationLogin,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Route(tc.session); got != tc.want {
				t.Fatalf("Route() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRouteIsDeterministic(t *testing.T) {
	session := &models.Session{User: models.User{ID: 1, Username: "ann", Role: models.RoleStudent}}
	first := Route(session)
	for i := 0; i < 10; i++ {
		if Route(session) != first {
			t.Fatal("Route must return the same destination for the same session")
		}
	}
}
