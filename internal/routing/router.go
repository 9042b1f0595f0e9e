package routing

import "github.com/tutorhub/client/internal/models"

// Destination is the top-level screen the app must be in.
type Destination int

const (
	DestinationLogin Destination = iota
	DestinationStudentHome
	DestinationTutorHome
)

func (d Destination) String() string {
	switch d {
	case DestinationStudentHome:
		return "student-home"
	case DestinationTutorHome:
		return "tutor-home"
	default:
		return "login"
	}
}

// Route maps a session (or its absence) onto a destination. It is pure and
// total: no session routes to login, and an unknown role fails closed to
// login rather than guessing a home screen.
func Route(session *models.Session) Destination {
	if session == nil {
		return DestinationLogin
	}
	switch session.User.Role {
	case models.RoleStudent:
		return DestinationStudentHome
	case models.RoleTutor:
		return DestinationTutorHome
	default:
		return DestinationLogin
	}
}
