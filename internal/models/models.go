package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Role identifies which side of the marketplace an account belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

// User represents an authenticated account within the TutorHub platform.
// The record is immutable for the lifetime of a session.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Session groups the bearer credentials and the identity they were issued to.
type Session struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	User         User   `json:"user"`
}

// Subject is a teachable topic referenced by tutors and bookings.
type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Money is a decimal amount. The remote API serializes decimals as JSON
// strings ("300.00"), so it accepts either a string or a number on the wire.
type Money float64

// UnmarshalJSON accepts "300.00", 300, null, or "" with the latter two read as zero.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*m = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*m = Money(v)
	return nil
}

// MarshalJSON emits the amount as a plain JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}

// Tutor is a read-mostly catalog entity describing an available tutor.
// The catalog is refreshed wholesale on each load; records are never
// patched in place.
type Tutor struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id,omitempty"`
	Name            string    `json:"user"`
	Bio             string    `json:"bio"`
	Subjects        []Subject `json:"subjects"`
	Fee             Money     `json:"fee"`
	Location        string    `json:"location"`
	IsOnline        bool      `json:"is_online"`
	ExperienceYears int       `json:"experience_years"`
	AverageRating   float64   `json:"average_rating"`
}

// BookingStatus is the state-machine field of a booking. Transitions are
// monotonic: pending may move to accepted or rejected, accepted to
// completed, and completed, rejected, and cancelled are terminal.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingDecision is a tutor's response to a pending booking.
type BookingDecision string

const (
	DecisionAccept BookingDecision = "accept"
	DecisionReject BookingDecision = "reject"
)

// Booking is a student's request for a session with a tutor. The *_name
// fields are denormalized extras the API attaches to list responses.
type Booking struct {
	ID          int64         `json:"id"`
	StudentID   int64         `json:"student"`
	TutorID     int64         `json:"tutor"`
	SubjectID   int64         `json:"subject"`
	StudentName string        `json:"student_name,omitempty"`
	TutorName   string        `json:"tutor_name,omitempty"`
	SubjectName string        `json:"subject_name,omitempty"`
	Message     string        `json:"message"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	Reviewed    bool          `json:"reviewed,omitempty"`
}

// Review rates a tutor after a completed booking. One review per booking.
type Review struct {
	TutorID int64  `json:"tutor"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// StudentProfile carries a student's stored preferences.
type StudentProfile struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"user,omitempty"`
	PreferredLocation string `json:"preferred_location"`
}

// TutorProfile is the tutor's own editable listing record.
type TutorProfile struct {
	ID              int64     `json:"id"`
	Name            string    `json:"user"`
	Bio             string    `json:"bio"`
	Subjects        []Subject `json:"subjects"`
	Fee             Money     `json:"fee"`
	Location        string    `json:"location"`
	IsOnline        bool      `json:"is_online"`
	ExperienceYears int       `json:"experience_years"`
	AverageRating   float64   `json:"average_rating"`
}

// StudentSummary is a roster row for tutors: a student they have taught
// and how many sessions were completed together.
type StudentSummary struct {
	ID            int64   `json:"id"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	TotalSessions int     `json:"total_sessions"`
	AvgRating     float64 `json:"avg_rating"`
}
