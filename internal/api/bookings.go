package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tutorhub/client/internal/models"
)

type createBookingRequest struct {
	Tutor   int64  `json:"tutor"`
	Subject int64  `json:"subject"`
	Message string `json:"message"`
}

// CreateBooking submits a booking request. A successful booking starts in
// the pending state.
func (c *Client) CreateBooking(ctx context.Context, tutorID, subjectID int64, message string) (models.Booking, error) {
	var booking models.Booking
	req := createBookingRequest{Tutor: tutorID, Subject: subjectID, Message: message}
	if err := c.post(ctx, "/api/bookings/", req, &booking); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// MyBookings lists the calling student's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.get(ctx, "/api/my-bookings/", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// TutorBookings lists bookings addressed to the calling tutor.
func (c *Client) TutorBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.get(ctx, "/api/tutor-bookings/", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// RespondToBooking accepts or rejects a pending booking. One dedicated
// remote operation exists per transition; there is no generic status call.
func (c *Client) RespondToBooking(ctx context.Context, bookingID int64, decision models.BookingDecision) error {
	var path string
	switch decision {
	case models.DecisionAccept:
		path = fmt.Sprintf("/api/bookings/%d/accept/", bookingID)
	case models.DecisionReject:
		path = fmt.Sprintf("/api/bookings/%d/reject/", bookingID)
	default:
		return fmt.Errorf("unknown booking decision %q", decision)
	}
	return c.transition(ctx, bookingID, path)
}

// CompleteBooking marks an accepted booking as completed.
func (c *Client) CompleteBooking(ctx context.Context, bookingID int64) error {
	return c.transition(ctx, bookingID, fmt.Sprintf("/api/bookings/%d/complete/", bookingID))
}

// transition issues a booking state change and converts a remote rejection
// into an InvalidTransitionError so callers know to reload their views.
func (c *Client) transition(ctx context.Context, bookingID int64, path string) error {
	err := c.put(ctx, path, struct{}{}, nil)
	if err == nil {
		return nil
	}
	var remote *RemoteError
	if errors.As(err, &remote) && remote.StatusCode >= http.StatusBadRequest && remote.StatusCode < http.StatusInternalServerError {
		return &InvalidTransitionError{BookingID: bookingID, Message: remote.Message}
	}
	return err
}

// FavoriteTutors lists the calling student's favorite tutors. Membership is
// authoritative on the server; callers re-query rather than flipping local
// state.
func (c *Client) FavoriteTutors(ctx context.Context) ([]models.Tutor, error) {
	var tutors []models.Tutor
	if err := c.get(ctx, "/api/favorite-tutors/", &tutors); err != nil {
		return nil, err
	}
	return tutors, nil
}

// ToggleFavorite flips favorite membership for the given tutor. The response
// body is not trusted; callers must re-query FavoriteTutors for the new
// membership.
func (c *Client) ToggleFavorite(ctx context.Context, tutorID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/favorite-tutors/%d/", tutorID), struct{}{}, nil)
}

// SubmitReview records a rating for a tutor after a completed booking.
func (c *Client) SubmitReview(ctx context.Context, review models.Review) error {
	return c.post(ctx, "/api/reviews/", review, nil)
}
