package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tutorhub/client/internal/api"
	"github.com/tutorhub/client/internal/logging"
	"github.com/tutorhub/client/internal/models"
)

// API is the remote booking surface the controller depends on.
type API interface {
	CreateBooking(ctx context.Context, tutorID, subjectID int64, message string) (models.Booking, error)
	RespondToBooking(ctx context.Context, bookingID int64, decision models.BookingDecision) error
	CompleteBooking(ctx context.Context, bookingID int64) error
	SubmitReview(ctx context.Context, review models.Review) error
	ToggleFavorite(ctx context.Context, tutorID int64) error
	MyBookings(ctx context.Context) ([]models.Booking, error)
	TutorBookings(ctx context.Context) ([]models.Booking, error)
	FavoriteTutors(ctx context.Context) ([]models.Tutor, error)
}

// Controller drives booking creation, status transitions, reviews, and
// favorite membership. Every successful mutation invalidates and fully
// reloads the dependent read views rather than patching records in place:
// partial updates risk drifting from server truth after concurrent
// tutor/student actions.
type Controller struct {
	api  API
	role models.Role

	mu        sync.RWMutex
	bookings  []models.Booking
	favorites []models.Tutor
	reviewed  map[int64]bool
}

// NewController constructs a Controller reading and mutating bookings on
// behalf of the given role.
func NewController(remote API, role models.Role) *Controller {
	if remote == nil {
		panic("booking: remote API must not be nil")
	}
	return &Controller{
		api:      remote,
		role:     role,
		reviewed: make(map[int64]bool),
	}
}

// Refresh reloads every read view from the server: bookings for the active
// role, plus favorites for students.
func (c *Controller) Refresh(ctx context.Context) error {
	var (
		bookings []models.Booking
		err      error
	)
	if c.role == models.RoleTutor {
		bookings, err = c.api.TutorBookings(ctx)
	} else {
		bookings, err = c.api.MyBookings(ctx)
	}
	if err != nil {
		return err
	}

	var favorites []models.Tutor
	if c.role != models.RoleTutor {
		favorites, err = c.api.FavoriteTutors(ctx)
		if err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.bookings = bookings
	c.favorites = favorites
	c.mu.Unlock()
	return nil
}

// Bookings returns the last loaded booking view. Review flags submitted
// locally are merged in for servers that do not echo them back.
func (c *Controller) Bookings() []models.Booking {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Booking, len(c.bookings))
	copy(out, c.bookings)
	for i := range out {
		if c.reviewed[out[i].ID] {
			out[i].Reviewed = true
		}
	}
	return out
}

// Favorites returns the last loaded favorite-tutor view.
func (c *Controller) Favorites() []models.Tutor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Tutor, len(c.favorites))
	copy(out, c.favorites)
	return out
}

// IsFavorite reports membership in the favorites set as of the last reload.
func (c *Controller) IsFavorite(tutorID int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, tutor := range c.favorites {
		if tutor.ID == tutorID {
			return true
		}
	}
	return false
}

// CreateBooking validates locally, submits the booking, and reloads the read
// views. The booking targets the provided subject, or the tutor's first
// subject when none is chosen. A new booking starts pending.
func (c *Controller) CreateBooking(ctx context.Context, tutor models.Tutor, subject models.Subject, message string) (models.Booking, error) {
	if strings.TrimSpace(message) == "" {
		return models.Booking{}, &ValidationError{Field: "message", Message: "please enter a message for the tutor"}
	}
	if len(tutor.Subjects) == 0 {
		return models.Booking{}, &ValidationError{Field: "subject", Message: "this tutor has no subjects available"}
	}
	if subject.ID == 0 {
		subject = tutor.Subjects[0]
	}

	tutorID := tutor.UserID
	if tutorID == 0 {
		tutorID = tutor.ID
	}

	booking, err := c.api.CreateBooking(ctx, tutorID, subject.ID, message)
	if err != nil {
		return models.Booking{}, err
	}

	c.reloadAfterMutation(ctx, "create booking")
	return booking, nil
}

// RespondToBooking accepts or rejects a pending booking on behalf of the
// tutor. Transition legality is enforced remotely; a rejection still
// triggers a reload so stale views catch up with true state.
func (c *Controller) RespondToBooking(ctx context.Context, bookingID int64, decision models.BookingDecision) error {
	if decision != models.DecisionAccept && decision != models.DecisionReject {
		return &ValidationError{Field: "decision", Message: fmt.Sprintf("unknown decision %q", decision)}
	}
	return c.transition(ctx, func() error {
		return c.api.RespondToBooking(ctx, bookingID, decision)
	})
}

// CompleteBooking marks an accepted booking completed.
func (c *Controller) CompleteBooking(ctx context.Context, bookingID int64) error {
	return c.transition(ctx, func() error {
		return c.api.CompleteBooking(ctx, bookingID)
	})
}

func (c *Controller) transition(ctx context.Context, op func() error) error {
	err := op()
	if err == nil {
		c.reloadAfterMutation(ctx, "booking transition")
		return nil
	}

	var invalid *api.InvalidTransitionError
	if errors.As(err, &invalid) {
		// the view is stale; reload so the UI reflects true state
		c.reloadAfterMutation(ctx, "rejected transition")
	}
	return err
}

// SubmitReview records a rating for the tutor of a completed booking. A
// booking is reviewable exactly once, and only after completion.
func (c *Controller) SubmitReview(ctx context.Context, bookingID int64, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return &ValidationError{Field: "rating", Message: "rating must be between 1 and 5"}
	}

	target, ok := c.findBooking(bookingID)
	if !ok {
		return &ValidationError{Field: "booking", Message: fmt.Sprintf("unknown booking %d", bookingID)}
	}
	if target.Status != models.BookingCompleted {
		return &ValidationError{Field: "booking", Message: "only completed bookings can be reviewed"}
	}
	if target.Reviewed {
		return &ValidationError{Field: "booking", Message: "this booking has already been reviewed"}
	}

	review := models.Review{TutorID: target.TutorID, Rating: rating, Comment: comment}
	if err := c.api.SubmitReview(ctx, review); err != nil {
		return err
	}

	c.mu.Lock()
	c.reviewed[bookingID] = true
	c.mu.Unlock()

	c.reloadAfterMutation(ctx, "submit review")
	return nil
}

// ToggleFavorite flips favorite membership for a tutor. Membership is not
// flipped optimistically: the server is the source of truth, so the
// favorites view is re-queried after every toggle.
func (c *Controller) ToggleFavorite(ctx context.Context, tutorID int64) error {
	if err := c.api.ToggleFavorite(ctx, tutorID); err != nil {
		return err
	}

	favorites, err := c.api.FavoriteTutors(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.favorites = favorites
	c.mu.Unlock()
	return nil
}

func (c *Controller) findBooking(bookingID int64) (models.Booking, bool) {
	for _, b := range c.Bookings() {
		if b.ID == bookingID {
			return b, true
		}
	}
	return models.Booking{}, false
}

// reloadAfterMutation refreshes the read views after a successful mutation.
// A failed reload is logged but not surfaced: the mutation itself succeeded
// and the next explicit refresh will converge.
func (c *Controller) reloadAfterMutation(ctx context.Context, cause string) {
	if err := c.Refresh(ctx); err != nil {
		logging.FromContext(ctx).Warn("reload after mutation failed", "cause", cause, "error", err)
	}
}
