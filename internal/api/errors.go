package api

import "fmt"

// AuthenticationError indicates the remote side rejected the caller's
// credentials, either at login or on any call returning unauthorized. It is
// never retried automatically; recovery is a fresh login.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return e.Message
}

// InvalidTransitionError indicates the remote side rejected a booking status
// change because the booking is no longer in a state that permits it.
// Expected after concurrent edits from another device; callers should reload
// their read views so the UI reflects true state.
type InvalidTransitionError struct {
	BookingID int64
	Message   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("booking %d: %s", e.BookingID, e.Message)
}

// NetworkError indicates a timeout or connectivity failure. The wrapped
// operation may be retried manually; reads are idempotent, creations are not.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure, please retry: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteError is any other non-2xx response, carrying the best message the
// response body offered.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error (%d): %s", e.StatusCode, e.Message)
}
