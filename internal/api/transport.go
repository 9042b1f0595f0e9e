package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tutorhub/client/internal/logging"
)

// TokenSource supplies the current access token, or "" when no session is
// active. Requests without a token proceed unauthenticated; the remote side
// is responsible for rejecting them.
type TokenSource interface {
	AccessToken() string
}

// Transport decorates outbound requests with bearer credentials and
// structured logging metadata.
type Transport struct {
	Base   http.RoundTripper
	Tokens TokenSource
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	requestID := uuid.NewString()

	out := req.Clone(req.Context())
	out.Header.Set("X-Request-ID", requestID)
	if t.Tokens != nil {
		if token := t.Tokens.AccessToken(); token != "" {
			out.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger := logging.FromContext(req.Context()).With(
		slog.String("request_id", requestID),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		logger.Warn("request failed",
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)
	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
