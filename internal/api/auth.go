package api

import (
	"context"
	"errors"

	"github.com/tutorhub/client/internal/models"
)

const loginFallbackMessage = "Invalid credentials. Please try again."

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    *models.User `json:"user"`
}

// Login exchanges credentials for a session. The response is accepted only
// when it supplies both tokens; a missing user object is tolerated and a
// default student identity is synthesized so the flow never stalls on a
// malformed response.
func (c *Client) Login(ctx context.Context, username, password string) (models.Session, error) {
	var resp loginResponse
	err := c.post(ctx, "/api/login/", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		var remote *RemoteError
		if errors.As(err, &remote) {
			message := remote.Message
			if message == fallbackMessage {
				message = loginFallbackMessage
			}
			return models.Session{}, &AuthenticationError{Message: message}
		}
		return models.Session{}, err
	}

	if resp.Access == "" || resp.Refresh == "" {
		return models.Session{}, &AuthenticationError{Message: loginFallbackMessage}
	}

	user := resp.User
	if user == nil {
		user = &models.User{
			ID:       0,
			Username: username,
			Email:    "",
			Role:     models.RoleStudent,
		}
	}

	return models.Session{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		User:         *user,
	}, nil
}

// RegisterRequest carries the fields required to create a new account.
type RegisterRequest struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type registerResponse struct {
	User   models.User `json:"user"`
	Tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"tokens"`
	Message string `json:"message"`
}

// Register creates a new account and returns the session issued alongside
// it. Validation failures surface with the field-specific server message.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.Session, error) {
	var resp registerResponse
	if err := c.post(ctx, "/api/register/", req, &resp); err != nil {
		return models.Session{}, err
	}
	return models.Session{
		AccessToken:  resp.Tokens.Access,
		RefreshToken: resp.Tokens.Refresh,
		User:         resp.User,
	}, nil
}
