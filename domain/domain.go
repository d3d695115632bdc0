// Package domain holds the error values and response envelopes shared by
// every layer of the service.
package domain

import "errors"

var (
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the two cases are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated is returned when a request carries no usable credential.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound is returned when a track id does not exist for the caller.
	ErrNotFound = errors.New("track not found")

	// ErrEmptyName is returned when a track is created or renamed without a name.
	ErrEmptyName = errors.New("name is required")
)

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body for successful requests with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
//
// AccessToken is empty in session mode, where the credential travels in a
// cookie instead of the body.
type LoginResponse struct {
	AccessToken string `json:"access_token,omitempty"`
	UserID      uint   `json:"user_id"`
}
