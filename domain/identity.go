package domain

// Identity is the authenticated caller resolved from a request credential,
// either a bearer token or a server-side session.
type Identity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}
