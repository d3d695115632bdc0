package util

import "github.com/golang-jwt/jwt/v4"

// JwtCustomClaims carries the identity inside an access token. The user id
// travels in the registered Subject claim; Name is the username.
type JwtCustomClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}
