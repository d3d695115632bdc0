package util

import (
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"

	"github.com/dan-yates1/umg-project/domain"
	"github.com/dan-yates1/umg-project/models"
)

// CreateAccessToken signs an HS256 token for the user, valid for expiry hours.
func CreateAccessToken(user *models.User, secret string, expiry int) (string, error) {
	now := time.Now()
	claims := &JwtCustomClaims{
		Name: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour * time.Duration(expiry))),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return t, nil
}

// ParseAccessToken verifies the signature and expiry of an access token and
// extracts the identity it carries. Any verification failure maps to
// domain.ErrUnauthenticated.
func ParseAccessToken(requestToken, secret string) (domain.Identity, error) {
	claims := &JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(requestToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	return domain.Identity{UserID: uint(id), Username: claims.Name}, nil
}
