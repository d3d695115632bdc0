package models

import "time"

// User represents a registered account.
//
// PasswordHash holds the bcrypt digest of the password and is never
// serialized; the plaintext is never stored anywhere.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"-"`
}
