package domain

import "time"

type User struct {
	ID           int64
	Name         string
	Email        string // trimmed and lower-cased
	PasswordHash string // argon2id PHC or bcrypt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
