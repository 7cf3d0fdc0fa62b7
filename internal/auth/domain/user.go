package domain

import "time"

type User struct {
	ID           int64
	Username     string // unique
	PasswordHash string // argon2id, PHC encoded
	RoleName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
