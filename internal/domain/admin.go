package domain

import "time"

// Admin — учётная запись администратора магазина.
type Admin struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
