package models

import "time"

type User struct {
	ID           int64    `json:"id"`
	Email        string   `json:"email"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"` // не отдаём наружу
	Roles        []string `json:"roles"`

	// refresh-хранение в БД
	RefreshToken     *string    `json:"-"`
	RefreshExpiresAt *time.Time `json:"-"`
	RefreshRevoked   bool       `json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=30"`
	Password string `json:"password" binding:"required,max=30"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=30"`
	Username string `json:"username" binding:"required,max=30"`
	Password string `json:"password" binding:"required,min=8,max=255"`
}
