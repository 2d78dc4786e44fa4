package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// refresh-токен — непрозрачная строка, живёт только в БД; 256 бит энтропии.
const refreshTokenBytes = 32

// NewRefreshToken выпускает свежий opaque refresh-токен в hex.
func NewRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
