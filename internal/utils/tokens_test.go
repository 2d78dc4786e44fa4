package utils

import (
	"encoding/hex"
	"testing"
)

func TestNewRefreshToken(t *testing.T) {
	tok, err := NewRefreshToken()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// 32 байта энтропии = 64 hex-символа
	if len(tok) != 64 {
		t.Errorf("len = %d, want 64", len(tok))
	}
	if _, err := hex.DecodeString(tok); err != nil {
		t.Errorf("token is not valid hex: %v", err)
	}

	other, err := NewRefreshToken()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tok == other {
		t.Error("two tokens must not collide")
	}
}
