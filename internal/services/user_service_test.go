package services

import (
	"context"
	"errors"
	"testing"

	"tasktracker/internal/apperrors"
	"tasktracker/internal/models"
)

type fakeRoleRepo struct{}

func (r *fakeRoleRepo) FindIDByName(ctx context.Context, name string) (int64, error) {
	if name == "USER" {
		return 2, nil
	}
	return 0, nil
}

type recordingEmailService struct {
	sent []string
	fail bool
}

func (s *recordingEmailService) SendWelcomeEmail(email, username string) error {
	if s.fail {
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, email)
	return nil
}

func newUserFixture(email *recordingEmailService) (UserService, *fakeUserRepo) {
	repo := &fakeUserRepo{users: []*models.User{
		{ID: 1, Email: "taken@mail.ru", Username: "taken"},
	}}
	var emailSvc EmailService
	if email != nil {
		emailSvc = email
	}
	return NewUserService(repo, &fakeRoleRepo{}, NewAuthService(), emailSvc), repo
}

func TestRegister(t *testing.T) {
	email := &recordingEmailService{}
	svc, repo := newUserFixture(email)

	req := models.RegisterRequest{Email: " new@mail.ru ", Username: "newbie", Password: "secret123"}
	if err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, _ := repo.GetByEmail(context.Background(), "new@mail.ru")
	if u == nil {
		t.Fatal("user not stored (email must be trimmed)")
	}
	if u.PasswordHash == "secret123" || u.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if len(u.Roles) != 1 || u.Roles[0] != "USER" {
		t.Errorf("roles = %v, want [USER]", u.Roles)
	}
	if len(email.sent) != 1 || email.sent[0] != "new@mail.ru" {
		t.Errorf("welcome email sent to %v, want [new@mail.ru]", email.sent)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	cases := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"email taken", models.RegisterRequest{Email: "taken@mail.ru", Username: "fresh", Password: "secret123"}},
		{"username taken", models.RegisterRequest{Email: "fresh@mail.ru", Username: "taken", Password: "secret123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newUserFixture(nil)
			before := len(repo.users)
			err := svc.Register(context.Background(), tc.req)
			if !errors.Is(err, apperrors.ErrDuplicateTitle) {
				t.Fatalf("err = %v, want ErrDuplicateTitle", err)
			}
			if len(repo.users) != before {
				t.Error("duplicate register must not write")
			}
		})
	}
}

// Сбой почты не валит регистрацию.
func TestRegisterEmailFailureIsNonFatal(t *testing.T) {
	email := &recordingEmailService{fail: true}
	svc, repo := newUserFixture(email)

	req := models.RegisterRequest{Email: "new@mail.ru", Username: "newbie", Password: "secret123"}
	if err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("register must survive email failure, got: %v", err)
	}
	if u, _ := repo.GetByEmail(context.Background(), "new@mail.ru"); u == nil {
		t.Fatal("user not stored")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	auth := NewAuthService()
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := auth.CheckPassword(hash, "secret123"); err != nil {
		t.Errorf("check with correct password: %v", err)
	}
	if err := auth.CheckPassword(hash, "wrong"); err == nil {
		t.Error("check with wrong password must fail")
	}
}
