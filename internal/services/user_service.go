package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"

	"tasktracker/internal/apperrors"
	"tasktracker/internal/authz"
	"tasktracker/internal/models"
	"tasktracker/internal/repositories"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	UpdateRefresh(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	RotateRefresh(ctx context.Context, oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	GetByRefreshToken(ctx context.Context, token string) (*models.User, error)
}

type userService struct {
	repo         repositories.UserRepository
	roles        repositories.RoleRepository
	authService  AuthService
	emailService EmailService
}

func NewUserService(repo repositories.UserRepository, roles repositories.RoleRepository, authService AuthService, emailService EmailService) UserService {
	return &userService{
		repo:         repo,
		roles:        roles,
		authService:  authService,
		emailService: emailService,
	}
}

// Register создаёт пользователя со стартовой ролью USER. Email и username
// должны быть свободны.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) error {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)

	if taken, err := s.repo.ExistsByEmail(ctx, email); err != nil {
		return err
	} else if taken {
		log.Printf("[user][register][err] email=%q already in use", email)
		return fmt.Errorf("%w: email %q is already in use", apperrors.ErrDuplicateTitle, email)
	}
	if taken, err := s.repo.ExistsByUsername(ctx, username); err != nil {
		return err
	} else if taken {
		log.Printf("[user][register][err] username=%q already in use", username)
		return fmt.Errorf("%w: username %q is already in use", apperrors.ErrDuplicateTitle, username)
	}

	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return err
	}

	roleID, err := s.roles.FindIDByName(ctx, authz.RoleUser)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Roles:        []string{authz.RoleUser},
	}
	if err := s.repo.Create(ctx, user, roleID); err != nil {
		// гонка между Exists-проверкой и INSERT: уникальный индекс решает
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("%w: user %q", apperrors.ErrDuplicateTitle, username)
		}
		return err
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Username); err != nil {
			// warn but do not fail registration
			log.Printf("[user][register] warning: failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	log.Printf("[user][register][ok] id=%d username=%q", user.ID, user.Username)
	return nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *userService) UpdateRefresh(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	return s.repo.UpdateRefresh(ctx, userID, token, expiresAt)
}

func (s *userService) RotateRefresh(ctx context.Context, oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	return s.repo.RotateRefresh(ctx, oldToken, newToken, newExpiresAt)
}

func (s *userService) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	return s.repo.GetByRefreshToken(ctx, token)
}
