package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cutting_report/internal/models"
	"cutting_report/internal/redis"
	"cutting_report/internal/repository"
)

// ErrInvalidCredentials is deliberately generic; login failures never say
// which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(username, password string) (string, error)
	Logout(token string) error
	Validate(token string) (*redis.AdminSession, error)
	EnsureAdminUser(username, password string) error
}

type authService struct {
	userRepo       repository.UserRepository
	sessions       *redis.Client
	sessionTimeout time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions *redis.Client, sessionTimeout time.Duration) AuthService {
	return &authService{userRepo: userRepo, sessions: sessions, sessionTimeout: sessionTimeout}
}

func (s *authService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil || user == nil || !user.IsActive {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return "", fmt.Errorf("failed to create session token: %w", err)
	}

	session := &redis.AdminSession{
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetAdminSession(token, session, s.sessionTimeout); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteAdminSession(token)
}

func (s *authService) Validate(token string) (*redis.AdminSession, error) {
	if token == "" {
		return nil, redis.ErrNotFound
	}
	return s.sessions.GetAdminSession(token)
}

// EnsureAdminUser creates the admin account on first boot; an existing user
// is left untouched.
func (s *authService) EnsureAdminUser(username, password string) error {
	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return s.userRepo.Create(&models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	})
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
