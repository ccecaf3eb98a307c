package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/utils"
)

// Session is a signed-in user plus the token the API expects back.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// SessionService is the stub login. No credentials are checked; every
// login yields a variant of MockUser.
type SessionService struct {
	mu     sync.RWMutex
	user   *models.User
	secret []byte
	delay  time.Duration
	repo   *StateRepository
}

func NewSessionService(ctx context.Context, repo *StateRepository, secret []byte, delay time.Duration) *SessionService {
	s := &SessionService{secret: secret, delay: delay, repo: repo}
	if repo != nil {
		s.user = repo.LoadSession(ctx)
	}
	return s
}

// LoginEmail signs in with an email. Signing up keeps the given name and
// starts at level 1; logging in names the user after the email's local
// part at level 12.
func (s *SessionService) LoginEmail(ctx context.Context, email, name string, signup bool) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Session{}, apperrors.New(apperrors.CodeValidation, "email is required")
	}
	u := MockUser
	u.Email = email
	if signup {
		u.Name = strings.TrimSpace(name)
		u.Level = 1
		if u.Name == "" {
			return Session{}, apperrors.New(apperrors.CodeValidation, "name is required")
		}
	} else {
		u.Name, _, _ = strings.Cut(email, "@")
		u.Level = 12
	}
	return s.start(ctx, u)
}

// LoginSocial signs in through a named provider such as Google or Apple.
func (s *SessionService) LoginSocial(ctx context.Context, provider string) (Session, error) {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return Session{}, apperrors.New(apperrors.CodeValidation, "provider is required")
	}
	u := MockUser
	if strings.EqualFold(provider, "google") {
		u.Name = "Google User"
	} else {
		u.Name = "Apple User"
	}
	u.Email = strings.ToLower(provider) + "@example.com"
	return s.start(ctx, u)
}

func (s *SessionService) start(ctx context.Context, u models.User) (Session, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Session{}, apperrors.Wrap(apperrors.CodeCanceled, "login was canceled", ctx.Err())
		case <-t.C:
		}
	}
	token, err := utils.GenerateJWT(s.secret, u.ID, u.Email)
	if err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeUnknown, "could not issue session token", err)
	}
	s.mu.Lock()
	s.user = &u
	if s.repo != nil {
		s.repo.SaveSession(u)
	}
	s.mu.Unlock()
	return Session{User: u, Token: token}, nil
}

// Current returns the signed-in user, nil when logged out.
func (s *SessionService) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Logout clears the session and nothing else.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.user = nil
	if s.repo != nil {
		s.repo.ClearSession()
	}
	s.mu.Unlock()
}
