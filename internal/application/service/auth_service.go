package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sangkips/ventes-dashboard/internal/config"
	"github.com/sangkips/ventes-dashboard/internal/domain/session"
	"github.com/sangkips/ventes-dashboard/pkg/apperror"
	"github.com/sangkips/ventes-dashboard/pkg/utils"
	"github.com/sirupsen/logrus"
)

// AuthService checks the single dashboard account and issues session tokens
type AuthService struct {
	username     string
	passwordHash string
	jwtManager   *utils.JWTManager
	log          logrus.FieldLogger
}

// NewAuthService creates a new auth service. The configured hash is used
// as is; otherwise the plain password is hashed once here.
func NewAuthService(admin config.AdminConfig, jwtManager *utils.JWTManager, log logrus.FieldLogger) (*AuthService, error) {
	hash := admin.PasswordHash
	if hash == "" {
		if admin.Password == "" {
			return nil, errors.New("admin password is not configured")
		}
		hashed, err := utils.HashPassword(admin.Password)
		if err != nil {
			return nil, err
		}
		hash = hashed
	}
	return &AuthService{
		username:     admin.Username,
		passwordHash: hash,
		jwtManager:   jwtManager,
		log:          log,
	}, nil
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Session     *session.Session
	AccessToken string
	ExpiresAt   time.Time
}

// Login moves a session from LoggedOut to LoggedIn when the credentials match
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.username)) == 1
	passOK := utils.CheckPasswordHash(input.Password, s.passwordHash)
	if !userOK || !passOK {
		s.log.WithField("username", input.Username).Warn("rejected login")
		return nil, apperror.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtManager.GenerateToken(s.username)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Session:     session.For(s.username),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Authenticate rebuilds the session carried by a token
func (s *AuthService) Authenticate(token string) (*session.Session, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.ErrTokenExpired
		}
		return nil, apperror.ErrInvalidToken
	}
	if claims.Username != s.username {
		return nil, apperror.ErrInvalidToken
	}
	return session.For(claims.Username), nil
}

// TokenTTL returns how long an issued token stays valid
func (s *AuthService) TokenTTL() time.Duration {
	return s.jwtManager.Expiry()
}
