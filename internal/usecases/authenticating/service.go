package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrAuthDisabled       = errors.New("autenticação desabilitada")
	ErrInvalidToken       = errors.New("token inválido")
)

// Authenticator protege o dashboard com uma credencial única. Com AUTH_SECRET
// vazio a autenticação fica desabilitada e todas as rotas são públicas.
type Authenticator interface {
	Enabled() bool
	Login(password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

func (s *Service) Enabled() bool {
	return s.cfg.Auth.Secret != ""
}

// Login compara a senha com o hash configurado e emite o token de sessão.
func (s *Service) Login(password string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}

	if password == "" || s.cfg.Auth.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.PasswordHash), []byte(password)); err != nil {
		logrus.Warn("auth: login attempt with wrong password")
		return "", ErrInvalidCredentials
	}

	return generateJWT(s.cfg.Auth.Secret)
}

func generateJWT(secret string) (string, error) {
	claims := domain.Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
