// Package auth админский доступ: проверка пароля по bcrypt-хэшу и выдача
// подписанных JWT с ограниченным сроком жизни. Заменяет клиентский
// static-password флаг исходного приложения серверной сессией.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenSubject = "admin"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Service сервис админской аутентификации
type Service struct {
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис аутентификации.
// passwordHash хранит bcrypt hash админского пароля, jwtSecret служит ключом подписи HS256.
func NewService(passwordHash, jwtSecret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет пароль и выдает подписанный токен с истечением
func (s *Service) Login(password string) (token string, expiresAt time.Time, err error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.Warn("Login: invalid admin password attempt")
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	expiresAt = now.Add(s.tokenTTL)

	claims := jwt.MapClaims{
		"sub": tokenSubject,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return "", time.Time{}, fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin session issued, expires at %s", expiresAt.Format(time.RFC3339))
	return token, expiresAt, nil
}

// VerifyToken проверяет подпись и срок жизни токена
func (s *Service) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.timeProvider.Now))

	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	if sub, _ := claims["sub"].(string); sub != tokenSubject {
		return ErrInvalidToken
	}

	return nil
}
