package admin_login

import (
	"time"
)

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Login(password string) (token string, expiresAt time.Time, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
