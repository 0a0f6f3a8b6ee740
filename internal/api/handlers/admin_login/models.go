package admin_login

import "time"

// LoginRequest тело запроса на вход
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse ответ с выданным токеном
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
