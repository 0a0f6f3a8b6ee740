package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/JBarber-BookingService/internal/api/handlers"
	"github.com/m04kA/JBarber-BookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPassword    = "пароль обязателен"
	msgInvalidCredentials = "неверный пароль"
)

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Password == "" {
		h.logger.Warn("POST /admin/login - Missing password")
		handlers.RespondBadRequest(w, msgMissingPassword)
		return
	}

	token, expiresAt, err := h.authService.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin session issued")
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
