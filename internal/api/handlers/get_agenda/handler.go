package get_agenda

import (
	"net/http"

	"github.com/m04kA/JBarber-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase GetAgendaUseCase
	logger  Logger
}

func NewHandler(useCase GetAgendaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/agenda
// Query params: search (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(search))
	if err != nil {
		h.logger.Error("GET /admin/agenda - Failed to build agenda: search=%q, error=%v", search, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /admin/agenda - Agenda built: search=%q, confirmed=%d, cancelled=%d",
		search, result.Counts.TotalConfirmed, result.Counts.TotalCancelled)
	handlers.RespondJSON(w, http.StatusOK, response)
}
