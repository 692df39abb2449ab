package register

import (
	"errors"
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	registerUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/register"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailExists        = "пользователь с таким email уже зарегистрирован"
)

type Handler struct {
	useCase RegisterUseCase
	logger  Logger
}

func NewHandler(useCase RegisterUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, registerUC.ErrEmailExists):
			h.logger.Warn("POST /auth/register - Email already registered")
			handlers.RespondConflict(w, msgEmailExists)

		case errors.Is(err, registerUC.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/register - Failed to register: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
