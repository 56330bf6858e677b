package create_link_token

import (
	"errors"
	"net/http"

	"barber-scheduling-service/internal/api/handlers"
	createLinkToken "barber-scheduling-service/internal/usecase/create_link_token"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
)

// CreateLinkTokenRequest HTTP request model
type CreateLinkTokenRequest struct {
	Phone   string `json:"phone"`
	BaseURL string `json:"baseUrl"`
}

// LinkTokenResponse HTTP response model
type LinkTokenResponse struct {
	Token string `json:"token"`
	Link  string `json:"link"`
}

type Handler struct {
	useCase CreateLinkTokenUseCase
	logger  Logger
}

func NewHandler(useCase CreateLinkTokenUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/link-tokens
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkTokenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/link-tokens - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createLinkToken.Request{
		Phone:   req.Phone,
		BaseURL: req.BaseURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, createLinkToken.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/link-tokens - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/link-tokens - Token issued")
	handlers.RespondJSON(w, http.StatusCreated, LinkTokenResponse{
		Token: result.Token,
		Link:  result.Link,
	})
}
