package handler

import (
	"log/slog"
	"net/http"

	"forum/internal/delivery/api/response"
	"forum/internal/delivery/api/validator"
	"forum/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type authenticateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // Seconds.
}

type SessionHandlerParams struct {
	SessionUC usecase.SessionUsecase
	Validator *validator.Validator
	Logger    *slog.Logger
}

type SessionHandler struct {
	sessionUC          usecase.SessionUsecase
	authenticateSchema *validator.Schema[authenticateRequest]
	logger             *slog.Logger
}

func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC:          params.SessionUC,
		authenticateSchema: validator.MustSchema[authenticateRequest](params.Validator),
		logger:             params.Logger,
	}
}

// Authenticate handles POST /sessions.
func (h *SessionHandler) Authenticate(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return err
	}

	req, err := h.authenticateSchema.Validate(body)
	if err != nil {
		return err
	}

	out, err := h.sessionUC.Authenticate(c.Request().Context(), usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sessionView{
		AccessToken: out.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(out.ExpiresIn.Seconds()),
	})
}
