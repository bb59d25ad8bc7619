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

// createAccountRequest caps the password at bcrypt's 72 byte input limit.
type createAccountRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

type AccountHandlerParams struct {
	AccountUC usecase.AccountUsecase
	Validator *validator.Validator
	Logger    *slog.Logger
}

// AccountHandler serves account registration.
type AccountHandler struct {
	accountUC    usecase.AccountUsecase
	createSchema *validator.Schema[createAccountRequest]
	logger       *slog.Logger
}

func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC:    params.AccountUC,
		createSchema: validator.MustSchema[createAccountRequest](params.Validator),
		logger:       params.Logger,
	}
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return err
	}

	req, err := h.createSchema.Validate(body)
	if err != nil {
		return err
	}

	account, err := h.accountUC.Register(c.Request().Context(), usecase.RegisterAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"account": presentAccount(account)})
}
