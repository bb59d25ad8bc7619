// Package handler contains the HTTP handlers for the forum API.
package handler

import (
	"net/http"

	"forum/internal/delivery/api/response"
	"forum/internal/delivery/api/validator"
	deliverycontext "forum/internal/delivery/context"
	domainerrors "forum/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pageQuery is the optional ?page= parameter shared by every listing.
var pageQuery = validator.Field{
	Name:    "page",
	Rules:   "min=1",
	Default: "1",
	Message: "Page must be at least 1",
}

// bindObject decodes the request body into an untyped object for schema validation.
// A missing body decodes to an empty object.
func bindObject(c echo.Context) (validator.Object, error) {
	var raw map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(c, &raw); err != nil {
		return nil, err
	}

	return validator.Object(raw), nil
}

func queryValues(c echo.Context) validator.Values {
	return validator.Values(c.QueryParams())
}

func accountID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("no account on request context")
	}

	return id, nil
}

type questionPath struct {
	QuestionID string `param:"questionId" validate:"required,uuid"`
}

type answerPath struct {
	AnswerID string `param:"answerId" validate:"required,uuid"`
}

// bindPath binds path parameters into T and checks them with the validator
// registered on echo. Malformed IDs come back as a *validator.Error.
func bindPath[T any](c echo.Context) (T, error) {
	var path T
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &path); err != nil {
		return path, err
	}
	if err := c.Validate(&path); err != nil {
		return path, err
	}

	return path, nil
}

func questionIDParam(c echo.Context) (uuid.UUID, error) {
	path, err := bindPath[questionPath](c)
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(path.QuestionID)
}

func answerIDParam(c echo.Context) (uuid.UUID, error) {
	path, err := bindPath[answerPath](c)
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(path.AnswerID)
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
