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

type createQuestionRequest struct {
	Title   string `json:"title" validate:"required,min=5"`
	Content string `json:"content" validate:"required"`
}

type QuestionHandlerParams struct {
	QuestionUC usecase.QuestionUsecase
	Validator  *validator.Validator
	Logger     *slog.Logger
}

type QuestionHandler struct {
	questionUC   usecase.QuestionUsecase
	createSchema *validator.Schema[createQuestionRequest]
	pageSchema   *validator.Schema[int]
	logger       *slog.Logger
}

func NewQuestionHandler(params QuestionHandlerParams) *QuestionHandler {
	return &QuestionHandler{
		questionUC:   params.QuestionUC,
		createSchema: validator.MustSchema[createQuestionRequest](params.Validator),
		pageSchema:   validator.MustScalar[int](params.Validator, pageQuery),
		logger:       params.Logger,
	}
}

// Create handles POST /questions.
func (h *QuestionHandler) Create(c echo.Context) error {
	authorID, err := accountID(c)
	if err != nil {
		return err
	}

	body, err := bindObject(c)
	if err != nil {
		return err
	}

	req, err := h.createSchema.Validate(body)
	if err != nil {
		return err
	}

	question, err := h.questionUC.Create(c.Request().Context(), usecase.CreateQuestionInput{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"question": presentQuestion(question)})
}

// FetchRecent handles GET /questions, listing the caller's own questions.
func (h *QuestionHandler) FetchRecent(c echo.Context) error {
	authorID, err := accountID(c)
	if err != nil {
		return err
	}

	page, err := h.pageSchema.Validate(queryValues(c))
	if err != nil {
		return err
	}

	questions, err := h.questionUC.FetchRecent(c.Request().Context(), authorID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"questions": presentAll(questions, presentQuestion)})
}

// GetBySlug handles GET /questions/:slug.
func (h *QuestionHandler) GetBySlug(c echo.Context) error {
	question, err := h.questionUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"question": presentQuestion(question)})
}
