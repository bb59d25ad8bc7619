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

type contentRequest struct {
	Content string `json:"content" validate:"required"`
}

type AnswerHandlerParams struct {
	AnswerUC  usecase.AnswerUsecase
	Validator *validator.Validator
	Logger    *slog.Logger
}

type AnswerHandler struct {
	answerUC      usecase.AnswerUsecase
	contentSchema *validator.Schema[contentRequest]
	pageSchema    *validator.Schema[int]
	logger        *slog.Logger
}

func NewAnswerHandler(params AnswerHandlerParams) *AnswerHandler {
	return &AnswerHandler{
		answerUC:      params.AnswerUC,
		contentSchema: validator.MustSchema[contentRequest](params.Validator),
		pageSchema:    validator.MustScalar[int](params.Validator, pageQuery),
		logger:        params.Logger,
	}
}

// Answer handles POST /questions/:questionId/answers.
func (h *AnswerHandler) Answer(c echo.Context) error {
	authorID, err := accountID(c)
	if err != nil {
		return err
	}

	questionID, err := questionIDParam(c)
	if err != nil {
		return err
	}

	body, err := bindObject(c)
	if err != nil {
		return err
	}

	req, err := h.contentSchema.Validate(body)
	if err != nil {
		return err
	}

	answer, err := h.answerUC.Answer(c.Request().Context(), usecase.AnswerQuestionInput{
		AuthorID:   authorID,
		QuestionID: questionID,
		Content:    req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"answer": presentAnswer(answer)})
}

// FetchByQuestion handles GET /questions/:questionId/answers.
func (h *AnswerHandler) FetchByQuestion(c echo.Context) error {
	questionID, err := questionIDParam(c)
	if err != nil {
		return err
	}

	page, err := h.pageSchema.Validate(queryValues(c))
	if err != nil {
		return err
	}

	answers, err := h.answerUC.FetchByQuestion(c.Request().Context(), questionID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"answers": presentAll(answers, presentAnswer)})
}

// ChooseBest handles PATCH /questions/:answerId/choose-as-best.
func (h *AnswerHandler) ChooseBest(c echo.Context) error {
	authorID, err := accountID(c)
	if err != nil {
		return err
	}

	answerID, err := answerIDParam(c)
	if err != nil {
		return err
	}

	if _, err := h.answerUC.ChooseBest(c.Request().Context(), usecase.ChooseBestAnswerInput{
		AuthorID: authorID,
		AnswerID: answerID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
