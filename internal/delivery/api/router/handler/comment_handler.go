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

type CommentHandlerParams struct {
	CommentUC usecase.CommentUsecase
	Validator *validator.Validator
	Logger    *slog.Logger
}

type CommentHandler struct {
	commentUC     usecase.CommentUsecase
	contentSchema *validator.Schema[contentRequest]
	pageSchema    *validator.Schema[int]
	logger        *slog.Logger
}

func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC:     params.CommentUC,
		contentSchema: validator.MustSchema[contentRequest](params.Validator),
		pageSchema:    validator.MustScalar[int](params.Validator, pageQuery),
		logger:        params.Logger,
	}
}

// CommentOnQuestion handles POST /questions/:questionId/comments.
func (h *CommentHandler) CommentOnQuestion(c echo.Context) error {
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

	comment, err := h.commentUC.CommentOnQuestion(c.Request().Context(), usecase.CommentOnQuestionInput{
		AuthorID:   authorID,
		QuestionID: questionID,
		Content:    req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"comment": presentComment(comment)})
}

// FetchByQuestion handles GET /questions/:questionId/comments.
func (h *CommentHandler) FetchByQuestion(c echo.Context) error {
	questionID, err := questionIDParam(c)
	if err != nil {
		return err
	}

	page, err := h.pageSchema.Validate(queryValues(c))
	if err != nil {
		return err
	}

	comments, err := h.commentUC.FetchByQuestion(c.Request().Context(), questionID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"comments": presentAll(comments, presentComment)})
}
