package usecase

import (
	"context"

	"forum/internal/domain/entity"

	"github.com/google/uuid"
)

type CommentOnQuestionInput struct {
	AuthorID   uuid.UUID
	QuestionID uuid.UUID
	Content    string
}

type CommentUsecase interface {
	CommentOnQuestion(ctx context.Context, input CommentOnQuestionInput) (*entity.Comment, error)
	FetchByQuestion(ctx context.Context, questionID uuid.UUID, page int) ([]*entity.Comment, error)
}
