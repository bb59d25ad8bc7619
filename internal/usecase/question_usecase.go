package usecase

import (
	"context"

	"forum/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateQuestionInput struct {
	AuthorID uuid.UUID
	Title    string
	Content  string
}

type QuestionUsecase interface {
	Create(ctx context.Context, input CreateQuestionInput) (*entity.Question, error)

	// FetchRecent lists the author's own questions, newest first.
	FetchRecent(ctx context.Context, authorID uuid.UUID, page int) ([]*entity.Question, error)

	GetBySlug(ctx context.Context, slug string) (*entity.Question, error)
}
