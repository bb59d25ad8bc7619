package repository

import (
	"context"

	"forum/internal/domain/entity"
	"forum/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrQuestionSlugTaken = errors.New("question slug already taken")
)

type QuestionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error)
	FindBySlug(ctx context.Context, slug entity.Slug) (*entity.Question, error)

	// FindManyRecentByAuthor returns the author's questions, newest first.
	FindManyRecentByAuthor(ctx context.Context, authorID uuid.UUID, params PaginationParams) ([]*entity.Question, error)

	Create(ctx context.Context, question *entity.Question) error

	// Save persists the mutable fields (best answer, content, timestamps).
	Save(ctx context.Context, question *entity.Question) error
}
