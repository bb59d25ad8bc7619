package repository

import (
	"context"

	"forum/internal/domain/entity"
	"forum/internal/errors"

	"github.com/google/uuid"
)

var ErrAnswerNotFound = errors.New("answer not found")

type AnswerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error)

	// FindManyByQuestionID returns the answers of a question, oldest first.
	FindManyByQuestionID(ctx context.Context, questionID uuid.UUID, params PaginationParams) ([]*entity.Answer, error)

	Create(ctx context.Context, answer *entity.Answer) error
}
