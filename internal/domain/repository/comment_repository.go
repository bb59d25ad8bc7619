package repository

import (
	"context"

	"forum/internal/domain/entity"

	"github.com/google/uuid"
)

type CommentRepository interface {
	// FindManyByQuestionID returns the comments of a question, oldest first.
	FindManyByQuestionID(ctx context.Context, questionID uuid.UUID, params PaginationParams) ([]*entity.Comment, error)

	Create(ctx context.Context, comment *entity.Comment) error
}
