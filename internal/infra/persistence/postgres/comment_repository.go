package postgres

import (
	"context"

	"forum/internal/domain/entity"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/repository"
	"forum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) FindManyByQuestionID(ctx context.Context, questionID uuid.UUID, params repository.PaginationParams) ([]*entity.Comment, error) {
	var commentMs []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Order("id ASC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&commentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for _, commentM := range commentMs {
		comments = append(comments, &entity.Comment{
			ID:         commentM.ID,
			AuthorID:   commentM.AuthorID,
			QuestionID: commentM.QuestionID,
			Content:    commentM.Content,
			CreatedAt:  commentM.CreatedAt,
			UpdatedAt:  commentM.UpdatedAt,
		})
	}

	return comments, nil
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		ID:         comment.ID,
		AuthorID:   comment.AuthorID,
		QuestionID: comment.QuestionID,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrQuestionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.CreatedAt = commentM.CreatedAt

	return nil
}
