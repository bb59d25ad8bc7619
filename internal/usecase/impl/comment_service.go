package impl

import (
	"context"
	"log/slog"
	"time"

	"forum/internal/domain/entity"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/repository"
	"forum/internal/errors"
	"forum/internal/usecase"

	"github.com/google/uuid"
)

type commentService struct {
	commentRepo repository.CommentRepository
	logger      *slog.Logger
	now         func() time.Time
}

type CommentServiceParams struct {
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *commentService) CommentOnQuestion(ctx context.Context, input usecase.CommentOnQuestionInput) (*entity.Comment, error) {
	comment := entity.NewQuestionComment(input.AuthorID, input.QuestionID, input.Content, srv.now().UTC())

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, domainerrors.ErrQuestionNotFound.WrapMessage(input.QuestionID.String())
		}

		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

func (srv *commentService) FetchByQuestion(ctx context.Context, questionID uuid.UUID, page int) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.FindManyByQuestionID(ctx, questionID, repository.PaginationParams{Page: page})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch comments")
	}

	return comments, nil
}
