package usecase

import (
	"context"

	"forum/internal/domain/entity"

	"github.com/google/uuid"
)

type AnswerQuestionInput struct {
	AuthorID   uuid.UUID
	QuestionID uuid.UUID
	Content    string
}

type ChooseBestAnswerInput struct {
	AuthorID uuid.UUID // Caller; must be the author of the answered question.
	AnswerID uuid.UUID
}

type AnswerUsecase interface {
	Answer(ctx context.Context, input AnswerQuestionInput) (*entity.Answer, error)
	FetchByQuestion(ctx context.Context, questionID uuid.UUID, page int) ([]*entity.Answer, error)
	ChooseBest(ctx context.Context, input ChooseBestAnswerInput) (*entity.Question, error)
}
