package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "forum/internal/delivery/context"
	"forum/internal/domain/entity"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/repository"
	"forum/internal/errors"
	"forum/internal/usecase"

	"github.com/google/uuid"
)

type answerService struct {
	txManager  repository.TransactionManager
	answerRepo repository.AnswerRepository
	logger     *slog.Logger
	now        func() time.Time
}

type AnswerServiceParams struct {
	TxManager  repository.TransactionManager
	AnswerRepo repository.AnswerRepository
	Logger     *slog.Logger
}

func NewAnswerService(params AnswerServiceParams) usecase.AnswerUsecase {
	return &answerService{
		txManager:  params.TxManager,
		answerRepo: params.AnswerRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *answerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *answerService) Answer(ctx context.Context, input usecase.AnswerQuestionInput) (*entity.Answer, error) {
	answer := entity.NewAnswer(input.AuthorID, input.QuestionID, input.Content, srv.now().UTC())

	if err := srv.answerRepo.Create(ctx, answer); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, domainerrors.ErrQuestionNotFound.WrapMessage(input.QuestionID.String())
		}

		return nil, errors.Wrap(err, "failed to create answer")
	}

	return answer, nil
}

func (srv *answerService) FetchByQuestion(ctx context.Context, questionID uuid.UUID, page int) ([]*entity.Answer, error) {
	answers, err := srv.answerRepo.FindManyByQuestionID(ctx, questionID, repository.PaginationParams{Page: page})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch answers")
	}

	return answers, nil
}

// ChooseBest loads the answer and its question and records the choice in one transaction.
func (srv *answerService) ChooseBest(ctx context.Context, input usecase.ChooseBestAnswerInput) (*entity.Question, error) {
	var chosen *entity.Question

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		answer, err := repoFactory.NewAnswerRepository().FindByID(ctx, input.AnswerID)
		if errors.Is(err, repository.ErrAnswerNotFound) {
			return domainerrors.ErrAnswerNotFound.WrapMessage(input.AnswerID.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to find answer")
		}

		questionRepo := repoFactory.NewQuestionRepository()
		question, err := questionRepo.FindByID(ctx, answer.QuestionID)
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return domainerrors.ErrQuestionNotFound.WrapMessage(answer.QuestionID.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to find question")
		}

		if !question.IsAuthoredBy(input.AuthorID) {
			return domainerrors.ErrNotAllowed.WrapMessage("only the question author can choose the best answer")
		}

		question.ChooseBestAnswer(answer.ID, srv.now().UTC())
		if err := questionRepo.Save(ctx, question); err != nil {
			return errors.Wrap(err, "failed to save best answer")
		}

		chosen = question

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Best answer chosen",
		slog.String("questionID", chosen.ID.String()),
		slog.String("answerID", input.AnswerID.String()),
	)

	return chosen, nil
}
