package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "forum/internal/delivery/context"
	"forum/internal/domain/entity"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/repository"
	"forum/internal/errors"
	"forum/internal/usecase"

	"github.com/google/uuid"
)

const (
	maxSlugAttempts = 3
	slugSuffixLen   = 8
)

type questionService struct {
	questionRepo repository.QuestionRepository
	logger       *slog.Logger
	now          func() time.Time
	suffix       func() string
}

type QuestionServiceParams struct {
	QuestionRepo repository.QuestionRepository
	Logger       *slog.Logger
}

func NewQuestionService(params QuestionServiceParams) usecase.QuestionUsecase {
	return &questionService{
		questionRepo: params.QuestionRepo,
		logger:       params.Logger,
		now:          time.Now,
		suffix:       newSlugSuffix,
	}
}

func newSlugSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:slugSuffixLen]
}

func (srv *questionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores the question under the slug of its title. A taken slug gets a
// random suffix and the insert is retried.
func (srv *questionService) Create(ctx context.Context, input usecase.CreateQuestionInput) (*entity.Question, error) {
	question := entity.NewQuestion(input.AuthorID, input.Title, input.Content, srv.now().UTC())
	base := question.Slug
	if base == "" {
		question.Slug = base.WithSuffix(srv.suffix())
	}

	for attempt := 1; ; attempt++ {
		err := srv.questionRepo.Create(ctx, question)
		if err == nil {
			srv.log(ctx).Info("Question created",
				slog.String("questionID", question.ID.String()),
				slog.String("slug", question.Slug.String()),
			)

			return question, nil
		}
		if !errors.Is(err, repository.ErrQuestionSlugTaken) || attempt == maxSlugAttempts {
			return nil, errors.Wrap(err, "failed to create question")
		}

		question.Slug = base.WithSuffix(srv.suffix())
	}
}

func (srv *questionService) FetchRecent(ctx context.Context, authorID uuid.UUID, page int) ([]*entity.Question, error) {
	questions, err := srv.questionRepo.FindManyRecentByAuthor(ctx, authorID, repository.PaginationParams{Page: page})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch recent questions")
	}

	return questions, nil
}

func (srv *questionService) GetBySlug(ctx context.Context, slug string) (*entity.Question, error) {
	question, err := srv.questionRepo.FindBySlug(ctx, entity.Slug(slug))
	if errors.Is(err, repository.ErrQuestionNotFound) {
		return nil, domainerrors.ErrQuestionNotFound.WrapMessage(slug)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get question by slug")
	}

	return question, nil
}
