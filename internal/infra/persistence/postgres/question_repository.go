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

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

func (repo *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *questionRepository) FindBySlug(ctx context.Context, slug entity.Slug) (*entity.Question, error) {
	return repo.findOne(ctx, "slug = ?", slug.String())
}

func (repo *questionRepository) findOne(ctx context.Context, query string, arg any) (*entity.Question, error) {
	var questionM model.QuestionModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&questionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find question")
	}

	return toQuestionDomain(&questionM), nil
}

func (repo *questionRepository) FindManyRecentByAuthor(ctx context.Context, authorID uuid.UUID, params repository.PaginationParams) ([]*entity.Question, error) {
	var questionMs []*model.QuestionModel
	// id breaks ties between questions created in the same instant; v7 ids are time ordered.
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&questionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions by author")
	}

	questions := make([]*entity.Question, 0, len(questionMs))
	for _, questionM := range questionMs {
		questions = append(questions, toQuestionDomain(questionM))
	}

	return questions, nil
}

func (repo *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	if err := repo.db.WithContext(ctx).Create(questionM).Error; err != nil {
		if isUniqueConstraintViolation(err) && violatedConstraint(err) != constraintQuestionsAnswer {
			return repository.ErrQuestionSlugTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("question author does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create question")
	}

	question.CreatedAt = questionM.CreatedAt

	return nil
}

func (repo *questionRepository) Save(ctx context.Context, question *entity.Question) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("id = ?", question.ID).
		Updates(map[string]any{
			"title":          question.Title,
			"slug":           question.Slug.String(),
			"content":        question.Content,
			"best_answer_id": question.BestAnswerID,
			"updated_at":     question.UpdatedAt,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrAnswerNotFound
		}
		if isUniqueConstraintViolation(result.Error) && violatedConstraint(result.Error) == constraintQuestionsSlug {
			return repository.ErrQuestionSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save question")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

func toQuestionDomain(data *model.QuestionModel) *entity.Question {
	if data == nil {
		return nil
	}

	return &entity.Question{
		ID:           data.ID,
		AuthorID:     data.AuthorID,
		Title:        data.Title,
		Slug:         entity.Slug(data.Slug),
		Content:      data.Content,
		BestAnswerID: data.BestAnswerID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromQuestionDomain(data *entity.Question) *model.QuestionModel {
	if data == nil {
		return nil
	}

	return &model.QuestionModel{
		ID:           data.ID,
		AuthorID:     data.AuthorID,
		BestAnswerID: data.BestAnswerID,
		Title:        data.Title,
		Slug:         data.Slug.String(),
		Content:      data.Content,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
