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

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) repository.AnswerRepository {
	return &answerRepository{db: db}
}

func (repo *answerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error) {
	var answerM model.AnswerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&answerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnswerNotFound
		}

		return nil, errors.Wrap(err, "failed to find answer by id")
	}

	return toAnswerDomain(&answerM), nil
}

func (repo *answerRepository) FindManyByQuestionID(ctx context.Context, questionID uuid.UUID, params repository.PaginationParams) ([]*entity.Answer, error) {
	var answerMs []*model.AnswerModel
	err := repo.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Order("id ASC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&answerMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list answers")
	}

	answers := make([]*entity.Answer, 0, len(answerMs))
	for _, answerM := range answerMs {
		answers = append(answers, toAnswerDomain(answerM))
	}

	return answers, nil
}

func (repo *answerRepository) Create(ctx context.Context, answer *entity.Answer) error {
	answerM := fromAnswerDomain(answer)

	if err := repo.db.WithContext(ctx).Create(answerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrQuestionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create answer")
	}

	answer.CreatedAt = answerM.CreatedAt

	return nil
}

func toAnswerDomain(data *model.AnswerModel) *entity.Answer {
	return &entity.Answer{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		QuestionID: data.QuestionID,
		Content:    data.Content,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAnswerDomain(data *entity.Answer) *model.AnswerModel {
	return &model.AnswerModel{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		QuestionID: data.QuestionID,
		Content:    data.Content,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
