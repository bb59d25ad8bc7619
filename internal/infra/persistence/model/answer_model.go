package model

import (
	"time"

	"github.com/google/uuid"
)

// AnswerModel mirrors the 'answers' table.
type AnswerModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  *time.Time `gorm:"autoUpdateTime:false"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
