package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionModel mirrors the 'questions' table. best_answer_id is unique so an
// answer can be the accepted one of at most one question.
type QuestionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AuthorID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	BestAnswerID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Slug         string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Content      string     `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
