package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  *time.Time `gorm:"autoUpdateTime:false"`
}

func (CommentModel) TableName() string {
	return "comments"
}
