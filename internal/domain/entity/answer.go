package entity

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	QuestionID uuid.UUID
	Content    string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func NewAnswer(authorID, questionID uuid.UUID, content string, now time.Time) *Answer {
	return &Answer{
		ID:         newID(),
		AuthorID:   authorID,
		QuestionID: questionID,
		Content:    content,
		CreatedAt:  now,
	}
}
