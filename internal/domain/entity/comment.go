package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a short remark attached to a question.
type Comment struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	QuestionID uuid.UUID
	Content    string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func NewQuestionComment(authorID, questionID uuid.UUID, content string, now time.Time) *Comment {
	return &Comment{
		ID:         newID(),
		AuthorID:   authorID,
		QuestionID: questionID,
		Content:    content,
		CreatedAt:  now,
	}
}
