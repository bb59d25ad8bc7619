package entity

import (
	"time"

	"github.com/google/uuid"
)

// Question is a forum thread opened by an account. Answers and comments hang off it.
type Question struct {
	ID           uuid.UUID
	AuthorID     uuid.UUID
	Title        string
	Slug         Slug
	Content      string
	BestAnswerID *uuid.UUID // Set once the author picks an answer.
	CreatedAt    time.Time
	UpdatedAt    *time.Time // Nil until the question is edited.
}

// NewQuestion builds a question whose slug is derived from its title.
func NewQuestion(authorID uuid.UUID, title, content string, now time.Time) *Question {
	return &Question{
		ID:        newID(),
		AuthorID:  authorID,
		Title:     title,
		Slug:      NewSlugFromText(title),
		Content:   content,
		CreatedAt: now,
	}
}

// ChooseBestAnswer marks answerID as the accepted answer.
func (q *Question) ChooseBestAnswer(answerID uuid.UUID, now time.Time) {
	q.BestAnswerID = &answerID
	q.UpdatedAt = &now
}

// IsAuthoredBy reports whether accountID opened the question.
func (q *Question) IsAuthoredBy(accountID uuid.UUID) bool {
	return q.AuthorID == accountID
}
