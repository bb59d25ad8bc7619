package handler

import (
	"time"

	"forum/internal/domain/entity"

	"github.com/google/uuid"
)

// accountView never carries the password hash.
type accountView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func presentAccount(a *entity.Account) accountView {
	return accountView{ID: a.ID, Name: a.Name, Email: a.Email, CreatedAt: a.CreatedAt}
}

type questionView struct {
	ID           uuid.UUID  `json:"id"`
	AuthorID     uuid.UUID  `json:"author_id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Content      string     `json:"content"`
	BestAnswerID *uuid.UUID `json:"best_answer_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func presentQuestion(q *entity.Question) questionView {
	return questionView{
		ID:           q.ID,
		AuthorID:     q.AuthorID,
		Title:        q.Title,
		Slug:         q.Slug.String(),
		Content:      q.Content,
		BestAnswerID: q.BestAnswerID,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

type answerView struct {
	ID         uuid.UUID  `json:"id"`
	AuthorID   uuid.UUID  `json:"author_id"`
	QuestionID uuid.UUID  `json:"question_id"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func presentAnswer(a *entity.Answer) answerView {
	return answerView{
		ID:         a.ID,
		AuthorID:   a.AuthorID,
		QuestionID: a.QuestionID,
		Content:    a.Content,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

type commentView struct {
	ID         uuid.UUID  `json:"id"`
	AuthorID   uuid.UUID  `json:"author_id"`
	QuestionID uuid.UUID  `json:"question_id"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func presentComment(c *entity.Comment) commentView {
	return commentView{
		ID:         c.ID,
		AuthorID:   c.AuthorID,
		QuestionID: c.QuestionID,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// presentAll maps a slice and never returns nil, so empty pages encode as [].
func presentAll[E any, V any](items []E, present func(E) V) []V {
	views := make([]V, 0, len(items))
	for _, item := range items {
		views = append(views, present(item))
	}

	return views
}
