package repository

import "context"

// TransactionManager runs a unit of work inside a database transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction. The transaction is rolled back when fn
	// returns an error or panics, and committed otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewAccountRepository() AccountRepository
	NewQuestionRepository() QuestionRepository
	NewAnswerRepository() AnswerRepository
	NewCommentRepository() CommentRepository
}
