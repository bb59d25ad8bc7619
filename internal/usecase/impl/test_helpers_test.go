package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"forum/internal/domain/repository"
	mockRepo "forum/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return fixedNow
}

// expectExecute makes txManager run the callback against factory and return
// whatever the callback returns.
func expectExecute(ctx context.Context, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
