package impl

import (
	"context"
	"strings"
	"testing"

	"forum/internal/domain/entity"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/repository"
	"forum/internal/domain/service"
	mockRepo "forum/internal/mocks/repository"
	mockSvc "forum/internal/mocks/service"
	"forum/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service     *accountService
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	}).(*accountService)
	svc.now = fixedClock

	return accountServiceFixtures{service: svc, accountRepo: accountRepo, hasher: hasher}
}

func TestAccountService_Register(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := usecase.RegisterAccountInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret!"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$08$hash", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Email == input.Email && a.PasswordHash == "$2a$08$hash"
		})).
		Return(nil)

	account, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Alice", account.Name)
	assert.Equal(t, "$2a$08$hash", account.PasswordHash)
	assert.NotEqual(t, input.Password, account.PasswordHash)
	assert.Equal(t, fixedNow, account.CreatedAt)
}

func TestAccountService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := usecase.RegisterAccountInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret!"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.Account{Email: input.Email}, nil)

	account, err := fx.service.Register(ctx, input)

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountService_Register_ConcurrentDuplicate(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := usecase.RegisterAccountInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret!"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$08$hash", nil)
	fx.accountRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrAccountEmailTaken)

	_, err := fx.service.Register(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := usecase.RegisterAccountInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret!"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Register(ctx, input)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := usecase.RegisterAccountInput{Name: "Alice", Email: "alice@example.com", Password: strings.Repeat("é", 40)}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.Wrap(service.ErrPasswordTooLong, "80 bytes"))

	_, err := fx.service.Register(ctx, input)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooLong))
}

func TestAccountService_Register_LookupError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := usecase.RegisterAccountInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret!"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, errors.New("connection reset"))

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up account by email")
}
