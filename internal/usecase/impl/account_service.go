// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "forum/internal/delivery/context"
	"forum/internal/domain/entity"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/repository"
	"forum/internal/domain/service"
	"forum/internal/errors"
	"forum/internal/usecase"
)

type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
	now         func() time.Time
}

type AccountServiceParams struct {
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) Register(ctx context.Context, input usecase.RegisterAccountInput) (*entity.Account, error) {
	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to look up account by email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if errors.Is(err, service.ErrPasswordTooLong) {
		return nil, domainerrors.ErrPasswordTooLong.WrapMessage(err.Error())
	}
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	account := entity.NewAccount(input.Name, input.Email, hash, srv.now().UTC())
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountEmailTaken) {
			return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("email registered concurrently")
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID.String()))

	return account, nil
}
