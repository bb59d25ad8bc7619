package impl

import (
	"context"
	"log/slog"

	deliverycontext "forum/internal/delivery/context"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/repository"
	"forum/internal/domain/service"
	"forum/internal/errors"
	"forum/internal/usecase"
)

// timingPassword is hashed once at start-up; unknown emails are checked
// against that hash so they cost as much as a wrong password.
const timingPassword = "forum-timing-equalizer"

type sessionService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	dummyHash    string
}

type SessionServiceParams struct {
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

func NewSessionService(params SessionServiceParams) (usecase.SessionUsecase, error) {
	dummyHash, err := params.Hasher.Hash(timingPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare timing hash")
	}

	return &sessionService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		dummyHash:    dummyHash,
	}, nil
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.hasher.Check(input.Password, srv.dummyHash)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	if srv.hasher.NeedsRehash(account.PasswordHash) {
		srv.upgradeHash(ctx, account.ID.String(), input.Password, func(hash string) error {
			return srv.accountRepo.UpdatePasswordHash(ctx, account.ID, hash)
		})
	}

	token, err := srv.tokenService.GenerateAccessToken(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Account authenticated", slog.String("accountID", account.ID.String()))

	return &usecase.AuthenticateOutput{
		AccessToken: token,
		ExpiresIn:   srv.tokenService.AccessTokenTTL(),
		Account:     account,
	}, nil
}

// upgradeHash stores a fresh hash at the current cost. Failure only costs the
// upgrade, never the login.
func (srv *sessionService) upgradeHash(ctx context.Context, accountID, password string, store func(hash string) error) {
	hash, err := srv.hasher.Hash(password)
	if err == nil {
		err = store(hash)
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to upgrade password hash", slog.String("accountID", accountID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Password hash upgraded", slog.String("accountID", accountID))
}
