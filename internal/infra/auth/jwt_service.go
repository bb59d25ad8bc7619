package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"forum/config"
	"forum/internal/domain/service"
	"forum/internal/errors"
)

// ErrMissingSecret is returned when no signing secret is configured.
var ErrMissingSecret = errors.New("jwt access secret must be provided")

// jwtService issues HS256 access tokens whose subject is the account id.
type jwtService struct {
	issuer    string
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService builds a token service from the secretKey and auth sections.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, ErrMissingSecret
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL <= 0 {
		return nil, errors.New("auth.accessTokenTTL must be positive")
	}

	return &jwtService{
		issuer:    cfg.Env.ServiceName,
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: cfg.Auth.AccessTokenTTL,
		now:       time.Now,
	}, nil
}

func (s *jwtService) GenerateAccessToken(accountID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	registered := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, registered, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return nil, errors.Wrap(err, "invalid access token")
	}

	accountID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}

	return &service.Claims{AccountID: accountID, RegisteredClaims: *registered}, nil
}

func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
