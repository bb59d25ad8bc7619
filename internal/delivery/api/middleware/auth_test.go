package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "forum/internal/delivery/context"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/service"
	mockSvc "forum/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name    string
		header  string
		setup   func(m *mockSvc.MockTokenService)
		wantErr bool
	}{
		{name: "missing header", header: "", wantErr: true},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "empty bearer", header: "Bearer ", wantErr: true},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantErr: true,
		},
		{
			name:   "valid token",
			header: "bearer good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{AccountID: accountID}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/questions", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			var reached bool
			err := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
				reached = true

				return nil
			})(c)

			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
				assert.False(t, reached)

				return
			}

			require.NoError(t, err)
			assert.True(t, reached)
			got, ok := deliverycontext.GetAccountID(c)
			assert.True(t, ok)
			assert.Equal(t, accountID, got)
		})
	}
}
