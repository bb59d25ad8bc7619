package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"forum/config"
	apimiddleware "forum/internal/delivery/api/middleware"
	"forum/internal/delivery/api/router"
	"forum/internal/delivery/api/router/handler"
	"forum/internal/delivery/api/validator"
	"forum/internal/domain/entity"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/service"
	mockSvc "forum/internal/mocks/service"
	mockUC "forum/internal/mocks/usecase"
	"forum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type envelope struct {
	Data  map[string]json.RawMessage `json:"data"`
	Error *struct {
		Code    string               `json:"code"`
		Message string               `json:"message"`
		Details []validator.Violation `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type serverFixtures struct {
	echo       *echo.Echo
	accounts   *mockUC.MockAccountUsecase
	sessions   *mockUC.MockSessionUsecase
	questions  *mockUC.MockQuestionUsecase
	answers    *mockUC.MockAnswerUsecase
	comments   *mockUC.MockCommentUsecase
	accountID  uuid.UUID
	tokenSvc   *mockSvc.MockTokenService
	rateLimits *fakeRecorder
}

type fakeRecorder struct {
	requests []string
	limited  []string
}

func (f *fakeRecorder) RecordRequest(method, route string, status int, _ time.Duration) {
	f.requests = append(f.requests, method+" "+route)
}

func (f *fakeRecorder) RecordRateLimited(limiter string) {
	f.limited = append(f.limited, limiter)
}

func newTestServer(t *testing.T) serverFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	v := validator.New()
	fx := serverFixtures{
		accounts:   mockUC.NewMockAccountUsecase(t),
		sessions:   mockUC.NewMockSessionUsecase(t),
		questions:  mockUC.NewMockQuestionUsecase(t),
		answers:    mockUC.NewMockAnswerUsecase(t),
		comments:   mockUC.NewMockCommentUsecase(t),
		accountID:  uuid.New(),
		tokenSvc:   mockSvc.NewMockTokenService(t),
		rateLimits: &fakeRecorder{},
	}

	fx.tokenSvc.EXPECT().ValidateToken(testToken).Return(&service.Claims{AccountID: fx.accountID}, nil).Maybe()
	fx.tokenSvc.EXPECT().ValidateToken(mock.MatchedBy(func(s string) bool { return s != testToken })).
		Return(nil, errors.New("invalid access token")).Maybe()

	limiter := apimiddleware.NewRateLimiter(apimiddleware.RateLimiterParams{
		Name:     "login",
		Config:   &config.RateLimitConfig{Enabled: true, PerMinute: 1, Burst: 2},
		Recorder: fx.rateLimits,
		Logger:   logger,
	})
	t.Cleanup(limiter.Stop)

	fx.echo = NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		Validator:       v,
		RequestRecorder: fx.rateLimits,
		RouterParams: router.RouterParams{
			AccountHandler:  handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: fx.accounts, Validator: v, Logger: logger}),
			SessionHandler:  handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: fx.sessions, Validator: v, Logger: logger}),
			QuestionHandler: handler.NewQuestionHandler(handler.QuestionHandlerParams{QuestionUC: fx.questions, Validator: v, Logger: logger}),
			AnswerHandler:   handler.NewAnswerHandler(handler.AnswerHandlerParams{AnswerUC: fx.answers, Validator: v, Logger: logger}),
			CommentHandler:  handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: fx.comments, Validator: v, Logger: logger}),
			AuthMiddleware:  apimiddleware.NewAuthMiddleware(fx.tokenSvc),
			LoginLimiter:    limiter,
		},
	})

	return fx
}

func (fx serverFixtures) do(t *testing.T, method, target, body string, authenticated bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	req.RemoteAddr = "192.0.2.10:5555"

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func TestCreateAccount(t *testing.T) {
	fx := newTestServer(t)
	account := &entity.Account{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$08$secret"}

	fx.accounts.EXPECT().
		Register(mock.Anything, usecase.RegisterAccountInput{Name: "Alice", Email: "alice@example.com", Password: "123456"}).
		Return(account, nil)

	rec, env := fx.do(t, http.MethodPost, "/accounts", `{"name":"Alice","email":"alice@example.com","password":"123456"}`, false)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data["account"]), `"email":"alice@example.com"`)
	assert.NotContains(t, rec.Body.String(), "$2a$08$secret")
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))
}

func TestCreateAccount_ValidationFailure(t *testing.T) {
	fx := newTestServer(t)

	rec, env := fx.do(t, http.MethodPost, "/accounts", `{"name":"Al","email":"bad","password":"123"}`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	require.Len(t, env.Error.Details, 3)

	fields := map[string]string{}
	for _, v := range env.Error.Details {
		fields[v.Field] = v.Rule
	}
	assert.Equal(t, map[string]string{"name": "min", "email": "email", "password": "min"}, fields)
}

func TestCreateAccount_RejectsNonStringMembers(t *testing.T) {
	fx := newTestServer(t)

	rec, env := fx.do(t, http.MethodPost, "/accounts", `{"name":12345,"email":"a@b.com","password":true}`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	fields := map[string]string{}
	for _, v := range env.Error.Details {
		fields[v.Field] = v.Rule
	}
	assert.Equal(t, map[string]string{"name": "type", "password": "type"}, fields)
}

func TestCreateAccount_PasswordOverByteLimit(t *testing.T) {
	fx := newTestServer(t)

	body := `{"name":"Alice","email":"alice@example.com","password":"` + strings.Repeat("é", 40) + `"}`
	rec, env := fx.do(t, http.MethodPost, "/accounts", body, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	require.Len(t, env.Error.Details, 1)
	assert.Equal(t, "password", env.Error.Details[0].Field)
	assert.Equal(t, "maxbytes", env.Error.Details[0].Rule)
}

func TestCreateAccount_Conflict(t *testing.T) {
	fx := newTestServer(t)

	fx.accounts.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered"))

	rec, env := fx.do(t, http.MethodPost, "/accounts", `{"name":"Alice","email":"alice@example.com","password":"123456"}`, false)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", env.Error.Code)
}

func TestCreateAccount_MalformedJSON(t *testing.T) {
	fx := newTestServer(t)

	rec, env := fx.do(t, http.MethodPost, "/accounts", `{"name":`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestAuthenticate(t *testing.T) {
	fx := newTestServer(t)

	fx.sessions.EXPECT().
		Authenticate(mock.Anything, usecase.AuthenticateInput{Email: "alice@example.com", Password: "123456"}).
		Return(&usecase.AuthenticateOutput{AccessToken: "jwt", ExpiresIn: time.Hour}, nil)

	rec, env := fx.do(t, http.MethodPost, "/sessions", `{"email":"alice@example.com","password":"123456"}`, false)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `"jwt"`, string(env.Data["access_token"]))
	assert.JSONEq(t, `3600`, string(env.Data["expires_in"]))
}

func TestAuthenticate_InvalidCredentialsHidesDetails(t *testing.T) {
	fx := newTestServer(t)

	fx.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email"))

	rec, env := fx.do(t, http.MethodPost, "/sessions", `{"email":"ghost@example.com","password":"x"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Equal(t, "Invalid email or password", env.Error.Message)
	assert.NotContains(t, rec.Body.String(), "unknown email")
}

func TestAuthenticate_RateLimited(t *testing.T) {
	fx := newTestServer(t)

	fx.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials).Times(2)

	body := `{"email":"alice@example.com","password":"wrong"}`
	for range 2 {
		rec, _ := fx.do(t, http.MethodPost, "/sessions", body, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec, env := fx.do(t, http.MethodPost, "/sessions", body, false)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", env.Error.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, []string{"login"}, fx.rateLimits.limited)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	fx := newTestServer(t)

	rec, env := fx.do(t, http.MethodGet, "/questions", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
	rec = httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateQuestion(t *testing.T) {
	fx := newTestServer(t)
	question := &entity.Question{ID: uuid.New(), AuthorID: fx.accountID, Title: "New question", Slug: "new-question", Content: "Body"}

	fx.questions.EXPECT().
		Create(mock.Anything, usecase.CreateQuestionInput{AuthorID: fx.accountID, Title: "New question", Content: "Body"}).
		Return(question, nil)

	rec, env := fx.do(t, http.MethodPost, "/questions", `{"title":"New question","content":"Body"}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data["question"]), `"slug":"new-question"`)
}

func TestFetchRecentQuestions_Pagination(t *testing.T) {
	fx := newTestServer(t)

	fx.questions.EXPECT().FetchRecent(mock.Anything, fx.accountID, 1).Return(nil, nil).Once()
	fx.questions.EXPECT().FetchRecent(mock.Anything, fx.accountID, 3).Return([]*entity.Question{{ID: uuid.New()}}, nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/questions", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data["questions"]))

	rec, _ = fx.do(t, http.MethodGet, "/questions?page=3", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = fx.do(t, http.MethodGet, "/questions?page=0", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Error.Details, 1)
	assert.Equal(t, validator.Violation{Field: "page", Rule: "min", Message: "Page must be at least 1"}, env.Error.Details[0])
}

func TestGetQuestionBySlug_NotFound(t *testing.T) {
	fx := newTestServer(t)

	fx.questions.EXPECT().GetBySlug(mock.Anything, "missing").
		Return(nil, domainerrors.ErrQuestionNotFound.WrapMessage("missing"))

	rec, env := fx.do(t, http.MethodGet, "/questions/missing", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "QUESTION_NOT_FOUND", env.Error.Code)
}

func TestAnswerQuestion(t *testing.T) {
	fx := newTestServer(t)
	questionID := uuid.New()

	fx.answers.EXPECT().
		Answer(mock.Anything, usecase.AnswerQuestionInput{AuthorID: fx.accountID, QuestionID: questionID, Content: "Use a mutex"}).
		Return(&entity.Answer{ID: uuid.New(), QuestionID: questionID, Content: "Use a mutex"}, nil)

	rec, env := fx.do(t, http.MethodPost, "/questions/"+questionID.String()+"/answers", `{"content":"Use a mutex"}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data["answer"]), `"content":"Use a mutex"`)
}

func TestAnswerQuestion_InvalidQuestionID(t *testing.T) {
	fx := newTestServer(t)

	rec, env := fx.do(t, http.MethodPost, "/questions/not-a-uuid/answers", `{"content":"x"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "questionId", env.Error.Details[0].Field)
}

func TestFetchQuestionAnswers(t *testing.T) {
	fx := newTestServer(t)
	questionID := uuid.New()

	fx.answers.EXPECT().FetchByQuestion(mock.Anything, questionID, 2).
		Return([]*entity.Answer{{ID: uuid.New(), Content: "Answer 1"}, {ID: uuid.New(), Content: "Answer 2"}}, nil)

	rec, env := fx.do(t, http.MethodGet, "/questions/"+questionID.String()+"/answers?page=2", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	var answers []map[string]any
	require.NoError(t, json.Unmarshal(env.Data["answers"], &answers))
	assert.Len(t, answers, 2)
}

func TestChooseBestAnswer(t *testing.T) {
	fx := newTestServer(t)
	answerID := uuid.New()

	fx.answers.EXPECT().
		ChooseBest(mock.Anything, usecase.ChooseBestAnswerInput{AuthorID: fx.accountID, AnswerID: answerID}).
		Return(&entity.Question{}, nil)

	rec, _ := fx.do(t, http.MethodPatch, "/questions/"+answerID.String()+"/choose-as-best", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestChooseBestAnswer_Forbidden(t *testing.T) {
	fx := newTestServer(t)

	fx.answers.EXPECT().ChooseBest(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrNotAllowed.WrapMessage("not the author"))

	rec, env := fx.do(t, http.MethodPatch, "/questions/"+uuid.NewString()+"/choose-as-best", "", true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_ALLOWED", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestCommentOnQuestion(t *testing.T) {
	fx := newTestServer(t)
	questionID := uuid.New()

	fx.comments.EXPECT().
		CommentOnQuestion(mock.Anything, usecase.CommentOnQuestionInput{AuthorID: fx.accountID, QuestionID: questionID, Content: "Great"}).
		Return(&entity.Comment{ID: uuid.New(), QuestionID: questionID, Content: "Great"}, nil)

	rec, _ := fx.do(t, http.MethodPost, "/questions/"+questionID.String()+"/comments", `{"content":"Great"}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCommentOnQuestion_MissingContent(t *testing.T) {
	fx := newTestServer(t)

	rec, env := fx.do(t, http.MethodPost, "/questions/"+uuid.NewString()+"/comments", `{}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []validator.Violation{{Field: "content", Rule: "required", Message: "is required"}}, env.Error.Details)
}

func TestFetchQuestionComments(t *testing.T) {
	fx := newTestServer(t)
	questionID := uuid.New()

	fx.comments.EXPECT().FetchByQuestion(mock.Anything, questionID, 1).Return([]*entity.Comment{}, nil)

	rec, env := fx.do(t, http.MethodGet, "/questions/"+questionID.String()+"/comments", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data["comments"]))
}

func TestUnhandledErrorIsHidden(t *testing.T) {
	fx := newTestServer(t)

	fx.questions.EXPECT().GetBySlug(mock.Anything, "boom").Return(nil, errors.New("pq: relation does not exist"))

	rec, env := fx.do(t, http.MethodGet, "/questions/boom", "", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestBodyLimit(t *testing.T) {
	fx := newTestServer(t)

	big := `{"content":"` + strings.Repeat("a", 2048) + `"}`
	rec, env := fx.do(t, http.MethodPost, "/accounts", big, false)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", env.Error.Code)
}

func TestRequestsAreRecordedByRoute(t *testing.T) {
	fx := newTestServer(t)

	fx.questions.EXPECT().GetBySlug(mock.Anything, "some-slug").Return(&entity.Question{}, nil)

	fx.do(t, http.MethodGet, "/questions/some-slug", "", true)
	fx.do(t, http.MethodGet, "/health", "", false)

	assert.Equal(t, []string{"GET /questions/:slug", "GET /health"}, fx.rateLimits.requests)
}
