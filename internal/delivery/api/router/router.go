// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"forum/internal/delivery/api/middleware"
	"forum/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
)

type RouterParams struct {
	AccountHandler  *handler.AccountHandler
	SessionHandler  *handler.SessionHandler
	QuestionHandler *handler.QuestionHandler
	AnswerHandler   *handler.AnswerHandler
	CommentHandler  *handler.CommentHandler
	AuthMiddleware  *middleware.AuthMiddleware
	LoginLimiter    *middleware.RateLimiter // Optional.
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	sessionHandler  *handler.SessionHandler
	questionHandler *handler.QuestionHandler
	answerHandler   *handler.AnswerHandler
	commentHandler  *handler.CommentHandler
	authMiddleware  *middleware.AuthMiddleware
	loginLimiter    *middleware.RateLimiter
}

func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		sessionHandler:  params.SessionHandler,
		questionHandler: params.QuestionHandler,
		answerHandler:   params.AnswerHandler,
		commentHandler:  params.CommentHandler,
		authMiddleware:  params.AuthMiddleware,
		loginLimiter:    params.LoginLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/accounts", r.accountHandler.Create)

	var sessionMiddleware []echo.MiddlewareFunc
	if r.loginLimiter != nil {
		sessionMiddleware = append(sessionMiddleware, r.loginLimiter.Limit)
	}
	e.POST("/sessions", r.sessionHandler.Authenticate, sessionMiddleware...)

	questions := e.Group("/questions")
	questions.Use(r.authMiddleware.Authenticate)
	{
		questions.POST("", r.questionHandler.Create)
		questions.GET("", r.questionHandler.FetchRecent)
		questions.GET("/:slug", r.questionHandler.GetBySlug)

		questions.POST("/:questionId/answers", r.answerHandler.Answer)
		questions.GET("/:questionId/answers", r.answerHandler.FetchByQuestion)
		questions.PATCH("/:answerId/choose-as-best", r.answerHandler.ChooseBest)

		questions.POST("/:questionId/comments", r.commentHandler.CommentOnQuestion)
		questions.GET("/:questionId/comments", r.commentHandler.FetchByQuestion)
	}
}
