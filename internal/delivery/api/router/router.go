// Package router registers the admin API routes.
package router

import (
	"fitsaga/internal/delivery/api/middleware"
	"fitsaga/internal/delivery/api/router/handler"
	"fitsaga/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	ClientHandler     *handler.ClientHandler
	InstructorHandler *handler.InstructorHandler
	PlanHandler       *handler.PlanHandler
	SessionHandler    *handler.SessionHandler
	TutorialHandler   *handler.TutorialHandler
	ContractHandler   *handler.ContractHandler
	MediaHandler      *handler.MediaHandler
	CronHandler       *handler.CronHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	clientHandler     *handler.ClientHandler
	instructorHandler *handler.InstructorHandler
	planHandler       *handler.PlanHandler
	sessionHandler    *handler.SessionHandler
	tutorialHandler   *handler.TutorialHandler
	contractHandler   *handler.ContractHandler
	mediaHandler      *handler.MediaHandler
	cronHandler       *handler.CronHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		clientHandler:     params.ClientHandler,
		instructorHandler: params.InstructorHandler,
		planHandler:       params.PlanHandler,
		sessionHandler:    params.SessionHandler,
		tutorialHandler:   params.TutorialHandler,
		contractHandler:   params.ContractHandler,
		mediaHandler:      params.MediaHandler,
		cronHandler:       params.CronHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Auth middleware is attached to routes or to prefixed groups only, so unknown /api paths answer 404.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticated := r.authMiddleware.Authenticate
	adminOnly := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin)}

	e.GET("/health", handler.HealthCheck)

	// Contracts kept on local storage are linked as {publicBaseUrl}/contracts/{file}.
	e.GET("/contracts/:file", r.contractHandler.GetContractDocument)

	api := e.Group("/api")

	// Public routes: media is embedded as <img>/<video> sources and the signing page has no login.
	api.GET("/videos/thumbnail/*", r.mediaHandler.GetThumbnail)
	api.GET("/videos/proxy", r.mediaHandler.ProxyVideo)
	api.GET("/contracts/:id", r.contractHandler.GetContract)
	api.POST("/contracts/:id/sign", r.contractHandler.SignContract)

	cronGroup := api.Group("/cron", r.authMiddleware.CronSecret)
	{
		cronGroup.POST("/reset-credits", r.cronHandler.ResetCredits)
	}

	// Routes for any signed-in user
	api.GET("/videos/sas-url", r.mediaHandler.GetSignedURL, authenticated)
	api.GET("/video-metadata", r.mediaHandler.ListVideos, authenticated)
	api.GET("/sessions", r.sessionHandler.ListSessions, authenticated)

	tutorialsGroup := api.Group("/tutorials", authenticated)
	{
		tutorialsGroup.GET("", r.tutorialHandler.ListTutorials)
		tutorialsGroup.POST("", r.tutorialHandler.CreateTutorial)
		tutorialsGroup.GET("/:id", r.tutorialHandler.GetTutorial)
		tutorialsGroup.PUT("/:id", r.tutorialHandler.UpdateTutorial)
		tutorialsGroup.DELETE("/:id", r.tutorialHandler.DeleteTutorial)
	}

	// Admin routes
	usersGroup := api.Group("/users", adminOnly...)
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
		usersGroup.PATCH("/:id/access", r.userHandler.ChangeAccess)
	}

	clientsGroup := api.Group("/clients", adminOnly...)
	{
		clientsGroup.GET("", r.clientHandler.ListClients)
		clientsGroup.POST("", r.clientHandler.CreateClient)
		clientsGroup.PATCH("", r.clientHandler.BatchUpdateClients)
		clientsGroup.DELETE("", r.clientHandler.BatchDeleteClients)
		clientsGroup.GET("/:id", r.clientHandler.GetClient)
		clientsGroup.PUT("/:id", r.clientHandler.UpdateClient)
		clientsGroup.DELETE("/:id", r.clientHandler.DeleteClient)
		clientsGroup.POST("/:id/credits", r.clientHandler.AdjustCredits)
		clientsGroup.PATCH("/:id/credits", r.clientHandler.SetCredits)
		clientsGroup.PATCH("/:id/access", r.clientHandler.ChangeAccess)
		clientsGroup.POST("/:id/subscription", r.clientHandler.AssignSubscription)
		clientsGroup.GET("/:id/subscription", r.clientHandler.GetSubscription)
		clientsGroup.POST("/:id/contract", r.contractHandler.GenerateContract)
		clientsGroup.GET("/:id/contracts/latest", r.contractHandler.GetLatestContract)
	}

	api.GET("/contracts/:id/qr", r.contractHandler.GetSigningQRCode, adminOnly...)

	instructorsGroup := api.Group("/instructors", adminOnly...)
	{
		instructorsGroup.GET("", r.instructorHandler.ListInstructors)
		instructorsGroup.POST("", r.instructorHandler.CreateInstructor)
		instructorsGroup.DELETE("/:id", r.instructorHandler.DeleteInstructor)
	}

	plansGroup := api.Group("/subscription-plans", adminOnly...)
	{
		plansGroup.GET("", r.planHandler.ListPlans)
		plansGroup.POST("", r.planHandler.CreatePlan)
		plansGroup.GET("/:id", r.planHandler.GetPlan)
		plansGroup.PUT("/:id", r.planHandler.UpdatePlan)
		plansGroup.DELETE("/:id", r.planHandler.DeletePlan)
	}

	api.DELETE("/sessions", r.sessionHandler.DeleteSessions, adminOnly...)
	api.DELETE("/sessions/:id", r.sessionHandler.DeleteSession, adminOnly...)
	api.POST("/video-metadata/import", r.mediaHandler.ImportVideos, adminOnly...)
}
