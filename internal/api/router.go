package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/univeval/evaluation-system/docs"
	"github.com/univeval/evaluation-system/internal/api/handler"
	"github.com/univeval/evaluation-system/internal/api/middleware"
	"github.com/univeval/evaluation-system/internal/core/domain"
	"github.com/univeval/evaluation-system/internal/core/service"
	"github.com/univeval/evaluation-system/internal/infrastructure/ai"
	mongodb "github.com/univeval/evaluation-system/internal/infrastructure/db/mongo"
	redisdb "github.com/univeval/evaluation-system/internal/infrastructure/db/redis"
)

// Options carries everything the router needs to assemble the application.
type Options struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Groq      ai.Config
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("evaluation"))

	// --- Repositories ---
	users := mongodb.NewUserRepository(opts.Mongo)
	departments := mongodb.NewDepartmentRepository(opts.Mongo)
	questionnaires := mongodb.NewQuestionnaireRepository(opts.Mongo)
	evaluations := mongodb.NewEvaluationRepository(opts.Mongo)

	// --- Services ---
	authService := service.NewAuthService(users, opts.JWTSecret, 8*time.Hour, opts.Logger)
	userService := service.NewUserService(users, opts.Logger)
	departmentService := service.NewDepartmentService(departments, users, opts.Logger)
	activeCache := redisdb.NewActiveQuestionnaireCache(opts.Redis)
	questionnaireService := service.NewQuestionnaireService(questionnaires, activeCache, opts.Logger)
	evaluationService := service.NewEvaluationService(questionnaires, evaluations, opts.Logger)
	chatService := service.NewChatService(ai.NewClient(opts.Groq), opts.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	questionnaireHandler := handler.NewQuestionnaireHandler(questionnaireService)
	evaluationHandler := handler.NewEvaluationHandler(evaluationService)
	chatHandler := handler.NewChatHandler(chatService)

	auth := middleware.Auth(opts.JWTSecret)
	adminOrHR := middleware.RBAC(domain.RoleAdmin, domain.RoleHR)
	hrOnly := middleware.RBAC(domain.RoleHR)
	headOnly := middleware.RBAC(domain.RoleHead)
	adminOrHead := middleware.RBAC(domain.RoleAdmin, domain.RoleHead)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.GET("/public/active-questionnaire", questionnaireHandler.PublicActive)
	e.POST("/evaluations/:id/submit", evaluationHandler.Submit)
	e.POST("/public/chat", chatHandler.Ask)

	// --- User management (admin + hr) ---
	e.GET("/users", userHandler.List, auth, adminOrHR)
	e.PUT("/users/:id", userHandler.Update, auth, adminOrHR)
	e.DELETE("/users/:id", userHandler.Delete, auth, adminOrHR)

	// --- Departments ---
	e.GET("/departments", departmentHandler.List, auth, adminOrHR)
	e.POST("/departments", departmentHandler.Create, auth, hrOnly)
	e.PUT("/departments/:id/assign-head", departmentHandler.AssignHead, auth, adminOrHR)
	e.PUT("/departments/:id/remove-head", departmentHandler.RemoveHead, auth, adminOrHR)
	e.DELETE("/departments/:id", departmentHandler.Delete, auth, adminOrHR)

	// --- Questionnaires ---
	e.POST("/questionnaires", questionnaireHandler.Create, auth, headOnly)
	e.GET("/questionnaires", questionnaireHandler.List, auth, adminOrHead)
	e.POST("/questionnaires/:id/activate", questionnaireHandler.Activate, auth, headOnly)

	// --- Head evaluations + AI chat ---
	e.GET("/head/evaluations", evaluationHandler.ListForHead, auth, headOnly)
	e.POST("/chat", chatHandler.Ask, auth, headOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
