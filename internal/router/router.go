package router

import (
	"time"

	"rebowork/internal/config"
	"rebowork/internal/handler"
	"rebowork/internal/infra"
	"rebowork/internal/middleware"
	"rebowork/internal/model"
	"rebowork/internal/repository"
	"rebowork/internal/service"
	"rebowork/internal/token"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
)

var (
	admin    = model.RoleAdmin
	director = model.RoleDirector
	manager  = model.RoleManager
	user     = model.RoleUser
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← store backend
func New(cfg *config.Config, backend *infra.Backend) *gin.Engine {
	return NewWithClock(cfg, backend, service.SystemClock())
}

// NewWithClock is New with an explicit id and time source.
func NewWithClock(cfg *config.Config, backend *infra.Backend, clock service.Clock) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.APIRateLimit, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	workerRepo := repository.NewWorkerRepository(backend)
	historyRepo := repository.NewHistoryRepository(backend)
	penaltyRepo := repository.NewPenaltyRepository(backend)
	bonusRepo := repository.NewBonusRepository(backend)
	taskRepo := repository.NewTaskRepository(backend)
	userRepo := repository.NewUserRepository(backend)

	// ── Services ─────────────────────────────────────────────────────────────
	tokens := token.NewManager(cfg.JWTSecret)
	authSvc := service.NewAuthService(userRepo, tokens, cfg, clock)
	workerSvc := service.NewWorkerService(workerRepo, clock)
	attendanceSvc := service.NewAttendanceService(historyRepo, workerRepo, clock)
	penaltySvc := service.NewPenaltyService(penaltyRepo, workerRepo, clock)
	bonusSvc := service.NewBonusService(bonusRepo, workerRepo, clock)
	taskSvc := service.NewTaskService(taskRepo, workerRepo, clock)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	workersH := handler.NewWorkersHandler(workerSvc)
	historiesH := handler.NewHistoriesHandler(attendanceSvc)
	penaltiesH := handler.NewPenaltiesHandler(penaltySvc)
	bonusesH := handler.NewBonusesHandler(bonusSvc)
	tasksH := handler.NewTasksHandler(taskSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(backend))

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(cfg.LoginRateLimit), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. Allowed ranks are declared per endpoint.
	var accounts middleware.AccountLookup
	if cfg.AuthRevalidate {
		accounts = authSvc
	}
	api := r.Group("/api", middleware.JWTAuth(tokens, accounts))
	{
		anyone := middleware.RequireRole(model.AllRoles...)
		staff := middleware.RequireRole(admin, director, manager)
		directors := middleware.RequireRole(admin, director)

		api.GET("/me", anyone, authH.Me)

		api.GET("/users", directors, usersH.List)
		api.GET("/user/:username", directors, usersH.Get)
		api.POST("/user", directors, usersH.Create)
		api.PATCH("/user/:username", directors, usersH.Update)
		api.DELETE("/user/:username", directors, usersH.Delete)

		api.GET("/workers", anyone, workersH.List)
		api.GET("/worker/qr/:code", staff, workersH.GetByQRCode)
		api.GET("/worker/:id", staff, workersH.Get)
		api.POST("/worker", directors, workersH.Create)
		api.PATCH("/worker/:id", directors, workersH.Update)
		api.DELETE("/worker/:id", directors, workersH.Delete)

		api.POST("/history", anyone, historiesH.Record)
		api.GET("/histories", staff, historiesH.List)
		api.GET("/histories/worker/:workerId", staff, historiesH.ListByWorker)
		api.DELETE("/history/:id", directors, historiesH.Delete)

		api.POST("/penalty", staff, penaltiesH.Add)
		api.DELETE("/penalty/:id", staff, penaltiesH.Delete)
		api.GET("/penalties", anyone, penaltiesH.List)
		api.GET("/penalties/worker/:workerId", staff, penaltiesH.ListByWorker)

		api.POST("/bonus", staff, bonusesH.Add)
		api.DELETE("/bonus/:id", staff, bonusesH.Delete)
		api.GET("/bonuses", anyone, bonusesH.List)
		api.GET("/bonuses/worker/:workerId", staff, bonusesH.ListByWorker)

		api.POST("/tasks", staff, tasksH.Create)
		api.GET("/tasks", anyone, tasksH.List)
		api.GET("/tasks/:store_name", anyone, tasksH.ListByStore)
		api.PATCH("/tasks/:taskId", anyone, tasksH.Update)
		api.DELETE("/tasks/:taskId", staff, tasksH.Delete)
		// Managers cannot complete tasks.
		api.POST("/complete/:taskId", middleware.RequireRole(admin, director, user), tasksH.Complete)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
