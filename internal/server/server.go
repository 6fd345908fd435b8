// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bookery/internal/cache"
	"bookery/internal/config"
	"bookery/internal/database"
	"bookery/internal/middleware"
	"bookery/internal/models"
	"bookery/internal/notify"
	"bookery/internal/repository"
	"bookery/internal/service"
	"bookery/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	store          storage.ObjectStore

	userRepo    repository.UserRepository
	bookRepo    repository.BookRepository
	cartRepo    repository.CartRepository
	favRepo     repository.FavouriteRepository
	ratingRepo  repository.RatingRepository
	reviewRepo  repository.ReviewRepository
	threadRepo  repository.ThreadRepository
	socialRepo  repository.SocialRepository
	messageRepo repository.MessageRepository
	alertRepo   repository.AlertRepository
	orderRepo   repository.OrderRepository

	userService    *service.UserService
	bookService    *service.BookService
	cartService    *service.CartService
	favService     *service.FavouriteService
	ratingService  *service.RatingService
	reviewService  *service.ReviewService
	threadService  *service.ThreadService
	socialService  *service.SocialService
	messageService *service.MessageService
	alertService   *service.AlertService
	orderService   *service.OrderService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use this with a sqlite DB and an optional miniredis client.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	s := &Server{
		config:      cfg,
		db:          db,
		redis:       redisClient,
		store:       storage.NewDiskStore(cfg.UploadDir),
		userRepo:    repository.NewUserRepository(db),
		bookRepo:    repository.NewBookRepository(db),
		cartRepo:    repository.NewCartRepository(db),
		favRepo:     repository.NewFavouriteRepository(db),
		ratingRepo:  repository.NewRatingRepository(db),
		reviewRepo:  repository.NewReviewRepository(db),
		threadRepo:  repository.NewThreadRepository(db),
		socialRepo:  repository.NewSocialRepository(db),
		messageRepo: repository.NewMessageRepository(db),
		alertRepo:   repository.NewAlertRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
	}
	s.promMiddleware = fiberprometheus.New("bookery-api")

	notifier := notify.NewNotifier(redisClient)

	s.userService = service.NewUserService(s.userRepo)
	s.bookService = service.NewBookService(s.bookRepo)
	s.cartService = service.NewCartService(s.cartRepo, s.bookRepo)
	s.favService = service.NewFavouriteService(s.favRepo, s.bookRepo)
	s.ratingService = service.NewRatingService(s.ratingRepo, s.bookRepo)
	s.alertService = service.NewAlertService(s.alertRepo, s.socialRepo, s.threadRepo, notifier)
	s.reviewService = service.NewReviewService(s.reviewRepo, s.bookRepo, s.alertService, s.isAdminByUserID)
	s.threadService = service.NewThreadService(s.threadRepo, s.alertService, s.isAdminByUserID)
	s.socialService = service.NewSocialService(s.socialRepo, s.userRepo)
	s.messageService = service.NewMessageService(s.messageRepo, s.socialRepo, s.userRepo)
	s.orderService = service.NewOrderService(s.orderRepo, s.cartRepo, s.bookRepo)

	return s, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Bookery Metrics Dashboard",
	}))

	// Auth routes
	app.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	app.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	app.Post("/logout", s.Logout)
	app.Get("/token", s.Token)

	// Public catalog
	books := app.Group("/books")
	books.Get("/", s.GetBooks)
	books.Get("/:id/reviews", s.GetBookReviews)
	books.Get("/:id", s.GetBook)

	// Public profiles
	app.Get("/users/:id", s.GetUserProfile)

	// Per-user resources; every route re-checks resolved identity == {id}.
	user := app.Group("/user/:id", s.AuthRequired(), s.OwnerRequired())
	user.Patch("/", s.UpdateProfile)
	user.Delete("/", s.DeleteAccount)
	user.Put("/password", s.ChangePassword)
	user.Put("/email", s.ChangeEmail)
	user.Post("/avatar", s.UploadAvatar)

	user.Get("/cart", s.GetCart)
	user.Post("/cart", s.AddCartItem)
	user.Patch("/cart/:itemId", s.UpdateCartItem)
	user.Delete("/cart/:itemId", s.RemoveCartItem)
	user.Post("/checkout", s.Checkout)
	user.Get("/orders", s.GetOrders)
	user.Get("/orders/:orderId", s.GetOrder)

	user.Get("/favorites", s.GetFavourites)
	user.Post("/favorites", s.AddFavourite)
	user.Delete("/favorites/:bookId", s.RemoveFavourite)

	user.Get("/ratings", s.GetRatings)
	user.Post("/ratings", s.UpsertRating)
	user.Get("/ratings/:bookId", s.GetRating)
	user.Delete("/ratings/:bookId", s.DeleteRating)

	user.Get("/reviews", s.GetUserReviews)
	user.Post("/reviews", s.UpsertReview)
	user.Get("/reviews/:bookId", s.GetUserReview)
	user.Delete("/reviews/:bookId", s.DeleteUserReview)

	user.Get("/follows", s.GetFollows)
	user.Post("/follows", s.CreateFollow)
	user.Delete("/follows/:followingId", s.DeleteFollow)

	// Review comments and likes
	reviews := app.Group("/reviews", s.AuthRequired())
	reviews.Get("/:id/comments", s.GetReviewComments)
	reviews.Post("/:id/comments", middleware.RateLimit(
		s.redis, 10, time.Minute, "review_comment"), s.CreateReviewComment)
	reviews.Delete("/comments/:commentId", s.DeleteReviewComment)
	reviews.Post("/:id/like", s.ToggleReviewLike)

	// Blocks
	blocks := app.Group("/blocks", s.AuthRequired())
	blocks.Get("/", s.GetBlocks)
	blocks.Post("/", s.CreateBlock)
	blocks.Delete("/:blockedId", s.DeleteBlock)

	// Messaging
	messages := app.Group("/messages", s.AuthRequired())
	messages.Get("/", s.GetConversations)
	messages.Get("/unreadCount", s.GetUnreadMessageCount)
	messages.Get("/:partnerId", s.GetConversation)
	messages.Post("/:partnerId", middleware.RateLimit(
		s.redis, 30, time.Minute, "send_message"), s.SendMessage)
	messages.Post("/:partnerId/read", s.MarkConversationRead)
	messages.Put("/:partnerId/:messageId", s.EditMessage)
	messages.Delete("/:partnerId/:messageId", s.DeleteMessage)

	// Alerts
	alerts := app.Group("/alerts", s.AuthRequired())
	alerts.Get("/", s.GetAlerts)
	alerts.Get("/unreadCount", s.GetUnreadAlertCount)
	alerts.Post("/markAllRead", s.MarkAllAlertsRead)
	alerts.Put("/:alertId", s.MarkAlertRead)
	alerts.Delete("/:alertId", s.DeleteAlert)

	// Threads
	app.Get("/threads", s.GetThreads)
	threads := app.Group("/threads", s.AuthRequired())
	threads.Post("/create", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_thread"), s.CreateThread)
	threads.Post("/:id/comments", middleware.RateLimit(
		s.redis, 10, time.Minute, "thread_comment"), s.CreateThreadComment)
	threads.Post("/:id/follow", s.FollowThread)
	threads.Delete("/:id/follow", s.UnfollowThread)
	threads.Get("/:id", s.GetThread)
	threads.Put("/:id", s.UpdateThread)
	threads.Delete("/:id", s.DeleteThread)

	// Admin back-office
	admin := app.Group("/admin", s.AuthRequired(), s.AdminRequired())
	admin.Get("/books", s.AdminGetBooks)
	admin.Post("/books", s.AdminCreateBook)
	admin.Patch("/books/:id", s.AdminUpdateBook)
	admin.Delete("/books/:id", s.AdminDeleteBook)
	admin.Get("/users", s.AdminGetUsers)
	admin.Post("/users", s.AdminCreateUser)
	admin.Patch("/users/:id", s.AdminUpdateUser)
	admin.Delete("/users/:id", s.AdminDeleteUser)
	admin.Delete("/reviews/:id", s.AdminDeleteReview)
	admin.Delete("/comments/:id", s.AdminDeleteReviewComment)
	admin.Delete("/threads/:id", s.AdminDeleteThread)
	admin.Delete("/threadComments/:id", s.AdminDeleteThreadComment)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Bookery API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.ErrorContext(c.UserContext(), "unhandled error", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	slog.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			slog.Error("error shutting down HTTP server", "error", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			slog.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			slog.Error("error closing redis", "error", rerr)
		}
	}

	slog.Info("server shutdown complete")
	return nil
}
