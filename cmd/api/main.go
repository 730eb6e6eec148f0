package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"jobportal/internal/config"
	"jobportal/internal/domain"
	"jobportal/internal/handler"
	"jobportal/internal/middleware"
	"jobportal/internal/pkg/i18n"
	"jobportal/internal/repository"
	"jobportal/internal/service"
	"jobportal/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := i18n.LoadMessages(cfg.LocalePath); err != nil {
		log.Printf("Warning: Failed to load locale files: %v (using built-in messages)", err)
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (file uploads will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	// Public job board.
	jobs := v1.Group("/jobs")
	jobs.Get("/", h.Job.List)
	jobs.Get("/recent", h.Job.Recent)
	jobs.Get("/filters", h.Job.FilterOptions)
	jobs.Get("/stats", h.Job.PublicStats)
	jobs.Get("/:slug", h.Job.GetBySlug)

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/forgot-password", h.Auth.ForgotPassword)
	authGroup.Post("/reset-password", h.Auth.ResetPassword)
	authGroup.Get("/verify-email", h.Auth.VerifyEmail)
	authGroup.Post("/resend-verification", h.Auth.ResendVerificationEmail)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/auth/me", h.Auth.Me)
	protected.Post("/auth/logout", h.Auth.Logout)
	protected.Post("/auth/change-password", h.Auth.ChangePassword)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/:notificationId/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)

	employee := protected.Group("/employee", middleware.RequireRole(domain.RoleEmployee))
	employee.Get("/dashboard", h.Dashboard.Employee)
	employee.Get("/profile", h.Profile.Get)
	employee.Put("/profile", h.Profile.Update)
	employee.Post("/profile/avatar", h.Profile.UploadAvatar)
	employee.Post("/profile/cv", h.Profile.UploadCV)
	employee.Post("/jobs/:jobId/apply", h.Application.Apply)
	employee.Get("/applications", h.Application.ListOwn)
	employee.Get("/applications/:applicationId", h.Application.GetOwn)
	employee.Delete("/applications/:applicationId", h.Application.Withdraw)

	employer := protected.Group("/employer", middleware.RequireRole(domain.RoleEmployer))
	employer.Get("/dashboard", h.Dashboard.Employer)
	employer.Get("/company", h.Company.Get)
	employer.Put("/company", h.Company.Update)
	employer.Post("/company/logo", h.Company.UploadLogo)
	employer.Post("/jobs", h.Job.Create)
	employer.Get("/jobs", h.Job.ListOwn)
	employer.Get("/jobs/:jobId", h.Job.GetOwn)
	employer.Put("/jobs/:jobId", h.Job.Update)
	employer.Delete("/jobs/:jobId", h.Job.Delete)
	employer.Post("/jobs/:jobId/submit", h.Job.Submit)
	employer.Post("/jobs/:jobId/close", h.Job.Close)
	employer.Get("/applications", h.Application.ListForCompany)
	employer.Get("/applications/:applicationId", h.Application.GetForEmployer)
	employer.Patch("/applications/:applicationId/status", h.Application.UpdateStatus)

	admin := protected.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.Get("/dashboard", h.Dashboard.Admin)
	admin.Get("/jobs", h.Admin.ListJobs)
	admin.Post("/jobs/:jobId/approve", h.Admin.ApproveJob)
	admin.Post("/jobs/:jobId/decline", h.Admin.DeclineJob)
	admin.Get("/users", h.Admin.ListUsers)
	admin.Get("/users/:userId", h.Admin.GetUser)
	admin.Patch("/users/:userId/status", h.Admin.SetUserActive)
}
