package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/soul-eater04/talentflow-api/internal/config"
	"github.com/soul-eater04/talentflow-api/internal/handlers"
	"github.com/soul-eater04/talentflow-api/internal/repositories"
	"github.com/soul-eater04/talentflow-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Seed the mock dataset (no-op when already seeded)
	if err := config.Seed(db); err != nil {
		log.Fatalf("❌ Failed to seed database: %v", err)
	}

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Start the mutation queue that serializes multi-record writes
	queue := services.NewMutationQueue()
	queue.Start()

	// Initialize services
	jobService := services.NewJobService(jobRepo)
	orderingService := services.NewOrderingService(jobRepo, queue)
	pipelineService := services.NewPipelineService(candidateRepo, jobRepo)
	assessmentService := services.NewAssessmentService(assessmentRepo, submissionRepo, jobRepo)
	log.Println("✅ Services initialized successfully")

	// Fault/latency injection for mutating endpoints
	chaos := services.NewChaos(
		cfg.Chaos.Enabled,
		cfg.Chaos.MinLatency,
		cfg.Chaos.MaxLatency,
		cfg.Chaos.FailureRate,
	)
	if cfg.Chaos.Enabled {
		log.Printf("✅ Chaos enabled: %s-%s latency, %.0f%% failure rate\n",
			cfg.Chaos.MinLatency, cfg.Chaos.MaxLatency, cfg.Chaos.FailureRate*100)
	}

	// Initialize handlers
	jobHandler := handlers.NewJobHandler(jobService, orderingService, cfg.Pagination.JobPageSize)
	candidateHandler := handlers.NewCandidateHandler(pipelineService, cfg.Pagination.CandidatePageSize)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "TalentFlow API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	faulty := chaos.Middleware()

	api.Get("/jobs", jobHandler.HandleList)
	api.Post("/jobs", faulty, jobHandler.HandleCreate)
	api.Patch("/jobs/:id/reorder", faulty, jobHandler.HandleReorder)
	api.Patch("/jobs/:id", faulty, jobHandler.HandlePatch)
	api.Get("/jobs/:slug", jobHandler.HandleGetBySlug)

	api.Get("/candidates", candidateHandler.HandleList)
	api.Post("/candidates", faulty, candidateHandler.HandleCreate)
	api.Get("/candidates/:id/timeline", candidateHandler.HandleTimeline)
	api.Get("/candidates/:jobId", candidateHandler.HandleListByJob)
	api.Patch("/candidates/:id", faulty, candidateHandler.HandleTransition)
	api.Put("/candidates/:id", faulty, candidateHandler.HandleAddNote)

	api.Get("/assessments/:jobId", assessmentHandler.HandleListByJob)
	api.Post("/assessments/:jobId", faulty, assessmentHandler.HandleCreate)
	api.Post("/assessment/:jobId/submit", faulty, assessmentHandler.HandleSubmit)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		queue.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
