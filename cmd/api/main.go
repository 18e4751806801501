package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resume-parser/internal/config"
	"resume-parser/internal/handlers"
	"resume-parser/internal/parser"
	"resume-parser/internal/repositories"
	"resume-parser/internal/services"
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

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	jobRepo := repositories.NewParseJobRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	var remoteClient services.RemoteParserClient
	if cfg.Remote.ParserURL != "" {
		remoteClient = services.NewRemoteParserClient(cfg.Remote.ParserURL, cfg.Remote.Timeout)
		log.Println("✅ Remote parser client initialized")
	} else {
		log.Println("⚠️  REMOTE_PARSER_URL not set, remote-enhanced strategy disabled")
	}

	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set, remote-ai strategy disabled")
	}

	ocrService := services.NewOCRService(strings.Split(cfg.Parser.OCRLanguages, ",")...)

	options := parser.ExtractionOptions{
		Thresholds: parser.Thresholds{
			RawContent:     cfg.Parser.CorruptionThresholdRaw,
			PersonalFields: cfg.Parser.CorruptionThresholdPersonal,
		},
		DefaultEnglishFluent: cfg.Parser.DefaultEnglishFluent,
	}

	parseService := services.NewParseService(
		jobRepo,
		docRepo,
		storageService,
		remoteClient,
		geminiService,
		ocrService,
		options,
		services.ChainTimeouts{
			RemoteEnhanced: cfg.Remote.Timeout,
			RemoteAI:       cfg.Gemini.Timeout,
		},
		services.LogNotifier{},
	)
	log.Println("✅ Parse service initialized")

	// Initialize worker
	worker := services.NewWorker(
		jobRepo,
		parseService,
		cfg.Worker.Concurrency,
		cfg.Worker.PollInterval,
	)

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(docRepo, storageService)
	parseHandler := handlers.NewParseHandler(jobRepo, docRepo, worker)
	resultHandler := handlers.NewResultHandler(jobRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Parser API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    parser.MaxImageBytes,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/parse", parseHandler.HandleParse)
	api.Get("/result/:id", resultHandler.HandleGetResult)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Parser API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/parse",
				"GET /api/v1/result/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
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

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
