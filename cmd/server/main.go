package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"therapy_platform/internal/config"
	"therapy_platform/internal/handler"
	"therapy_platform/internal/middleware"
	"therapy_platform/internal/model"
	"therapy_platform/internal/repository"
	"therapy_platform/internal/service"
	"therapy_platform/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Development convenience only: a fixed therapist account provisioned
// at startup so the API is usable on a fresh database. Not a seed for
// production.
const (
	adminUsername = "admin_therapist"
	adminEmail    = "admin@therapist.com"
	adminPassword = "secureAdminPass123!"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS")
	jwtExpHours, err := strconv.ParseInt(jwtExpHoursStr, 10, 64)
	if err != nil {
		log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads" // Default uploads directory
	}
	// Ensure uploads directory exists
	if err := os.MkdirAll(uploadsDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create uploads directory %s: %v", uploadsDir, err)
	}
	log.Printf("Uploads will be stored in: %s", uploadsDir)

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	sessionRepo := repository.NewSessionRepository(dbPool)
	postRepo := repository.NewPostRepository(dbPool)
	commentRepo := repository.NewCommentRepository(dbPool)
	appointmentRepo := repository.NewAppointmentRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, sessionRepo, jwtUtil)
	postService := service.NewPostService(postRepo, uploadsDir)
	commentService := service.NewCommentService(commentRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)

	// --- Provision Admin Therapist ---
	if err := bootstrapAdmin(context.Background(), authService); err != nil {
		log.Fatalf("Failed to provision admin therapist: %v", err)
	}

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	sessionAuthMW := middleware.SessionAuthMiddleware(authService)
	therapistMW := middleware.TherapistMiddleware()

	// --- Register Routes ---
	// The API lives at the router root, there is no version prefix
	apiGroup := router.Group("")
	authHandler.RegisterAuthRoutes(apiGroup, sessionAuthMW)
	postHandler.RegisterPostRoutes(apiGroup, sessionAuthMW, therapistMW)
	commentHandler.RegisterCommentRoutes(apiGroup, sessionAuthMW)
	appointmentHandler.RegisterAppointmentRoutes(apiGroup, sessionAuthMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

// bootstrapAdmin creates the fixed admin therapist account if absent
func bootstrapAdmin(ctx context.Context, authService service.AuthService) error {
	_, err := authService.Register(ctx, model.RegisterRequest{
		Username:    adminUsername,
		Email:       adminEmail,
		Password:    adminPassword,
		IsTherapist: true,
	})
	if errors.Is(err, service.ErrUserAlreadyExists) {
		log.Println("Admin therapist already exists")
		return nil
	}
	if err != nil {
		return err
	}
	log.Println("Admin therapist created successfully")
	return nil
}
