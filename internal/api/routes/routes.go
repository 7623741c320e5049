package routes

import (
	"log"
	"time"

	"referee-scheduler-backend/internal/api/handlers"
	"referee-scheduler-backend/internal/api/middleware"
	"referee-scheduler-backend/internal/auth"
	"referee-scheduler-backend/internal/config"
	"referee-scheduler-backend/internal/repository"
	"referee-scheduler-backend/internal/scheduling"
	"referee-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	gameRepo := repository.NewGameRepository(db)
	refereeRepo := repository.NewRefereeRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)
	chunkRepo := repository.NewChunkRepository(db)
	patternRepo := repository.NewPatternRepository(db)
	ruleRepo := repository.NewRuleRepository(db)

	// Conflict detection and scoring strategies. The delegate exists only
	// when configured; rules in delegate mode refuse to run without it.
	detector := service.NewConflictDetector(assignmentRepo)
	var delegate scheduling.ScoringStrategy
	if cfg.ScoringDelegateURL != "" {
		delegate = scheduling.NewDelegateStrategy(cfg.ScoringDelegateURL, cfg.ScoringDelegateTimeout())
	}
	strategy := scheduling.ScoringStrategy(scheduling.NewAlgorithmicStrategy())
	if delegate != nil {
		strategy = delegate
	}

	// Initialize services
	gameService := service.NewGameService(gameRepo, assignmentRepo, validator)
	refereeService := service.NewRefereeService(refereeRepo)
	availabilityService := service.NewAvailabilityService(availabilityRepo, refereeRepo, validator)
	assignmentService := service.NewAssignmentService(db, assignmentRepo, gameRepo, refereeRepo, positionRepo, detector, validator)
	suggestionService := service.NewSuggestionService(db, suggestionRepo, gameRepo, refereeRepo, positionRepo, assignmentRepo, availabilityRepo, assignmentService, detector, strategy, cfg.SuggestionTTL())
	chunkService := service.NewChunkService(db, chunkRepo, gameRepo, refereeRepo, assignmentService, detector, cfg.ChunkMaxGap(), cfg.ChunkMinGames, validator)
	patternService := service.NewPatternService(db, patternRepo, assignmentRepo, gameRepo, assignmentService, detector, cfg.PatternMinFrequency, validator)
	ruleService := service.NewRuleService(ruleRepo, gameRepo, suggestionService, delegate, validator)

	// Initialize auth
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = &auth.AuthConfig{JWTSecret: cfg.JWTSecret, Issuer: "referee-scheduler-backend", TokenTTL: time.Hour}
	}
	var authMiddleware *auth.AuthMiddleware
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		log.Printf("Warning: Failed to initialize auth service: %v", err)
	} else {
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	gameHandler := handlers.NewGameHandler(gameService)
	refereeHandler := handlers.NewRefereeHandler(refereeService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	patternHandler := handlers.NewPatternHandler(patternService)
	chunkHandler := handlers.NewChunkHandler(chunkService)
	ruleHandler := handlers.NewRuleHandler(ruleService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	var requireAdmin gin.HandlerFunc
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
		requireAdmin = authMiddleware.RequireAdmin()
	} else {
		requireAdmin = func(c *gin.Context) { c.Next() }
	}

	{
		// Game routes
		games := v1.Group("/games")
		{
			games.GET("", gameHandler.ListGames)
			games.POST("", requireAdmin, gameHandler.CreateGame)
			games.GET("/:id", gameHandler.GetGame)
			games.PUT("/:id", requireAdmin, gameHandler.UpdateGame)
			games.DELETE("/:id", requireAdmin, gameHandler.DeleteGame)
			games.GET("/:id/positions", gameHandler.ListGamePositions)
			games.GET("/:id/suggestions", suggestionHandler.ListGameSuggestions)
		}

		// Referee routes
		referees := v1.Group("/referees")
		{
			referees.GET("", refereeHandler.ListReferees)
			referees.GET("/:id", refereeHandler.GetReferee)
			referees.PUT("/:id/availability", requireAdmin, refereeHandler.SetRefereeAvailability)
		}

		// Availability window routes; ownership is enforced in the service
		availability := v1.Group("/availability")
		{
			availability.POST("", availabilityHandler.CreateWindow)
			availability.GET("", availabilityHandler.ListWindows)
			availability.DELETE("/:id", availabilityHandler.DeleteWindow)
		}

		// Assignment routes; referees may transition or remove their own rows
		assignments := v1.Group("/assignments")
		{
			assignments.POST("", requireAdmin, assignmentHandler.CreateAssignment)
			assignments.GET("", assignmentHandler.ListAssignments)
			assignments.GET("/:id", assignmentHandler.GetAssignment)
			assignments.PUT("/:id", assignmentHandler.UpdateAssignment)
			assignments.DELETE("/:id", assignmentHandler.DeleteAssignment)

			assignments.POST("/ai-suggestions", requireAdmin, suggestionHandler.GenerateSuggestions)
			assignments.PUT("/ai-suggestions/:id/accept", requireAdmin, suggestionHandler.AcceptSuggestion)
			assignments.PUT("/ai-suggestions/:id/reject", requireAdmin, suggestionHandler.RejectSuggestion)

			assignments.GET("/patterns", requireAdmin, patternHandler.DetectPatterns)
			assignments.POST("/patterns/apply", requireAdmin, patternHandler.ApplyPattern)
		}

		// Chunk routes
		chunks := v1.Group("/chunks")
		{
			chunks.GET("", chunkHandler.ListChunks)
			chunks.POST("", requireAdmin, chunkHandler.CreateChunk)
			chunks.POST("/auto-create", requireAdmin, chunkHandler.AutoCreateChunks)
			chunks.GET("/:id", chunkHandler.GetChunk)
			chunks.PUT("/:id", requireAdmin, chunkHandler.UpdateChunk)
			chunks.DELETE("/:id", requireAdmin, chunkHandler.DeleteChunk)
			chunks.POST("/:id/assign", requireAdmin, chunkHandler.AssignChunk)
		}

		// Assignment rule routes
		rules := v1.Group("/rules")
		{
			rules.GET("", ruleHandler.ListRules)
			rules.POST("", requireAdmin, ruleHandler.CreateRule)
			rules.GET("/:id", ruleHandler.GetRule)
			rules.PUT("/:id", requireAdmin, ruleHandler.UpdateRule)
			rules.DELETE("/:id", requireAdmin, ruleHandler.DeleteRule)
			rules.POST("/:id/partners", requireAdmin, ruleHandler.AddPartnerPreference)
			rules.POST("/:id/run", requireAdmin, ruleHandler.RunRule)
			rules.GET("/:id/runs", ruleHandler.GetRuleRuns)
		}
	}

	return router
}
