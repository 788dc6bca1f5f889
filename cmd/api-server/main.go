package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mediarate/database"
	"mediarate/internal/api/handler"
	"mediarate/internal/api/middleware"
	"mediarate/internal/api/repository"
	"mediarate/internal/api/service"
	"mediarate/internal/api/token"
	"mediarate/internal/config"
	"mediarate/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger.InitFromConfig(cfg)
	logg := logger.L()

	db, err := database.ConnectDB(cfg, logg)
	if err != nil {
		logg.Error("database connection failed", "error", err)
		return
	}

	tokens, err := token.NewRedisStore(cfg.RedisURL, cfg.RedisPassword, cfg.TokenTTL)
	if err != nil {
		logg.Error("redis connection failed", "error", err)
		return
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo, ratingRepo, favoriteRepo, mediaRepo)
	mediaService := service.NewMediaService(mediaRepo)
	ratingService := service.NewRatingService(ratingRepo, mediaRepo)
	commentService := service.NewCommentService(commentRepo, mediaRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, mediaRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	commentHandler := handler.NewCommentHandler(commentService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/db/ping", func(c *gin.Context) {
		var now time.Time
		if err := db.Raw("SELECT CURRENT_TIMESTAMP").Scan(&now).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": now})
	})

	authRequired := middleware.RequireAuth(authService)
	rateLimited := middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst)

	api := r.Group("/api")
	authHandler.RegisterRoutes(api, authRequired, rateLimited)
	userHandler.RegisterRoutes(api, authRequired)
	mediaHandler.RegisterRoutes(api, authRequired)
	ratingHandler.RegisterRoutes(api, authRequired)
	commentHandler.RegisterRoutes(api, authRequired)
	favoriteHandler.RegisterRoutes(api, authRequired)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logg.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logg.Error("server stopped", "error", err)
	}
}
