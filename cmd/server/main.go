package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/docusmart/docusmart-server/internal/config"
	"github.com/docusmart/docusmart-server/internal/database"
	"github.com/docusmart/docusmart-server/internal/handler"
	"github.com/docusmart/docusmart-server/internal/middleware"
	"github.com/docusmart/docusmart-server/internal/repository"
	"github.com/docusmart/docusmart-server/internal/router"
)

func main() {
	// Load .env if present; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable; cache and rate limit disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	users := repository.NewUserRepo(db)
	profiles := repository.NewProfileRepo(db)
	genres := repository.NewGenreRepo(db)
	documentaries := repository.NewDocumentaryRepo(db)
	comments := repository.NewCommentRepo(db)
	reactions := repository.NewReactionRepo(db)
	views := repository.NewViewHistoryRepo(db)

	auth := handler.NewAuthHandler(cfg, users)
	profile := handler.NewProfileHandler(profiles)
	catalog := handler.NewCatalogHandler(genres, documentaries)
	comment := handler.NewCommentHandler(comments)
	reaction := handler.NewReactionHandler(reactions, views)
	admin := handler.NewAdminHandler(users, documentaries, comments)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, limit)
	router.RegisterPublic(e, catalog, comment, cache)
	router.RegisterUser(e, profile, catalog, comment, reaction, cfg.JWTSecret)
	router.RegisterAdmin(e, admin, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
