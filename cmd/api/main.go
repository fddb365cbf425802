package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"zebratime/internal/database"
	"zebratime/internal/events"
	"zebratime/internal/middleware"
	"zebratime/internal/modules/assistant"
	"zebratime/internal/modules/availability"
	"zebratime/internal/modules/booking"
	"zebratime/internal/modules/business"
	jwtsvc "zebratime/internal/pkg/jwt"
	"zebratime/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "zebratime.db"
		log.Println("DATABASE_URL is empty, falling back to local SQLite")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	businessRepo := repository.NewBusinessRepository(db)
	tableRepo := repository.NewTableRepository(db)
	ruleRepo := repository.NewAvailabilityRuleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	hub := events.NewHub()
	defer hub.Close()

	availabilityService := availability.NewService(businessRepo, ruleRepo, tableRepo, bookingRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingService := booking.NewService(bookingRepo, businessRepo, ruleRepo, tableRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	assistantService := assistant.NewService(bookingService, availabilityService)
	assistantHandler := assistant.NewHandler(assistantService)

	businessService := business.NewService(businessRepo, ruleRepo, tableRepo)
	businessHandler := business.NewHandler(businessService, hub)

	ownership := middleware.NewOwnershipChecker(businessRepo)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), corsMiddleware())

	v1 := r.Group("/api/v1")
	{
		public := v1.Group("/public", middleware.RateLimit(60, 20))
		{
			availabilityHandler.RegisterRoutes(public)
			bookingHandler.RegisterPublicRoutes(public)
		}

		hooks := v1.Group("/assistant", middleware.AssistantAuth())
		{
			assistantHandler.RegisterRoutes(hooks)
		}

		owner := v1.Group("/owner", middleware.JWTAuth(j))
		owned := owner.Group("", ownership.CheckBusinessOwnership())
		{
			businessHandler.RegisterRoutes(owner, owned)
			bookingHandler.RegisterOwnerRoutes(owned)
		}
	}

	addr := ":" + envOr("PORT", "8080")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-ID")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	return cors.New(cfg)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
