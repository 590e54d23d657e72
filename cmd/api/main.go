package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowsalon/internal/config"
	"glowsalon/internal/database"
	"glowsalon/internal/middleware"
	"glowsalon/internal/modules/admin"
	"glowsalon/internal/modules/auth"
	"glowsalon/internal/modules/catalog"
	"glowsalon/internal/modules/favorite"
	"glowsalon/internal/modules/loyalty"
	"glowsalon/internal/modules/notification"
	"glowsalon/internal/modules/promotion"
	"glowsalon/internal/modules/recommendation"
	"glowsalon/internal/modules/review"
	"glowsalon/internal/modules/scheduling"
	jwtsvc "glowsalon/internal/pkg/jwt"
	"glowsalon/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := middleware.NewLogger(cfg.AppEnv)
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	stylistRepo := repository.NewStylistRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)

	hub := notification.NewHub()
	defer hub.Close()
	notifier := notification.NewService(hub, logger)
	wsHandler := notification.NewHandler(hub, j, logger)

	loyaltyService := loyalty.NewService(db)
	loyaltyHandler := loyalty.NewHandler(loyaltyService)

	authService := auth.NewService(userRepo, j, logger)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(categoryRepo, serviceRepo, stylistRepo, userRepo, reviewRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	schedulingService := scheduling.NewService(
		serviceRepo,
		stylistRepo,
		appointmentRepo,
		loyaltyService,
		notifier,
		cfg.Scheduling,
		logger,
	)
	schedulingHandler := scheduling.NewHandler(schedulingService)

	reviewService := review.NewService(reviewRepo, appointmentRepo)
	reviewHandler := review.NewHandler(reviewService)

	promotionService := promotion.NewService(promotionRepo)
	promotionHandler := promotion.NewHandler(promotionService)

	favoriteService := favorite.NewService(favoriteRepo, stylistRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	recommendationService := recommendation.NewService(categoryRepo, stylistRepo)
	recommendationHandler := recommendation.NewHandler(recommendationService)

	adminService := admin.NewService(userRepo, appointmentRepo, stylistRepo, reviewRepo, settingRepo)
	adminHandler := admin.NewHandler(adminService)

	if cfg.AppEnv == "production" || cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	wsHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		promotionHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			loyaltyHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			recommendationHandler.RegisterRoutes(protected)

			staff := protected.Group("/")
			staff.Use(middleware.StaffOnly())
			schedulingHandler.RegisterRoutes(protected, staff)
		}

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
			catalogHandler.RegisterAdminRoutes(adminGroup)
			promotionHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
