package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"servicehub/internal/config"
	"servicehub/internal/database"
	"servicehub/internal/middleware"
	"servicehub/internal/modules/admin"
	"servicehub/internal/modules/approval"
	"servicehub/internal/modules/auth"
	"servicehub/internal/modules/chat"
	"servicehub/internal/modules/favorite"
	"servicehub/internal/modules/job"
	"servicehub/internal/modules/offer"
	"servicehub/internal/modules/post"
	"servicehub/internal/modules/rating"
	"servicehub/internal/modules/subscription"
	"servicehub/internal/modules/upload"
	jwtsvc "servicehub/internal/pkg/jwt"
	"servicehub/internal/pkg/response"
	"servicehub/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	customerPostRepo := repository.NewCustomerPostRepository(db)
	workerPostRepo := repository.NewWorkerPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	jobRepo := repository.NewJobProgressRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	chatRepo := repository.NewChatRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	approvalRepo := repository.NewWorkerApprovalRepository(db)
	adRepo := repository.NewAdvertisementRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := chat.NewHub()
	defer hub.Close()
	storage := upload.NewDiskStorage(cfg.UploadDir, cfg.StaticURL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	postHandler := post.NewHandler(post.NewService(customerPostRepo, workerPostRepo, categoryRepo))
	offerHandler := offer.NewHandler(offer.NewService(offerRepo, customerPostRepo, jobRepo))
	jobHandler := job.NewHandler(job.NewService(jobRepo))
	ratingHandler := rating.NewHandler(rating.NewService(ratingRepo, userRepo, customerPostRepo, jobRepo))
	favoriteHandler := favorite.NewHandler(favorite.NewService(favoriteRepo, customerPostRepo, workerPostRepo))
	chatHandler := chat.NewHandler(chat.NewService(chatRepo, userRepo, hub), hub)
	subscriptionHandler := subscription.NewHandler(subscription.NewService(subscriptionRepo, paymentRepo))
	approvalHandler := approval.NewHandler(approval.NewService(approvalRepo))
	uploadHandler := upload.NewHandler(upload.NewService(mediaRepo, customerPostRepo, workerPostRepo, userRepo, storage))

	adminService := admin.NewService(userRepo, adRepo, paymentRepo)
	adminHandler := admin.NewHandler(adminService, admin.NewReportService(adminService))

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.Static("/static/uploads", cfg.UploadDir)
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, 200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		postHandler.RegisterPublicRoutes(v1)
		ratingHandler.RegisterPublicRoutes(v1)
		subscriptionHandler.RegisterPublicRoutes(v1)
		uploadHandler.RegisterPublicRoutes(v1)
		adminHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			postHandler.RegisterProtectedRoutes(protected)
			offerHandler.RegisterProtectedRoutes(protected)
			jobHandler.RegisterProtectedRoutes(protected)
			ratingHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterProtectedRoutes(protected)
			chatHandler.RegisterProtectedRoutes(protected)
			subscriptionHandler.RegisterProtectedRoutes(protected)
			approvalHandler.RegisterProtectedRoutes(protected)
			uploadHandler.RegisterProtectedRoutes(protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterAdminRoutes(adminGroup)
				approvalHandler.RegisterAdminRoutes(adminGroup)
				subscriptionHandler.RegisterAdminRoutes(adminGroup)
			}
		}
	}

	log.Printf("listening on :%s env=%s", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
