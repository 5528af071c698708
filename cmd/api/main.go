package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/handlers/dto"
	httphandlers "github.com/eventra/eventra-backend/internal/handlers/http"
	"github.com/eventra/eventra-backend/internal/handlers/middleware"
	"github.com/eventra/eventra-backend/internal/handlers/ws"
	"github.com/eventra/eventra-backend/internal/infrastructure/auth"
	"github.com/eventra/eventra-backend/internal/infrastructure/config"
	"github.com/eventra/eventra-backend/internal/infrastructure/email"
	"github.com/eventra/eventra-backend/internal/infrastructure/i18n"
	"github.com/eventra/eventra-backend/internal/infrastructure/jobs"
	"github.com/eventra/eventra-backend/internal/infrastructure/logging"
	"github.com/eventra/eventra-backend/internal/infrastructure/payments"
	"github.com/eventra/eventra-backend/internal/infrastructure/persistence/postgres"
	"github.com/eventra/eventra-backend/internal/infrastructure/storage"
	"github.com/eventra/eventra-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	baseLogger := logging.NewBase(cfg.Logging.Level)
	logger := logging.NewSlogLogger(baseLogger)
	logger.Info("starting eventra backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	ctx := context.Background()

	// Pool pgx dedicado à fila de jobs
	pool, err := postgres.NewPgxPool(ctx, &cfg.Database)
	if err != nil {
		logger.Error("failed to create pgx pool", "error", err)
		log.Fatal(err)
	}
	defer pool.Close()

	if err := jobs.Migrate(ctx, pool); err != nil {
		logger.Error("failed to run job queue migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Armazenamento de uploads
	uploads, err := storage.NewUploadStore(cfg.Upload.Dir, cfg.Server.BaseURL+"/uploads")
	if err != nil {
		logger.Error("failed to initialize upload store", "error", err)
		log.Fatal(err)
	}

	// Email e fila assíncrona
	emailSender, err := email.NewService(cfg.Email, logger)
	if err != nil {
		logger.Error("failed to initialize email service", "error", err)
		log.Fatal(err)
	}

	workers, err := jobs.NewWorkers(emailSender, logger)
	if err != nil {
		logger.Error("failed to register job workers", "error", err)
		log.Fatal(err)
	}

	riverClient, err := jobs.NewClient(pool, workers, baseLogger)
	if err != nil {
		logger.Error("failed to create job client", "error", err)
		log.Fatal(err)
	}

	if err := riverClient.Start(ctx); err != nil {
		logger.Error("failed to start job client", "error", err)
		log.Fatal(err)
	}

	emailQueue := jobs.NewEnqueuer(riverClient)

	// Autenticação
	jwtExpiry, err := time.ParseDuration(cfg.JWT.Expiry)
	if err != nil {
		logger.Error("invalid JWT_EXPIRY", "error", err)
		log.Fatal(err)
	}

	tokenCipher, err := auth.NewTokenCipher(cfg.Cipher.Key)
	if err != nil {
		logger.Error("invalid cipher key", "error", err)
		log.Fatal(err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, jwtExpiry, cfg.JWT.Issuer)
	tokenService := auth.NewTokenService(jwtManager, tokenCipher)
	hasher := auth.NewBcryptHasher()
	generator := auth.NewRandomGenerator()

	// Pagamentos
	gateway := payments.NewGateway(cfg.Stripe, cfg.Server.FrontendURL)

	// Hub de notificações administrativas
	hub := ws.NewHub(logger)
	go hub.Run()

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	managerRepo := postgres.NewEventManagerRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	queryRepo := postgres.NewQueryRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	userService := services.NewUserService(
		userRepo, managerRepo, hasher, tokenService, generator,
		emailQueue, logger, cfg.Server.FrontendURL,
	)
	managerService := services.NewEventManagerService(
		managerRepo, userRepo, categoryRepo, uow, hasher, generator,
		emailQueue, logger, cfg.Server.FrontendURL,
	)
	categoryService := services.NewCategoryService(categoryRepo, managerRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, managerRepo, hub, logger)
	queryService := services.NewQueryService(queryRepo, emailQueue, hub, logger)
	paymentService := services.NewPaymentService(gateway, logger)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService, uploads)
	managerHandler := httphandlers.NewEventManagerHandler(managerService, uploads)
	categoryHandler := httphandlers.NewCategoryHandler(categoryService)
	reviewHandler := httphandlers.NewReviewHandler(reviewService)
	queryHandler := httphandlers.NewQueryHandler(queryService)
	paymentHandler := httphandlers.NewPaymentHandler(paymentService)
	wsHandler := ws.NewHandler(hub, cfg.CORS.Origins(), logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if origins := cfg.CORS.Origins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "token", "Accept-Language")
	router.Use(cors.New(corsConfig))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)
	authenticated := authMiddleware.Authenticate()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Documentação e arquivos enviados
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.Static("/uploads", uploads.Dir())

	// API routes
	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.Register)
			user.POST("/login", userHandler.Login)
			user.GET("/verifyEmail/:token", userHandler.VerifyEmail)
			user.POST("/forgotPassword", userHandler.ForgotPassword)
			user.POST("/resetPassword/:token", userHandler.ResetPassword)
			user.GET("/profile", authenticated, userHandler.Profile)
			user.PUT("/updateProfile", authenticated, userHandler.UpdateProfile)
		}

		manager := api.Group("/eventManager")
		{
			manager.POST("/createEventManager", managerHandler.Register)
			manager.GET("/fullDetails/:id", managerHandler.FullDetails)
			manager.PUT("/updateProfile",
				authenticated,
				middleware.RequirePermission(entities.PermissionManagerProfileWrite),
				managerHandler.UpdateProfile,
			)
			manager.GET("/list", managerHandler.List)
		}

		category := api.Group("/category")
		{
			category.GET("/list", categoryHandler.List)
			category.GET("/categoryWiseEventManagers/:categoryId", categoryHandler.EventManagersByCategory)

			category.POST("",
				authenticated,
				middleware.RequirePermission(entities.PermissionCategoryWrite),
				categoryHandler.Create,
			)
			category.PUT("/:id",
				authenticated,
				middleware.RequirePermission(entities.PermissionCategoryWrite),
				categoryHandler.Update,
			)
			category.DELETE("/:id",
				authenticated,
				middleware.RequirePermission(entities.PermissionCategoryWrite),
				categoryHandler.Delete,
			)
		}

		review := api.Group("/review")
		{
			review.POST("/addReview/:eventManagerId",
				authenticated,
				middleware.RequirePermission(entities.PermissionReviewWrite),
				reviewHandler.AddReview,
			)
			review.GET("/topFiveStarReviews", reviewHandler.TopFiveStar)
			review.GET("/byEventManager/:eventManagerId", reviewHandler.ByEventManager)
		}

		api.POST("/query/addQuery", queryHandler.AddQuery)

		stripe := api.Group("/stripe", authenticated,
			middleware.RequirePermission(entities.PermissionPaymentWrite))
		{
			stripe.POST("/create-checkout-session", paymentHandler.CreateCheckoutSession)
			stripe.POST("/confirm-payment", paymentHandler.ConfirmPayment)
		}

		admin := api.Group("/admin", authenticated)
		{
			admin.GET("/users",
				middleware.RequirePermission(entities.PermissionUserList),
				userHandler.ListUsers,
			)
			admin.DELETE("/users/:id",
				middleware.RequirePermission(entities.PermissionUserDelete),
				userHandler.DeleteUser,
			)
			admin.GET("/queries",
				middleware.RequirePermission(entities.PermissionQueryRead),
				queryHandler.List,
			)
			admin.GET("/notifications/ws",
				middleware.RequirePermission(entities.PermissionNotifySubscribe),
				wsHandler.Serve,
			)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// Parar a fila de jobs depois do servidor HTTP: requisições em voo
	// ainda podem enfileirar emails
	if err := riverClient.Stop(shutdownCtx); err != nil {
		logger.Error("job client forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
