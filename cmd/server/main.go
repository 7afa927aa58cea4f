package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/challenge-api/internal/config"
	"github.com/lumenlearn/challenge-api/internal/database"
	"github.com/lumenlearn/challenge-api/internal/datastore"
	"github.com/lumenlearn/challenge-api/internal/filemanager"
	"github.com/lumenlearn/challenge-api/internal/handlers"
	"github.com/lumenlearn/challenge-api/internal/logging"
	"github.com/lumenlearn/challenge-api/internal/middleware"
	"github.com/lumenlearn/challenge-api/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New("challenge-api", cfg.LogLevel)

	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Disconnect(context.Background(), db); err != nil {
			logger.Errorf("Failed to disconnect from database: %v", err)
		}
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatalf("Failed to ensure indexes: %v", err)
	}

	cascade := datastore.CascadeBestEffort
	if cfg.CascadeFailFast {
		cascade = datastore.CascadeFailFast
	}

	store := datastore.New(
		repository.NewMongoUserRepository(db),
		repository.NewMongoChallengeRepository(db),
		repository.NewMongoStepRepository(db),
		logger,
		datastore.WithCascadePolicy(cascade),
	)

	files, err := filemanager.New(cfg.DataRoot, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize file manager: %v", err)
	}

	userHandler := handlers.NewUserHandler(store, logger)
	miscHandler := handlers.NewMiscHandler(store, logger)
	challengeHandler := handlers.NewChallengeHandler(store)
	stepHandler := handlers.NewStepHandler(store)
	adminHandler := handlers.NewAdminHandler(store, files, logger)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery(logger))

	// The browser frontend lives on another origin; preflights must pass the
	// Authorization header through.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsCfg.OptionsResponseStatusCode = http.StatusOK
	r.Use(cors.New(corsCfg))

	// Public endpoints
	r.GET("/", miscHandler.Home)
	r.POST("/benchmark", miscHandler.Benchmark)
	r.POST("/recursiveBenchmark", miscHandler.RecursiveBenchmark)
	r.GET("/checkAuth", miscHandler.CheckAuth)
	r.POST("/user/login", userHandler.Login)
	r.POST("/user/signup", userHandler.Signup)
	r.POST("/util/checkSyntax", miscHandler.CheckSyntax)

	// Login-required endpoints
	auth := r.Group("/", middleware.RequireLogin(store))
	{
		auth.GET("/util/whoami", miscHandler.Whoami)
		auth.POST("/challenge", challengeHandler.Get)
		auth.POST("/challenge/add", challengeHandler.Add)
		auth.GET("/challenge/list", challengeHandler.List)
		auth.POST("/challenge/progress", challengeHandler.Progress)
		auth.POST("/step/list", stepHandler.List)
		auth.POST("/step/resource/list", stepHandler.ResourceList)
		auth.POST("/step/resource", stepHandler.ResourceGet)
	}

	// Admin endpoints
	admin := r.Group("/", middleware.RequireAdmin(cfg.AdminAPIKeys))
	{
		admin.POST("/user/getApiKey", userHandler.GetAPIKey)
		admin.POST("/admin/challenge", adminHandler.ChallengeGet)
		admin.GET("/admin/challenge/list", adminHandler.ChallengeList)
		admin.POST("/admin/challenge/create", adminHandler.ChallengeCreate)
		admin.POST("/admin/challenge/rename", adminHandler.ChallengeRename)
		admin.POST("/admin/challenge/delete", adminHandler.ChallengeDelete)
		admin.POST("/admin/step", adminHandler.StepGet)
		admin.POST("/admin/step/list", adminHandler.StepList)
		admin.POST("/admin/step/create", adminHandler.StepCreate)
		admin.POST("/admin/step/delete", adminHandler.StepDelete)
		admin.POST("/admin/step/reorder", adminHandler.StepReorder)
		admin.POST("/admin/step/resource/add", adminHandler.ResourceAdd)
		admin.POST("/admin/step/resource/delete", adminHandler.ResourceDelete)
	}

	logger.Infof("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
