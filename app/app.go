// File: app/app.go
package app

import (
	"context"
	"go-social-api/config"
	"go-social-api/db"
	"go-social-api/handler"
	"go-social-api/logger"
	"go-social-api/repository"
	"go-social-api/router"
	"go-social-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Dependencies are the stores and adapters the HTTP layer is built on.
type Dependencies struct {
	Users    repository.IUserRepository
	Posts    repository.IPostRepository
	Comments repository.ICommentRepository
	Limiter  service.LoginLimiter
	Files    afero.Fs
	Ping     handler.Pinger
}

// NewHandler wires services and handlers on top of deps and returns the
// complete router.
func NewHandler(cfg *config.Config, deps Dependencies) http.Handler {
	tokens := service.NewTokenCodec(cfg.JWT)
	authService := service.NewAuthService(deps.Users, tokens, deps.Limiter, cfg.Auth.BcryptCost)
	userService := service.NewUserService(deps.Users)
	postService := service.NewPostService(deps.Posts, deps.Comments)
	commentService := service.NewCommentService(deps.Comments, deps.Posts)
	fileService := service.NewFileService(deps.Files, cfg.Upload.Dir, cfg.Server.BaseURL, cfg.Upload.MaxSize)

	return router.NewRouter(router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Users:         handler.NewUserHandler(userService),
		Posts:         handler.NewPostHandler(postService),
		Comments:      handler.NewCommentHandler(commentService),
		Files:         handler.NewFileHandler(fileService, cfg.Upload.MaxSize),
		Health:        handler.NewHealthHandler(deps.Ping),
		Authenticator: authService,
		Public:        fileService.FileSystem(),
	})
}

func Run() {
	logger.Init()
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
	logger.Log.Info("Configuration loaded successfully")
	if cfg.JWT.SecretKey == "" {
		logger.Log.Warn("JWT secret key is not set, token operations will fail")
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Log.WithError(err).Error("Failed to disconnect from the database")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(client, cfg.Database.Name); err != nil {
			logger.Log.Fatalf("Error running migrations: %v", err)
		}
	}
	database := client.Database(cfg.Database.Name)

	var limiter service.LoginLimiter = service.NoopLoginLimiter{}
	if cfg.Redis.Enabled {
		rdb, err := db.ConnectRedis(ctx, cfg)
		if err != nil {
			logger.Log.WithError(err).Warn("Redis unavailable, login throttling disabled")
		} else {
			defer rdb.Close()
			limiter = service.NewRedisLoginLimiter(rdb, cfg.Auth.MaxLoginAttempts, cfg.Auth.LoginAttemptWindow)
		}
	}

	r := NewHandler(cfg, Dependencies{
		Users:    repository.NewUserRepository(database),
		Posts:    repository.NewPostRepository(database),
		Comments: repository.NewCommentRepository(database),
		Limiter:  limiter,
		Files:    afero.NewOsFs(),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
	})

	// --- Start the Server with Graceful Shutdown ---
	port := cfg.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
		return
	}

	logger.Log.Info("Server exited properly")
}
