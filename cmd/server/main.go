package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buddystream/internal/config"
	"buddystream/internal/database"
	"buddystream/internal/handler"
	"buddystream/internal/logger"
	"buddystream/internal/password"
	"buddystream/internal/repository"
	"buddystream/internal/service"
	transport "buddystream/internal/transport/http"
	"buddystream/internal/transport/http/middleware"
)

// sessionPurgeInterval is how often expired session rows are deleted.
const sessionPurgeInterval = time.Hour

func main() {
	reset := flag.Bool("reset", false, "delete the database file and exit")
	flag.Parse()

	if err := run(*reset); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run(reset bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if reset {
		if err := os.Remove(cfg.DatabasePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("reset database: %w", err)
		}
		log.Printf("Removed %s", cfg.DatabasePath)
		return nil
	}

	logr := logger.New(cfg.LogLevel)
	defer logr.Sync() //nolint:errcheck

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	friendRepo := repository.NewFriendRepository(db)

	hasher := password.NewHasher(password.DefaultParams())

	authService := service.NewAuthService(userRepo, hasher, logr)
	sessionService := service.NewSessionService(sessionRepo, userRepo, cfg, logr)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	friendService := service.NewFriendService(friendRepo, userRepo)
	profileService := service.NewProfileService(userRepo)

	loginLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RatePerMin: cfg.LoginRatePerMin,
		Burst:      cfg.LoginBurst,
	})
	defer loginLimiter.Stop()

	router := transport.NewRouter(transport.RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authService, sessionService, logr),
		StreamHandler:  handler.NewStreamHandler(postService, logr),
		CommentHandler: handler.NewCommentHandler(commentService, logr),
		FriendHandler:  handler.NewFriendHandler(friendService, logr),
		ProfileHandler: handler.NewProfileHandler(profileService, logr),
		Sessions:       sessionService,
		LoginLimiter:   loginLimiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(sessionPurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sessionService.PurgeExpired(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()

	srv := transport.NewServer(":"+cfg.ServerPort, router, logr)
	return srv.Run(ctx)
}
