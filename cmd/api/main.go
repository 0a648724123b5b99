// Command api serves the Hobbie marketplace backend.
//
//	@title						Hobbie API
//	@version					1.0
//	@description				Accounts, authentication and hobbies of the Hobbie marketplace.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hobbie/hobbie-backend/internal/api"
	"github.com/hobbie/hobbie-backend/internal/api/handler"
	"github.com/hobbie/hobbie-backend/internal/core/policy"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
	"github.com/hobbie/hobbie-backend/internal/core/service"
	mongodb "github.com/hobbie/hobbie-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/hobbie/hobbie-backend/internal/infrastructure/db/redis"
	"github.com/hobbie/hobbie-backend/internal/infrastructure/federation"
	"github.com/hobbie/hobbie-backend/internal/infrastructure/queue"
	"github.com/hobbie/hobbie-backend/internal/infrastructure/storage"
	"github.com/hobbie/hobbie-backend/internal/pkg/config"
	"github.com/hobbie/hobbie-backend/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "hobbie-backend",
	})

	rules, err := loadPolicy(cfg.Auth.PolicyFile)
	if err != nil {
		return err
	}

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	users := mongodb.NewAuthRepository(db)
	hobbyRepo := mongodb.NewHobbyRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := hobbyRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	var files ports.FileStore
	if cfg.Storage.Enabled() {
		store, err := storage.NewS3Store(ctx, storage.Config{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
		})
		if err != nil {
			return err
		}
		cleanup := queue.NewCleanupDispatcher(store, 0, logger.Named("cleanup"))
		cleanup.Start(ctx)
		defer cleanup.Close()
		files = cleanup
	} else {
		log.Warn().Msg("S3_BUCKET not set, image endpoints disabled")
	}

	// --- Core services ---
	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(users, hasher, tokens, logger.Named("auth"))
	hobbies := service.NewHobbyService(hobbyRepo, files, logger.Named("hobbies"))

	var oauth *handler.OAuthHandler
	if cfg.OAuth.Enabled() {
		provider, err := federation.NewOIDCProvider(ctx, federation.Config{
			IssuerURL:    cfg.OAuth.IssuerURL,
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURL:  cfg.OAuth.RedirectURL,
			Scopes:       cfg.OAuth.Scopes,
		})
		if err != nil {
			return err
		}
		logins := service.NewFederatedLoginService(users, hasher, tokens, logger.Named("federation"))
		oauth = handler.NewOAuthHandler(
			provider,
			redisdb.NewStateStore(rdb),
			logins,
			cfg.HTTP.FrontendBaseURL,
			cfg.OAuth.StateTTL,
			logger.Named("oauth"),
		)
	} else {
		log.Warn().Msg("OAuth client not configured, federated login disabled")
	}

	deps := api.Deps{
		Auth:    authService,
		Tokens:  tokens,
		Policy:  rules,
		Hobbies: hobbies,
		Health: map[string]handler.Pinger{
			"mongodb": mongodb.Pinger{Client: mongoClient},
			"redis":   redisdb.Pinger{Client: rdb},
		},
		OAuth:   oauth,
		Origins: cfg.HTTP.AllowedOrigins,
		Files:   files,
		Log:     logger.Named("http"),
	}
	e := api.NewRouter(deps)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(sctx)
	})
	return g.Wait()
}

func loadPolicy(path string) (*policy.Policy, error) {
	if path == "" {
		return policy.Default(), nil
	}
	p, err := policy.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load policy %s: %w", path, err)
	}
	return p, nil
}
