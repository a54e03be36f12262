package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"getmovies/actor"
	"getmovies/auth"
	"getmovies/dynamodb"
	"getmovies/httpserver"
	"getmovies/movie"
	"getmovies/pkg/config"
	"getmovies/pkg/jwt"
	"getmovies/pkg/sentry"
	"getmovies/postgres"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := dynamodb.NewClient(ctx, dynamodb.Options{
		Region:       cfg.DocumentStore.Region,
		Endpoint:     cfg.DocumentStore.Endpoint,
		AccessKey:    cfg.DocumentStore.AccessKey,
		SecretKey:    cfg.DocumentStore.SecretKey,
		SessionToken: cfg.DocumentStore.SessionToken,
	})
	if err != nil {
		slog.Error("Cannot open document store client", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("Cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	tokens := jwt.NewSessionProvider(cfg.Auth.JWTSecret, auth.SessionTTL)

	server := httpserver.Default(cfg)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.MovieService = movie.NewUsecase(dynamodb.NewMovieRepository(store, cfg.DocumentStore.MoviesTable))
	server.ActorService = actor.NewUsecase(dynamodb.NewActorRepository(store, cfg.DocumentStore.ActorsTable))
	server.AuthService = auth.NewUsecase(postgres.NewAccountRepository(db), tokens)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()
	slog.Info("server started!", "addr", server.Addr)

	select {
	case err := <-errChan:
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
