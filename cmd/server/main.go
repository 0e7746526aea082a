package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	webAdapter "bizbook/internal/adapters/web"
	"bizbook/internal/app"
	"bizbook/internal/core"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	dataFile := env("DATA_FILE", "data/business_data.json")
	store := core.NewStore(dataFile, log)

	// Load once at startup so the data file exists and seed fallback is
	// visible in the logs before traffic arrives.
	ctx := context.Background()
	doc, err := store.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("path", dataFile).Msg("cannot read data file")
	}
	if err := store.Save(ctx, doc); err != nil {
		log.Fatal().Err(err).Str("path", dataFile).Msg("cannot write data file")
	}
	log.Info().Str("path", dataFile).
		Int("products", len(doc.Products)).
		Int("transactions", len(doc.Transactions)).
		Msg("document loaded")

	svc := app.NewAppService(
		core.NewProductService(store),
		core.NewTransactionService(store),
		core.NewNoteService(store),
		core.NewContactService(store),
		core.NewAnalyticsService(store, log),
		core.NewExportService(store),
	)

	port := env("SERVER_PORT", "8080")
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, log)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
