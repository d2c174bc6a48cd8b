package main

//
//  @title           quotepulse API
//  @version         1.0
//  @description     Averaged crypto/fiat quotes across the exchanges listed by CriptoYa.
//  @termsOfService  https://github.com/guttosm/quotepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/quotepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        quotes
//  @tag.description Averaged buy, sell and parallel prices
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/quotepulse/config"
	_ "github.com/guttosm/quotepulse/docs" // swagger docs
	"github.com/guttosm/quotepulse/internal/app"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/quote"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown waits for SIGINT or SIGTERM, shuts the server down and
// then runs cleanup.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runQuote averages quotes once per volume in volumesCSV and writes the text
// report for each to out. It returns the process exit code: 0 when every
// volume produced a summary, 1 otherwise.
func runQuote(ctx context.Context, cfg config.Config, asset, fiat, volumesCSV string, out io.Writer) int {
	volumes, err := quote.ParseVolumes(volumesCSV)
	if err != nil {
		logger.L().Error().Err(err).Str("volume", volumesCSV).Msg("invalid volume")
		return 1
	}

	client, err := app.InitCriptoYa(cfg)
	if err != nil {
		logger.L().Error().Err(err).Msg("upstream init error")
		return 1
	}
	defer client.CloseIdleConnections()

	avg := app.NewAverager(cfg, client)

	if len(volumes) == 1 {
		summary := avg.AverageQuotes(ctx, asset, fiat, volumes[0])
		if summary == nil {
			return 1
		}
		_, _ = io.WriteString(out, quote.Report(summary))
		return 0
	}

	code := 0
	for i, r := range avg.AverageMany(ctx, asset, fiat, volumes) {
		if i > 0 {
			_, _ = io.WriteString(out, "\n")
		}
		if r.Err != nil {
			logger.L().Error().Err(r.Err).Str("volume", quote.FormatVolume(r.Volume)).Msg("failed to average quotes")
			_, _ = fmt.Fprintf(out, "Volume %s: no result.\n", quote.FormatVolume(r.Volume))
			code = 1
			continue
		}
		_, _ = io.WriteString(out, quote.Report(r.Summary))
	}
	return code
}

// main is the entry point of the quotepulse application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API serving averaged quotes.
//   - quote: Averages once and prints a report to stdout.
//
// Flags:
//   - --mode:   Execution mode ("api" or "quote"). Default: "api".
//   - --asset:  Base asset for quote mode. Default: DEFAULT_ASSET.
//   - --fiat:   Fiat currency for quote mode. Default: DEFAULT_FIAT.
//   - --volume: Volume, or comma separated volumes, for quote mode. Default: DEFAULT_VOLUME.
//   - --port:   Port for the API server. Default: SERVER_PORT.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	cfg := config.AppConfig

	mode := flag.String("mode", "api", "Mode: api or quote")
	asset := flag.String("asset", cfg.Quote.DefaultAsset, "Base asset for quote mode")
	fiat := flag.String("fiat", cfg.Quote.DefaultFiat, "Fiat currency for quote mode")
	volume := flag.String("volume", quote.FormatVolume(cfg.Quote.DefaultVolume), "Volume (or comma separated volumes) for quote mode")
	port := flag.String("port", cfg.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "quote":
		// stdout carries only the report
		logger.InitWriter(os.Stderr)

		qctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		code := runQuote(qctx, cfg, *asset, *fiat, *volume, os.Stdout)
		stop()
		os.Exit(code)

	case "api":
		logger.Init()
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.Init()
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
