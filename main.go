package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"radio-gateway/cmd"
	"radio-gateway/internal/config"
	"radio-gateway/internal/locator"
	"radio-gateway/internal/relay"
	"radio-gateway/internal/server"
	"radio-gateway/internal/upstream"
)

func main() {
	opts, err := cmd.ParseArgs()
	if err != nil {
		os.Stderr.WriteString("[ERROR] " + err.Error() + "\n")
		cmd.PrintUsageAndExit()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		os.Stderr.WriteString("[ERROR] " + err.Error() + "\n")
		os.Exit(1)
	}
	applyOverrides(cfg, opts)

	log := newLogger(cfg)

	dir := upstream.NewClient(cfg.UpstreamBaseURL, cfg.RequestTimeout.Std(), log)
	loc := locator.New(dir, log)
	rly := relay.New(cfg.UpstreamBaseURL, log)

	api := server.NewAPI(dir, loc, rly, log)
	router := server.SetupRouter(api, log)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Str("upstream", cfg.UpstreamBaseURL).Msg("gateway listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			cancel()
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}

// applyOverrides lets CLI flags win over the config file.
func applyOverrides(cfg *config.Config, opts *cmd.Options) {
	if opts.ListenAddr != "" {
		cfg.ListenAddr = opts.ListenAddr
	}
	if opts.Upstream != "" {
		cfg.UpstreamBaseURL = opts.Upstream
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Pretty {
		cfg.PrettyLog = true
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.PrettyLog {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
