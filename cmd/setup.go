package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/tuiermo/internal/adapters/http/api"
	"github.com/okian/tuiermo/internal/adapters/words"
	app "github.com/okian/tuiermo/internal/app"
	"github.com/okian/tuiermo/internal/config"
	"github.com/okian/tuiermo/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

const logFileMode = 0o600

// runEnv holds everything a command needs and releases it in close.
type runEnv struct {
	cfg     *config.Config
	svc     *app.Service
	srv     *http.Server
	logFile *os.File
	log     logger.Logger
}

// setup loads the config, applies flag overrides, initialises logging and
// starts the service. The returned runEnv must be closed.
func setup(cmd *cobra.Command) (*runEnv, error) {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}

	rt := &runEnv{cfg: cfg}
	if err := rt.initLogger(); err != nil {
		return nil, err
	}

	src, err := wordSource(cfg)
	if err != nil {
		rt.close()
		return nil, err
	}

	rt.svc = app.New(
		app.WithLogger(rt.log),
		app.WithWordSource(src),
		app.WithWordLength(cfg.WordLength),
		app.WithRepeatTracking(cfg.TrackRepeats),
		app.WithRepeatWindow(cfg.RepeatWindow),
	)
	if err := rt.svc.Start(ctx); err != nil {
		rt.close()
		return nil, fmt.Errorf("start game: %w", err)
	}

	if cfg.MetricsAddr != "" {
		rt.serveMetrics(ctx)
	}
	return rt, nil
}

// loadConfig layers defaults, file and env, then the flags set on cmd.
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString(flagConfig)
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	if flags.Changed(flagWord) {
		cfg.Word, _ = flags.GetString(flagWord)
		// An explicit word wins over a configured list.
		if !flags.Changed(flagWordsFile) {
			cfg.WordsFile = ""
		}
	}
	if flags.Changed(flagWordsFile) {
		cfg.WordsFile, _ = flags.GetString(flagWordsFile)
	}
	if flags.Changed(flagLength) {
		cfg.WordLength, _ = flags.GetInt(flagLength)
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel, _ = flags.GetString(flagLogLevel)
	}
	if flags.Changed(flagLogFile) {
		cfg.LogFile, _ = flags.GetString(flagLogFile)
	}
	if flags.Changed(flagRepeatWindow) {
		cfg.RepeatWindow, _ = flags.GetInt(flagRepeatWindow)
	}
	if flags.Changed(flagMetricsAddr) {
		cfg.MetricsAddr, _ = flags.GetString(flagMetricsAddr)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func wordSource(cfg *config.Config) (words.Source, error) {
	if cfg.WordsFile != "" {
		return words.FromFile(cfg.WordsFile, cfg.WordLength)
	}
	return words.Fixed(cfg.Word), nil
}

func (rt *runEnv) initLogger() error {
	level, err := logger.ParseLevel(rt.cfg.LogLevel)
	if err != nil {
		return err
	}

	var w io.Writer = io.Discard
	if rt.cfg.LogFile != "" {
		f, err := os.OpenFile(rt.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		rt.logFile = f
		w = f
	}

	if err := logger.Init(logger.WithWriter(w), logger.WithLevel(level)); err != nil {
		return err
	}
	rt.log = logger.Get()
	return nil
}

func (rt *runEnv) serveMetrics(ctx context.Context) {
	mux := http.NewServeMux()
	api.NewServer(rt.svc).Register(ctx, mux)

	rt.srv = &http.Server{
		Addr:              rt.cfg.MetricsAddr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		rt.log.Info(ctx, "starting metrics server", logger.String("addr", rt.cfg.MetricsAddr))
		if err := rt.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			rt.log.Error(ctx, "metrics server failed", logger.Error(err))
		}
	}()
}

func (rt *runEnv) close() {
	ctx := context.Background()

	if rt.svc != nil {
		rt.svc.Stop()
	}

	if rt.srv != nil {
		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := rt.srv.Shutdown(shutdownCtx); err != nil {
			rt.log.Error(ctx, "metrics server shutdown failed", logger.Error(err))
		}
	}

	if rt.log != nil {
		if err := logger.Sync(); err != nil {
			rt.log.Error(ctx, "log sync failed", logger.Error(err))
		}
	}
	if rt.logFile != nil {
		_ = rt.logFile.Close()
	}
}
