// Package main is the entry point for the fun fact relay. The default
// command serves the API and frontend; "fact" fetches a single fact from
// the command line using the same configuration.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"funfact/internal/ai"
	"funfact/internal/config"
	"funfact/internal/funfact"
	"funfact/internal/handlers"
	"funfact/internal/router"
	"funfact/web"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:  "funfact",
		Usage: "Relay short fun facts from Gemini and serve the frontend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Writer:    out,
		ErrWriter: errOut,
		Action:    serve,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "HTTP server port (overrides APP_PORT)",
					},
				},
				Action: serve,
			},
			{
				Name:  "fact",
				Usage: "Fetch one fun fact and print it as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "theme",
						Aliases: []string{"t"},
						Usage:   "Theme of the fact (default \"random\")",
					},
				},
				Action: fact,
			},
		},
	}
}

// loadConfig reads configuration and installs the global logger writing
// to logOut.
func loadConfig(c *cli.Context, logOut io.Writer) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	setupLogger(cfg, logOut)
	return cfg, nil
}

// setupLogger outputs text in development and JSON everywhere else.
func setupLogger(cfg *config.Config, w io.Writer) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler
	if cfg.IsDev() {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

func newFactService(cfg *config.Config) (*funfact.Service, error) {
	gemini := ai.NewGemini(ai.ProviderConfig{
		APIKey:     cfg.GeminiKey,
		Model:      cfg.GeminiModel,
		BaseURL:    cfg.GeminiBaseURL,
		APIVersion: cfg.GeminiAPIVersion,
		Timeout:    cfg.UpstreamTimeout,
	})
	return funfact.NewService(gemini)
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c, os.Stdout)
	if err != nil {
		return err
	}
	if port := c.String("port"); port != "" {
		cfg.Port = port
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"model", cfg.GeminiModel,
		"origins", cfg.AllowedOrigins,
	)

	svc, err := newFactService(cfg)
	if err != nil {
		return err
	}

	assets, err := web.Assets(cfg.StaticDir)
	if err != nil {
		return err
	}

	r := router.New(handlers.NewFunFact(svc), assets, cfg.AllowedOrigins)

	// No WriteTimeout: a fact request waits on the upstream for as long as
	// the upstream client allows.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info(startupMessage(cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// fact logs to stderr so stdout carries only the JSON result.
func fact(c *cli.Context) error {
	cfg, err := loadConfig(c, c.App.ErrWriter)
	if err != nil {
		return err
	}

	svc, err := newFactService(cfg)
	if err != nil {
		return err
	}

	f, err := svc.Fetch(c.Context, c.String("theme"))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

func startupMessage(port string) string {
	return "server running at http://localhost:" + port
}
