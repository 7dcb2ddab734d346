package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kulaginds/avpix/internal/config"
	"github.com/kulaginds/avpix/internal/handler"
)

const (
	appName    = "pixserver"
	appVersion = "v1.0.0"
)

var (
	hostFlag     string
	portFlag     string
	logLevelFlag string
	widthFlag    int
	heightFlag   int
)

var rootCmd = &cobra.Command{
	Use:     appName,
	Short:   "Planar frame preview server",
	Long:    "Streams synthetic planar frames over websockets, run through the pixel format negotiation and transform suite.",
	Version: appVersion,
	RunE:    run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&hostFlag, "host", "", "server listen host (default 0.0.0.0)")
	flags.StringVar(&portFlag, "port", "", "server listen port (default 8080)")
	flags.StringVar(&logLevelFlag, "log-level", "", "log level (debug, info, warn, error)")
	flags.IntVar(&widthFlag, "width", 0, "preview frame width (default 640)")
	flags.IntVar(&heightFlag, "height", 0, "preview frame height (default 480)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := config.LoadOptions{
		Host:     strings.TrimSpace(hostFlag),
		Port:     strings.TrimSpace(portFlag),
		LogLevel: strings.TrimSpace(logLevelFlag),
		Width:    widthFlag,
		Height:   heightFlag,
	}

	cfg, err := config.LoadWithOverrides(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := setupLogging(cfg.Logging)

	preview, err := handler.New(cfg, log)
	if err != nil {
		return fmt.Errorf("create preview handler: %w", err)
	}

	server := createServer(cfg, preview, log)
	log.WithFields(logrus.Fields{
		"addr":   server.Addr,
		"format": cfg.Preview.Format,
		"size":   fmt.Sprintf("%dx%d", cfg.Preview.Width, cfg.Preview.Height),
	}).Info("starting server")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func createServer(cfg *config.Config, preview *handler.Preview, log *logrus.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/preview", preview.Connect)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      requestLoggingMiddleware(mux, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}

func setupLogging(cfg config.LoggingConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}

func requestLoggingMiddleware(next http.Handler, log *logrus.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(logrus.Fields{
			"remote":   r.RemoteAddr,
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("request")
	})
}
