package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"review-sentiment/config"
	"review-sentiment/database"
	"review-sentiment/handlers"
	"review-sentiment/logger"
	"review-sentiment/page"
	"review-sentiment/sentiment"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(v *viper.Viper, configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the review page and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, *configFile)
			if err != nil {
				return err
			}
			log, err := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
	cmd.Flags().Int("port", config.DefaultPort, "HTTP listen port")
	_ = v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	return cmd
}

// serve loads the artifacts, opens history and blocks until ctx is done.
// Missing or incompatible artifacts abort startup.
func serve(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	analyzer, err := sentiment.Load(cfg.Model.VectorizerPath, cfg.Model.ClassifierPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	log.Info("model loaded", map[string]interface{}{
		"vectorizer": cfg.Model.VectorizerPath,
		"classifier": cfg.Model.ClassifierPath,
		"classes":    analyzer.Classes(),
	})

	renderer, err := page.NewRenderer(cfg.Page.Title, cfg.Page.BackgroundImage, cfg.History.Enabled)
	if err != nil {
		return err
	}

	var history handlers.History
	if cfg.History.Enabled {
		db, err := database.Connect(cfg.History.DatabasePath, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.WithError(err).Warn("failed to close database", nil)
			}
		}()
		history = database.NewStore(db)
	}

	gin.SetMode(cfg.Server.Mode)
	router, err := handlers.NewRouter(handlers.New(analyzer, history, renderer, log, cfg.History.Limit), log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("🚀 Starting sentiment server", map[string]interface{}{
		"addr": srv.Addr,
		"page": fmt.Sprintf("http://localhost%s/", srv.Addr),
	})
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
