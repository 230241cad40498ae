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

	"phrase-svc/app"
	"phrase-svc/app/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *app.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "frases",
	Short:         "Daily phrase service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = app.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err = app.NewLogger(cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var listCmd = &cobra.Command{
	Use:   "list [day]",
	Short: "Print the phrases of a day (today by default) with their indices",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app.App) error {
			day := ""
			if len(args) == 1 {
				day = args[0]
			}
			dayKey, phrases := a.PhraseService.List(cmd.Context(), day)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", dayKey, len(phrases))
			for i, phrase := range phrases {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i, phrase)
			}
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import phrases from a YAML seed file, skipping duplicates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := services.LoadSeedFile(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd.Context(), func(a *app.App) error {
			result, err := a.PhraseService.Import(cmd.Context(), seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d, skipped %d\n", result.Added, result.Skipped)
			return nil
		})
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin token for the mutating endpoints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := services.NewJWTService(cfg.AdminJWTSecret, cfg.AdminJWTTTL).GenerateToken()
		if err != nil {
			if errors.Is(err, services.ErrAuthDisabled) {
				return fmt.Errorf("ADMIN_JWT_SECRET must be set to mint tokens")
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, listCmd, importCmd, tokenCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withApp(ctx context.Context, fn func(a *app.App) error) error {
	cfg.SeedPath = ""
	a, err := app.Bootstrap(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func runServe(cmd *cobra.Command, args []string) error {
	gin.SetMode(gin.ReleaseMode)

	a, err := app.Bootstrap(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to bootstrap application: %w", err)
	}
	defer a.Close()

	server := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        a.Router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("url", "http://localhost:"+cfg.ServerPort),
			zap.String("store", cfg.StoreDriver),
			zap.String("timezone", cfg.Timezone),
			zap.Bool("admin_auth", a.JWTService.Enabled()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-sigChan:
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
		return err
	}
	return nil
}
