package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var settings = viper.New()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "support-assistant",
		Short: "Keyword-driven support assistant for the Tomati Market chat widget",
		// Running without a subcommand starts the server
		RunE: runServe,
	}

	root.PersistentFlags().String("bank-file", "", "YAML or JSON bank file (or set BANK_FILE), built-in bank when empty")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error (or set LOG_LEVEL)")
	root.PersistentFlags().String("log-format", "", "console or json (or set LOG_FORMAT)")
	_ = settings.BindPFlag("bank_file", root.PersistentFlags().Lookup("bank-file"))
	_ = settings.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = settings.BindPFlag("log_format", root.PersistentFlags().Lookup("log-format"))

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
	serve.Flags().String("port", "", "listen port (or set PORT)")
	_ = settings.BindPFlag("port", serve.Flags().Lookup("port"))

	root.AddCommand(serve, newAskCommand())
	return root
}

// newServer wires middleware and routes around the bank store
func newServer(store *BankStore, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	NewHandlers(store, logger).Register(e)
	return e
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(settings)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	store, err := NewBankStore(cfg.BankFile, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize bank store")
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start file watcher in background
	go store.WatchFiles(ctx)

	e := newServer(store, logger)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
	}()

	logger.Info().
		Str("port", cfg.Port).
		Str("bank_source", store.Source()).
		Msg("support assistant started")

	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server stopped")
		return err
	}
	return nil
}

func newAskCommand() *cobra.Command {
	var (
		seller   bool
		loggedIn bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Answer one message and print the payload",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(settings)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

			store, err := NewBankStore(cfg.BankFile, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			var uc UserContext
			if seller || loggedIn {
				uc = UserContext{"is_seller": seller, "is_logged_in": loggedIn}
			}

			payload := store.Current().Respond(strings.Join(args, " "), uc)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}
			printPayload(cmd.OutOrStdout(), payload)
			return nil
		},
	}

	cmd.Flags().BoolVar(&seller, "seller", false, "answer as if the user is a seller")
	cmd.Flags().BoolVar(&loggedIn, "logged-in", false, "answer as if the user is logged in")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON payload")
	return cmd
}

func printPayload(w io.Writer, payload ResponsePayload) {
	label := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "%s %s %s\n", label(payload.Intent), dim(fmt.Sprintf("(%.1f)", payload.Confidence)), dim(payload.Timestamp))
	fmt.Fprintln(w, payload.Response)
	for _, s := range payload.Suggestions {
		fmt.Fprintf(w, "  %s %s\n", color.GreenString("›"), s)
	}
}
