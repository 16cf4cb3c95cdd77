package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/employee-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/printview"
	serviceAuth "github.com/cmlabs-hris/employee-dashboard-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/employee-dashboard-go/internal/service/employee"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := a.cfg
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	reference, err := fixtures.LoadReferenceData(cfg.ReferenceDataFile)
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return err
	}
	renderer, err := printview.NewRenderer()
	if err != nil {
		return err
	}

	sessionService, err := serviceAuth.NewSessionService(ctx, store, cfg.Auth.Username, cfg.Auth.Password)
	if err != nil {
		return err
	}
	employeeSvc := employeeService.NewEmployeeService(ctx, store)

	authHandler := appHTTP.NewAuthHandler(JWTService, sessionService, cfg.Auth.LoginDelay)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, reference, renderer)

	router := appHTTP.NewRouter(cfg.App, JWTService, sessionService, authHandler, employeeHandler)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", fmt.Sprintf("http://localhost%s", cfg.Address()), "storage", cfg.Storage.Type)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
