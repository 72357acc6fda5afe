package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/umalmyha/customer-directory/internal/auth"
	"github.com/umalmyha/customer-directory/internal/config"
	"github.com/umalmyha/customer-directory/internal/infra"
	"github.com/umalmyha/customer-directory/internal/service"
)

// @title                      Customer Directory API
// @version                    1.0
// @description                CRUD API for customers
// @host                       localhost:3000
// @BasePath                   /
// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
func main() {
	envFile := pflag.String("env-file", ".env", "path to dotenv file with environment variables")
	port := pflag.IntP("port", "p", 0, "port to listen on, overrides HTTP_PORT")
	pflag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Fatalf("failed to load env file %s - %v", *envFile, err)
	}

	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if *port != 0 {
		cfg.HTTPCfg.Port = *port
	}

	if err := infra.Logger(cfg.LogCfg, os.Stdout); err != nil {
		logrus.Fatal(err)
	}

	customerRps, closeStorage, err := infra.CustomerStorage(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to %s storage - %v", cfg.StorageCfg.Backend, err)
	}
	logrus.WithField("backend", cfg.StorageCfg.Backend).Info("connected to storage")

	var jwtValidator *auth.JwtValidator
	if cfg.JwtCfg.Enabled() {
		jwtValidator = auth.NewJwtValidator(cfg.JwtCfg.SigningMethod, cfg.JwtCfg.PublicKey)
	}

	app, err := infra.Router(service.NewCustomerService(customerRps), jwtValidator)
	if err != nil {
		logrus.Fatalf("failed to build router - %v", err)
	}

	start(app, cfg.HTTPCfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
	defer cancel()
	closeStorage(ctx)
}

func start(app *echo.Echo, cfg config.HTTPCfg) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logrus.Infof("starting server on port %d", cfg.Port)
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Errorf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}
