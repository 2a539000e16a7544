package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hopebridge/internal/ledger"
	"hopebridge/internal/notify"
	"hopebridge/internal/server"
	"hopebridge/internal/session"
	"hopebridge/internal/view"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	if config.Environment == "development" {
		logger.SetLevel(logrus.DebugLevel)
	}

	store, err := openStore(config, logger)
	if err != nil {
		return err
	}

	notifications := notify.New(logger, time.Duration(config.NotifyTTLSec)*time.Second)
	sessions := session.New(logger, store)
	ledgerStore := ledger.New(logger, store)
	views := view.New(logger, notifications, sessions)

	srv, err := server.New(config, logger, ledgerStore, sessions, views, notifications)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
