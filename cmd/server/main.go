package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	httpadapter "corengine/internal/adapters/http"
	"corengine/internal/app"
	"corengine/internal/config"
)

func main() {
	cfg, cfgErr := config.Load()
	log := cfg.Logger()
	if cfgErr != nil {
		log.WithError(cfgErr).Fatal("invalid configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("startup failed")
	}
	defer a.Close()

	srv := httpadapter.New(a.Audits, a.Certificates, a.Auditors, a.Deficiencies, a.Cycle, log)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	hs := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- hs.ListenAndServe() }()
	log.WithFields(logrus.Fields{"addr": cfg.ListenAddr, "store": cfg.Store}).Info("listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
		shutdownCtx, stop := context.WithTimeout(context.Background(), 15*time.Second)
		defer stop()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown")
		}
		cancel()
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server error")
			a.Close()
			os.Exit(1)
		}
	}
}
