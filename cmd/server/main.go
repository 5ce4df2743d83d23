// Command server exposes the kakari analyzer as a JSON REST API.
//
// Endpoints:
//
//	POST /api/analyze            body: {"text":"...","save":false}
//	POST /api/analyze/morphemes  body: {"morphemes":[...]}
//	GET  /api/analyses?limit=<n>&q=<substring>
//	GET  /api/analyses/{id}
//	GET  /live
//	GET  /ready
//
// The IPADIC dictionary loads in the background; /ready reports 503 and
// text analysis is refused until it is available.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kakari-nlp/kakari"
	"github.com/kakari-nlp/kakari/internal/config"
	"github.com/kakari-nlp/kakari/internal/logging"
	"github.com/kakari-nlp/kakari/internal/server"
	"github.com/kakari-nlp/kakari/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var srv *server.Server
	if cfg.Store.Enabled {
		s, err := store.NewSQLiteStore(cfg.Store.DBPath())
		if err != nil {
			return err
		}
		defer s.Close()
		logger.Info("history store opened", slog.String("path", cfg.Store.DBPath()))
		srv = server.New(cfg, logger, s)
	} else {
		srv = server.New(cfg, logger, nil)
	}

	go func() {
		start := time.Now()
		logger.Info("loading ipa dictionary")
		tok, err := kakari.NewIPATokenizer()
		if err != nil {
			logger.Error("tokenizer unavailable", slog.Any("error", err))
			return
		}
		srv.SetAnalyzer(kakari.New(tok))
		logger.Info("tokenizer ready", slog.Duration("took", time.Since(start)))
	}()

	httpSrv := srv.HTTPServer()
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
