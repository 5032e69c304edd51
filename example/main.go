// Command example serves a small localized inbox page.
//
//	curl -H 'Accept-Language: de' 'localhost:8080/?name=Ann&count=3'
//	curl 'localhost:8080/pl/?name=Ola&count=22'
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/msgfmt/middlewares"
	"github.com/dmitrymomot/msgfmt/pkg/i18n"
	"github.com/dmitrymomot/msgfmt/pkg/logger"
)

//go:embed locales
var locales embed.FS

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logCfg, err := logger.ConfigFromEnv()
	if err != nil {
		return err
	}
	log := logger.New(logCfg, i18n.LanguageExtractor())

	cfg, err := i18n.ConfigFromEnv()
	if err != nil {
		return err
	}

	dir, err := fs.Sub(locales, "locales")
	if err != nil {
		return err
	}

	svc, err := i18n.New(
		i18n.WithConfig(cfg),
		i18n.WithTableDir(dir),
		i18n.WithLogger(log),
		i18n.WithMissingHandler(i18n.LogMissing(log)),
	)
	if err != nil {
		return err
	}

	inbox := func(w http.ResponseWriter, r *http.Request) {
		tr := middlewares.GetTranslator(r)
		count, _ := strconv.Atoi(r.URL.Query().Get("count"))

		lines := []struct {
			key    string
			values i18n.M
		}{
			{"title", nil},
			{"summary", i18n.M{"name": r.URL.Query().Get("name"), "count": count}},
			{"last_login", i18n.M{"at": time.Now().Add(-26 * time.Hour)}},
			{"storage", i18n.M{"used": 0.42}},
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, line := range lines {
			out, err := tr.Translate(line.key, line.values)
			if err != nil {
				log.ErrorContext(r.Context(), "translation failed", slog.String("key", line.key), slog.Any("error", err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			fmt.Fprintln(w, out)
		}
	}

	router := chi.NewRouter()
	router.With(middlewares.I18n(svc, middlewares.WithI18nContentLanguage())).Get("/", inbox)
	router.Route("/{lang}", func(r chi.Router) {
		r.Use(middlewares.I18n(svc,
			middlewares.WithI18nContentLanguage(),
			middlewares.WithI18nExtractor(middlewares.NewExtractor(
				middlewares.FromURLParam("lang"),
				middlewares.FromCookie(middlewares.DefaultLanguageCookie),
				middlewares.FromAcceptLanguage(),
			)),
		))
		r.Get("/", inbox)
	})

	return serve(log, router)
}

func serve(log *slog.Logger, handler http.Handler) error {
	addr := os.Getenv("ADDRESS")
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}
