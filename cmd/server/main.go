package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Simplici0/printcost/internal/ai"
	"github.com/Simplici0/printcost/internal/config"
	"github.com/Simplici0/printcost/internal/db"
	"github.com/Simplici0/printcost/internal/estimate"
	"github.com/Simplici0/printcost/internal/export"
	"github.com/Simplici0/printcost/internal/logger"
	"github.com/Simplici0/printcost/internal/metrics"
	"github.com/Simplici0/printcost/internal/migrations"
	"github.com/Simplici0/printcost/internal/pricing"
	"github.com/Simplici0/printcost/internal/quotes"
	"github.com/Simplici0/printcost/internal/seed"
)

const (
	pruneInterval   = 10 * time.Minute
	shutdownTimeout = 5 * time.Second
)

// quoteReader is the read side of the quotes archive.
type quoteReader interface {
	List(ctx context.Context, query string) ([]quotes.Summary, error)
	Get(ctx context.Context, id int64) (quotes.Quote, error)
}

type server struct {
	sessions     *estimate.Registry
	cookies      *sessionSigner
	quotes       quoteReader
	metrics      *metrics.Metrics
	log          *slog.Logger
	templatesDir string
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	aiClient := ai.New(ai.Config{
		BaseURL:           cfg.AI.BaseURL,
		APIKey:            cfg.AI.APIKey,
		Model:             cfg.AI.Model,
		Timeout:           cfg.AI.Timeout,
		RequestsPerMinute: cfg.AI.RequestsPerMinute,
	}, ai.WithRecorder(m))

	deps := estimate.Deps{
		Generator: aiClient,
		Advisor:   aiClient,
		Archive:   quotes.Noop{},
		Logger:    log,
	}

	srv := &server{
		cookies:      newSessionSigner(cfg.SessionSecret),
		metrics:      m,
		log:          log,
		templatesDir: cfg.TemplatesDir,
	}

	if cfg.QuotesDBPath != "" {
		database, err := db.Open(cfg.QuotesDBPath)
		if err != nil {
			return err
		}
		defer database.Close()

		applied, err := migrations.UpContext(ctx, database, cfg.MigrationsDir)
		if err != nil {
			return err
		}
		log.Info("quotes archive ready", "path", cfg.QuotesDBPath, "migrations_applied", applied)

		if cfg.IsDev() {
			stats, err := seed.Run(ctx, database)
			if err != nil {
				return err
			}
			log.Debug("seed completed", "inserts", stats.Inserts)
		}

		store := quotes.NewSQLiteStore(database)
		deps.Archive = store
		srv.quotes = store
	}

	srv.sessions = estimate.NewRegistry(deps)
	go srv.sessions.PruneEvery(ctx, pruneInterval, cfg.SessionMaxIdle, m.SetSessions)

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(metricsHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", httpSrv.Addr, "env", cfg.Env)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("graceful shutdown complete")
	return nil
}

func (s *server) routes(metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)
		r.Get("/", s.handleHome)
		r.Post("/estimate", s.handleEstimateUpdate)
		r.Post("/estimate/reset", s.handleEstimateReset)
		r.Post("/estimate/generate", s.handleEstimateGenerate)
		r.Post("/estimate/optimize", s.handleEstimateOptimize)
		r.Post("/estimate/save", s.handleEstimateSave)
		r.Get("/estimate/export.xlsx", s.handleEstimateExport)
		r.Get("/quotes", s.handleQuotesList)
		r.Get("/quotes/{id}/text", s.handleQuoteText)
		r.Post("/quotes/{id}/load", s.handleQuoteLoad)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	view := sess.View()

	s.renderTemplate(w, "home.html", homeViewData{
		Fields:       formFields(view.Input),
		Input:        view.Input,
		Breakdown:    breakdown(view.Costs, view.Input.Currency),
		Currencies:   pricing.Currencies,
		UrgencyTiers: pricing.UrgencyTiers,
		Generating:   view.Generating,
		Optimizing:   view.Optimizing,
		Suggestions:  view.Suggestions,
		Notices:      sess.DrainNotices(),
		Archived:     s.quotes != nil,
	})
}

func (s *server) handleEstimateUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	values := make(map[string]string, len(r.PostForm))
	for name := range r.PostForm {
		values[name] = r.PostForm.Get(name)
	}

	sess := sessionFrom(r)
	if sess.Apply(values) > 0 {
		s.metrics.ObserveRecalculation()
	}
	s.respond(w, r, sess, http.StatusOK, 0)
}

func (s *server) handleEstimateReset(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Reset()
	s.metrics.ObserveRecalculation()
	s.respond(w, r, sess, http.StatusOK, 0)
}

func (s *server) handleEstimateGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sess := sessionFrom(r)
	err := sess.Generate(r.Context(), r.FormValue("description"))
	s.respond(w, r, sess, statusFor(err), 0)
}

func (s *server) handleEstimateOptimize(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	err := sess.SuggestOptimizations(r.Context())
	s.respond(w, r, sess, statusFor(err), 0)
}

func (s *server) handleEstimateSave(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	id, err := sess.Save(r.Context())
	if err != nil {
		s.metrics.ObserveSave("error")
		s.respond(w, r, sess, http.StatusInternalServerError, 0)
		return
	}
	s.metrics.ObserveSave("ok")
	s.respond(w, r, sess, http.StatusOK, id)
}

func (s *server) handleEstimateExport(w http.ResponseWriter, r *http.Request) {
	view := sessionFrom(r).View()

	data, err := export.BreakdownXLSX(view.Input, view.Costs)
	if err != nil {
		s.log.Error("export estimate failed", "err", err)
		http.Error(w, "failed to export estimate", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="estimacion.xlsx"`)
	_, _ = w.Write(data)
}

// statusFor maps a session error to the status of a JSON reply. The user
// facing explanation travels in the notices.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, estimate.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, estimate.ErrEmptyDescription):
		return http.StatusUnprocessableEntity
	case errors.Is(err, estimate.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// respond answers JSON clients with a snapshot of the session and sends
// browsers back to the form.
func (s *server) respond(w http.ResponseWriter, r *http.Request, sess *estimate.Session, status int, quoteID int64) {
	if !wantsJSON(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	snap := newSnapshot(sess.View(), sess.DrainNotices())
	snap.QuoteID = quoteID
	writeJSON(w, status, snap)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("encode json reply failed", "err", err)
		http.Error(w, "failed to encode reply", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

var templateFuncs = template.FuncMap{
	"money": pricing.FormatMoney,
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, data any) {
	templates, err := template.New("layout.html").Funcs(templateFuncs).ParseFiles(
		filepath.Join(s.templatesDir, "layout.html"),
		filepath.Join(s.templatesDir, page),
	)
	if err != nil {
		s.log.Error("parse template failed", "page", page, "err", err)
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.log.Error("render template failed", "page", page, "err", err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}
