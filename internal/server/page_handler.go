// Package server provides the HTTP handlers of the word of the day page.
package server

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordoftheday/internal/assets"
	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
	"github.com/at-ishikawa/wordoftheday/internal/metrics"
)

const (
	missingAPIKeyMessage = "WORDNIK_API_KEY is not set in environment."
	upstreamMessage      = "Could not fetch word from Wordnik."

	requestIDHeader = "X-Request-ID"
)

// Resolver resolves the word for a day.
type Resolver interface {
	Resolve(ctx context.Context, today time.Time) (*dailyword.WordRecord, error)
}

// PageHandler renders the word of the day.
type PageHandler struct {
	resolver      Resolver
	indexTemplate *template.Template
	errorTemplate *template.Template
	metrics       *metrics.Metrics
	baseURL       string
	now           func() time.Time
}

type Option func(*PageHandler)

// WithMetrics records resolutions and request latencies, and serves them on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *PageHandler) {
		h.metrics = m
	}
}

// WithBaseURL sets the absolute URL of the page used in feed links, e.g. "https://words.example.com/".
func WithBaseURL(baseURL string) Option {
	return func(h *PageHandler) {
		if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		h.baseURL = baseURL
	}
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(resolver Resolver, indexTemplate, errorTemplate *template.Template, opts ...Option) *PageHandler {
	h := &PageHandler{
		resolver:      resolver,
		indexTemplate: indexTemplate,
		errorTemplate: errorTemplate,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the mux serving the page, the feeds, the static assets and the health check.
func (h *PageHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.ServeIndex)
	mux.HandleFunc("GET /feed.rss", h.ServeRSS)
	mux.HandleFunc("GET /feed.atom", h.ServeAtom)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(assets.Static())))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics.Handler())
	}
	return h.loggingMiddleware(mux)
}

// ServeIndex resolves today's word and renders it.
func (h *PageHandler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	record, err := h.resolve(r.Context())
	switch {
	case err == nil:
		h.render(w, http.StatusOK, h.indexTemplate, dailyword.NewPage(record))
	case errors.Is(err, dailyword.ErrConfiguration):
		h.render(w, http.StatusOK, h.errorTemplate, assets.ErrorPage{Message: missingAPIKeyMessage})
	default:
		h.writeResolveError(w, err)
	}
}

// resolve takes no lock: concurrent requests on a cold cache each resolve and
// save, and the last save wins. The call is detached from the request's cancellation
// so an aborted request does not leave a half finished fetch behind.
func (h *PageHandler) resolve(ctx context.Context) (*dailyword.WordRecord, error) {
	record, err := h.resolver.Resolve(context.WithoutCancel(ctx), h.now().UTC())
	h.metrics.ObserveResolution(resolutionOutcome(record, err))
	return record, err
}

func resolutionOutcome(record *dailyword.WordRecord, err error) string {
	switch {
	case errors.Is(err, dailyword.ErrConfiguration):
		return metrics.OutcomeConfiguration
	case errors.Is(err, dailyword.ErrUpstream):
		return metrics.OutcomeUpstream
	case err != nil:
		return metrics.OutcomeInternal
	case record.Source == dailyword.SourceFallback:
		return metrics.OutcomeFallback
	default:
		return metrics.OutcomePrimary
	}
}

func (h *PageHandler) writeResolveError(w http.ResponseWriter, err error) {
	if errors.Is(err, dailyword.ErrUpstream) {
		slog.Default().Error("failed to resolve the word of the day", slog.Any("error", err))
		http.Error(w, upstreamMessage, http.StatusBadGateway)
		return
	}
	slog.Default().Error("unexpected error while resolving the word of the day", slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *PageHandler) render(w http.ResponseWriter, status int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Default().Error("failed to render a template",
			slog.String("template", tmpl.Name()),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *PageHandler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		duration := time.Since(start)
		// the mux fills in r.Pattern once it has matched a route
		h.metrics.ObserveRequest(r.Method, r.Pattern, recorder.status, duration)
		slog.Default().Info("handled a request",
			slog.String("request_id", requestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", recorder.status),
			slog.Duration("duration", duration),
		)
	})
}
