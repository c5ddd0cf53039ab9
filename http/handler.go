package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sagarc03/sitemapry"
)

// Service resolves market identifiers to sitemap documents.
type Service interface {
	Get(ctx context.Context, market string) (sitemapry.Document, io.ReadSeekCloser, error)
	List(ctx context.Context) ([]sitemapry.Document, error)
}

// CORSConfig holds CORS middleware settings.
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// HandlerConfig configures the relay's HTTP surface.
type HandlerConfig struct {
	// Verifier authenticates proxy requests. A nil verifier disables
	// verification entirely (bypass mode, non-production only).
	Verifier RequestVerifier

	// SecretConfigured is reported by the status endpoint.
	SecretConfigured bool

	// CacheMaxAge, when positive, adds a Cache-Control max-age
	// directive to served documents.
	CacheMaxAge int

	CORS CORSConfig
}

// Handler provides the HTTP handlers for the sitemap relay.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and
// service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	return &Handler{
		config:  *config,
		service: service,
	}
}

// Router returns the relay's http.Handler.
//
// GET /proxy/sitemaps/{market} serves the market's document after
// signature verification. The market segment may carry a trailing
// ".xml"; both shapes resolve identically. GET /status is an
// unauthenticated diagnostic endpoint. Everything else is a plain-text
// 404.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(h.config.Verifier))
		r.Get("/proxy/sitemaps/{market}", h.handleSitemap)
	})

	r.Get("/status", h.handleStatus)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteText(w, http.StatusNotFound, "Not Found")
	})

	return r
}

func (h *Handler) handleSitemap(w http.ResponseWriter, r *http.Request) {
	market := sitemapry.NormalizeMarket(chi.URLParam(r, "market"))

	if !sitemapry.IsValidMarket(market) {
		WriteText(w, http.StatusBadRequest, "Invalid market")
		return
	}

	doc, content, err := h.service.Get(r.Context(), market)
	if err != nil {
		if errors.Is(err, sitemapry.ErrNotFound) {
			WriteText(w, http.StatusNotFound, "No sitemap for market")
		} else {
			HandleError(w, err)
		}
		return
	}
	defer func() { _ = content.Close() }()

	w.Header().Set("Content-Type", sitemapry.XMLContentType)
	if h.config.CacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.config.CacheMaxAge))
	}

	http.ServeContent(w, r, market+".xml", doc.UpdatedAt, content)
}

// StatusResponse is the diagnostic payload returned by /status.
type StatusResponse struct {
	SecretConfigured bool     `json:"secret_configured"`
	BypassEnabled    bool     `json:"bypass_enabled"`
	Markets          []string `json:"markets"`
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.List(r.Context())
	if err != nil {
		HandleError(w, err)
		return
	}

	markets := make([]string, 0, len(docs))
	for _, d := range docs {
		markets = append(markets, d.Market)
	}

	_ = WriteJSON(w, http.StatusOK, StatusResponse{
		SecretConfigured: h.config.SecretConfigured,
		BypassEnabled:    h.config.Verifier == nil,
		Markets:          markets,
	})
}
