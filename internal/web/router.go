package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/sutja/internal/db"
	"github.com/jusunglee/sutja/internal/health"
	"github.com/jusunglee/sutja/internal/keyword"
	"github.com/jusunglee/sutja/internal/story"
	"github.com/jusunglee/sutja/internal/web/handlers"
	"github.com/jusunglee/sutja/internal/web/middleware"
)

type Router struct {
	dict    *keyword.Live
	repo    db.Repository
	teller  *story.Teller
	log     *slog.Logger
	apiKey  string
	origins []string
}

// NewRouter wires the HTTP API. repo and teller are optional: without a
// repo keyword edits are refused, without a teller stories are.
func NewRouter(dict *keyword.Live, repo db.Repository, teller *story.Teller, log *slog.Logger, apiKey string, origins []string) *Router {
	return &Router{
		dict:    dict,
		repo:    repo,
		teller:  teller,
		log:     log,
		apiKey:  apiKey,
		origins: origins,
	}
}

// Handler builds the mux. ctx bounds the rate limiter's background cleanup.
func (r *Router) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()

	convertHandler := handlers.NewConvertHandler(r.dict, r.log)
	keywordHandler := handlers.NewKeywordHandler(r.dict, r.repo, r.log)
	storyHandler := handlers.NewStoryHandler(r.teller, r.dict, r.log)

	rateLimiter := middleware.NewRateLimiter(ctx, 120, time.Minute)
	storyLimiter := middleware.NewRateLimiter(ctx, 10, time.Minute)

	public := func(h http.HandlerFunc, extra ...middleware.Middleware) http.Handler {
		mws := []middleware.Middleware{
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
		}
		return middleware.Chain(h, append(mws, extra...)...)
	}

	mux.Handle("POST /api/v1/encode", public(convertHandler.Encode, middleware.RateLimit(rateLimiter)))
	mux.Handle("POST /api/v1/derive", public(convertHandler.Derive, middleware.RateLimit(rateLimiter)))
	mux.Handle("POST /api/v1/chunks", public(convertHandler.Chunks, middleware.RateLimit(rateLimiter)))
	mux.Handle("POST /api/v1/credentials", public(convertHandler.Credential, middleware.RateLimit(rateLimiter)))

	mux.Handle("GET /api/v1/keywords/{code}",
		public(keywordHandler.Get, middleware.CacheControl("public, s-maxage=60, max-age=0")),
	)
	mux.Handle("PUT /api/v1/keywords/{code}",
		public(keywordHandler.Put, middleware.APIKeyAuth(r.apiKey)),
	)

	mux.Handle("POST /api/v1/stories", public(storyHandler.Create, middleware.RateLimit(storyLimiter)))

	var pinger health.Pinger
	if r.repo != nil {
		pinger = r.repo
	}
	mux.Handle("GET /health", health.Handler(pinger, r.dict.Len))

	return middleware.CORS(r.origins)(mux)
}
