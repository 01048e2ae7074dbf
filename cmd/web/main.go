package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/sutja/internal/anthropic"
	"github.com/jusunglee/sutja/internal/db"
	"github.com/jusunglee/sutja/internal/db/postgres"
	"github.com/jusunglee/sutja/internal/db/sqlite"
	"github.com/jusunglee/sutja/internal/google"
	"github.com/jusunglee/sutja/internal/keyword"
	"github.com/jusunglee/sutja/internal/llm"
	"github.com/jusunglee/sutja/internal/logger"
	"github.com/jusunglee/sutja/internal/metrics"
	"github.com/jusunglee/sutja/internal/story"
	"github.com/jusunglee/sutja/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("sutja-web")

	var (
		port            = fs.Int64Long("port", 3000, "HTTP server port")
		databaseURL     = fs.StringLong("database-url", "", "postgres:// or sqlite:// URL for the keyword store (optional)")
		apiKey          = fs.StringLong("api-key", "", "API key required to edit keywords")
		llmProvider     = fs.StringEnumLong("llm-provider", "LLM provider for mnemonic stories", "none", "anthropic", "google")
		llmModel        = fs.StringLong("llm-model", "", "LLM model name")
		anthropicAPIKey = fs.StringLong("anthropic-api-key", "", "Anthropic API key")
		googleAPIKey    = fs.StringLong("google-api-key", "", "Google API key")
		allowedOrigins  = fs.StringLong("allowed-origins", "", "Comma-separated list of allowed CORS origins")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	teller, err := newTeller(ctx, *llmProvider, *llmModel, *anthropicAPIKey, *googleAPIKey)
	if err != nil {
		return err
	}

	dict, err := keyword.Default()
	if err != nil {
		return fmt.Errorf("loading keyword dataset: %w", err)
	}
	live := keyword.NewLive(dict)

	var repo db.Repository
	var pg *postgres.Repository
	if *databaseURL != "" {
		repo, pg, err = openRepository(ctx, *databaseURL)
		if err != nil {
			return err
		}
		defer repo.Close()

		seeded, err := keyword.SeedIfEmpty(ctx, repo)
		if err != nil {
			return fmt.Errorf("seeding keyword store: %w", err)
		}
		if seeded > 0 {
			log.InfoContext(ctx, "seeded keyword store from embedded dataset", "entries", seeded)
		}
		if err := live.Reload(ctx, repo); err != nil {
			return fmt.Errorf("loading keywords from store: %w", err)
		}
	}
	metrics.DictionaryEntries.Set(float64(live.Len()))
	log.InfoContext(ctx, "keyword dictionary loaded", "entries", live.Len(), "store", *databaseURL != "")

	var origins []string
	if *allowedOrigins != "" {
		for _, o := range strings.Split(*allowedOrigins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	router := web.NewRouter(live, repo, teller, log, *apiKey, origins)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router.Handler(ctx))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.InfoContext(gctx, "starting web server", "port", *port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.InfoContext(gctx, "shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if pg != nil {
		// Periodically export pgxpool stats as Prometheus gauges
		g.Go(func() error {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					s := pg.PoolStats()
					metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
					metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
					metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
				case <-gctx.Done():
					return nil
				}
			}
		})
	}

	return g.Wait()
}

func openRepository(ctx context.Context, url string) (db.Repository, *postgres.Repository, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		pg, err := postgres.New(ctx, url)
		if err != nil {
			return nil, nil, fmt.Errorf("creating PostgreSQL connection: %w", err)
		}
		return pg, pg, nil
	case strings.HasPrefix(url, "sqlite://"):
		repo, err := sqlite.New(ctx, url)
		if err != nil {
			return nil, nil, fmt.Errorf("opening SQLite database: %w", err)
		}
		return repo, nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database URL scheme: %q", url)
	}
}

func newTeller(ctx context.Context, provider, model, anthropicKey, googleKey string) (*story.Teller, error) {
	var client llm.Client
	switch provider {
	case "anthropic":
		if anthropicKey == "" {
			return nil, errors.New("anthropic-api-key is required when using anthropic provider")
		}
		client = anthropic.NewClient(anthropicKey, anthropic.Model(model))
	case "google":
		if googleKey == "" {
			return nil, errors.New("google-api-key is required when using google provider")
		}
		var err error
		client, err = google.NewClient(ctx, googleKey, google.Model(model))
		if err != nil {
			return nil, fmt.Errorf("creating Google client: %w", err)
		}
	default:
		return nil, nil
	}
	return story.NewTeller(client), nil
}
