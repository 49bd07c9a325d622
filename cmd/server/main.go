package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fizzlab/sodacraft/internal/affiliate"
	"github.com/fizzlab/sodacraft/internal/cache"
	"github.com/fizzlab/sodacraft/internal/config"
	"github.com/fizzlab/sodacraft/internal/handlers"
	"github.com/fizzlab/sodacraft/internal/metrics"
	"github.com/fizzlab/sodacraft/internal/middleware"
	"github.com/fizzlab/sodacraft/internal/recommend"
	"github.com/fizzlab/sodacraft/internal/repository"
	"github.com/fizzlab/sodacraft/internal/search"
	"github.com/fizzlab/sodacraft/internal/service"
	"github.com/fizzlab/sodacraft/internal/stock"
	"github.com/fizzlab/sodacraft/internal/suggest"
	"github.com/fizzlab/sodacraft/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "1.0.0"

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting sodacraft catalog api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Load catalog data into in-memory repositories
	recipeRepo, err := repository.NewInMemoryRecipeRepository()
	if err != nil {
		log.Error("failed to load recipe data", "error", err)
		os.Exit(1)
	}
	ingredientRepo, err := repository.NewInMemoryIngredientRepository()
	if err != nil {
		log.Error("failed to load ingredient data", "error", err)
		os.Exit(1)
	}
	productRepo, err := repository.NewInMemoryProductRepository()
	if err != nil {
		log.Error("failed to load product data", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	recipes, err := recipeRepo.GetAll(ctx)
	if err != nil {
		log.Error("failed to read recipes", "error", err)
		os.Exit(1)
	}
	ingredients, err := ingredientRepo.GetAll(ctx)
	if err != nil {
		log.Error("failed to read ingredients", "error", err)
		os.Exit(1)
	}
	log.Info("catalog data loaded",
		"recipes", len(recipes),
		"ingredients", len(ingredients),
	)

	// Search stack: evaluator-backed searcher plus a TTL result cache
	searchCache := cache.New(time.Duration(cfg.Search.CacheTTLSeconds) * time.Second)
	defer searchCache.Stop()

	searcher := search.NewSearcher(log)
	searchService := service.NewSearchService(recipeRepo, searcher, searchCache, log)
	catalogService := service.NewCatalogService(recipeRepo)
	suggester := suggest.NewSuggester(recipes, ingredients)

	// Mock external integrations behind explicit interfaces
	provider := recommend.NewStubProvider(recipes)
	stockService := stock.NewService(ingredientRepo, cfg.Stock.Seed)
	offerAPI := affiliate.NewStubProductAPI()

	// Affiliate tracking
	tracker := affiliate.NewTracker()
	linkBuilder := affiliate.NewLinkBuilder(cfg.Affiliate.PartnerTag)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(version)
	recipeHandler := handlers.NewRecipeHandler(catalogService, provider, log)
	searchHandler := handlers.NewSearchHandler(searchService, log)
	suggestHandler := handlers.NewSuggestHandler(suggester, log)
	stockHandler := handlers.NewStockHandler(stockService, log)
	recommendHandler := handlers.NewRecommendHandler(provider, log)
	affiliateHandler := handlers.NewAffiliateHandler(tracker, linkBuilder, offerAPI, productRepo, log)
	productHandler := handlers.NewProductHandler(productRepo, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(metrics.Middleware())
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Operational endpoints
	r.Get("/health", healthHandler.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Recipe catalog
		r.Get("/recipe", recipeHandler.ListRecipes)
		r.Get("/recipe/{recipeId}", recipeHandler.GetRecipe)
		r.Get("/recipe/{recipeId}/similar", recipeHandler.SimilarRecipes)

		// Search and autocomplete
		r.Post("/search", searchHandler.Search)
		r.Get("/suggest", suggestHandler.Suggest)

		// Affiliate product browse
		r.Post("/product/search", productHandler.Search)

		// Stock availability
		r.Get("/stock/{ingredientId}", stockHandler.Availability)

		// Personalization
		r.Get("/recommend", recommendHandler.Recommend)
		r.Get("/trending", recommendHandler.Trending)

		// Affiliate tracking
		r.Post("/affiliate/click", affiliateHandler.TrackClick)
		r.Get("/affiliate/link/{productId}", affiliateHandler.Link)
		r.Get("/affiliate/offer/{productId}", affiliateHandler.Offer)
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Get("/affiliate/stats", affiliateHandler.Stats)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
