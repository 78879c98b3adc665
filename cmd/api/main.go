package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"proman-recommender/internal/auth"
	"proman-recommender/internal/config"
	"proman-recommender/internal/db"
	"proman-recommender/internal/recommend"
	"proman-recommender/internal/tasks"
)

func main() {
	configPath := flag.String("config", os.Getenv("PROMAN_CONFIG"), "path to a TOML config file")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatal("❌ Failed to load config:", err)
	}

	database, err := db.Connect(cfg.DBDriver, cfg.ConnString())
	if err != nil {
		log.Fatal("❌ Failed to connect DB:", err)
	}
	defer database.Close()

	log.Printf("✅ Connected to %s!", cfg.DBDriver)

	store := tasks.NewSQLStore(database)
	engine := recommend.NewEngine()

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	recommendHandler := recommend.RecommendHandler(store, engine, time.Now)
	if cfg.JWTSecret != "" {
		recommendHandler = auth.New([]byte(cfg.JWTSecret)).Wrap(recommendHandler)
		log.Println("🔒 /recommend requires a bearer token")
	}
	mux.HandleFunc("/recommend", recommendHandler)

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("🚀 API server is running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("❌ Server error:", err)
	}
}
