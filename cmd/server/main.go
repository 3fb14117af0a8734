package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timeclash/internal/config"
	"timeclash/internal/handlers"
	"timeclash/internal/repository"
	"timeclash/internal/security"
	"timeclash/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg := config.Load()

	csrfSecret := cfg.CSRFSecret
	if csrfSecret == "" {
		secret, err := security.RandomSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		csrfSecret = secret
		log.Println("CSRF_SECRET not set, using a random per-process secret")
	}

	templates, err := handlers.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	var rng service.RandomSource
	if cfg.QuizSeed != 0 {
		rng = service.NewSeededSource(cfg.QuizSeed)
		log.Printf("Quiz questions seeded with %d", cfg.QuizSeed)
	}

	sessions := repository.NewSessionRepository(cfg.SessionDuration)
	csrf := security.NewCSRFGenerator(csrfSecret)
	limiter := security.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	quizService := service.NewQuizService(rng)

	middleware := handlers.NewMiddleware(sessions, csrf, limiter, cfg.TrustProxy)
	converterHandler := handlers.NewConverterHandler(sessions, csrf, templates)
	knowledgeHandler := handlers.NewKnowledgeHandler(templates)
	quizHandler := handlers.NewQuizHandler(quizService, sessions, csrf, templates)

	handler := handlers.NewRouter(middleware, converterHandler, knowledgeHandler, quizHandler)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background cleanup of idle sessions and rate limit buckets
	go cleanupExpiredSessions(ctx, sessions)
	go limiter.RunCleanup(ctx, time.Hour)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(ctx context.Context, sessions *repository.SessionRepository) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sessions.DeleteExpired(); removed > 0 {
				log.Printf("Removed %d expired sessions, %d remain", removed, sessions.Count())
			}
		}
	}
}
