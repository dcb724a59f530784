package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"health-advisor/internal/alert"
	"health-advisor/internal/catalog"
	"health-advisor/internal/genai"
	"health-advisor/internal/history"
	"health-advisor/internal/pathway"
	"health-advisor/internal/platform/telegram"
	"health-advisor/internal/ratelimit"
	"health-advisor/internal/report"
)

type Config struct {
	Port           string
	DatabaseURL    string
	GeminiAPIKey   string
	OpenAIAPIKey   string
	LLMProvider    string
	LLMModel       string
	GenTimeout     time.Duration
	TelegramToken  string
	OnCallChatID   int64
	RateLimit      int
	RateWindowSecs int
}

func loadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		LLMProvider:    os.Getenv("LLM_PROVIDER"),
		LLMModel:       os.Getenv("LLM_MODEL"),
		GenTimeout:     8 * time.Second,
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		RateLimit:      ratelimit.DefaultLimit,
		RateWindowSecs: 60,
	}
	if ms, err := strconv.Atoi(os.Getenv("GENAI_TIMEOUT_MS")); err == nil && ms > 0 {
		cfg.GenTimeout = time.Duration(ms) * time.Millisecond
	}
	cfg.OnCallChatID, _ = strconv.ParseInt(os.Getenv("ONCALL_CHAT_ID"), 10, 64)
	return cfg
}

func main() {
	cfg := loadConfig()

	// 1. Catalog. A broken catalog is fatal: integrity errors must never be
	// discoverable only at request time.
	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}
	log.Printf("Loaded symptom catalog version %s (%d symptoms, %d recommendations)",
		cat.Version(), len(cat.Symptoms()), len(cat.Items()))

	// 2. Optional persistence. The engine runs fine without a database.
	var repo history.Repository
	if cfg.DatabaseURL != "" {
		var db *sql.DB
		for i := 0; i < 10; i++ {
			db, err = sql.Open("postgres", cfg.DatabaseURL)
			if err == nil {
				err = db.Ping()
			}
			if err == nil {
				break
			}
			fmt.Printf("Waiting for DB... (%d/10)\n", i+1)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			log.Printf("Could not connect to DB: %v. Continuing without check history.", err)
		} else {
			log.Println("Connected to Database.")
			m, err := migrate.New("file://migrations", cfg.DatabaseURL)
			if err != nil {
				log.Printf("Migration init failed: %v", err)
			} else if err := m.Up(); err != nil && err != migrate.ErrNoChange {
				log.Printf("Migration up failed: %v", err)
			} else {
				log.Println("Migrations applied successfully!")
			}
			repo = history.NewRepository(db)
		}
	} else {
		log.Println("DATABASE_URL not set; triage checks will not be persisted.")
	}

	// 3. Generative provider. A missing credential degrades to rule-based
	// only mode, it is not a startup failure.
	genClient, err := genai.NewFromEnv(cfg.LLMProvider, cfg.GeminiAPIKey, cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		log.Fatalf("generative provider config error: %v", err)
	}
	if genClient == nil {
		log.Println("Warning: no generation credential configured; running in rule-based only mode.")
	}

	// 4. Escalation alerts.
	var alerts pathway.AlertNotifier
	if cfg.TelegramToken != "" && cfg.OnCallChatID != 0 {
		alerts = alert.NewService(telegram.NewClient(cfg.TelegramToken), cfg.OnCallChatID)
	} else {
		log.Println("Warning: TELEGRAM_BOT_TOKEN or ONCALL_CHAT_ID not set. Escalation alerts disabled.")
	}

	// 5. Services
	limiter := ratelimit.NewLimiter(cfg.RateLimit, time.Duration(cfg.RateWindowSecs)*time.Second)
	svc := pathway.NewService(cat, genClient, limiter, repo, alerts, cfg.GenTimeout)
	handler := pathway.NewHandler(svc, report.NewService())

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","catalog":%q}`, cat.Version())
	})

	r.Route("/api", func(r chi.Router) {
		pathway.RegisterRoutes(r, handler)
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	waitForShutdown(server)
}

func waitForShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
