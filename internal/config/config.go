package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		API
		Words
		Lectures
		Session
		Deck
		Tasks
		Demo
		Status
	}

	API struct {
		BaseURL           string
		AuthBaseURL       string        // Login service; falls back to BaseURL
		Timeout           time.Duration // Regular requests
		GenerationTimeout time.Duration // AI-backed generation, which takes seconds
	}
	Words struct {
		Language       string        // Language sent with generation requests
		SearchDebounce time.Duration // Quiet period before a search is fetched
	}
	Lectures struct {
		PageSize int
	}
	Session struct {
		TokenDatabasePath string
		TokenKey          string // base64 32-byte key; generated into KeyFilePath when empty
		KeyFilePath       string
	}
	Deck struct {
		RefreshEnabled  bool
		RefreshSchedule string // Cron format: "*/30 * * * *" = every 30 minutes
		ExportDir       string // Markdown notes are written here after a refresh when set
	}
	Tasks struct {
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
		TaskTimeout     time.Duration
	}
	Demo struct {
		Host        string
		Port        int32
		RequireAuth bool
		JWTSecret   string
		Username    string
		Password    string
		TokenTTL    time.Duration

		// DatabasePath persists the demo data in a SQLite file. Empty keeps it in memory.
		DatabasePath string
	}
	Status struct {
		Addr string // Listen address of the health/metrics server in watch mode
	}
)

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func NewConfig() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("auth_base_url", "")
	v.SetDefault("api_timeout", "15s")
	v.SetDefault("api_generation_timeout", "90s")

	v.SetDefault("word_language", "en")
	v.SetDefault("search_debounce", "400ms")

	v.SetDefault("lecture_page_size", 10)

	v.SetDefault("token_database_path", DefaultTokenDatabasePath)
	v.SetDefault("lexicard_token_key", "")
	v.SetDefault("token_key_file", "")

	v.SetDefault("deck_refresh_enabled", false)
	v.SetDefault("deck_refresh_schedule", "*/30 * * * *")
	v.SetDefault("deck_export_dir", "")

	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "5m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_timeout", "2m")

	v.SetDefault("demo_host", "127.0.0.1")
	v.SetDefault("demo_port", 8190)
	v.SetDefault("demo_require_auth", false)
	v.SetDefault("demo_jwt_secret", "") // Auto-generated if empty
	v.SetDefault("demo_username", "demo")
	v.SetDefault("demo_password", "demo-password-123")
	v.SetDefault("demo_token_ttl", "720h")
	v.SetDefault("demo_database_path", "") // In-memory if empty

	v.SetDefault("status_addr", "127.0.0.1:9190")

	cfg := &Config{
		API: API{
			BaseURL:           v.GetString("API_BASE_URL"),
			AuthBaseURL:       v.GetString("AUTH_BASE_URL"),
			Timeout:           v.GetDuration("API_TIMEOUT"),
			GenerationTimeout: v.GetDuration("API_GENERATION_TIMEOUT"),
		},
		Words: Words{
			Language:       v.GetString("WORD_LANGUAGE"),
			SearchDebounce: v.GetDuration("SEARCH_DEBOUNCE"),
		},
		Lectures: Lectures{
			PageSize: v.GetInt("LECTURE_PAGE_SIZE"),
		},
		Session: Session{
			TokenDatabasePath: v.GetString("TOKEN_DATABASE_PATH"),
			TokenKey:          v.GetString("LEXICARD_TOKEN_KEY"),
			KeyFilePath:       v.GetString("TOKEN_KEY_FILE"),
		},
		Deck: Deck{
			RefreshEnabled:  v.GetBool("DECK_REFRESH_ENABLED"),
			RefreshSchedule: v.GetString("DECK_REFRESH_SCHEDULE"),
			ExportDir:       v.GetString("DECK_EXPORT_DIR"),
		},
		Tasks: Tasks{
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
			TaskTimeout:     v.GetDuration("TASK_TIMEOUT"),
		},
		Demo: Demo{
			Host:         v.GetString("DEMO_HOST"),
			Port:         v.GetInt32("DEMO_PORT"),
			RequireAuth:  v.GetBool("DEMO_REQUIRE_AUTH"),
			JWTSecret:    v.GetString("DEMO_JWT_SECRET"),
			Username:     v.GetString("DEMO_USERNAME"),
			Password:     v.GetString("DEMO_PASSWORD"),
			TokenTTL:     v.GetDuration("DEMO_TOKEN_TTL"),
			DatabasePath: v.GetString("DEMO_DATABASE_PATH"),
		},
		Status: Status{
			Addr: v.GetString("STATUS_ADDR"),
		},
	}

	if cfg.API.AuthBaseURL == "" {
		cfg.API.AuthBaseURL = cfg.API.BaseURL
	}
	return cfg
}
