package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrlokans/lexicard/internal/api"
	"github.com/mrlokans/lexicard/internal/config"
	"github.com/mrlokans/lexicard/internal/demo"
	"github.com/mrlokans/lexicard/internal/exporters"
	http_controllers "github.com/mrlokans/lexicard/internal/http"
	"github.com/mrlokans/lexicard/internal/scheduler"
	"github.com/mrlokans/lexicard/internal/stores"
	"github.com/mrlokans/lexicard/internal/tasks"
	"github.com/mrlokans/lexicard/internal/tokenstore"
)

const shutdownTimeout = 10 * time.Second

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the client side of lexicard: the word service client, the
// persisted session and both collection stores.
type App struct {
	Config   *config.Config
	Tokens   *tokenstore.TokenStore
	Client   *api.Client
	Words    *stores.WordStore
	Lectures *stores.LectureStore
}

func NewApp(cfg *config.Config) (*App, error) {
	tokens, err := tokenstore.New(tokenstore.Config{
		DatabasePath: cfg.Session.TokenDatabasePath,
		TokenKey:     cfg.Session.TokenKey,
		KeyFilePath:  cfg.Session.KeyFilePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL,
		api.WithAuthURL(cfg.API.AuthBaseURL),
		api.WithTimeouts(cfg.API.Timeout, cfg.API.GenerationTimeout),
		api.WithTokenSource(tokens),
	)

	return &App{
		Config:   cfg,
		Tokens:   tokens,
		Client:   client,
		Words:    stores.NewWordStore(client, cfg.Words.Language),
		Lectures: stores.NewLectureStore(client),
	}, nil
}

// Login exchanges credentials for a token and keeps it for later runs.
func (a *App) Login(ctx context.Context, username, password string) error {
	token, err := a.Client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := a.Tokens.SaveToken(username, token); err != nil {
		return err
	}
	log.Printf("Logged in as %s", username)
	return nil
}

// Logout forgets the stored token and clears both stores.
func (a *App) Logout() error {
	if err := a.Tokens.DeleteAll(); err != nil {
		return err
	}
	a.Words.Reset()
	a.Lectures.Reset()
	return nil
}

// Close waits for pending seen-count updates, then closes the token store.
func (a *App) Close() error {
	a.Words.Wait()
	return a.Tokens.Close()
}

// Serve runs handler on addr until SIGINT or SIGTERM, then shuts down
// gracefully, calling onShutdown first.
func Serve(handler http.Handler, addr string, onShutdown ShutdownFunc) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server at %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	log.Printf("Shutdown Server, waiting %v before killing", shutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Println("Server exiting")
	return nil
}

// ServeDemo runs the demo word service.
func ServeDemo(cfg *config.Config, version string) error {
	backend, err := demo.NewBackend(demo.OptionsFromConfig(cfg.Demo, version))
	if err != nil {
		return err
	}
	defer backend.Close()

	if cfg.Demo.RequireAuth {
		log.Printf("Demo backend requires a bearer token; log in as %q", cfg.Demo.Username)
	}
	return Serve(backend.Router, fmt.Sprintf("%s:%d", cfg.Demo.Host, cfg.Demo.Port), nil)
}

// Watch keeps the review deck fresh: a cron schedule enqueues refresh tasks,
// workers run them against the word store and optionally export the deck.
// A status server exposes /health and /metrics meanwhile.
func Watch(app *App, version string) error {
	cfg := app.Config
	if err := scheduler.ValidateSchedule(cfg.Deck.RefreshSchedule); err != nil {
		return fmt.Errorf("invalid DECK_REFRESH_SCHEDULE: %w", err)
	}

	taskCfg := tasks.DefaultConfig()
	taskCfg.DatabasePath = tasks.TasksDatabasePath(cfg.Session.TokenDatabasePath)
	if cfg.Tasks.Workers > 0 {
		taskCfg.Workers = cfg.Tasks.Workers
	}
	if cfg.Tasks.TaskTimeout > 0 {
		taskCfg.TaskTimeout = cfg.Tasks.TaskTimeout
	}
	if cfg.Tasks.ReleaseAfter > 0 {
		taskCfg.ReleaseAfter = cfg.Tasks.ReleaseAfter
	}
	if cfg.Tasks.CleanupInterval > 0 {
		taskCfg.CleanupInterval = cfg.Tasks.CleanupInterval
	}

	taskClient, err := tasks.NewClient(taskCfg)
	if err != nil {
		return err
	}
	defer taskClient.Close()

	var writer exporters.DeckWriter
	if cfg.Deck.ExportDir != "" {
		writer = exporters.NewDeckExporter(cfg.Deck.ExportDir)
		log.Printf("Deck notes will be written to %s", cfg.Deck.ExportDir)
	}
	taskClient.Register(tasks.NewRefreshDeckQueue(app.Words, writer, taskCfg.TaskTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	taskClient.Start(ctx)

	checks := map[string]http_controllers.HealthCheck{"token_store": app.Tokens.Ping}

	sched := scheduler.NewDeckRefreshScheduler(taskClient, cfg.Deck.RefreshSchedule)
	if cfg.Deck.RefreshEnabled {
		if err := sched.Start(ctx); err != nil {
			return err
		}
		checks["scheduler"] = func() error {
			if !sched.IsRunning() {
				return errors.New("stopped")
			}
			return nil
		}
	} else {
		log.Printf("DECK_REFRESH_ENABLED is off, refreshing the deck once")
	}
	if _, err := sched.RunNow(ctx); err != nil {
		log.Printf("Initial deck refresh could not be queued: %v", err)
	}

	router := http_controllers.NewStatusRouter(version, checks)

	return Serve(router, cfg.Status.Addr, func(ctx context.Context) {
		sched.Stop()
		taskClient.Stop(ctx)
	})
}
