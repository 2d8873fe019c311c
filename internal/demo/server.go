// Package demo runs a self-contained word service for trying the client
// without the real backend: in-memory storage, seeded content, bcrypt
// logins, HS256 bearer tokens and a deterministic stand-in for the AI.
package demo

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/lexicard/internal/config"
	"github.com/mrlokans/lexicard/internal/database"
	"github.com/mrlokans/lexicard/internal/entities"
	http_controllers "github.com/mrlokans/lexicard/internal/http"
)

const DefaultTokenTTL = 30 * 24 * time.Hour

type Options struct {
	RequireAuth bool
	JWTSecret   string // generated when empty
	Username    string // overrides the seed user when set
	Password    string
	TokenTTL    time.Duration
	BcryptCost  int   // bcrypt.DefaultCost when zero
	Seed        *Seed // DefaultSeed when nil
	Version     string

	// DatabasePath selects a SQLite file. Empty means a private in-memory database.
	DatabasePath string
}

func OptionsFromConfig(cfg config.Demo, version string) Options {
	return Options{
		RequireAuth:  cfg.RequireAuth,
		JWTSecret:    cfg.JWTSecret,
		Username:     cfg.Username,
		Password:     cfg.Password,
		TokenTTL:     cfg.TokenTTL,
		Version:      version,
		DatabasePath: cfg.DatabasePath,
	}
}

// Backend is a running demo word service.
type Backend struct {
	DB     *database.Database
	Router *gin.Engine
	auth   *authenticator
}

// Secret is the key tokens are signed with.
func (b *Backend) Secret() string {
	return b.auth.secret
}

func (b *Backend) Close() error {
	return b.DB.Close()
}

// authenticator adapts the package helpers to the controller interface.
type authenticator struct {
	secret string
	ttl    time.Duration
}

func (a *authenticator) CheckPassword(password, hash string) error {
	return CheckPassword(password, hash)
}

func (a *authenticator) IssueToken(username string, now time.Time) (string, error) {
	return IssueToken(username, a.secret, a.ttl, now)
}

func NewBackend(opts Options) (*Backend, error) {
	seed := opts.Seed
	if seed == nil {
		var err error
		if seed, err = DefaultSeed(); err != nil {
			return nil, err
		}
	}
	if opts.Username != "" {
		seed.User.Username = opts.Username
	}
	if opts.Password != "" {
		seed.User.Password = opts.Password
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = DefaultTokenTTL
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.JWTSecret == "" {
		secret, err := GenerateSecret()
		if err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
		opts.JWTSecret = secret
		log.Printf("No DEMO_JWT_SECRET set, tokens will not survive a restart")
	}

	dsn := database.MemoryDSN()
	if opts.DatabasePath != "" {
		dsn = opts.DatabasePath
	}
	db, err := database.NewDatabase(dsn)
	if err != nil {
		return nil, err
	}
	if err := SeedDatabase(db, seed, opts.BcryptCost, time.Now()); err != nil {
		db.Close()
		return nil, err
	}

	auth := &authenticator{secret: opts.JWTSecret, ttl: opts.TokenTTL}
	cfg := http_controllers.RouterConfig{
		Words:         db,
		Lectures:      db,
		Users:         db,
		Generator:     Generator{},
		Authenticator: auth,
		HealthChecks:  map[string]http_controllers.HealthCheck{"database": db.Ping},
		Version:       opts.Version,
	}
	if opts.RequireAuth {
		cfg.AuthMiddleware = NewMiddleware(true, opts.JWTSecret).Handler()
	}

	return &Backend{DB: db, Router: http_controllers.NewRouter(cfg), auth: auth}, nil
}

// SeedDatabase writes the seed into db. Rows that already exist are left
// untouched, so a file database can be seeded on every start.
func SeedDatabase(db *database.Database, seed *Seed, bcryptCost int, now time.Time) error {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := HashPassword(seed.User.Password, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	words, lectures := seedRows(seed, now)
	users := []entities.User{{Username: seed.User.Username, PasswordHash: hash}}
	if err := db.Seed(words, lectures, users); err != nil {
		return fmt.Errorf("seed demo database: %w", err)
	}
	log.Printf("Demo database seeded with %d words and %d lectures", len(words), len(lectures))
	return nil
}

// seedRows gives rows increasing creation times in file order, so lectures
// page in file order and words list newest entry first.
func seedRows(seed *Seed, now time.Time) ([]entities.Word, []entities.Lecture) {
	base := now.Add(-time.Duration(len(seed.Words)+len(seed.Lectures)) * time.Minute)

	words := make([]entities.Word, 0, len(seed.Words))
	for i, w := range seed.Words {
		word := w.entity()
		word.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		word.UpdatedAt = word.CreatedAt
		words = append(words, word)
	}

	lectures := make([]entities.Lecture, 0, len(seed.Lectures))
	for i, l := range seed.Lectures {
		lecture := l.entity()
		lecture.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		lecture.UpdatedAt = lecture.CreatedAt
		lectures = append(lectures, lecture)
	}
	return words, lectures
}
