// Package tokenstore keeps the word service bearer token on the device,
// sealed at rest.
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/lexicard/internal/crypto"
	"github.com/mrlokans/lexicard/internal/entities"
)

const (
	EnvTokenKey        = "LEXICARD_TOKEN_KEY"
	DefaultKeyFileName = ".lexicard-token-key"
)

type TokenStore struct {
	db     *gorm.DB
	sealer *crypto.Sealer
}

type Config struct {
	DatabasePath string

	// TokenKey is the base64 32-byte sealing key. When empty it is read from
	// LEXICARD_TOKEN_KEY, then from KeyFilePath, generating the file if needed.
	TokenKey string

	// KeyFilePath defaults to ~/.lexicard-token-key
	KeyFilePath string
}

func New(cfg Config) (*TokenStore, error) {
	key, err := resolveKey(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token key: %w", err)
	}

	sealer, err := crypto.NewSealerFromBase64(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create sealer: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&entities.StoredToken{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &TokenStore{db: db, sealer: sealer}, nil
}

func resolveKey(cfg Config) (string, error) {
	if cfg.TokenKey != "" {
		return cfg.TokenKey, nil
	}
	if envKey := os.Getenv(EnvTokenKey); envKey != "" {
		return envKey, nil
	}

	keyFilePath := KeyFilePath(cfg.KeyFilePath)
	if data, err := os.ReadFile(keyFilePath); err == nil {
		return string(data), nil
	}

	newKey, err := crypto.GenerateKey()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(keyFilePath, []byte(newKey), 0600); err != nil {
		return "", fmt.Errorf("failed to save token key to %s: %w", keyFilePath, err)
	}

	log.Printf("[TOKENS] Generated new token key at %s", keyFilePath)
	return newKey, nil
}

// KeyFilePath resolves the key file location, defaulting to the home directory.
func KeyFilePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return DefaultKeyFileName
	}
	return filepath.Join(homeDir, DefaultKeyFileName)
}

// SaveToken stores token for account, replacing any previous one.
func (s *TokenStore) SaveToken(account, token string) error {
	if token == "" {
		return errors.New("refusing to store an empty token")
	}

	sealed, err := s.sealer.Seal(token)
	if err != nil {
		return fmt.Errorf("failed to seal token: %w", err)
	}

	record := &entities.StoredToken{Account: account, AccessToken: sealed, TokenType: "Bearer"}
	result := s.db.Where("account = ?", account).
		Assign(map[string]interface{}{
			"access_token": sealed,
			"updated_at":   time.Now(),
		}).
		FirstOrCreate(record)
	if result.Error != nil {
		return fmt.Errorf("failed to save token: %w", result.Error)
	}
	return nil
}

// Token returns the most recently saved token, or "" when logged out.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	var record entities.StoredToken
	result := s.db.WithContext(ctx).Order("updated_at DESC").Limit(1).Find(&record)
	if result.Error != nil {
		return "", fmt.Errorf("failed to load token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", nil
	}

	token, err := s.sealer.Open(record.AccessToken)
	if err != nil {
		return "", fmt.Errorf("failed to open token for %s: %w", record.Account, err)
	}

	now := time.Now()
	s.db.WithContext(ctx).Model(&entities.StoredToken{}).
		Where("id = ?", record.ID).
		UpdateColumn("last_used_at", now)

	return token, nil
}

// Account returns the account of the current token, or "" when logged out.
func (s *TokenStore) Account(ctx context.Context) (string, error) {
	var record entities.StoredToken
	result := s.db.WithContext(ctx).Order("updated_at DESC").Limit(1).Find(&record)
	if result.Error != nil {
		return "", fmt.Errorf("failed to load token: %w", result.Error)
	}
	return record.Account, nil
}

// DeleteAll removes every stored token.
func (s *TokenStore) DeleteAll() error {
	result := s.db.Unscoped().Where("1 = 1").Delete(&entities.StoredToken{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tokens: %w", result.Error)
	}
	return nil
}

func (s *TokenStore) Ping() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Ping()
}

func (s *TokenStore) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
