package entities

import (
	"time"

	"gorm.io/gorm"
)

// StoredToken is a bearer token persisted on the device between runs.
type StoredToken struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Account is the username the token was issued for
	Account string `gorm:"type:varchar(255);not null;uniqueIndex" json:"account"`

	// AccessToken is the sealed bearer token (base64 secretbox ciphertext)
	AccessToken string `gorm:"type:text;not null" json:"-"`

	// TokenType is always "Bearer" for the word service
	TokenType string `gorm:"type:varchar(50);default:Bearer" json:"token_type"`

	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

func (StoredToken) TableName() string {
	return "stored_tokens"
}
