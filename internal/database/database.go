package database

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/lexicard/internal/entities"
)

var ErrNotFound = errors.New("not found")

type Database struct {
	DB *gorm.DB
}

// MemoryDSN names a private in-memory database that lives as long as its
// connection pool.
func MemoryDSN() string {
	return fmt.Sprintf("file:lexicard-%s?mode=memory&cache=shared", uuid.NewString())
}

func NewDatabase(dsn string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	// one connection keeps an in-memory database alive and serializes writes
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entities.Word{},
		&entities.Lecture{},
		&entities.User{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if !strings.Contains(dsn, "mode=memory") {
		log.Printf("Database initialized successfully at %s", dsn)
	}
	return &Database{DB: db}, nil
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Seed inserts the given rows inside one transaction. Words whose key already
// exists are skipped.
func (d *Database) Seed(words []entities.Word, lectures []entities.Lecture, users []entities.User) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		for i := range words {
			var count int64
			if err := tx.Model(&entities.Word{}).Where("word = ?", words[i].Word).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(withWordID(&words[i])).Error; err != nil {
				return fmt.Errorf("seed word %q: %w", words[i].Word, err)
			}
		}
		for i := range lectures {
			var count int64
			if err := tx.Model(&entities.Lecture{}).Where("markdown_content = ?", lectures[i].MarkdownContent).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if lectures[i].ID == "" {
				lectures[i].ID = newID()
			}
			if err := tx.Create(&lectures[i]).Error; err != nil {
				return fmt.Errorf("seed lecture: %w", err)
			}
		}
		for i := range users {
			if err := tx.Where("username = ?", users[i].Username).FirstOrCreate(&users[i]).Error; err != nil {
				return fmt.Errorf("seed user %q: %w", users[i].Username, err)
			}
		}
		return nil
	})
}

// Pages is the number of pages needed for total rows.
func Pages(total int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
