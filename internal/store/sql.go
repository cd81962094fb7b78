package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRow holds one collection document per row.
type collectionRow struct {
	Name      string `gorm:"primaryKey;size:64"`
	Document  string `gorm:"not null"` // text on postgres, longtext on mysql
	UpdatedAt time.Time
}

func (collectionRow) TableName() string { return "collections" }

// SQLBackend stores documents in a single "collections" table through gorm.
// Works with any gorm dialect; postgres and mysql are wired in infra.
type SQLBackend struct {
	db *gorm.DB
}

// NewSQLBackend migrates the collections table and returns the backend.
func NewSQLBackend(db *gorm.DB) (*SQLBackend, error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, err
	}
	return &SQLBackend{db: db}, nil
}

func (b *SQLBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var row collectionRow
	err := b.db.WithContext(ctx).First(&row, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.Document), nil
}

func (b *SQLBackend) Write(ctx context.Context, name string, doc []byte) error {
	row := collectionRow{Name: name, Document: string(doc), UpdatedAt: time.Now()}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&row).Error
}

func (b *SQLBackend) Ping(ctx context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
