package storage

import (
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// StoreRecord is one persisted key-value record. The value column holds the
// full JSON document for that key.
type StoreRecord struct {
	Key       string         `gorm:"primaryKey;size:191;column:record_key"`
	Value     datatypes.JSON `gorm:"column:record_value"`
	UpdatedAt time.Time
}

func (StoreRecord) TableName() string { return "store_records" }

type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore connects with the given DSN and migrates the record table.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&StoreRecord{}); err != nil {
		return nil, err
	}

	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Get(key string) ([]byte, error) {
	var rec StoreRecord
	err := s.db.First(&rec, "record_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(rec.Value), nil
}

func (s *MySQLStore) Put(key string, value []byte) error {
	rec := StoreRecord{Key: key, Value: datatypes.JSON(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		UpdateAll: true,
	}).Create(&rec).Error
}

func (s *MySQLStore) Delete(key string) error {
	return s.db.Delete(&StoreRecord{}, "record_key = ?", key).Error
}
