package model

import "time"

// Item — запись каталога: картинка в объектном хранилище + описание.
// ID и CreatedAt назначает БД при вставке.
type Item struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// Публичный URL картинки в blob-хранилище.
	ImageURL string `gorm:"not null" json:"image_url"`

	// Ключ объекта в хранилище. Хранится отдельно от URL, чтобы при
	// удалении не восстанавливать его разбором строки.
	ImagePath string `gorm:"not null;default:''" json:"-"`

	Description string `json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
