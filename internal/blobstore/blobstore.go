package blobstore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// BlobStore — контракт объектного хранилища картинок.
// Put/Delete ходят по сети, PublicURL и PathFromURL — чистые функции.
type BlobStore interface {
	// Put записывает объект по ключу path.
	Put(ctx context.Context, path string, data []byte, contentType string) error

	// Delete удаляет объект. Удаление уже отсутствующего объекта — не ошибка.
	Delete(ctx context.Context, path string) error

	// PublicURL возвращает публичный URL объекта по его ключу.
	PublicURL(path string) string

	// PathFromURL восстанавливает ключ объекта из публичного URL.
	// Возвращает false, если URL не принадлежит этому хранилищу.
	PathFromURL(url string) (string, bool)
}

// ItemPath строит ключ объекта для картинки item: items/<epoch-millis>-<имя>.
// Имя берётся без каталогов, пробелы заменяются подчёркиванием.
func ItemPath(now time.Time, originalName string) string {
	name := filepath.Base(strings.TrimSpace(originalName))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("items/%d-%s", now.UnixMilli(), name)
}
