package blobstore

import (
	"context"
	"strings"
	"sync"
)

type memObject struct {
	data        []byte
	contentType string
}

// Memory — хранилище в памяти под RWMutex. Используется в тестах и при
// локальном запуске без S3 (STORAGE_DRIVER=memory).
type Memory struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]memObject
}

var _ BlobStore = (*Memory)(nil)

// NewMemory создаёт пустое хранилище. baseURL задаёт префикс публичных URL.
func NewMemory(baseURL string) *Memory {
	if baseURL == "" {
		baseURL = "memory://vitrine"
	}
	return &Memory{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string]memObject),
	}
}

func (m *Memory) Put(ctx context.Context, path string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cp := make([]byte, len(data))
	copy(cp, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = memObject{data: cp, contentType: contentType}
	return nil
}

func (m *Memory) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, path)
	return nil
}

func (m *Memory) PublicURL(path string) string {
	return m.baseURL + "/" + path
}

func (m *Memory) PathFromURL(url string) (string, bool) {
	path, ok := strings.CutPrefix(url, m.baseURL+"/")
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// Get возвращает содержимое объекта. Нужен локальному режиму и тестам.
func (m *Memory) Get(path string) (data []byte, contentType string, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[path]
	if !ok {
		return nil, "", false
	}
	return obj.data, obj.contentType, true
}

// Len возвращает число хранимых объектов.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
