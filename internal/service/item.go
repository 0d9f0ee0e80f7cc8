package service

import (
	"Vitrine/internal/blobstore"
	"Vitrine/internal/model"
	"Vitrine/internal/repo"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultCallTimeout = 10 * time.Second

// ItemService координирует blob-хранилище и БД для CRUD item.
//
// Порядок шагов фиксированный: создание пишет blob до строки, поэтому
// строка никогда не ссылается на объект, которого ещё нет. Удаление
// сначала пробует убрать blob, но его отказ не блокирует удаление
// строки: целостность метаданных важнее гигиены хранилища.
type ItemService struct {
	items  repo.ItemRepository
	blobs  blobstore.BlobStore
	logger *zap.SugaredLogger

	// бюджет на один исходящий вызов
	callTimeout time.Duration

	// источник времени для ключей объектов, подменяется в тестах
	now func() time.Time
}

// NewItemService создаёт сервис items. callTimeout <= 0 заменяется дефолтом.
func NewItemService(items repo.ItemRepository, blobs blobstore.BlobStore, logger *zap.SugaredLogger, callTimeout time.Duration) *ItemService {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &ItemService{
		items:       items,
		blobs:       blobs,
		logger:      logger,
		callTimeout: callTimeout,
		now:         time.Now,
	}
}

// CreateItemInput — проверенный вход создания item.
type CreateItemInput struct {
	Image        []byte
	ContentType  string
	OriginalName string
	Description  string
}

func (s *ItemService) outboundCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.callTimeout)
}

// Create выполняет создание item в два шага: blob, затем строка.
// Если вставка строки отказала, уже загруженный blob удаляется
// best-effort, чтобы не копить сирот; отказ компенсации только логируется.
func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*model.Item, error) {
	if len(in.Image) == 0 {
		return nil, &ValidationError{Msg: "image required"}
	}

	path := blobstore.ItemPath(s.now(), in.OriginalName)

	putCtx, cancel := s.outboundCtx(ctx)
	err := s.blobs.Put(putCtx, path, in.Image, in.ContentType)
	cancel()
	if err != nil {
		return nil, &StorageError{Op: "put", Err: err}
	}

	it := &model.Item{
		ImageURL:    s.blobs.PublicURL(path),
		ImagePath:   path,
		Description: in.Description,
	}

	insCtx, cancel := s.outboundCtx(ctx)
	err = s.items.Create(insCtx, it)
	cancel()
	if err != nil {
		// компенсация: строки нет, подчищаем blob. Родительский ctx мог
		// уже истечь, поэтому отвязываемся от его отмены.
		delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.callTimeout)
		if derr := s.blobs.Delete(delCtx, path); derr != nil {
			s.logger.Warnw("create: compensating blob delete failed",
				"path", path, "error", derr)
		}
		cancel()
		return nil, &RecordError{Op: "insert", Err: err}
	}

	return it, nil
}

// Get возвращает item по id.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	selCtx, cancel := s.outboundCtx(ctx)
	defer cancel()

	it, err := s.items.GetByID(selCtx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &RecordError{Op: "select", Err: err}
	}
	return it, nil
}

// List возвращает все items, новые первыми.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	selCtx, cancel := s.outboundCtx(ctx)
	defer cancel()

	items, err := s.items.ListAll(selCtx)
	if err != nil {
		return nil, &RecordError{Op: "select", Err: err}
	}
	return items, nil
}

// UpdateDescription меняет описание item; картинка после создания
// неизменяема. Возвращает обновлённую строку.
func (s *ItemService) UpdateDescription(ctx context.Context, id int64, description string) (*model.Item, error) {
	updCtx, cancel := s.outboundCtx(ctx)
	n, err := s.items.UpdateDescription(updCtx, id, description)
	cancel()
	if err != nil {
		return nil, &RecordError{Op: "update", Err: err}
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete удаляет item: строка по id, затем blob по сохранённому ключу,
// затем сама строка. Отказ удаления blob не фатален. Для старых строк
// без ключа путь восстанавливается из URL; если и это не вышло,
// удаление blob пропускается, строка всё равно удаляется.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	it, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	path := it.ImagePath
	if path == "" {
		p, ok := s.blobs.PathFromURL(it.ImageURL)
		if ok {
			path = p
		} else {
			s.logger.Warnw("delete: cannot derive blob path, skipping blob delete",
				"id", id, "image_url", it.ImageURL)
		}
	}

	if path != "" {
		blobCtx, cancel := s.outboundCtx(ctx)
		if derr := s.blobs.Delete(blobCtx, path); derr != nil {
			// не фатально: строку удаляем в любом случае
			s.logger.Warnw("delete: blob delete failed",
				"id", id, "path", path, "error", derr)
		}
		cancel()
	}

	delCtx, cancel := s.outboundCtx(ctx)
	defer cancel()
	n, err := s.items.Delete(delCtx, id)
	if err != nil {
		return &RecordError{Op: "delete", Err: err}
	}
	if n == 0 {
		// параллельный Delete успел раньше
		return ErrNotFound
	}
	return nil
}
