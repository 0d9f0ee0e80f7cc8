package repo

import (
	"Vitrine/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository — контракт доступа к строкам items для слоя сервиса.
// Отсутствие строки отдаётся как gorm.ErrRecordNotFound либо нулевым
// числом затронутых строк; в доменные ошибки это переводит сервис.
type ItemRepository interface {
	// Create вставляет строку; БД назначает ID и CreatedAt.
	Create(ctx context.Context, it *model.Item) error

	// GetByID возвращает строку по id (zero-or-one семантика).
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// ListAll возвращает все строки, новые первыми.
	ListAll(ctx context.Context) ([]model.Item, error)

	// UpdateDescription меняет только description и возвращает число
	// затронутых строк.
	UpdateDescription(ctx context.Context, id int64, description string) (int64, error)

	// Delete удаляет строку и возвращает число затронутых строк.
	Delete(ctx context.Context, id int64) (int64, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт gorm-реализацию репозитория items.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) UpdateDescription(ctx context.Context, id int64, description string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", id).
		Update("description", description)
	return tx.RowsAffected, tx.Error
}

func (r *itemRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	return tx.RowsAffected, tx.Error
}
