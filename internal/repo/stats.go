package repo

import (
	"Vitrine/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsRepository — доступ к единственной строке счётчика посещений.
type StatsRepository interface {
	// Increment атомарно увеличивает visits на 1 и возвращает новое
	// значение. Инкремент выполняется выражением на стороне БД, поэтому
	// параллельные вызовы не теряют обновлений.
	Increment(ctx context.Context) (int64, error)

	// Visits возвращает текущее значение счётчика.
	Visits(ctx context.Context) (int64, error)
}

type statsRepo struct {
	db *gorm.DB
}

// NewStatsRepository создаёт gorm-реализацию репозитория счётчика.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) Increment(ctx context.Context) (int64, error) {
	// UPDATE stats SET visits = visits + 1 WHERE id = 1 RETURNING visits
	var s model.Stat
	tx := r.db.WithContext(ctx).Model(&s).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "visits"}}}).
		Where("id = ?", model.StatsRowID).
		Update("visits", gorm.Expr("visits + ?", 1))
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return s.Visits, nil
}

func (r *statsRepo) Visits(ctx context.Context) (int64, error) {
	var s model.Stat
	if err := r.db.WithContext(ctx).First(&s, model.StatsRowID).Error; err != nil {
		return 0, err
	}
	return s.Visits, nil
}
