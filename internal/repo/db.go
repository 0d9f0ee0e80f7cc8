package repo

import (
	"Vitrine/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InitDB открывает соединение с Postgres и прогоняет миграции.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate прогоняет автомиграции и сажает строку счётчика, если её ещё нет.
// Благодаря посеву Increment никогда не гоняется по пустой таблице.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Item{}, &model.Stat{}); err != nil {
		return err
	}
	seed := &model.Stat{ID: model.StatsRowID, Visits: 0}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error
}
