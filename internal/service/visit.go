package service

import (
	"Vitrine/internal/repo"
	"context"
	"time"

	"go.uber.org/zap"
)

// VisitService — счётчик посещений поверх единственной строки stats.
// Инкремент атомарный на стороне БД, поэтому параллельные запросы не
// теряют обновлений.
type VisitService struct {
	stats  repo.StatsRepository
	logger *zap.SugaredLogger

	callTimeout time.Duration
}

// NewVisitService создаёт сервис счётчика.
func NewVisitService(stats repo.StatsRepository, logger *zap.SugaredLogger, callTimeout time.Duration) *VisitService {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &VisitService{stats: stats, logger: logger, callTimeout: callTimeout}
}

// Increment увеличивает счётчик на 1 и возвращает новое значение.
func (s *VisitService) Increment(ctx context.Context) (int64, error) {
	incCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	n, err := s.stats.Increment(incCtx)
	if err != nil {
		// строка сажается миграцией, так что любой отказ здесь транспортный
		return 0, &RecordError{Op: "increment", Err: err}
	}
	return n, nil
}

// Visits возвращает текущее значение счётчика без изменения.
func (s *VisitService) Visits(ctx context.Context) (int64, error) {
	selCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	n, err := s.stats.Visits(selCtx)
	if err != nil {
		return 0, &RecordError{Op: "select", Err: err}
	}
	return n, nil
}
