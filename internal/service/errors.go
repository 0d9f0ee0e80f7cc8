package service

import (
	"errors"
	"fmt"
)

// ErrNotFound — доменное отсутствие записи (ноль строк по id).
// Отличается от транспортных отказов хранилищ.
var ErrNotFound = errors.New("not found")

// ValidationError — некорректный вход. Ловится до любых сетевых вызовов.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// StorageError — отказ операции blob-хранилища.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// RecordError — отказ операции над строками БД.
type RecordError struct {
	Op  string
	Err error
}

func (e *RecordError) Error() string { return fmt.Sprintf("record %s: %v", e.Op, e.Err) }
func (e *RecordError) Unwrap() error { return e.Err }
