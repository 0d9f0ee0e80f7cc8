package model

// StatsRowID — фиксированный id единственной строки счётчика.
const StatsRowID int64 = 1

// Stat — одна строка со счётчиком посещений.
type Stat struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	Visits int64 `gorm:"not null;default:0" json:"visits"`
}
