package models

import "time"

type SystemMetricModel struct {
	ID          uint      `gorm:"primaryKey"`
	SystemID    string    `gorm:"uniqueIndex;size:100;not null"`
	SystemName  string    `gorm:"size:100;not null"`
	Status      string    `gorm:"size:20;not null"`
	CPUUsage    int       `gorm:"not null"`
	MemoryUsage int       `gorm:"not null"`
	DiskUsage   int       `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (SystemMetricModel) TableName() string {
	return "system_metrics"
}
