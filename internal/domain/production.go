package domain

import (
	"time"
)

type SystemStatus string

const (
	SystemStatusNormal   SystemStatus = "normal"
	SystemStatusAlert    SystemStatus = "alert"
	SystemStatusCritical SystemStatus = "critical"
)

// ProductionRecord is one calendar-day production sample for a project site.
// Records are append-only; uniqueness of (project, date) is not enforced and
// duplicates are summed by aggregation.
type ProductionRecord struct {
	ID             string       `json:"id" gorm:"primaryKey"`
	ProjectID      string       `json:"project_id" gorm:"index"`
	Date           time.Time    `json:"date" gorm:"index"`
	GenerationKwh  float64      `json:"generation_kwh"`
	ConsumptionKwh float64      `json:"consumption_kwh"`
	SavingsBRL     float64      `json:"savings_brl"`
	SystemStatus   SystemStatus `json:"system_status"`
	CreatedAt      time.Time    `json:"created_at"`
}
