package domain

import (
	"time"
)

type AlertType string

const (
	AlertTypeLowGeneration   AlertType = "low_generation"
	AlertTypeHighConsumption AlertType = "high_consumption"
	AlertTypeSystemFailure   AlertType = "system_failure"
	AlertTypeMaintenance     AlertType = "maintenance"
)

type AlertSeverity string

const (
	AlertSeverityHigh   AlertSeverity = "high"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityLow    AlertSeverity = "low"
)

// AlertFilter selects which alerts a list view returns.
type AlertFilter string

const (
	AlertFilterActive   AlertFilter = "active"
	AlertFilterAll      AlertFilter = "all"
	AlertFilterResolved AlertFilter = "resolved"
)

type Alert struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	ProjectID string        `json:"project_id" gorm:"index"`
	Type      AlertType     `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	Resolved  bool          `json:"resolved"`
	CreatedAt time.Time     `json:"created_at"`
	// ResolvedAt is set exactly once, when Resolved flips to true.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// AlertView is an alert enriched with project context for display. When the
// referenced project no longer resolves, ProjectTitle carries a placeholder.
type AlertView struct {
	Alert
	ProjectTitle string `json:"project_title"`
	ClientName   string `json:"client_name,omitempty"`
}

// AlertSummary counts severities over the full alert set, independent of any
// list filter.
type AlertSummary struct {
	HighActive   int `json:"high_active"`
	MediumActive int `json:"medium_active"`
	Resolved     int `json:"resolved"`
}
