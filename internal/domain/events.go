package domain

import (
	"time"
)

// Queue subjects published by the services.
const (
	SubjectProjectTransitioned = "project.transitioned"
	SubjectAlertCreated        = "alert.created"
	SubjectAlertResolved       = "alert.resolved"
	SubjectProductionRecorded  = "production.recorded"
)

type ProjectTransitionedEvent struct {
	ProjectID    string         `json:"project_id"`
	ProjectValue float64        `json:"project_value"`
	From         PipelineStatus `json:"from"`
	To           PipelineStatus `json:"to"`
	At           time.Time      `json:"at"`
}

type AlertEvent struct {
	AlertID   string        `json:"alert_id"`
	ProjectID string        `json:"project_id"`
	Type      AlertType     `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	At        time.Time     `json:"at"`
}

type ProductionRecordedEvent struct {
	RecordID      string    `json:"record_id"`
	ProjectID     string    `json:"project_id"`
	Date          time.Time `json:"date"`
	GenerationKwh float64   `json:"generation_kwh"`
}
